package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/image-converter/internal/model"
)

func writePNG(t *testing.T, path string) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	img.Set(1, 1, color.RGBA{R: 200, A: 255})
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestBuildRequest(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "b.png"))
	writePNG(t, filepath.Join(dir, "a.png"))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	req, err := buildRequest(&options{
		format: "JPG",
		output: dir,
		dirs:   []string{dir},
	}, []string{"first.png"})
	require.NoError(t, err)

	assert.Equal(t, model.FormatJPEG, req.Format)
	assert.False(t, req.Combine)
	assert.Equal(t, []string{"first.png", filepath.Join(dir, "a.png"), filepath.Join(dir, "b.png")}, req.Files)
	assert.True(t, filepath.IsAbs(req.Destination))
}

func TestBuildRequestRejectsInvalidFlags(t *testing.T) {
	tests := []struct {
		name string
		opts options
	}{
		{name: "unknown format", opts: options{format: "gif", output: "out"}},
		{name: "combine without pdf", opts: options{format: "png", combine: true, output: "out"}},
		{name: "open without combine", opts: options{format: "pdf", open: true, output: "out"}},
		{name: "missing dir", opts: options{format: "pdf", output: "out", dirs: []string{"/nonexistent/images"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := buildRequest(&tt.opts, []string{"a.png"})
			assert.Error(t, err)
		})
	}
}

func TestRootCommandCombinesImages(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "one.png")
	second := filepath.Join(dir, "two.png")
	writePNG(t, first)
	writePNG(t, second)
	output := filepath.Join(dir, "out", "album.pdf")

	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"-q", "-f", "pdf", "--combine", "-o", output, first, second})

	require.NoError(t, cmd.Execute())
	assert.FileExists(t, output)
	assert.Contains(t, stdout.String(), "album.pdf")
}

func TestRootCommandOpensCombinedPDF(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "one.png")
	writePNG(t, first)
	output := filepath.Join(dir, "album.pdf")

	var opened []string
	previous := openFile
	openFile = func(path string) error {
		opened = append(opened, path)
		return nil
	}
	t.Cleanup(func() { openFile = previous })

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"-q", "--combine", "--open", "-o", output, first})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, []string{output}, opened)
}

func TestRootCommandRequiresFiles(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"-q", "-o", t.TempDir()})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--help")
}
