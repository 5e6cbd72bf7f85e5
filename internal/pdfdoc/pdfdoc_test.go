package pdfdoc

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solid(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 40, G: 80, B: 160, A: 255})
		}
	}
	return img
}

func TestDocumentImageFiles(t *testing.T) {
	dir := t.TempDir()

	pngPath := filepath.Join(dir, "a.png")
	var pngData bytes.Buffer
	require.NoError(t, png.Encode(&pngData, solid(120, 80)))
	require.NoError(t, os.WriteFile(pngPath, pngData.Bytes(), 0o644))

	jpgPath := filepath.Join(dir, "b.jpg")
	var jpgData bytes.Buffer
	require.NoError(t, jpeg.Encode(&jpgData, solid(50, 200), nil))
	require.NoError(t, os.WriteFile(jpgPath, jpgData.Bytes(), 0o644))

	doc := New()
	require.NoError(t, doc.AddImageFile(pngPath, ImageTypePNG, 120, 80))
	require.NoError(t, doc.AddImageFile(jpgPath, ImageTypeJPEG, 50, 200))
	assert.Equal(t, 2, doc.PageCount())

	out := filepath.Join(dir, "out.pdf")
	require.NoError(t, doc.Save(out))

	pages, err := CountPages(out)
	require.NoError(t, err)
	assert.Equal(t, 2, pages)

	w, h, err := PageSize(out, 1)
	require.NoError(t, err)
	assert.InDelta(t, 120, w, 0.01)
	assert.InDelta(t, 80, h, 0.01)

	w, h, err = PageSize(out, 2)
	require.NoError(t, err)
	assert.InDelta(t, 50, w, 0.01)
	assert.InDelta(t, 200, h, 0.01)

	_, _, err = PageSize(out, 3)
	assert.Error(t, err)
}

func TestDocumentImageReader(t *testing.T) {
	var data bytes.Buffer
	require.NoError(t, png.Encode(&data, solid(10, 10)))

	doc := New()
	require.NoError(t, doc.AddImageReader("page-1", &data, ImageTypePNG, 10, 10))

	out := filepath.Join(t.TempDir(), "single.pdf")
	require.NoError(t, doc.Save(out))

	pages, err := CountPages(out)
	require.NoError(t, err)
	assert.Equal(t, 1, pages)
}

func TestDocumentErrors(t *testing.T) {
	dir := t.TempDir()

	err := New().Save(filepath.Join(dir, "empty.pdf"))
	assert.Error(t, err, "empty document must not be written")

	doc := New()
	err = doc.AddImageFile(filepath.Join(dir, "missing.png"), ImageTypePNG, 10, 10)
	assert.Error(t, err)
	assert.Equal(t, 0, doc.PageCount())

	err = New().AddImageReader("junk", bytes.NewReader([]byte("junk")), ImageTypePNG, 10, 10)
	assert.Error(t, err)
}

func TestCountPagesInvalid(t *testing.T) {
	dir := t.TempDir()

	_, err := CountPages(filepath.Join(dir, "missing.pdf"))
	assert.Error(t, err)

	bogus := filepath.Join(dir, "bogus.pdf")
	require.NoError(t, os.WriteFile(bogus, []byte("%PDF-1.4\nnot really"), 0o644))
	_, err = CountPages(bogus)
	assert.Error(t, err)
}

func TestImageType(t *testing.T) {
	tests := []struct {
		format   string
		expected string
	}{
		{"jpeg", ImageTypeJPEG},
		{"png", ImageTypePNG},
		{"gif", ImageTypePNG},
		{"", ImageTypePNG},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ImageType(tt.format), "format %q", tt.format)
	}
}
