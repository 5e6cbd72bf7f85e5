package convert

import (
	"errors"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"

	"github.com/ytget/image-converter/internal/pdfdoc"
	"github.com/ytget/image-converter/internal/platform"
	"github.com/ytget/image-converter/internal/raster"
)

// Side-car files hold normalized copies of images for the combined PDF
const (
	SidecarPrefix      = "temp_"
	maxSidecarAttempts = 100
	sidecarPermissions = 0o644
)

// combine writes all files as pages of one PDF at dest
func (s *Service) combine(files []string, dest string) ([]string, error) {
	dir := filepath.Dir(dest)
	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		return nil, &ConversionError{Path: dest, Err: fmt.Errorf("failed to create output directory: %w", err)}
	}

	sidecars := newSidecarSet(dir)
	defer sidecars.removeAll()

	doc := pdfdoc.New()
	for _, path := range files {
		src, err := raster.Load(path)
		if err != nil {
			return nil, &ConversionError{Path: path, Err: err}
		}

		pagePath, imageType := path, pdfdoc.ImageType(src.Format)
		if !src.PDFEmbeddable() {
			pagePath, err = sidecars.write(path, src.Normalized())
			if err != nil {
				return nil, &ConversionError{Path: path, Err: err}
			}
			imageType = pdfdoc.ImageTypePNG
		}

		if err := doc.AddImageFile(pagePath, imageType, float64(src.Width()), float64(src.Height())); err != nil {
			return nil, &ConversionError{Path: path, Err: err}
		}
	}

	if err := doc.Save(dest); err != nil {
		return nil, &ConversionError{Path: dest, Err: err}
	}

	verifyPageCount(dest, len(files))
	return []string{dest}, nil
}

// verifyPageCount logs when the written PDF does not hold one page per file
func verifyPageCount(path string, expected int) {
	pages, err := pdfdoc.CountPages(path)
	if err != nil {
		log.Printf("Failed to verify page count of %s: %v", path, err)
		return
	}
	if pages != expected {
		log.Printf("Page count mismatch in %s: expected %d, got %d", path, expected, pages)
	}
}

// sidecarSet tracks the side-car files created during one combined run
type sidecarSet struct {
	dir   string
	paths []string
}

func newSidecarSet(dir string) *sidecarSet {
	return &sidecarSet{dir: dir}
}

// write encodes img as PNG into a new side-car named after source. Existing
// files are never overwritten.
func (ss *sidecarSet) write(source string, img image.Image) (string, error) {
	file, path, err := ss.create(filepath.Base(source))
	if err != nil {
		return "", err
	}

	// Track before encoding so a partial file is removed too
	ss.paths = append(ss.paths, path)

	if err := raster.EncodePNG(file, img); err != nil {
		file.Close()
		return "", fmt.Errorf("failed to write temporary image %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("failed to close temporary image %s: %w", path, err)
	}
	return path, nil
}

func (ss *sidecarSet) create(base string) (*os.File, string, error) {
	for attempt := 0; attempt < maxSidecarAttempts; attempt++ {
		path := filepath.Join(ss.dir, sidecarName(base, attempt))
		file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, sidecarPermissions)
		if err == nil {
			return file, path, nil
		}
		if !errors.Is(err, os.ErrExist) {
			return nil, "", fmt.Errorf("failed to create temporary image: %w", err)
		}
	}
	return nil, "", fmt.Errorf("failed to create temporary image for %s: too many name clashes", base)
}

// removeAll deletes every tracked side-car; failures are only logged
func (ss *sidecarSet) removeAll() {
	for _, path := range ss.paths {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			log.Printf("Failed to remove temporary file %s: %v", path, err)
		}
	}
	ss.paths = nil
}

func sidecarName(base string, attempt int) string {
	if attempt == 0 {
		return SidecarPrefix + base
	}
	return fmt.Sprintf("%s%d_%s", SidecarPrefix, attempt, base)
}
