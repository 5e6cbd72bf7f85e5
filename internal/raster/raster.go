// Package raster loads source images, classifies their colour mode and
// normalizes them for the output encoders.
package raster

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"io"
	"os"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
)

// ColorMode is the colour layout of a decoded image
type ColorMode string

const (
	ModeRGB     ColorMode = "RGB"
	ModeGray    ColorMode = "L"
	ModeCMYK    ColorMode = "CMYK"
	ModeRGBA    ColorMode = "RGBA"
	ModePalette ColorMode = "P"
)

// Container formats as reported by the image decoders
const (
	FormatPNG  = "png"
	FormatJPEG = "jpeg"
	FormatGIF  = "gif"
	FormatBMP  = "bmp"
	FormatTIFF = "tiff"
	FormatWebP = "webp"
)

// PNG header layout
const (
	pngSignatureLen  = 8
	pngIHDROffset    = pngSignatureLen + 8 // length + chunk type
	pngBitDepthIndex = pngIHDROffset + 8   // after width and height
	pngInterlaceIdx  = pngIHDROffset + 12
)

// Source is a decoded source image
type Source struct {
	Path   string
	Format string
	Image  image.Image
	Mode   ColorMode

	// pngDirect is true for 8-bit non-interlaced PNG data
	pngDirect bool
}

// Load reads and decodes an image file
func Load(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}

	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to detect image format of %s: %w", path, err)
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	src := &Source{
		Path:   path,
		Format: format,
		Image:  img,
		Mode:   ModeOf(img),
	}
	if format == FormatPNG {
		src.pngDirect = isSimplePNG(data)
	}
	return src, nil
}

// Width returns the image width in pixels
func (s *Source) Width() int {
	return s.Image.Bounds().Dx()
}

// Height returns the image height in pixels
func (s *Source) Height() int {
	return s.Image.Bounds().Dy()
}

// NeedsNormalization reports whether the image carries alpha or a palette
func (s *Source) NeedsNormalization() bool {
	return s.Mode == ModeRGBA || s.Mode == ModePalette
}

// PDFEmbeddable reports whether the file can be placed in a PDF as-is
func (s *Source) PDFEmbeddable() bool {
	if s.NeedsNormalization() {
		return false
	}
	switch s.Format {
	case FormatJPEG:
		return true
	case FormatPNG:
		return s.pngDirect
	}
	return false
}

// Normalized returns the image converted to RGB when it needs it, or the
// original image otherwise
func (s *Source) Normalized() image.Image {
	if s.NeedsNormalization() {
		return ToRGB(s.Image)
	}
	return s.Image
}

// ModeOf classifies the colour layout of img
func ModeOf(img image.Image) ColorMode {
	switch m := img.(type) {
	case *image.Paletted:
		return ModePalette
	case *image.Gray, *image.Gray16:
		return ModeGray
	case *image.CMYK:
		return ModeCMYK
	case *image.YCbCr:
		return ModeRGB
	case *image.NRGBA, *image.NRGBA64, *image.NYCbCrA, *image.Alpha, *image.Alpha16:
		return ModeRGBA
	case *image.RGBA:
		if m.Opaque() {
			return ModeRGB
		}
		return ModeRGBA
	case *image.RGBA64:
		if m.Opaque() {
			return ModeRGB
		}
		return ModeRGBA
	}
	return ModeRGBA
}

// ToRGB returns an opaque copy of img. Alpha is dropped, not composited;
// palette entries are expanded.
func ToRGB(img image.Image) *image.NRGBA {
	dst := imaging.Clone(img)
	for i := 3; i < len(dst.Pix); i += 4 {
		dst.Pix[i] = 0xff
	}
	return dst
}

// EncodePNG writes img as PNG
func EncodePNG(w io.Writer, img image.Image) error {
	return imaging.Encode(w, img, imaging.PNG)
}

// Save encodes img to path using the encoder for format ("png" or "jpeg")
func Save(img image.Image, path string, format string) error {
	f, err := imaging.FormatFromExtension(format)
	if err != nil {
		return fmt.Errorf("unsupported output format %q: %w", format, err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := imaging.Encode(file, img, f); err != nil {
		file.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return file.Close()
}

// isSimplePNG reports whether the PNG header declares 8-bit samples and no
// interlacing
func isSimplePNG(data []byte) bool {
	if len(data) <= pngInterlaceIdx {
		return false
	}
	if string(data[pngIHDROffset-4:pngIHDROffset]) != "IHDR" {
		return false
	}
	if binary.BigEndian.Uint32(data[pngIHDROffset:]) == 0 {
		return false
	}
	return data[pngBitDepthIndex] == 8 && data[pngInterlaceIdx] == 0
}
