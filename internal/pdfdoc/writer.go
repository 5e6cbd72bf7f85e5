package pdfdoc

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
)

// Creator is written to the document info dictionary
const Creator = "Image Converter"

// Image types understood by the writer
const (
	ImageTypePNG  = "PNG"
	ImageTypeJPEG = "JPG"
)

// ImageType returns the writer image type for a decoder format name
// ("jpeg", "png"). Anything else is embedded as PNG data.
func ImageType(format string) string {
	if format == "jpeg" {
		return ImageTypeJPEG
	}
	return ImageTypePNG
}

// Document is a PDF under construction with one image per page
type Document struct {
	pdf   *fpdf.Fpdf
	pages int
}

// New creates an empty document
func New() *Document {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		SizeStr:        "A4",
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCreator(Creator, true)
	return &Document{pdf: pdf}
}

// AddImageFile appends a page of w x h points showing the image at path.
// The file is read immediately.
func (d *Document) AddImageFile(path, imageType string, w, h float64) error {
	d.addPage(w, h)
	d.pdf.ImageOptions(path, 0, 0, w, h, false, fpdf.ImageOptions{ImageType: imageType}, 0, "")
	if err := d.pdf.Error(); err != nil {
		return fmt.Errorf("failed to add image %s: %w", path, err)
	}
	d.pages++
	return nil
}

// AddImageReader appends a page showing the image read from r. name must be
// unique within the document.
func (d *Document) AddImageReader(name string, r io.Reader, imageType string, w, h float64) error {
	opts := fpdf.ImageOptions{ImageType: imageType}
	d.pdf.RegisterImageOptionsReader(name, opts, r)
	if err := d.pdf.Error(); err != nil {
		return fmt.Errorf("failed to register image %s: %w", name, err)
	}

	d.addPage(w, h)
	d.pdf.ImageOptions(name, 0, 0, w, h, false, opts, 0, "")
	if err := d.pdf.Error(); err != nil {
		return fmt.Errorf("failed to add image %s: %w", name, err)
	}
	d.pages++
	return nil
}

// PageCount returns the number of pages added so far
func (d *Document) PageCount() int {
	return d.pages
}

// Save writes the document to path and closes it
func (d *Document) Save(path string) error {
	if d.pages == 0 {
		return fmt.Errorf("document has no pages")
	}
	if err := d.pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("failed to write PDF %s: %w", path, err)
	}
	return nil
}

func (d *Document) addPage(w, h float64) {
	d.pdf.AddPageFormat("P", fpdf.SizeType{Wd: w, Ht: h})
}
