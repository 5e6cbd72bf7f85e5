package convert

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/ytget/image-converter/internal/model"
	"github.com/ytget/image-converter/internal/pdfdoc"
	"github.com/ytget/image-converter/internal/platform"
	"github.com/ytget/image-converter/internal/raster"
)

// convertEach writes one output per source file into dir
func (s *Service) convertEach(files []string, format model.Format, dir string) ([]string, error) {
	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		return nil, &ConversionError{Path: dir, Err: fmt.Errorf("failed to create output directory: %w", err)}
	}

	total := len(files)
	outputs := make([]string, 0, total)
	for i, path := range files {
		status := model.StatusText(model.PhaseConverting, i+1, total)
		s.publish(model.Progress{Current: i, Total: total, File: i + 1, Phase: model.PhaseConverting, Status: status})

		outputPath := OutputPath(path, format, dir)
		if err := convertFile(path, format, outputPath); err != nil {
			return outputs, &ConversionError{Path: path, Err: err}
		}
		outputs = append(outputs, outputPath)

		s.publish(model.Progress{Current: i + 1, Total: total, File: i + 1, Phase: model.PhaseConverting, Status: status})
	}
	return outputs, nil
}

// OutputPath returns where the per-file output for source is written
func OutputPath(source string, format model.Format, dir string) string {
	return filepath.Join(dir, platform.FileStem(source)+"."+format.Extension())
}

func convertFile(source string, format model.Format, outputPath string) error {
	src, err := raster.Load(source)
	if err != nil {
		return err
	}

	if format == model.FormatPDF {
		return writeSinglePagePDF(src, outputPath)
	}
	return raster.Save(src.Normalized(), outputPath, format.Extension())
}

// writeSinglePagePDF embeds the original file when possible and an RGB PNG
// rendition otherwise
func writeSinglePagePDF(src *raster.Source, outputPath string) error {
	doc := pdfdoc.New()
	w, h := float64(src.Width()), float64(src.Height())

	if src.PDFEmbeddable() {
		if err := doc.AddImageFile(src.Path, pdfdoc.ImageType(src.Format), w, h); err != nil {
			return err
		}
	} else {
		var buf bytes.Buffer
		if err := raster.EncodePNG(&buf, src.Normalized()); err != nil {
			return fmt.Errorf("failed to encode image: %w", err)
		}
		if err := doc.AddImageReader(src.Path, &buf, pdfdoc.ImageTypePNG, w, h); err != nil {
			return err
		}
	}

	return doc.Save(outputPath)
}
