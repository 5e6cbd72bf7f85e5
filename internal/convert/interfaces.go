package convert

import (
	"github.com/ytget/image-converter/internal/model"
)

// Converter defines the interface for the conversion service.
type Converter interface {
	SetUpdateCallback(func(model.Progress))
	Convert(req model.ConversionRequest) (*model.ConversionRun, error)
	Start(req model.ConversionRequest, onDone func(*model.ConversionRun)) (*model.ConversionRun, error)
	Progress() model.Progress
	IsRunning() bool
}
