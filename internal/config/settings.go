package config

import (
	"os"

	"fyne.io/fyne/v2"
	"github.com/ytget/image-converter/internal/model"
	"github.com/ytget/image-converter/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyOutputDir          = "output_directory"
	KeyOutputFormat       = "output_format"
	KeyCombinePDF         = "combine_pdf"
	KeyLanguage           = "app_language"
	KeyRevealOnComplete   = "reveal_on_complete"
	KeyLastInputDirectory = "last_input_directory"
)

// Default values
const (
	DefaultOutputFormat     = model.FormatPDF
	DefaultCombinePDF       = true
	DefaultLanguage         = "system"
	DefaultRevealOnComplete = false
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetOutputDirectory returns the configured output directory
func (s *Settings) GetOutputDirectory() string {
	dir := s.app.Preferences().String(KeyOutputDir)
	if dir == "" {
		defaultDir, err := platform.GetDefaultOutputDir()
		if err != nil {
			defaultDir = os.TempDir()
		}
		s.SetOutputDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetOutputDirectory sets the output directory
func (s *Settings) SetOutputDirectory(dir string) {
	s.app.Preferences().SetString(KeyOutputDir, dir)
}

// GetOutputFormat returns the last used output format
func (s *Settings) GetOutputFormat() model.Format {
	format, err := model.ParseFormat(s.app.Preferences().String(KeyOutputFormat))
	if err != nil {
		s.SetOutputFormat(DefaultOutputFormat)
		return DefaultOutputFormat
	}
	return format
}

// SetOutputFormat sets the output format; unknown formats store the default
func (s *Settings) SetOutputFormat(format model.Format) {
	if !format.IsValid() {
		format = DefaultOutputFormat
	}
	s.app.Preferences().SetString(KeyOutputFormat, string(format))
}

// GetCombinePDF returns whether PDF output is combined into one document
func (s *Settings) GetCombinePDF() bool {
	return s.app.Preferences().BoolWithFallback(KeyCombinePDF, DefaultCombinePDF)
}

// SetCombinePDF sets whether PDF output is combined into one document
func (s *Settings) SetCombinePDF(combine bool) {
	s.app.Preferences().SetBool(KeyCombinePDF, combine)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetRevealOnComplete returns whether to reveal outputs after a successful run
func (s *Settings) GetRevealOnComplete() bool {
	return s.app.Preferences().BoolWithFallback(KeyRevealOnComplete, DefaultRevealOnComplete)
}

// SetRevealOnComplete sets whether to reveal outputs after a successful run
func (s *Settings) SetRevealOnComplete(reveal bool) {
	s.app.Preferences().SetBool(KeyRevealOnComplete, reveal)
}

// GetLastInputDirectory returns the directory files were last picked from,
// or an empty string
func (s *Settings) GetLastInputDirectory() string {
	return s.app.Preferences().String(KeyLastInputDirectory)
}

// SetLastInputDirectory remembers the directory files were last picked from
func (s *Settings) SetLastInputDirectory(dir string) {
	s.app.Preferences().SetString(KeyLastInputDirectory, dir)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
