package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/ytget/image-converter/internal/model"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestOutputDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	dir := settings.GetOutputDirectory()
	if dir == "" {
		t.Error("Output directory should not be empty")
	}
	if stored := app.Preferences().String(KeyOutputDir); stored != dir {
		t.Errorf("Expected default to be stored, got %q", stored)
	}

	customDir := "/custom/output"
	settings.SetOutputDirectory(customDir)

	if got := settings.GetOutputDirectory(); got != customDir {
		t.Errorf("Expected output directory %s, got %s", customDir, got)
	}
}

func TestOutputFormat(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if format := settings.GetOutputFormat(); format != DefaultOutputFormat {
		t.Errorf("Expected default format %s, got %s", DefaultOutputFormat, format)
	}

	settings.SetOutputFormat(model.FormatJPEG)
	if format := settings.GetOutputFormat(); format != model.FormatJPEG {
		t.Errorf("Expected format %s, got %s", model.FormatJPEG, format)
	}

	// Unknown values fall back to the default
	settings.SetOutputFormat("webp")
	if format := settings.GetOutputFormat(); format != DefaultOutputFormat {
		t.Errorf("Expected default format after invalid value, got %s", format)
	}

	app.Preferences().SetString(KeyOutputFormat, "garbage")
	if format := settings.GetOutputFormat(); format != DefaultOutputFormat {
		t.Errorf("Expected default format for corrupt preference, got %s", format)
	}
}

func TestCombinePDF(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetCombinePDF() != DefaultCombinePDF {
		t.Errorf("Expected default combine %v", DefaultCombinePDF)
	}

	settings.SetCombinePDF(false)
	if settings.GetCombinePDF() {
		t.Error("Expected combine to be disabled")
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if lang := settings.GetLanguage(); lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	settings.SetLanguage("ru")
	if lang := settings.GetLanguage(); lang != "ru" {
		t.Errorf("Expected language ru, got %s", lang)
	}
}

func TestRevealOnComplete(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetRevealOnComplete() != DefaultRevealOnComplete {
		t.Errorf("Expected default reveal %v", DefaultRevealOnComplete)
	}

	settings.SetRevealOnComplete(true)
	if !settings.GetRevealOnComplete() {
		t.Error("Expected reveal to be enabled")
	}
}

func TestLastInputDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if dir := settings.GetLastInputDirectory(); dir != "" {
		t.Errorf("Expected empty last input directory, got %s", dir)
	}

	settings.SetLastInputDirectory("/photos")
	if dir := settings.GetLastInputDirectory(); dir != "/photos" {
		t.Errorf("Expected /photos, got %s", dir)
	}
}

func TestGetLanguageOptions(t *testing.T) {
	settings := NewSettings(test.NewApp())
	options := settings.GetLanguageOptions()

	for _, key := range []string{"system", "en", "ru", "pt"} {
		if _, ok := options[key]; !ok {
			t.Errorf("Expected language option %s", key)
		}
	}
}
