package ui

import "testing"

func TestLocalizationFallback(t *testing.T) {
	l := NewLocalization()

	if l.GetText(KeyConvert) != "Convert" {
		t.Errorf("Expected English text, got %q", l.GetText(KeyConvert))
	}

	l.SetLanguage("pt")
	if l.GetCurrentLanguage() != "pt" {
		t.Errorf("Expected pt, got %s", l.GetCurrentLanguage())
	}
	if l.GetText(KeyConvert) != "Converter" {
		t.Errorf("Expected Portuguese text, got %q", l.GetText(KeyConvert))
	}

	// Unknown languages are ignored, system maps to English
	l.SetLanguage("xx")
	if l.GetCurrentLanguage() != "pt" {
		t.Errorf("Expected language to stay pt, got %s", l.GetCurrentLanguage())
	}
	l.SetLanguage("system")
	if l.GetCurrentLanguage() != "en" {
		t.Errorf("Expected en for system, got %s", l.GetCurrentLanguage())
	}

	if l.GetText("missing_key") != "missing_key" {
		t.Error("Expected unknown key to be returned as is")
	}
}

func TestLocalizationFormat(t *testing.T) {
	l := NewLocalization()

	if got := l.Format(KeyStatusConverting, 2, 5); got != "Converting file 2 of 5" {
		t.Errorf("Unexpected status text %q", got)
	}

	l.SetLanguage("ru")
	if got := l.Format(KeyErrorOccurred, "boom"); got != "Произошла ошибка: boom" {
		t.Errorf("Unexpected error text %q", got)
	}
}

func TestLocalizationComplete(t *testing.T) {
	l := NewLocalization()
	english := l.texts["en"]

	for lang := range l.GetAvailableLanguages() {
		texts, ok := l.texts[lang]
		if !ok {
			t.Errorf("Missing texts for %s", lang)
			continue
		}
		for key := range english {
			if _, ok := texts[key]; !ok {
				t.Errorf("Language %s is missing key %s", lang, key)
			}
		}
	}
}
