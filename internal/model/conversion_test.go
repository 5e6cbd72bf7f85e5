package model

import (
	"testing"
	"time"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
		wantErr  bool
	}{
		{"pdf", FormatPDF, false},
		{"PDF", FormatPDF, false},
		{"png", FormatPNG, false},
		{"jpeg", FormatJPEG, false},
		{"JPG", FormatJPEG, false},
		{" png ", FormatPNG, false},
		{"webp", "", true},
		{"", "", true},
	}

	for _, test := range tests {
		result, err := ParseFormat(test.input)
		if (err != nil) != test.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", test.input, err, test.wantErr)
			continue
		}
		if result != test.expected {
			t.Errorf("ParseFormat(%q) = %s, expected %s", test.input, result, test.expected)
		}
	}
}

func TestFormat_Extension(t *testing.T) {
	if FormatJPEG.Extension() != "jpeg" {
		t.Errorf("Expected jpeg extension, got %s", FormatJPEG.Extension())
	}
	if !FormatPNG.IsValid() || Format("bmp").IsValid() {
		t.Error("IsValid mismatch")
	}
}

func TestConversionRequest_IsCombined(t *testing.T) {
	tests := []struct {
		format   Format
		combine  bool
		expected bool
	}{
		{FormatPDF, true, true},
		{FormatPDF, false, false},
		{FormatPNG, true, false},
		{FormatJPEG, false, false},
	}

	for _, test := range tests {
		req := ConversionRequest{Format: test.format, Combine: test.combine}
		if req.IsCombined() != test.expected {
			t.Errorf("IsCombined() for %s/%v = %v, expected %v", test.format, test.combine, req.IsCombined(), test.expected)
		}
	}
}

func TestProgress_Fraction(t *testing.T) {
	tests := []struct {
		current, total int
		expected       float64
	}{
		{0, 0, 0},
		{0, 4, 0},
		{1, 4, 0.25},
		{4, 4, 1},
		{5, 4, 1},
	}

	for _, test := range tests {
		p := Progress{Current: test.current, Total: test.total}
		if p.Fraction() != test.expected {
			t.Errorf("Fraction() with %d/%d = %v, expected %v", test.current, test.total, p.Fraction(), test.expected)
		}
	}
}

func TestStatusText(t *testing.T) {
	if got := StatusText(PhaseConverting, 2, 5); got != "Converting file 2 of 5" {
		t.Errorf("unexpected status: %s", got)
	}
	if got := StatusText(PhaseIdle, 0, 0); got != "Ready" {
		t.Errorf("unexpected status: %s", got)
	}
}

func TestConversionRun_Duration(t *testing.T) {
	start := time.Now().Add(-2 * time.Second)
	run := &ConversionRun{StartedAt: start, FinishedAt: start.Add(time.Second)}
	if run.Duration() != time.Second {
		t.Errorf("Expected 1s duration, got %v", run.Duration())
	}

	empty := &ConversionRun{}
	if empty.Duration() != 0 {
		t.Errorf("Expected zero duration, got %v", empty.Duration())
	}
}
