package model

import (
	"fmt"
	"strings"
	"time"
)

// Format is a target output format
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
)

// Formats returns the supported output formats in display order
func Formats() []Format {
	return []Format{FormatPDF, FormatPNG, FormatJPEG}
}

// ParseFormat parses a format name case-insensitively; "jpg" is accepted as JPEG
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "pdf":
		return FormatPDF, nil
	case "png":
		return FormatPNG, nil
	case "jpeg", "jpg":
		return FormatJPEG, nil
	}
	return "", fmt.Errorf("unsupported output format: %q", name)
}

// IsValid reports whether f is one of the supported formats
func (f Format) IsValid() bool {
	switch f {
	case FormatPDF, FormatPNG, FormatJPEG:
		return true
	}
	return false
}

// Extension returns the file extension used for outputs, without the dot
func (f Format) Extension() string {
	return string(f)
}

// ConversionRequest is an immutable description of a single conversion run
type ConversionRequest struct {
	Files       []string // ordered source paths
	Format      Format
	Combine     bool   // only meaningful for PDF
	Destination string // output file when combining, output directory otherwise
}

// IsCombined reports whether the request produces a single combined PDF
func (r ConversionRequest) IsCombined() bool {
	return r.Format == FormatPDF && r.Combine
}

// ConversionRun represents a single execution of the conversion pipeline
type ConversionRun struct {
	ID         string
	Request    ConversionRequest
	State      RunState
	Outputs    []string // written output files, in order
	LastError  string   // last error message if any
	StartedAt  time.Time
	FinishedAt time.Time
}

// Duration returns how long the run took, or time since start while running
func (cr *ConversionRun) Duration() time.Duration {
	if cr.StartedAt.IsZero() {
		return 0
	}
	if cr.FinishedAt.IsZero() {
		return time.Since(cr.StartedAt)
	}
	return cr.FinishedAt.Sub(cr.StartedAt)
}

// Progress is a snapshot of pipeline progress published to subscribers
type Progress struct {
	Current int // files done
	Total   int
	File    int // 1-based file being converted in per-file mode
	Phase   Phase
	Status  string
	State   RunState
}

// Fraction returns Current/Total clamped to [0, 1]
func (p Progress) Fraction() float64 {
	if p.Total <= 0 {
		return 0
	}
	f := float64(p.Current) / float64(p.Total)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// StatusText builds the English status line for a phase
func StatusText(phase Phase, current, total int) string {
	switch phase {
	case PhaseCombining:
		return "Creating combined PDF..."
	case PhaseConverting:
		return fmt.Sprintf("Converting file %d of %d", current, total)
	case PhaseCompleted:
		return "Conversion completed!"
	default:
		return "Ready"
	}
}
