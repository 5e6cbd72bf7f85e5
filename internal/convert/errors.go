package convert

import (
	"errors"
	"fmt"
)

var (
	// ErrNoFiles is returned when a request has no source files
	ErrNoFiles = errors.New("no files selected")
	// ErrNoDestination is returned when a request has no output location
	ErrNoDestination = errors.New("no destination selected")
	// ErrUnsupportedFormat is returned for unknown output formats
	ErrUnsupportedFormat = errors.New("unsupported output format")
	// ErrBusy is returned when a conversion is already running
	ErrBusy = errors.New("conversion already in progress")
)

// ConversionError reports the file a conversion failed on
type ConversionError struct {
	Path string
	Err  error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("failed to convert %s: %v", e.Path, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// IsUserInputError reports whether err was caused by an incomplete request
// rather than by a failure during conversion
func IsUserInputError(err error) bool {
	return errors.Is(err, ErrNoFiles) || errors.Is(err, ErrNoDestination)
}
