package font

import "errors"

// Sentinel errors for the font package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("font: empty font data")
)

// LoadError is returned when font data cannot be parsed.
// It wraps the underlying backend error. Loading is not retried.
type LoadError struct {
	Parser string
	Err    error
}

func (e *LoadError) Error() string {
	return "font: load failed (" + e.Parser + "): " + e.Err.Error()
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
