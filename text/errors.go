package text

import (
	"errors"
	"fmt"
)

// ErrNoLineMetrics is returned when the font has neither horizontal nor
// vertical line metrics, so lines cannot be laid out.
var ErrNoLineMetrics = errors.New("text: font has no line metrics")

// InvalidCharError is returned by DrawOnlyValid for a character the font
// has no glyph for.
type InvalidCharError struct {
	Char rune
}

func (e *InvalidCharError) Error() string {
	return fmt.Sprintf("text: font has no glyph for %q (%U)", e.Char, e.Char)
}
