package text

import (
	"strings"
	"unicode"

	"github.com/go-theft-auto/thin/gfx"
)

// WrapText inserts line breaks so that words do not run past wrap, given in
// font units (multiples of the scale). Existing line breaks are kept.
//
// Wrapping is greedy and per character. Whitespace that precedes a word
// moved to the next line is dropped, but whitespace already emitted before
// the break stays at the end of the previous line.
func (f *Font) WrapText(text string, wrap float32, facade gfx.Facade) (string, error) {
	wrap *= f.scale

	var (
		lines     strings.Builder
		word      strings.Builder
		space     strings.Builder
		width     float32
		wordWidth float32
	)
	lines.Grow(len(text) + len(text)/8)

	for _, c := range text {
		m, _, err := f.LoadAndGet(c, facade)
		if err != nil {
			return "", err
		}
		advance := m.AdvanceWidth
		if advance == 0 {
			advance = m.AdvanceHeight
		}
		next := width + wordWidth + advance
		white := unicode.IsSpace(c)

		switch {
		case c == '\n':
			lines.WriteString(word.String())
			lines.WriteByte('\n')
			space.Reset()
			word.Reset()
			wordWidth = 0
			width = 0
		case next >= wrap && !white:
			lines.WriteByte('\n')
			word.WriteRune(c)
			space.Reset()
			width = 0
		case white:
			lines.WriteString(word.String())
			width = next
			wordWidth = 0
			word.Reset()
			space.WriteRune(c)
		default:
			lines.WriteString(space.String())
			space.Reset()
			word.WriteRune(c)
			wordWidth += m.AdvanceWidth
		}
	}
	lines.WriteString(word.String())
	return lines.String(), nil
}
