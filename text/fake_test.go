package text_test

import (
	"unicode"

	"github.com/go-theft-auto/thin/text"
)

// fakeRaster gives every supported character the same box and an advance
// of unit ems. Whitespace rasterizes to nothing.
type fakeRaster struct {
	missing    map[rune]bool
	unit       float32
	vertical   bool // advance down instead of right
	horizontal *text.LineMetrics
	columns    *text.LineMetrics
	rasterized int
}

func newFakeRaster() *fakeRaster {
	lm := text.LineMetrics{Ascent: 8, Descent: -2, LineGap: 2, NewLineSize: 12}
	return &fakeRaster{
		missing:    map[rune]bool{},
		unit:       1,
		horizontal: &lm,
	}
}

func (f *fakeRaster) HasGlyph(r rune) bool { return !f.missing[r] }

func (f *fakeRaster) Rasterize(r rune, scale float32) (text.Metrics, []byte, error) {
	f.rasterized++
	m := text.Metrics{}
	if f.vertical {
		m.AdvanceHeight = f.unit * scale
	} else {
		m.AdvanceWidth = f.unit * scale
	}
	if unicode.IsSpace(r) {
		return m, nil, nil
	}
	m.XMin, m.YMin, m.Width, m.Height = 1, -2, 6, 8
	m.Bounds = text.OutlineBounds{XMin: 1, YMin: -2, Width: 6, Height: 8}
	pix := make([]byte, 6*8)
	for i := 0; i < 6; i++ {
		pix[i] = 0xff // top row
	}
	return m, pix, nil
}

func (f *fakeRaster) HorizontalLineMetrics(float32) (text.LineMetrics, bool) {
	if f.horizontal == nil {
		return text.LineMetrics{}, false
	}
	return *f.horizontal, true
}

func (f *fakeRaster) VerticalLineMetrics(float32) (text.LineMetrics, bool) {
	if f.columns == nil {
		return text.LineMetrics{}, false
	}
	return *f.columns, true
}

func (f *fakeRaster) Chars() []rune { return []rune("abc") }
