package text

import (
	"fmt"
	"os"

	"github.com/chewxy/math32"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// OutlineBounds is the box a glyph's bitmap covers, in pixels, with y up
// and the origin on the baseline at the pen position.
type OutlineBounds struct {
	XMin, YMin    float32
	Width, Height float32
}

// Metrics describes one rasterized glyph. Advances are in pixels at the
// scale the glyph was rasterized at.
type Metrics struct {
	XMin, YMin    int
	Width, Height int

	AdvanceWidth  float32
	AdvanceHeight float32

	Bounds OutlineBounds
}

// LineMetrics describes line spacing. Descent is negative below the baseline.
type LineMetrics struct {
	Ascent      float32
	Descent     float32
	LineGap     float32
	NewLineSize float32
}

// Rasterizer turns characters into coverage bitmaps. Implementations need
// not be safe for concurrent use.
type Rasterizer interface {
	HasGlyph(r rune) bool

	// Rasterize renders r at scale pixels per em. The bitmap holds
	// Width*Height coverage bytes, rows running top to bottom.
	Rasterize(r rune, scale float32) (Metrics, []byte, error)

	HorizontalLineMetrics(scale float32) (LineMetrics, bool)
	VerticalLineMetrics(scale float32) (LineMetrics, bool)

	// Chars lists every character the font maps to a glyph.
	Chars() []rune
}

// Settings configure font parsing and rasterization.
type Settings struct {
	// Scale is the size in pixels per em. Zero means DefaultScale.
	Scale float32

	// DPI is passed through to the rasterizer. Zero means 72, so that one
	// point is one pixel.
	DPI float64

	Hinting font.Hinting
}

// DefaultScale is used when Settings.Scale is zero.
const DefaultScale float32 = 40

func (s Settings) withDefaults() Settings {
	if s.Scale == 0 {
		s.Scale = DefaultScale
	}
	if s.DPI == 0 {
		s.DPI = 72
	}
	return s
}

// OpenTypeRasterizer rasterizes TrueType and OpenType fonts with
// golang.org/x/image/font/opentype. OpenType fonts carry no vertical line
// metrics through that package, so only horizontal metrics are reported.
type OpenTypeRasterizer struct {
	font     *opentype.Font
	settings Settings
	buf      sfnt.Buffer

	// Faces are built per size; the last one is kept.
	face      font.Face
	faceScale float32
}

// NewOpenTypeRasterizer parses font data.
func NewOpenTypeRasterizer(data []byte, s Settings) (*OpenTypeRasterizer, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	o := &OpenTypeRasterizer{font: f, settings: s.withDefaults()}
	if _, err := o.faceAt(o.settings.Scale); err != nil {
		return nil, err
	}
	return o, nil
}

// OpenOpenTypeRasterizer reads and parses a font file.
func OpenOpenTypeRasterizer(path string, s Settings) (*OpenTypeRasterizer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open font: %w", err)
	}
	return NewOpenTypeRasterizer(data, s)
}

func (o *OpenTypeRasterizer) faceAt(scale float32) (font.Face, error) {
	if o.face != nil && o.faceScale == scale {
		return o.face, nil
	}
	face, err := opentype.NewFace(o.font, &opentype.FaceOptions{
		Size:    float64(scale),
		DPI:     o.settings.DPI,
		Hinting: o.settings.Hinting,
	})
	if err != nil {
		return nil, fmt.Errorf("font face at %g: %w", scale, err)
	}
	if o.face != nil {
		o.face.Close()
	}
	o.face, o.faceScale = face, scale
	return face, nil
}

func (o *OpenTypeRasterizer) HasGlyph(r rune) bool {
	i, err := o.font.GlyphIndex(&o.buf, r)
	return err == nil && i != 0
}

func (o *OpenTypeRasterizer) Rasterize(r rune, scale float32) (Metrics, []byte, error) {
	face, err := o.faceAt(scale)
	if err != nil {
		return Metrics{}, nil, err
	}
	dr, mask, maskp, advance, ok := face.Glyph(fixed.Point26_6{}, r)
	if !ok {
		return Metrics{}, nil, fmt.Errorf("rasterize %q: no glyph", r)
	}
	m := Metrics{
		XMin:         dr.Min.X,
		YMin:         -dr.Max.Y,
		Width:        dr.Dx(),
		Height:       dr.Dy(),
		AdvanceWidth: fixedToFloat32(advance),
	}
	m.Bounds = OutlineBounds{
		XMin:   float32(m.XMin),
		YMin:   float32(m.YMin),
		Width:  float32(m.Width),
		Height: float32(m.Height),
	}
	if m.Width == 0 || m.Height == 0 {
		m.Width, m.Height = 0, 0
		return m, nil, nil
	}
	coverage := make([]byte, 0, m.Width*m.Height)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			_, _, _, a := mask.At(maskp.X+x, maskp.Y+y).RGBA()
			coverage = append(coverage, byte(a>>8))
		}
	}
	return m, coverage, nil
}

func (o *OpenTypeRasterizer) HorizontalLineMetrics(scale float32) (LineMetrics, bool) {
	face, err := o.faceAt(scale)
	if err != nil {
		return LineMetrics{}, false
	}
	fm := face.Metrics()
	ascent := fixedToFloat32(fm.Ascent)
	descent := -fixedToFloat32(fm.Descent)
	height := fixedToFloat32(fm.Height)
	return LineMetrics{
		Ascent:      ascent,
		Descent:     descent,
		LineGap:     math32.Max(height-(ascent-descent), 0),
		NewLineSize: height,
	}, true
}

func (o *OpenTypeRasterizer) VerticalLineMetrics(float32) (LineMetrics, bool) {
	return LineMetrics{}, false
}

// Chars scans the Basic Multilingual Plane. Supplementary planes are not
// listed.
func (o *OpenTypeRasterizer) Chars() []rune {
	var chars []rune
	for r := rune(0x20); r <= 0xFFFF; r++ {
		if r >= 0xD800 && r <= 0xDFFF {
			continue
		}
		if o.HasGlyph(r) {
			chars = append(chars, r)
		}
	}
	return chars
}

func fixedToFloat32(x fixed.Int26_6) float32 {
	return float32(x) / 64
}
