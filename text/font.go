// Package text lays out and draws proportional text. A Font rasterizes
// characters on demand and caches one coverage texture per character; a
// Renderer draws each glyph as a scaled unit quad.
package text

import (
	"fmt"
	"strings"

	"github.com/chewxy/math32"

	"github.com/go-theft-auto/thin/gfx"
	"github.com/go-theft-auto/thin/internal/logging"
)

var textLogger = logging.New("text")

// ReplacementChar is drawn in place of characters the font lacks.
const ReplacementChar = '\uFFFD'

// Glyph is a cached character. Texture is nil for glyphs with no pixels,
// such as spaces.
type Glyph struct {
	Metrics Metrics
	Texture gfx.Texture
}

// Font is a rasterizer plus a glyph cache valid for one scale.
// A Font is not safe for concurrent use.
type Font struct {
	scale  float32
	raster Rasterizer
	glyphs map[rune]Glyph
}

// New wraps a rasterizer. scale is in pixels per em.
func New(r Rasterizer, scale float32) *Font {
	return &Font{scale: scale, raster: r, glyphs: make(map[rune]Glyph)}
}

// Parse builds a font from TrueType or OpenType data.
func Parse(data []byte, s Settings) (*Font, error) {
	r, err := NewOpenTypeRasterizer(data, s)
	if err != nil {
		return nil, err
	}
	return New(r, r.settings.Scale), nil
}

// Open reads a TrueType or OpenType file.
func Open(path string, s Settings) (*Font, error) {
	r, err := OpenOpenTypeRasterizer(path, s)
	if err != nil {
		return nil, err
	}
	return New(r, r.settings.Scale), nil
}

// FromScaleAndFile opens a font file with default settings at the given scale.
func FromScaleAndFile(scale float32, path string) (*Font, error) {
	return Open(path, Settings{Scale: scale})
}

// Scale returns the size glyphs are rasterized at, in pixels per em.
func (f *Font) Scale() float32 { return f.scale }

// Resize changes the rasterization scale, typically when the window
// resolution changes. The cache is cleared unless the scale is unchanged
// to within float32 epsilon. For several sizes at once, use several fonts.
func (f *Font) Resize(scale float32) {
	if math32.Abs(scale-f.scale) <= epsilon {
		return
	}
	f.ClearLoaded()
	f.scale = scale
}

// epsilon is the difference between 1 and the next float32.
var epsilon = math32.Nextafter(1, 2) - 1

// HasGlyph reports whether the font maps r to a glyph.
func (f *Font) HasGlyph(r rune) bool { return f.raster.HasGlyph(r) }

// CharData rasterizes r and uploads its coverage without caching it.
// Prefer LoadAndGet.
func (f *Font) CharData(r rune, facade gfx.Facade) (Metrics, gfx.Texture, error) {
	m, coverage, err := f.raster.Rasterize(r, f.scale)
	if err != nil {
		return Metrics{}, nil, err
	}
	if m.Width == 0 || m.Height == 0 {
		return m, nil, nil
	}
	tex, err := facade.NewTexture(gfx.TextureDesc{
		Width:  m.Width,
		Height: m.Height,
		Format: gfx.FormatR8,
		Pixels: flipRows(coverage, m.Width),
	})
	if err != nil {
		return Metrics{}, nil, fmt.Errorf("glyph texture for %q: %w", r, err)
	}
	return m, tex, nil
}

// flipRows reorders a top-to-bottom bitmap bottom to top.
func flipRows(pix []byte, width int) []byte {
	out := make([]byte, len(pix))
	rows := len(pix) / width
	for y := 0; y < rows; y++ {
		copy(out[(rows-1-y)*width:(rows-y)*width], pix[y*width:(y+1)*width])
	}
	return out
}

// LoadChar rasterizes r into the cache, replacing any cached copy.
// Characters the font lacks are ignored.
func (f *Font) LoadChar(r rune, facade gfx.Facade) error {
	if !f.raster.HasGlyph(r) {
		return nil
	}
	m, tex, err := f.CharData(r, facade)
	if err != nil {
		return err
	}
	if old, ok := f.glyphs[r]; ok && old.Texture != nil {
		old.Texture.Delete()
	}
	f.glyphs[r] = Glyph{Metrics: m, Texture: tex}
	return nil
}

// LoadAll caches every character in the font. This is slow and holds a
// texture per character; most programs should let LoadAndGet fill the
// cache on demand.
func (f *Font) LoadAll(facade gfx.Facade) error {
	for _, r := range f.raster.Chars() {
		if err := f.LoadChar(r, facade); err != nil {
			return err
		}
	}
	return nil
}

// TryGet returns the cached glyph for r, or for ReplacementChar if the
// font lacks r. ok is false if it is not loaded.
func (f *Font) TryGet(r rune) (Glyph, bool) {
	if !f.raster.HasGlyph(r) {
		r = ReplacementChar
	}
	g, ok := f.glyphs[r]
	return g, ok
}

// LoadAndGet returns the metrics and texture for r, loading them on a
// cache miss. A character the font lacks is drawn as ReplacementChar; if
// the font lacks that too, zero metrics and a nil texture are returned.
func (f *Font) LoadAndGet(r rune, facade gfx.Facade) (Metrics, gfx.Texture, error) {
	if g, ok := f.TryGet(r); ok {
		return g.Metrics, g.Texture, nil
	}
	load := r
	if !f.raster.HasGlyph(r) {
		textLogger.Debug("substituting missing glyph", "char", string(r), "code", fmt.Sprintf("%U", r))
		load = ReplacementChar
	}
	if err := f.LoadChar(load, facade); err != nil {
		return Metrics{}, nil, err
	}
	g, _ := f.TryGet(r)
	return g.Metrics, g.Texture, nil
}

// FormatText replaces each tab with tabIndent spaces and, when wrap is
// positive, wraps the result with WrapText.
func (f *Font) FormatText(text string, wrap float32, tabIndent int, facade gfx.Facade) (string, error) {
	text = strings.ReplaceAll(text, "\t", strings.Repeat(" ", max(tabIndent, 0)))
	if wrap <= 0 {
		return text, nil
	}
	return f.WrapText(text, wrap, facade)
}

// ClearLoaded empties the cache and deletes its textures.
func (f *Font) ClearLoaded() {
	for _, g := range f.glyphs {
		if g.Texture != nil {
			g.Texture.Delete()
		}
	}
	clear(f.glyphs)
}

// Loaded returns the number of cached glyphs.
func (f *Font) Loaded() int { return len(f.glyphs) }

// HorizontalMetrics returns line spacing for horizontal text, scaled.
func (f *Font) HorizontalMetrics() (LineMetrics, bool) {
	return f.raster.HorizontalLineMetrics(f.scale)
}

// VerticalMetrics returns line spacing for vertical text, scaled.
func (f *Font) VerticalMetrics() (LineMetrics, bool) {
	return f.raster.VerticalLineMetrics(f.scale)
}
