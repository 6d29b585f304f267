package text_test

import (
	"strings"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/go-theft-auto/thin/gfx"
	"github.com/go-theft-auto/thin/gfx/gfxtest"
	"github.com/go-theft-auto/thin/text"
)

func TestResizeWithinEpsilonKeepsCache(t *testing.T) {
	facade := &gfxtest.Facade{}
	f := text.New(newFakeRaster(), 40)

	_, _, err := f.LoadAndGet('a', facade)
	require.NoError(t, err)
	require.Equal(t, 1, f.Loaded())

	f.Resize(40 + 1e-7)
	assert.Equal(t, 1, f.Loaded())
	assert.Equal(t, float32(40), f.Scale())

	f.Resize(20)
	assert.Equal(t, 0, f.Loaded())
	assert.Equal(t, float32(20), f.Scale())
	assert.True(t, facade.Textures[0].Deleted, "cleared glyphs release their textures")
}

func TestResizeByOneULPAtUnitScale(t *testing.T) {
	f := text.New(newFakeRaster(), 1)
	_, _, err := f.LoadAndGet('a', &gfxtest.Facade{})
	require.NoError(t, err)

	next := math32.Nextafter(1, 2)
	f.Resize(next)
	assert.Equal(t, 1, f.Loaded(), "one float32 step is within epsilon")
	assert.Equal(t, float32(1), f.Scale())

	f.Resize(math32.Nextafter(next, 2))
	assert.Equal(t, 0, f.Loaded())
}

func TestResizeStoresScaleExactly(t *testing.T) {
	f := text.New(newFakeRaster(), 40)
	f.Resize(40.5)
	assert.Equal(t, float32(40.5), f.Scale())
}

func TestLoadAndGetCaches(t *testing.T) {
	r := newFakeRaster()
	facade := &gfxtest.Facade{}
	f := text.New(r, 10)

	m, tex, err := f.LoadAndGet('a', facade)
	require.NoError(t, err)
	require.NotNil(t, tex)
	assert.Equal(t, float32(10), m.AdvanceWidth)
	assert.Equal(t, gfx.FormatR8, tex.Format())

	_, again, err := f.LoadAndGet('a', facade)
	require.NoError(t, err)
	assert.Same(t, tex, again)
	assert.Equal(t, 1, r.rasterized)
}

func TestGlyphRowsAreUploadedBottomUp(t *testing.T) {
	facade := &gfxtest.Facade{}
	f := text.New(newFakeRaster(), 10)
	_, _, err := f.LoadAndGet('a', facade)
	require.NoError(t, err)

	pix := facade.Textures[0].Desc.Pixels
	require.Len(t, pix, 6*8)
	assert.Equal(t, byte(0), pix[0])
	assert.Equal(t, byte(0xff), pix[len(pix)-1])
}

func TestWhitespaceHasNoTexture(t *testing.T) {
	facade := &gfxtest.Facade{}
	f := text.New(newFakeRaster(), 10)

	m, tex, err := f.LoadAndGet(' ', facade)
	require.NoError(t, err)
	assert.Nil(t, tex)
	assert.Equal(t, float32(10), m.AdvanceWidth)
	assert.Empty(t, facade.Textures)

	g, ok := f.TryGet(' ')
	assert.True(t, ok, "zero-width glyphs are cached too")
	assert.Nil(t, g.Texture)
}

func TestMissingCharUsesReplacement(t *testing.T) {
	r := newFakeRaster()
	r.missing['x'] = true
	facade := &gfxtest.Facade{}
	f := text.New(r, 10)

	_, tex, err := f.LoadAndGet('x', facade)
	require.NoError(t, err)
	require.NotNil(t, tex)

	g, ok := f.TryGet(text.ReplacementChar)
	require.True(t, ok)
	assert.Same(t, tex, g.Texture)
}

func TestMissingCharWithoutReplacementIsEmpty(t *testing.T) {
	r := newFakeRaster()
	r.missing['x'] = true
	r.missing[text.ReplacementChar] = true
	f := text.New(r, 10)

	m, tex, err := f.LoadAndGet('x', &gfxtest.Facade{})
	require.NoError(t, err)
	assert.Nil(t, tex)
	assert.Equal(t, text.Metrics{}, m)
}

func TestTextureFailureIsReturned(t *testing.T) {
	f := text.New(newFakeRaster(), 10)
	_, _, err := f.LoadAndGet('a', &gfxtest.Facade{Fail: true})
	require.ErrorIs(t, err, gfxtest.ErrInjected)
	assert.Equal(t, 0, f.Loaded())
}

func TestLoadAllAndClear(t *testing.T) {
	facade := &gfxtest.Facade{}
	f := text.New(newFakeRaster(), 10)
	require.NoError(t, f.LoadAll(facade))
	assert.Equal(t, 3, f.Loaded())

	f.ClearLoaded()
	assert.Equal(t, 0, f.Loaded())
	assert.Equal(t, 0, facade.Live())
}

func TestFormatTextExpandsTabs(t *testing.T) {
	f := text.New(newFakeRaster(), 10)
	out, err := f.FormatText("hello\tworld", 0, 4, &gfxtest.Facade{})
	require.NoError(t, err)
	assert.Equal(t, "hello    world", out)

	out, err = f.FormatText("\ta\t\tb", 0, 2, &gfxtest.Facade{})
	require.NoError(t, err)
	assert.Equal(t, "  a    b", out)
}

func TestFormatTextWithoutWrapKeepsLongLines(t *testing.T) {
	f := text.New(newFakeRaster(), 1)
	long := strings.Repeat("word ", 50)
	out, err := f.FormatText(long, 0, 4, &gfxtest.Facade{})
	require.NoError(t, err)
	assert.Equal(t, long, out)
}

func TestWrapText(t *testing.T) {
	f := text.New(newFakeRaster(), 1)
	facade := &gfxtest.Facade{}

	out, err := f.FormatText("hello world foo", 10, 4, facade)
	require.NoError(t, err)
	assert.Equal(t, "hello \nworld foo", out, "whitespace emitted before the break stays")

	out, err = f.WrapText("a\nb", 10, facade)
	require.NoError(t, err)
	assert.Equal(t, "a\nb", out)
}

func TestWrapTextUsesFontUnits(t *testing.T) {
	f := text.New(newFakeRaster(), 2)
	out, err := f.WrapText("hello world foo", 10, &gfxtest.Facade{})
	require.NoError(t, err)
	assert.Equal(t, "hello \nworld foo", out, "wrap and advances both scale with the font")
}

func TestWrapTextIntroducesNoFurtherBreaks(t *testing.T) {
	f := text.New(newFakeRaster(), 1)
	facade := &gfxtest.Facade{}

	once, err := f.WrapText("hello world foo", 10, facade)
	require.NoError(t, err)
	twice, err := f.WrapText(once, 10, facade)
	require.NoError(t, err)
	assert.Equal(t, strings.Count(once, "\n"), strings.Count(twice, "\n"))

	thrice, err := f.WrapText(twice, 10, facade)
	require.NoError(t, err)
	assert.Equal(t, twice, thrice)
}

func TestWrapTextWordWidthBound(t *testing.T) {
	f := text.New(newFakeRaster(), 1)
	out, err := f.WrapText("the quick brown fox jumps over the lazy dog", 10, &gfxtest.Facade{})
	require.NoError(t, err)
	assert.Equal(t, "the quick\nbrown fox\njumps over\nthe lazy \ndog", out)
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, len(strings.TrimSpace(line)), 10, line)
	}
}

func TestWrapTextNeverBreaksInsideLongWord(t *testing.T) {
	f := text.New(newFakeRaster(), 1)
	out, err := f.WrapText("abcdefghijklmnop", 4, &gfxtest.Facade{})
	require.NoError(t, err)
	// Every character past the limit emits a break ahead of the word.
	assert.Equal(t, strings.Repeat("\n", 13)+"abcdefghijklmnop", out)
}

func TestGoRegular(t *testing.T) {
	f, err := text.Parse(goregular.TTF, text.Settings{Scale: 32})
	require.NoError(t, err)
	facade := &gfxtest.Facade{}

	assert.True(t, f.HasGlyph('a'))
	m, tex, err := f.LoadAndGet('a', facade)
	require.NoError(t, err)
	require.NotNil(t, tex)
	w, h := tex.Size()
	assert.Equal(t, m.Width, w)
	assert.Equal(t, m.Height, h)
	assert.Greater(t, m.AdvanceWidth, float32(0))

	m, tex, err = f.LoadAndGet(' ', facade)
	require.NoError(t, err)
	assert.Nil(t, tex)
	assert.Greater(t, m.AdvanceWidth, float32(0))

	lm, ok := f.HorizontalMetrics()
	require.True(t, ok)
	assert.Greater(t, lm.Ascent, float32(0))
	assert.Less(t, lm.Descent, float32(0))
	assert.Greater(t, lm.NewLineSize, float32(0))

	_, ok = f.VerticalMetrics()
	assert.False(t, ok)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := text.Parse([]byte("not a font"), text.Settings{})
	assert.Error(t, err)

	_, err = text.FromScaleAndFile(12, "does/not/exist.ttf")
	assert.Error(t, err)
}
