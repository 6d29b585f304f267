package text_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/thin/gfx"
	"github.com/go-theft-auto/thin/gfx/gfxtest"
	"github.com/go-theft-auto/thin/text"
)

func newRenderer(t *testing.T) (*text.Renderer, *gfxtest.Facade) {
	t.Helper()
	facade := &gfxtest.Facade{}
	r, err := text.NewRenderer(facade)
	require.NoError(t, err)
	return r, facade
}

func translation(t *testing.T, call gfxtest.DrawCall) mgl32.Vec2 {
	t.Helper()
	m, ok := call.Uniforms["model"].(mgl32.Mat4)
	require.True(t, ok)
	return m.Col(3).Vec2()
}

func draw(t *testing.T, r *text.Renderer, s string, font *text.Font) *gfxtest.Surface {
	t.Helper()
	surface := &gfxtest.Surface{Width: 100, Height: 100}
	require.NoError(t, r.Draw(s, mgl32.Vec3{1, 0, 0}, surface, mgl32.Ident4(), mgl32.Ident4(), mgl32.Ident4(), font))
	return surface
}

func TestNewRendererBuildsQuadAndShader(t *testing.T) {
	r, facade := newRenderer(t)
	require.Len(t, facade.Meshes, 1)
	require.Len(t, facade.Programs, 1)
	assert.Equal(t, gfx.UnitQuad(), facade.Meshes[0].Desc)
	assert.Equal(t, text.FragmentShader, facade.Programs[0].Fragment)
	assert.True(t, r.Params.AlphaBlend)

	r.Delete()
	assert.True(t, facade.Meshes[0].Deleted)
	assert.True(t, facade.Programs[0].Deleted)
}

func TestNewRendererFailure(t *testing.T) {
	_, err := text.NewRenderer(&gfxtest.Facade{Fail: true})
	require.ErrorIs(t, err, gfxtest.ErrInjected)
}

func TestDrawSkipsWhitespace(t *testing.T) {
	r, _ := newRenderer(t)
	font := text.New(newFakeRaster(), 10)

	s := draw(t, r, "ab c", font)
	require.Len(t, s.Calls, 3)

	c := s.Calls[0]
	assert.Same(t, r.Mesh, c.Mesh)
	assert.Same(t, r.Program, c.Program)
	assert.Equal(t, mgl32.Vec3{1, 0, 0}, c.Uniforms["albedo"])
	for _, name := range []string{"view", "model", "camera", "albedo", "tex"} {
		assert.Contains(t, c.Uniforms, name)
	}
	sampler, ok := c.Uniforms["tex"].(gfx.Sampler)
	require.True(t, ok)
	assert.Equal(t, gfx.WrapClamp, sampler.Wrap)
}

func TestDrawHorizontalLayout(t *testing.T) {
	r, _ := newRenderer(t)
	font := text.New(newFakeRaster(), 10)

	s := draw(t, r, "ab c\nd", font)
	require.Len(t, s.Calls, 4)

	// Pen starts one ascent (8px at scale 10) down; bearing is (1, -2) px.
	p := translation(t, s.Calls[0])
	assert.InDelta(t, 0.1, p.X(), 1e-5)
	assert.InDelta(t, -1.0, p.Y(), 1e-5)

	p = translation(t, s.Calls[1])
	assert.InDelta(t, 1.1, p.X(), 1e-5)

	p = translation(t, s.Calls[2])
	assert.InDelta(t, 3.1, p.X(), 1e-5, "the space still advances the pen")

	p = translation(t, s.Calls[3])
	assert.InDelta(t, 0.1, p.X(), 1e-5)
	assert.InDelta(t, -2.2, p.Y(), 1e-5, "next line is one new-line size lower")

	m := s.Calls[0].Uniforms["model"].(mgl32.Mat4)
	assert.InDelta(t, 0.6, m.At(0, 0), 1e-5)
	assert.InDelta(t, 0.8, m.At(1, 1), 1e-5)
}

func TestDrawAppliesModel(t *testing.T) {
	r, _ := newRenderer(t)
	font := text.New(newFakeRaster(), 10)
	surface := &gfxtest.Surface{}

	model := mgl32.Translate3D(5, 0, 0)
	require.NoError(t, r.Draw("a", mgl32.Vec3{}, surface, model, mgl32.Ident4(), mgl32.Ident4(), font))
	require.Len(t, surface.Calls, 1)
	assert.InDelta(t, 5.1, translation(t, surface.Calls[0]).X(), 1e-5)
}

func TestDrawVerticalOnly(t *testing.T) {
	raster := newFakeRaster()
	raster.vertical = true
	raster.columns, raster.horizontal = raster.horizontal, nil
	r, _ := newRenderer(t)
	font := text.New(raster, 10)

	s := draw(t, r, "ab\nc", font)
	require.Len(t, s.Calls, 3)

	p := translation(t, s.Calls[0])
	assert.InDelta(t, -0.7, p.X(), 1e-5)
	assert.InDelta(t, -0.2, p.Y(), 1e-5)

	p = translation(t, s.Calls[1])
	assert.InDelta(t, -0.7, p.X(), 1e-5)
	assert.InDelta(t, -1.2, p.Y(), 1e-5, "columns run downwards")

	p = translation(t, s.Calls[2])
	assert.InDelta(t, -1.9, p.X(), 1e-5, "next column is to the left")
	assert.InDelta(t, -0.2, p.Y(), 1e-5)
}

func TestDrawBothMetricsFollowsFirstChar(t *testing.T) {
	raster := newFakeRaster()
	raster.vertical = true
	columns := text.LineMetrics{Ascent: 5, NewLineSize: 7}
	raster.columns = &columns
	r, _ := newRenderer(t)
	font := text.New(raster, 10)

	s := draw(t, r, "ab", font)
	require.Len(t, s.Calls, 2)
	p := translation(t, s.Calls[1])
	assert.InDelta(t, -0.4, p.X(), 1e-5, "vertical metrics chosen since 'a' has no horizontal advance")
	assert.InDelta(t, -1.2, p.Y(), 1e-5)

	s = draw(t, r, "", font)
	assert.Empty(t, s.Calls)
}

func TestDrawWithoutLineMetrics(t *testing.T) {
	raster := newFakeRaster()
	raster.horizontal = nil
	r, _ := newRenderer(t)
	font := text.New(raster, 10)

	surface := &gfxtest.Surface{}
	err := r.Draw("abc", mgl32.Vec3{}, surface, mgl32.Ident4(), mgl32.Ident4(), mgl32.Ident4(), font)
	require.ErrorIs(t, err, text.ErrNoLineMetrics)
	assert.Empty(t, surface.Calls)
}

func TestDrawOnlyValid(t *testing.T) {
	raster := newFakeRaster()
	raster.missing['z'] = true
	r, _ := newRenderer(t)
	font := text.New(raster, 10)
	surface := &gfxtest.Surface{}

	err := r.DrawOnlyValid("abz", mgl32.Vec3{}, surface, mgl32.Ident4(), mgl32.Ident4(), mgl32.Ident4(), font)
	var invalid *text.InvalidCharError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, 'z', invalid.Char)
	assert.Empty(t, surface.Calls)

	require.NoError(t, r.DrawOnlyValid("ab", mgl32.Vec3{}, surface, mgl32.Ident4(), mgl32.Ident4(), mgl32.Ident4(), font))
	assert.Len(t, surface.Calls, 2)

	surface.Calls = nil
	require.NoError(t, r.Draw("abz", mgl32.Vec3{}, surface, mgl32.Ident4(), mgl32.Ident4(), mgl32.Ident4(), font))
	assert.Len(t, surface.Calls, 3, "Draw substitutes the replacement glyph")
}

func TestDrawOnlyValidAcceptsLineBreaks(t *testing.T) {
	raster := newFakeRaster()
	raster.missing['\n'] = true
	raster.missing['\r'] = true
	r, _ := newRenderer(t)
	font := text.New(raster, 10)
	surface := &gfxtest.Surface{}

	require.NoError(t, r.DrawOnlyValid("ab\nc\r\na", mgl32.Vec3{}, surface, mgl32.Ident4(), mgl32.Ident4(), mgl32.Ident4(), font))
	assert.Len(t, surface.Calls, 4)

	surface.Calls = nil
	err := r.DrawOnlyValid("a\rb", mgl32.Vec3{}, surface, mgl32.Ident4(), mgl32.Ident4(), mgl32.Ident4(), font)
	var invalid *text.InvalidCharError
	require.ErrorAs(t, err, &invalid, "a lone carriage return is not a line break")
	assert.Equal(t, '\r', invalid.Char)
	assert.Empty(t, surface.Calls)
}
