package gfx_test

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/thin/gfx"
	"github.com/go-theft-auto/thin/gfx/gfxtest"
)

func TestResizableTextureReallocatesOnlyOnChange(t *testing.T) {
	f := &gfxtest.Facade{}
	rt, err := gfx.NewResizableTexture(f, 64, 32)
	require.NoError(t, err)
	first := rt.Texture()
	assert.Equal(t, gfx.FormatRGBA8, first.Format())

	require.NoError(t, rt.Resize(f, 64, 32))
	assert.Same(t, first, rt.Texture())
	assert.Len(t, f.Textures, 1)

	require.NoError(t, rt.Resize(f, 128, 32))
	assert.NotSame(t, first, rt.Texture())
	assert.True(t, f.Textures[0].Deleted)
	assert.Equal(t, 1, f.Live())

	w, h := rt.Size()
	assert.Equal(t, 128, w)
	assert.Equal(t, 32, h)
}

func TestResizableTextureKeepsOldOnFailure(t *testing.T) {
	f := &gfxtest.Facade{}
	rt, err := gfx.NewResizableDepthTexture(f, 8, 8)
	require.NoError(t, err)
	assert.Equal(t, gfx.FormatDepth24, rt.Texture().Format())

	f.Fail = true
	err = rt.Resize(f, 16, 16)
	require.ErrorIs(t, err, gfxtest.ErrInjected)
	assert.False(t, f.Textures[0].Deleted)
	w, _ := rt.Size()
	assert.Equal(t, 8, w)
}

func TestResizeToDisplay(t *testing.T) {
	d := gfxtest.NewDisplay(320, 240)
	rt, err := gfx.NewResizableTexture(d, 1, 1)
	require.NoError(t, err)

	d.Resize(640, 480)
	require.NoError(t, rt.ResizeToDisplay(d))
	w, h := rt.Texture().Size()
	assert.Equal(t, 640, w)
	assert.Equal(t, 480, h)

	rt.Delete()
	assert.Nil(t, rt.TryTexture())
	assert.Equal(t, 0, d.Live())
	assert.Panics(t, func() { rt.Texture() })
}

func TestQuads(t *testing.T) {
	for _, m := range []gfx.MeshDesc{gfx.UnitQuad(), gfx.ScreenQuad()} {
		assert.Len(t, m.Positions, 4)
		assert.Len(t, m.UVs, 4)
		assert.Len(t, m.Indices, 6)
		for _, i := range m.Indices {
			assert.Less(t, int(i), len(m.Positions))
		}
	}
	for i, p := range gfx.UnitQuad().Positions {
		assert.Equal(t, p.Vec2(), gfx.UnitQuad().UVs[i], "unit quad UVs follow positions")
	}
}

func TestFXAAUniforms(t *testing.T) {
	f := &gfxtest.Facade{}
	tex, err := f.NewTexture(gfx.TextureDesc{Width: 200, Height: 100})
	require.NoError(t, err)

	u := gfx.FXAAUniforms(tex)
	assert.Equal(t, mgl32.Vec2{1.0 / 200, 1.0 / 100}, u["pixel_size"])
	s, ok := u["tex"].(gfx.Sampler)
	require.True(t, ok)
	assert.Equal(t, gfx.WrapClamp, s.Wrap)

	p, err := gfx.FXAAProgram(f)
	require.NoError(t, err)
	assert.Equal(t, gfx.ScreenVertexShader, p.(*gfxtest.Program).Vertex)
}

func TestViewMatrix2D(t *testing.T) {
	v := gfx.ViewMatrix2D(200, 100)
	p := v.Mul4x1(mgl32.Vec4{2, 1, 0, 1})
	assert.InDelta(t, 1, p.X(), 1e-6)
	assert.InDelta(t, 1, p.Y(), 1e-6)

	assert.Equal(t, mgl32.Ident4(), gfx.ViewMatrix2D(0, 100))
}

func TestViewMatrix3D(t *testing.T) {
	const fovy = math.Pi / 2
	v := gfx.ViewMatrix3D(200, 100, fovy, 1, 10)

	// The top right corner of the near plane.
	p := v.Mul4x1(mgl32.Vec4{2, 1, -1, 1})
	assert.InDelta(t, 1, p.X()/p.W(), 1e-6)
	assert.InDelta(t, 1, p.Y()/p.W(), 1e-6)
	assert.InDelta(t, -1, p.Z()/p.W(), 1e-6)

	far := v.Mul4x1(mgl32.Vec4{0, 0, -10, 1})
	assert.InDelta(t, 1, far.Z()/far.W(), 1e-5)

	assert.Equal(t, mgl32.Perspective(fovy, 1, 1, 10), gfx.ViewMatrix3D(200, 0, fovy, 1, 10),
		"an empty target falls back to a square aspect")
}
