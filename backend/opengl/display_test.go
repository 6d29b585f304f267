package opengl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/thin/gfx"
)

// None of these paths may reach GL: the tests run without a context, so a
// GL call would crash.

func TestDeleteAfterReleaseForgetsNames(t *testing.T) {
	stale := &Display{released: true}

	tex := &Texture{display: stale, id: 7}
	tex.Delete()
	assert.Zero(t, tex.ID())

	mesh := &Mesh{display: stale, vao: 3, ebo: 4, vbos: []uint32{5, 6}, count: 6}
	mesh.Delete()
	assert.Zero(t, mesh.vao)
	assert.Zero(t, mesh.ebo)
	assert.Nil(t, mesh.vbos)

	prog := &Program{display: stale, id: 9}
	prog.Delete()
	assert.Zero(t, prog.id)

	fb := &Framebuffer{target: target{display: stale, fbo: 2, width: 2, height: 2}}
	fb.Delete()
	assert.Zero(t, fb.fbo)
	assert.Equal(t, make([]byte, 2*2*4), fb.ReadPixels())
}

func TestDrawRejectsObjectsOfAnotherDisplay(t *testing.T) {
	live := &Display{width: 4, height: 4}
	stale := &Display{released: true}
	other := &Display{width: 4, height: 4}

	liveMesh := &Mesh{display: live, vao: 1, count: 6}
	liveProg := &Program{display: live, id: 1, uniforms: map[string]uniform{"tex": {}}}
	fb := &Framebuffer{target: target{display: live, fbo: 3, width: 4, height: 4}}

	tests := []struct {
		name     string
		mesh     *Mesh
		prog     *Program
		uniforms gfx.Uniforms
		want     error
	}{
		{"stale mesh", &Mesh{display: stale, vao: 1, count: 6}, liveProg, nil, ErrReleased},
		{"stale program", liveMesh, &Program{display: stale, id: 1}, nil, ErrReleased},
		{"stale texture", liveMesh, liveProg,
			gfx.Uniforms{"tex": gfx.Sampled(&Texture{display: stale, id: 1})}, ErrReleased},
		{"ownerless mesh", &Mesh{vao: 1, count: 6}, liveProg, nil, ErrReleased},
		{"foreign mesh", &Mesh{display: other, vao: 1, count: 6}, liveProg, nil, ErrForeignObject},
		{"foreign texture", liveMesh, liveProg,
			gfx.Uniforms{"tex": gfx.Sampled(&Texture{display: other, id: 1})}, ErrForeignObject},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := fb.Draw(tt.mesh, tt.prog, tt.uniforms, gfx.DrawParameters{})
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestReleasedFrameRejectsDraws(t *testing.T) {
	d := &Display{width: 4, height: 4, inFrame: true}
	f := &Frame{target: target{display: d, width: 4, height: 4}}
	mesh := &Mesh{display: d, vao: 1, count: 6}
	prog := &Program{display: d, id: 1}

	d.release()
	f.Clear(0, 0, 0, 1)
	require.ErrorIs(t, f.Draw(mesh, prog, nil, gfx.DrawParameters{}), ErrReleased)
	require.ErrorIs(t, f.Finish(), ErrReleased)
	assert.False(t, d.inFrame)

	_, err := d.Draw()
	require.ErrorIs(t, err, ErrReleased)
}

func TestNewFramebufferChecksTextureOwner(t *testing.T) {
	d := &Display{width: 4, height: 4}
	stale := &Display{released: true}

	_, err := d.NewFramebuffer(&Texture{display: stale, id: 1, width: 4, height: 4}, nil)
	require.ErrorIs(t, err, ErrReleased)

	colour := &Texture{display: d, id: 1, width: 4, height: 4}
	_, err = d.NewFramebuffer(colour, &Texture{display: &Display{}, id: 2, width: 4, height: 4})
	require.ErrorIs(t, err, ErrForeignObject)
}
