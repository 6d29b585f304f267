// Package gfxtest provides in-memory implementations of the gfx interfaces
// for tests.
package gfxtest

import (
	"errors"

	"github.com/go-theft-auto/thin/gfx"
)

// ErrInjected is returned by a Facade whose Fail flag is set.
var ErrInjected = errors.New("gfxtest: injected failure")

// Texture records how it was allocated.
type Texture struct {
	Desc    gfx.TextureDesc
	Deleted bool
}

func (t *Texture) Size() (int, int)          { return t.Desc.Width, t.Desc.Height }
func (t *Texture) Format() gfx.TextureFormat { return t.Desc.Format }
func (t *Texture) Delete()                   { t.Deleted = true }

// Mesh records its geometry.
type Mesh struct {
	Desc    gfx.MeshDesc
	Deleted bool
}

func (m *Mesh) Delete() { m.Deleted = true }

// Program records its sources.
type Program struct {
	Vertex, Fragment string
	Deleted          bool
}

func (p *Program) Delete() { p.Deleted = true }

// Facade allocates fake resources and keeps every one it handed out.
type Facade struct {
	Textures []*Texture
	Meshes   []*Mesh
	Programs []*Program

	// Fail makes every allocation return ErrInjected.
	Fail bool
}

func (f *Facade) NewTexture(desc gfx.TextureDesc) (gfx.Texture, error) {
	if f.Fail {
		return nil, ErrInjected
	}
	t := &Texture{Desc: desc}
	f.Textures = append(f.Textures, t)
	return t, nil
}

func (f *Facade) NewMesh(desc gfx.MeshDesc) (gfx.Mesh, error) {
	if f.Fail {
		return nil, ErrInjected
	}
	m := &Mesh{Desc: desc}
	f.Meshes = append(f.Meshes, m)
	return m, nil
}

func (f *Facade) NewProgram(vertex, fragment string) (gfx.Program, error) {
	if f.Fail {
		return nil, ErrInjected
	}
	p := &Program{Vertex: vertex, Fragment: fragment}
	f.Programs = append(f.Programs, p)
	return p, nil
}

// Live counts textures that were allocated and not deleted.
func (f *Facade) Live() int {
	n := 0
	for _, t := range f.Textures {
		if !t.Deleted {
			n++
		}
	}
	return n
}

// DrawCall is one recorded Surface.Draw.
type DrawCall struct {
	Mesh     gfx.Mesh
	Program  gfx.Program
	Uniforms gfx.Uniforms
	Params   gfx.DrawParameters
}

// Surface records draw calls.
type Surface struct {
	Width, Height int
	Calls         []DrawCall
}

func (s *Surface) Draw(mesh gfx.Mesh, program gfx.Program, uniforms gfx.Uniforms, params gfx.DrawParameters) error {
	s.Calls = append(s.Calls, DrawCall{Mesh: mesh, Program: program, Uniforms: uniforms, Params: params})
	return nil
}

func (s *Surface) Dimensions() (int, int) { return s.Width, s.Height }

// Frame is a recording Surface that remembers clears and whether it was finished.
type Frame struct {
	Surface
	Clears   int
	Finished bool
}

func (f *Frame) Clear(r, g, b, a float32) { f.Clears++ }

func (f *Frame) ClearColorAndDepth(r, g, b, a, depth float32) { f.Clears++ }

func (f *Frame) Finish() error {
	f.Finished = true
	return nil
}

// Display is a fake window surface.
type Display struct {
	Facade
	Width, Height int
	Resizes       int
	Frames        []*Frame
}

// NewDisplay returns a Display with the given framebuffer size.
func NewDisplay(width, height int) *Display {
	return &Display{Width: width, Height: height}
}

func (d *Display) Resize(width, height int) {
	d.Width, d.Height = width, height
	d.Resizes++
}

func (d *Display) FramebufferSize() (int, int) { return d.Width, d.Height }

func (d *Display) Draw() (gfx.Frame, error) {
	f := &Frame{Surface: Surface{Width: d.Width, Height: d.Height}}
	d.Frames = append(d.Frames, f)
	return f, nil
}
