package opengl

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/thin/gfx"
)

// ErrFrameFinished is returned when drawing into a frame after Finish.
var ErrFrameFinished = errors.New("opengl: frame already finished")

// target is a framebuffer that accepts draw calls.
type target struct {
	display       *Display
	fbo           uint32
	width, height int
}

func (t *target) Dimensions() (width, height int) { return t.width, t.height }

func (t *target) bind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, t.fbo)
	gl.Viewport(0, 0, int32(t.width), int32(t.height))
}

func (t *target) clear(r, g, b, a float32, depth *float32) {
	if !t.display.live() {
		return
	}
	t.bind()
	gl.ClearColor(r, g, b, a)
	mask := uint32(gl.COLOR_BUFFER_BIT)
	if depth != nil {
		gl.ClearDepth(float64(*depth))
		gl.DepthMask(true)
		mask |= gl.DEPTH_BUFFER_BIT
	}
	gl.Clear(mask)
}

// draw issues one indexed draw call. Fixed-function state touched by
// params is restored afterwards. Every object must belong to the target's
// display; nothing reaches GL otherwise.
func (t *target) draw(mesh gfx.Mesh, program gfx.Program, uniforms gfx.Uniforms, params gfx.DrawParameters) error {
	m, ok := mesh.(*Mesh)
	if !ok {
		return fmt.Errorf("draw: mesh is a %T", mesh)
	}
	p, ok := program.(*Program)
	if !ok {
		return fmt.Errorf("draw: program is a %T", program)
	}
	if err := t.display.check(m.display); err != nil {
		return fmt.Errorf("draw: mesh: %w", err)
	}
	if err := t.display.check(p.display); err != nil {
		return fmt.Errorf("draw: program: %w", err)
	}
	for name, value := range uniforms {
		s, ok := value.(gfx.Sampler)
		if !ok {
			continue
		}
		tex, ok := s.Texture.(*Texture)
		if !ok {
			return fmt.Errorf("draw: uniform %q: sampler texture is a %T", name, s.Texture)
		}
		if err := t.display.check(tex.display); err != nil {
			return fmt.Errorf("draw: uniform %q: %w", name, err)
		}
	}
	if m.count == 0 {
		return nil
	}

	// Save GL state
	var lastProgram int32
	var lastDepthMask bool
	gl.GetIntegerv(gl.CURRENT_PROGRAM, &lastProgram)
	gl.GetBooleanv(gl.DEPTH_WRITEMASK, &lastDepthMask)
	blendEnabled := gl.IsEnabled(gl.BLEND)
	depthEnabled := gl.IsEnabled(gl.DEPTH_TEST)
	cullEnabled := gl.IsEnabled(gl.CULL_FACE)

	t.bind()
	gl.UseProgram(p.id)
	applyParameters(params)

	unit := uint32(0)
	for name, value := range uniforms {
		u, ok := p.uniforms[name]
		if !ok {
			// Optimised out or unused; not an error.
			continue
		}
		if err := setUniform(u, value, &unit); err != nil {
			restoreState(uint32(lastProgram), lastDepthMask, blendEnabled, depthEnabled, cullEnabled)
			return fmt.Errorf("draw: uniform %q: %w", name, err)
		}
	}

	gl.BindVertexArray(m.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, m.count, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)

	for i := uint32(0); i < unit; i++ {
		gl.ActiveTexture(gl.TEXTURE0 + i)
		gl.BindTexture(gl.TEXTURE_2D, 0)
	}
	gl.ActiveTexture(gl.TEXTURE0)

	restoreState(uint32(lastProgram), lastDepthMask, blendEnabled, depthEnabled, cullEnabled)
	return nil
}

func applyParameters(params gfx.DrawParameters) {
	if params.AlphaBlend {
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	} else {
		gl.Disable(gl.BLEND)
	}

	switch params.Depth {
	case gfx.DepthLess:
		gl.Enable(gl.DEPTH_TEST)
		gl.DepthFunc(gl.LESS)
	case gfx.DepthLessOrEqual:
		gl.Enable(gl.DEPTH_TEST)
		gl.DepthFunc(gl.LEQUAL)
	default:
		gl.Disable(gl.DEPTH_TEST)
	}
	gl.DepthMask(params.DepthWrite)

	switch params.Cull {
	case gfx.CullClockwise:
		gl.Enable(gl.CULL_FACE)
		gl.FrontFace(gl.CCW)
		gl.CullFace(gl.BACK)
	case gfx.CullCounterClockwise:
		gl.Enable(gl.CULL_FACE)
		gl.FrontFace(gl.CW)
		gl.CullFace(gl.BACK)
	default:
		gl.Disable(gl.CULL_FACE)
	}
}

func restoreState(program uint32, depthMask, blend, depth, cull bool) {
	gl.UseProgram(program)
	gl.DepthMask(depthMask)
	setEnabled(gl.BLEND, blend)
	setEnabled(gl.DEPTH_TEST, depth)
	setEnabled(gl.CULL_FACE, cull)
}

func setEnabled(c uint32, on bool) {
	if on {
		gl.Enable(c)
	} else {
		gl.Disable(c)
	}
}

// setUniform uploads value, binding samplers to consecutive texture units
// starting at *unit.
func setUniform(u uniform, value any, unit *uint32) error {
	switch v := value.(type) {
	case float32:
		gl.Uniform1f(u.location, v)
	case int32:
		gl.Uniform1i(u.location, v)
	case mgl32.Vec2:
		gl.Uniform2f(u.location, v[0], v[1])
	case mgl32.Vec3:
		gl.Uniform3f(u.location, v[0], v[1], v[2])
	case mgl32.Vec4:
		gl.Uniform4f(u.location, v[0], v[1], v[2], v[3])
	case mgl32.Mat4:
		gl.UniformMatrix4fv(u.location, 1, false, &v[0])
	case gfx.Sampler:
		tex, ok := v.Texture.(*Texture)
		if !ok {
			return fmt.Errorf("sampler texture is a %T", v.Texture)
		}
		gl.ActiveTexture(gl.TEXTURE0 + *unit)
		gl.BindTexture(gl.TEXTURE_2D, tex.id)
		wrap := wrapMode(v.Wrap)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, wrap)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, wrap)
		gl.Uniform1i(u.location, int32(*unit))
		*unit++
	default:
		return fmt.Errorf("unsupported type %T", value)
	}
	return nil
}

func wrapMode(w gfx.WrapFunction) int32 {
	switch w {
	case gfx.WrapClamp:
		return gl.CLAMP_TO_EDGE
	case gfx.WrapMirror:
		return gl.MIRRORED_REPEAT
	default:
		return gl.REPEAT
	}
}

// Frame is one frame of a Display. It implements gfx.Frame.
type Frame struct {
	target
	finished bool
}

func (f *Frame) Draw(mesh gfx.Mesh, program gfx.Program, uniforms gfx.Uniforms, params gfx.DrawParameters) error {
	if f.finished {
		return ErrFrameFinished
	}
	return f.draw(mesh, program, uniforms, params)
}

func (f *Frame) Clear(r, g, b, a float32) {
	if !f.finished {
		f.clear(r, g, b, a, nil)
	}
}

func (f *Frame) ClearColorAndDepth(r, g, b, a, depth float32) {
	if !f.finished {
		f.clear(r, g, b, a, &depth)
	}
}

// Finish swaps the window's buffers.
func (f *Frame) Finish() error {
	if f.finished {
		return ErrFrameFinished
	}
	f.finished = true
	f.display.endFrame()
	if f.display.released {
		return ErrReleased
	}
	f.display.glw.SwapBuffers()
	return nil
}

// Framebuffer draws into textures. It implements gfx.Surface.
type Framebuffer struct {
	target
}

func (fb *Framebuffer) Draw(mesh gfx.Mesh, program gfx.Program, uniforms gfx.Uniforms, params gfx.DrawParameters) error {
	return fb.draw(mesh, program, uniforms, params)
}

func (fb *Framebuffer) Clear(r, g, b, a float32) { fb.clear(r, g, b, a, nil) }

func (fb *Framebuffer) ClearColorAndDepth(r, g, b, a, depth float32) {
	fb.clear(r, g, b, a, &depth)
}

// Delete frees the framebuffer object; its textures are left alone.
func (fb *Framebuffer) Delete() {
	if !fb.display.live() {
		fb.fbo = 0
		return
	}
	if fb.fbo != 0 {
		gl.DeleteFramebuffers(1, &fb.fbo)
		fb.fbo = 0
	}
}

// ReadPixels returns the colour attachment as RGBA rows, bottom row first.
func (fb *Framebuffer) ReadPixels() []byte {
	pixels := make([]byte, fb.width*fb.height*4)
	if len(pixels) == 0 || !fb.display.live() {
		return pixels
	}
	gl.BindFramebuffer(gl.FRAMEBUFFER, fb.fbo)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(fb.width), int32(fb.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	gl.PixelStorei(gl.PACK_ALIGNMENT, 4)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	return pixels
}
