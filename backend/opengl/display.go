package opengl

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/thin/gfx"
)

// ErrFrameInProgress is returned by Display.Draw while a previous frame is
// still unfinished.
var ErrFrameInProgress = errors.New("opengl: previous frame not finished")

// ErrReleased is returned by a display whose window was destroyed, and when
// drawing with an object created by such a display.
var ErrReleased = errors.New("opengl: display released")

// ErrForeignObject is returned when drawing with an object created by
// another display. GL names are only meaningful in their own context.
var ErrForeignObject = errors.New("opengl: object belongs to another display")

// Display draws into a window's default framebuffer. It implements
// gfx.Display.
type Display struct {
	glw           *glfw.Window
	width, height int
	inFrame       bool
	released      bool
}

func newDisplay(glw *glfw.Window) *Display {
	d := &Display{glw: glw}
	d.width, d.height = glw.GetFramebufferSize()
	return d
}

// Resize records the new framebuffer size; the viewport follows on the
// next frame.
func (d *Display) Resize(width, height int) {
	d.width, d.height = width, height
}

// FramebufferSize returns the drawable size in pixels.
func (d *Display) FramebufferSize() (width, height int) {
	return d.width, d.height
}

// Draw makes the window's context current and starts a frame on its
// default framebuffer.
func (d *Display) Draw() (gfx.Frame, error) {
	if d.released {
		return nil, ErrReleased
	}
	if d.inFrame {
		return nil, ErrFrameInProgress
	}
	d.glw.MakeContextCurrent()
	d.inFrame = true
	return &Frame{
		target: target{display: d, fbo: 0, width: d.width, height: d.height},
	}, nil
}

// NewTexture allocates a 2D texture. Pixel rows run bottom to top.
func (d *Display) NewTexture(desc gfx.TextureDesc) (gfx.Texture, error) {
	if d.released {
		return nil, ErrReleased
	}
	if desc.Width < 0 || desc.Height < 0 {
		return nil, fmt.Errorf("new texture: invalid size %dx%d", desc.Width, desc.Height)
	}
	internal, format, typ, bpp, err := textureFormat(desc.Format)
	if err != nil {
		return nil, err
	}
	if desc.Pixels != nil && len(desc.Pixels) < desc.Width*desc.Height*bpp {
		return nil, fmt.Errorf("new texture: %d bytes for %dx%d", len(desc.Pixels), desc.Width, desc.Height)
	}

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	filter := int32(gl.LINEAR)
	if desc.Filter == gfx.FilterNearest {
		filter = gl.NEAREST
	}
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, filter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, filter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	// Glyph rows are tightly packed.
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	var pixels unsafe.Pointer
	if len(desc.Pixels) > 0 {
		pixels = gl.Ptr(desc.Pixels)
	}
	gl.TexImage2D(gl.TEXTURE_2D, 0, internal, int32(desc.Width), int32(desc.Height), 0, format, typ, pixels)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return &Texture{display: d, id: tex, width: desc.Width, height: desc.Height, format: desc.Format}, nil
}

// NewMesh uploads geometry into a vertex array with one buffer per
// attribute.
func (d *Display) NewMesh(desc gfx.MeshDesc) (gfx.Mesh, error) {
	if d.released {
		return nil, ErrReleased
	}
	if len(desc.Positions) == 0 {
		return nil, errors.New("new mesh: no positions")
	}
	if desc.UVs != nil && len(desc.UVs) != len(desc.Positions) {
		return nil, fmt.Errorf("new mesh: %d uvs for %d positions", len(desc.UVs), len(desc.Positions))
	}
	if desc.Normals != nil && len(desc.Normals) != len(desc.Positions) {
		return nil, fmt.Errorf("new mesh: %d normals for %d positions", len(desc.Normals), len(desc.Positions))
	}
	for _, i := range desc.Indices {
		if int(i) >= len(desc.Positions) {
			return nil, fmt.Errorf("new mesh: index %d out of range", i)
		}
	}

	m := &Mesh{display: d, count: int32(len(desc.Indices))}
	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	m.vbos = append(m.vbos, uploadVec3(attribPosition, desc.Positions))
	if desc.UVs != nil {
		m.vbos = append(m.vbos, uploadVec2(attribTextureCoords, desc.UVs))
	}
	if desc.Normals != nil {
		m.vbos = append(m.vbos, uploadVec3(attribNormal, desc.Normals))
	}

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	if len(desc.Indices) > 0 {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(desc.Indices)*4, gl.Ptr(desc.Indices), gl.STATIC_DRAW)
	}

	gl.BindVertexArray(0)
	return m, nil
}

// NewProgram compiles and links a shader program.
func (d *Display) NewProgram(vertexSource, fragmentSource string) (gfx.Program, error) {
	if d.released {
		return nil, ErrReleased
	}
	p, err := newProgram(vertexSource, fragmentSource)
	if err != nil {
		return nil, err
	}
	p.display = d
	return p, nil
}

// NewFramebuffer returns a surface drawing into colour and, optionally,
// depth. Both must be textures of this display with the same size.
func (d *Display) NewFramebuffer(colour, depth gfx.Texture) (*Framebuffer, error) {
	if d.released {
		return nil, ErrReleased
	}
	c, ok := colour.(*Texture)
	if !ok {
		return nil, fmt.Errorf("new framebuffer: colour is a %T", colour)
	}
	if err := d.check(c.display); err != nil {
		return nil, fmt.Errorf("new framebuffer: colour: %w", err)
	}
	var dt *Texture
	if depth != nil {
		if dt, ok = depth.(*Texture); !ok {
			return nil, fmt.Errorf("new framebuffer: depth is a %T", depth)
		}
		if err := d.check(dt.display); err != nil {
			return nil, fmt.Errorf("new framebuffer: depth: %w", err)
		}
	}

	var fbo uint32
	gl.GenFramebuffers(1, &fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, fbo)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, c.id, 0)
	if dt != nil {
		gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.TEXTURE_2D, dt.id, 0)
	}
	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	if status != gl.FRAMEBUFFER_COMPLETE {
		gl.DeleteFramebuffers(1, &fbo)
		return nil, fmt.Errorf("new framebuffer: incomplete (0x%x)", status)
	}
	return &Framebuffer{target: target{display: d, fbo: fbo, width: c.width, height: c.height}}, nil
}

func (d *Display) endFrame() { d.inFrame = false }

// release marks the display unusable once its window is gone. GL objects
// die with the context; their names may be reused by the next one.
func (d *Display) release() { d.released = true }

// check reports whether an object created by owner may be used with d.
func (d *Display) check(owner *Display) error {
	if d.released || owner == nil || owner.released {
		return ErrReleased
	}
	if owner != d {
		return ErrForeignObject
	}
	return nil
}

// live reports whether GL calls on objects owned by d are still valid.
func (d *Display) live() bool { return d != nil && !d.released }

func textureFormat(f gfx.TextureFormat) (internal int32, format, typ uint32, bpp int, err error) {
	switch f {
	case gfx.FormatR8:
		return gl.R8, gl.RED, gl.UNSIGNED_BYTE, 1, nil
	case gfx.FormatRGBA8:
		return gl.RGBA8, gl.RGBA, gl.UNSIGNED_BYTE, 4, nil
	case gfx.FormatDepth24:
		return gl.DEPTH_COMPONENT24, gl.DEPTH_COMPONENT, gl.UNSIGNED_INT, 4, nil
	default:
		return 0, 0, 0, 0, fmt.Errorf("unknown texture format %d", f)
	}
}

func uploadVec3(loc uint32, v []mgl32.Vec3) uint32 {
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(v)*3*4, gl.Ptr(v), gl.STATIC_DRAW)
	gl.VertexAttribPointerWithOffset(loc, 3, gl.FLOAT, false, 0, 0)
	gl.EnableVertexAttribArray(loc)
	return vbo
}

func uploadVec2(loc uint32, v []mgl32.Vec2) uint32 {
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(v)*2*4, gl.Ptr(v), gl.STATIC_DRAW)
	gl.VertexAttribPointerWithOffset(loc, 2, gl.FLOAT, false, 0, 0)
	gl.EnableVertexAttribArray(loc)
	return vbo
}

// Texture is a GL texture. It implements gfx.Texture.
type Texture struct {
	display       *Display
	id            uint32
	width, height int
	format        gfx.TextureFormat
}

func (t *Texture) Size() (width, height int) { return t.width, t.height }
func (t *Texture) Format() gfx.TextureFormat { return t.format }

// ID returns the GL texture name.
func (t *Texture) ID() uint32 { return t.id }

// Delete frees the texture. Once the owning display is released the name
// is only forgotten, as it may belong to a newer context.
func (t *Texture) Delete() {
	if !t.display.live() {
		t.id = 0
		return
	}
	if t.id != 0 {
		gl.DeleteTextures(1, &t.id)
		t.id = 0
	}
}

// Mesh is a vertex array. It implements gfx.Mesh.
type Mesh struct {
	display  *Display
	vao, ebo uint32
	vbos     []uint32
	count    int32
}

func (m *Mesh) Delete() {
	if !m.display.live() {
		m.vao, m.ebo, m.vbos = 0, 0, nil
		return
	}
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
		m.ebo = 0
	}
	if len(m.vbos) > 0 {
		gl.DeleteBuffers(int32(len(m.vbos)), &m.vbos[0])
		m.vbos = nil
	}
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		m.vao = 0
	}
}
