// Package gfx describes the graphics collaborator the driver and the text
// renderer draw through: texture, mesh and program allocation, a resizable
// display, and surfaces that accept draw calls with named uniforms.
//
// The package has no GPU dependency. backend/opengl implements it on top of
// OpenGL; tests use fakes.
package gfx

import "github.com/go-gl/mathgl/mgl32"

// TextureFormat is the pixel layout of a texture.
type TextureFormat int

const (
	// FormatR8 is a single 8-bit channel, read as red. Used for glyph coverage.
	FormatR8 TextureFormat = iota
	// FormatRGBA8 is 8 bits per channel colour.
	FormatRGBA8
	// FormatDepth24 is a 24-bit depth attachment.
	FormatDepth24
)

// Filter selects texture sampling.
type Filter int

const (
	FilterLinear Filter = iota
	FilterNearest
)

// TextureDesc describes a texture to allocate. Pixels may be nil for an
// empty texture; otherwise rows run bottom to top.
type TextureDesc struct {
	Width, Height int
	Format        TextureFormat
	Pixels        []byte
	Filter        Filter
}

// Texture is a GPU texture.
type Texture interface {
	Size() (width, height int)
	Format() TextureFormat
	Delete()
}

// MeshDesc describes indexed triangle geometry. Attributes are bound by
// name: "position", "texture_coords" and "normal".
type MeshDesc struct {
	Positions []mgl32.Vec3
	UVs       []mgl32.Vec2
	Normals   []mgl32.Vec3
	Indices   []uint32
}

// Mesh is uploaded geometry.
type Mesh interface {
	Delete()
}

// Program is a linked shader program.
type Program interface {
	Delete()
}

// Facade allocates GPU resources.
type Facade interface {
	NewTexture(desc TextureDesc) (Texture, error)
	NewMesh(desc MeshDesc) (Mesh, error)
	NewProgram(vertexSource, fragmentSource string) (Program, error)
}

// Display is the window's drawable surface and resource allocator.
type Display interface {
	Facade

	// Resize updates the drawable size after the window was resized.
	Resize(width, height int)

	// FramebufferSize returns the drawable size in pixels.
	FramebufferSize() (width, height int)

	// Draw starts a frame. The frame must be finished before the next one starts.
	Draw() (Frame, error)
}

// Surface accepts draw calls.
type Surface interface {
	Draw(mesh Mesh, program Program, uniforms Uniforms, params DrawParameters) error
	Dimensions() (width, height int)
}

// Frame is a Surface for one frame of a Display.
type Frame interface {
	Surface
	Clear(r, g, b, a float32)
	ClearColorAndDepth(r, g, b, a, depth float32)

	// Finish presents the frame.
	Finish() error
}

// Uniforms maps uniform names to values. Supported values are float32,
// int32, mgl32.Vec2, mgl32.Vec3, mgl32.Vec4, mgl32.Mat4 and Sampler.
type Uniforms map[string]any

// WrapFunction selects texture addressing outside [0, 1].
type WrapFunction int

const (
	WrapRepeat WrapFunction = iota
	WrapClamp
	WrapMirror
)

// Sampler binds a texture to a sampler uniform.
type Sampler struct {
	Texture Texture
	Wrap    WrapFunction
}

// Sampled returns a repeating sampler over t.
func Sampled(t Texture) Sampler { return Sampler{Texture: t} }

// Clamped returns a copy of s that clamps texture coordinates.
func (s Sampler) Clamped() Sampler {
	s.Wrap = WrapClamp
	return s
}

// CullMode selects which faces are discarded.
type CullMode int

const (
	CullNone CullMode = iota
	CullClockwise
	CullCounterClockwise
)

// DepthTest selects the depth comparison.
type DepthTest int

const (
	DepthOff DepthTest = iota
	DepthLess
	DepthLessOrEqual
)

// DrawParameters is the fixed-function state for a draw call.
type DrawParameters struct {
	AlphaBlend bool
	Depth      DepthTest
	DepthWrite bool
	Cull       CullMode
}

// Alias3D returns parameters for ordinary opaque 3D geometry.
func Alias3D() DrawParameters {
	return DrawParameters{Depth: DepthLess, DepthWrite: true, Cull: CullNone}
}

// TextParameters returns parameters suited to drawing glyph quads:
// alpha blending on, culling off, depth tested but not written.
func TextParameters() DrawParameters {
	return DrawParameters{AlphaBlend: true, Depth: DepthLessOrEqual, Cull: CullNone}
}
