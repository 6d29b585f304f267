package text

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/thin/gfx"
)

// FragmentShader colours a glyph quad with the "albedo" uniform, taking
// alpha from the red channel of the "tex" coverage texture.
const FragmentShader = `#version 410 core
in vec2 uv;
out vec4 colour;

uniform vec3 albedo;
uniform sampler2D tex;

void main() {
    colour = vec4(albedo, texture(tex, uv).r);
}
`

// Mesh uploads the unit quad every glyph is drawn with.
func Mesh(f gfx.Facade) (gfx.Mesh, error) {
	m, err := f.NewMesh(gfx.UnitQuad())
	if err != nil {
		return nil, fmt.Errorf("text mesh: %w", err)
	}
	return m, nil
}

// Shader compiles the text program: gfx.VertexShader with FragmentShader.
func Shader(f gfx.Facade) (gfx.Program, error) {
	p, err := f.NewProgram(gfx.VertexShader, FragmentShader)
	if err != nil {
		return nil, fmt.Errorf("text shader: %w", err)
	}
	return p, nil
}

// Renderer draws text one glyph quad at a time. The fields are borrowed;
// Delete releases them when the renderer owns them.
type Renderer struct {
	Mesh    gfx.Mesh
	Program gfx.Program
	Params  gfx.DrawParameters

	// Facade uploads glyphs on cache misses.
	Facade gfx.Facade
}

// NewRenderer creates the mesh and program and uses TextParameters.
func NewRenderer(f gfx.Facade) (*Renderer, error) {
	mesh, err := Mesh(f)
	if err != nil {
		return nil, err
	}
	prog, err := Shader(f)
	if err != nil {
		mesh.Delete()
		return nil, err
	}
	return &Renderer{Mesh: mesh, Program: prog, Params: gfx.TextParameters(), Facade: f}, nil
}

// Delete releases the mesh and program.
func (r *Renderer) Delete() {
	r.Mesh.Delete()
	r.Program.Delete()
}

// DrawOnlyValid is Draw, except that it returns an *InvalidCharError and
// draws nothing if text holds a character the font lacks, rather than
// drawing ReplacementChar. Line breaks ("\n" or "\r\n") are not checked,
// so multi-line text works with fonts that have no glyph for them.
func (r *Renderer) DrawOnlyValid(text string, colour mgl32.Vec3, surface gfx.Surface, model, view, camera mgl32.Mat4, font *Font) error {
	for i, c := range text {
		if c == '\n' || (c == '\r' && strings.HasPrefix(text[i+1:], "\n")) {
			continue
		}
		if !font.HasGlyph(c) {
			return &InvalidCharError{Char: c}
		}
	}
	return r.Draw(text, colour, surface, model, view, camera, font)
}

// Draw lays out text in font units, one unit per em, starting with the
// first baseline one ascent below the model origin, and draws it to
// surface. Lines are split on '\n'.
//
// Text runs left to right unless the font only has vertical line metrics,
// or has both and the first character has no horizontal advance; then it
// runs top to bottom in columns from right to left.
func (r *Renderer) Draw(text string, colour mgl32.Vec3, surface gfx.Surface, model, view, camera mgl32.Mat4, font *Font) error {
	size := 1 / font.scale

	vline, hasV := font.VerticalMetrics()
	hline, hasH := font.HorizontalMetrics()

	var (
		vertical bool
		line     LineMetrics
	)
	switch {
	case hasV && hasH:
		c, n := utf8.DecodeRuneInString(text)
		if n == 0 {
			return nil
		}
		m, _, err := font.LoadAndGet(c, r.Facade)
		if err != nil {
			return err
		}
		vertical = m.AdvanceWidth == 0
		line = hline
		if vertical {
			line = vline
		}
	case hasV:
		vertical, line = true, vline
	case hasH:
		vertical, line = false, hline
	default:
		return ErrNoLineMetrics
	}

	var pen mgl32.Vec2
	if vertical {
		pen = mgl32.Vec2{-line.Ascent * size, 0}
	} else {
		pen = mgl32.Vec2{0, -line.Ascent * size}
	}

	for _, ln := range strings.Split(text, "\n") {
		ln = strings.TrimSuffix(ln, "\r")
		for _, c := range ln {
			m, tex, err := font.LoadAndGet(c, r.Facade)
			if err != nil {
				return err
			}
			if tex != nil {
				b := m.Bounds
				at := pen.Add(mgl32.Vec2{b.XMin * size, b.YMin * size})
				glyph := mgl32.Translate3D(at.X(), at.Y(), 0).
					Mul4(mgl32.Scale3D(b.Width*size, b.Height*size, 1))
				err := surface.Draw(r.Mesh, r.Program, gfx.Uniforms{
					"view":   view,
					"model":  model.Mul4(glyph),
					"camera": camera,
					"albedo": colour,
					"tex":    gfx.Sampled(tex).Clamped(),
				}, r.Params)
				if err != nil {
					return fmt.Errorf("draw glyph %q: %w", c, err)
				}
			}
			if vertical {
				pen[1] -= m.AdvanceHeight * size
			} else {
				pen[0] += m.AdvanceWidth * size
			}
		}
		if vertical {
			pen[1] = 0
			pen[0] -= line.NewLineSize * size
		} else {
			pen[0] = 0
			pen[1] -= line.NewLineSize * size
		}
	}
	return nil
}
