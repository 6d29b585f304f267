package opengl

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Attribute locations shared by every program and mesh.
const (
	attribPosition uint32 = iota
	attribTextureCoords
	attribNormal
)

var attribNames = [...]string{
	attribPosition:      "position",
	attribTextureCoords: "texture_coords",
	attribNormal:        "normal",
}

// Program is a linked shader program. It implements gfx.Program.
type Program struct {
	display  *Display
	id       uint32
	uniforms map[string]uniform
}

type uniform struct {
	location int32
	kind     uint32
}

// Delete frees the program.
func (p *Program) Delete() {
	if !p.display.live() {
		p.id = 0
		return
	}
	if p.id != 0 {
		gl.DeleteProgram(p.id)
		p.id = 0
	}
}

// newProgram compiles and links a program with the standard attribute
// locations bound, and records its active uniforms.
func newProgram(vertexSource, fragmentSource string) (*Program, error) {
	vertexShader, err := compileShader(gl.VERTEX_SHADER, vertexSource)
	if err != nil {
		return nil, fmt.Errorf("vertex shader compilation failed: %w", err)
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := compileShader(gl.FRAGMENT_SHADER, fragmentSource)
	if err != nil {
		return nil, fmt.Errorf("fragment shader compilation failed: %w", err)
	}
	defer gl.DeleteShader(fragmentShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	for loc, name := range attribNames {
		gl.BindAttribLocation(program, uint32(loc), gl.Str(name+"\x00"))
	}
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetProgramInfoLog(program, logLength, nil, &log[0])
		gl.DeleteProgram(program)
		return nil, fmt.Errorf("shader program linking failed: %s", trimLog(log))
	}

	return &Program{id: program, uniforms: activeUniforms(program)}, nil
}

func compileShader(kind uint32, source string) (uint32, error) {
	if !strings.HasSuffix(source, "\x00") {
		source += "\x00"
	}
	shader := gl.CreateShader(kind)
	csource, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetShaderInfoLog(shader, logLength, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, errors.New(trimLog(log))
	}
	return shader, nil
}

func activeUniforms(program uint32) map[string]uniform {
	var count, maxLen int32
	gl.GetProgramiv(program, gl.ACTIVE_UNIFORMS, &count)
	gl.GetProgramiv(program, gl.ACTIVE_UNIFORM_MAX_LENGTH, &maxLen)

	uniforms := make(map[string]uniform, count)
	buf := make([]byte, maxLen+1)
	for i := int32(0); i < count; i++ {
		var length, size int32
		var kind uint32
		gl.GetActiveUniform(program, uint32(i), maxLen+1, &length, &size, &kind, &buf[0])
		name := string(buf[:length])
		// Arrays report "name[0]"; thin only sets scalars.
		name = strings.TrimSuffix(name, "[0]")
		uniforms[name] = uniform{
			location: gl.GetUniformLocation(program, gl.Str(name+"\x00")),
			kind:     kind,
		}
	}
	return uniforms
}

func trimLog(log []byte) string {
	return strings.TrimRight(string(log), "\x00\n ")
}
