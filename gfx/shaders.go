package gfx

// VertexShader transforms "position" by the view, camera and model
// uniforms and passes "texture_coords" and "normal" through as uv and
// v_normal.
const VertexShader = `#version 410 core
in vec3 position;
in vec2 texture_coords;
in vec3 normal;

out vec2 uv;
out vec3 v_normal;

uniform mat4 view;
uniform mat4 camera;
uniform mat4 model;

void main() {
    uv = texture_coords;
    v_normal = mat3(transpose(inverse(model))) * normal;
    gl_Position = view * camera * model * vec4(position, 1.0);
}
`

// ScreenVertexShader leaves positions and UVs untouched. Pair it with
// ScreenQuad to draw over the whole target.
const ScreenVertexShader = `#version 410 core
in vec3 position;
in vec2 texture_coords;

out vec2 uv;

void main() {
    uv = texture_coords;
    gl_Position = vec4(position, 1.0);
}
`

// FXAAFragmentShader smooths aliased edges of a rendered colour texture.
// It expects a "tex" sampler and "pixel_size" (1/width, 1/height); see
// FXAAUniforms.
const FXAAFragmentShader = `#version 410 core
const float REDUCE_MIN = 1.0 / 128.0;
const float REDUCE_MUL = 1.0 / 8.0;
const float SPAN_MAX = 8.0;
const vec3 LUMA = vec3(0.299, 0.587, 0.114);

in vec2 uv;
out vec4 colour;

uniform sampler2D tex;
uniform vec2 pixel_size;

void main() {
    vec2 h = pixel_size * 0.5;
    float nw = dot(texture(tex, uv + vec2(-h.x, h.y)).rgb, LUMA);
    float ne = dot(texture(tex, uv + h).rgb, LUMA);
    float sw = dot(texture(tex, uv - h).rgb, LUMA);
    float se = dot(texture(tex, uv + vec2(h.x, -h.y)).rgb, LUMA);
    vec4 centre = texture(tex, uv);
    float m = dot(centre.rgb, LUMA);

    float lo = min(m, min(min(nw, ne), min(sw, se)));
    float hi = max(m, max(max(nw, ne), max(sw, se)));

    vec2 dir = vec2(-((nw + ne) - (sw + se)), (nw + sw) - (ne + se));
    float reduce = max((nw + ne + sw + se) * 0.25 * REDUCE_MUL, REDUCE_MIN);
    float scale = 1.0 / (min(abs(dir.x), abs(dir.y)) + reduce);
    dir = clamp(dir * scale, vec2(-SPAN_MAX), vec2(SPAN_MAX)) * pixel_size;

    vec3 a = 0.5 * (
        texture(tex, uv + dir * (1.0 / 3.0 - 0.5)).rgb +
        texture(tex, uv + dir * (2.0 / 3.0 - 0.5)).rgb);
    vec3 b = a * 0.5 + 0.25 * (
        texture(tex, uv - dir * 0.5).rgb +
        texture(tex, uv + dir * 0.5).rgb);

    float lb = dot(b, LUMA);
    if (lb < lo || lb > hi) {
        colour = vec4(a, centre.a);
    } else {
        colour = vec4(b, centre.a);
    }
}
`

// FXAAProgram compiles the screen vertex shader with the FXAA fragment shader.
func FXAAProgram(f Facade) (Program, error) {
	return f.NewProgram(ScreenVertexShader, FXAAFragmentShader)
}

// FXAAUniforms returns the uniforms the FXAA program needs to sample t.
func FXAAUniforms(t Texture) Uniforms {
	w, h := t.Size()
	return Uniforms{
		"tex":        Sampled(t).Clamped(),
		"pixel_size": pixelSize(w, h),
	}
}
