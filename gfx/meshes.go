package gfx

import "github.com/go-gl/mathgl/mgl32"

// ScreenQuad covers clip space from (-1,-1) to (1,1). Draw it with
// ScreenVertexShader for full-screen passes such as FXAA.
func ScreenQuad() MeshDesc {
	return MeshDesc{
		Positions: []mgl32.Vec3{
			{1, 1, 0},
			{1, -1, 0},
			{-1, 1, 0},
			{-1, -1, 0},
		},
		UVs: []mgl32.Vec2{
			{1, 1},
			{1, 0},
			{0, 1},
			{0, 0},
		},
		Indices: []uint32{
			0, 2, 1,
			1, 2, 3,
		},
	}
}

// UnitQuad spans (0,0) to (1,1) in the XY plane with matching UVs. Scaled
// and translated per glyph, it is the only geometry the text renderer uses.
func UnitQuad() MeshDesc {
	return MeshDesc{
		Positions: []mgl32.Vec3{
			{0, 1, 0},
			{0, 0, 0},
			{1, 1, 0},
			{1, 0, 0},
		},
		UVs: []mgl32.Vec2{
			{0, 1},
			{0, 0},
			{1, 1},
			{1, 0},
		},
		Indices: []uint32{1, 0, 2, 2, 3, 1},
	}
}
