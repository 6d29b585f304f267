package gfx

import "github.com/go-gl/mathgl/mgl32"

// ViewMatrix2D maps a world where y runs from -1 to 1 onto a target of the
// given size, keeping squares square. Width grows with the aspect ratio.
func ViewMatrix2D(width, height int) mgl32.Mat4 {
	if width <= 0 || height <= 0 {
		return mgl32.Ident4()
	}
	return mgl32.Scale3D(float32(height)/float32(width), 1, 1)
}

// ViewMatrix3D returns a perspective projection for a target of the given
// size. fovy is in radians.
func ViewMatrix3D(width, height int, fovy, near, far float32) mgl32.Mat4 {
	aspect := float32(1)
	if width > 0 && height > 0 {
		aspect = float32(width) / float32(height)
	}
	return mgl32.Perspective(fovy, aspect, near, far)
}

func pixelSize(width, height int) mgl32.Vec2 {
	if width <= 0 || height <= 0 {
		return mgl32.Vec2{}
	}
	return mgl32.Vec2{1 / float32(width), 1 / float32(height)}
}
