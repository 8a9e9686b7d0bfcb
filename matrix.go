package gfx2d

import (
	"github.com/chewxy/math32"
	"golang.org/x/image/math/f32"
)

// Matrix2D is a 3x3 homogeneous matrix stored in row-major order:
//
//	| m0 m1 m2 |
//	| m3 m4 m5 |
//	| m6 m7 m8 |
//
// Points are row vectors and are transformed as p' = p · M:
//
//	x' = x*m0 + y*m3 + m6
//	y' = x*m1 + y*m4 + m7
//
// The affine constructors always produce a last column of (0, 0, 1).
type Matrix2D [9]float32

// Identity returns the identity matrix.
func Identity() Matrix2D {
	return Matrix2D{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Translation creates a matrix that moves points by (tx, ty).
func Translation(tx, ty float32) Matrix2D {
	return Matrix2D{
		1, 0, 0,
		0, 1, 0,
		tx, ty, 1,
	}
}

// Rotation creates a counter-clockwise rotation by angle radians.
// The point (1, 0) rotated by π/2 lands on (0, 1).
func Rotation(angle float32) Matrix2D {
	s, c := math32.Sincos(angle)
	return Matrix2D{
		c, s, 0,
		-s, c, 0,
		0, 0, 1,
	}
}

// Scale creates a non-uniform scale matrix.
func Scale(sx, sy float32) Matrix2D {
	return Matrix2D{
		sx, 0, 0,
		0, sy, 0,
		0, 0, 1,
	}
}

// Multiply returns the product a · b.
//
// With row vectors, applying the result to a point is the same as applying a
// first and b second.
func Multiply(a, b Matrix2D) Matrix2D {
	var m Matrix2D
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			m[row*3+col] = a[row*3+0]*b[0*3+col] +
				a[row*3+1]*b[1*3+col] +
				a[row*3+2]*b[2*3+col]
		}
	}
	return m
}

// Compose multiplies the matrices in the order they are applied to a point.
//
//	Compose(Scale(2, 1), Rotation(θ), Translation(5, 5))
//
// scales first, then rotates, then translates. Compose with no arguments
// returns the identity.
func Compose(ms ...Matrix2D) Matrix2D {
	out := Identity()
	for _, m := range ms {
		out = Multiply(out, m)
	}
	return out
}

// ModelMatrix builds the shape transform: scale, then rotation, then translation.
func ModelMatrix(scale Vec2, angle float32, translation Vec2) Matrix2D {
	return Compose(
		Scale(scale.X, scale.Y),
		Rotation(angle),
		Translation(translation.X, translation.Y),
	)
}

// Projection maps pixel coordinates with a top-left origin to clip space:
// (0, 0) goes to (-1, 1) and (W, H) goes to (1, -1).
func Projection(vp Viewport) Matrix2D {
	sx := 2 / float32(vp.Width)
	sy := 2 / float32(vp.Height)
	return Matrix2D{
		sx, 0, 0,
		0, -sy, 0,
		-1, 1, 1,
	}
}

// PixelToClip converts a pixel position to clip space. It is exactly
// Projection(vp).Apply(p), so the float32 results match the matrix path bit
// for bit:
//
//	x' = x*(2/W) - 1
//	y' = -(y*(2/H) - 1)
//
// The pipeline uploads Model·Projection as one matrix. That fused product
// rounds differently and can differ from PixelToClip(Model.Apply(p)) in the
// last bit; Frame.Clip evaluates the unfused chain.
func PixelToClip(p Vec2, vp Viewport) Vec2 {
	return Projection(vp).Apply(p)
}

// Apply transforms a point.
func (m Matrix2D) Apply(p Vec2) Vec2 {
	return Vec2{
		X: p.X*m[0] + p.Y*m[3] + m[6],
		Y: p.X*m[1] + p.Y*m[4] + m[7],
	}
}

// Mat3 returns the matrix in upload order for a mat3 uniform.
//
// GLSL reads the nine floats column by column, so the row-major row-vector
// matrix sent without transposition is exactly the column-vector matrix used
// by u_matrix * vec3(p, 1).
func (m Matrix2D) Mat3() f32.Mat3 {
	return f32.Mat3(m)
}

// Equal reports whether every element differs by at most eps.
func (m Matrix2D) Equal(other Matrix2D, eps float32) bool {
	for i := range m {
		if math32.Abs(m[i]-other[i]) > eps {
			return false
		}
	}
	return true
}

// Affine reports whether the last column is (0, 0, 1).
func (m Matrix2D) Affine() bool {
	return m[2] == 0 && m[5] == 0 && m[8] == 1
}
