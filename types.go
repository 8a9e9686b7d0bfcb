package gfx2d

import "golang.org/x/image/math/f32"

// Vec2 represents a 2D point or size in pixel units.
type Vec2 struct {
	X, Y float32
}

// Add returns the sum of two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2) Mul(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Color is a straight RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float32
}

// Color constants.
var (
	ColorTransparent = Color{}
	ColorBlack       = Color{A: 1}
	ColorWhite       = Color{R: 1, G: 1, B: 1, A: 1}
	ColorPurple      = Color{R: 1, B: 0.5, A: 1} // default shape color
)

// RGBAf creates a color from float components, clamping each to [0, 1].
func RGBAf(r, g, b, a float32) Color {
	return Color{
		R: clampf(r, 0, 1),
		G: clampf(g, 0, 1),
		B: clampf(b, 0, 1),
		A: clampf(a, 0, 1),
	}
}

// Vec4 returns the color in the layout expected by a vec4 uniform.
func (c Color) Vec4() f32.Vec4 {
	return f32.Vec4{c.R, c.G, c.B, c.A}
}

// Viewport is the drawable size in pixels reported by the host context.
type Viewport struct {
	Width, Height int
}

// Empty reports whether the viewport has no drawable area.
func (vp Viewport) Empty() bool {
	return vp.Width <= 0 || vp.Height <= 0
}

// Size returns the viewport size as a vector.
func (vp Viewport) Size() Vec2 {
	return Vec2{X: float32(vp.Width), Y: float32(vp.Height)}
}

// clampf clamps a float32 value to a range.
func clampf(v, minVal, maxVal float32) float32 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
