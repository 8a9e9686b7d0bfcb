package gfx2d

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Param names one scalar the control surface can change.
type Param string

const (
	ParamPositionX Param = "position-x"
	ParamPositionY Param = "position-y"
	ParamAngle     Param = "angle" // degrees on the wire, radians in SceneParameters
	ParamScaleX    Param = "scale-x"
	ParamScaleY    Param = "scale-y"
	ParamWidth     Param = "width"
	ParamHeight    Param = "height"
	ParamColorR    Param = "color-r"
	ParamColorG    Param = "color-g"
	ParamColorB    Param = "color-b"
	ParamColorA    Param = "color-a"
)

// Params lists every parameter in display order.
func Params() []Param {
	return []Param{
		ParamPositionX, ParamPositionY,
		ParamAngle,
		ParamScaleX, ParamScaleY,
		ParamWidth, ParamHeight,
		ParamColorR, ParamColorG, ParamColorB, ParamColorA,
	}
}

// SceneParameters is the mutable state of the single shape on screen.
type SceneParameters struct {
	Translation Vec2    // pixels, top-left origin
	Angle       float32 // radians, counter-clockwise for row vectors
	Scale       Vec2
	Size        Vec2 // width and height for shapes sized from parameters
	Color       Color
}

// DefaultScene returns the starting parameters: the shape near the top-left
// corner at its natural size, drawn in purple.
func DefaultScene() SceneParameters {
	return SceneParameters{
		Translation: Vec2{X: 100, Y: 150},
		Scale:       Vec2{X: 1, Y: 1},
		Size:        Vec2{X: 100, Y: 150},
		Color:       ColorPurple,
	}
}

// Degrees converts degrees to radians.
func Degrees(deg float32) float32 {
	return deg * math32.Pi / 180
}

// ToDegrees converts radians to degrees.
func ToDegrees(rad float32) float32 {
	return rad * 180 / math32.Pi
}

// Set updates one parameter. Angle values are degrees; color components are
// clamped to [0, 1].
func (s *SceneParameters) Set(name Param, value float32) error {
	if math32.IsNaN(value) || math32.IsInf(value, 0) {
		return fmt.Errorf("parameter %s: value %v is not finite", name, value)
	}
	switch name {
	case ParamPositionX:
		s.Translation.X = value
	case ParamPositionY:
		s.Translation.Y = value
	case ParamAngle:
		s.Angle = Degrees(value)
	case ParamScaleX:
		s.Scale.X = value
	case ParamScaleY:
		s.Scale.Y = value
	case ParamWidth:
		s.Size.X = value
	case ParamHeight:
		s.Size.Y = value
	case ParamColorR:
		s.Color.R = clampf(value, 0, 1)
	case ParamColorG:
		s.Color.G = clampf(value, 0, 1)
	case ParamColorB:
		s.Color.B = clampf(value, 0, 1)
	case ParamColorA:
		s.Color.A = clampf(value, 0, 1)
	default:
		return fmt.Errorf("unknown parameter %q", name)
	}
	return nil
}

// Get returns the current value of one parameter, with the angle in degrees.
func (s *SceneParameters) Get(name Param) (float32, error) {
	switch name {
	case ParamPositionX:
		return s.Translation.X, nil
	case ParamPositionY:
		return s.Translation.Y, nil
	case ParamAngle:
		return ToDegrees(s.Angle), nil
	case ParamScaleX:
		return s.Scale.X, nil
	case ParamScaleY:
		return s.Scale.Y, nil
	case ParamWidth:
		return s.Size.X, nil
	case ParamHeight:
		return s.Size.Y, nil
	case ParamColorR:
		return s.Color.R, nil
	case ParamColorG:
		return s.Color.G, nil
	case ParamColorB:
		return s.Color.B, nil
	case ParamColorA:
		return s.Color.A, nil
	default:
		return 0, fmt.Errorf("unknown parameter %q", name)
	}
}

// Model returns the shape transform in pixel space.
func (s *SceneParameters) Model() Matrix2D {
	return ModelMatrix(s.Scale, s.Angle, s.Translation)
}
