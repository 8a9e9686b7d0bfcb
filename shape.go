package gfx2d

import (
	"fmt"
	"sort"
)

// Shape generates the triangle-list geometry drawn by the pipeline.
//
// Static shapes are uploaded once when the pipeline is built. Dynamic shapes
// are regenerated from the scene and uploaded again every frame.
type Shape interface {
	Name() string
	Vertices(scene SceneParameters) []Vec2
	Dynamic() bool
}

// Triangle is a single right triangle, 140x100 pixels.
type Triangle struct{}

func (Triangle) Name() string  { return "triangle" }
func (Triangle) Dynamic() bool { return false }

func (Triangle) Vertices(SceneParameters) []Vec2 {
	return []Vec2{
		{X: 0, Y: 0},
		{X: 0, Y: 100},
		{X: 140, Y: 0},
	}
}

// Rectangle is a filled rectangle whose corners follow the scene Size.
// Its top-left corner sits on the origin; the model matrix places it.
type Rectangle struct{}

func (Rectangle) Name() string  { return "rectangle" }
func (Rectangle) Dynamic() bool { return true }

func (Rectangle) Vertices(scene SceneParameters) []Vec2 {
	return rectangle(0, 0, scene.Size.X, scene.Size.Y)
}

// LetterF is the static "F" built from a column and two rungs.
type LetterF struct {
	Width, Height, Thickness float32
}

// DefaultLetterF returns the 100x150 "F" with 30 pixel strokes.
func DefaultLetterF() LetterF {
	return LetterF{Width: 100, Height: 150, Thickness: 30}
}

func (LetterF) Name() string  { return "letter-f" }
func (LetterF) Dynamic() bool { return false }

func (f LetterF) Vertices(SceneParameters) []Vec2 {
	t := f.Thickness
	rung := f.Width * 2 / 3
	out := make([]Vec2, 0, 18)
	// column, top rung, middle rung
	out = append(out, rectangle(0, 0, t, f.Height)...)
	out = append(out, rectangle(t, 0, f.Width-t, t)...)
	out = append(out, rectangle(t, 2*t, rung-t, t)...)
	return out
}

// UnitSquare is the 1x1 square made of two triangles.
type UnitSquare struct{}

func (UnitSquare) Name() string  { return "unit-square" }
func (UnitSquare) Dynamic() bool { return false }

func (UnitSquare) Vertices(SceneParameters) []Vec2 {
	return []Vec2{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1},
		{X: 0, Y: 1}, {X: 1, Y: 0}, {X: 1, Y: 1},
	}
}

// StaticShape is a fixed list of triangle vertices.
type StaticShape struct {
	Label  string
	Points []Vec2
}

// Triangles wraps a fixed vertex list as a static shape.
func Triangles(name string, points []Vec2) StaticShape {
	return StaticShape{Label: name, Points: append([]Vec2(nil), points...)}
}

func (s StaticShape) Name() string  { return s.Label }
func (s StaticShape) Dynamic() bool { return false }

func (s StaticShape) Vertices(SceneParameters) []Vec2 {
	return append([]Vec2(nil), s.Points...)
}

var shapes = map[string]func() Shape{
	"triangle":    func() Shape { return Triangle{} },
	"rectangle":   func() Shape { return Rectangle{} },
	"letter-f":    func() Shape { return DefaultLetterF() },
	"unit-square": func() Shape { return UnitSquare{} },
}

// ShapeByName returns the built-in shape registered under name.
func ShapeByName(name string) (Shape, error) {
	mk, ok := shapes[name]
	if !ok {
		return nil, fmt.Errorf("unknown shape %q (want one of %v)", name, ShapeNames())
	}
	return mk(), nil
}

// ShapeNames lists the built-in shapes in sorted order.
func ShapeNames() []string {
	names := make([]string, 0, len(shapes))
	for name := range shapes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// rectangle returns the two triangles covering (x, y, w, h).
func rectangle(x, y, w, h float32) []Vec2 {
	x1, x2 := x, x+w
	y1, y2 := y, y+h
	return []Vec2{
		{X: x1, Y: y1}, {X: x2, Y: y1}, {X: x1, Y: y2},
		{X: x1, Y: y2}, {X: x2, Y: y1}, {X: x2, Y: y2},
	}
}
