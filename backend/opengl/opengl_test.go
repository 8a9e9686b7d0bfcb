package opengl_test

import (
	"bytes"
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/gfx2d"
	"github.com/go-theft-auto/gfx2d/backend/opengl"
)

func TestKeyNudge(t *testing.T) {
	steps := gfx2d.ControlsConfig{MoveStep: 5, AngleStep: 15, ScaleStep: 0.1}

	tests := []struct {
		key  glfw.Key
		want opengl.Nudge
	}{
		{glfw.KeyLeft, opengl.Nudge{Param: gfx2d.ParamPositionX, Delta: -5}},
		{glfw.KeyRight, opengl.Nudge{Param: gfx2d.ParamPositionX, Delta: 5}},
		{glfw.KeyUp, opengl.Nudge{Param: gfx2d.ParamPositionY, Delta: -5}},
		{glfw.KeyDown, opengl.Nudge{Param: gfx2d.ParamPositionY, Delta: 5}},
		{glfw.KeyQ, opengl.Nudge{Param: gfx2d.ParamAngle, Delta: 15}},
		{glfw.KeyE, opengl.Nudge{Param: gfx2d.ParamAngle, Delta: -15}},
		{glfw.KeyA, opengl.Nudge{Param: gfx2d.ParamScaleX, Delta: -0.1}},
		{glfw.KeyD, opengl.Nudge{Param: gfx2d.ParamScaleX, Delta: 0.1}},
		{glfw.KeyS, opengl.Nudge{Param: gfx2d.ParamScaleY, Delta: -0.1}},
		{glfw.KeyW, opengl.Nudge{Param: gfx2d.ParamScaleY, Delta: 0.1}},
	}
	for _, tt := range tests {
		got, ok := opengl.KeyNudge(tt.key, steps)
		if !ok {
			t.Errorf("key %d is not bound", tt.key)
			continue
		}
		if got != tt.want {
			t.Errorf("KeyNudge(%d) = %+v, want %+v", tt.key, got, tt.want)
		}
	}

	if _, ok := opengl.KeyNudge(glfw.KeySpace, steps); ok {
		t.Error("space should not be bound")
	}
}

func TestFlipRows(t *testing.T) {
	pix := []byte{
		1, 1,
		2, 2,
		3, 3,
	}
	opengl.FlipRows(pix, 2, 3)

	want := []byte{
		3, 3,
		2, 2,
		1, 1,
	}
	if !bytes.Equal(pix, want) {
		t.Errorf("FlipRows() = %v, want %v", pix, want)
	}
}
