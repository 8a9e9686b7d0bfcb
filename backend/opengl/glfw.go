package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/gfx2d"
)

// Target is what the controls drive; *gfx2d.Pipeline implements it.
type Target interface {
	OnParameterChanged(name gfx2d.Param, value float32) error
	RenderOnce() error
	Scene() *gfx2d.SceneParameters
}

// Nudge is the parameter change bound to one key.
type Nudge struct {
	Param gfx2d.Param
	Delta float32
}

// Controls turns GLFW key presses into parameter updates and redraws on
// framebuffer resize. Callbacks run on the main thread during PollEvents, so
// every frame is drawn synchronously from the callback.
type Controls struct {
	window  *glfw.Window
	target  Target
	steps   gfx2d.ControlsConfig
	initial gfx2d.SceneParameters
}

// NewControls installs key and framebuffer-size callbacks on window.
// The target's scene at this point becomes the reset state.
func NewControls(window *glfw.Window, target Target, steps gfx2d.ControlsConfig) *Controls {
	c := &Controls{
		window:  window,
		target:  target,
		steps:   steps,
		initial: *target.Scene(),
	}

	window.SetKeyCallback(c.keyCallback)
	window.SetFramebufferSizeCallback(c.framebufferSizeCallback)

	return c
}

func (c *Controls) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action != glfw.Press && action != glfw.Repeat {
		return
	}

	switch key {
	case glfw.KeyEscape:
		w.SetShouldClose(true)
		return
	case glfw.KeyR:
		*c.target.Scene() = c.initial
		c.report(c.target.RenderOnce())
		return
	}

	nudge, ok := KeyNudge(key, c.steps)
	if !ok {
		return
	}
	current, err := c.target.Scene().Get(nudge.Param)
	if err != nil {
		c.report(err)
		return
	}
	c.report(c.target.OnParameterChanged(nudge.Param, current+nudge.Delta))
}

func (c *Controls) framebufferSizeCallback(w *glfw.Window, width, height int) {
	c.report(c.target.RenderOnce())
}

func (c *Controls) report(err error) {
	if err != nil {
		gfx2d.Logger().Error("frame failed", "error", err)
	}
}

// KeyNudge maps a key to the parameter it adjusts.
//
//	Left/Right  position-x      Up/Down  position-y
//	Q/E         angle           A/D      scale-x
//	S/W         scale-y
func KeyNudge(key glfw.Key, steps gfx2d.ControlsConfig) (Nudge, bool) {
	switch key {
	case glfw.KeyLeft:
		return Nudge{gfx2d.ParamPositionX, -steps.MoveStep}, true
	case glfw.KeyRight:
		return Nudge{gfx2d.ParamPositionX, steps.MoveStep}, true
	case glfw.KeyUp:
		return Nudge{gfx2d.ParamPositionY, -steps.MoveStep}, true
	case glfw.KeyDown:
		return Nudge{gfx2d.ParamPositionY, steps.MoveStep}, true
	case glfw.KeyQ:
		return Nudge{gfx2d.ParamAngle, steps.AngleStep}, true
	case glfw.KeyE:
		return Nudge{gfx2d.ParamAngle, -steps.AngleStep}, true
	case glfw.KeyA:
		return Nudge{gfx2d.ParamScaleX, -steps.ScaleStep}, true
	case glfw.KeyD:
		return Nudge{gfx2d.ParamScaleX, steps.ScaleStep}, true
	case glfw.KeyS:
		return Nudge{gfx2d.ParamScaleY, -steps.ScaleStep}, true
	case glfw.KeyW:
		return Nudge{gfx2d.ParamScaleY, steps.ScaleStep}, true
	default:
		return Nudge{}, false
	}
}
