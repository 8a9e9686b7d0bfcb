package gfx2d

import (
	"fmt"
	"log/slog"
)

// FrameState is the step a frame has reached.
type FrameState int

const (
	StateIdle FrameState = iota
	StateCleared
	StateProgramBound
	StateGeometryBound
	StateUniformsBound
	StateDrawn
)

func (s FrameState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateCleared:
		return "cleared"
	case StateProgramBound:
		return "program-bound"
	case StateGeometryBound:
		return "geometry-bound"
	case StateUniformsBound:
		return "uniforms-bound"
	case StateDrawn:
		return "drawn"
	default:
		return fmt.Sprintf("FrameState(%d)", int(s))
	}
}

// Frame is everything one frame needs, computed from the scene without
// touching the device.
type Frame struct {
	Viewport Viewport
	Skip     bool     // nothing to draw into
	Model    Matrix2D // pixel-space shape transform
	Matrix   Matrix2D // Model followed by Projection(Viewport)
	Color    Color
	Vertices []Vec2 // regenerated geometry, nil for static shapes
}

// PlanFrame computes the frame for scene on a viewport.
//
// An empty viewport yields a skipped frame instead of dividing by zero in the
// pixel-to-clip projection.
func PlanFrame(scene SceneParameters, vp Viewport, shape Shape) Frame {
	f := Frame{Viewport: vp, Color: scene.Color}
	if vp.Empty() {
		f.Skip = true
		return f
	}
	f.Model = scene.Model()
	f.Matrix = Multiply(f.Model, Projection(vp))
	if shape.Dynamic() {
		f.Vertices = shape.Vertices(scene)
	}
	return f
}

// Clip maps a shape vertex to clip space in two steps: the model matrix to
// pixels, then PixelToClip. For a skipped frame it returns the zero vector.
func (f Frame) Clip(v Vec2) Vec2 {
	if f.Skip {
		return Vec2{}
	}
	return PixelToClip(f.Model.Apply(v), f.Viewport)
}

// Stats counts frames since the pipeline was built.
type Stats struct {
	Drawn   uint64
	Skipped uint64
}

// Pipeline draws one shape with one program. It owns the device objects it
// creates and must be used from the thread that owns the graphics context.
type Pipeline struct {
	dev      Device
	shape    Shape
	scene    *SceneParameters
	program  ProgramHandle
	bindings *Bindings
	position AttributeHandle
	matrix   UniformHandle
	color    UniformHandle
	geometry *GeometryBuffer

	clearColor Color
	present    func()
	log        *slog.Logger

	state   FrameState
	pending bool
	last    Frame
	stats   Stats
}

// PipelineOption configures a Pipeline.
type PipelineOption func(*Pipeline)

// WithClearColor sets the color the target is cleared to. Default is fully
// transparent.
func WithClearColor(c Color) PipelineOption {
	return func(p *Pipeline) { p.clearColor = c }
}

// WithPresent sets a hook run after every drawn frame, typically a buffer swap.
// The hook may call RenderOnce; see RenderOnce for how that is handled.
func WithPresent(fn func()) PipelineOption {
	return func(p *Pipeline) { p.present = fn }
}

// WithLogger overrides the package logger for this pipeline, including the
// compile and link diagnostics logged by NewPipeline.
func WithLogger(l *slog.Logger) PipelineOption {
	return func(p *Pipeline) { p.log = l }
}

// NewPipeline builds the program, resolves its inputs and fills the vertex
// buffer. A nil scene starts from DefaultScene.
//
// Any compile, link or resolution failure aborts construction; objects
// created so far are released.
func NewPipeline(dev Device, shape Shape, scene *SceneParameters, opts ...PipelineOption) (*Pipeline, error) {
	if scene == nil {
		s := DefaultScene()
		scene = &s
	}
	p := &Pipeline{
		dev:        dev,
		shape:      shape,
		scene:      scene,
		clearColor: ColorTransparent,
	}
	for _, opt := range opts {
		opt(p)
	}

	var err error
	p.program, err = buildProgram(dev, p.logger(), VertexShaderSource, FragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader: %w", err)
	}

	if err := p.resolve(); err != nil {
		p.Delete()
		return nil, err
	}

	usage := StaticDraw
	if shape.Dynamic() {
		usage = DynamicDraw
	}
	p.geometry, err = NewGeometryBuffer(dev, usage)
	if err != nil {
		p.Delete()
		return nil, err
	}
	if !shape.Dynamic() {
		if err := p.geometry.Upload(shape.Vertices(*scene)); err != nil {
			p.Delete()
			return nil, fmt.Errorf("shape %s: %w", shape.Name(), err)
		}
	}

	p.logger().Info("pipeline ready", "shape", shape.Name(), "dynamic", shape.Dynamic(), "vertices", p.geometry.Len())
	return p, nil
}

func (p *Pipeline) resolve() error {
	p.bindings = NewBindings(p.dev, p.program)

	var err error
	if p.position, err = p.bindings.Attribute(AttrPosition); err != nil {
		return err
	}
	if p.matrix, err = p.bindings.Uniform(UniformMatrix); err != nil {
		return err
	}
	if p.color, err = p.bindings.Uniform(UniformColor); err != nil {
		return err
	}
	return nil
}

// RenderOnce draws one complete frame with the current scene.
//
// A call made while a frame is in progress (from the present hook, say) does
// not nest: one more frame is drawn with the latest scene once the current
// one finishes. At most one such follow-up frame is drawn per outer call;
// requests made while the follow-up draws are dropped, so a hook that always
// asks for a redraw cannot keep RenderOnce from returning.
func (p *Pipeline) RenderOnce() error {
	if p.program == 0 {
		return ErrInvalidProgram
	}
	if p.state != StateIdle {
		p.pending = true
		return nil
	}
	if err := p.frame(); err != nil {
		p.pending = false
		return err
	}
	if !p.pending {
		return nil
	}
	p.pending = false
	err := p.frame()
	if p.pending {
		p.pending = false
		p.logger().Debug("redraw request dropped")
	}
	return err
}

func (p *Pipeline) frame() error {
	defer func() { p.state = StateIdle }()

	w, h := p.dev.DrawableSize()
	f := PlanFrame(*p.scene, Viewport{Width: w, Height: h}, p.shape)
	p.last = f
	if f.Skip {
		p.stats.Skipped++
		p.logger().Warn("skipping frame", "width", w, "height", h)
		return nil
	}

	p.dev.Viewport(0, 0, w, h)
	p.dev.ClearColor(p.clearColor)
	p.dev.Clear()
	if err := p.advance(StateCleared); err != nil {
		return err
	}

	p.dev.UseProgram(p.program)
	if err := p.advance(StateProgramBound); err != nil {
		return err
	}

	if f.Vertices != nil {
		if err := p.geometry.Upload(f.Vertices); err != nil {
			return fmt.Errorf("shape %s: %w", p.shape.Name(), err)
		}
	} else {
		p.geometry.Bind()
	}
	p.bindings.BindAttribute(p.position, PositionLayout)
	if err := p.advance(StateGeometryBound); err != nil {
		return err
	}

	p.dev.UniformMatrix3(p.matrix, f.Matrix.Mat3())
	p.dev.Uniform4(p.color, f.Color.Vec4())
	if err := p.advance(StateUniformsBound); err != nil {
		return err
	}

	p.dev.DrawTriangles(0, p.geometry.Len())
	if err := p.advance(StateDrawn); err != nil {
		return err
	}

	if p.present != nil {
		p.present()
	}
	p.stats.Drawn++
	return nil
}

func (p *Pipeline) logger() *slog.Logger {
	if p.log != nil {
		return p.log
	}
	return Logger()
}

// advance moves the frame one step forward. Steps cannot be skipped or repeated.
func (p *Pipeline) advance(next FrameState) error {
	if next != p.state+1 {
		return &PreconditionError{
			Op:     "advance frame",
			Reason: fmt.Sprintf("cannot go from %s to %s", p.state, next),
		}
	}
	p.logger().Debug("frame state", "from", p.state.String(), "to", next.String())
	p.state = next
	return nil
}

// OnParameterChanged applies one control-surface update and draws a frame.
func (p *Pipeline) OnParameterChanged(name Param, value float32) error {
	if err := p.scene.Set(name, value); err != nil {
		p.logger().Warn("parameter rejected", "param", string(name), "value", value, "error", err)
		return err
	}
	return p.RenderOnce()
}

// Scene returns the live scene parameters.
func (p *Pipeline) Scene() *SceneParameters {
	return p.scene
}

// Shape returns the shape selected at construction.
func (p *Pipeline) Shape() Shape {
	return p.shape
}

// State returns the current frame state; StateIdle between frames.
func (p *Pipeline) State() FrameState {
	return p.state
}

// LastFrame returns the most recently planned frame.
func (p *Pipeline) LastFrame() Frame {
	return p.last
}

// Stats returns frame counters.
func (p *Pipeline) Stats() Stats {
	return p.stats
}

// Delete releases the program and the vertex buffer.
func (p *Pipeline) Delete() {
	if p.geometry != nil {
		p.geometry.Delete()
		p.geometry = nil
	}
	if p.program != 0 {
		p.dev.DeleteProgram(p.program)
		p.program = 0
	}
}
