package gfx2d_test

import (
	"fmt"
	"strings"

	"golang.org/x/image/math/f32"

	"github.com/go-theft-auto/gfx2d"
)

// fakeDevice is a recording gfx2d.Device that emulates just enough of a GL
// context: object names, compile/link results, active names and buffer data.
type fakeDevice struct {
	next uint32

	// failCompile makes compilation of the given stage kind fail.
	failCompile map[gfx2d.StageKind]string
	// failLink makes LinkProgram fail with this log when non-empty.
	failLink string
	// missing names are reported as inactive (-1).
	missing map[string]bool

	width, height int

	shaders  map[gfx2d.ShaderHandle]gfx2d.StageKind
	programs map[gfx2d.ProgramHandle]bool
	buffers  map[gfx2d.BufferHandle][]float32
	bound    gfx2d.BufferHandle

	lookups  map[string]int
	calls    []string
	matrices []f32.Mat3
	colors   []f32.Vec4
	layouts  []gfx2d.AttribLayout
	draws    [][2]int
	clears   []gfx2d.Color
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{
		failCompile: make(map[gfx2d.StageKind]string),
		missing:     make(map[string]bool),
		width:       100,
		height:      100,
		shaders:     make(map[gfx2d.ShaderHandle]gfx2d.StageKind),
		programs:    make(map[gfx2d.ProgramHandle]bool),
		buffers:     make(map[gfx2d.BufferHandle][]float32),
		lookups:     make(map[string]int),
	}
}

func (d *fakeDevice) record(format string, args ...any) {
	d.calls = append(d.calls, fmt.Sprintf(format, args...))
}

func (d *fakeDevice) id() uint32 {
	d.next++
	return d.next
}

// names returns the recorded call names without arguments.
func (d *fakeDevice) names() []string {
	out := make([]string, len(d.calls))
	for i, c := range d.calls {
		out[i], _, _ = strings.Cut(c, " ")
	}
	return out
}

func (d *fakeDevice) reset() {
	d.calls = nil
	d.matrices = nil
	d.colors = nil
	d.layouts = nil
	d.draws = nil
	d.clears = nil
}

func (d *fakeDevice) CreateShader(kind gfx2d.StageKind) gfx2d.ShaderHandle {
	h := gfx2d.ShaderHandle(d.id())
	d.shaders[h] = kind
	d.record("CreateShader %s", kind)
	return h
}

func (d *fakeDevice) ShaderSource(s gfx2d.ShaderHandle, source string) {
	d.record("ShaderSource %d", s)
}

func (d *fakeDevice) CompileShader(s gfx2d.ShaderHandle) (bool, string) {
	d.record("CompileShader %d", s)
	if log, ok := d.failCompile[d.shaders[s]]; ok {
		return false, log
	}
	return true, ""
}

func (d *fakeDevice) DeleteShader(s gfx2d.ShaderHandle) {
	delete(d.shaders, s)
	d.record("DeleteShader %d", s)
}

func (d *fakeDevice) CreateProgram() gfx2d.ProgramHandle {
	h := gfx2d.ProgramHandle(d.id())
	d.programs[h] = true
	d.record("CreateProgram")
	return h
}

func (d *fakeDevice) AttachShader(p gfx2d.ProgramHandle, s gfx2d.ShaderHandle) {
	d.record("AttachShader %d %d", p, s)
}

func (d *fakeDevice) DetachShader(p gfx2d.ProgramHandle, s gfx2d.ShaderHandle) {
	d.record("DetachShader %d %d", p, s)
}

func (d *fakeDevice) LinkProgram(p gfx2d.ProgramHandle) (bool, string) {
	d.record("LinkProgram %d", p)
	if d.failLink != "" {
		return false, d.failLink
	}
	return true, ""
}

func (d *fakeDevice) DeleteProgram(p gfx2d.ProgramHandle) {
	delete(d.programs, p)
	d.record("DeleteProgram %d", p)
}

func (d *fakeDevice) location(name string) int32 {
	d.lookups[name]++
	if d.missing[name] {
		return -1
	}
	switch name {
	case gfx2d.AttrPosition:
		return 0
	case gfx2d.UniformMatrix:
		return 1
	case gfx2d.UniformColor:
		return 2
	default:
		return -1
	}
}

func (d *fakeDevice) AttribLocation(p gfx2d.ProgramHandle, name string) int32 {
	d.record("AttribLocation %s", name)
	return d.location(name)
}

func (d *fakeDevice) UniformLocation(p gfx2d.ProgramHandle, name string) int32 {
	d.record("UniformLocation %s", name)
	return d.location(name)
}

func (d *fakeDevice) CreateBuffer() gfx2d.BufferHandle {
	h := gfx2d.BufferHandle(d.id())
	d.buffers[h] = nil
	d.record("CreateBuffer")
	return h
}

func (d *fakeDevice) BindBuffer(b gfx2d.BufferHandle) {
	d.bound = b
	d.record("BindBuffer %d", b)
}

func (d *fakeDevice) BufferData(data []float32, usage gfx2d.Usage) {
	d.buffers[d.bound] = append([]float32(nil), data...)
	d.record("BufferData %d", len(data))
}

func (d *fakeDevice) DeleteBuffer(b gfx2d.BufferHandle) {
	delete(d.buffers, b)
	d.record("DeleteBuffer %d", b)
}

func (d *fakeDevice) Viewport(x, y, width, height int) {
	d.record("Viewport %d %d %d %d", x, y, width, height)
}

func (d *fakeDevice) ClearColor(c gfx2d.Color) {
	d.clears = append(d.clears, c)
	d.record("ClearColor")
}

func (d *fakeDevice) Clear() { d.record("Clear") }

func (d *fakeDevice) UseProgram(p gfx2d.ProgramHandle) {
	d.record("UseProgram %d", p)
}

func (d *fakeDevice) EnableVertexAttribArray(a gfx2d.AttributeHandle) {
	d.record("EnableVertexAttribArray %d", a)
}

func (d *fakeDevice) VertexAttribPointer(a gfx2d.AttributeHandle, layout gfx2d.AttribLayout) {
	d.layouts = append(d.layouts, layout)
	d.record("VertexAttribPointer %d", a)
}

func (d *fakeDevice) UniformMatrix3(u gfx2d.UniformHandle, m f32.Mat3) {
	d.matrices = append(d.matrices, m)
	d.record("UniformMatrix3 %d", u)
}

func (d *fakeDevice) Uniform4(u gfx2d.UniformHandle, v f32.Vec4) {
	d.colors = append(d.colors, v)
	d.record("Uniform4 %d", u)
}

func (d *fakeDevice) DrawTriangles(first, count int) {
	d.draws = append(d.draws, [2]int{first, count})
	d.record("DrawTriangles %d %d", first, count)
}

func (d *fakeDevice) DrawableSize() (int, int) {
	return d.width, d.height
}

var _ gfx2d.Device = (*fakeDevice)(nil)
