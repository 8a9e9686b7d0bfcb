// Package opengl implements gfx2d.Device on OpenGL 4.1 core and wires a GLFW
// window to a gfx2d.Pipeline.
package opengl

import (
	"image"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"golang.org/x/image/math/f32"

	"github.com/go-theft-auto/gfx2d"
)

// Device issues gfx2d device calls to the current OpenGL context.
//
// Core profile needs a vertex array object for attribute pointers; the device
// creates one and keeps it bound for its lifetime.
type Device struct {
	vao  uint32
	size func() (int, int)
}

var _ gfx2d.Device = (*Device)(nil)

// NewDevice wraps the current context. size reports the framebuffer size,
// e.g. (*glfw.Window).GetFramebufferSize. gl.Init must have been called.
func NewDevice(size func() (width, height int)) *Device {
	d := &Device{size: size}
	gl.GenVertexArrays(1, &d.vao)
	gl.BindVertexArray(d.vao)
	return d
}

// Delete releases the vertex array object.
func (d *Device) Delete() {
	if d.vao != 0 {
		gl.BindVertexArray(0)
		gl.DeleteVertexArrays(1, &d.vao)
		d.vao = 0
	}
}

func (d *Device) CreateShader(kind gfx2d.StageKind) gfx2d.ShaderHandle {
	switch kind {
	case gfx2d.VertexStage:
		return gfx2d.ShaderHandle(gl.CreateShader(gl.VERTEX_SHADER))
	case gfx2d.FragmentStage:
		return gfx2d.ShaderHandle(gl.CreateShader(gl.FRAGMENT_SHADER))
	default:
		return 0
	}
}

func (d *Device) ShaderSource(s gfx2d.ShaderHandle, source string) {
	csource, free := gl.Strs(cstr(source))
	gl.ShaderSource(uint32(s), 1, csource, nil)
	free()
}

func (d *Device) CompileShader(s gfx2d.ShaderHandle) (bool, string) {
	gl.CompileShader(uint32(s))

	var status int32
	gl.GetShaderiv(uint32(s), gl.COMPILE_STATUS, &status)
	if status == gl.TRUE {
		return true, ""
	}
	var logLength int32
	gl.GetShaderiv(uint32(s), gl.INFO_LOG_LENGTH, &logLength)
	return false, infoLog(logLength, func(buf *uint8) {
		gl.GetShaderInfoLog(uint32(s), logLength, nil, buf)
	})
}

func (d *Device) DeleteShader(s gfx2d.ShaderHandle) {
	gl.DeleteShader(uint32(s))
}

func (d *Device) CreateProgram() gfx2d.ProgramHandle {
	return gfx2d.ProgramHandle(gl.CreateProgram())
}

func (d *Device) AttachShader(p gfx2d.ProgramHandle, s gfx2d.ShaderHandle) {
	gl.AttachShader(uint32(p), uint32(s))
}

func (d *Device) DetachShader(p gfx2d.ProgramHandle, s gfx2d.ShaderHandle) {
	gl.DetachShader(uint32(p), uint32(s))
}

func (d *Device) LinkProgram(p gfx2d.ProgramHandle) (bool, string) {
	gl.LinkProgram(uint32(p))

	var status int32
	gl.GetProgramiv(uint32(p), gl.LINK_STATUS, &status)
	if status == gl.TRUE {
		return true, ""
	}
	var logLength int32
	gl.GetProgramiv(uint32(p), gl.INFO_LOG_LENGTH, &logLength)
	return false, infoLog(logLength, func(buf *uint8) {
		gl.GetProgramInfoLog(uint32(p), logLength, nil, buf)
	})
}

func (d *Device) DeleteProgram(p gfx2d.ProgramHandle) {
	gl.DeleteProgram(uint32(p))
}

func (d *Device) AttribLocation(p gfx2d.ProgramHandle, name string) int32 {
	return gl.GetAttribLocation(uint32(p), gl.Str(cstr(name)))
}

func (d *Device) UniformLocation(p gfx2d.ProgramHandle, name string) int32 {
	return gl.GetUniformLocation(uint32(p), gl.Str(cstr(name)))
}

func (d *Device) CreateBuffer() gfx2d.BufferHandle {
	var b uint32
	gl.GenBuffers(1, &b)
	return gfx2d.BufferHandle(b)
}

func (d *Device) BindBuffer(b gfx2d.BufferHandle) {
	gl.BindBuffer(gl.ARRAY_BUFFER, uint32(b))
}

func (d *Device) BufferData(data []float32, usage gfx2d.Usage) {
	hint := uint32(gl.STATIC_DRAW)
	if usage == gfx2d.DynamicDraw {
		hint = gl.DYNAMIC_DRAW
	}
	if len(data) == 0 {
		gl.BufferData(gl.ARRAY_BUFFER, 0, nil, hint)
		return
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), hint)
}

func (d *Device) DeleteBuffer(b gfx2d.BufferHandle) {
	h := uint32(b)
	gl.DeleteBuffers(1, &h)
}

func (d *Device) Viewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

func (d *Device) ClearColor(c gfx2d.Color) {
	gl.ClearColor(c.R, c.G, c.B, c.A)
}

func (d *Device) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (d *Device) UseProgram(p gfx2d.ProgramHandle) {
	gl.UseProgram(uint32(p))
}

func (d *Device) EnableVertexAttribArray(a gfx2d.AttributeHandle) {
	gl.EnableVertexAttribArray(uint32(a))
}

func (d *Device) VertexAttribPointer(a gfx2d.AttributeHandle, layout gfx2d.AttribLayout) {
	gl.VertexAttribPointerWithOffset(uint32(a), layout.Size, elementType(layout.Type),
		layout.Normalized, layout.Stride, layout.Offset)
}

func (d *Device) UniformMatrix3(u gfx2d.UniformHandle, m f32.Mat3) {
	gl.UniformMatrix3fv(int32(u), 1, false, &m[0])
}

func (d *Device) Uniform4(u gfx2d.UniformHandle, v f32.Vec4) {
	gl.Uniform4f(int32(u), v[0], v[1], v[2], v[3])
}

func (d *Device) DrawTriangles(first, count int) {
	gl.DrawArrays(gl.TRIANGLES, int32(first), int32(count))
}

func (d *Device) DrawableSize() (int, int) {
	if d.size == nil {
		var vp [4]int32
		gl.GetIntegerv(gl.VIEWPORT, &vp[0])
		return int(vp[2]), int(vp[3])
	}
	return d.size()
}

// ReadPixels copies the bottom-left width x height region of the framebuffer
// into an image with a top-left origin.
func (d *Device) ReadPixels(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	FlipRows(img.Pix, width*4, height)
	return img
}

// FlipRows reverses the row order of a tightly packed pixel buffer in place.
// OpenGL reads rows bottom-up.
func FlipRows(pix []byte, rowLen, height int) {
	tmp := make([]byte, rowLen)
	for y := 0; y < height/2; y++ {
		top := y * rowLen
		bot := (height - 1 - y) * rowLen
		copy(tmp, pix[top:top+rowLen])
		copy(pix[top:top+rowLen], pix[bot:bot+rowLen])
		copy(pix[bot:bot+rowLen], tmp)
	}
}

func elementType(t gfx2d.ElementType) uint32 {
	switch t {
	case gfx2d.Float32:
		return gl.FLOAT
	default:
		return gl.FLOAT
	}
}

// cstr null-terminates s for the GL string helpers.
func cstr(s string) string {
	if strings.HasSuffix(s, "\x00") {
		return s
	}
	return s + "\x00"
}

func infoLog(length int32, read func(*uint8)) string {
	if length <= 0 {
		return "no info log"
	}
	log := make([]byte, length+1)
	read(&log[0])
	return strings.TrimRight(string(log), "\x00")
}
