package gfx2d

import "golang.org/x/image/math/f32"

// ShaderHandle identifies a shader stage object on the device. Zero is never valid.
type ShaderHandle uint32

// ProgramHandle identifies a linked program on the device. Zero is never valid.
type ProgramHandle uint32

// BufferHandle identifies a vertex buffer on the device. Zero is never valid.
type BufferHandle uint32

// AttributeHandle is the location of a vertex attribute in a linked program.
type AttributeHandle int32

// UniformHandle is the location of a uniform in a linked program.
type UniformHandle int32

// ElementType is the scalar type of one attribute component.
type ElementType int

const (
	Float32 ElementType = iota
)

// Usage hints how often a buffer's contents are replaced.
type Usage int

const (
	StaticDraw  Usage = iota // uploaded once, drawn many times
	DynamicDraw              // replaced every frame
)

// AttribLayout describes how an attribute pulls data from the bound buffer.
type AttribLayout struct {
	Size       int32       // components per vertex
	Type       ElementType // component type
	Normalized bool
	Stride     int32   // bytes between vertices, 0 = tightly packed
	Offset     uintptr // byte offset of the first component
}

// PositionLayout is the layout of a tightly packed buffer of 2D float positions.
var PositionLayout = AttribLayout{Size: 2, Type: Float32}

// Device is the graphics backend consumed by the pipeline.
//
// Implementations wrap a current graphics context; all methods are called from
// the thread that owns it. Locations follow the GL convention: -1 means the
// name is not active in the program.
type Device interface {
	CreateShader(kind StageKind) ShaderHandle
	ShaderSource(s ShaderHandle, source string)
	CompileShader(s ShaderHandle) (ok bool, log string)
	DeleteShader(s ShaderHandle)

	CreateProgram() ProgramHandle
	AttachShader(p ProgramHandle, s ShaderHandle)
	DetachShader(p ProgramHandle, s ShaderHandle)
	LinkProgram(p ProgramHandle) (ok bool, log string)
	DeleteProgram(p ProgramHandle)

	AttribLocation(p ProgramHandle, name string) int32
	UniformLocation(p ProgramHandle, name string) int32

	CreateBuffer() BufferHandle
	BindBuffer(b BufferHandle)
	BufferData(data []float32, usage Usage)
	DeleteBuffer(b BufferHandle)

	Viewport(x, y, width, height int)
	ClearColor(c Color)
	Clear()
	UseProgram(p ProgramHandle)
	EnableVertexAttribArray(a AttributeHandle)
	VertexAttribPointer(a AttributeHandle, layout AttribLayout)
	UniformMatrix3(u UniformHandle, m f32.Mat3)
	Uniform4(u UniformHandle, v f32.Vec4)
	DrawTriangles(first, count int)

	// DrawableSize reports the current framebuffer size in pixels.
	DrawableSize() (width, height int)
}
