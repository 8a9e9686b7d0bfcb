package gfx2d

import "fmt"

// GeometryBuffer owns one vertex buffer of 2D float positions laid out as a
// triangle list.
type GeometryBuffer struct {
	dev      Device
	handle   BufferHandle
	usage    Usage
	vertices []Vec2
	scratch  []float32
}

// NewGeometryBuffer creates an empty buffer on the device.
func NewGeometryBuffer(dev Device, usage Usage) (*GeometryBuffer, error) {
	h := dev.CreateBuffer()
	if h == 0 {
		return nil, fmt.Errorf("create vertex buffer: device returned no buffer")
	}
	return &GeometryBuffer{dev: dev, handle: h, usage: usage}, nil
}

// Upload replaces the whole buffer with positions.
//
// The count must be a multiple of 3. On a *PreconditionError nothing is sent
// to the device and the previous contents stay in place.
func (g *GeometryBuffer) Upload(positions []Vec2) error {
	if len(positions)%3 != 0 {
		return &PreconditionError{
			Op:     "upload geometry",
			Reason: fmt.Sprintf("vertex count %d is not a multiple of 3", len(positions)),
		}
	}

	g.scratch = g.scratch[:0]
	for _, p := range positions {
		g.scratch = append(g.scratch, p.X, p.Y)
	}
	g.dev.BindBuffer(g.handle)
	g.dev.BufferData(g.scratch, g.usage)

	g.vertices = append(g.vertices[:0], positions...)
	return nil
}

// Bind makes this buffer the source for subsequent attribute pointers.
func (g *GeometryBuffer) Bind() {
	g.dev.BindBuffer(g.handle)
}

// Len returns the number of vertices currently uploaded.
func (g *GeometryBuffer) Len() int {
	return len(g.vertices)
}

// Vertices returns a copy of the uploaded positions.
func (g *GeometryBuffer) Vertices() []Vec2 {
	return append([]Vec2(nil), g.vertices...)
}

// Handle returns the device buffer.
func (g *GeometryBuffer) Handle() BufferHandle {
	return g.handle
}

// Delete releases the device buffer.
func (g *GeometryBuffer) Delete() {
	if g.handle != 0 {
		g.dev.DeleteBuffer(g.handle)
		g.handle = 0
	}
	g.vertices = nil
}
