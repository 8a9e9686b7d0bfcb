package gfx2d

// ResolveAttribute looks up a vertex attribute by name.
// A name that is not active in the program is a *ResolutionError.
func ResolveAttribute(dev Device, p ProgramHandle, name string) (AttributeHandle, error) {
	if p == 0 {
		return -1, &ResolutionError{Kind: "attribute", Name: name, Err: ErrInvalidProgram}
	}
	loc := dev.AttribLocation(p, name)
	if loc < 0 {
		return -1, &ResolutionError{Kind: "attribute", Name: name}
	}
	return AttributeHandle(loc), nil
}

// ResolveUniform looks up a uniform by name.
// A name that is not active in the program is a *ResolutionError.
func ResolveUniform(dev Device, p ProgramHandle, name string) (UniformHandle, error) {
	if p == 0 {
		return -1, &ResolutionError{Kind: "uniform", Name: name, Err: ErrInvalidProgram}
	}
	loc := dev.UniformLocation(p, name)
	if loc < 0 {
		return -1, &ResolutionError{Kind: "uniform", Name: name}
	}
	return UniformHandle(loc), nil
}

// Bindings caches the handles of one program so each name is looked up once.
type Bindings struct {
	dev        Device
	program    ProgramHandle
	attributes map[string]AttributeHandle
	uniforms   map[string]UniformHandle
}

// NewBindings creates an empty handle cache for p.
func NewBindings(dev Device, p ProgramHandle) *Bindings {
	return &Bindings{
		dev:        dev,
		program:    p,
		attributes: make(map[string]AttributeHandle),
		uniforms:   make(map[string]UniformHandle),
	}
}

// Attribute returns the handle for name, resolving it on first use.
func (b *Bindings) Attribute(name string) (AttributeHandle, error) {
	if h, ok := b.attributes[name]; ok {
		return h, nil
	}
	h, err := ResolveAttribute(b.dev, b.program, name)
	if err != nil {
		return -1, err
	}
	b.attributes[name] = h
	return h, nil
}

// Uniform returns the handle for name, resolving it on first use.
func (b *Bindings) Uniform(name string) (UniformHandle, error) {
	if h, ok := b.uniforms[name]; ok {
		return h, nil
	}
	h, err := ResolveUniform(b.dev, b.program, name)
	if err != nil {
		return -1, err
	}
	b.uniforms[name] = h
	return h, nil
}

// BindAttribute enables the attribute and points it at the bound buffer.
// Call it again whenever the buffer layout changes.
func (b *Bindings) BindAttribute(a AttributeHandle, layout AttribLayout) {
	b.dev.EnableVertexAttribArray(a)
	b.dev.VertexAttribPointer(a, layout)
}
