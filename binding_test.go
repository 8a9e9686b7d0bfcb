package gfx2d_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/go-theft-auto/gfx2d"
)

func buildProgram(t *testing.T, dev *fakeDevice) gfx2d.ProgramHandle {
	t.Helper()
	p, err := gfx2d.BuildProgram(dev, gfx2d.VertexShaderSource, gfx2d.FragmentShaderSource)
	if err != nil {
		t.Fatalf("BuildProgram() returned error: %v", err)
	}
	return p
}

func TestResolve(t *testing.T) {
	dev := newFakeDevice()
	p := buildProgram(t, dev)

	a, err := gfx2d.ResolveAttribute(dev, p, gfx2d.AttrPosition)
	if err != nil || a != 0 {
		t.Errorf("ResolveAttribute(a_pos) = %d, %v", a, err)
	}
	u, err := gfx2d.ResolveUniform(dev, p, gfx2d.UniformColor)
	if err != nil || u != 2 {
		t.Errorf("ResolveUniform(u_color) = %d, %v", u, err)
	}
}

func TestResolveMissingName(t *testing.T) {
	dev := newFakeDevice()
	p := buildProgram(t, dev)

	tests := []struct {
		name    string
		resolve func() error
	}{
		{"attribute", func() error { _, err := gfx2d.ResolveAttribute(dev, p, "a_texcoord"); return err }},
		{"uniform", func() error { _, err := gfx2d.ResolveUniform(dev, p, "u_resolution"); return err }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.resolve()
			var re *gfx2d.ResolutionError
			if !errors.As(err, &re) {
				t.Fatalf("expected *ResolutionError, got %v", err)
			}
			if re.Kind != tt.name {
				t.Errorf("Kind = %q, want %q", re.Kind, tt.name)
			}
			if errors.Is(err, gfx2d.ErrInvalidProgram) {
				t.Error("missing name should not report an invalid program")
			}
		})
	}
}

func TestResolveInvalidProgram(t *testing.T) {
	dev := newFakeDevice()

	_, err := gfx2d.ResolveUniform(dev, 0, gfx2d.UniformMatrix)
	if !errors.Is(err, gfx2d.ErrInvalidProgram) {
		t.Errorf("expected ErrInvalidProgram, got %v", err)
	}
	_, err = gfx2d.ResolveAttribute(dev, 0, gfx2d.AttrPosition)
	if !errors.Is(err, gfx2d.ErrInvalidProgram) {
		t.Errorf("expected ErrInvalidProgram, got %v", err)
	}
	if len(dev.lookups) != 0 {
		t.Error("device should not be queried for program 0")
	}
}

func TestBindingsCache(t *testing.T) {
	dev := newFakeDevice()
	p := buildProgram(t, dev)
	b := gfx2d.NewBindings(dev, p)

	for i := 0; i < 3; i++ {
		if _, err := b.Attribute(gfx2d.AttrPosition); err != nil {
			t.Fatal(err)
		}
		if _, err := b.Uniform(gfx2d.UniformMatrix); err != nil {
			t.Fatal(err)
		}
	}
	if n := dev.lookups[gfx2d.AttrPosition]; n != 1 {
		t.Errorf("a_pos looked up %d times, want 1", n)
	}
	if n := dev.lookups[gfx2d.UniformMatrix]; n != 1 {
		t.Errorf("u_matrix looked up %d times, want 1", n)
	}

	// Failures are not cached.
	dev.missing[gfx2d.UniformColor] = true
	if _, err := b.Uniform(gfx2d.UniformColor); err == nil {
		t.Fatal("expected error for missing uniform")
	}
	delete(dev.missing, gfx2d.UniformColor)
	if _, err := b.Uniform(gfx2d.UniformColor); err != nil {
		t.Errorf("retry after failure: %v", err)
	}
}

func TestBindAttribute(t *testing.T) {
	dev := newFakeDevice()
	p := buildProgram(t, dev)
	b := gfx2d.NewBindings(dev, p)
	dev.reset()

	b.BindAttribute(0, gfx2d.PositionLayout)

	want := []string{"EnableVertexAttribArray", "VertexAttribPointer"}
	if got := dev.names(); !slices.Equal(got, want) {
		t.Errorf("calls = %v, want %v", got, want)
	}
	l := dev.layouts[0]
	if l.Size != 2 || l.Type != gfx2d.Float32 || l.Normalized || l.Stride != 0 || l.Offset != 0 {
		t.Errorf("layout = %+v, want 2 tightly packed floats", l)
	}
}
