package gfx2d

import (
	"fmt"
	"log/slog"
)

// StageKind selects the shader stage being compiled.
type StageKind int

const (
	VertexStage StageKind = iota
	FragmentStage
)

func (k StageKind) String() string {
	switch k {
	case VertexStage:
		return "vertex"
	case FragmentStage:
		return "fragment"
	default:
		return fmt.Sprintf("StageKind(%d)", int(k))
	}
}

// Stage is a successfully compiled shader stage.
type Stage struct {
	Handle ShaderHandle
	Kind   StageKind
}

// CompileStage compiles one shader stage from source.
// On failure the shader object is deleted and a *CompileError carrying the
// driver log is returned.
func CompileStage(dev Device, kind StageKind, source string) (Stage, error) {
	return compileStage(dev, Logger(), kind, source)
}

func compileStage(dev Device, log *slog.Logger, kind StageKind, source string) (Stage, error) {
	sh := dev.CreateShader(kind)
	if sh == 0 {
		return Stage{}, &CompileError{Kind: kind, Log: "could not create shader object"}
	}
	dev.ShaderSource(sh, source)
	if ok, info := dev.CompileShader(sh); !ok {
		dev.DeleteShader(sh)
		log.Error("shader compile failed", "stage", kind.String(), "log", info)
		return Stage{}, &CompileError{Kind: kind, Log: info}
	}
	return Stage{Handle: sh, Kind: kind}, nil
}

// Link links one vertex and one fragment stage into a program.
//
// On success the stages are detached and deleted; they are not needed once
// the program exists. On failure the program is deleted, the stages are left
// to the caller, and a *LinkError carrying the driver log is returned.
func Link(dev Device, vs, fs Stage) (ProgramHandle, error) {
	return link(dev, Logger(), vs, fs)
}

func link(dev Device, log *slog.Logger, vs, fs Stage) (ProgramHandle, error) {
	if vs.Kind != VertexStage || fs.Kind != FragmentStage {
		return 0, &LinkError{Log: fmt.Sprintf("need a vertex and a fragment stage, got %s and %s", vs.Kind, fs.Kind)}
	}
	if vs.Handle == 0 || fs.Handle == 0 {
		return 0, &LinkError{Log: "stage was not compiled"}
	}

	p := dev.CreateProgram()
	if p == 0 {
		return 0, &LinkError{Log: "could not create program object"}
	}
	dev.AttachShader(p, vs.Handle)
	dev.AttachShader(p, fs.Handle)
	if ok, info := dev.LinkProgram(p); !ok {
		dev.DeleteProgram(p)
		log.Error("program link failed", "log", info)
		return 0, &LinkError{Log: info}
	}

	dev.DetachShader(p, vs.Handle)
	dev.DetachShader(p, fs.Handle)
	dev.DeleteShader(vs.Handle)
	dev.DeleteShader(fs.Handle)
	return p, nil
}

// BuildProgram compiles both stages and links them. Every object created
// along the way is released when any step fails. Diagnostics go to Logger.
func BuildProgram(dev Device, vertexSource, fragmentSource string) (ProgramHandle, error) {
	return buildProgram(dev, Logger(), vertexSource, fragmentSource)
}

func buildProgram(dev Device, log *slog.Logger, vertexSource, fragmentSource string) (ProgramHandle, error) {
	vs, err := compileStage(dev, log, VertexStage, vertexSource)
	if err != nil {
		return 0, err
	}
	fs, err := compileStage(dev, log, FragmentStage, fragmentSource)
	if err != nil {
		dev.DeleteShader(vs.Handle)
		return 0, err
	}
	p, err := link(dev, log, vs, fs)
	if err != nil {
		dev.DeleteShader(vs.Handle)
		dev.DeleteShader(fs.Handle)
		return 0, err
	}
	log.Info("shader program built", "program", uint32(p))
	return p, nil
}
