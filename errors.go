package gfx2d

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidProgram is returned when a handle lookup or draw is attempted on a
// program that was never successfully linked.
var ErrInvalidProgram = errors.New("gfx2d: invalid program")

// CompileError reports a shader stage that failed to compile.
type CompileError struct {
	Kind StageKind
	Log  string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s shader compilation failed: %s", e.Kind, strings.TrimSpace(e.Log))
}

// LinkError reports a program that failed to link, or a link request with the
// wrong stage kinds.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("shader program linking failed: %s", strings.TrimSpace(e.Log))
}

// ResolutionError reports an attribute or uniform name missing from a linked
// program, usually misspelled or optimized out by the driver.
type ResolutionError struct {
	Kind string // "attribute" or "uniform"
	Name string
	Err  error // optional cause, e.g. ErrInvalidProgram
}

func (e *ResolutionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("resolve %s %q: %v", e.Kind, e.Name, e.Err)
	}
	return fmt.Sprintf("resolve %s %q: not found in program", e.Kind, e.Name)
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}

// PreconditionError reports malformed input, such as a vertex count that is
// not a multiple of 3.
type PreconditionError struct {
	Op     string
	Reason string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}
