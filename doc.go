/*
Package gfx2d builds a GPU program, uploads 2D triangle geometry and draws a
single shape whose position, rotation and scale come from user-adjustable
parameters.

# Overview

Everything the device sees is computed on the CPU first. A frame is planned
from the scene (model matrix, projection, color and, for dynamic shapes, fresh
vertices) and then replayed against a Device in a fixed order:

	clear -> use program -> bind geometry -> set uniforms -> draw

The Device interface is the only thing that talks to the graphics API; the
backend/opengl package implements it on OpenGL 4.1 core.

# Quick Start

	// Setup
	dev := opengl.NewDevice(window.GetFramebufferSize)
	pipeline, err := gfx2d.NewPipeline(dev, gfx2d.DefaultLetterF(), nil,
	    gfx2d.WithPresent(window.SwapBuffers))
	if err != nil {
	    return err
	}
	defer pipeline.Delete()

	// Draw on demand
	_ = pipeline.RenderOnce()
	for !window.ShouldClose() {
	    glfw.WaitEvents()
	}

	// From a slider or key binding
	_ = pipeline.OnParameterChanged(gfx2d.ParamAngle, 30)

# Coordinates

Shapes are described in pixels with the origin at the top-left corner and Y
growing downward. Matrix2D uses row vectors, so

	Compose(Scale(sx, sy), Rotation(θ), Translation(tx, ty))

scales first, then rotates, then translates. The pipeline appends
Projection(viewport) to the model matrix and uploads the product as u_matrix,
so the vertex shader needs no resolution uniform.

# Parameters

	Param         Unit       Range
	position-x    pixels     any finite value
	position-y    pixels     any finite value
	angle         degrees    any finite value, stored as radians
	scale-x/y     factor     any finite value
	width/height  pixels     any finite value (dynamic shapes)
	color-r/g/b/a unit       clamped to [0, 1]

# Errors

Program construction reports *CompileError and *LinkError with the driver log.
Missing attribute or uniform names are a *ResolutionError. Uploading a vertex
count that is not a multiple of 3 is a *PreconditionError and leaves the
buffer untouched. A zero-area viewport is not an error: the frame is skipped.

# Logging

The package is silent by default. Call SetLogger with a slog.Logger to see
program builds, skipped frames and driver diagnostics.
*/
package gfx2d
