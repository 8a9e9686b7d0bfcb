// Example opens a window and draws one shape driven by keyboard controls.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//	go run ./example/ -config scene.yml
//
// Keys: arrows move, Q/E rotate, A/D scale X, S/W scale Y, R resets, Esc quits.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/gfx2d"
	"github.com/go-theft-auto/gfx2d/backend/opengl"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "path to a YAML scene config")
	shapeName := flag.String("shape", "", "override the configured shape")
	flag.Parse()

	if err := run(*configPath, *shapeName); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath, shapeName string) error {
	cfg := gfx2d.DefaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = gfx2d.LoadConfig(configPath); err != nil {
			return err
		}
	}
	if shapeName != "" {
		cfg.Shape = shapeName
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	level, err := cfg.Level()
	if err != nil {
		return err
	}
	gfx2d.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	shape, err := cfg.NewShape()
	if err != nil {
		return err
	}
	scene := cfg.NewScene()

	// Initialize GLFW.
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.TransparentFramebuffer, glfw.True)

	window, err := glfw.CreateWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	if cfg.Window.VSync {
		glfw.SwapInterval(1)
	}

	// Initialize OpenGL.
	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	dev := opengl.NewDevice(window.GetFramebufferSize)
	defer dev.Delete()

	pipeline, err := gfx2d.NewPipeline(dev, shape, &scene,
		gfx2d.WithClearColor(cfg.Clear()),
		gfx2d.WithPresent(window.SwapBuffers),
	)
	if err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}
	defer pipeline.Delete()

	opengl.NewControls(window, pipeline, cfg.Controls)

	// Initial frame; after this, frames are only drawn from input callbacks.
	if err := pipeline.RenderOnce(); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	for !window.ShouldClose() {
		glfw.WaitEvents()
	}

	return nil
}
