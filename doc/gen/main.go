// Command gen renders every built-in shape with sample parameters, captures
// framebuffer pixels, and saves JPEG captures and thumbnails to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"golang.org/x/image/draw"

	"github.com/go-theft-auto/gfx2d"
	"github.com/go-theft-auto/gfx2d/backend/opengl"
)

const (
	captureWidth  = 400
	captureHeight = 300
	thumbWidth    = 160
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// capture defines one shape render to save.
type capture struct {
	name  string // filename without extension
	shape string // gfx2d.ShapeByName key
	scene gfx2d.SceneParameters
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(captureWidth, captureHeight, "capture-gen", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	// Fixed size: a hidden window's framebuffer may differ on HiDPI displays.
	dev := opengl.NewDevice(func() (int, int) { return captureWidth, captureHeight })
	defer dev.Delete()

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	caps := buildCaptures()
	for _, c := range caps {
		if err := render(dev, c, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", c.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", c.name, captureWidth, captureHeight)
	}

	fmt.Printf("\nGenerated %d captures in %s/\n", len(caps), outDir)
	return nil
}

func render(dev *opengl.Device, c capture, outDir string) error {
	shape, err := gfx2d.ShapeByName(c.shape)
	if err != nil {
		return err
	}

	scene := c.scene
	pipeline, err := gfx2d.NewPipeline(dev, shape, &scene, gfx2d.WithClearColor(gfx2d.Color{R: 0.12, G: 0.12, B: 0.14, A: 1}))
	if err != nil {
		return err
	}
	defer pipeline.Delete()

	if err := pipeline.RenderOnce(); err != nil {
		return err
	}
	gl.Finish()

	img := dev.ReadPixels(captureWidth, captureHeight)
	if err := writeJPEG(filepath.Join(outDir, c.name+".jpg"), img); err != nil {
		return err
	}

	thumbHeight := captureHeight * thumbWidth / captureWidth
	thumb := image.NewRGBA(image.Rect(0, 0, thumbWidth, thumbHeight))
	draw.CatmullRom.Scale(thumb, thumb.Bounds(), img, img.Bounds(), draw.Src, nil)
	return writeJPEG(filepath.Join(outDir, c.name+"_thumb.jpg"), thumb)
}

func writeJPEG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

func buildCaptures() []capture {
	base := gfx2d.DefaultScene()
	base.Color = gfx2d.Color{R: 0.2, G: 0.6, B: 0.9, A: 1}

	rotated := base
	rotated.Angle = gfx2d.Degrees(30)

	scaled := base
	scaled.Scale = gfx2d.Vec2{X: 1.5, Y: 0.75}

	square := base
	square.Translation = gfx2d.Vec2{X: 150, Y: 100}
	square.Scale = gfx2d.Vec2{X: 100, Y: 100}

	rect := base
	rect.Size = gfx2d.Vec2{X: 180, Y: 60}

	triangle := base
	triangle.Color = gfx2d.ColorPurple

	return []capture{
		{name: "triangle", shape: "triangle", scene: triangle},
		{name: "rectangle", shape: "rectangle", scene: rect},
		{name: "letter_f", shape: "letter-f", scene: base},
		{name: "letter_f_rotated", shape: "letter-f", scene: rotated},
		{name: "letter_f_scaled", shape: "letter-f", scene: scaled},
		{name: "unit_square", shape: "unit-square", scene: square},
	}
}
