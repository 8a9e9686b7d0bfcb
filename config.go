package gfx2d

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"

	"gopkg.in/yaml.v3"
)

// Config describes the window, the shape and the starting scene of a viewer.
type Config struct {
	Window     WindowConfig   `yaml:"window"`
	Shape      string         `yaml:"shape"`
	Scene      SceneConfig    `yaml:"scene"`
	ClearColor [4]float32     `yaml:"clear_color"`
	Controls   ControlsConfig `yaml:"controls"`
	LogLevel   string         `yaml:"log_level"`
}

// WindowConfig sizes the host window.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	VSync  bool   `yaml:"vsync"`
}

// SceneConfig holds the starting scene parameters.
type SceneConfig struct {
	Translation  [2]float32 `yaml:"translation"`
	AngleDegrees float32    `yaml:"angle_degrees"`
	Scale        [2]float32 `yaml:"scale"`
	Size         [2]float32 `yaml:"size"`
	Color        [4]float32 `yaml:"color"`
	RandomColor  bool       `yaml:"random_color"` // pick an opaque random color at startup
}

// ControlsConfig sets how far one key press moves each parameter.
type ControlsConfig struct {
	MoveStep  float32 `yaml:"move_step"`
	AngleStep float32 `yaml:"angle_step"` // degrees
	ScaleStep float32 `yaml:"scale_step"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	scene := DefaultScene()
	return Config{
		Window: WindowConfig{Width: 800, Height: 600, Title: "gfx2d", VSync: true},
		Shape:  "letter-f",
		Scene: SceneConfig{
			Translation: [2]float32{scene.Translation.X, scene.Translation.Y},
			Scale:       [2]float32{scene.Scale.X, scene.Scale.Y},
			Size:        [2]float32{scene.Size.X, scene.Size.Y},
			Color:       [4]float32{scene.Color.R, scene.Color.G, scene.Color.B, scene.Color.A},
		},
		Controls: ControlsConfig{MoveStep: 5, AngleStep: 5, ScaleStep: 0.05},
		LogLevel: "info",
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes YAML on top of DefaultConfig and validates the result.
// Unknown keys are rejected.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks ranges and names.
func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if _, err := ShapeByName(c.Shape); err != nil {
		errs = append(errs, err)
	}
	if err := checkUnit("scene.color", c.Scene.Color[:]); err != nil {
		errs = append(errs, err)
	}
	if err := checkUnit("clear_color", c.ClearColor[:]); err != nil {
		errs = append(errs, err)
	}
	if c.Controls.MoveStep <= 0 || c.Controls.AngleStep <= 0 || c.Controls.ScaleStep <= 0 {
		errs = append(errs, errors.New("controls steps must be positive"))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func checkUnit(field string, vs []float32) error {
	for i, v := range vs {
		if v < 0 || v > 1 {
			return fmt.Errorf("%s[%d] = %v outside [0, 1]", field, i, v)
		}
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log_level: %w", err)
	}
	return l, nil
}

// NewScene returns the starting scene described by the config.
func (c Config) NewScene() SceneParameters {
	s := c.Scene
	color := Color{R: s.Color[0], G: s.Color[1], B: s.Color[2], A: s.Color[3]}
	if s.RandomColor {
		color = Color{R: rand.Float32(), G: rand.Float32(), B: rand.Float32(), A: 1}
	}
	return SceneParameters{
		Translation: Vec2{X: s.Translation[0], Y: s.Translation[1]},
		Angle:       Degrees(s.AngleDegrees),
		Scale:       Vec2{X: s.Scale[0], Y: s.Scale[1]},
		Size:        Vec2{X: s.Size[0], Y: s.Size[1]},
		Color:       color,
	}
}

// NewShape returns the configured shape.
func (c Config) NewShape() (Shape, error) {
	return ShapeByName(c.Shape)
}

// Clear returns the clear color.
func (c Config) Clear() Color {
	return Color{R: c.ClearColor[0], G: c.ClearColor[1], B: c.ClearColor[2], A: c.ClearColor[3]}
}
