package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/asciiwave/internal/render"
	"github.com/san-kum/asciiwave/internal/sim"
	"github.com/san-kum/asciiwave/internal/wave"
)

const (
	DefaultMode  = render.ModeGrid
	DefaultTheme = "classic"
)

type Config struct {
	Mode    string     `yaml:"mode"`
	FPS     int        `yaml:"fps"`
	Frames  int        `yaml:"frames"`
	Palette string     `yaml:"palette"`
	Theme   string     `yaml:"theme"`
	X       WaveConfig `yaml:"x"`
	Y       WaveConfig `yaml:"y"`
}

type WaveConfig struct {
	Position   float64 `yaml:"position"`
	Speed      float64 `yaml:"speed"`
	Wavelength float64 `yaml:"wavelength"`
	MaxHeight  float64 `yaml:"max_height"`
}

func DefaultConfig() *Config {
	scene := sim.DefaultScene()
	return &Config{
		Mode:    DefaultMode,
		FPS:     sim.DefaultFPS,
		Frames:  sim.DefaultFrames,
		Palette: string(render.DefaultPalette),
		Theme:   DefaultTheme,
		X:       fromSource(scene.X),
		Y:       fromSource(scene.Y),
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the config the same way the simulator will at start-up.
func (c *Config) Validate() error {
	if err := render.CheckMode(c.Mode); err != nil {
		return err
	}
	if len([]rune(c.Palette)) < 2 {
		return fmt.Errorf("palette needs at least 2 glyphs, got %q", c.Palette)
	}
	if err := c.Scene().Validate(); err != nil {
		return err
	}
	sc := c.SimConfig()
	if sc.FPS <= 0 || sc.FPS > 1000 {
		return fmt.Errorf("%w: fps must be in 1..1000, got %d", sim.ErrConfig, sc.FPS)
	}
	if sc.Frames < 0 {
		return fmt.Errorf("%w: frames must not be negative, got %d", sim.ErrConfig, sc.Frames)
	}
	return nil
}

func (c *Config) Scene() *sim.Scene {
	return &sim.Scene{X: c.X.source(), Y: c.Y.source()}
}

func (c *Config) SimConfig() sim.Config {
	return sim.Config{FPS: c.FPS, Frames: c.Frames}
}

func (c *Config) GetPalette() render.Palette {
	if c.Palette == "" {
		return render.DefaultPalette
	}
	return render.Palette(c.Palette)
}

func (w WaveConfig) source() wave.Source {
	return wave.Source{
		Oscillator: wave.Oscillator{Position: w.Position, Speed: w.Speed},
		Wavelength: w.Wavelength,
		MaxHeight:  w.MaxHeight,
	}
}

func fromSource(s wave.Source) WaveConfig {
	return WaveConfig{
		Position:   s.Position,
		Speed:      s.Speed,
		Wavelength: s.Wavelength,
		MaxHeight:  s.MaxHeight,
	}
}
