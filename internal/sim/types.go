package sim

import (
	"fmt"
	"time"

	"github.com/charmbracelet/harmonica"
	"github.com/san-kum/asciiwave/internal/wave"
)

const (
	DefaultFPS    = 100
	DefaultFrames = 1000
)

// Scene is the complete per-frame state: two wave sources and the field
// they are drawn into.
type Scene struct {
	X, Y  wave.Source
	Field wave.HeightField
}

// DefaultScene starts X at the left wall heading right and Y at the right
// wall heading left at half the speed.
func DefaultScene() *Scene {
	return &Scene{
		X: wave.Source{
			Oscillator: wave.Oscillator{Position: 0.0, Speed: 1.0},
			Wavelength: 0.8,
			MaxHeight:  0.5,
		},
		Y: wave.Source{
			Oscillator: wave.Oscillator{Position: 1.0, Speed: -0.5},
			Wavelength: 1.2,
			MaxHeight:  0.4,
		},
	}
}

// Step advances both oscillators and redraws the field from scratch.
func (s *Scene) Step(dt float64) {
	s.X.Step(dt)
	s.Y.Step(dt)
	s.Field.Reset()
	s.X.Splat(&s.Field)
	s.Y.Splat(&s.Field)
}

func (s *Scene) Validate() error {
	if err := s.X.Validate(); err != nil {
		return fmt.Errorf("x wave: %w", err)
	}
	if err := s.Y.Validate(); err != nil {
		return fmt.Errorf("y wave: %w", err)
	}
	return nil
}

type Config struct {
	FPS    int
	Frames int
}

func DefaultConfig() Config {
	return Config{FPS: DefaultFPS, Frames: DefaultFrames}
}

// Dt is the simulated time covered by one frame, in seconds.
func (c Config) Dt() float64 {
	return harmonica.FPS(c.FPS)
}

// FrameInterval is the wall-clock pause after each frame, truncated to
// whole milliseconds.
func (c Config) FrameInterval() time.Duration {
	return time.Duration(1000/c.FPS) * time.Millisecond
}

type Observer interface {
	OnFrame(frame int, s *Scene)
}

type Metric interface {
	Name() string
	Observe(s *Scene)
	Value() float64
	Reset()
}

type Result struct {
	Frames  int
	Metrics map[string]float64
}
