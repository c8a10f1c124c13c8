package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/asciiwave/internal/sim"
	"github.com/san-kum/asciiwave/internal/wave"
)

func TestEnergyFlatField(t *testing.T) {
	m := NewEnergy()
	scene := &sim.Scene{}
	for i := range scene.Field {
		scene.Field[i] = 0.5
	}

	m.Observe(scene)
	if math.Abs(m.Value()-0.25) > 1e-12 {
		t.Errorf("expected energy 0.25, got %f", m.Value())
	}

	scene.Field.Reset()
	m.Observe(scene)
	if math.Abs(m.Value()-0.125) > 1e-12 {
		t.Errorf("expected averaged energy 0.125, got %f", m.Value())
	}
}

func TestEnergyReset(t *testing.T) {
	m := NewEnergy()
	scene := sim.DefaultScene()
	scene.Step(0.01)
	m.Observe(scene)
	if m.Value() <= 0 {
		t.Fatal("expected positive energy")
	}
	m.Reset()
	if m.Value() != 0 {
		t.Errorf("expected 0 after reset, got %f", m.Value())
	}
}

func TestStability(t *testing.T) {
	m := NewStability(1.0)
	if m.Value() != 1.0 {
		t.Errorf("expected 1.0 with no samples, got %f", m.Value())
	}

	scene := &sim.Scene{}
	m.Observe(scene)
	scene.Field[10] = 1.5
	m.Observe(scene)

	if math.Abs(m.Value()-0.5) > 1e-12 {
		t.Errorf("expected 0.5, got %f", m.Value())
	}
}

func TestPeak(t *testing.T) {
	m := NewPeak()
	scene := &sim.Scene{}
	wave.Accumulate(0.5, 0.8, 0.5, &scene.Field)
	m.Observe(scene)
	scene.Field.Reset()
	m.Observe(scene)

	if math.Abs(m.Value()-0.5) > 2e-3 {
		t.Errorf("expected peak ~0.5, got %f", m.Value())
	}
}

func TestCrossings(t *testing.T) {
	m := NewCrossings()
	scene := sim.DefaultScene()
	// X starts on the left heading right, Y on the right heading left.
	for i := 0; i < 100; i++ {
		scene.Step(0.01)
		m.Observe(scene)
	}
	if m.Value() != 1 {
		t.Errorf("expected 1 crossing in the first second, got %f", m.Value())
	}
}
