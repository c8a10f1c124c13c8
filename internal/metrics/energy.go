package metrics

import (
	"github.com/san-kum/asciiwave/internal/sim"
)

// Energy averages the mean squared height of the field over all frames.
type Energy struct {
	name        string
	samples     int
	totalEnergy float64
}

func NewEnergy() *Energy {
	return &Energy{name: "energy"}
}

func (e *Energy) Name() string { return e.name }

func (e *Energy) Observe(scene *sim.Scene) {
	sum := 0.0
	for _, h := range scene.Field {
		sum += h * h
	}
	e.totalEnergy += sum / float64(len(scene.Field))
	e.samples++
}

func (e *Energy) Value() float64 {
	if e.samples == 0 {
		return 0
	}
	return e.totalEnergy / float64(e.samples)
}

func (e *Energy) Reset() {
	e.samples = 0
	e.totalEnergy = 0
}
