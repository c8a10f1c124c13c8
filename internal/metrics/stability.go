package metrics

import (
	"github.com/san-kum/asciiwave/internal/sim"
)

// Stability is the fraction of frames whose field stayed at or below
// threshold everywhere. With threshold 1 it reports how often the palette
// did not saturate.
type Stability struct {
	name       string
	threshold  float64
	violations int
	samples    int
}

func NewStability(threshold float64) *Stability {
	return &Stability{
		name:      "stability",
		threshold: threshold,
	}
}

func (s *Stability) Name() string {
	return s.name
}

func (s *Stability) Observe(scene *sim.Scene) {
	s.samples++
	for _, h := range scene.Field {
		if h > s.threshold {
			s.violations++
			break
		}
	}
}

func (s *Stability) Value() float64 {
	if s.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(s.violations)/float64(s.samples)
}

func (s *Stability) Reset() {
	s.violations = 0
	s.samples = 0
}
