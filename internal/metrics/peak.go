package metrics

import "github.com/san-kum/asciiwave/internal/sim"

// Peak tracks the tallest sample seen across all frames.
type Peak struct {
	peak float64
}

func NewPeak() *Peak { return &Peak{} }

func (p *Peak) Name() string { return "peak" }

func (p *Peak) Observe(scene *sim.Scene) {
	if _, v := scene.Field.Max(); v > p.peak {
		p.peak = v
	}
}

func (p *Peak) Value() float64 { return p.peak }
func (p *Peak) Reset()         { p.peak = 0 }

// Crossings counts how often the two oscillators pass each other.
type Crossings struct {
	count int
	side  int
}

func NewCrossings() *Crossings { return &Crossings{} }

func (c *Crossings) Name() string { return "crossings" }

func (c *Crossings) Observe(scene *sim.Scene) {
	side := 0
	switch d := scene.X.Position - scene.Y.Position; {
	case d > 0:
		side = 1
	case d < 0:
		side = -1
	}
	if side == 0 {
		return
	}
	if c.side != 0 && side != c.side {
		c.count++
	}
	c.side = side
}

func (c *Crossings) Value() float64 { return float64(c.count) }
func (c *Crossings) Reset()         { c.count, c.side = 0, 0 }
