package sim

import (
	"context"
	"fmt"
	"time"

	"github.com/san-kum/asciiwave/internal/render"
)

// Sleeper blocks for d or until ctx is done.
type Sleeper func(ctx context.Context, d time.Duration) error

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

type Simulator struct {
	scene     *Scene
	renderer  render.Renderer
	sleep     Sleeper
	metrics   []Metric
	observers []Observer
}

func New(scene *Scene, renderer render.Renderer) *Simulator {
	return &Simulator{
		scene:     scene,
		renderer:  renderer,
		sleep:     sleepContext,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }
func (s *Simulator) SetSleeper(fn Sleeper)  { s.sleep = fn }

// Run steps, renders and sleeps for cfg.Frames frames, then finishes the
// renderer. A cancelled context stops the loop early; the renderer is
// finished either way so the cursor comes back.
func (s *Simulator) Run(ctx context.Context, cfg Config) (result *Result, err error) {
	if err := s.validateConfig(cfg); err != nil {
		return nil, err
	}
	if err := s.scene.Validate(); err != nil {
		return nil, err
	}

	result = &Result{Metrics: make(map[string]float64)}
	for _, m := range s.metrics {
		m.Reset()
	}

	defer func() {
		if ferr := s.renderer.Finish(); ferr != nil && err == nil {
			err = fmt.Errorf("finish: %w", ferr)
		}
		for _, m := range s.metrics {
			result.Metrics[m.Name()] = m.Value()
		}
	}()

	dt, interval := cfg.Dt(), cfg.FrameInterval()
	for i := 0; i < cfg.Frames; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		s.scene.Step(dt)

		if rerr := s.renderer.Render(&s.scene.Field); rerr != nil {
			return result, &FrameError{Frame: i, Wrapped: rerr}
		}
		result.Frames++

		for _, m := range s.metrics {
			m.Observe(s.scene)
		}
		for _, obs := range s.observers {
			obs.OnFrame(i, s.scene)
		}

		if serr := s.sleep(ctx, interval); serr != nil {
			return result, serr
		}
	}
	return result, nil
}

func (s *Simulator) validateConfig(cfg Config) error {
	if cfg.FPS <= 0 {
		return fmt.Errorf("%w: fps must be positive, got %d", ErrConfig, cfg.FPS)
	}
	if cfg.FPS > 1000 {
		return fmt.Errorf("%w: fps must be at most 1000, got %d", ErrConfig, cfg.FPS)
	}
	if cfg.Frames < 0 {
		return fmt.Errorf("%w: frames must not be negative, got %d", ErrConfig, cfg.Frames)
	}
	return nil
}
