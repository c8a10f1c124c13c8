package sim

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/san-kum/asciiwave/internal/render"
	"github.com/san-kum/asciiwave/internal/wave"
)

type testRenderer struct {
	frames   []wave.HeightField
	finished int
	failAt   int
}

var errRender = errors.New("render failed")

func (r *testRenderer) Render(field *wave.HeightField) error {
	if r.failAt > 0 && len(r.frames) == r.failAt {
		return errRender
	}
	r.frames = append(r.frames, *field)
	return nil
}

func (r *testRenderer) Finish() error {
	r.finished++
	return nil
}

type testSleeper struct {
	calls []time.Duration
}

func (s *testSleeper) sleep(ctx context.Context, d time.Duration) error {
	s.calls = append(s.calls, d)
	return ctx.Err()
}

type testObserver struct {
	frames []int
}

func (o *testObserver) OnFrame(frame int, s *Scene) { o.frames = append(o.frames, frame) }

type testMetric struct{ count int }

func (m *testMetric) Name() string   { return "test" }
func (m *testMetric) Observe(*Scene) { m.count++ }
func (m *testMetric) Value() float64 { return float64(m.count) }
func (m *testMetric) Reset()         { m.count = 0 }

func TestSimulatorRun(t *testing.T) {
	r := &testRenderer{}
	sl := &testSleeper{}
	obs := &testObserver{}
	metric := &testMetric{}

	s := New(DefaultScene(), r)
	s.SetSleeper(sl.sleep)
	s.AddObserver(obs)
	s.AddMetric(metric)

	result, err := s.Run(context.Background(), Config{FPS: 100, Frames: 25})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if result.Frames != 25 || len(r.frames) != 25 {
		t.Errorf("expected 25 frames, got %d (rendered %d)", result.Frames, len(r.frames))
	}
	if r.finished != 1 {
		t.Errorf("expected one finish, got %d", r.finished)
	}
	if len(sl.calls) != 25 {
		t.Fatalf("expected 25 sleeps, got %d", len(sl.calls))
	}
	for _, d := range sl.calls {
		if d != 10*time.Millisecond {
			t.Fatalf("expected 10ms frame interval, got %v", d)
		}
	}
	if len(obs.frames) != 25 || obs.frames[24] != 24 {
		t.Errorf("observer saw frames %v", obs.frames)
	}
	if result.Metrics["test"] != 25 {
		t.Errorf("expected metric 25, got %f", result.Metrics["test"])
	}
}

func TestSimulatorMatchesManualLoop(t *testing.T) {
	r := &testRenderer{}
	sl := &testSleeper{}
	s := New(DefaultScene(), r)
	s.SetSleeper(sl.sleep)

	if _, err := s.Run(context.Background(), Config{FPS: 100, Frames: 50}); err != nil {
		t.Fatal(err)
	}

	x := wave.Oscillator{Position: 0.0, Speed: 1.0}
	y := wave.Oscillator{Position: 1.0, Speed: -0.5}
	for i := 0; i < 50; i++ {
		x.Step(0.01)
		y.Step(0.01)
		var want wave.HeightField
		wave.Accumulate(x.Position, 0.8, 0.5, &want)
		wave.Accumulate(y.Position, 1.2, 0.4, &want)
		if r.frames[i] != want {
			t.Fatalf("frame %d differs from a hand-rolled step", i)
		}
	}
}

func TestSimulatorInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"zero fps", Config{FPS: 0, Frames: 10}},
		{"negative fps", Config{FPS: -5, Frames: 10}},
		{"too fast", Config{FPS: 5000, Frames: 10}},
		{"negative frames", Config{FPS: 100, Frames: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &testRenderer{}
			s := New(DefaultScene(), r)
			_, err := s.Run(context.Background(), tt.cfg)
			if !errors.Is(err, ErrConfig) {
				t.Errorf("expected ErrConfig, got %v", err)
			}
			if r.finished != 0 {
				t.Error("renderer should not be touched on config errors")
			}
		})
	}
}

func TestSimulatorInvalidScene(t *testing.T) {
	scene := DefaultScene()
	scene.Y.Wavelength = 0
	_, err := New(scene, &testRenderer{}).Run(context.Background(), DefaultConfig())
	if !errors.Is(err, wave.ErrWavelength) {
		t.Errorf("expected ErrWavelength, got %v", err)
	}
}

func TestSimulatorCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	r := &testRenderer{}
	s := New(DefaultScene(), r)
	s.SetSleeper(func(ctx context.Context, d time.Duration) error {
		if len(r.frames) == 3 {
			cancel()
		}
		return ctx.Err()
	})

	result, err := s.Run(ctx, DefaultConfig())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if result.Frames != 3 {
		t.Errorf("expected 3 frames before cancel, got %d", result.Frames)
	}
	if r.finished != 1 {
		t.Error("renderer must be finished after cancel")
	}
}

func TestSimulatorRenderError(t *testing.T) {
	r := &testRenderer{failAt: 4}
	s := New(DefaultScene(), r)
	s.SetSleeper((&testSleeper{}).sleep)

	_, err := s.Run(context.Background(), DefaultConfig())
	var fe *FrameError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FrameError, got %v", err)
	}
	if fe.Frame != 4 || !errors.Is(err, errRender) {
		t.Errorf("unexpected frame error: %v", fe)
	}
}

func TestSimulatorWithGridRenderer(t *testing.T) {
	var buf bytes.Buffer
	r, err := render.New(render.ModeGrid, &buf, nil)
	if err != nil {
		t.Fatal(err)
	}
	s := New(DefaultScene(), r)
	s.SetSleeper((&testSleeper{}).sleep)

	if _, err := s.Run(context.Background(), Config{FPS: 100, Frames: 3}); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if got := strings.Count(out, "\033[2J"); got != 3 {
		t.Errorf("expected 3 screen clears, got %d", got)
	}
	if !strings.HasSuffix(out, "\n\033[?25h") {
		t.Error("expected a final newline and the cursor restored")
	}
}

func TestConfigTiming(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Dt() != 0.01 {
		t.Errorf("Dt() = %f, want 0.01", cfg.Dt())
	}
	if cfg.FrameInterval() != 10*time.Millisecond {
		t.Errorf("FrameInterval() = %v, want 10ms", cfg.FrameInterval())
	}
	if got := (Config{FPS: 30}).FrameInterval(); got != 33*time.Millisecond {
		t.Errorf("FrameInterval(30) = %v, want 33ms", got)
	}
}
