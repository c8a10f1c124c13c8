package viz

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/asciiwave/internal/render"
	"github.com/san-kum/asciiwave/internal/sim"
)

const historyCapacity = 240

type TickMsg time.Time

// Model drives the scene from bubbletea ticks and draws it with lipgloss.
type Model struct {
	scene    *sim.Scene
	cfg      sim.Config
	palette  render.Palette
	styles   styles
	frame    int
	xHistory []float64
	yHistory []float64
	done     bool
}

func NewModel(scene *sim.Scene, cfg sim.Config, palette render.Palette, theme Theme) Model {
	if len(palette) == 0 {
		palette = render.DefaultPalette
	}
	return Model{
		scene:    scene,
		cfg:      cfg,
		palette:  palette,
		styles:   newStyles(theme),
		xHistory: make([]float64, 0, historyCapacity),
		yHistory: make([]float64, 0, historyCapacity),
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.cfg.FrameInterval(), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	if m.cfg.Frames == 0 {
		return tea.Quit
	}
	return m.tick()
}

// Update steps the scene once per tick and quits after the last frame.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case TickMsg:
		if m.frame >= m.cfg.Frames {
			m.done = true
			return m, tea.Quit
		}
		m.scene.Step(m.cfg.Dt())
		m.frame++
		m.xHistory = appendCapped(m.xHistory, m.scene.X.Position)
		m.yHistory = appendCapped(m.yHistory, m.scene.Y.Position)
		if m.frame >= m.cfg.Frames {
			m.done = true
			return m, tea.Quit
		}
		return m, m.tick()
	}
	return m, nil
}

func appendCapped(h []float64, v float64) []float64 {
	h = append(h, v)
	if len(h) > historyCapacity {
		h = h[1:]
	}
	return h
}

func (m Model) Frame() int { return m.frame }
func (m Model) Done() bool { return m.done }

// View renders the bar profile, the graded strip and the oscillator trace.
func (m Model) View() string {
	var field strings.Builder
	for _, row := range render.Grid(&m.scene.Field, m.palette) {
		field.WriteString(m.styles.field.Render(row) + "\n")
	}
	field.WriteString(m.styles.strip.Render(render.Line(&m.scene.Field, m.palette)))

	var s strings.Builder
	s.WriteString(m.styles.header.Render("ASCIIWAVE") + "\n")
	s.WriteString(m.styles.panel.Render(field.String()) + "\n")

	if len(m.xHistory) > 1 {
		chart := asciigraph.PlotMany([][]float64{m.xHistory, m.yHistory},
			asciigraph.Height(5),
			asciigraph.Width(60),
			asciigraph.LowerBound(0),
			asciigraph.UpperBound(1),
			asciigraph.SeriesColors(asciigraph.Cyan, asciigraph.Yellow),
			asciigraph.Caption("oscillator positions"))
		s.WriteString(m.styles.graph.Render(chart) + "\n")
	}

	progress := 0.0
	if m.cfg.Frames > 0 {
		progress = float64(m.frame) / float64(m.cfg.Frames)
	}
	s.WriteString(m.styles.label.Render("Frame") +
		m.styles.value.Render(fmt.Sprintf("%d/%d %s", m.frame, m.cfg.Frames, ProgressBar(progress, 20))) + "\n")
	s.WriteString(m.styles.label.Render("X") +
		m.styles.value.Render(fmt.Sprintf("%.3f (v=%+.2f)", m.scene.X.Position, m.scene.X.Speed)) + "\n")
	s.WriteString(m.styles.label.Render("Y") +
		m.styles.value.Render(fmt.Sprintf("%.3f (v=%+.2f)", m.scene.Y.Position, m.scene.Y.Speed)) + "\n")

	return lipgloss.NewStyle().Padding(1, 2).Render(s.String())
}

// Run plays the scene in an alternate screen until the frames run out or
// ctx is cancelled. It reads no input; interrupts arrive as signals.
func Run(ctx context.Context, scene *sim.Scene, cfg sim.Config, palette render.Palette, theme Theme) error {
	if err := scene.Validate(); err != nil {
		return err
	}
	p := tea.NewProgram(NewModel(scene, cfg, palette, theme),
		tea.WithContext(ctx),
		tea.WithInput(nil),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}
