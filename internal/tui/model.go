package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Jurkyy/spinny-cube/internal/engine"
	"github.com/Jurkyy/spinny-cube/internal/viz"
)

const historyCapacity = 60

type TickMsg time.Time

// Model drives an engine.Driver from Bubble Tea ticks instead of a sleep
// loop. It only reacts to quit and theme keys.
type Model struct {
	driver   *engine.Driver
	theme    viz.Theme
	lastTick time.Time
	history  []float64
	info     viz.FrameInfo
}

func NewModel(d *engine.Driver, theme viz.Theme) Model {
	return Model{
		driver:   d,
		theme:    theme,
		lastTick: d.Clock().Now(),
		history:  make([]float64, 0, historyCapacity),
	}
}

func (m Model) tick() tea.Cmd {
	delay := max(m.driver.FrameDelay(), time.Millisecond)
	return tea.Tick(delay, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "t":
			m.theme = m.theme.Next()
		}
	case TickMsg:
		m.info = m.driver.Step()

		now := m.driver.Clock().Now()
		stats := m.driver.RecordFrame(now.Sub(m.lastTick))
		m.lastTick = now

		m.history = append(m.history, float64(stats.Last)/float64(time.Millisecond))
		if len(m.history) > historyCapacity {
			m.history = m.history[1:]
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) View() string {
	c := m.driver.Canvas()
	rows := make([]string, c.Height)
	for y := range rows {
		rows[y] = m.theme.Paint(c.Row(y), c.Background)
	}
	frame := strings.Join(rows, "\n")

	stats := m.driver.Stats()
	var s strings.Builder
	s.WriteString(header(m.driver.Active().Name()) + "\n")
	s.WriteString(metric("Frame", fmt.Sprintf("%d", stats.Frames)))
	s.WriteString(metric("Total", stats.Total.Round(time.Millisecond).String()))
	s.WriteString(metric("Average", stats.Average().Round(time.Microsecond).String()))
	s.WriteString(metric("Points", fmt.Sprintf("%d", m.info.Points)))
	s.WriteString(metric("Theme", m.theme.Name))
	s.WriteString(metric("Next", viz.ProgressBar(m.driver.SwitchProgress(), 20)))
	s.WriteString(viz.SparklineChart(m.history, historyCapacity/2) + "\n")
	s.WriteString(viz.KeyHint.Render("Q:Quit  T:Theme"))

	return lipgloss.JoinVertical(lipgloss.Left, frame, viz.PanelStyle.Render(s.String()))
}

func header(name string) string {
	return viz.HeaderStyle.Render(strings.ToUpper(name))
}

func metric(label, value string) string {
	return viz.MetricLabel.Render(label) + viz.MetricValue.Render(value) + "\n"
}

// Run shows the animation full screen until the user quits.
func Run(d *engine.Driver, theme viz.Theme) error {
	p := tea.NewProgram(NewModel(d, theme), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
