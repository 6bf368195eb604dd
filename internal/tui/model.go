package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"batbroom/internal/engine"
)

const visibleLines = 8

// Model renders a run's progress from its event channel.
type Model struct {
	events    <-chan engine.Event
	started   time.Time
	width     int
	total     int
	processed int
	failed    int
	section   string
	lines     []Line
	summary   *engine.Summary
	spinner   spinner.Model
	bar       progress.Model
	quitting  bool
	detached  bool
}

type doneMsg struct{}

type eventMsg engine.Event

func NewModel(events <-chan engine.Event) Model {
	sp := spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(lipgloss.NewStyle().Foreground(ColorAccent)))
	bar := progress.New(progress.WithGradient(string(ColorAccentAlt), string(ColorSuccess)), progress.WithWidth(40))
	return Model{events: events, started: time.Now(), spinner: sp, bar: bar}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, listenForEvents(m.events))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		m = m.apply(engine.Event(msg))
		if msg.Kind == engine.EventRunComplete {
			m.quitting = true
			return m, tea.Quit
		}
		return m, listenForEvents(m.events)
	case doneMsg:
		m.quitting = true
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			m.detached = true
			return m, tea.Quit
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.bar.Width = min(60, max(20, msg.Width-10))
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	default:
		return m, nil
	}
}

func (m Model) apply(ev engine.Event) Model {
	switch ev.Kind {
	case engine.EventRunStart:
		m.total = ev.Total
	case engine.EventSectionStart:
		m.section = ev.Section
	case engine.EventItemResult:
		m.processed++
		if !ev.Outcome.Successful() {
			m.failed++
		}
	case engine.EventRunSummary:
		s := ev.Summary
		m.summary = &s
	}
	m.lines = append(m.lines, Lines(ev)...)
	return m
}

// Summary returns the run summary once it has been received.
func (m Model) Summary() (engine.Summary, bool) {
	if m.summary == nil {
		return engine.Summary{}, false
	}
	return *m.summary, true
}

// Detached reports whether the user closed the view before the run ended.
func (m Model) Detached() bool {
	return m.detached
}

func (m Model) View() string {
	if m.quitting {
		rendered := make([]string, len(m.lines))
		for i, line := range m.lines {
			rendered[i] = line.Styled()
		}
		if len(rendered) == 0 {
			return ""
		}
		return strings.Join(rendered, "\n") + "\n"
	}

	ratio := 0.0
	if m.total > 0 {
		ratio = min(1, float64(m.processed)/float64(m.total))
	}
	elapsed := time.Since(m.started).Round(time.Millisecond)

	status := "waiting"
	if m.section != "" {
		status = m.section
	}

	lines := []string{
		titleStyle.Render("batbroom 🧹"),
		m.spinner.View() + " " + labelStyle.Render(status),
		labelStyle.Render(fmt.Sprintf("Entries: %d/%d", m.processed, m.total)) + dimStyle.Render(fmt.Sprintf("  errors:%d", m.failed)),
		dimStyle.Render(fmt.Sprintf("Elapsed: %s", elapsed)),
		m.bar.ViewAs(ratio),
		"",
	}

	start := max(0, len(m.lines)-visibleLines)
	for _, line := range m.lines[start:] {
		lines = append(lines, line.Styled())
	}
	return strings.Join(lines, "\n")
}

func listenForEvents(events <-chan engine.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return doneMsg{}
		}
		return eventMsg(ev)
	}
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)
