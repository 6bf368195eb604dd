package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"batbroom/internal/engine"
	"batbroom/internal/purger"
)

// Tone selects how a log line is colored.
type Tone int

const (
	ToneInfo Tone = iota
	ToneHeading
	ToneSuccess
	ToneWarn
	ToneError
)

// Line is one human-readable log line derived from a run event.
type Line struct {
	Icon string
	Text string
	Tone Tone
}

func (l Line) String() string {
	if l.Icon == "" {
		return l.Text
	}
	return l.Icon + " " + l.Text
}

// Styled renders the line with the palette color of its tone.
func (l Line) Styled() string {
	return toneStyles[l.Tone].Render(l.String())
}

var toneStyles = map[Tone]lipgloss.Style{
	ToneInfo:    lipgloss.NewStyle().Foreground(ColorInk),
	ToneHeading: lipgloss.NewStyle().Bold(true).Foreground(ColorAccent),
	ToneSuccess: lipgloss.NewStyle().Foreground(ColorSuccess),
	ToneWarn:    lipgloss.NewStyle().Foreground(ColorWarn),
	ToneError:   lipgloss.NewStyle().Foreground(ColorError),
}

// Lines translates ev into the log lines shown to the user. Completion
// produces none.
func Lines(ev engine.Event) []Line {
	switch ev.Kind {
	case engine.EventRunStart:
		return []Line{
			{Icon: "🧹", Text: "Starting cleanup process...", Tone: ToneHeading},
			{Icon: "📊", Text: fmt.Sprintf("Total operations to perform: %d", ev.Total), Tone: ToneInfo},
		}
	case engine.EventSectionStart:
		return []Line{{Icon: "📁", Text: "Processing section: " + ev.Section, Tone: ToneHeading}}
	case engine.EventItemResult:
		return []Line{ItemLine(ev.Entry.Description, ev.Outcome)}
	case engine.EventRunSummary:
		return []Line{
			{Icon: "🎉", Text: "Cleanup completed!", Tone: ToneHeading},
			{Icon: "📊", Text: fmt.Sprintf("Successful operations: %d/%d", ev.Summary.Successful, ev.Summary.Total), Tone: ToneInfo},
		}
	case engine.EventNotice:
		return []Line{noticeLine(ev.Notice)}
	default:
		return nil
	}
}

// ItemLine describes the outcome of one catalog entry.
func ItemLine(description string, outcome purger.Outcome) Line {
	text := description + " - " + outcome.String()
	switch outcome.Kind {
	case purger.KindCleaned:
		return Line{Icon: "✅", Text: text, Tone: ToneSuccess}
	case purger.KindFailed:
		if outcome.Reason == purger.ReasonAccessDenied {
			return Line{Icon: "⚠️", Text: text, Tone: ToneWarn}
		}
		return Line{Icon: "❌", Text: text, Tone: ToneError}
	default:
		return Line{Icon: "ℹ️", Text: text, Tone: ToneInfo}
	}
}

func noticeLine(n engine.Notice) Line {
	switch n.Kind {
	case engine.NoticeSomeFailed:
		return Line{Icon: "ℹ️", Text: n.Message, Tone: ToneInfo}
	case engine.NoticeNotElevated:
		return Line{Icon: "⚠️", Text: "Warning: " + n.Message, Tone: ToneWarn}
	default:
		return Line{Icon: "⚠️", Text: n.Message, Tone: ToneWarn}
	}
}
