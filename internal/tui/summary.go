package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"batbroom/internal/engine"
)

type SummaryRow struct {
	Label string
	Value string
	Tone  Tone
}

// SummaryRows lays out a run summary for RenderSummary. Failures are only
// highlighted when there are some.
func SummaryRows(s engine.Summary, elapsed time.Duration) []SummaryRow {
	failedTone := ToneInfo
	if s.Failed() > 0 {
		failedTone = ToneError
	}
	return []SummaryRow{
		{Label: "Entries processed", Value: fmt.Sprintf("%d", s.Total), Tone: ToneInfo},
		{Label: "Successful", Value: fmt.Sprintf("%d", s.Successful), Tone: ToneSuccess},
		{Label: "Failed", Value: fmt.Sprintf("%d", s.Failed()), Tone: failedTone},
		{Label: "Elapsed", Value: elapsed.Round(time.Millisecond).String(), Tone: ToneInfo},
	}
}

// RenderSummary draws rows as a bordered two-column table.
func RenderSummary(rows []SummaryRow) string {
	data := make([][]string, len(rows))
	for i, row := range rows {
		data[i] = []string{row.Label, row.Value}
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(ColorDim)).
		StyleFunc(func(row, col int) lipgloss.Style {
			cell := lipgloss.NewStyle().Padding(0, 1)
			if row < 0 || row >= len(rows) || col == 0 {
				return cell.Inherit(labelStyle)
			}
			return cell.Inherit(toneStyles[rows[row].Tone]).Bold(true)
		}).
		Rows(data...).
		String()
}
