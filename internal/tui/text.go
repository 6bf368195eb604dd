package tui

import (
	"fmt"
	"io"
	"sync"
	"time"

	"batbroom/internal/catalog"
	"batbroom/internal/engine"
	"batbroom/internal/purger"
)

// TextSink writes timestamped log lines for each event. It is the
// non-interactive front end.
type TextSink struct {
	mu    sync.Mutex
	w     io.Writer
	color bool
	now   func() time.Time
}

func NewTextSink(w io.Writer, color bool) *TextSink {
	return &TextSink{w: w, color: color, now: time.Now}
}

func (s *TextSink) write(ev engine.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ev.Kind == engine.EventSectionStart || ev.Kind == engine.EventRunSummary {
		fmt.Fprintln(s.w)
	}
	stamp := s.now().Format(time.TimeOnly)
	for _, line := range Lines(ev) {
		text := line.String()
		if s.color {
			text = line.Styled()
		}
		fmt.Fprintf(s.w, "[%s] %s\n", stamp, text)
	}
}

func (s *TextSink) OnRunStart(total int) {
	s.write(engine.Event{Kind: engine.EventRunStart, Total: total})
}

func (s *TextSink) OnSectionStart(section string) {
	s.write(engine.Event{Kind: engine.EventSectionStart, Section: section})
}

func (s *TextSink) OnItemResult(entry catalog.Entry, outcome purger.Outcome) {
	s.write(engine.Event{Kind: engine.EventItemResult, Entry: entry, Outcome: outcome})
}

func (s *TextSink) OnRunSummary(summary engine.Summary) {
	s.write(engine.Event{Kind: engine.EventRunSummary, Summary: summary})
}

func (s *TextSink) OnNotice(notice engine.Notice) {
	s.write(engine.Event{Kind: engine.EventNotice, Notice: notice})
}

func (s *TextSink) OnRunComplete() {}
