// Package report renders run events for machines.
package report

import (
	"encoding/json"
	"io"
	"sync"
	"time"

	"batbroom/internal/catalog"
	"batbroom/internal/engine"
	"batbroom/internal/purger"
)

type record struct {
	Time        string `json:"time"`
	Event       string `json:"event"`
	Total       *int   `json:"total,omitempty"`
	Successful  *int   `json:"successful,omitempty"`
	Section     string `json:"section,omitempty"`
	Description string `json:"description,omitempty"`
	Pattern     string `json:"pattern,omitempty"`
	Outcome     string `json:"outcome,omitempty"`
	Count       *int   `json:"count,omitempty"`
	Reason      string `json:"reason,omitempty"`
	Notice      string `json:"notice,omitempty"`
	Message     string `json:"message,omitempty"`
}

// JSONSink writes one JSON object per event.
type JSONSink struct {
	mu  sync.Mutex
	enc *json.Encoder
	now func() time.Time
	err error
}

func NewJSONSink(w io.Writer) *JSONSink {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return &JSONSink{enc: enc, now: time.Now}
}

// Err returns the first write error, if any.
func (s *JSONSink) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *JSONSink) emit(kind engine.EventKind, r record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return
	}
	r.Time = s.now().UTC().Format(time.RFC3339)
	r.Event = kind.String()
	s.err = s.enc.Encode(r)
}

func (s *JSONSink) OnRunStart(total int) {
	s.emit(engine.EventRunStart, record{Total: &total})
}

func (s *JSONSink) OnSectionStart(section string) {
	s.emit(engine.EventSectionStart, record{Section: section})
}

func (s *JSONSink) OnItemResult(entry catalog.Entry, outcome purger.Outcome) {
	r := record{
		Section:     entry.Section,
		Description: entry.Description,
		Pattern:     entry.Pattern,
		Outcome:     outcome.Kind.String(),
		Reason:      outcome.Reason,
	}
	if outcome.Kind == purger.KindCleaned {
		count := outcome.Count
		r.Count = &count
	}
	s.emit(engine.EventItemResult, r)
}

func (s *JSONSink) OnRunSummary(summary engine.Summary) {
	s.emit(engine.EventRunSummary, record{Total: &summary.Total, Successful: &summary.Successful})
}

func (s *JSONSink) OnNotice(notice engine.Notice) {
	s.emit(engine.EventNotice, record{Notice: noticeName(notice.Kind), Message: notice.Message})
}

func (s *JSONSink) OnRunComplete() {
	s.emit(engine.EventRunComplete, record{})
}

func noticeName(k engine.NoticeKind) string {
	switch k {
	case engine.NoticeNothingSelected:
		return "nothing_selected"
	case engine.NoticeNotElevated:
		return "not_elevated"
	case engine.NoticeSomeFailed:
		return "some_failed"
	default:
		return "unknown"
	}
}
