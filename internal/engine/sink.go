package engine

import (
	"batbroom/internal/catalog"
	"batbroom/internal/purger"
)

type EventKind int

const (
	EventRunStart EventKind = iota
	EventSectionStart
	EventItemResult
	EventRunSummary
	EventNotice
	EventRunComplete
)

func (k EventKind) String() string {
	switch k {
	case EventRunStart:
		return "run_start"
	case EventSectionStart:
		return "section_start"
	case EventItemResult:
		return "item_result"
	case EventRunSummary:
		return "run_summary"
	case EventNotice:
		return "notice"
	case EventRunComplete:
		return "run_complete"
	default:
		return "unknown"
	}
}

// Event is a Sink call captured as a value. Only the fields relevant to
// Kind are set.
type Event struct {
	Kind    EventKind
	Total   int
	Section string
	Entry   catalog.Entry
	Outcome purger.Outcome
	Summary Summary
	Notice  Notice
}

// ChannelSink forwards every call as an Event on a channel, so a consumer
// on another goroutine sees them in emission order. The owner of the
// channel closes it.
type ChannelSink struct {
	events chan<- Event
}

func NewChannelSink(events chan<- Event) *ChannelSink {
	return &ChannelSink{events: events}
}

func (s *ChannelSink) OnRunStart(total int) {
	s.events <- Event{Kind: EventRunStart, Total: total}
}

func (s *ChannelSink) OnSectionStart(section string) {
	s.events <- Event{Kind: EventSectionStart, Section: section}
}

func (s *ChannelSink) OnItemResult(entry catalog.Entry, outcome purger.Outcome) {
	s.events <- Event{Kind: EventItemResult, Entry: entry, Outcome: outcome}
}

func (s *ChannelSink) OnRunSummary(summary Summary) {
	s.events <- Event{Kind: EventRunSummary, Summary: summary}
}

func (s *ChannelSink) OnNotice(notice Notice) {
	s.events <- Event{Kind: EventNotice, Notice: notice}
}

func (s *ChannelSink) OnRunComplete() {
	s.events <- Event{Kind: EventRunComplete}
}

// Dispatch replays ev on sink.
func Dispatch(sink Sink, ev Event) {
	switch ev.Kind {
	case EventRunStart:
		sink.OnRunStart(ev.Total)
	case EventSectionStart:
		sink.OnSectionStart(ev.Section)
	case EventItemResult:
		sink.OnItemResult(ev.Entry, ev.Outcome)
	case EventRunSummary:
		sink.OnRunSummary(ev.Summary)
	case EventNotice:
		sink.OnNotice(ev.Notice)
	case EventRunComplete:
		sink.OnRunComplete()
	}
}

// MultiSink fans every call out to each sink in order.
type MultiSink []Sink

func (m MultiSink) OnRunStart(total int) {
	for _, s := range m {
		s.OnRunStart(total)
	}
}

func (m MultiSink) OnSectionStart(section string) {
	for _, s := range m {
		s.OnSectionStart(section)
	}
}

func (m MultiSink) OnItemResult(entry catalog.Entry, outcome purger.Outcome) {
	for _, s := range m {
		s.OnItemResult(entry, outcome)
	}
}

func (m MultiSink) OnRunSummary(summary Summary) {
	for _, s := range m {
		s.OnRunSummary(summary)
	}
}

func (m MultiSink) OnNotice(notice Notice) {
	for _, s := range m {
		s.OnNotice(notice)
	}
}

func (m MultiSink) OnRunComplete() {
	for _, s := range m {
		s.OnRunComplete()
	}
}
