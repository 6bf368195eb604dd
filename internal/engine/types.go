package engine

import (
	"batbroom/internal/catalog"
	"batbroom/internal/purger"
)

type Summary struct {
	Total      int
	Successful int
}

// Failed returns the number of entries that did not succeed.
func (s Summary) Failed() int {
	return s.Total - s.Successful
}

type NoticeKind int

const (
	NoticeNothingSelected NoticeKind = iota
	NoticeNotElevated
	NoticeSomeFailed
)

type Notice struct {
	Kind    NoticeKind
	Message string
}

var (
	nothingSelected = Notice{Kind: NoticeNothingSelected, Message: "No paths selected for cleanup!"}
	notElevated     = Notice{Kind: NoticeNotElevated, Message: "Not running as administrator. Some operations may fail."}
	someFailed      = Notice{Kind: NoticeSomeFailed, Message: "Some files could not be deleted (normal for files in use)"}
)

// Sink receives the events of a run, in order, from the run's goroutine.
type Sink interface {
	OnRunStart(total int)
	OnSectionStart(section string)
	OnItemResult(entry catalog.Entry, outcome purger.Outcome)
	OnRunSummary(summary Summary)
	OnNotice(notice Notice)
	OnRunComplete()
}

// Resolver turns a catalog pattern into a concrete path.
type Resolver interface {
	Resolve(template string) string
}

// Purger removes what a concrete path selects.
type Purger interface {
	Purge(path string) purger.Outcome
}
