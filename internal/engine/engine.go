package engine

import (
	"fmt"
	"sync/atomic"

	"github.com/charmbracelet/log"

	"batbroom/internal/catalog"
	"batbroom/internal/logging"
	"batbroom/internal/purger"
)

type Options struct {
	// Elevated is the result of the privilege probe. When false every run
	// starts with a NoticeNotElevated.
	Elevated bool
	Logger   *log.Logger
}

// Engine runs cleanup selections against a catalog, one run at a time.
type Engine struct {
	catalog  *catalog.Catalog
	resolver Resolver
	purger   Purger
	sink     Sink
	elevated bool
	logger   *log.Logger
	running  atomic.Bool
}

func New(c *catalog.Catalog, resolver Resolver, p Purger, sink Sink, opts Options) *Engine {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	return &Engine{
		catalog:  c,
		resolver: resolver,
		purger:   p,
		sink:     sink,
		elevated: opts.Elevated,
		logger:   logger,
	}
}

func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Running reports whether a run is in progress.
func (e *Engine) Running() bool {
	return e.running.Load()
}

// Start begins a run over sel on a new goroutine. The returned channel
// yields the run's Summary and is then closed; that close is the completion
// signal. started is false, with a nil channel, when another run is still
// in progress. An empty selection completes immediately without a worker.
func (e *Engine) Start(sel catalog.Selection) (done <-chan Summary, started bool, err error) {
	entries, err := e.catalog.Resolve(sel)
	if err != nil {
		return nil, false, err
	}
	if !e.running.CompareAndSwap(false, true) {
		e.logger.Debug("run already in progress, ignoring start")
		return nil, false, nil
	}

	ch := make(chan Summary, 1)
	if len(entries) == 0 {
		e.notify(EventNotice, func() { e.sink.OnNotice(nothingSelected) })
		e.complete(ch, Summary{})
		return ch, true, nil
	}

	go func() {
		summary := Summary{Total: len(entries)}
		defer func() {
			if r := recover(); r != nil {
				e.logger.Error("run aborted", "panic", r)
			}
			e.finish(summary)
			e.complete(ch, summary)
		}()
		e.run(entries, &summary)
	}()
	return ch, true, nil
}

// Run starts a run and waits for it. It returns false when another run was
// already in progress.
func (e *Engine) Run(sel catalog.Selection) (Summary, bool, error) {
	done, started, err := e.Start(sel)
	if err != nil || !started {
		return Summary{}, started, err
	}
	return <-done, true, nil
}

func (e *Engine) run(entries []catalog.Entry, summary *Summary) {
	e.logger.Info("starting cleanup", "entries", summary.Total)
	e.notify(EventRunStart, func() { e.sink.OnRunStart(summary.Total) })
	if !e.elevated {
		e.notify(EventNotice, func() { e.sink.OnNotice(notElevated) })
	}

	section := ""
	for i, entry := range entries {
		if i == 0 || entry.Section != section {
			section = entry.Section
			e.notify(EventSectionStart, func() { e.sink.OnSectionStart(section) })
		}
		outcome := e.process(entry)
		if outcome.Successful() {
			summary.Successful++
		}
		e.notify(EventItemResult, func() { e.sink.OnItemResult(entry, outcome) })
	}
}

// finish reports the totals. Entries a run never reached count as failed.
func (e *Engine) finish(summary Summary) {
	e.logger.Info("cleanup finished", "total", summary.Total, "successful", summary.Successful)
	e.notify(EventRunSummary, func() { e.sink.OnRunSummary(summary) })
	if summary.Successful < summary.Total {
		e.notify(EventNotice, func() { e.sink.OnNotice(someFailed) })
	}
}

// notify delivers one sink call. A panicking sink loses that event only.
func (e *Engine) notify(kind EventKind, call func()) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("sink failed", "event", kind, "panic", r)
		}
	}()
	call()
}

func (e *Engine) process(entry catalog.Entry) (out purger.Outcome) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("entry failed", "entry", entry.Description, "panic", r)
			out = purger.Failed(fmt.Sprint(r))
		}
	}()

	path := e.resolver.Resolve(entry.Pattern)
	e.logger.Debug("purging", "entry", entry.Description, "path", path)
	out = e.purger.Purge(path)
	e.logger.Debug("purged", "entry", entry.Description, "outcome", out.Kind, "count", out.Count)
	return out
}

func (e *Engine) complete(ch chan<- Summary, summary Summary) {
	e.notify(EventRunComplete, e.sink.OnRunComplete)
	e.running.Store(false)
	ch <- summary
	close(ch)
}
