package purger

import "fmt"

type Kind int

const (
	KindNotFound Kind = iota
	KindCleaned
	KindEmpty
	KindFailed
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindCleaned:
		return "cleaned"
	case KindEmpty:
		return "empty"
	case KindFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ReasonAccessDenied is reported when a single named target resists removal.
const ReasonAccessDenied = "access denied or file in use"

// Outcome is the result of purging one entry. Count is set for
// KindCleaned, Reason for KindFailed.
type Outcome struct {
	Kind   Kind
	Count  int
	Reason string
}

func NotFound() Outcome { return Outcome{Kind: KindNotFound} }

func Empty() Outcome { return Outcome{Kind: KindEmpty} }

func Cleaned(count int) Outcome { return Outcome{Kind: KindCleaned, Count: count} }

func Failed(reason string) Outcome { return Outcome{Kind: KindFailed, Reason: reason} }

// Successful reports whether the outcome counts towards a run's successes.
func (o Outcome) Successful() bool {
	return o.Kind != KindFailed
}

func (o Outcome) String() string {
	switch o.Kind {
	case KindNotFound:
		return "Path not found, skipping"
	case KindEmpty:
		return "No files to clean"
	case KindCleaned:
		return fmt.Sprintf("Cleaned successfully (%d items)", o.Count)
	case KindFailed:
		if o.Reason == ReasonAccessDenied {
			return "Access denied or file in use"
		}
		return "Error: " + o.Reason
	default:
		return o.Kind.String()
	}
}

func tally(count int) Outcome {
	if count > 0 {
		return Cleaned(count)
	}
	return Empty()
}
