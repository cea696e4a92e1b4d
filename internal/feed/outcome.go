package feed

import "badgeview/internal/pages"

// Kind classifies a fetch cycle's overall result.
type Kind int

const (
	// KindFailure means no page was retrieved this cycle.
	KindFailure Kind = iota
	// KindPartial means some pages were retrieved and some failed.
	KindPartial
	// KindSuccess means every page was retrieved.
	KindSuccess
)

// Outcome aggregates one fetch cycle across all endpoints. A page
// appears in exactly one of Payloads or Failed.
type Outcome struct {
	// Payloads holds validated content for the pages that succeeded.
	Payloads map[pages.Page]Payload
	// Failed records the per-page reason for each page that could not
	// be retrieved this cycle.
	Failed map[pages.Page]error
	// Err is set only when the whole cycle failed; it carries a
	// representative reason (the first endpoint failure observed).
	Err error
}

// Kind reports whether the cycle succeeded, partially succeeded, or
// failed outright.
func (o Outcome) Kind() Kind {
	switch {
	case len(o.Payloads) == 0:
		return KindFailure
	case len(o.Failed) > 0:
		return KindPartial
	default:
		return KindSuccess
	}
}

func newOutcome() Outcome {
	return Outcome{
		Payloads: make(map[pages.Page]Payload, len(pages.All())),
		Failed:   make(map[pages.Page]error),
	}
}
