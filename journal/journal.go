// Package journal persists error chains so they can be inspected after the
// process that produced them is gone. Only the generic view of each link is
// stored; concrete payloads are not.
package journal

import (
	"context"
	"time"

	"github.com/jt0/errkit/envelope"
)

type Journal interface {
	// Record stores o's chain and returns the id of the new record.
	Record(ctx context.Context, o envelope.Opaque) (string, envelope.Opaque)
}

// Entry is the stored form of an error chain.
type Entry struct {
	RecordId   string    `dynamodbav:"RecordId"`
	RecordedAt time.Time `dynamodbav:"RecordedAt"`
	Links      []Link    `dynamodbav:"Links"`
	Truncated  bool      `dynamodbav:"Truncated,omitempty"`
}

// Link is one element of a stored chain, holder first.
type Link struct {
	Tag         string `dynamodbav:"Tag"`
	Description string `dynamodbav:"Description,omitempty"`
	Details     string `dynamodbav:"Details,omitempty"`
}

// NewEntry flattens up to maxDepth links of o's chain (0 means unbounded).
func NewEntry(id string, at time.Time, o envelope.Opaque, maxDepth int) Entry {
	entry := Entry{RecordId: id, RecordedAt: at.UTC()}

	envelope.Walk(o, func(depth int, link envelope.Opaque) bool {
		if maxDepth > 0 && depth == maxDepth {
			entry.Truncated = true
			return false
		}

		description, _ := link.Description()
		details, _ := link.Details()
		entry.Links = append(entry.Links, Link{Tag: link.Tag().String(), Description: description, Details: details})
		return true
	})

	return entry
}

// Recorded marks envelopes rebuilt from a stored Entry. The original family
// can't be recovered from storage; its tag is kept as the extensions string.
type Recorded struct{}

// Opaque rebuilds the stored chain as Recorded envelopes.
func (e Entry) Opaque() envelope.Opaque {
	var o envelope.Opaque
	for i := len(e.Links) - 1; i >= 0; i-- {
		link := e.Links[i]
		o = envelope.New[Recorded](link.Description,
			envelope.WithDetails(link.Details),
			envelope.WithExtensions(link.Tag),
			envelope.WithCause(o),
		)
	}

	return o
}
