// Package ledger is the pluggable hook for mirroring authentication events
// to an external distributed ledger. The platform ships with the hook
// disabled; Noop is the default implementation.
package ledger

import (
	"context"
	"time"
)

type Event struct {
	Type      string    `json:"type"` // e.g. "session.resolved"
	UserID    string    `json:"user_id"`
	Timestamp time.Time `json:"timestamp"`
	Detail    string    `json:"detail,omitempty"`
}

type Ledger interface {
	Record(ctx context.Context, event Event) error
}

// Noop accepts every event and discards it.
type Noop struct{}

var _ Ledger = Noop{}

func (Noop) Record(ctx context.Context, event Event) error {
	return nil
}
