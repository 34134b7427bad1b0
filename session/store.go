// Package session holds the short-TTL cache of resolved admin user
// projections. Entries are immutable snapshots replaced wholesale; TTL
// expiry supplies eventual consistency, so there is no invalidation
// messaging on the normal path.
package session

import (
	"context"

	"github.com/swarnapay/api/model"
)

// Store is the session cache capability. It is injected rather than held as
// a package-level client so tests can substitute a controllable fake.
type Store interface {
	// Get returns the cached projection for userID, or (nil, nil) when the
	// entry is cold or expired. Absence is a normal outcome, not an error.
	Get(ctx context.Context, userID string) (*model.AuthUser, error)

	// Put overwrites the entry for userID with the store's configured TTL.
	// Callers treat failures as degradation, not request errors.
	Put(ctx context.Context, userID string, user *model.AuthUser) error

	// Delete removes the entry so the next request resolves fresh. Used when
	// a role change should land before TTL expiry.
	Delete(ctx context.Context, userID string) error
}
