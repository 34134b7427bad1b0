// service/auth_service.go
package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/swarnapay/api/ledger"
	logger "github.com/swarnapay/api/logging"
	"github.com/swarnapay/api/model"
	"github.com/swarnapay/api/session"
)

// AuthUserLoader is the system-of-record read side the resolver depends on.
// Implemented by dao.UserDAO.
type AuthUserLoader interface {
	GetAuthUser(ctx context.Context, userID string) (*model.AuthUser, error)
}

// IAuthService resolves a verified principal ID into an access-control-ready
// user projection, cache-aside over the session store.
type IAuthService interface {
	Resolve(ctx context.Context, userID string) (*model.AuthUser, bool, error)
	Invalidate(ctx context.Context, userID string)
}

type AuthService struct {
	loader        AuthUserLoader
	store         session.Store
	ledger        ledger.Ledger
	ledgerEnabled bool
}

var _ IAuthService = &AuthService{}

func NewAuthService(loader AuthUserLoader, store session.Store, lgr ledger.Ledger, ledgerEnabled bool) *AuthService {
	if lgr == nil {
		lgr = ledger.Noop{}
	}
	return &AuthService{
		loader:        loader,
		store:         store,
		ledger:        lgr,
		ledgerEnabled: ledgerEnabled,
	}
}

// Resolve returns the user projection for userID and whether this call
// performed a fresh load (cache miss) rather than a cache hit.
//
// Cache reads and writes never fail the request: a broken store degrades to
// resolving fresh on every call. Concurrent misses for the same user may
// each load from the database and overwrite the entry; the write is
// idempotent and last-writer-wins, so no caller observes a torn projection.
func (s *AuthService) Resolve(ctx context.Context, userID string) (*model.AuthUser, bool, error) {
	cached, err := s.store.Get(ctx, userID)
	if err != nil {
		logger.Warn("Session cache read failed, resolving fresh",
			zap.Error(err), zap.String("userID", userID))
	}
	if cached != nil {
		return cached, false, nil
	}

	user, err := s.loader.GetAuthUser(ctx, userID)
	if err != nil {
		return nil, false, err
	}

	// Write-through before returning so repeat requests inside the TTL
	// window skip the database.
	if err := s.store.Put(ctx, userID, user); err != nil {
		logger.Warn("Session cache write failed, continuing without cache",
			zap.Error(err), zap.String("userID", userID))
	}

	if s.ledgerEnabled {
		event := ledger.Event{
			Type:      "session.resolved",
			UserID:    userID,
			Timestamp: time.Now(),
		}
		if err := s.ledger.Record(ctx, event); err != nil {
			logger.Warn("Ledger record failed", zap.Error(err), zap.String("userID", userID))
		}
	}

	return user, true, nil
}

// Invalidate drops the cached entry so the next request re-resolves. Cache
// failures are logged only; TTL expiry remains the backstop.
func (s *AuthService) Invalidate(ctx context.Context, userID string) {
	if err := s.store.Delete(ctx, userID); err != nil {
		logger.Warn("Session cache invalidation failed",
			zap.Error(err), zap.String("userID", userID))
	}
}
