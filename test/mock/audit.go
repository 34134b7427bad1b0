// test/mock/audit.go
package mock

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/swarnapay/api/audit"
)

// MockAuditService is a mock implementation of audit.Service
type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) LogAuth(ctx context.Context, event audit.AuthEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockAuditService) QueryEvents(ctx context.Context, from, to time.Time, userID string) ([]audit.AuthEvent, error) {
	args := m.Called(ctx, from, to, userID)
	if events := args.Get(0); events != nil {
		return events.([]audit.AuthEvent), args.Error(1)
	}
	return nil, args.Error(1)
}
