// test/mock/auth.go
package mock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/swarnapay/api/model"
)

// MockAuthUserLoader is a mock implementation of service.AuthUserLoader
type MockAuthUserLoader struct {
	mock.Mock
}

func (m *MockAuthUserLoader) GetAuthUser(ctx context.Context, userID string) (*model.AuthUser, error) {
	args := m.Called(ctx, userID)
	if user := args.Get(0); user != nil {
		return user.(*model.AuthUser), args.Error(1)
	}
	return nil, args.Error(1)
}
