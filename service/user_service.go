// service/user_service.go
package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/swarnapay/api/dao"
	swarna_errors "github.com/swarnapay/api/errors"
	logger "github.com/swarnapay/api/logging"
	"github.com/swarnapay/api/model"
	"github.com/swarnapay/api/util"
)

// IUserService defines the interface for admin user operations
type IUserService interface {
	CreateUser(ctx context.Context, user model.AdminUser, creatorID string) (*model.AdminUser, error)
	UpdateUser(ctx context.Context, user model.AdminUser, updaterID string) (*model.AdminUser, error)
	GetUser(ctx context.Context, userID string) (*model.AdminUser, error)
	ListUsers(ctx context.Context, limit int, offset int) ([]*model.AdminUser, error)
}

// ReferralChecker is the uniqueness probe used by referral-code generation.
type ReferralChecker interface {
	ReferralCodeExists(ctx context.Context, code string) (bool, error)
}

// UserService handles business logic for admin user operations
type UserService struct {
	userDAO             *dao.UserDAO
	validationUtil      *util.ValidationUtil
	notificationSvc     *util.NotificationService
	eventBus            *util.EventBus
	referralMaxAttempts int
}

var _ IUserService = &UserService{}

// NewUserService creates a new instance of UserService
func NewUserService(userDAO *dao.UserDAO, validationUtil *util.ValidationUtil, notificationSvc *util.NotificationService, eventBus *util.EventBus, referralMaxAttempts int) *UserService {
	if referralMaxAttempts <= 0 {
		referralMaxAttempts = 5
	}
	return &UserService{
		userDAO:             userDAO,
		validationUtil:      validationUtil,
		notificationSvc:     notificationSvc,
		eventBus:            eventBus,
		referralMaxAttempts: referralMaxAttempts,
	}
}

func (s *UserService) CreateUser(ctx context.Context, user model.AdminUser, creatorID string) (*model.AdminUser, error) {
	if err := s.validationUtil.ValidateAdminUser(user); err != nil {
		return nil, swarna_errors.ErrInvalidUserData
	}
	if user.ID == "" {
		user.ID = uuid.New().String()
	}

	if user.ReferralCode == "" {
		code, err := GenerateReferralCode(ctx, s.userDAO, s.referralMaxAttempts)
		if err != nil {
			return nil, err
		}
		user.ReferralCode = code
	}

	if err := s.userDAO.CreateUser(ctx, &user); err != nil {
		logger.Error("Failed to create admin user", zap.Error(err), zap.String("creatorID", creatorID))
		return nil, err
	}

	s.eventBus.Publish(ctx, "user.created", user)
	if err := s.notificationSvc.NotifyUserChange(ctx, "created", user); err != nil {
		logger.Warn("Failed to send user creation notification", zap.Error(err), zap.String("userID", user.ID))
	}

	return &user, nil
}

func (s *UserService) UpdateUser(ctx context.Context, user model.AdminUser, updaterID string) (*model.AdminUser, error) {
	if err := s.validationUtil.ValidateAdminUser(user); err != nil {
		return nil, swarna_errors.ErrInvalidUserData
	}

	if err := s.userDAO.UpdateUser(ctx, &user); err != nil {
		return nil, err
	}

	// Subscribers drop the user's session cache entry so role or account
	// changes can land before TTL expiry.
	s.eventBus.Publish(ctx, "user.updated", user)
	if err := s.notificationSvc.NotifyUserChange(ctx, "updated", user); err != nil {
		logger.Warn("Failed to send user update notification", zap.Error(err), zap.String("userID", user.ID))
	}

	return &user, nil
}

func (s *UserService) GetUser(ctx context.Context, userID string) (*model.AdminUser, error) {
	return s.userDAO.GetByID(ctx, userID)
}

func (s *UserService) ListUsers(ctx context.Context, limit int, offset int) ([]*model.AdminUser, error) {
	return s.userDAO.ListUsers(ctx, limit, offset)
}

// GenerateReferralCode derives a short uppercase code and retries on
// collision, up to maxAttempts. Exhaustion is a deterministic failure, never
// unbounded recursion.
func GenerateReferralCode(ctx context.Context, checker ReferralChecker, maxAttempts int) (string, error) {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		code := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:8])
		taken, err := checker.ReferralCodeExists(ctx, code)
		if err != nil {
			return "", err
		}
		if !taken {
			return code, nil
		}
		logger.Debug("Referral code collision, retrying",
			zap.String("code", code), zap.Int("attempt", attempt+1))
	}
	return "", swarna_errors.ErrReferralExhausted
}
