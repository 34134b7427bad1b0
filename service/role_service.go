// service/role_service.go
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/swarnapay/api/dao"
	swarna_errors "github.com/swarnapay/api/errors"
	logger "github.com/swarnapay/api/logging"
	"github.com/swarnapay/api/model"
	"github.com/swarnapay/api/util"
)

// IRoleService defines the interface for role operations
type IRoleService interface {
	CreateRole(ctx context.Context, role model.Role, creatorID string) (*model.Role, error)
	UpdateRole(ctx context.Context, role model.Role, updaterID string) (*model.Role, error)
	GetRole(ctx context.Context, roleID string) (*model.Role, error)
	ListRoles(ctx context.Context, limit int, offset int) ([]*model.Role, error)
}

// RoleService handles business logic for role operations
type RoleService struct {
	roleDAO         *dao.RoleDAO
	validationUtil  *util.ValidationUtil
	notificationSvc *util.NotificationService
	eventBus        *util.EventBus
}

var _ IRoleService = &RoleService{}

// NewRoleService creates a new instance of RoleService
func NewRoleService(roleDAO *dao.RoleDAO, validationUtil *util.ValidationUtil, notificationSvc *util.NotificationService, eventBus *util.EventBus) *RoleService {
	return &RoleService{
		roleDAO:         roleDAO,
		validationUtil:  validationUtil,
		notificationSvc: notificationSvc,
		eventBus:        eventBus,
	}
}

func (s *RoleService) CreateRole(ctx context.Context, role model.Role, creatorID string) (*model.Role, error) {
	if err := s.validationUtil.ValidateRole(role); err != nil {
		return nil, swarna_errors.ErrInvalidRoleData
	}

	if err := s.roleDAO.CreateRole(ctx, &role); err != nil {
		logger.Error("Failed to create role", zap.Error(err), zap.String("creatorID", creatorID))
		return nil, err
	}

	s.eventBus.Publish(ctx, "role.created", role)
	if err := s.notificationSvc.NotifyRoleChange(ctx, "created", role); err != nil {
		logger.Warn("Failed to send role creation notification", zap.Error(err), zap.String("roleID", role.ID))
	}

	return &role, nil
}

func (s *RoleService) UpdateRole(ctx context.Context, role model.Role, updaterID string) (*model.Role, error) {
	if err := s.validationUtil.ValidateRole(role); err != nil {
		return nil, swarna_errors.ErrInvalidRoleData
	}

	if err := s.roleDAO.UpdateRole(ctx, &role); err != nil {
		return nil, err
	}

	// Role edits change effective permissions for every holder; cached
	// sessions age out within the TTL, subscribers may cut that shorter.
	s.eventBus.Publish(ctx, "role.updated", role)
	if err := s.notificationSvc.NotifyRoleChange(ctx, "updated", role); err != nil {
		logger.Warn("Failed to send role update notification", zap.Error(err), zap.String("roleID", role.ID))
	}

	return &role, nil
}

func (s *RoleService) GetRole(ctx context.Context, roleID string) (*model.Role, error) {
	return s.roleDAO.GetRole(ctx, roleID)
}

func (s *RoleService) ListRoles(ctx context.Context, limit int, offset int) ([]*model.Role, error) {
	return s.roleDAO.ListRoles(ctx, limit, offset)
}
