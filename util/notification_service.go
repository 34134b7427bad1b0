// util/notification_service.go

package util

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	logger "github.com/swarnapay/api/logging"
	"github.com/swarnapay/api/model"
)

type NotificationService struct {
	// You might want to add dependencies here, such as a message queue client
}

func NewNotificationService() *NotificationService {
	return &NotificationService{}
}

func (n *NotificationService) NotifyUserChange(ctx context.Context, changeType string, user model.AdminUser) error {
	switch changeType {
	case "created":
		logger.Info("NOTIFICATION: New admin user created",
			zap.String("userID", user.ID),
			zap.String("email", user.Email))
	case "updated":
		logger.Info("NOTIFICATION: Admin user updated",
			zap.String("userID", user.ID))
	default:
		return fmt.Errorf("unknown change type: %s", changeType)
	}
	return nil
}

func (n *NotificationService) NotifyRoleChange(ctx context.Context, changeType string, role model.Role) error {
	switch changeType {
	case "created":
		logger.Info("NOTIFICATION: New role created",
			zap.String("roleID", role.ID),
			zap.String("roleName", role.Name))
	case "updated":
		logger.Info("NOTIFICATION: Role updated",
			zap.String("roleID", role.ID),
			zap.String("roleName", role.Name))
	default:
		return fmt.Errorf("unknown change type: %s", changeType)
	}
	return nil
}
