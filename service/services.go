// service/services.go
package service

import (
	"context"

	"gorm.io/gorm"

	"github.com/swarnapay/api/config"
	"github.com/swarnapay/api/dao"
	"github.com/swarnapay/api/ledger"
	"github.com/swarnapay/api/model"
	"github.com/swarnapay/api/session"
	"github.com/swarnapay/api/util"
)

type Services struct {
	Auth IAuthService
	User IUserService
	Role IRoleService
}

func InitializeServices(
	gdb *gorm.DB,
	store session.Store,
	lgr ledger.Ledger,
	validationUtil *util.ValidationUtil,
	notificationSvc *util.NotificationService,
	eventBus *util.EventBus,
) (*Services, error) {
	userDAO := dao.NewUserDAO(gdb)
	roleDAO := dao.NewRoleDAO(gdb)

	authService := NewAuthService(userDAO, store, lgr, config.GetBool("ledger.enabled"))

	services := &Services{
		Auth: authService,
		User: NewUserService(userDAO, validationUtil, notificationSvc, eventBus, config.GetInt("referral.maxAttempts")),
		Role: NewRoleService(roleDAO, validationUtil, notificationSvc, eventBus),
	}

	// A user edit invalidates that user's cached session. Role edits rely on
	// TTL expiry; holders are not enumerated here.
	eventBus.Subscribe("user.updated", func(ctx context.Context, event util.Event) error {
		if user, ok := event.Payload.(model.AdminUser); ok {
			authService.Invalidate(ctx, user.ID)
		}
		return nil
	})

	return services, nil
}
