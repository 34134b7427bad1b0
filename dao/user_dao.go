// dao/user_dao.go
package dao

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	swarna_errors "github.com/swarnapay/api/errors"
	logger "github.com/swarnapay/api/logging"
	"github.com/swarnapay/api/model"
)

type UserDAO struct {
	DB *gorm.DB
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{DB: db}
}

// authUserColumns is the field projection loaded on the hot path. Anything
// not needed for the cached snapshot stays out of the query.
var authUserColumns = []string{"id", "name", "email", "phone", "user_type", "is_verified", "email_opt_in", "role_id"}

// GetAuthUser loads the admin user row plus its role chain and builds the
// denormalized projection the session store caches.
func (dao *UserDAO) GetAuthUser(ctx context.Context, userID string) (*model.AuthUser, error) {
	var user model.AdminUser
	err := dao.DB.WithContext(ctx).
		Select(authUserColumns).
		Where("id = ? AND deleted_at IS NULL", userID).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, swarna_errors.ErrUserNotFound
	} else if err != nil {
		logger.Error("Failed to load admin user", zap.Error(err), zap.String("userID", userID))
		return nil, err
	}

	authUser := &model.AuthUser{
		ID:         user.ID,
		Name:       user.Name,
		Email:      user.Email,
		Phone:      user.Phone,
		UserType:   user.UserType,
		IsVerified: user.IsVerified,
		EmailOptIn: user.EmailOptIn,
	}

	if user.RoleID != nil && *user.RoleID != "" {
		chain, err := loadRoleChain(ctx, dao.DB, *user.RoleID)
		if err != nil {
			return nil, err
		}
		if len(chain) > 0 {
			authUser.RoleName = chain[0].Name
			authUser.Permissions = model.EffectivePermissions(chain)
		}
	}

	return authUser, nil
}

func (dao *UserDAO) GetByID(ctx context.Context, userID string) (*model.AdminUser, error) {
	var user model.AdminUser
	err := dao.DB.WithContext(ctx).
		Preload("Role.Permissions").
		Where("id = ? AND deleted_at IS NULL", userID).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, swarna_errors.ErrUserNotFound
	} else if err != nil {
		return nil, err
	}
	return &user, nil
}

func (dao *UserDAO) ListUsers(ctx context.Context, limit, offset int) ([]*model.AdminUser, error) {
	var users []*model.AdminUser
	err := dao.DB.WithContext(ctx).
		Where("deleted_at IS NULL").
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (dao *UserDAO) CreateUser(ctx context.Context, user *model.AdminUser) error {
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	if err := dao.DB.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return swarna_errors.ErrUserConflict
		}
		return err
	}
	return nil
}

func (dao *UserDAO) UpdateUser(ctx context.Context, user *model.AdminUser) error {
	user.UpdatedAt = time.Now()
	result := dao.DB.WithContext(ctx).
		Model(&model.AdminUser{}).
		Where("id = ? AND deleted_at IS NULL", user.ID).
		Updates(user)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return swarna_errors.ErrUserNotFound
	}
	return nil
}

// ReferralCodeExists reports whether a referral code is already taken.
func (dao *UserDAO) ReferralCodeExists(ctx context.Context, code string) (bool, error) {
	var count int64
	err := dao.DB.WithContext(ctx).
		Model(&model.AdminUser{}).
		Where("referral_code = ?", code).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
