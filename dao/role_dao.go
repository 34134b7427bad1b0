// dao/role_dao.go
package dao

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	swarna_errors "github.com/swarnapay/api/errors"
	"github.com/swarnapay/api/model"
)

// maxRoleDepth caps parent-chain traversal. A well-formed hierarchy is a
// handful of levels; anything deeper is treated the same as a cycle.
const maxRoleDepth = 16

type RoleDAO struct {
	DB *gorm.DB
}

func NewRoleDAO(db *gorm.DB) *RoleDAO {
	return &RoleDAO{DB: db}
}

func (dao *RoleDAO) GetRole(ctx context.Context, roleID string) (*model.Role, error) {
	var role model.Role
	err := dao.DB.WithContext(ctx).
		Preload("Permissions").
		Where("id = ?", roleID).
		First(&role).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, swarna_errors.ErrRoleNotFound
	} else if err != nil {
		return nil, err
	}
	return &role, nil
}

func (dao *RoleDAO) ListRoles(ctx context.Context, limit, offset int) ([]*model.Role, error) {
	var roles []*model.Role
	err := dao.DB.WithContext(ctx).
		Preload("Permissions").
		Order("weight DESC").
		Limit(limit).Offset(offset).
		Find(&roles).Error
	if err != nil {
		return nil, err
	}
	return roles, nil
}

func (dao *RoleDAO) CreateRole(ctx context.Context, role *model.Role) error {
	if role.ID == "" {
		role.ID = uuid.New().String()
	}
	now := time.Now()
	role.CreatedAt = now
	role.UpdatedAt = now

	// Reject hierarchies that would cycle before they reach the database.
	if role.ParentID != nil && *role.ParentID != "" {
		if _, err := loadRoleChain(ctx, dao.DB, *role.ParentID); err != nil {
			return err
		}
	}

	if err := dao.DB.WithContext(ctx).Create(role).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return swarna_errors.ErrRoleConflict
		}
		return err
	}
	return nil
}

func (dao *RoleDAO) UpdateRole(ctx context.Context, role *model.Role) error {
	role.UpdatedAt = time.Now()
	result := dao.DB.WithContext(ctx).
		Model(&model.Role{}).
		Where("id = ?", role.ID).
		Updates(role)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return swarna_errors.ErrRoleNotFound
	}
	return nil
}

// GetRoleChain returns the role plus its ancestors, most senior weight first.
func (dao *RoleDAO) GetRoleChain(ctx context.Context, roleID string) ([]model.Role, error) {
	return loadRoleChain(ctx, dao.DB, roleID)
}

func loadRoleChain(ctx context.Context, db *gorm.DB, roleID string) ([]model.Role, error) {
	return walkRoleChain(roleID, func(id string) (*model.Role, error) {
		var role model.Role
		err := db.WithContext(ctx).
			Preload("Permissions").
			Where("id = ?", id).
			First(&role).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, swarna_errors.ErrRoleNotFound
		} else if err != nil {
			return nil, err
		}
		return &role, nil
	})
}

// walkRoleChain follows parent links from roleID upward. The lookup is
// abstracted so the traversal, including its cycle guard, is testable
// without a database.
func walkRoleChain(roleID string, lookup func(id string) (*model.Role, error)) ([]model.Role, error) {
	visited := make(map[string]struct{})
	var chain []model.Role

	current := roleID
	for current != "" {
		if _, ok := visited[current]; ok {
			return nil, swarna_errors.ErrRoleCycle
		}
		if len(chain) >= maxRoleDepth {
			return nil, swarna_errors.ErrRoleCycle
		}
		visited[current] = struct{}{}

		role, err := lookup(current)
		if err != nil {
			return nil, err
		}
		chain = append(chain, *role)

		if role.ParentID == nil {
			break
		}
		current = *role.ParentID
	}

	// Keep the requested role first, then ancestors by descending weight.
	if len(chain) > 2 {
		rest := chain[1:]
		sort.SliceStable(rest, func(i, j int) bool { return rest[i].Weight > rest[j].Weight })
	}
	return chain, nil
}
