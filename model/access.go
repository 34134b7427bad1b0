// model/access.go
package model

import "time"

// Role is a named permission bundle. Roles may inherit from a parent role;
// the chain is ordered by Weight and must stay acyclic.
type Role struct {
	ID          string       `json:"id" gorm:"type:uuid;primaryKey"`
	Name        string       `json:"name" gorm:"uniqueIndex;not null"`
	Description string       `json:"description"`
	Weight      int          `json:"weight" gorm:"index;not null"`
	ParentID    *string      `json:"parent_id,omitempty" gorm:"type:uuid;index"`
	Permissions []Permission `json:"permissions" gorm:"many2many:role_permissions"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

func (Role) TableName() string {
	return "roles"
}

type Permission struct {
	ID          string `json:"id" gorm:"type:uuid;primaryKey"`
	Name        string `json:"name" gorm:"uniqueIndex;not null"` // e.g. "view_merchants", "update_plans"
	Description string `json:"description"`
}

func (Permission) TableName() string {
	return "permissions"
}

// EffectivePermissions returns the union of permission names across a role
// chain (the role itself plus its ancestors), deduplicated, in first-seen
// order. The chain is expected to already be cycle-checked by the loader.
func EffectivePermissions(chain []Role) []string {
	seen := make(map[string]struct{})
	var names []string
	for _, role := range chain {
		for _, p := range role.Permissions {
			if _, ok := seen[p.Name]; ok {
				continue
			}
			seen[p.Name] = struct{}{}
			names = append(names, p.Name)
		}
	}
	return names
}
