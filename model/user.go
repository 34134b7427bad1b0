package model

import "time"

const (
	UserTypeAdmin    = "admin"
	UserTypeCustomer = "customer"
)

// AdminUser is the system-of-record row for a platform operator account.
type AdminUser struct {
	ID           string     `json:"id" gorm:"type:uuid;primaryKey"`
	Name         string     `json:"name" gorm:"not null"`
	Email        string     `json:"email" gorm:"uniqueIndex;not null"`
	Phone        string     `json:"phone"`
	UserType     string     `json:"user_type" gorm:"index;not null"` // "admin", "customer"
	IsVerified   bool       `json:"is_verified"`
	EmailOptIn   bool       `json:"email_opt_in"`
	ReferralCode string     `json:"referral_code" gorm:"uniqueIndex"`
	RoleID       *string    `json:"role_id,omitempty" gorm:"type:uuid;index"`
	Role         *Role      `json:"role,omitempty" gorm:"foreignKey:RoleID"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	DeletedAt    *time.Time `json:"-" gorm:"index"`
}

func (AdminUser) TableName() string {
	return "admin_users"
}

// AuthUser is the denormalized projection of an admin user that the session
// store caches and the request pipeline binds. It is a snapshot: underlying
// changes become visible only after the cached entry expires or is deleted.
type AuthUser struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone"`
	UserType    string   `json:"user_type"`
	IsVerified  bool     `json:"is_verified"`
	EmailOptIn  bool     `json:"email_opt_in"`
	RoleName    string   `json:"role_name,omitempty"`
	Permissions []string `json:"permissions,omitempty"`
}

// HasPermission reports whether the effective permission set contains name.
// A user without a role has an empty set and is denied everything.
func (u *AuthUser) HasPermission(name string) bool {
	if u == nil {
		return false
	}
	for _, p := range u.Permissions {
		if p == name {
			return true
		}
	}
	return false
}

type UserSearchCriteria struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	UserType string `json:"user_type,omitempty"`
	Limit    int    `json:"limit,omitempty"`
	Offset   int    `json:"offset,omitempty"`
}
