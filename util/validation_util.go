// util/validation_util.go

package util

import (
	"fmt"
	"strings"

	"github.com/swarnapay/api/model"
)

type ValidationUtil struct{}

func NewValidationUtil() *ValidationUtil {
	return &ValidationUtil{}
}

func (v *ValidationUtil) ValidateAdminUser(user model.AdminUser) error {
	if user.Name == "" {
		return fmt.Errorf("user name cannot be empty")
	}
	if user.Email == "" {
		return fmt.Errorf("user email cannot be empty")
	}
	if !strings.Contains(user.Email, "@") {
		return fmt.Errorf("user email is malformed")
	}
	if user.UserType != model.UserTypeAdmin && user.UserType != model.UserTypeCustomer {
		return fmt.Errorf("user type must be %q or %q", model.UserTypeAdmin, model.UserTypeCustomer)
	}
	// Add more validation rules as needed
	return nil
}

func (v *ValidationUtil) ValidateRole(role model.Role) error {
	if role.Name == "" {
		return fmt.Errorf("role name cannot be empty")
	}
	if role.Weight < 0 {
		return fmt.Errorf("role weight cannot be negative")
	}
	if role.ParentID != nil && *role.ParentID == role.ID {
		return fmt.Errorf("role cannot be its own parent")
	}
	// Add more validation rules as needed
	return nil
}

func (v *ValidationUtil) ValidatePermission(permission model.Permission) error {
	if permission.Name == "" {
		return fmt.Errorf("permission name cannot be empty")
	}
	// Add more validation rules as needed
	return nil
}
