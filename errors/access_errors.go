package errors

import "errors"

var (
	ErrRoleNotFound    = errors.New("role not found")
	ErrRoleConflict    = errors.New("role conflict")
	ErrInvalidRoleData = errors.New("invalid role data")
	ErrRoleCycle       = errors.New("role hierarchy contains a cycle")

	ErrPermissionNotFound    = errors.New("permission not found")
	ErrInvalidPermissionData = errors.New("invalid permission data")
)
