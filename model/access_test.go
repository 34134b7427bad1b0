package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/swarnapay/api/model"
)

func role(name string, perms ...string) model.Role {
	r := model.Role{ID: name, Name: name}
	for _, p := range perms {
		r.Permissions = append(r.Permissions, model.Permission{ID: p, Name: p})
	}
	return r
}

func TestEffectivePermissions_UnionAcrossChain(t *testing.T) {
	chain := []model.Role{
		role("support", "view_users"),
		role("admin", "view_users", "update_users"),
		role("superadmin", "delete_users"),
	}

	perms := model.EffectivePermissions(chain)
	assert.ElementsMatch(t, []string{"view_users", "update_users", "delete_users"}, perms)
}

func TestEffectivePermissions_DeduplicatesFirstSeen(t *testing.T) {
	chain := []model.Role{
		role("a", "view_x", "edit_x"),
		role("b", "edit_x", "view_x"),
	}

	perms := model.EffectivePermissions(chain)
	assert.Equal(t, []string{"view_x", "edit_x"}, perms)
}

func TestEffectivePermissions_EmptyChain(t *testing.T) {
	assert.Empty(t, model.EffectivePermissions(nil))
}

func TestAuthUser_HasPermission(t *testing.T) {
	user := &model.AuthUser{
		RoleName:    "admin",
		Permissions: []string{"view_x"},
	}

	assert.True(t, user.HasPermission("view_x"))
	assert.False(t, user.HasPermission("delete_x"))
}

func TestAuthUser_HasPermission_FailClosed(t *testing.T) {
	var nilUser *model.AuthUser
	assert.False(t, nilUser.HasPermission("view_x"))

	noRole := &model.AuthUser{}
	assert.False(t, noRole.HasPermission("view_x"))
}
