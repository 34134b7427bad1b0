// controller/role_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	swarna_errors "github.com/swarnapay/api/errors"
	"github.com/swarnapay/api/middleware"
	"github.com/swarnapay/api/model"
	"github.com/swarnapay/api/service"
	"github.com/swarnapay/api/util"
	helper_util "github.com/swarnapay/api/util/helper"
)

type RoleController struct {
	roleService service.IRoleService
}

func NewRoleController(roleService service.IRoleService) *RoleController {
	return &RoleController{
		roleService: roleService,
	}
}

// RegisterRoutes registers the API routes
func (rc *RoleController) RegisterRoutes(r *gin.RouterGroup) {
	roles := r.Group("/roles")
	{
		roles.POST("", middleware.RequirePermission("create_roles"), rc.CreateRole)
		roles.PUT("/:id", middleware.RequirePermission("update_roles"), rc.UpdateRole)
		roles.GET("/:id", middleware.RequirePermission("view_roles"), rc.GetRole)
		roles.GET("", middleware.RequirePermission("view_roles"), rc.ListRoles)
	}
}

// CreateRole endpoint
func (rc *RoleController) CreateRole(c *gin.Context) {
	var role model.Role
	if err := c.ShouldBindJSON(&role); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid role data", swarna_errors.ErrInvalidRoleData)
		return
	}
	creator, ok := util.GetAuthUser(c)
	if !ok {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", swarna_errors.ErrForbidden)
		return
	}

	createdRole, err := rc.roleService.CreateRole(c, role, creator.ID)
	if err != nil {
		switch {
		case errors.Is(err, swarna_errors.ErrInvalidRoleData):
			util.RespondWithError(c, http.StatusBadRequest, "Invalid role data", err)
		case errors.Is(err, swarna_errors.ErrRoleCycle):
			util.RespondWithError(c, http.StatusBadRequest, "Role hierarchy would cycle", err)
		case errors.Is(err, swarna_errors.ErrRoleConflict):
			util.RespondWithError(c, http.StatusConflict, "Role already exists", err)
		case errors.Is(err, swarna_errors.ErrRoleNotFound):
			util.RespondWithError(c, http.StatusBadRequest, "Parent role not found", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to create role", swarna_errors.ErrInternalServer)
		}
		return
	}

	c.JSON(http.StatusCreated, createdRole)
}

// UpdateRole endpoint
func (rc *RoleController) UpdateRole(c *gin.Context) {
	roleID := c.Param("id")
	var role model.Role
	if err := c.ShouldBindJSON(&role); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid role data", err)
		return
	}
	role.ID = roleID
	updater, ok := util.GetAuthUser(c)
	if !ok {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", swarna_errors.ErrForbidden)
		return
	}

	updatedRole, err := rc.roleService.UpdateRole(c, role, updater.ID)
	if err != nil {
		switch {
		case errors.Is(err, swarna_errors.ErrRoleNotFound):
			util.RespondWithError(c, http.StatusNotFound, "Role not found", err)
		case errors.Is(err, swarna_errors.ErrInvalidRoleData):
			util.RespondWithError(c, http.StatusBadRequest, "Invalid role data", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to update role", swarna_errors.ErrInternalServer)
		}
		return
	}

	c.JSON(http.StatusOK, updatedRole)
}

// GetRole endpoint
func (rc *RoleController) GetRole(c *gin.Context) {
	roleID := c.Param("id")

	role, err := rc.roleService.GetRole(c, roleID)
	if err != nil {
		if errors.Is(err, swarna_errors.ErrRoleNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Role not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to get role", swarna_errors.ErrInternalServer)
		}
		return
	}

	c.JSON(http.StatusOK, role)
}

// ListRoles endpoint
func (rc *RoleController) ListRoles(c *gin.Context) {
	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", err)
		return
	}

	roles, err := rc.roleService.ListRoles(c, limit, offset)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to list roles", swarna_errors.ErrInternalServer)
		return
	}

	c.JSON(http.StatusOK, roles)
}
