// controller/user_controller.go
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

type UserController struct {
	userService service.IUserService
}

func NewUserController(userService service.IUserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// RegisterRoutes registers the API routes
func (uc *UserController) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/me", uc.Me)

	users := r.Group("/users")
	{
		users.POST("", middleware.RequirePermission("create_users"), uc.CreateUser)
		users.PUT("/:id", middleware.RequirePermission("update_users"), uc.UpdateUser)
		users.GET("/:id", middleware.RequirePermission("view_users"), uc.GetUser)
		users.GET("", middleware.RequirePermission("view_users"), uc.ListUsers)
	}
}

// Me returns the resolved principal bound by the auth middleware, with the
// cache-freshness flag so clients can see first-sight vs repeat requests.
func (uc *UserController) Me(c *gin.Context) {
	user, ok := util.GetAuthUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user":  user,
		"fresh": util.IsFreshAuth(c),
	})
}

// CreateUser endpoint
func (uc *UserController) CreateUser(c *gin.Context) {
	var user model.AdminUser
	if err := c.ShouldBindJSON(&user); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid user data", swarna_errors.ErrInvalidUserData)
		return
	}
	creator, ok := util.GetAuthUser(c)
	if !ok {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", swarna_errors.ErrForbidden)
		return
	}

	createdUser, err := uc.userService.CreateUser(c, user, creator.ID)
	if err != nil {
		switch {
		case errors.Is(err, swarna_errors.ErrInvalidUserData):
			util.RespondWithError(c, http.StatusBadRequest, "Invalid user data", err)
		case errors.Is(err, swarna_errors.ErrUserConflict):
			util.RespondWithError(c, http.StatusConflict, "User already exists", err)
		case errors.Is(err, swarna_errors.ErrReferralExhausted):
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to assign referral code", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to create user", swarna_errors.ErrInternalServer)
		}
		return
	}

	c.JSON(http.StatusCreated, createdUser)
}

// UpdateUser endpoint
func (uc *UserController) UpdateUser(c *gin.Context) {
	userID := c.Param("id")
	var user model.AdminUser
	if err := c.ShouldBindJSON(&user); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid user data", err)
		return
	}
	user.ID = userID
	updater, ok := util.GetAuthUser(c)
	if !ok {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", swarna_errors.ErrForbidden)
		return
	}

	updatedUser, err := uc.userService.UpdateUser(c, user, updater.ID)
	if err != nil {
		switch {
		case errors.Is(err, swarna_errors.ErrUserNotFound):
			util.RespondWithError(c, http.StatusNotFound, "User not found", err)
		case errors.Is(err, swarna_errors.ErrInvalidUserData):
			util.RespondWithError(c, http.StatusBadRequest, "Invalid user data", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to update user", swarna_errors.ErrInternalServer)
		}
		return
	}

	c.JSON(http.StatusOK, updatedUser)
}

// GetUser endpoint
func (uc *UserController) GetUser(c *gin.Context) {
	userID := c.Param("id")

	user, err := uc.userService.GetUser(c, userID)
	if err != nil {
		if errors.Is(err, swarna_errors.ErrUserNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "User not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to get user", swarna_errors.ErrInternalServer)
		}
		return
	}

	c.JSON(http.StatusOK, user)
}

// ListUsers endpoint
func (uc *UserController) ListUsers(c *gin.Context) {
	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", err)
		return
	}

	users, err := uc.userService.ListUsers(c, limit, offset)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to list users", swarna_errors.ErrInternalServer)
		return
	}

	c.JSON(http.StatusOK, users)
}
