package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tmock "github.com/stretchr/testify/mock"

	swarna_errors "github.com/swarnapay/api/errors"
	logger "github.com/swarnapay/api/logging"
	"github.com/swarnapay/api/middleware"
	"github.com/swarnapay/api/model"
	"github.com/swarnapay/api/service"
	"github.com/swarnapay/api/session"
	"github.com/swarnapay/api/test/mock"
	"github.com/swarnapay/api/token"
	"github.com/swarnapay/api/util"
)

type authFixture struct {
	router  *gin.Engine
	manager *token.Manager
	loader  *mock.MockAuthUserLoader
	mr      *miniredis.Miniredis
}

func newFixture(t *testing.T, cfgMutators ...func(*middleware.AuthConfig)) *authFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger.InitLogger(t.TempDir())
	viper.Set("auth.enforcePermissions", true)

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	loader := new(mock.MockAuthUserLoader)
	store := session.NewRedisStore(client, 10*time.Second)
	authService := service.NewAuthService(loader, store, nil, false)

	manager, err := token.NewManager(token.Config{
		Secret:    []byte("test-secret-test-secret-test-sec"),
		Issuer:    "swarnapay",
		AccessTTL: time.Hour,
	})
	require.NoError(t, err)

	cfg := middleware.AuthConfig{
		TokenManager:     manager,
		AuthService:      authService,
		RequiredUserType: model.UserTypeAdmin,
	}
	for _, mutate := range cfgMutators {
		mutate(&cfg)
	}

	router := gin.New()
	router.Use(middleware.AdminAuth(cfg))
	router.GET("/me", func(c *gin.Context) {
		user, _ := util.GetAuthUser(c)
		c.JSON(http.StatusOK, gin.H{"id": user.ID, "fresh": util.IsFreshAuth(c)})
	})
	router.GET("/view", middleware.RequirePermission("view_x"), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	router.GET("/delete", middleware.RequirePermission("delete_x"), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	return &authFixture{router: router, manager: manager, loader: loader, mr: mr}
}

func (f *authFixture) get(t *testing.T, path, bearer string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", path, nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	f.router.ServeHTTP(w, req)
	return w
}

func adminWithPerms(perms ...string) *model.AuthUser {
	return &model.AuthUser{
		ID:          "u-1",
		Name:        "Asha Rao",
		UserType:    model.UserTypeAdmin,
		RoleName:    "admin",
		Permissions: perms,
	}
}

func TestAdminAuth_MissingHeader(t *testing.T) {
	f := newFixture(t)

	w := f.get(t, "/me", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message": "Authorization is required"}`, w.Body.String())
}

func TestAdminAuth_InvalidToken(t *testing.T) {
	f := newFixture(t)

	w := f.get(t, "/me", "not-a-real-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message": "Invalid token"}`, w.Body.String())
}

func TestAdminAuth_UnknownUser(t *testing.T) {
	f := newFixture(t)
	f.loader.On("GetAuthUser", tmock.Anything, "ghost").Return(nil, swarna_errors.ErrUserNotFound)

	raw, err := f.manager.Sign("ghost", "")
	require.NoError(t, err)

	w := f.get(t, "/me", raw)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message": "user not found"}`, w.Body.String())
}

func TestAdminAuth_CustomerRejectedWithEmptyBody(t *testing.T) {
	f := newFixture(t)
	customer := &model.AuthUser{ID: "c-1", UserType: model.UserTypeCustomer}
	f.loader.On("GetAuthUser", tmock.Anything, "c-1").Return(customer, nil)

	raw, err := f.manager.Sign("c-1", "")
	require.NoError(t, err)

	w := f.get(t, "/me", raw)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestAdminAuth_PermissionGate(t *testing.T) {
	f := newFixture(t)
	f.loader.On("GetAuthUser", tmock.Anything, "u-1").Return(adminWithPerms("view_x"), nil)

	raw, err := f.manager.Sign("u-1", "")
	require.NoError(t, err)

	w := f.get(t, "/view", raw)
	assert.Equal(t, http.StatusOK, w.Code)

	w = f.get(t, "/delete", raw)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminAuth_NoRoleDeniesEverything(t *testing.T) {
	f := newFixture(t)
	noRole := &model.AuthUser{ID: "u-2", UserType: model.UserTypeAdmin}
	f.loader.On("GetAuthUser", tmock.Anything, "u-2").Return(noRole, nil)

	raw, err := f.manager.Sign("u-2", "")
	require.NoError(t, err)

	w := f.get(t, "/view", raw)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminAuth_EnforcementDisabledBypassesGate(t *testing.T) {
	f := newFixture(t)
	viper.Set("auth.enforcePermissions", false)
	t.Cleanup(func() { viper.Set("auth.enforcePermissions", true) })

	f.loader.On("GetAuthUser", tmock.Anything, "u-1").Return(adminWithPerms("view_x"), nil)

	raw, err := f.manager.Sign("u-1", "")
	require.NoError(t, err)

	w := f.get(t, "/delete", raw)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminAuth_FreshFlagTracksCacheState(t *testing.T) {
	f := newFixture(t)
	f.loader.On("GetAuthUser", tmock.Anything, "u-1").Return(adminWithPerms("view_x"), nil).Once()

	raw, err := f.manager.Sign("u-1", "")
	require.NoError(t, err)

	w := f.get(t, "/me", raw)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"fresh":true`)

	w = f.get(t, "/me", raw)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"fresh":false`)

	f.loader.AssertNumberOfCalls(t, "GetAuthUser", 1)
}

func TestAdminAuth_IPBindingEnforced(t *testing.T) {
	f := newFixture(t, func(cfg *middleware.AuthConfig) {
		cfg.EnforceIPBinding = true
	})
	f.loader.On("GetAuthUser", tmock.Anything, "u-1").Return(adminWithPerms("view_x"), nil)

	// Token bound to an address the test request does not come from.
	raw, err := f.manager.Sign("u-1", "203.0.113.9")
	require.NoError(t, err)

	w := f.get(t, "/me", raw)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message": "Invalid token"}`, w.Body.String())
}

func TestAdminAuth_AuditEventRecorded(t *testing.T) {
	auditSvc := new(mock.MockAuditService)
	auditSvc.On("LogAuth", tmock.Anything, tmock.Anything).Return(nil)

	f := newFixture(t, func(cfg *middleware.AuthConfig) {
		cfg.AuditService = auditSvc
	})
	f.loader.On("GetAuthUser", tmock.Anything, "u-1").Return(adminWithPerms("view_x"), nil)

	raw, err := f.manager.Sign("u-1", "")
	require.NoError(t, err)

	w := f.get(t, "/me", raw)
	assert.Equal(t, http.StatusOK, w.Code)
	auditSvc.AssertCalled(t, "LogAuth", tmock.Anything, tmock.Anything)
}
