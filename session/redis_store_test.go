package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	logger "github.com/swarnapay/api/logging"
	"github.com/swarnapay/api/model"
	"github.com/swarnapay/api/session"
)

func newTestStore(t *testing.T, ttl time.Duration) (*session.RedisStore, *miniredis.Miniredis) {
	t.Helper()
	logger.InitLogger(t.TempDir())

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return session.NewRedisStore(client, ttl), mr
}

func sampleAuthUser() *model.AuthUser {
	return &model.AuthUser{
		ID:          "u-1",
		Name:        "Asha Rao",
		Email:       "asha@swarnapay.test",
		UserType:    model.UserTypeAdmin,
		IsVerified:  true,
		RoleName:    "admin",
		Permissions: []string{"view_users", "update_users"},
	}
}

func TestRedisStore_PutGet(t *testing.T) {
	store, _ := newTestStore(t, 10*time.Second)
	ctx := context.Background()
	user := sampleAuthUser()

	require.NoError(t, store.Put(ctx, user.ID, user))

	got, err := store.Get(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, user, got)
}

func TestRedisStore_MissOnAbsent(t *testing.T) {
	store, _ := newTestStore(t, 10*time.Second)

	got, err := store.Get(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisStore_EntryExpiresAfterTTL(t *testing.T) {
	store, mr := newTestStore(t, 1*time.Second)
	ctx := context.Background()
	user := sampleAuthUser()

	require.NoError(t, store.Put(ctx, user.ID, user))

	mr.FastForward(2 * time.Second)

	got, err := store.Get(ctx, user.ID)
	require.NoError(t, err)
	assert.Nil(t, got, "entry should have expired")
}

func TestRedisStore_PutOverwrites(t *testing.T) {
	store, _ := newTestStore(t, 10*time.Second)
	ctx := context.Background()

	first := sampleAuthUser()
	require.NoError(t, store.Put(ctx, first.ID, first))

	second := sampleAuthUser()
	second.RoleName = "superadmin"
	second.Permissions = []string{"view_users", "update_users", "delete_users"}
	require.NoError(t, store.Put(ctx, second.ID, second))

	got, err := store.Get(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, second, got)
}

func TestRedisStore_Delete(t *testing.T) {
	store, _ := newTestStore(t, 10*time.Second)
	ctx := context.Background()
	user := sampleAuthUser()

	require.NoError(t, store.Put(ctx, user.ID, user))
	require.NoError(t, store.Delete(ctx, user.ID))

	got, err := store.Get(ctx, user.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}
