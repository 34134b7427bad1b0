package token_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	swarna_errors "github.com/swarnapay/api/errors"
	"github.com/swarnapay/api/token"
)

func newTestManager(t *testing.T, ttl time.Duration) *token.Manager {
	t.Helper()
	m, err := token.NewManager(token.Config{
		Secret:    []byte("test-secret-test-secret-test-sec"),
		Issuer:    "swarnapay",
		AccessTTL: ttl,
	})
	require.NoError(t, err)
	return m
}

func TestNewManager_Validation(t *testing.T) {
	_, err := token.NewManager(token.Config{Secret: nil, AccessTTL: time.Hour})
	assert.Error(t, err)

	_, err = token.NewManager(token.Config{Secret: []byte("s"), AccessTTL: 0})
	assert.Error(t, err)
}

func TestManager_SignAndVerify(t *testing.T) {
	m := newTestManager(t, time.Hour)

	raw, err := m.Sign("u-1", "203.0.113.9")
	require.NoError(t, err)

	claims, err := m.Verify(raw)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "203.0.113.9", claims.ClientIP)
	assert.Equal(t, "swarnapay", claims.Issuer)
}

func TestManager_VerifyMissing(t *testing.T) {
	m := newTestManager(t, time.Hour)

	_, err := m.Verify("")
	assert.ErrorIs(t, err, swarna_errors.ErrMissingToken)
}

func TestManager_VerifyExpired(t *testing.T) {
	m := newTestManager(t, -time.Minute)

	raw, err := m.Sign("u-1", "")
	require.NoError(t, err)

	_, err = m.Verify(raw)
	assert.ErrorIs(t, err, swarna_errors.ErrInvalidToken)
}

func TestManager_VerifyTamperedSignature(t *testing.T) {
	m := newTestManager(t, time.Hour)
	other, err := token.NewManager(token.Config{
		Secret:    []byte("a-completely-different-secret!!!"),
		Issuer:    "swarnapay",
		AccessTTL: time.Hour,
	})
	require.NoError(t, err)

	raw, err := other.Sign("u-1", "")
	require.NoError(t, err)

	_, err = m.Verify(raw)
	assert.ErrorIs(t, err, swarna_errors.ErrInvalidToken)
}

func TestManager_VerifyWrongIssuer(t *testing.T) {
	m := newTestManager(t, time.Hour)
	other, err := token.NewManager(token.Config{
		Secret:    []byte("test-secret-test-secret-test-sec"),
		Issuer:    "someone-else",
		AccessTTL: time.Hour,
	})
	require.NoError(t, err)

	raw, err := other.Sign("u-1", "")
	require.NoError(t, err)

	_, err = m.Verify(raw)
	assert.ErrorIs(t, err, swarna_errors.ErrInvalidToken)
}

func TestManager_VerifyMalformed(t *testing.T) {
	m := newTestManager(t, time.Hour)

	_, err := m.Verify("not.a.jwt")
	assert.ErrorIs(t, err, swarna_errors.ErrInvalidToken)
}
