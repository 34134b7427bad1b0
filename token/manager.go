// Package token signs and verifies the bearer credentials issued to admin
// users at login. Tokens are HMAC-SHA256 JWTs carrying the user ID and the
// client network address observed at sign-in.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	swarna_errors "github.com/swarnapay/api/errors"
)

type Config struct {
	Secret    []byte
	Issuer    string
	AccessTTL time.Duration
}

// Claims is the decoded credential. ClientIP is the address the token was
// issued to; whether it is enforced at verification time is the caller's
// decision (auth.enforceIPBinding).
type Claims struct {
	UserID   string `json:"uid"`
	ClientIP string `json:"ip,omitempty"`
	jwt.RegisteredClaims
}

type Manager struct {
	config Config
}

func NewManager(cfg Config) (*Manager, error) {
	if len(cfg.Secret) == 0 {
		return nil, errors.New("token: signing secret is required")
	}
	if cfg.AccessTTL <= 0 {
		return nil, errors.New("token: invalid access TTL")
	}
	return &Manager{config: cfg}, nil
}

// Sign issues a credential for the given user, bound to the client address
// the login request arrived from.
func (m *Manager) Sign(userID, clientIP string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   userID,
		ClientIP: clientIP,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.config.Issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.config.AccessTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.config.Secret)
}

// Verify decodes and validates a raw credential string. Any failure —
// malformed token, bad signature, expiry, wrong issuer — collapses to
// ErrInvalidToken; callers surface it as a generic 401.
func (m *Manager) Verify(raw string) (*Claims, error) {
	if raw == "" {
		return nil, swarna_errors.ErrMissingToken
	}

	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if m.config.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(m.config.Issuer))
	}

	parsed, err := jwt.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return m.config.Secret, nil
	}, opts...)
	if err != nil {
		return nil, swarna_errors.ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || claims.UserID == "" {
		return nil, swarna_errors.ErrInvalidToken
	}
	return claims, nil
}
