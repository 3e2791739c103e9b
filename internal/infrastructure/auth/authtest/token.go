// Package authtest mints session tokens the way the identity provider does,
// for tests of code that consumes them.
package authtest

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopadmin/backend/internal/infrastructure/config"
)

// Secret, issuer and audience used by Config
const (
	Secret   = "test-secret-0123456789abcdef0123456789"
	Issuer   = "test-identity"
	Audience = "test-admin-api"
)

// Config returns a session configuration matching tokens minted by Token
func Config() config.SessionConfig {
	return config.SessionConfig{
		Secret:            Secret,
		Issuer:            Issuer,
		Audience:          Audience,
		CookieName:        "session_token",
		SecureCookieName:  "__Secure-session_token",
		RevocationBackend: config.RevocationBackendMemory,
		MaxLifetime:       time.Hour,
	}
}

// Options tweak a minted token
type Options struct {
	Subject   string
	Email     string
	Role      string
	ID        string
	Issuer    string
	Audience  string
	Secret    string
	IssuedAt  time.Time
	ExpiresAt time.Time
	Method    jwt.SigningMethod
}

// Token signs a session token; zero option fields get valid defaults
func Token(t testing.TB, opts Options) string {
	t.Helper()

	now := time.Now()
	if opts.Subject == "" {
		opts.Subject = "user-" + uuid.NewString()
	}
	if opts.ID == "" {
		opts.ID = uuid.NewString()
	}
	if opts.Issuer == "" {
		opts.Issuer = Issuer
	}
	if opts.Audience == "" {
		opts.Audience = Audience
	}
	if opts.Secret == "" {
		opts.Secret = Secret
	}
	if opts.IssuedAt.IsZero() {
		opts.IssuedAt = now.Add(-time.Minute)
	}
	if opts.ExpiresAt.IsZero() {
		opts.ExpiresAt = now.Add(time.Hour)
	}
	if opts.Method == nil {
		opts.Method = jwt.SigningMethodHS256
	}

	claims := jwt.MapClaims{
		"sub":   opts.Subject,
		"jti":   opts.ID,
		"iss":   opts.Issuer,
		"aud":   opts.Audience,
		"iat":   opts.IssuedAt.Unix(),
		"exp":   opts.ExpiresAt.Unix(),
		"email": opts.Email,
		"role":  opts.Role,
	}
	signed, err := jwt.NewWithClaims(opts.Method, claims).SignedString([]byte(opts.Secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}
