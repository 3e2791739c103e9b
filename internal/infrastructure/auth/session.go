// Package auth verifies sessions issued by the external identity provider
// and decides what each session may read. Tokens are never issued here.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shopadmin/backend/internal/infrastructure/config"
)

// Session errors
var (
	ErrMissingToken     = errors.New("missing session token")
	ErrInvalidToken     = errors.New("invalid token")
	ErrExpiredToken     = errors.New("token has expired")
	ErrTokenNotYetValid = errors.New("token is not yet valid")
	ErrMissingSubject   = errors.New("missing subject in claims")
	ErrUnknownRole      = errors.New("unknown role in claims")
	ErrTokenRevoked     = errors.New("token has been revoked")
)

// Claims are the identity provider's session claims
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Session is an authenticated caller
type Session struct {
	UserID    string
	Email     string
	Role      Role
	TokenID   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Can reports whether the session holds at least one of caps
func (s *Session) Can(caps ...Capability) bool {
	return s != nil && s.Role.HasAny(caps...)
}

// RemainingTTL returns the time until the session expires, or zero
func (s *Session) RemainingTTL() time.Duration {
	if s.ExpiresAt.IsZero() {
		return 0
	}
	if d := time.Until(s.ExpiresAt); d > 0 {
		return d
	}
	return 0
}

// SessionVerifier checks HS256 session tokens
type SessionVerifier struct {
	secret []byte
	parser *jwt.Parser
}

// NewSessionVerifier creates a verifier bound to the configured issuer and audience
func NewSessionVerifier(cfg config.SessionConfig) (*SessionVerifier, error) {
	if cfg.Secret == "" {
		return nil, fmt.Errorf("session secret is required")
	}
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithLeeway(cfg.Leeway),
	}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}
	if cfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(cfg.Audience))
	}
	return &SessionVerifier{
		secret: []byte(cfg.Secret),
		parser: jwt.NewParser(opts...),
	}, nil
}

// Verify validates the token and maps its claims to a Session
func (v *SessionVerifier) Verify(tokenString string) (*Session, error) {
	if tokenString == "" {
		return nil, ErrMissingToken
	}

	claims := &Claims{}
	token, err := v.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrExpiredToken
		case errors.Is(err, jwt.ErrTokenNotValidYet), errors.Is(err, jwt.ErrTokenUsedBeforeIssued):
			return nil, ErrTokenNotYetValid
		}
		return nil, ErrInvalidToken
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.Subject == "" {
		return nil, ErrMissingSubject
	}
	role, ok := ParseRole(claims.Role)
	if !ok {
		return nil, ErrUnknownRole
	}

	session := &Session{
		UserID:  claims.Subject,
		Email:   claims.Email,
		Role:    role,
		TokenID: claims.ID,
	}
	if claims.IssuedAt != nil {
		session.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		session.ExpiresAt = claims.ExpiresAt.Time
	}
	return session, nil
}

// Authenticator verifies a token and checks it against the revocation store
type Authenticator struct {
	verifier *SessionVerifier
	store    RevocationStore
}

// NewAuthenticator creates an Authenticator
func NewAuthenticator(verifier *SessionVerifier, store RevocationStore) *Authenticator {
	return &Authenticator{verifier: verifier, store: store}
}

// Authenticate returns the session for a token that is valid and not revoked
func (a *Authenticator) Authenticate(ctx context.Context, token string) (*Session, error) {
	session, err := a.verifier.Verify(token)
	if err != nil {
		return nil, err
	}
	if a.store == nil {
		return session, nil
	}

	if session.TokenID != "" {
		revoked, err := a.store.IsRevoked(ctx, session.TokenID)
		if err != nil {
			return nil, fmt.Errorf("check token revocation: %w", err)
		}
		if revoked {
			return nil, ErrTokenRevoked
		}
	}

	since, ok, err := a.store.RevokedSince(ctx, session.UserID)
	if err != nil {
		return nil, fmt.Errorf("check user revocation: %w", err)
	}
	if ok && issuedBefore(session.IssuedAt, since) {
		return nil, ErrTokenRevoked
	}
	return session, nil
}

// issuedBefore reports whether a token issued at iat predates a user-wide
// revocation at since. iat normally has whole-second precision while since
// is kept in milliseconds, so a whole-second iat is compared against the
// revocation's second: a token minted in that same second stays valid.
func issuedBefore(iat, since time.Time) bool {
	if iat.Nanosecond() != 0 {
		return !iat.After(since)
	}
	return iat.Before(since.Truncate(time.Second))
}

// SignOut revokes the session's token, or every session of the user when all is set
func (a *Authenticator) SignOut(ctx context.Context, session *Session, all bool, maxSessionTTL time.Duration) error {
	if a.store == nil {
		return errors.New("no revocation store configured")
	}
	if all {
		// the caller's own token may share the revocation's second
		if session.TokenID != "" {
			if err := a.store.Revoke(ctx, session.TokenID, session.RemainingTTL()); err != nil {
				return err
			}
		}
		return a.store.RevokeAllForUser(ctx, session.UserID, maxSessionTTL)
	}
	if session.TokenID == "" {
		// Without a jti only a user-wide revocation can end the session
		return a.store.RevokeAllForUser(ctx, session.UserID, maxSessionTTL)
	}
	return a.store.Revoke(ctx, session.TokenID, session.RemainingTTL())
}
