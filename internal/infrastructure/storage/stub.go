package storage

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"sync/atomic"
	"time"
)

// StubURLIssuer returns unsigned URLs under a fixed base for development and
// tests. Every call yields a distinct URL.
type StubURLIssuer struct {
	baseURL    string
	expiration time.Duration
	seq        atomic.Uint64
}

// NewStubURLIssuer creates a stub issuer
func NewStubURLIssuer(baseURL string, expiration time.Duration) *StubURLIssuer {
	if baseURL == "" {
		baseURL = "https://storage.example.com"
	}
	if expiration <= 0 {
		expiration = 5 * time.Minute
	}
	return &StubURLIssuer{
		baseURL:    strings.TrimRight(baseURL, "/"),
		expiration: expiration,
	}
}

// SignedURL implements the same contract as S3URLIssuer.SignedURL
func (s *StubURLIssuer) SignedURL(_ context.Context, key string, ttl time.Duration) (string, time.Time, error) {
	if key == "" {
		return "", time.Time{}, ErrEmptyKey
	}
	if ttl <= 0 {
		ttl = s.expiration
	}

	expiresAt := time.Now().Add(ttl)
	q := url.Values{}
	q.Set("expires", expiresAt.UTC().Format(time.RFC3339Nano))
	q.Set("n", strconv.FormatUint(s.seq.Add(1), 10))

	return s.baseURL + "/" + (&url.URL{Path: key}).EscapedPath() + "?" + q.Encode(), expiresAt, nil
}
