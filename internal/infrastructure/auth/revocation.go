package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// RevocationStore records sessions ended before their natural expiry
type RevocationStore interface {
	// Revoke marks one token id as revoked for ttl
	Revoke(ctx context.Context, jti string, ttl time.Duration) error

	// IsRevoked reports whether the token id was revoked
	IsRevoked(ctx context.Context, jti string) (bool, error)

	// RevokeAllForUser revokes every session of the user issued up to now
	RevokeAllForUser(ctx context.Context, userID string, ttl time.Duration) error

	// RevokedSince returns the user's revocation time, if any
	RevokedSince(ctx context.Context, userID string) (time.Time, bool, error)
}

const revocationKeyPrefix = "session:revoked:"

// RedisRevocationStore keeps revocations in Redis so every API instance sees them
type RedisRevocationStore struct {
	client redis.UniversalClient
}

// NewRedisClient opens and pings a Redis client
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		PoolSize:     10,
		MinIdleConns: 2,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

// NewRedisRevocationStore creates a store on an existing client
func NewRedisRevocationStore(client redis.UniversalClient) *RedisRevocationStore {
	return &RedisRevocationStore{client: client}
}

func jtiKey(jti string) string {
	return revocationKeyPrefix + "jti:" + jti
}

func userKey(userID string) string {
	return revocationKeyPrefix + "user:" + userID
}

// Revoke implements RevocationStore
func (s *RedisRevocationStore) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := s.client.Set(ctx, jtiKey(jti), "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

// IsRevoked implements RevocationStore
func (s *RedisRevocationStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := s.client.Exists(ctx, jtiKey(jti)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check token revocation: %w", err)
	}
	return n > 0, nil
}

// RevokeAllForUser implements RevocationStore. The timestamp is stored in
// milliseconds; ttl should cover the longest session the provider issues.
func (s *RedisRevocationStore) RevokeAllForUser(ctx context.Context, userID string, ttl time.Duration) error {
	if ttl <= 0 {
		return fmt.Errorf("user revocation needs a positive ttl")
	}
	now := time.Now().UnixMilli()
	if err := s.client.Set(ctx, userKey(userID), now, ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke user sessions: %w", err)
	}
	return nil
}

// RevokedSince implements RevocationStore
func (s *RedisRevocationStore) RevokedSince(ctx context.Context, userID string) (time.Time, bool, error) {
	raw, err := s.client.Get(ctx, userKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("failed to read user revocation: %w", err)
	}
	ms, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("failed to parse revocation timestamp: %w", err)
	}
	return time.UnixMilli(ms), true, nil
}

// Ping checks the Redis connection
func (s *RedisRevocationStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

var _ RevocationStore = (*RedisRevocationStore)(nil)

// MemoryRevocationStore is a single-process store for development and tests
type MemoryRevocationStore struct {
	mu     sync.Mutex
	tokens map[string]time.Time // jti -> expiry
	users  map[string]time.Time // userID -> revoked at
	now    func() time.Time
}

// NewMemoryRevocationStore creates an empty in-memory store
func NewMemoryRevocationStore() *MemoryRevocationStore {
	return &MemoryRevocationStore{
		tokens: make(map[string]time.Time),
		users:  make(map[string]time.Time),
		now:    time.Now,
	}
}

// Revoke implements RevocationStore
func (s *MemoryRevocationStore) Revoke(_ context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[jti] = s.now().Add(ttl)
	return nil
}

// IsRevoked implements RevocationStore
func (s *MemoryRevocationStore) IsRevoked(_ context.Context, jti string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	expiry, ok := s.tokens[jti]
	if !ok {
		return false, nil
	}
	if s.now().After(expiry) {
		delete(s.tokens, jti)
		return false, nil
	}
	return true, nil
}

// RevokeAllForUser implements RevocationStore. Entries do not expire.
func (s *MemoryRevocationStore) RevokeAllForUser(_ context.Context, userID string, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[userID] = s.now()
	return nil
}

// RevokedSince implements RevocationStore
func (s *MemoryRevocationStore) RevokedSince(_ context.Context, userID string) (time.Time, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	at, ok := s.users[userID]
	return at, ok, nil
}

var _ RevocationStore = (*MemoryRevocationStore)(nil)
