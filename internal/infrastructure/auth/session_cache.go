package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// SessionCache remembers tokens whose session row was recently validated, so
// authenticated requests skip the session lookup. Entries are evicted at logout.
type SessionCache interface {
	// Put caches the owner of token for ttl
	Put(ctx context.Context, token string, userID uuid.UUID, ttl time.Duration) error
	// Get returns the cached owner of token; ok is false on a miss
	Get(ctx context.Context, token string) (userID uuid.UUID, ok bool, err error)
	Evict(ctx context.Context, token string) error
}

// RedisSessionCache implements SessionCache using Redis
type RedisSessionCache struct {
	client    *redis.Client
	keyPrefix string
}

// NewRedisClient opens a Redis client and checks the connection
func NewRedisClient(addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		PoolSize:     10,
		MinIdleConns: 3,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

// NewRedisSessionCache creates a session cache with an existing Redis client
func NewRedisSessionCache(client *redis.Client) *RedisSessionCache {
	return &RedisSessionCache{
		client:    client,
		keyPrefix: "session:",
	}
}

// key hashes the token so raw tokens never reach Redis
func (c *RedisSessionCache) key(token string) string {
	sum := sha256.Sum256([]byte(token))
	return c.keyPrefix + hex.EncodeToString(sum[:])
}

// Put caches the owner of token
func (c *RedisSessionCache) Put(ctx context.Context, token string, userID uuid.UUID, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := c.client.Set(ctx, c.key(token), userID.String(), ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache session: %w", err)
	}
	return nil
}

// Get returns the cached owner of token
func (c *RedisSessionCache) Get(ctx context.Context, token string) (uuid.UUID, bool, error) {
	val, err := c.client.Get(ctx, c.key(token)).Result()
	if errors.Is(err, redis.Nil) {
		return uuid.Nil, false, nil
	}
	if err != nil {
		return uuid.Nil, false, fmt.Errorf("failed to read session cache: %w", err)
	}
	id, err := uuid.Parse(val)
	if err != nil {
		return uuid.Nil, false, nil
	}
	return id, true, nil
}

// Evict removes token from the cache
func (c *RedisSessionCache) Evict(ctx context.Context, token string) error {
	if err := c.client.Del(ctx, c.key(token)).Err(); err != nil {
		return fmt.Errorf("failed to evict session: %w", err)
	}
	return nil
}

// Ensure RedisSessionCache implements SessionCache
var _ SessionCache = (*RedisSessionCache)(nil)

type cachedSession struct {
	userID    uuid.UUID
	expiresAt time.Time
}

// InMemorySessionCache is a process-local SessionCache for desktop builds and tests
type InMemorySessionCache struct {
	mu       sync.Mutex
	sessions map[string]cachedSession
}

// NewInMemorySessionCache creates a new in-memory session cache
func NewInMemorySessionCache() *InMemorySessionCache {
	return &InMemorySessionCache{sessions: make(map[string]cachedSession)}
}

// Put caches the owner of token
func (c *InMemorySessionCache) Put(_ context.Context, token string, userID uuid.UUID, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sessions[token] = cachedSession{userID: userID, expiresAt: time.Now().Add(ttl)}
	return nil
}

// Get returns the cached owner of token, dropping expired entries
func (c *InMemorySessionCache) Get(_ context.Context, token string) (uuid.UUID, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	s, ok := c.sessions[token]
	if !ok {
		return uuid.Nil, false, nil
	}
	if time.Now().After(s.expiresAt) {
		delete(c.sessions, token)
		return uuid.Nil, false, nil
	}
	return s.userID, true, nil
}

// Evict removes token from the cache
func (c *InMemorySessionCache) Evict(_ context.Context, token string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.sessions, token)
	return nil
}

// Ensure InMemorySessionCache implements SessionCache
var _ SessionCache = (*InMemorySessionCache)(nil)
