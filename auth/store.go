package auth

import (
	"context"
	"errors"
	"log"
	"os"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"viralagent/config"
)

// VerifierStore keeps PKCE code verifiers keyed by the opaque OAuth state
// until the callback claims them. Keying by state lets concurrent
// authorization flows coexist; entries expire so abandoned flows do not
// accumulate.
type VerifierStore interface {
	// Put stores the verifier under state for the store's TTL.
	Put(ctx context.Context, state, verifier string) error
	// Take removes and returns the verifier for state. ok is false when the
	// state is unknown or expired.
	Take(ctx context.Context, state string) (verifier string, ok bool, err error)
}

// NewStoreFromEnv returns a redis-backed store when REDIS_ADDR is set and an
// in-memory store otherwise.
func NewStoreFromEnv() VerifierStore {
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		log.Printf("using redis verifier store at %s", addr)
		return NewRedisStore(redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: os.Getenv("REDIS_PASS"),
		}), config.VerifierTTL)
	}
	return NewMemoryStore(config.VerifierTTL)
}

type memoryEntry struct {
	verifier  string
	expiresAt time.Time
}

// MemoryStore is a process-local VerifierStore with per-entry expiry.
type MemoryStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemoryStore builds an in-memory store with the given TTL.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:     ttl,
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (m *MemoryStore) Put(_ context.Context, state, verifier string) error {
	if state == "" {
		return errors.New("empty state")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sweepLocked()
	m.entries[state] = memoryEntry{verifier: verifier, expiresAt: m.now().Add(m.ttl)}
	return nil
}

func (m *MemoryStore) Take(_ context.Context, state string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, ok := m.entries[state]
	if !ok {
		return "", false, nil
	}
	delete(m.entries, state)
	if m.now().After(entry.expiresAt) {
		return "", false, nil
	}
	return entry.verifier, true, nil
}

// sweepLocked drops expired entries; called opportunistically on Put.
func (m *MemoryStore) sweepLocked() {
	now := m.now()
	for state, entry := range m.entries {
		if now.After(entry.expiresAt) {
			delete(m.entries, state)
		}
	}
}

const redisVerifierPrefix = "oauth:verifier:"

// RedisStore keeps verifiers in redis so the callback can land on any
// process behind a load balancer.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore builds a redis-backed store with the given TTL.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (r *RedisStore) Put(ctx context.Context, state, verifier string) error {
	if state == "" {
		return errors.New("empty state")
	}
	return r.client.Set(ctx, redisVerifierPrefix+state, verifier, r.ttl).Err()
}

func (r *RedisStore) Take(ctx context.Context, state string) (string, bool, error) {
	verifier, err := r.client.GetDel(ctx, redisVerifierPrefix+state).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return verifier, true, nil
}
