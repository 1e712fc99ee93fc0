package mocks

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"rushvote/internal/repository/models"
)

type InMemoryCache struct{}

func (c *InMemoryCache) Get(ctx context.Context, key string, dest any) error {
	return redis.Nil
}

func (c *InMemoryCache) Set(ctx context.Context, key string, value any, exp time.Duration) error {
	return nil
}

func (c *InMemoryCache) Close() error {
	return nil
}

// TrackingCache stores entries in memory and counts accesses. Writes can
// arrive off the request goroutine, so everything is behind a mutex.
type TrackingCache struct {
	mu       sync.Mutex
	getCalls int
	setCalls int
	data     map[string]CacheEntry
}

type CacheEntry struct {
	Value  any
	Expiry time.Time
}

func NewTrackingCache() *TrackingCache {
	return &TrackingCache{
		data: make(map[string]CacheEntry),
	}
}

func (c *TrackingCache) Get(ctx context.Context, key string, dest any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.getCalls++
	entry, exists := c.data[key]
	if !exists || time.Now().After(entry.Expiry) {
		return redis.Nil
	}

	raw, err := json.Marshal(entry.Value)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dest)
}

func (c *TrackingCache) Set(ctx context.Context, key string, value any, exp time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.setCalls++
	c.data[key] = CacheEntry{
		Value:  value,
		Expiry: time.Now().Add(exp),
	}
	return nil
}

func (c *TrackingCache) Close() error {
	return nil
}

func (c *TrackingCache) GetCalls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.getCalls
}

func (c *TrackingCache) SetCalls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.setCalls
}

// StaticRoster serves a fixed candidate list in place of the external
// roster service.
type StaticRoster struct {
	Candidates []models.Candidate
	Calls      int
}

func (r *StaticRoster) ListCandidates(ctx context.Context) ([]models.Candidate, error) {
	r.Calls++
	return r.Candidates, nil
}
