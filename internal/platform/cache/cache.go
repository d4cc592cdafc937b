package cache

import (
	"context"
	"sync"
	"time"
)

// SettingsCache caches small, rarely changing setting values (currency
// precision, company default currency, POS profile cash mode) so hot paths
// do not hit the database for every request.
type SettingsCache interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
}

// NoopSettingsCache never caches anything; every lookup misses.
type NoopSettingsCache struct{}

func (NoopSettingsCache) Get(_ context.Context, _ string) (string, bool, error) {
	return "", false, nil
}

func (NoopSettingsCache) Set(_ context.Context, _ string, _ string, _ time.Duration) error {
	return nil
}

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

// MemorySettingsCache is an in-process cache used when no redis address is
// configured, and in tests.
type MemorySettingsCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

func NewMemorySettingsCache() *MemorySettingsCache {
	return &MemorySettingsCache{entries: make(map[string]memoryEntry)}
}

func (c *MemorySettingsCache) Get(_ context.Context, key string) (string, bool, error) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return "", false, nil
	}
	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return "", false, nil
	}
	return entry.value, true, nil
}

func (c *MemorySettingsCache) Set(_ context.Context, key string, value string, ttl time.Duration) error {
	entry := memoryEntry{value: value}
	if ttl > 0 {
		entry.expiresAt = time.Now().Add(ttl)
	}
	c.mu.Lock()
	c.entries[key] = entry
	c.mu.Unlock()
	return nil
}
