package leaderboard

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	cacheKey = "leaderboard:top"
	cacheTTL = 30 * time.Second
)

// Cache keeps the rendered top list in Redis for a short window. It degrades
// to a no-op when no Redis client is available, so every caller can use it
// unconditionally.
type Cache struct {
	client *redis.Client
	ctx    context.Context
}

func NewCache(client *redis.Client) *Cache {
	return &Cache{
		client: client,
		ctx:    context.Background(),
	}
}

// Get returns the cached entries, or nil on a miss or cache failure.
func (r *Cache) Get() []Entry {
	if r.client == nil {
		return nil
	}
	data, err := r.client.Get(r.ctx, cacheKey).Result()
	if err != nil {
		return nil
	}
	var entries []Entry
	if err := json.Unmarshal([]byte(data), &entries); err != nil {
		return nil
	}
	return entries
}

// Set stores the entries with a short TTL. Failures are ignored; the cache is
// best effort.
func (r *Cache) Set(entries []Entry) {
	if r.client == nil {
		return
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return
	}
	r.client.Set(r.ctx, cacheKey, data, cacheTTL)
}

// Invalidate drops the cached list after a progression write.
func (r *Cache) Invalidate() {
	if r.client == nil {
		return
	}
	r.client.Del(r.ctx, cacheKey)
}
