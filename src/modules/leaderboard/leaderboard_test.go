package leaderboard

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestCache(t *testing.T) *Cache {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewCache(client)
}

func TestCacheRoundTrip(t *testing.T) {
	cache := newTestCache(t)

	if got := cache.Get(); got != nil {
		t.Fatalf("empty cache returned %v", got)
	}

	entries := []Entry{
		{Username: "alice", XP: 120, Level: "Defender 🛡️"},
		{Username: "bob", XP: 80, Level: "Rookie 🌱"},
	}
	cache.Set(entries)

	got := cache.Get()
	if len(got) != 2 {
		t.Fatalf("got %d entries, want 2", len(got))
	}
	if got[0] != entries[0] || got[1] != entries[1] {
		t.Errorf("cached entries = %v, want %v", got, entries)
	}
}

func TestCacheInvalidate(t *testing.T) {
	cache := newTestCache(t)

	cache.Set([]Entry{{Username: "alice", XP: 120, Level: "Defender 🛡️"}})
	cache.Invalidate()

	if got := cache.Get(); got != nil {
		t.Errorf("invalidated cache returned %v", got)
	}
}

func TestCacheWithoutRedisIsNoop(t *testing.T) {
	cache := NewCache(nil)

	cache.Set([]Entry{{Username: "alice", XP: 1, Level: "Rookie 🌱"}})
	cache.Invalidate()
	if got := cache.Get(); got != nil {
		t.Errorf("nil-backed cache returned %v", got)
	}
}

// The empty-store fallback is a fixed five-entry list.
func TestFallbackEntries(t *testing.T) {
	if len(fallbackEntries) != 5 {
		t.Fatalf("fallback has %d entries, want 5", len(fallbackEntries))
	}
	if fallbackEntries[0].Username != "Cyber King 👑" || fallbackEntries[0].XP != 1250 {
		t.Errorf("unexpected first entry: %+v", fallbackEntries[0])
	}
	for i := 1; i < len(fallbackEntries); i++ {
		if fallbackEntries[i].XP > fallbackEntries[i-1].XP {
			t.Errorf("fallback entries not sorted by xp descending at %d", i)
		}
	}
}
