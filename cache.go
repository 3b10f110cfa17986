package main

import (
	"fmt"
	"sync"
	"time"

	"github.com/jtanningbed/nfl-play-animate/animation"
)

// Built animations are immutable, so a cached one can be served to any
// number of requests.
type animationCacheEntry struct {
	Animation *animation.Animation
	Time      time.Time
	seq       uint64
}

type animationCache struct {
	mu   sync.Mutex
	ttl  time.Duration
	max  int
	seq  uint64
	data map[string]animationCacheEntry
}

func newAnimationCache(ttl time.Duration, max int) *animationCache {
	return &animationCache{ttl: ttl, max: max, data: make(map[string]animationCacheEntry)}
}

func animationCacheKey(gameID, playID int64, cfg animation.Config) string {
	return fmt.Sprintf("%d-%d-%+v", gameID, playID, cfg)
}

func (c *animationCache) get(key string) (*animation.Animation, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ent, ok := c.data[key]
	if !ok {
		return nil, false
	}
	if time.Since(ent.Time) >= c.ttl {
		delete(c.data, key)
		return nil, false
	}
	return ent.Animation, true
}

// put drops expired entries, then the oldest ones, to stay within max.
func (c *animationCache) put(key string, anim *animation.Animation) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for k, ent := range c.data {
		if now.Sub(ent.Time) >= c.ttl {
			delete(c.data, k)
		}
	}
	delete(c.data, key)
	for c.max > 0 && len(c.data) >= c.max {
		oldest, oldestSeq := "", c.seq
		for k, ent := range c.data {
			if ent.seq <= oldestSeq {
				oldest, oldestSeq = k, ent.seq
			}
		}
		delete(c.data, oldest)
	}
	c.seq++
	c.data[key] = animationCacheEntry{Animation: anim, Time: now, seq: c.seq}
}
