// Package respcache caches LLM responses keyed by a fingerprint of the
// request.
//
// Caching is deliberately exact-match: the fingerprint hashes the normalized
// prompt text plus model, temperature and max-token budget, and nothing else.
// Identical questions are fast, paraphrases are not, and the cache is blind
// to conversation or order state. Normalization is TrimSpace, lower-casing
// and collapsing whitespace runs to a single space, so irrelevant spacing
// differences still hit.
package respcache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/simplelru"
)

// Config bounds the cache.
type Config struct {
	MaxSize int
	TTL     time.Duration
}

const (
	DefaultMaxSize = 1000
	DefaultTTL     = time.Hour
)

// Value is the cached response payload.
type Value struct {
	Response   string
	TokensUsed int
	Model      string
}

type entry struct {
	value     Value
	createdAt time.Time
}

// Cache is a bounded LRU response cache with TTL expiry. Recency bookkeeping
// and strict least-recently-used eviction come from hashicorp's simplelru;
// the wrapper adds the mutex and created-at TTL. Safe for concurrent use.
type Cache struct {
	mu  sync.Mutex
	lru *simplelru.LRU[string, *entry]
	ttl time.Duration

	// now is swapped in tests for deterministic TTL behavior.
	now func() time.Time
}

// NewCache creates a response cache. Zero config fields fall back to
// defaults.
func NewCache(cfg Config) *Cache {
	if cfg.MaxSize <= 0 {
		cfg.MaxSize = DefaultMaxSize
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	// NewLRU only fails on size <= 0, which is guarded above.
	lru, _ := simplelru.NewLRU[string, *entry](cfg.MaxSize, nil)
	return &Cache{
		lru: lru,
		ttl: cfg.TTL,
		now: time.Now,
	}
}

// Fingerprint derives the deterministic cache key for a request.
func Fingerprint(prompt, model string, temperature float64, maxTokens int) string {
	normalized := strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(prompt))), " ")
	keyData := fmt.Sprintf("%s:%s:%d:%g", normalized, model, maxTokens, temperature)
	sum := sha256.Sum256([]byte(keyData))
	return hex.EncodeToString(sum[:])
}

// Get returns the cached value for fingerprint and refreshes its recency.
// An entry past TTL is evicted and reported as a miss.
func (c *Cache) Get(fingerprint string) (Value, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.lru.Get(fingerprint)
	if !ok {
		return Value{}, false
	}
	if c.now().Sub(e.createdAt) > c.ttl {
		c.lru.Remove(fingerprint)
		return Value{}, false
	}
	return e.value, true
}

// Put inserts or overwrites the value for fingerprint. At capacity the
// least-recently-used entry is evicted first.
func (c *Cache) Put(fingerprint string, v Value) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lru.Add(fingerprint, &entry{value: v, createdAt: c.now()})
}

// Invalidate removes one entry; it reports whether the entry was present.
func (c *Cache) Invalidate(fingerprint string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Remove(fingerprint)
}

// Purge removes everything.
func (c *Cache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lru.Purge()
}

// Len reports the number of entries, expired or not.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}

// RemoveExpired sweeps entries past TTL and returns how many were removed.
// Called periodically by the reaper.
func (c *Cache) RemoveExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	removed := 0
	for _, k := range c.lru.Keys() {
		e, ok := c.lru.Peek(k)
		if ok && now.Sub(e.createdAt) > c.ttl {
			c.lru.Remove(k)
			removed++
		}
	}
	return removed
}
