package cache

import (
	"fmt"
	"sync"
	"time"
)

type entry struct {
	v   any
	exp time.Time
}

func (e entry) expired(now time.Time) bool {
	return !e.exp.IsZero() && now.After(e.exp)
}

// Stats are counters exposed by the store for introspection.
type Stats struct {
	Hits   uint64 `json:"hits"`
	Misses uint64 `json:"misses"`
	Keys   int    `json:"keys"`
}

// Store is the process-lifetime TTL cache shared by all orchestrator
// invocations. Expired entries behave as misses on read (lazy expiry); an
// optional janitor sweeps them to bound memory.
type Store struct {
	mu     sync.RWMutex
	m      map[string]entry
	hits   uint64
	misses uint64

	janitor *time.Ticker
	done    chan struct{}
}

func NewStore() *Store {
	return &Store{m: make(map[string]entry)}
}

// StartJanitor begins a background sweep of expired entries every interval.
// Safe to call once; Close stops it.
func (c *Store) StartJanitor(interval time.Duration) {
	if interval <= 0 || c.janitor != nil {
		return
	}
	c.janitor = time.NewTicker(interval)
	c.done = make(chan struct{})
	go c.sweep()
}

func (c *Store) Get(key string) (any, bool) {
	c.mu.RLock()
	e, ok := c.m[key]
	c.mu.RUnlock()
	if !ok {
		c.miss()
		return nil, false
	}
	if e.expired(time.Now()) {
		c.mu.Lock()
		delete(c.m, key)
		c.mu.Unlock()
		c.miss()
		return nil, false
	}
	c.mu.Lock()
	c.hits++
	c.mu.Unlock()
	return e.v, true
}

func (c *Store) Set(key string, v any, ttl time.Duration) {
	var exp time.Time
	if ttl > 0 {
		exp = time.Now().Add(ttl)
	}
	c.mu.Lock()
	c.m[key] = entry{v: v, exp: exp}
	c.mu.Unlock()
}

func (c *Store) Delete(key string) {
	c.mu.Lock()
	delete(c.m, key)
	c.mu.Unlock()
}

func (c *Store) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Stats{Hits: c.hits, Misses: c.misses, Keys: len(c.m)}
}

// Close stops the janitor if one was started.
func (c *Store) Close() {
	if c.janitor != nil {
		c.janitor.Stop()
		close(c.done)
	}
}

func (c *Store) miss() {
	c.mu.Lock()
	c.misses++
	c.mu.Unlock()
}

func (c *Store) sweep() {
	for {
		select {
		case <-c.done:
			return
		case <-c.janitor.C:
			now := time.Now()
			c.mu.Lock()
			for k, e := range c.m {
				if e.expired(now) {
					delete(c.m, k)
				}
			}
			c.mu.Unlock()
		}
	}
}

// Implement BytesCache
func (c *Store) GetBytes(key string) ([]byte, bool, error) {
	if v, ok := c.Get(key); ok {
		if b, ok2 := v.([]byte); ok2 {
			return b, true, nil
		}
		return nil, false, nil
	}
	return nil, false, nil
}

func (c *Store) SetBytes(key string, value []byte, ttl time.Duration) error {
	c.Set(key, value, ttl)
	return nil
}

// Key composes a deterministic cache key from entity, indicator and any
// extra qualifiers.
func Key(entity, indicator string, extra ...any) string {
	key := entity + ":" + indicator
	for _, q := range extra {
		key = fmt.Sprintf("%s:%v", key, q)
	}
	return key
}
