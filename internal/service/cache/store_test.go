package cache

import (
	"sync"
	"testing"
	"time"
)

func TestStoreSetGet(t *testing.T) {
	c := NewStore()
	c.Set("us:cpi", 42, time.Minute)
	v, ok := c.Get("us:cpi")
	if !ok {
		t.Fatalf("expected hit")
	}
	if v.(int) != 42 {
		t.Fatalf("unexpected value %v", v)
	}
}

func TestStoreExpiry(t *testing.T) {
	c := NewStore()
	c.Set("k", "v", time.Second)
	time.Sleep(1100 * time.Millisecond)
	if _, ok := c.Get("k"); ok {
		t.Fatalf("expired entry must behave as a miss")
	}
	st := c.Stats()
	if st.Misses != 1 {
		t.Fatalf("expected 1 miss, got %d", st.Misses)
	}
	if st.Keys != 0 {
		t.Fatalf("expired entry must be dropped on read, keys=%d", st.Keys)
	}
}

func TestStoreZeroTTLNeverExpires(t *testing.T) {
	c := NewStore()
	c.Set("k", "v", 0)
	if _, ok := c.Get("k"); !ok {
		t.Fatalf("zero ttl entry should not expire")
	}
}

func TestStoreStats(t *testing.T) {
	c := NewStore()
	c.Set("a", 1, time.Minute)
	c.Get("a")
	c.Get("a")
	c.Get("missing")
	st := c.Stats()
	if st.Hits != 2 || st.Misses != 1 || st.Keys != 1 {
		t.Fatalf("unexpected stats %+v", st)
	}
}

func TestStoreDelete(t *testing.T) {
	c := NewStore()
	c.Set("a", 1, time.Minute)
	c.Delete("a")
	if _, ok := c.Get("a"); ok {
		t.Fatalf("deleted key should miss")
	}
}

func TestStoreConcurrentAccess(t *testing.T) {
	c := NewStore()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				c.Set(Key("e", "cpi", n), j, time.Minute)
				c.Get(Key("e", "cpi", n))
				c.Get(Key("e", "cpi", (n+1)%16))
			}
		}(i)
	}
	wg.Wait()
	if st := c.Stats(); st.Keys != 16 {
		t.Fatalf("expected 16 keys, got %d", st.Keys)
	}
}

func TestStoreJanitorSweeps(t *testing.T) {
	c := NewStore()
	c.StartJanitor(50 * time.Millisecond)
	defer c.Close()
	c.Set("short", 1, 10*time.Millisecond)
	time.Sleep(150 * time.Millisecond)
	c.mu.RLock()
	_, present := c.m["short"]
	c.mu.RUnlock()
	if present {
		t.Fatalf("janitor should have removed the expired entry")
	}
}

func TestKeyComposition(t *testing.T) {
	if got := Key("us", "cpi"); got != "us:cpi" {
		t.Fatalf("unexpected key %q", got)
	}
	if got := Key("us", "index", "1mo", 10); got != "us:index:1mo:10" {
		t.Fatalf("unexpected key %q", got)
	}
}
