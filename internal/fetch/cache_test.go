package fetch

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"
)

func TestCache(t *testing.T) {
	cache := NewCache(time.Hour)

	t.Run("new cache is empty", func(t *testing.T) {
		if cache.Size() != 0 {
			t.Errorf("new cache size = %d, want 0", cache.Size())
		}
	})

	t.Run("set and get", func(t *testing.T) {
		cache.Set("https://uni.edu/academics", "<html>regs</html>")

		got, ok := cache.Get("https://uni.edu/academics")
		if !ok {
			t.Fatal("Get returned nothing, expected cached page")
		}
		if got != "<html>regs</html>" {
			t.Errorf("Get() = %q", got)
		}
	})

	t.Run("fragment is ignored", func(t *testing.T) {
		if _, ok := cache.Get("https://uni.edu/academics#grading"); !ok {
			t.Error("Get with fragment missed the cached page")
		}
	})

	t.Run("get non-existent", func(t *testing.T) {
		if _, ok := cache.Get("https://uni.edu/unknown"); ok {
			t.Error("Get(unknown) found an entry")
		}
	})
}

func TestCache_Expiry(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	cache := NewCache(time.Minute)
	cache.now = func() time.Time { return now }

	cache.Set("https://a.edu/", "a")
	cache.Set("https://b.edu/", "b")

	now = now.Add(30 * time.Second)
	cache.Set("https://c.edu/", "c")

	now = now.Add(45 * time.Second)
	if _, ok := cache.Get("https://a.edu/"); ok {
		t.Error("expired entry returned")
	}
	if cache.Size() != 2 {
		t.Errorf("Size() = %d after expired Get, want 2", cache.Size())
	}

	if removed := cache.CleanExpired(); removed != 1 {
		t.Errorf("CleanExpired() = %d, want 1", removed)
	}
	if _, ok := cache.Get("https://c.edu/"); !ok {
		t.Error("fresh entry was dropped")
	}
}

func TestNewCache_DefaultTTL(t *testing.T) {
	if c := NewCache(0); c.ttl != DefaultCacheTTL {
		t.Errorf("ttl = %v, want %v", c.ttl, DefaultCacheTTL)
	}
}

func TestCache_Concurrent(t *testing.T) {
	cache := NewCache(time.Hour)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			url := fmt.Sprintf("https://uni.edu/%d", i%5)
			cache.Set(url, "body")
			cache.Get(url)
		}(i)
	}
	wg.Wait()

	if cache.Size() != 5 {
		t.Errorf("Size() = %d, want 5", cache.Size())
	}
}

func TestCache_Sweep(t *testing.T) {
	var mu sync.Mutex
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	cache := NewCache(time.Minute)
	cache.now = func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return now
	}

	cache.Set("https://a.edu/", "a")
	mu.Lock()
	now = now.Add(2 * time.Minute)
	mu.Unlock()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		cache.Sweep(ctx, 5*time.Millisecond)
		close(done)
	}()

	deadline := time.After(2 * time.Second)
	for cache.Size() != 0 {
		select {
		case <-deadline:
			t.Fatal("Sweep did not drop the expired page")
		case <-time.After(5 * time.Millisecond):
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Sweep did not return after cancel")
	}
}
