package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

func TestSetGet(t *testing.T) {
	c := New[string](time.Hour)

	c.Set("k", "value")
	got, ok := c.Get("k")

	assert.Equal(t, true, ok)
	assert.Equal(t, "value", got)
}

func TestGetMissing(t *testing.T) {
	c := New[string](time.Hour)

	got, ok := c.Get("nope")

	assert.Equal(t, false, ok)
	assert.Equal(t, "", got)
}

func TestGetEvictsExpired(t *testing.T) {
	c := New[string](time.Hour)
	base := time.Now()
	c.now = func() time.Time { return base }

	c.Set("k", "value")
	assert.Equal(t, 1, c.Stats().TotalEntries)

	c.now = func() time.Time { return base.Add(2 * time.Hour) }

	_, ok := c.Get("k")
	assert.Equal(t, false, ok)
	// the read itself must evict, not just report absence
	assert.Equal(t, 0, c.Stats().TotalEntries)
}

func TestSetTTLOverridesDefault(t *testing.T) {
	c := New[int](time.Hour)
	base := time.Now()
	c.now = func() time.Time { return base }

	c.SetTTL("short", 1, time.Minute)
	c.Set("long", 2)

	c.now = func() time.Time { return base.Add(30 * time.Minute) }

	_, okShort := c.Get("short")
	_, okLong := c.Get("long")
	assert.Equal(t, false, okShort)
	assert.Equal(t, true, okLong)
}

func TestSetOverwrites(t *testing.T) {
	c := New[string](time.Hour)

	c.Set("k", "old")
	c.Set("k", "new")

	got, _ := c.Get("k")
	assert.Equal(t, "new", got)
	assert.Equal(t, 1, c.Stats().TotalEntries)
}

func TestDelete(t *testing.T) {
	c := New[string](time.Hour)
	c.Set("k", "value")

	assert.Equal(t, true, c.Delete("k"))
	assert.Equal(t, false, c.Delete("k"))
}

func TestClear(t *testing.T) {
	c := New[string](time.Hour)
	c.Set("a", "1")
	c.Set("b", "2")

	assert.Equal(t, 2, c.Clear())
	assert.Equal(t, 0, c.Stats().TotalEntries)
	assert.Equal(t, 0, c.Clear())
}

func TestStatsDoesNotEvict(t *testing.T) {
	c := New[string](time.Hour)
	base := time.Now()
	c.now = func() time.Time { return base }

	c.Set("fresh", "1")
	c.SetTTL("stale", "2", time.Minute)

	c.now = func() time.Time { return base.Add(30 * time.Minute) }

	stats := c.Stats()
	assert.Equal(t, 2, stats.TotalEntries)
	assert.Equal(t, 1, stats.ValidEntries)
	assert.Equal(t, 1, stats.ExpiredEntries)

	// still 2 entries after the snapshot
	assert.Equal(t, 2, c.Stats().TotalEntries)
}

func TestCleanupExpired(t *testing.T) {
	c := New[string](time.Hour)
	base := time.Now()
	c.now = func() time.Time { return base }

	c.Set("fresh", "1")
	c.SetTTL("stale1", "2", time.Minute)
	c.SetTTL("stale2", "3", time.Minute)

	c.now = func() time.Time { return base.Add(30 * time.Minute) }

	assert.Equal(t, 2, c.CleanupExpired())
	assert.Equal(t, 1, c.Stats().TotalEntries)
	assert.Equal(t, 0, c.CleanupExpired())
}

func TestDefaultTTLInStats(t *testing.T) {
	c := New[string](24 * time.Hour)
	assert.Equal(t, 24.0, c.Stats().DefaultTTL)
}

func TestKeyNormalization(t *testing.T) {
	tests := []struct {
		name  string
		a     []string
		b     []string
		equal bool
	}{
		{"case insensitive", []string{"politician", "Modi"}, []string{"politician", "MODI"}, true},
		{"whitespace insensitive", []string{"politician", "Modi"}, []string{"politician", " Modi "}, true},
		{"case and whitespace", []string{"politician", "Modi"}, []string{"politician", " MODI "}, true},
		{"different values differ", []string{"politician", "Modi"}, []string{"politician", "Rahul"}, false},
		{"order sensitive", []string{"a", "b"}, []string{"b", "a"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Key(tt.a...) == Key(tt.b...)
			if got != tt.equal {
				t.Errorf("Key(%v) == Key(%v): got %v, want %v", tt.a, tt.b, got, tt.equal)
			}
		})
	}
}

func TestKeyStable(t *testing.T) {
	assert.Equal(t, Key("compare", "a", "b"), Key("compare", "a", "b"))
}

func TestConcurrentAccess(t *testing.T) {
	c := New[int](time.Hour)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			c.Set(fmt.Sprintf("k%d", n%5), n)
		}(i)
		go func(n int) {
			defer wg.Done()
			c.Get(fmt.Sprintf("k%d", n%5))
		}(i)
	}
	wg.Wait()

	stats := c.Stats()
	assert.Equal(t, 5, stats.TotalEntries)
	assert.Equal(t, 5, stats.ValidEntries)
}
