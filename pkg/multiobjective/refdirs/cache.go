package refdirs

import (
	"fmt"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Cache memoizes direction sets per (objectives, directions) pair. A set is
// generated once with the cache's options and then treated as immutable;
// callers always receive their own copy.
type Cache struct {
	mu    sync.Mutex
	store *gocache.Cache
	opts  []Option
}

// NewCache creates a cache whose entries expire after ttl. A ttl of
// gocache.NoExpiration keeps them forever.
func NewCache(ttl time.Duration, opts ...Option) *Cache {
	return &Cache{
		store: gocache.New(ttl, cleanupInterval(ttl)),
		opts:  opts,
	}
}

func cleanupInterval(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return 0
	}
	return 2 * ttl
}

// FromN behaves like the package level FromN but only generates a set the
// first time a pair is requested.
func (c *Cache) FromN(nObj, nRefs int) ([][]float64, error) {
	return c.get(fmt.Sprintf("%d/%d", nObj, nRefs), nObj, nRefs, c.opts)
}

// FromNVariant is FromN for callers whose options differ from the cache's.
// variant must identify opts: sets are shared between calls with the same
// variant, so opts must produce the same set every time, e.g. through a
// seeded random source. opts are only applied when the set is generated.
func (c *Cache) FromNVariant(variant string, nObj, nRefs int, opts ...Option) ([][]float64, error) {
	return c.get(fmt.Sprintf("%d/%d/%s", nObj, nRefs, variant), nObj, nRefs, opts)
}

func (c *Cache) get(key string, nObj, nRefs int, opts []Option) ([][]float64, error) {
	if v, ok := c.store.Get(key); ok {
		return copyDirs(v.([][]float64)), nil
	}

	// the random source in opts is not safe for concurrent use
	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.store.Get(key); ok {
		return copyDirs(v.([][]float64)), nil
	}

	dirs, err := FromN(nObj, nRefs, opts...)
	if err != nil {
		return nil, err
	}
	c.store.SetDefault(key, dirs)
	return copyDirs(dirs), nil
}

// Len returns the number of cached sets.
func (c *Cache) Len() int {
	return c.store.ItemCount()
}

func copyDirs(dirs [][]float64) [][]float64 {
	out := make([][]float64, len(dirs))
	for i, d := range dirs {
		out[i] = make([]float64, len(d))
		copy(out[i], d)
	}
	return out
}
