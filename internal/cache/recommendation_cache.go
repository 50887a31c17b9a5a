package cache

import (
	"errors"
	"fmt"

	"github.com/coocood/freecache"
)

const megabyte = 1024 * 1024

// ErrEntryTooLarge is returned by Set for entries freecache will not hold
// (bigger than 1/1024 of the cache size).
var ErrEntryTooLarge = errors.New("cache entry too large")

var _ Cache = (*RecommendationCache)(nil)

// RecommendationCache keeps serialized recommendations keyed by exercise id.
// Entries never expire on their own, the owner clears the cache when the
// history it was derived from changes.
type RecommendationCache struct {
	mainCache *freecache.Cache
}

// NewRecommendationCache creates a cache of sizeMB megabytes.
// freecache enforces a 512KB minimum.
func NewRecommendationCache(sizeMB int) (*RecommendationCache, error) {
	if sizeMB <= 0 {
		return nil, fmt.Errorf("invalid recommendation cache size: %d MB", sizeMB)
	}
	return &RecommendationCache{
		mainCache: freecache.NewCache(sizeMB * megabyte),
	}, nil
}

func (rc *RecommendationCache) Get(key string) ([]byte, bool) {
	value, err := rc.mainCache.Get([]byte(key))
	if err != nil {
		return nil, false
	}
	return value, true
}

func (rc *RecommendationCache) Set(key string, value []byte) error {
	// expireSeconds 0 -> no expiry
	if err := rc.mainCache.Set([]byte(key), value, 0); err != nil {
		if errors.Is(err, freecache.ErrLargeEntry) {
			return fmt.Errorf("set %s (%d bytes): %w", key, len(value), ErrEntryTooLarge)
		}
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

func (rc *RecommendationCache) Clear() {
	rc.mainCache.Clear()
}

func (rc *RecommendationCache) EntryCount() int64 {
	return rc.mainCache.EntryCount()
}
