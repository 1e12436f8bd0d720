package handlers

import (
	"strings"
	"sync"
	"time"
)

// Analytics responses are cached briefly so dashboard refreshes don't
// re-aggregate the full order history on every request.

type analyticsCacheEntry struct {
	value     any
	expiresAt time.Time
}

const (
	analyticsCacheMaxEntries = 500
	analyticsCacheTTL        = 5 * time.Minute
)

var (
	analyticsCacheMu sync.Mutex
	analyticsCache   = map[string]analyticsCacheEntry{}
)

func analyticsCacheKey(endpoint string, parts ...string) string {
	segments := make([]string, 0, 1+len(parts))
	segments = append(segments, endpoint)
	segments = append(segments, parts...)
	return strings.Join(segments, "|")
}

func getAnalyticsCache(key string) (any, bool) {
	analyticsCacheMu.Lock()
	defer analyticsCacheMu.Unlock()

	entry, ok := analyticsCache[key]
	if !ok {
		return nil, false
	}
	if time.Now().After(entry.expiresAt) {
		delete(analyticsCache, key)
		return nil, false
	}
	return entry.value, true
}

func setAnalyticsCache(key string, value any) {
	analyticsCacheMu.Lock()
	defer analyticsCacheMu.Unlock()

	analyticsCache[key] = analyticsCacheEntry{value: value, expiresAt: time.Now().Add(analyticsCacheTTL)}
	if len(analyticsCache) > analyticsCacheMaxEntries {
		analyticsCache = map[string]analyticsCacheEntry{}
	}
}
