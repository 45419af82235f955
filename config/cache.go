package config

import (
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
)

var (
	// Cache instances for different data types. The underlying files are
	// immutable at runtime, so long expirations are safe.
	GeoDataCache *cache.Cache
	SchemeCache  *cache.Cache
)

const (
	// Cache durations
	geoDataCacheDuration = 24 * time.Hour
	schemeCacheDuration  = 24 * time.Hour

	// Cleanup intervals
	geoDataCleanupInterval = 48 * time.Hour
	schemeCleanupInterval  = 48 * time.Hour
)

func InitCache() {
	GeoDataCache = cache.New(geoDataCacheDuration, geoDataCleanupInterval)
	SchemeCache = cache.New(schemeCacheDuration, schemeCleanupInterval)
}

func ClearAllCaches() {
	GeoDataCache.Flush()
	SchemeCache.Flush()
}

func GetCacheKey(prefix string, params ...interface{}) string {
	key := prefix
	for _, param := range params {
		key += ":" + fmt.Sprintf("%v", param)
	}
	return key
}
