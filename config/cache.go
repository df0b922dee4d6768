package config

import (
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
)

// ChartCache keeps rendered chart images keyed by request.
type ChartCache struct {
	c *cache.Cache
}

func NewChartCache(ttl time.Duration) *ChartCache {
	return &ChartCache{c: cache.New(ttl, 2*ttl)}
}

// Image returns the cached bytes for key.
func (cc *ChartCache) Image(key string) ([]byte, bool) {
	v, ok := cc.c.Get(key)
	if !ok {
		return nil, false
	}
	b, ok := v.([]byte)
	return b, ok
}

func (cc *ChartCache) Store(key string, image []byte) {
	cc.c.SetDefault(key, image)
}

func (cc *ChartCache) Len() int {
	return cc.c.ItemCount()
}

func (cc *ChartCache) Flush() {
	cc.c.Flush()
}

func GetCacheKey(prefix string, params ...interface{}) string {
	key := prefix
	for _, param := range params {
		key += ":" + fmt.Sprintf("%v", param)
	}
	return key
}
