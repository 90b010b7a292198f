package cache

import (
	"github.com/moznion/go-optional"
)

type Cache interface {
	Get(key string) (any, bool)
	Set(key string, value any)
	Reset()
}

// OrganizeState records how a bar sequence was normalized.
type OrganizeState struct {
	Precision int  `json:"precision"`
	Reversed  bool `json:"reversed"`
	Adjusted  bool `json:"adjusted"`
}

type CacheV1 struct {
	// Organized is set once the owning bar sequence has been normalized.
	Organized optional.Option[OrganizeState]
	series    map[string]any
}

func NewCacheV1() Cache {
	return &CacheV1{
		Organized: optional.None[OrganizeState](),
		series:    make(map[string]any),
	}
}

// Reset implements cache.Cache.
func (c *CacheV1) Reset() {
	c.Organized = optional.None[OrganizeState]()
	c.series = make(map[string]any)
}

// Set stores a derived series under key.
func (c *CacheV1) Set(key string, value any) {
	c.series[key] = value
}

// Get returns the derived series stored under key.
func (c *CacheV1) Get(key string) (any, bool) {
	value, ok := c.series[key]

	return value, ok
}

// Len returns the number of memoized series.
func (c *CacheV1) Len() int {
	return len(c.series)
}
