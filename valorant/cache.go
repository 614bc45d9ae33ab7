package valorant

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/metafates/gache"
	"github.com/samber/mo"
	"github.com/valtips-cli/valtips/filesystem"
)

type cacheData[K comparable, T any] struct {
	Entries map[K]T `json:"entries"`
}

// cacher keeps a keyed map of responses in one gache file.
// Once the file's lifetime passes every entry is gone at once.
type cacher[K comparable, T any] struct {
	internal *gache.Cache[*cacheData[K, T]]
	mu       sync.RWMutex
}

func newCacher[K comparable, T any](dir, name string, lifetime time.Duration) *cacher[K, T] {
	return &cacher[K, T]{
		internal: gache.New[*cacheData[K, T]](&gache.Options{
			Path:       filepath.Join(dir, name),
			Lifetime:   lifetime,
			FileSystem: &filesystem.GacheFs{},
		}),
	}
}

func (c *cacher[K, T]) Get(key K) mo.Option[T] {
	c.mu.RLock()
	defer c.mu.RUnlock()

	data, expired, err := c.internal.Get()
	if err != nil || expired || data == nil {
		return mo.None[T]()
	}

	if value, ok := data.Entries[key]; ok {
		return mo.Some(value)
	}
	return mo.None[T]()
}

func (c *cacher[K, T]) Set(key K, value T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, expired, err := c.internal.Get()
	if err != nil || expired || data == nil {
		data = &cacheData[K, T]{Entries: make(map[K]T)}
	}
	data.Entries[key] = value

	return c.internal.Set(data)
}

// catalogCache groups the caches a Client reads through.
type catalogCache struct {
	agents *cacher[string, []*Agent]
	agent  *cacher[string, *Agent]
	maps   *cacher[string, []*Map]
}

func newCatalogCache(dir string, lifetime time.Duration) *catalogCache {
	return &catalogCache{
		agents: newCacher[string, []*Agent](dir, "agents.json", lifetime),
		agent:  newCacher[string, *Agent](dir, "agent_by_id.json", lifetime),
		maps:   newCacher[string, []*Map](dir, "maps.json", lifetime),
	}
}
