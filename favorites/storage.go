package favorites

import (
	"sync"

	"github.com/metafates/gache"
	"github.com/samber/mo"
	"github.com/valtips-cli/valtips/filesystem"
	"github.com/valtips-cli/valtips/where"
)

// Storage is the key-value store the favorite set is persisted to.
type Storage interface {
	Get(key string) (mo.Option[string], error)
	Set(key, value string) error
}

// FileStorage keeps string values in a single JSON file through gache.
type FileStorage struct {
	mu    sync.Mutex
	cache *gache.Cache[map[string]string]
}

// NewFileStorage returns storage backed by the file at path.
func NewFileStorage(path string) *FileStorage {
	return &FileStorage{
		cache: gache.New[map[string]string](&gache.Options{
			Path:       path,
			FileSystem: &filesystem.GacheFs{},
		}),
	}
}

func (f *FileStorage) Get(key string) (mo.Option[string], error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, expired, err := f.cache.Get()
	if err != nil {
		return mo.None[string](), err
	}
	if expired || data == nil {
		return mo.None[string](), nil
	}

	if value, ok := data[key]; ok {
		return mo.Some(value), nil
	}
	return mo.None[string](), nil
}

func (f *FileStorage) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, expired, err := f.cache.Get()
	if err != nil || expired || data == nil {
		data = make(map[string]string)
	}
	data[key] = value

	return f.cache.Set(data)
}

// MemoryStorage is an in-memory Storage.
type MemoryStorage struct {
	mu     sync.Mutex
	values map[string]string
	writes int
	fail   error
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: make(map[string]string)}
}

func (m *MemoryStorage) Get(key string) (mo.Option[string], error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.fail != nil {
		return mo.None[string](), m.fail
	}
	if value, ok := m.values[key]; ok {
		return mo.Some(value), nil
	}
	return mo.None[string](), nil
}

func (m *MemoryStorage) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.fail != nil {
		return m.fail
	}
	m.values[key] = value
	m.writes++
	return nil
}

// SetFail makes every following call return err until it is reset with nil.
func (m *MemoryStorage) SetFail(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.fail = err
}

// Raw returns the stored value without going through the failure switch.
func (m *MemoryStorage) Raw(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	value, ok := m.values[key]
	return value, ok
}

// Writes counts successful Set calls.
func (m *MemoryStorage) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.writes
}

func favoritesPath() string {
	return where.Favorites()
}
