// Package favorites keeps the process-wide set of favorite agent identifiers.
//
// Toggle is the only writer. Every toggle is applied in memory under the store
// lock, fanned out to subscribers, and then written to Storage in the
// background. Storage failures are logged and never undo the in-memory change.
package favorites

import (
	"encoding/json"
	"sync"

	"github.com/samber/lo"
	"github.com/valtips-cli/valtips/log"
	"golang.org/x/exp/slices"
)

// Key is the storage key the favorite set is persisted under.
const Key = "favorites"

// Store is safe for concurrent use.
type Store struct {
	storage Storage

	mu          sync.Mutex
	ids         map[string]struct{}
	version     uint64
	subscribers map[int]chan []string
	nextSub     int

	writeMu   sync.Mutex
	attempted uint64
	pending   sync.WaitGroup
}

// New loads the persisted set from storage. A missing or unreadable value
// yields an empty set.
func New(storage Storage) *Store {
	s := &Store{
		storage:     storage,
		ids:         make(map[string]struct{}),
		subscribers: make(map[int]chan []string),
	}
	s.load()
	return s
}

func (s *Store) load() {
	raw, err := s.storage.Get(Key)
	if err != nil {
		log.Warnf("favorites: read failed, starting empty: %v", err)
		return
	}

	value, ok := raw.Get()
	if !ok {
		log.Debug("favorites: nothing persisted yet")
		return
	}

	ids, err := decode(value)
	if err != nil {
		log.Warnf("favorites: persisted value is corrupt, starting empty: %v", err)
		return
	}

	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
	log.Infof("favorites: loaded %d ids", len(s.ids))
}

// IsFavorite reports whether id is in the set.
func (s *Store) IsFavorite(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.ids[id]
	return ok
}

// Toggle adds id if absent and removes it if present, returning the new membership.
// An empty id is ignored.
func (s *Store) Toggle(id string) bool {
	if id == "" {
		return false
	}

	s.mu.Lock()
	_, present := s.ids[id]
	if present {
		delete(s.ids, id)
	} else {
		s.ids[id] = struct{}{}
	}
	s.commit()
	s.mu.Unlock()

	log.Infof("favorites: %s -> %t", id, !present)
	return !present
}

// Clear removes every id.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.ids) == 0 {
		return
	}
	s.ids = make(map[string]struct{})
	s.commit()
}

// IDs returns a sorted snapshot of the set.
func (s *Store) IDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshot()
}

// Len returns the number of favorites.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.ids)
}

// Subscribe returns a channel that receives the full set now and after every change.
// The channel holds only the newest value: a slow reader skips intermediate sets.
// cancel closes the channel.
func (s *Store) Subscribe() (updates <-chan []string, cancel func()) {
	ch := make(chan []string, 1)

	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subscribers[id] = ch
	ch <- s.snapshot()
	s.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.subscribers, id)
			close(ch)
		})
	}
}

// Flush blocks until every scheduled write has finished.
func (s *Store) Flush() {
	s.pending.Wait()
}

// commit must be called with s.mu held after the set changed.
func (s *Store) commit() {
	s.version++
	snapshot := s.snapshot()

	for _, ch := range s.subscribers {
		publish(ch, slices.Clone(snapshot))
	}

	s.pending.Add(1)
	go s.persist(s.version, snapshot)
}

func (s *Store) persist(version uint64, ids []string) {
	defer s.pending.Done()

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	// A newer snapshot already went out.
	if version <= s.attempted {
		return
	}
	s.attempted = version

	if err := s.storage.Set(Key, encode(ids)); err != nil {
		log.Errorf("favorites: write of version %d failed: %v", version, err)
		return
	}
	log.Debugf("favorites: wrote version %d (%d ids)", version, len(ids))
}

func (s *Store) snapshot() []string {
	ids := lo.Keys(s.ids)
	slices.Sort(ids)
	return ids
}

// publish replaces whatever the subscriber has not read yet.
// Callers hold s.mu, so there is a single sender per channel.
func publish(ch chan []string, ids []string) {
	select {
	case ch <- ids:
		return
	default:
	}

	select {
	case <-ch:
	default:
	}
	ch <- ids
}

func encode(ids []string) string {
	return string(lo.Must(json.Marshal(ids)))
}

func decode(value string) ([]string, error) {
	var ids []string
	if err := json.Unmarshal([]byte(value), &ids); err != nil {
		return nil, err
	}
	return lo.Compact(lo.Uniq(ids)), nil
}

var (
	defaultStore *Store
	defaultOnce  sync.Once
)

// Default returns the process-wide store backed by the favorites file.
func Default() *Store {
	defaultOnce.Do(func() {
		defaultStore = New(NewFileStorage(favoritesPath()))
	})
	return defaultStore
}
