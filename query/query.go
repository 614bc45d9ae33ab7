// Package query remembers the agent and map names the user searched for and
// suggests them back for shell completion.
package query

import (
	"strings"
	"sync"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/valtips-cli/valtips/filesystem"
	"github.com/valtips-cli/valtips/where"
	"golang.org/x/exp/slices"
)

// Kind separates agent names from map names.
type Kind string

const (
	Agent Kind = "agent"
	Map   Kind = "map"
)

type record struct {
	Rank  int    `json:"rank"`
	Query string `json:"query"`
}

type records map[Kind]map[string]*record

type History struct {
	cache *gache.Cache[records]
	mu    sync.Mutex
}

// New opens the history file at path.
func New(path string) *History {
	return &History{
		cache: gache.New[records](&gache.Options{
			Path:       path,
			FileSystem: &filesystem.GacheFs{},
		}),
	}
}

var (
	defaultHistory *History
	defaultOnce    sync.Once
)

// Default is the history stored under the cache directory.
func Default() *History {
	defaultOnce.Do(func() {
		defaultHistory = New(where.Queries())
	})
	return defaultHistory
}

// Remember adds weight to the rank of q.
func (h *History) Remember(kind Kind, q string, weight int) error {
	q = sanitize(q)
	if q == "" {
		return nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	cached, expired, err := h.cache.Get()
	if err != nil || expired || cached == nil {
		cached = make(records)
	}
	if cached[kind] == nil {
		cached[kind] = make(map[string]*record)
	}

	if r, ok := cached[kind][q]; ok {
		r.Rank += weight
	} else {
		cached[kind][q] = &record{Rank: weight, Query: q}
	}

	return h.cache.Set(cached)
}

// Suggest returns remembered queries fuzzy-matching q, highest rank first.
// Ties are ordered alphabetically.
func (h *History) Suggest(kind Kind, q string) []string {
	q = sanitize(q)

	h.mu.Lock()
	cached, expired, err := h.cache.Get()
	h.mu.Unlock()
	if err != nil || expired || cached == nil {
		return []string{}
	}

	matches := lo.Filter(lo.Values(cached[kind]), func(r *record, _ int) bool {
		return fuzzy.Match(q, r.Query)
	})

	slices.SortFunc(matches, func(a, b *record) int {
		if a.Rank != b.Rank {
			return b.Rank - a.Rank
		}
		return strings.Compare(a.Query, b.Query)
	})

	return lo.Map(matches, func(r *record, _ int) string { return r.Query })
}

func sanitize(q string) string {
	return strings.TrimSpace(strings.ToLower(q))
}
