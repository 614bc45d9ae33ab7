package youtube

import (
	"context"
	"errors"
	"sync"

	"github.com/samber/mo"
	"github.com/valtips-cli/valtips/log"
	"golang.org/x/exp/slices"
)

var (
	// ErrBusy is returned when a fetch is requested while another is in flight.
	ErrBusy = errors.New("a page is already being fetched")
	// ErrExhausted is returned by LoadMore when the last page was reached.
	ErrExhausted = errors.New("no more pages")
	// ErrStale is returned when Reset was called while the fetch was in flight.
	// The result is discarded.
	ErrStale = errors.New("selection changed while fetching")
)

// Searcher fetches a single page. *Client implements it.
type Searcher interface {
	Search(ctx context.Context, q Query) (*Page, error)
}

// State of a Pager.
type State int

const (
	Idle State = iota
	Fetching
)

func (s State) String() string {
	if s == Fetching {
		return "fetching"
	}
	return "idle"
}

// Pager accumulates the pages of one agent/map query.
// Only one fetch runs at a time; overlapping requests get ErrBusy.
type Pager struct {
	searcher Searcher

	mu         sync.Mutex
	state      State
	generation uint64
	entity     string
	context    string
	videos     []Video
	next       mo.Option[string]
	loaded     bool
}

func NewPager(searcher Searcher) *Pager {
	return &Pager{searcher: searcher}
}

// Reset switches to a new agent/map pair and drops everything loaded so far.
// A fetch still in flight for the old pair will return ErrStale.
func (p *Pager) Reset(entity, contextName string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.generation++
	p.state = Idle
	p.entity, p.context = entity, contextName
	p.videos = nil
	p.next = mo.None[string]()
	p.loaded = false
}

// Load fetches the first page and replaces the accumulated videos.
// It returns the number of videos on the page.
func (p *Pager) Load(ctx context.Context) (int, error) {
	return p.fetch(ctx, true)
}

// LoadMore fetches the page after the last one and appends it.
func (p *Pager) LoadMore(ctx context.Context) (int, error) {
	return p.fetch(ctx, false)
}

func (p *Pager) fetch(ctx context.Context, first bool) (int, error) {
	p.mu.Lock()
	if p.state == Fetching {
		p.mu.Unlock()
		return 0, ErrBusy
	}

	q := Query{Entity: p.entity, Context: p.context}
	if !first {
		token, ok := p.next.Get()
		if !ok {
			p.mu.Unlock()
			if !p.loaded {
				return p.fetch(ctx, true)
			}
			return 0, ErrExhausted
		}
		q.PageToken = mo.Some(token)
	}

	p.state = Fetching
	generation := p.generation
	p.mu.Unlock()

	page, err := p.searcher.Search(ctx, q)

	p.mu.Lock()
	defer p.mu.Unlock()

	if generation != p.generation {
		log.Debugf("pager: discarding result for %s / %s", q.Entity, q.Context)
		return 0, ErrStale
	}
	p.state = Idle

	if err != nil {
		return 0, err
	}

	if first {
		p.videos = slices.Clone(page.Videos)
	} else {
		p.videos = append(p.videos, page.Videos...)
	}
	p.next = page.NextPageToken
	p.loaded = true

	return len(page.Videos), nil
}

// Videos returns a copy of every video loaded so far, in server order.
func (p *Pager) Videos() []Video {
	p.mu.Lock()
	defer p.mu.Unlock()

	return slices.Clone(p.videos)
}

// HasMore reports whether LoadMore can fetch another page.
func (p *Pager) HasMore() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.next.IsPresent()
}

// Loaded reports whether at least one page was fetched for the current pair.
func (p *Pager) Loaded() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.loaded
}

func (p *Pager) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.state
}

// Query returns the agent/map pair the pager is bound to.
func (p *Pager) Query() (entity, contextName string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.entity, p.context
}
