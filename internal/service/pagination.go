package service

import (
	"context"
	"errors"
	"sync"

	"github.com/yaiechnyk-oleh/recipe-finder/internal/models"
	"github.com/yaiechnyk-oleh/recipe-finder/internal/spoonacular"
)

// State is the lifecycle state of a Paginator.
type State int

// Paginator states.
const (
	StateIdle State = iota
	StateLoading
	StateLoaded
	StateLoadingMore
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateLoadingMore:
		return "loadingMore"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

var (
	// ErrLoadInFlight is returned by LoadMore while another page request
	// of the same search is outstanding.
	ErrLoadInFlight = errors.New("a page request is already in flight")
	// ErrNoMoreResults is returned by LoadMore once every result was loaded.
	ErrNoMoreResults = errors.New("no more results")
	// ErrStaleResponse is returned when a response arrives for a search
	// that has since been replaced. The response is discarded.
	ErrStaleResponse = errors.New("search was superseded")
	// ErrNoSearch is returned by LoadMore before any search was started.
	ErrNoSearch = errors.New("no search started")
)

// Snapshot is a read-only copy of a Paginator's state.
type Snapshot struct {
	Form         SearchForm             `json:"form"`
	State        State                  `json:"-"`
	Results      []models.RecipeSummary `json:"results"`
	Offset       int                    `json:"offset"`
	PageSize     int                    `json:"pageSize"`
	TotalResults int                    `json:"totalResults"`
	HasMore      bool                   `json:"hasMore"`
	Generation   uint64                 `json:"generation"`
	Err          error                  `json:"-"`
}

// Paginator accumulates offset/limit pages of a single search.
//
// The mutex is only held around state transitions, never across a
// network call. Every StartSearch bumps the generation; a response whose
// generation no longer matches is dropped.
type Paginator struct {
	provider spoonacular.RecipeProvider
	pageSize int

	mu           sync.Mutex
	state        State
	generation   uint64
	form         SearchForm
	accumulated  []models.RecipeSummary
	offset       int
	total        int
	lastPageFull bool
	err          error
}

// NewPaginator creates an idle Paginator requesting pageSize results per page.
func NewPaginator(provider spoonacular.RecipeProvider, pageSize int) *Paginator {
	if pageSize <= 0 {
		pageSize = models.DefaultPageSize
	}
	return &Paginator{provider: provider, pageSize: pageSize}
}

// StartSearch resets the accumulated results and loads the first page of
// form. Any page request still in flight for a previous search becomes
// stale.
func (p *Paginator) StartSearch(ctx context.Context, form SearchForm) (Snapshot, error) {
	p.mu.Lock()
	p.generation++
	gen := p.generation
	p.state = StateLoading
	p.form = form
	p.accumulated = nil
	p.offset = 0
	p.total = 0
	p.lastPageFull = false
	p.err = nil
	p.mu.Unlock()

	page, err := p.provider.Search(ctx, form.Params(0, p.pageSize))

	p.mu.Lock()
	defer p.mu.Unlock()

	if gen != p.generation {
		return p.snapshotLocked(), ErrStaleResponse
	}
	if err != nil {
		p.state = StateError
		p.err = err
		return p.snapshotLocked(), err
	}

	p.total = page.TotalResults
	p.accumulated = p.clampLocked(page.Results)
	p.lastPageFull = len(page.Results) >= p.pageSize
	p.state = StateLoaded
	return p.snapshotLocked(), nil
}

// LoadMore fetches the page after the current offset and appends it. It
// returns the newly appended results.
//
// generation names the search the caller is displaying. A non-zero value
// that no longer matches the current search yields ErrStaleResponse
// without touching the results; zero skips the check.
func (p *Paginator) LoadMore(ctx context.Context, generation uint64) (Snapshot, []models.RecipeSummary, error) {
	p.mu.Lock()
	if generation != 0 && generation != p.generation {
		snap := p.snapshotLocked()
		p.mu.Unlock()
		return snap, nil, ErrStaleResponse
	}
	switch p.state {
	case StateIdle:
		p.mu.Unlock()
		return p.Snapshot(), nil, ErrNoSearch
	case StateLoading, StateLoadingMore:
		snap := p.snapshotLocked()
		p.mu.Unlock()
		return snap, nil, ErrLoadInFlight
	}
	if !p.hasMoreLocked() {
		snap := p.snapshotLocked()
		p.mu.Unlock()
		return snap, nil, ErrNoMoreResults
	}

	gen := p.generation
	form := p.form
	nextOffset := p.offset + p.pageSize
	p.state = StateLoadingMore
	p.mu.Unlock()

	page, err := p.provider.Search(ctx, form.Params(nextOffset, p.pageSize))

	p.mu.Lock()
	defer p.mu.Unlock()

	if gen != p.generation {
		return p.snapshotLocked(), nil, ErrStaleResponse
	}
	if err != nil {
		p.state = StateError
		p.err = err
		return p.snapshotLocked(), nil, err
	}

	added := p.clampLocked(page.Results)
	p.accumulated = append(p.accumulated, added...)
	p.offset = nextOffset
	p.lastPageFull = len(page.Results) >= p.pageSize
	p.state = StateLoaded
	p.err = nil
	return p.snapshotLocked(), added, nil
}

// Snapshot returns a copy of the current state.
func (p *Paginator) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshotLocked()
}

// HasMore reports whether another page can be requested.
func (p *Paginator) HasMore() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.hasMoreLocked()
}

// hasMoreLocked applies both stop rules: the reported total was reached, or
// the last page came back shorter than requested.
func (p *Paginator) hasMoreLocked() bool {
	return len(p.accumulated) < p.total && p.lastPageFull
}

// clampLocked drops results that would push the accumulated list past the
// reported total.
func (p *Paginator) clampLocked(results []models.RecipeSummary) []models.RecipeSummary {
	remaining := p.total - len(p.accumulated)
	if remaining <= 0 {
		return nil
	}
	if len(results) > remaining {
		results = results[:remaining]
	}
	out := make([]models.RecipeSummary, len(results))
	copy(out, results)
	return out
}

func (p *Paginator) snapshotLocked() Snapshot {
	results := make([]models.RecipeSummary, len(p.accumulated))
	copy(results, p.accumulated)
	return Snapshot{
		Form:         p.form,
		State:        p.state,
		Results:      results,
		Offset:       p.offset,
		PageSize:     p.pageSize,
		TotalResults: p.total,
		HasMore:      p.hasMoreLocked(),
		Generation:   p.generation,
		Err:          p.err,
	}
}
