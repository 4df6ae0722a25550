package query

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/ziadkadry99/moviemood/internal/api"
	"github.com/ziadkadry99/moviemood/internal/render"
)

// ErrNotPaginated is returned by Next and Prev while recommendations are
// displayed.
var ErrNotPaginated = errors.New("recommendations are not paginated")

// Orchestrator runs movie queries and owns the displayed query state. It is
// safe for concurrent use; when requests overlap, only the response to the
// most recently issued one is applied.
type Orchestrator struct {
	src      MovieSource
	pageSize int

	mu         sync.Mutex
	generation uint64
	current    State
	lastPaged  State
}

// New creates an orchestrator starting at the default listing.
func New(src MovieSource, pageSize int) *Orchestrator {
	if pageSize <= 0 {
		pageSize = 20
	}
	return &Orchestrator{
		src:       src,
		pageSize:  pageSize,
		current:   InitialState(),
		lastPaged: InitialState(),
	}
}

// Current is the state of the displayed results.
func (o *Orchestrator) Current() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.current
}

// LastPaged is the most recent search or filter state, the one next and
// previous replay.
func (o *Orchestrator) LastPaged() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.lastPaged
}

// Run issues exactly one request for the query and builds its view. A
// response overtaken by a later Run is returned with Stale set and leaves
// the state untouched.
func (o *Orchestrator) Run(ctx context.Context, kind Kind, p Params, page int) (State, render.Results) {
	if page < 1 {
		page = 1
	}

	o.mu.Lock()
	o.generation++
	state := State{Kind: kind, Params: p, Page: page, Generation: o.generation}
	o.mu.Unlock()

	list, err := Fetch(ctx, o.src, kind, p, page)

	o.mu.Lock()
	defer o.mu.Unlock()
	if state.Generation != o.generation {
		log.Printf("query: discarding stale %s response (generation %d, latest %d)", kind, state.Generation, o.generation)
		return state, render.Results{Stale: true}
	}

	o.current = state
	if kind.Paginated() {
		o.lastPaged = state
	}
	if err != nil {
		log.Printf("query: %s page %d failed: %v", kind, page, err)
		return state, render.MovieError(api.Reason(err), page, kind.Paginated())
	}
	return state, render.MovieResults(list, page, kind.Paginated(), o.pageSize)
}

// Search resolves text and runs it from the first page.
func (o *Orchestrator) Search(ctx context.Context, text string) (State, render.Results) {
	kind, p := Resolve(text)
	return o.Run(ctx, kind, p, 1)
}

// ApplyFilters runs the filter panel selections from the first page.
func (o *Orchestrator) ApplyFilters(ctx context.Context, genre, year, rating string) (State, render.Results) {
	return o.Run(ctx, KindFilter, Params{Genre: genre, Year: year, Rating: rating}, 1)
}

// Next replays the last search or filter one page forward.
func (o *Orchestrator) Next(ctx context.Context) (State, render.Results, error) {
	return o.step(ctx, State.Next)
}

// Prev replays the last search or filter one page back, clamped to page 1.
func (o *Orchestrator) Prev(ctx context.Context) (State, render.Results, error) {
	return o.step(ctx, State.Prev)
}

func (o *Orchestrator) step(ctx context.Context, move func(State) State) (State, render.Results, error) {
	o.mu.Lock()
	cur, last := o.current, o.lastPaged
	o.mu.Unlock()

	if !cur.Kind.Paginated() {
		return cur, render.Results{Stale: true}, ErrNotPaginated
	}
	target := move(last)
	state, results := o.Run(ctx, target.Kind, target.Params, target.Page)
	return state, results, nil
}
