// Package query resolves user queries to movie listing requests and tracks
// the pagination state needed to replay them.
package query

import (
	"context"

	"github.com/ziadkadry99/moviemood/internal/api"
	"github.com/ziadkadry99/moviemood/internal/movies"
)

// Kind is the query shape that produced a result set.
type Kind string

const (
	KindPlainSearch    Kind = "plain-search"
	KindTextSearch     Kind = "text-search"
	KindGenreSearch    Kind = "genre-search"
	KindFilter         Kind = "filter"
	KindRecommendation Kind = "recommendation"
)

// Mode groups kinds the way pagination sees them: search, filter or
// recommendation.
func (k Kind) Mode() string {
	switch k {
	case KindFilter, KindGenreSearch:
		return "filter"
	case KindRecommendation:
		return "recommendation"
	default:
		return "search"
	}
}

// Paginated reports whether next/previous apply to this kind.
func (k Kind) Paginated() bool {
	return k != KindRecommendation
}

// Params are the inputs of a query. Only the fields relevant to the kind are
// set.
type Params struct {
	Text    string
	Genre   string
	Year    string
	Rating  string
	MovieID movies.ID
}

// State is an immutable snapshot of the query that produced the displayed
// results. Transitions return new values.
type State struct {
	Kind       Kind
	Params     Params
	Page       int
	Generation uint64
}

// InitialState is the default listing, first page.
func InitialState() State {
	return State{Kind: KindPlainSearch, Page: 1}
}

// WithPage returns s at page p, clamped to 1.
func (s State) WithPage(p int) State {
	if p < 1 {
		p = 1
	}
	s.Page = p
	return s
}

// Next is s one page forward.
func (s State) Next() State { return s.WithPage(s.Page + 1) }

// Prev is s one page back, never below 1.
func (s State) Prev() State { return s.WithPage(s.Page - 1) }

// Equivalent reports whether s and o describe the same query, ignoring the
// generation that issued them.
func (s State) Equivalent(o State) bool {
	return s.Kind == o.Kind && s.Params == o.Params && s.Page == o.Page
}

// MovieSource is the subset of the API client used by the orchestrator.
type MovieSource interface {
	DefaultListing(ctx context.Context, page int) ([]movies.Movie, error)
	SearchTitle(ctx context.Context, text string, page int) ([]movies.Movie, error)
	FilterByGenre(ctx context.Context, genre string, page int) ([]movies.Movie, error)
	FilterMovies(ctx context.Context, f api.FilterParams, page int) ([]movies.Movie, error)
	Recommendations(ctx context.Context, id movies.ID) ([]movies.Movie, error)
}
