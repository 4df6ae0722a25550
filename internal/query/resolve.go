package query

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ziadkadry99/moviemood/internal/api"
	"github.com/ziadkadry99/moviemood/internal/movies"
)

// ErrMissingMovieID is returned for a recommendation query without an id.
var ErrMissingMovieID = errors.New("missing movie id")

// Resolve maps free text to a query. Empty text is the default listing, a
// known genre name (any case) is a genre search, anything else a title
// search.
func Resolve(text string) (Kind, Params) {
	text = strings.TrimSpace(text)
	if text == "" {
		return KindPlainSearch, Params{}
	}
	if genre, ok := movies.MatchGenre(text); ok {
		return KindGenreSearch, Params{Genre: genre}
	}
	return KindTextSearch, Params{Text: text}
}

// Fetch issues the single request a query maps to.
func Fetch(ctx context.Context, src MovieSource, kind Kind, p Params, page int) ([]movies.Movie, error) {
	switch kind {
	case KindPlainSearch:
		return src.DefaultListing(ctx, page)
	case KindTextSearch:
		return src.SearchTitle(ctx, p.Text, page)
	case KindGenreSearch:
		return src.FilterByGenre(ctx, p.Genre, page)
	case KindFilter:
		return src.FilterMovies(ctx, api.FilterParams{Genre: p.Genre, Year: p.Year, Rating: p.Rating}, page)
	case KindRecommendation:
		if p.MovieID == "" {
			return nil, ErrMissingMovieID
		}
		return src.Recommendations(ctx, p.MovieID)
	default:
		return nil, fmt.Errorf("unknown query kind %q", kind)
	}
}
