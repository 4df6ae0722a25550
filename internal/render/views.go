// Package render turns controller state into view descriptions. Builders are
// pure; the HTML and Text appliers draw a description for a browser region or
// a terminal.
package render

import (
	"github.com/ziadkadry99/moviemood/internal/api"
	"github.com/ziadkadry99/moviemood/internal/escape"
	"github.com/ziadkadry99/moviemood/internal/movies"
)

// Notices shown in place of an empty list.
const (
	NoMoviesNotice  = "No movies found."
	NoReviewsNotice = "No reviews yet."
)

// Card is one movie in the results region.
type Card struct {
	ID         string
	Title      string
	Year       string
	Rating     string
	Overview   string
	PosterURL  string
	DetailsURL string
	TrailerURL string
	// SimilarID is the argument of the card's find-similar action.
	SimilarID string
}

// HasPoster reports whether the poster image should be drawn. A poster that
// fails to load is hidden by the applier, never blocking the card.
func (c Card) HasPoster() bool { return c.PosterURL != "" }

// CardFor builds the card for m, tolerating every missing optional field.
func CardFor(m movies.Movie) Card {
	return Card{
		ID:         string(m.ID),
		Title:      m.DisplayTitle(),
		Year:       m.Year(),
		Rating:     m.Rating(),
		Overview:   m.Overview,
		PosterURL:  m.PosterURL(),
		DetailsURL: m.DetailsPath(),
		TrailerURL: m.TrailerURL(),
		SimilarID:  string(m.ID),
	}
}

// Pagination is the state of the previous/next controls.
type Pagination struct {
	Visible     bool
	Page        int
	PrevEnabled bool
	NextEnabled bool
}

// Results is the results region plus its pagination controls.
type Results struct {
	Cards      []Card
	Notice     string
	Error      string
	Pagination Pagination
	// Stale marks a response that was superseded before it arrived. Appliers
	// leave the region untouched.
	Stale bool
}

// MovieResults builds the results view for one fetched page. A page holding
// fewer than pageSize movies is assumed to be the last one: the server does
// not report a total, so this can offer a "next" that turns out empty when
// the final page is exactly full.
func MovieResults(list []movies.Movie, page int, paginated bool, pageSize int) Results {
	r := Results{Pagination: pagination(page, paginated)}
	if len(list) == 0 {
		r.Notice = NoMoviesNotice
		r.Pagination.NextEnabled = false
		return r
	}
	r.Cards = make([]Card, 0, len(list))
	for _, m := range list {
		r.Cards = append(r.Cards, CardFor(m))
	}
	if len(list) < pageSize {
		r.Pagination.NextEnabled = false
	}
	return r
}

// MovieError builds the inline error shown where results would have been.
func MovieError(reason string, page int, paginated bool) Results {
	r := Results{
		Error:      "Failed to load movies: " + reason,
		Pagination: pagination(page, paginated),
	}
	r.Pagination.NextEnabled = false
	return r
}

func pagination(page int, paginated bool) Pagination {
	if !paginated {
		return Pagination{Page: page}
	}
	return Pagination{
		Visible:     true,
		Page:        page,
		PrevEnabled: page > 1,
		NextEnabled: true,
	}
}

// ReviewEntry is one review in the review panel. Title and Body are already
// HTML-escaped.
type ReviewEntry struct {
	ID        string
	Title     string
	Sentiment string
	WordCount int
	Date      string
	Body      string
}

// Reviews is the review panel.
type Reviews struct {
	Entries []ReviewEntry
	Notice  string
	Error   string
}

// ReviewList builds the review panel for list.
func ReviewList(list []api.Review) Reviews {
	if len(list) == 0 {
		return Reviews{Notice: NoReviewsNotice}
	}
	out := Reviews{Entries: make([]ReviewEntry, 0, len(list))}
	for _, r := range list {
		out.Entries = append(out.Entries, ReviewEntry{
			ID:        string(r.ID),
			Title:     escape.HTML(r.MovieTitle),
			Sentiment: r.SentimentLabel,
			WordCount: r.WordCount,
			Date:      r.DateCreated,
			Body:      escape.HTML(r.ReviewText),
		})
	}
	return out
}

// ReviewError builds the panel shown when the list cannot be loaded.
func ReviewError(reason string) Reviews {
	return Reviews{Error: "Failed to load reviews: " + reason}
}

// WatchlistButton is the heart toggle on a movie detail view.
type WatchlistButton struct {
	Visible     bool
	InWatchlist bool
	Icon        string
	Scale       float64
	Label       string
}

// WatchlistButtonFor builds the button for the given membership.
func WatchlistButtonFor(in bool) WatchlistButton {
	if in {
		return WatchlistButton{Visible: true, InWatchlist: true, Icon: "♥", Scale: 1.2, Label: "Remove from watchlist"}
	}
	return WatchlistButton{Visible: true, Icon: "♡", Scale: 1.0, Label: "Add to watchlist"}
}

// FilterPanel is the filter panel and its toggle button on narrow screens.
type FilterPanel struct {
	PanelVisible  bool
	ToggleVisible bool
	ToggleLabel   string
}

// Analytics is the sentiment chart and word cloud region.
type Analytics struct {
	Chart        *Chart
	WordCloudURL string
	Error        string
}

// Theme is the page colour scheme.
type Theme struct {
	Dark bool
}

// ClassName is the body class for the theme.
func (t Theme) ClassName() string {
	if t.Dark {
		return "dark-mode"
	}
	return "light-mode"
}
