package api

import (
	"github.com/ziadkadry99/moviemood/internal/movies"
)

// Review is one stored review with its server-side sentiment analysis.
type Review struct {
	ID             movies.ID `json:"id,omitempty"`
	MovieTitle     string    `json:"movie_title"`
	ReviewText     string    `json:"review_text"`
	SentimentLabel string    `json:"sentiment_label"`
	SentimentScore float64   `json:"sentiment_score"`
	WordCount      int       `json:"word_count"`
	DateCreated    string    `json:"date_created,omitempty"`
}

// ReviewFilter narrows the review list. Zero values are omitted.
type ReviewFilter struct {
	MovieTitle string
	Sentiment  string // positive, neutral or negative
	DateOrder  string // asc or desc
	MinWords   int
}

// Counts is the sentiment distribution for a scope.
type Counts struct {
	Positive int `json:"positive"`
	Neutral  int `json:"neutral"`
	Negative int `json:"negative"`
}

// Total is the number of reviews counted.
func (c Counts) Total() int {
	return c.Positive + c.Neutral + c.Negative
}

// FilterParams are the explicit filter-panel selections. All three are
// always sent, empty or not.
type FilterParams struct {
	Genre  string
	Year   string
	Rating string
}

// WatchlistItem is the body of a watchlist add request.
type WatchlistItem struct {
	ID          movies.ID `json:"id"`
	Title       string    `json:"title"`
	PosterPath  string    `json:"poster_path"`
	ReleaseDate string    `json:"release_date"`
	VoteAverage *float64  `json:"vote_average"`
}

// WatchlistItemFrom copies the fields the add endpoint stores.
func WatchlistItemFrom(m movies.Movie) WatchlistItem {
	return WatchlistItem{
		ID:          m.ID,
		Title:       m.DisplayTitle(),
		PosterPath:  m.PosterPath,
		ReleaseDate: m.ReleaseDate,
		VoteAverage: m.VoteAverage,
	}
}

type ack struct {
	Success *bool  `json:"success,omitempty"`
	Error   string `json:"error,omitempty"`
}

type watchlistStatus struct {
	InWatchlist bool `json:"in_watchlist"`
}

type reviewRequest struct {
	MovieTitle string `json:"movie_title"`
	ReviewText string `json:"review_text"`
}
