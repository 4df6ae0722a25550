package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/ziadkadry99/moviemood/internal/movies"
)

// Paths of the movie listing endpoints.
const (
	PathSearch          = "/search_tmdb"
	PathFilter          = "/filter_movies"
	PathRecommendations = "/recommendations/"
)

// DefaultListing fetches the trending listing for page.
func (c *Client) DefaultListing(ctx context.Context, page int) ([]movies.Movie, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	return c.movieList(ctx, PathSearch, q)
}

// SearchTitle searches movies by title.
func (c *Client) SearchTitle(ctx context.Context, text string, page int) ([]movies.Movie, error) {
	q := url.Values{}
	q.Set("q", text)
	q.Set("page", strconv.Itoa(page))
	return c.movieList(ctx, PathSearch, q)
}

// FilterByGenre lists movies of one genre. Only genre and page are sent.
func (c *Client) FilterByGenre(ctx context.Context, genre string, page int) ([]movies.Movie, error) {
	q := url.Values{}
	q.Set("genre", genre)
	q.Set("page", strconv.Itoa(page))
	return c.movieList(ctx, PathFilter, q)
}

// FilterMovies applies the filter panel selections.
func (c *Client) FilterMovies(ctx context.Context, f FilterParams, page int) ([]movies.Movie, error) {
	q := url.Values{}
	q.Set("genre", f.Genre)
	q.Set("year", f.Year)
	q.Set("rating", f.Rating)
	q.Set("page", strconv.Itoa(page))
	return c.movieList(ctx, PathFilter, q)
}

// Recommendations fetches movies similar to id.
func (c *Client) Recommendations(ctx context.Context, id movies.ID) ([]movies.Movie, error) {
	return c.movieList(ctx, PathRecommendations+url.PathEscape(string(id)), nil)
}

func (c *Client) movieList(ctx context.Context, path string, q url.Values) ([]movies.Movie, error) {
	var out []movies.Movie
	if err := c.getJSON(ctx, path, q, &out); err != nil {
		return nil, err
	}
	return out, nil
}
