// Package apitest runs an in-memory movie review backend for tests. It
// records every request so tests can assert on exact endpoints and counts.
package apitest

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/moviemood/internal/api"
	"github.com/ziadkadry99/moviemood/internal/config"
	"github.com/ziadkadry99/moviemood/internal/movies"
)

// WordCloudPNG is the body served for the word cloud image.
var WordCloudPNG = []byte("\x89PNG\r\n\x1a\nfake-wordcloud")

// Call is one recorded request.
type Call struct {
	Method string
	Path   string
	Query  url.Values
	Body   []byte
}

type failure struct {
	status  int
	message string
}

// Backend is a fake server. Fields may be set before requests are made;
// use the setters once requests are in flight.
type Backend struct {
	Server *httptest.Server

	mu        sync.Mutex
	calls     []Call
	listing   []movies.Movie
	reviews   []api.Review
	nextID    int
	stats     api.Counts
	watchlist map[string]bool
	failures  map[string]failure
}

// New starts a backend that is closed when the test ends.
func New(t testing.TB) *Backend {
	t.Helper()
	b := &Backend{
		listing:   SampleMovies(3),
		nextID:    1,
		watchlist: make(map[string]bool),
		failures:  make(map[string]failure),
	}
	b.Server = httptest.NewServer(b.routes())
	t.Cleanup(b.Server.Close)
	return b
}

// SampleMovies builds n distinct movies.
func SampleMovies(n int) []movies.Movie {
	out := make([]movies.Movie, 0, n)
	for i := 1; i <= n; i++ {
		rating := float64(5 + i%5)
		out = append(out, movies.Movie{
			ID:          movies.ID(strconv.Itoa(i)),
			Title:       fmt.Sprintf("Movie %d", i),
			PosterPath:  fmt.Sprintf("/poster%d.jpg", i),
			VoteAverage: &rating,
			ReleaseDate: fmt.Sprintf("%d-01-01", 1990+i),
		})
	}
	return out
}

// Config points a default configuration at the backend with retries and
// rate limiting off.
func (b *Backend) Config() *config.Config {
	cfg := config.DefaultConfig()
	cfg.BaseURL = b.Server.URL
	cfg.Retries = 0
	cfg.RequestsPerSecond = 0
	return cfg
}

// Client returns an API client for the backend.
func (b *Backend) Client() *api.Client {
	return api.NewClient(b.Config(), api.WithRetryDelay(time.Millisecond))
}

// SetListing replaces the movies returned by every listing endpoint.
func (b *Backend) SetListing(list []movies.Movie) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listing = list
}

// SetReviews replaces the stored reviews.
func (b *Backend) SetReviews(list []api.Review) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.reviews = list
}

// SetStats sets the sentiment counts.
func (b *Backend) SetStats(c api.Counts) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.stats = c
}

// SetInWatchlist marks id as present or absent.
func (b *Backend) SetInWatchlist(id string, present bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.watchlist[id] = present
}

// InWatchlist reports the stored membership of id.
func (b *Backend) InWatchlist(id string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.watchlist[id]
}

// Fail makes every request whose path starts with prefix fail. A status of
// http.StatusOK produces a {success:false, error} body instead.
func (b *Backend) Fail(prefix string, status int, message string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures[prefix] = failure{status: status, message: message}
}

// Calls returns a copy of the recorded requests.
func (b *Backend) Calls() []Call {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Call(nil), b.calls...)
}

// CallsTo returns requests matching method and path prefix.
func (b *Backend) CallsTo(method, prefix string) []Call {
	var out []Call
	for _, c := range b.Calls() {
		if c.Method == method && strings.HasPrefix(c.Path, prefix) {
			out = append(out, c)
		}
	}
	return out
}

// Count is len(CallsTo(method, prefix)).
func (b *Backend) Count(method, prefix string) int {
	return len(b.CallsTo(method, prefix))
}

// Reset forgets recorded requests.
func (b *Backend) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls = nil
}

func (b *Backend) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(b.record)
	r.Get(api.PathSearch, b.handleListing)
	r.Get(api.PathFilter, b.handleListing)
	r.Get(api.PathRecommendations+"{id}", b.handleListing)
	r.Get(api.PathReviews, b.handleReviews)
	r.Post(api.PathAddReview, b.handleAddReview)
	r.Delete(api.PathDeleteReview+"{id}", b.handleDeleteReview)
	r.Get(api.PathStats, b.handleStats)
	r.Get(api.PathWordCloud, b.handleWordCloud)
	r.Get(api.PathWatchlistCheck+"{id}", b.handleWatchlistCheck)
	r.Post(api.PathWatchlistAdd, b.handleWatchlistAdd)
	r.Delete(api.PathWatchlistRemove+"{id}", b.handleWatchlistRemove)
	return r
}

func (b *Backend) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		r.Body.Close()
		r.Body = io.NopCloser(strings.NewReader(string(body)))

		b.mu.Lock()
		b.calls = append(b.calls, Call{Method: r.Method, Path: r.URL.Path, Query: r.URL.Query(), Body: body})
		var fail *failure
		for prefix, f := range b.failures {
			if strings.HasPrefix(r.URL.Path, prefix) {
				f := f
				fail = &f
				break
			}
		}
		b.mu.Unlock()

		if fail != nil {
			if fail.status == http.StatusOK {
				writeJSON(w, http.StatusOK, map[string]any{"success": false, "error": fail.message})
				return
			}
			writeJSON(w, fail.status, map[string]string{"error": fail.message})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (b *Backend) handleListing(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	list := append([]movies.Movie{}, b.listing...)
	b.mu.Unlock()
	writeJSON(w, http.StatusOK, list)
}

func (b *Backend) handleReviews(w http.ResponseWriter, r *http.Request) {
	title := r.URL.Query().Get("movie_title")
	b.mu.Lock()
	out := []api.Review{}
	for _, rv := range b.reviews {
		if title == "" || rv.MovieTitle == title {
			out = append(out, rv)
		}
	}
	b.mu.Unlock()
	writeJSON(w, http.StatusOK, out)
}

func (b *Backend) handleAddReview(w http.ResponseWriter, r *http.Request) {
	var req struct {
		MovieTitle string `json:"movie_title"`
		ReviewText string `json:"review_text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ReviewText == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "No review text"})
		return
	}
	b.mu.Lock()
	rv := api.Review{
		ID:             movies.ID(strconv.Itoa(b.nextID)),
		MovieTitle:     req.MovieTitle,
		ReviewText:     req.ReviewText,
		SentimentLabel: "positive",
		SentimentScore: 0.8,
		WordCount:      len(strings.Fields(req.ReviewText)),
		DateCreated:    "2024-05-01 12:00:00",
	}
	b.nextID++
	b.reviews = append(b.reviews, rv)
	b.mu.Unlock()
	writeJSON(w, http.StatusOK, rv)
}

func (b *Backend) handleDeleteReview(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, rv := range b.reviews {
		if string(rv.ID) == id {
			b.reviews = append(b.reviews[:i], b.reviews[i+1:]...)
			writeJSON(w, http.StatusOK, map[string]any{"success": true})
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]any{"success": false, "error": "Review not found"})
}

func (b *Backend) handleStats(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	c := b.stats
	b.mu.Unlock()
	writeJSON(w, http.StatusOK, c)
}

func (b *Backend) handleWordCloud(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(WordCloudPNG)))
	w.Write(WordCloudPNG)
}

func (b *Backend) handleWatchlistCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"in_watchlist": b.InWatchlist(chi.URLParam(r, "id"))})
}

func (b *Backend) handleWatchlistAdd(w http.ResponseWriter, r *http.Request) {
	var item struct {
		ID movies.ID `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil || item.ID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "error": "Missing movie id"})
		return
	}
	b.SetInWatchlist(string(item.ID), true)
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (b *Backend) handleWatchlistRemove(w http.ResponseWriter, r *http.Request) {
	b.SetInWatchlist(chi.URLParam(r, "id"), false)
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
