package mcp

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/moviemood/internal/api"
	"github.com/ziadkadry99/moviemood/internal/api/apitest"
)

func newTestServer(t *testing.T) (*Server, *apitest.Backend) {
	t.Helper()
	b := apitest.New(t)
	return NewServer(b.Client(), 20), b
}

func call(t *testing.T, handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error), args map[string]any) (string, bool) {
	t.Helper()
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args

	result, err := handler(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var text strings.Builder
	for _, c := range result.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			text.WriteString(tc.Text)
		}
	}
	return text.String(), result.IsError
}

func TestToolDefinitions(t *testing.T) {
	tests := []struct {
		name     string
		tool     mcp.Tool
		wantName string
	}{
		{"search_movies", searchMoviesTool, "search_movies"},
		{"filter_movies", filterMoviesTool, "filter_movies"},
		{"similar_movies", similarMoviesTool, "similar_movies"},
		{"list_reviews", listReviewsTool, "list_reviews"},
		{"add_review", addReviewTool, "add_review"},
		{"sentiment_stats", sentimentStatsTool, "sentiment_stats"},
		{"watchlist_status", watchlistStatusTool, "watchlist_status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.tool.Name != tt.wantName {
				t.Errorf("tool name = %q, want %q", tt.tool.Name, tt.wantName)
			}
			if tt.tool.Description == "" {
				t.Error("tool description should not be empty")
			}
		})
	}
}

func TestNewServer(t *testing.T) {
	srv, _ := newTestServer(t)
	if srv.mcp == nil {
		t.Fatal("MCP server not initialized")
	}
	if srv.movies == nil {
		t.Fatal("movie orchestrator not initialized")
	}
}

func TestHandleSearchMovies(t *testing.T) {
	srv, b := newTestServer(t)

	t.Run("title search", func(t *testing.T) {
		text, isErr := call(t, srv.handleSearchMovies, map[string]any{"query": "movie", "page": 2})
		if isErr {
			t.Fatalf("unexpected tool error: %s", text)
		}
		if !strings.Contains(text, "Movie 1") {
			t.Errorf("expected listing in output, got %q", text)
		}
		calls := b.CallsTo(http.MethodGet, api.PathSearch)
		if len(calls) == 0 || calls[len(calls)-1].Query.Get("page") != "2" {
			t.Errorf("expected page 2 request, got %+v", calls)
		}
	})

	t.Run("genre query uses filter endpoint", func(t *testing.T) {
		b.Reset()
		call(t, srv.handleSearchMovies, map[string]any{"query": "comedy"})
		if got := b.Count(http.MethodGet, api.PathFilter); got != 1 {
			t.Errorf("expected one filter request, got %d", got)
		}
	})

	t.Run("backend failure", func(t *testing.T) {
		b.Fail(api.PathSearch, http.StatusInternalServerError, "down")
		text, isErr := call(t, srv.handleSearchMovies, map[string]any{"query": "x"})
		if !isErr {
			t.Fatal("expected tool error")
		}
		if !strings.HasPrefix(text, "Failed to load movies: ") {
			t.Errorf("unexpected error text %q", text)
		}
	})
}

func TestHandleFilterMovies(t *testing.T) {
	srv, b := newTestServer(t)

	call(t, srv.handleFilterMovies, map[string]any{"genre": "Drama", "year": "1999"})
	calls := b.CallsTo(http.MethodGet, api.PathFilter)
	if len(calls) != 1 {
		t.Fatalf("expected one filter call, got %d", len(calls))
	}
	q := calls[0].Query
	if q.Get("genre") != "Drama" || q.Get("year") != "1999" || !q.Has("rating") {
		t.Errorf("unexpected query %v", q)
	}
}

func TestHandleSimilarMovies(t *testing.T) {
	srv, b := newTestServer(t)

	t.Run("missing id", func(t *testing.T) {
		_, isErr := call(t, srv.handleSimilarMovies, map[string]any{})
		if !isErr {
			t.Error("expected error for missing movie_id")
		}
	})

	t.Run("recommendations", func(t *testing.T) {
		text, isErr := call(t, srv.handleSimilarMovies, map[string]any{"movie_id": "42"})
		if isErr {
			t.Fatalf("unexpected tool error: %s", text)
		}
		if got := b.Count(http.MethodGet, api.PathRecommendations+"42"); got != 1 {
			t.Errorf("expected one recommendations call, got %d", got)
		}
	})
}

func TestHandleReviews(t *testing.T) {
	srv, b := newTestServer(t)

	t.Run("empty review rejected", func(t *testing.T) {
		text, isErr := call(t, srv.handleAddReview, map[string]any{"review": "  "})
		if !isErr || text != "Write a review first." {
			t.Errorf("expected empty review error, got %q", text)
		}
		if got := b.Count(http.MethodPost, api.PathAddReview); got != 0 {
			t.Errorf("expected no request, got %d", got)
		}
	})

	t.Run("add then list", func(t *testing.T) {
		text, isErr := call(t, srv.handleAddReview, map[string]any{"review": "what a ride"})
		if isErr {
			t.Fatalf("unexpected tool error: %s", text)
		}
		if !strings.Contains(text, "Unknown") || !strings.Contains(text, "positive") {
			t.Errorf("unexpected add output %q", text)
		}

		text, _ = call(t, srv.handleListReviews, map[string]any{})
		if !strings.Contains(text, "what a ride") {
			t.Errorf("expected review in list, got %q", text)
		}
	})
}

func TestHandleSentimentStats(t *testing.T) {
	srv, b := newTestServer(t)
	b.SetStats(api.Counts{Positive: 3, Neutral: 1, Negative: 0})

	text, isErr := call(t, srv.handleSentimentStats, map[string]any{"movie_title": "Heat"})
	if isErr {
		t.Fatalf("unexpected tool error: %s", text)
	}
	if !strings.Contains(text, "Positive") || !strings.Contains(text, "movie_title=Heat") {
		t.Errorf("unexpected stats output %q", text)
	}
}

func TestHandleWatchlistStatus(t *testing.T) {
	srv, b := newTestServer(t)
	b.SetInWatchlist("7", true)

	text, _ := call(t, srv.handleWatchlistStatus, map[string]any{"movie_id": "7"})
	if !strings.Contains(text, "is on the watchlist") {
		t.Errorf("unexpected output %q", text)
	}
	text, _ = call(t, srv.handleWatchlistStatus, map[string]any{"movie_id": "8"})
	if !strings.Contains(text, "is not on the watchlist") {
		t.Errorf("unexpected output %q", text)
	}
}
