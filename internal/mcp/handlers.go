package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/moviemood/internal/analytics"
	"github.com/ziadkadry99/moviemood/internal/api"
	"github.com/ziadkadry99/moviemood/internal/movies"
	"github.com/ziadkadry99/moviemood/internal/query"
	"github.com/ziadkadry99/moviemood/internal/render"
	"github.com/ziadkadry99/moviemood/internal/reviews"
)

// handleSearchMovies resolves the query the same way the search box does.
func (s *Server) handleSearchMovies(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	kind, params := query.Resolve(request.GetString("query", ""))
	_, r := s.movies.Run(ctx, kind, params, request.GetInt("page", 1))
	return resultsText(r)
}

func (s *Server) handleFilterMovies(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := query.Params{
		Genre:  request.GetString("genre", ""),
		Year:   request.GetString("year", ""),
		Rating: request.GetString("rating", ""),
	}
	_, r := s.movies.Run(ctx, query.KindFilter, params, request.GetInt("page", 1))
	return resultsText(r)
}

func (s *Server) handleSimilarMovies(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("movie_id")
	if err != nil || strings.TrimSpace(id) == "" {
		return mcp.NewToolResultError("missing required parameter: movie_id"), nil
	}
	_, r := s.movies.ShowSimilar(ctx, movies.ID(id))
	return resultsText(r)
}

func (s *Server) handleListReviews(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	f := api.ReviewFilter{
		MovieTitle: request.GetString("movie_title", ""),
		Sentiment:  request.GetString("sentiment", ""),
		DateOrder:  request.GetString("date_order", ""),
		MinWords:   request.GetInt("min_words", 0),
	}
	list, err := s.backend.Reviews(ctx, f)
	if err != nil {
		return mcp.NewToolResultError(render.ReviewError(api.Reason(err)).Error), nil
	}

	var b strings.Builder
	if err := render.WriteReviews(&b, render.ReviewList(list)); err != nil {
		return nil, fmt.Errorf("writing reviews: %w", err)
	}
	return mcp.NewToolResultText(b.String()), nil
}

func (s *Server) handleAddReview(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("review")
	if err != nil || strings.TrimSpace(text) == "" {
		return mcp.NewToolResultError(reviews.EmptyReviewAlert), nil
	}
	title := strings.TrimSpace(request.GetString("movie_title", ""))
	if title == "" {
		title = reviews.UnknownTitle
	}

	saved, err := s.backend.AddReview(ctx, title, strings.TrimSpace(text))
	if err != nil {
		return mcp.NewToolResultError("Failed to submit review: " + api.Reason(err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Saved review of %s: %s (score %.2f, %d words)",
		title, saved.SentimentLabel, saved.SentimentScore, saved.WordCount)), nil
}

func (s *Server) handleSentimentStats(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	a := analytics.NewRefresher(s.backend).Refresh(ctx, request.GetString("movie_title", ""))
	if a.Error != "" {
		return mcp.NewToolResultError(a.Error), nil
	}

	var b strings.Builder
	if err := render.WriteAnalytics(&b, a); err != nil {
		return nil, fmt.Errorf("writing analytics: %w", err)
	}
	return mcp.NewToolResultText(b.String()), nil
}

func (s *Server) handleWatchlistStatus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("movie_id")
	if err != nil || strings.TrimSpace(id) == "" {
		return mcp.NewToolResultError("missing required parameter: movie_id"), nil
	}
	in, err := s.backend.InWatchlist(ctx, movies.ID(id))
	if err != nil {
		return mcp.NewToolResultError(api.Reason(err)), nil
	}

	icon := render.WatchlistButtonFor(in).Icon
	if in {
		return mcp.NewToolResultText(fmt.Sprintf("%s Movie %s is on the watchlist.", icon, id)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("%s Movie %s is not on the watchlist.", icon, id)), nil
}

// resultsText turns a results region into a tool result. Load failures are
// tool errors.
func resultsText(r render.Results) (*mcp.CallToolResult, error) {
	if r.Error != "" {
		return mcp.NewToolResultError(r.Error), nil
	}
	var b strings.Builder
	if err := render.WriteResults(&b, r); err != nil {
		return nil, fmt.Errorf("writing results: %w", err)
	}
	return mcp.NewToolResultText(b.String()), nil
}
