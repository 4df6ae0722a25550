package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/server"

	"github.com/ziadkadry99/moviemood/internal/analytics"
	"github.com/ziadkadry99/moviemood/internal/api"
	"github.com/ziadkadry99/moviemood/internal/movies"
	"github.com/ziadkadry99/moviemood/internal/query"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Backend is the subset of the API client the tools call.
type Backend interface {
	query.MovieSource
	analytics.Source
	Reviews(ctx context.Context, f api.ReviewFilter) ([]api.Review, error)
	AddReview(ctx context.Context, title, text string) (*api.Review, error)
	InWatchlist(ctx context.Context, id movies.ID) (bool, error)
}

// Server wraps an MCP server that exposes movie search and review tools.
type Server struct {
	backend  Backend
	movies   *query.Orchestrator
	pageSize int
	mcp      *server.MCPServer
}

// NewServer creates a new MCP server over backend.
func NewServer(backend Backend, pageSize int) *Server {
	s := &Server{
		backend:  backend,
		movies:   query.New(backend, pageSize),
		pageSize: pageSize,
	}

	s.mcp = server.NewMCPServer(
		"moviemood",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(searchMoviesTool, s.handleSearchMovies)
	s.mcp.AddTool(filterMoviesTool, s.handleFilterMovies)
	s.mcp.AddTool(similarMoviesTool, s.handleSimilarMovies)
	s.mcp.AddTool(listReviewsTool, s.handleListReviews)
	s.mcp.AddTool(addReviewTool, s.handleAddReview)
	s.mcp.AddTool(sentimentStatsTool, s.handleSentimentStats)
	s.mcp.AddTool(watchlistStatusTool, s.handleWatchlistStatus)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
