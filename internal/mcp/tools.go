package mcp

import "github.com/mark3labs/mcp-go/mcp"

// searchMoviesTool defines the search_movies MCP tool.
var searchMoviesTool = mcp.NewTool("search_movies",
	mcp.WithDescription("Search movies by title. A query that names a genre lists that genre instead; an empty query returns the default listing."),
	mcp.WithString("query",
		mcp.Description("Title text or genre name"),
	),
	mcp.WithNumber("page",
		mcp.Description("Result page, starting at 1 (default 1)"),
	),
)

// filterMoviesTool defines the filter_movies MCP tool.
var filterMoviesTool = mcp.NewTool("filter_movies",
	mcp.WithDescription("List movies matching a genre, release year and minimum rating. Empty values are not applied."),
	mcp.WithString("genre", mcp.Description("Genre name, e.g. Horror")),
	mcp.WithString("year", mcp.Description("Release year")),
	mcp.WithString("rating", mcp.Description("Minimum average rating")),
	mcp.WithNumber("page", mcp.Description("Result page, starting at 1 (default 1)")),
)

// similarMoviesTool defines the similar_movies MCP tool.
var similarMoviesTool = mcp.NewTool("similar_movies",
	mcp.WithDescription("List movies similar to the given movie."),
	mcp.WithString("movie_id",
		mcp.Required(),
		mcp.Description("Movie identifier as shown in search results"),
	),
)

// listReviewsTool defines the list_reviews MCP tool.
var listReviewsTool = mcp.NewTool("list_reviews",
	mcp.WithDescription("List stored reviews with their sentiment."),
	mcp.WithString("movie_title", mcp.Description("Only reviews of this movie")),
	mcp.WithString("sentiment",
		mcp.Description("Only reviews with this sentiment"),
		mcp.Enum("positive", "neutral", "negative"),
	),
	mcp.WithString("date_order",
		mcp.Description("Sort by creation date"),
		mcp.Enum("asc", "desc"),
	),
	mcp.WithNumber("min_words", mcp.Description("Minimum word count")),
)

// addReviewTool defines the add_review MCP tool.
var addReviewTool = mcp.NewTool("add_review",
	mcp.WithDescription("Submit a review and report the sentiment assigned to it."),
	mcp.WithString("movie_title", mcp.Description("Movie the review is about (default Unknown)")),
	mcp.WithString("review",
		mcp.Required(),
		mcp.Description("Review text"),
	),
)

// sentimentStatsTool defines the sentiment_stats MCP tool.
var sentimentStatsTool = mcp.NewTool("sentiment_stats",
	mcp.WithDescription("Count positive, neutral and negative reviews, overall or for one movie."),
	mcp.WithString("movie_title", mcp.Description("Only reviews of this movie")),
)

// watchlistStatusTool defines the watchlist_status MCP tool.
var watchlistStatusTool = mcp.NewTool("watchlist_status",
	mcp.WithDescription("Report whether a movie is on the current user's watchlist."),
	mcp.WithString("movie_id",
		mcp.Required(),
		mcp.Description("Movie identifier"),
	),
)
