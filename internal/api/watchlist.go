package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/ziadkadry99/moviemood/internal/movies"
)

// Paths of the watchlist endpoints.
const (
	PathWatchlistCheck  = "/api/watchlist/check/"
	PathWatchlistAdd    = "/api/watchlist/add"
	PathWatchlistRemove = "/api/watchlist/remove/"
)

// InWatchlist reports whether id is on the user's watchlist.
func (c *Client) InWatchlist(ctx context.Context, id movies.ID) (bool, error) {
	var out watchlistStatus
	if err := c.getJSON(ctx, PathWatchlistCheck+url.PathEscape(string(id)), nil, &out); err != nil {
		return false, err
	}
	return out.InWatchlist, nil
}

// AddToWatchlist stores item on the watchlist.
func (c *Client) AddToWatchlist(ctx context.Context, item WatchlistItem) error {
	var a ack
	if err := c.send(ctx, http.MethodPost, PathWatchlistAdd, item, &a); err != nil {
		return err
	}
	return checkAck(a)
}

// RemoveFromWatchlist drops id from the watchlist.
func (c *Client) RemoveFromWatchlist(ctx context.Context, id movies.ID) error {
	var a ack
	if err := c.send(ctx, http.MethodDelete, PathWatchlistRemove+url.PathEscape(string(id)), nil, &a); err != nil {
		return err
	}
	return checkAck(a)
}
