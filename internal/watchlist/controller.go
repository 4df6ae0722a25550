// Package watchlist drives the add/remove toggle on a movie detail view.
package watchlist

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/ziadkadry99/moviemood/internal/api"
	"github.com/ziadkadry99/moviemood/internal/movies"
	"github.com/ziadkadry99/moviemood/internal/render"
	"github.com/ziadkadry99/moviemood/internal/ui"
)

// ErrNotLoggedIn is returned by Toggle when the user was sent to log in.
var ErrNotLoggedIn = errors.New("not logged in")

// Source is the subset of the API client used by the controller.
type Source interface {
	InWatchlist(ctx context.Context, id movies.ID) (bool, error)
	AddToWatchlist(ctx context.Context, item api.WatchlistItem) error
	RemoveFromWatchlist(ctx context.Context, id movies.ID) error
}

// Session is the login state injected by the server-rendered page.
type Session struct {
	LoggedIn bool
	LoginURL string
}

// Controller holds the membership of one movie.
type Controller struct {
	src     Source
	movie   movies.Movie
	session Session
	alerter ui.Alerter
	nav     ui.Navigator

	mu      sync.Mutex
	in      bool
	mounted bool
}

// New creates a controller for movie.
func New(src Source, movie movies.Movie, session Session, alerter ui.Alerter, nav ui.Navigator) *Controller {
	return &Controller{src: src, movie: movie, session: session, alerter: alerter, nav: nav}
}

// Mount reads the initial membership. A failed read shows the movie as not
// on the watchlist.
func (c *Controller) Mount(ctx context.Context) render.WatchlistButton {
	in, err := c.src.InWatchlist(ctx, c.movie.ID)
	if err != nil {
		log.Printf("watchlist: status of %s failed: %v", c.movie.ID, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.in = err == nil && in
	c.mounted = true
	return render.WatchlistButtonFor(c.in)
}

// InWatchlist is the current membership.
func (c *Controller) InWatchlist() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.in
}

// Button is the current button view.
func (c *Controller) Button() render.WatchlistButton {
	return render.WatchlistButtonFor(c.InWatchlist())
}

// Toggle removes the movie when present and adds it otherwise. Logged-out
// users are redirected without a request. Before Mount the status is read
// first. The state only changes once the server confirms.
func (c *Controller) Toggle(ctx context.Context) (render.WatchlistButton, error) {
	if !c.session.LoggedIn {
		c.nav.Redirect(c.session.LoginURL)
		return c.Button(), ErrNotLoggedIn
	}

	c.mu.Lock()
	mounted := c.mounted
	c.mu.Unlock()
	if !mounted {
		c.Mount(ctx)
	}

	present := c.InWatchlist()
	var err error
	if present {
		err = c.src.RemoveFromWatchlist(ctx, c.movie.ID)
	} else {
		err = c.src.AddToWatchlist(ctx, api.WatchlistItemFrom(c.movie))
	}
	if err != nil {
		log.Printf("watchlist: toggle %s failed: %v", c.movie.ID, err)
		c.alerter.Alert(api.Reason(err))
		return c.Button(), err
	}

	c.mu.Lock()
	c.in = !present
	in := c.in
	c.mu.Unlock()
	return render.WatchlistButtonFor(in), nil
}
