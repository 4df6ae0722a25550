// Package page assembles the controllers a page exposes and runs its
// initial load.
package page

import (
	"github.com/ziadkadry99/moviemood/internal/api"
	"github.com/ziadkadry99/moviemood/internal/config"
	"github.com/ziadkadry99/moviemood/internal/movies"
	"github.com/ziadkadry99/moviemood/internal/render"
	"github.com/ziadkadry99/moviemood/internal/speech"
	"github.com/ziadkadry99/moviemood/internal/theme"
	"github.com/ziadkadry99/moviemood/internal/ui"
)

// Features lists the regions present on a page. Controllers for absent
// regions are not created.
type Features struct {
	Movies    bool
	Reviews   bool
	Analytics bool
	Watchlist bool
	Speech    bool
	Theme     bool
	Layout    bool
}

// Context is what the server-rendering layer injects into a page.
type Context struct {
	LoggedIn   bool
	LoginURL   string
	MovieID    movies.ID
	MovieTitle string
	UserAgent  string
	Language   string
}

// ContextFrom reads the injected values from configuration.
func ContextFrom(cfg *config.Config) Context {
	return Context{
		LoggedIn:   cfg.Page.LoggedIn,
		LoginURL:   cfg.Page.LoginURL,
		MovieID:    movies.ID(cfg.Page.MovieID),
		MovieTitle: cfg.Page.MovieTitle,
		UserAgent:  cfg.Page.UserAgent,
		Language:   cfg.Language,
	}
}

// IsDetail reports whether the page is a single movie's detail view.
func (c Context) IsDetail() bool {
	return c.MovieID != ""
}

// Movie is the detail view's movie as far as the page knows it.
func (c Context) Movie() movies.Movie {
	return movies.Movie{ID: c.MovieID, Title: c.MovieTitle}
}

// FeaturesFor returns the regions a page with context c has. The watchlist
// toggle only exists on detail views.
func FeaturesFor(c Context) Features {
	return Features{
		Movies:    true,
		Reviews:   true,
		Analytics: true,
		Watchlist: c.IsDetail(),
		Speech:    true,
		Theme:     true,
		Layout:    true,
	}
}

// Deps are the collaborators shared by all controllers.
type Deps struct {
	Client     *api.Client
	UI         ui.UI
	Speech     speech.Provider
	Prefs      theme.Preferences
	PageSize   int
	Breakpoint int
	Hotword    string
}

// View is the full set of region views.
type View struct {
	Results   render.Results
	Reviews   render.Reviews
	Analytics render.Analytics
	Watchlist render.WatchlistButton
	Filters   render.FilterPanel
	Theme     render.Theme
}
