package watchlist

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziadkadry99/moviemood/internal/api"
	"github.com/ziadkadry99/moviemood/internal/api/apitest"
	"github.com/ziadkadry99/moviemood/internal/movies"
	"github.com/ziadkadry99/moviemood/internal/ui"
)

var arrival = movies.Movie{ID: "329865", Title: "Arrival", PosterPath: "/x.jpg", ReleaseDate: "2016-11-11"}

func TestToggleLoggedOutRedirects(t *testing.T) {
	b := apitest.New(t)
	rec := ui.NewRecorder(true)
	c := New(b.Client(), arrival, Session{LoggedIn: false, LoginURL: "/login"}, rec, rec)

	btn, err := c.Toggle(context.Background())
	assert.ErrorIs(t, err, ErrNotLoggedIn)
	assert.Equal(t, []string{"/login"}, rec.Redirects())
	assert.Zero(t, b.Count(http.MethodPost, api.PathWatchlistAdd))
	assert.Zero(t, b.Count(http.MethodDelete, api.PathWatchlistRemove))
	assert.Empty(t, b.Calls())
	assert.False(t, btn.InWatchlist)
}

func TestMountAndToggle(t *testing.T) {
	b := apitest.New(t)
	rec := ui.NewRecorder(true)
	c := New(b.Client(), arrival, Session{LoggedIn: true, LoginURL: "/login"}, rec, rec)
	ctx := context.Background()

	btn := c.Mount(ctx)
	assert.Equal(t, "♡", btn.Icon)
	assert.Equal(t, 1, b.Count(http.MethodGet, api.PathWatchlistCheck+"329865"))

	btn, err := c.Toggle(ctx)
	require.NoError(t, err)
	assert.Equal(t, "♥", btn.Icon)
	assert.Equal(t, 1.2, btn.Scale)
	assert.True(t, b.InWatchlist("329865"))
	assert.Equal(t, 1, b.Count(http.MethodPost, api.PathWatchlistAdd))

	btn, err = c.Toggle(ctx)
	require.NoError(t, err)
	assert.Equal(t, "♡", btn.Icon)
	assert.Equal(t, 1.0, btn.Scale)
	assert.False(t, b.InWatchlist("329865"))
	assert.Equal(t, 1, b.Count(http.MethodDelete, api.PathWatchlistRemove+"329865"))
	assert.Equal(t, 1, b.Count(http.MethodGet, api.PathWatchlistCheck), "status is read once, on mount")
}

func TestToggleBeforeMountReadsStatus(t *testing.T) {
	b := apitest.New(t)
	b.SetInWatchlist("329865", true)
	rec := ui.NewRecorder(true)
	c := New(b.Client(), arrival, Session{LoggedIn: true}, rec, rec)

	btn, err := c.Toggle(context.Background())
	require.NoError(t, err)
	assert.False(t, btn.InWatchlist)
	assert.False(t, b.InWatchlist("329865"))
	assert.Equal(t, 1, b.Count(http.MethodGet, api.PathWatchlistCheck+"329865"))
	assert.Equal(t, 1, b.Count(http.MethodDelete, api.PathWatchlistRemove+"329865"))
	assert.Zero(t, b.Count(http.MethodPost, api.PathWatchlistAdd))
}

func TestMountPresent(t *testing.T) {
	b := apitest.New(t)
	b.SetInWatchlist("329865", true)
	rec := ui.NewRecorder(true)
	c := New(b.Client(), arrival, Session{LoggedIn: true}, rec, rec)

	assert.True(t, c.Mount(context.Background()).InWatchlist)
	assert.True(t, c.InWatchlist())
}

func TestToggleFailureLeavesState(t *testing.T) {
	b := apitest.New(t)
	b.Fail(api.PathWatchlistAdd, http.StatusOK, "Watchlist is full")
	rec := ui.NewRecorder(true)
	c := New(b.Client(), arrival, Session{LoggedIn: true}, rec, rec)
	ctx := context.Background()
	c.Mount(ctx)

	btn, err := c.Toggle(ctx)
	require.Error(t, err)
	assert.False(t, btn.InWatchlist)
	assert.False(t, c.InWatchlist())
	assert.Equal(t, []string{"Watchlist is full"}, rec.Alerts())
}
