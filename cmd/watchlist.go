package cmd

import (
	"context"
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/moviemood/internal/movies"
	"github.com/ziadkadry99/moviemood/internal/render"
	"github.com/ziadkadry99/moviemood/internal/ui"
	"github.com/ziadkadry99/moviemood/internal/watchlist"
)

var watchlistTitle string

var watchlistCmd = &cobra.Command{
	Use:   "watchlist",
	Short: "Check or toggle a movie on your watchlist",
}

var watchlistStatusCmd = &cobra.Command{
	Use:   "status <movie-id>",
	Short: "Show whether a movie is on your watchlist",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newWatchlistController(args[0])
		if err != nil {
			return err
		}
		return render.WriteWatchlist(os.Stdout, c.Mount(context.Background()))
	},
}

var watchlistToggleCmd = &cobra.Command{
	Use:   "toggle <movie-id>",
	Short: "Add the movie if absent, remove it if present",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newWatchlistController(args[0])
		if err != nil {
			return err
		}
		b, err := c.Toggle(context.Background())
		if errors.Is(err, watchlist.ErrNotLoggedIn) {
			return nil
		}
		if err != nil {
			return err
		}
		return render.WriteWatchlist(os.Stdout, b)
	},
}

func newWatchlistController(id string) (*watchlist.Controller, error) {
	cfg, client, err := loadClient()
	if err != nil {
		return nil, err
	}
	term := ui.NewTerminal()
	movie := movies.Movie{ID: movies.ID(id), Title: watchlistTitle}
	session := watchlist.Session{LoggedIn: cfg.Page.LoggedIn, LoginURL: cfg.Page.LoginURL}
	return watchlist.New(client, movie, session, term, term), nil
}

func init() {
	watchlistToggleCmd.Flags().StringVarP(&watchlistTitle, "title", "t", "", "movie title stored with the entry")

	watchlistCmd.AddCommand(watchlistStatusCmd, watchlistToggleCmd)
	rootCmd.AddCommand(watchlistCmd)
}
