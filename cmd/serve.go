package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/moviemood/internal/dashboard"
	"github.com/ziadkadry99/moviemood/internal/page"
	"github.com/ziadkadry99/moviemood/internal/server"
	"github.com/ziadkadry99/moviemood/internal/ui"
)

var (
	servePort     int
	serveAllowAll bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Open moviemood as a local browser page",
	Long: `Starts a local web server that renders the movie page in your browser. Each
browser tab gets its own page session over a websocket.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, client, err := loadClient()
		if err != nil {
			return err
		}
		database, prefs, err := openPrefs(cfg)
		if err != nil {
			return err
		}
		defer database.Close()

		base := page.ContextFrom(cfg)
		d := dashboard.New(base, func(u ui.UI, c page.Context) *page.Page {
			return page.New(pageDeps(cfg, client, u, prefs), c, page.FeaturesFor(c))
		})
		srv := server.New(server.Config{Port: servePort, AllowAll: serveAllowAll}, d)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			srv.Shutdown(context.Background())
		}()

		fmt.Fprintf(os.Stderr, "moviemood v%s on http://localhost:%d\n", Version, servePort)
		fmt.Fprintf(os.Stderr, "  Backend: %s\n", client.BaseURL())
		fmt.Fprintf(os.Stderr, "  Preferences: %s\n", database.Path())

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 8080, "port to listen on")
	serveCmd.Flags().BoolVar(&serveAllowAll, "allow-all-origins", false, "allow cross-origin requests from any origin")
	rootCmd.AddCommand(serveCmd)
}
