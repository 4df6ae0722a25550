package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool

	logCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "moviemood",
	Short: "Search movies, write reviews and track sentiment from the terminal",
	Long: `moviemood is a client for a movie review and sentiment server. It searches
and filters movies, finds similar titles, submits and lists reviews, shows
sentiment analytics and manages your watchlist. Run it as a one-shot CLI,
an interactive shell, a local browser page, or an MCP server for AI agents.`,
	SilenceUsage: true,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logCloser != nil {
			logCloser.Close()
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".moviemood.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
