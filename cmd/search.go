package cmd

import (
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/moviemood/internal/movies"
	"github.com/ziadkadry99/moviemood/internal/query"
	"github.com/ziadkadry99/moviemood/internal/render"
)

var (
	searchPage int

	filterGenre  string
	filterYear   string
	filterRating string
	filterPage   int
)

var searchCmd = &cobra.Command{
	Use:   "search [text...]",
	Short: "Search movies by title or genre",
	Long: `Searches movies by title. A query that is exactly a genre name (for example
"Horror") lists that genre instead. Without arguments the default listing is shown.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, client, err := loadClient()
		if err != nil {
			return err
		}
		kind, params := query.Resolve(strings.Join(args, " "))
		_, r := query.New(client, cfg.PageSize).Run(context.Background(), kind, params, searchPage)
		return render.WriteResults(os.Stdout, r)
	},
}

var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "List movies by genre, release year and minimum rating",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, client, err := loadClient()
		if err != nil {
			return err
		}
		params := query.Params{Genre: filterGenre, Year: filterYear, Rating: filterRating}
		_, r := query.New(client, cfg.PageSize).Run(context.Background(), query.KindFilter, params, filterPage)
		return render.WriteResults(os.Stdout, r)
	},
}

var similarCmd = &cobra.Command{
	Use:   "similar <movie-id>",
	Short: "List movies similar to the given movie",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, client, err := loadClient()
		if err != nil {
			return err
		}
		_, r := query.New(client, cfg.PageSize).ShowSimilar(context.Background(), movies.ID(args[0]))
		return render.WriteResults(os.Stdout, r)
	},
}

func init() {
	searchCmd.Flags().IntVarP(&searchPage, "page", "p", 1, "result page")

	filterCmd.Flags().StringVar(&filterGenre, "genre", "", "genre name")
	filterCmd.Flags().StringVar(&filterYear, "year", "", "release year")
	filterCmd.Flags().StringVar(&filterRating, "rating", "", "minimum rating")
	filterCmd.Flags().IntVarP(&filterPage, "page", "p", 1, "result page")

	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(filterCmd)
	rootCmd.AddCommand(similarCmd)
}
