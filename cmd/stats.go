package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/moviemood/internal/analytics"
	"github.com/ziadkadry99/moviemood/internal/progress"
	"github.com/ziadkadry99/moviemood/internal/render"
)

var (
	statsMovie string
	statsWatch string

	wordcloudMovie  string
	wordcloudOutput string
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the sentiment distribution of reviews",
	Long: `Shows how many reviews are positive, neutral and negative, overall or for one
movie, plus the word cloud URL. With --watch the numbers are refreshed on a cron
schedule such as "@every 30s" until interrupted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client, err := loadClient()
		if err != nil {
			return err
		}
		refresher := analytics.NewRefresher(client)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := render.WriteAnalytics(os.Stdout, refresher.Refresh(ctx, statsMovie)); err != nil {
			return err
		}
		if statsWatch == "" {
			return nil
		}

		c := cron.New()
		_, err = c.AddFunc(statsWatch, func() {
			a := refresher.Refresh(ctx, statsMovie)
			fmt.Printf("\n%s\n", time.Now().Format(time.TimeOnly))
			if err := render.WriteAnalytics(os.Stdout, a); err != nil {
				log.Printf("stats: %v", err)
			}
		})
		if err != nil {
			return fmt.Errorf("invalid schedule %q: %w", statsWatch, err)
		}
		c.Start()
		<-ctx.Done()
		<-c.Stop().Done()
		return nil
	},
}

var wordcloudCmd = &cobra.Command{
	Use:   "wordcloud",
	Short: "Download the review word cloud image",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, client, err := loadClient()
		if err != nil {
			return err
		}
		out := wordcloudOutput
		if out == "" {
			out = filepath.Join(cfg.DataDir, "wordcloud.png")
		}

		n, err := analytics.Download(context.Background(), client, wordcloudMovie, afero.NewOsFs(), out, progress.NewReporter(os.Stderr))
		if err != nil {
			return err
		}
		fmt.Printf("Saved %s (%d bytes)\n", out, n)
		return nil
	},
}

func init() {
	statsCmd.Flags().StringVarP(&statsMovie, "movie", "m", "", "movie title")
	statsCmd.Flags().StringVar(&statsWatch, "watch", "", `refresh on a cron schedule, e.g. "@every 30s"`)

	wordcloudCmd.Flags().StringVarP(&wordcloudMovie, "movie", "m", "", "movie title")
	wordcloudCmd.Flags().StringVarP(&wordcloudOutput, "output", "o", "", "output file (default <data_dir>/wordcloud.png)")

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(wordcloudCmd)
}
