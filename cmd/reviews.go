package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/moviemood/internal/analytics"
	"github.com/ziadkadry99/moviemood/internal/api"
	"github.com/ziadkadry99/moviemood/internal/render"
	"github.com/ziadkadry99/moviemood/internal/reviews"
	"github.com/ziadkadry99/moviemood/internal/speech"
	"github.com/ziadkadry99/moviemood/internal/ui"
)

var (
	reviewMovie     string
	reviewSentiment string
	reviewOrder     string
	reviewMinWords  int
	reviewSpeak     bool
	reviewYes       bool
)

// autoConfirm answers yes to every confirmation.
type autoConfirm struct{}

func (autoConfirm) Confirm(string) bool { return true }

var reviewsCmd = &cobra.Command{
	Use:   "reviews",
	Short: "List, add and delete reviews",
}

var reviewsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List reviews with their sentiment",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client, err := loadClient()
		if err != nil {
			return err
		}
		o := reviews.New(client, nil, ui.NewTerminal(), ui.NewTerminal(), reviewMovie)
		o.SetFilter(api.ReviewFilter{
			MovieTitle: reviewMovie,
			Sentiment:  reviewSentiment,
			DateOrder:  reviewOrder,
			MinWords:   reviewMinWords,
		})
		return render.WriteReviews(os.Stdout, o.List(context.Background()))
	},
}

var reviewsAddCmd = &cobra.Command{
	Use:   "add <text...>",
	Short: "Submit a review; its sentiment is analysed by the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, client, err := loadClient()
		if err != nil {
			return err
		}
		term := ui.NewTerminal()
		ctx := context.Background()

		o := reviews.New(client, analytics.NewRefresher(client), term, term, reviewMovie)
		out, err := o.Submit(ctx, reviews.Form{Title: reviewMovie, Text: strings.Join(args, " ")})
		if err != nil {
			return err
		}
		fmt.Printf("Saved: %s (score %.2f, %d words)\n\n",
			out.Saved.SentimentLabel, out.Saved.SentimentScore, out.Saved.WordCount)
		if err := render.WriteReviews(os.Stdout, out.Reviews); err != nil {
			return err
		}
		fmt.Println()
		if err := render.WriteAnalytics(os.Stdout, out.Analytics); err != nil {
			return err
		}

		if reviewSpeak {
			voice := speech.NewVoice(createSpeechFromConfig(cfg), term, cfg.Language)
			voice.SpeakSentiment(ctx, out.Saved.MovieTitle, out.Saved.SentimentLabel)
		}
		return nil
	},
}

var reviewsDeleteCmd = &cobra.Command{
	Use:   "delete <review-id>",
	Short: "Delete a review after confirmation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client, err := loadClient()
		if err != nil {
			return err
		}
		term := ui.NewTerminal()
		var confirmer ui.Confirmer = term
		if reviewYes {
			confirmer = autoConfirm{}
		}

		o := reviews.New(client, analytics.NewRefresher(client), term, confirmer, reviewMovie)
		out, err := o.Delete(context.Background(), args[0])
		if err != nil {
			return err
		}
		if out.Cancelled {
			fmt.Println("Cancelled.")
			return nil
		}
		fmt.Printf("Deleted review %s.\n\n", args[0])
		return render.WriteReviews(os.Stdout, out.Reviews)
	},
}

func init() {
	reviewsCmd.PersistentFlags().StringVarP(&reviewMovie, "movie", "m", "", "movie title")

	reviewsListCmd.Flags().StringVar(&reviewSentiment, "sentiment", "", "only positive, neutral or negative reviews")
	reviewsListCmd.Flags().StringVar(&reviewOrder, "order", "", "sort by date: asc or desc")
	reviewsListCmd.Flags().IntVar(&reviewMinWords, "min-words", 0, "minimum word count")
	reviewsAddCmd.Flags().BoolVar(&reviewSpeak, "speak", false, "read the sentiment aloud")
	reviewsDeleteCmd.Flags().BoolVarP(&reviewYes, "yes", "y", false, "skip the confirmation prompt")

	reviewsCmd.AddCommand(reviewsListCmd, reviewsAddCmd, reviewsDeleteCmd)
	rootCmd.AddCommand(reviewsCmd)
}
