package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/moviemood/internal/query"
	"github.com/ziadkadry99/moviemood/internal/render"
	"github.com/ziadkadry99/moviemood/internal/speech"
	"github.com/ziadkadry99/moviemood/internal/ui"
)

var speakIndex int

var speakCmd = &cobra.Command{
	Use:   "speak [text...]",
	Short: "Read a movie from the search results aloud",
	Long: `Searches like "moviemood search" and reads the chosen result's title, year,
rating and overview aloud. Audio is written as mp3 files under speech.out_dir.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, client, err := loadClient()
		if err != nil {
			return err
		}
		ctx := context.Background()

		kind, params := query.Resolve(strings.Join(args, " "))
		list, err := query.Fetch(ctx, client, kind, params, 1)
		if err != nil {
			return fmt.Errorf("searching: %w", err)
		}
		if speakIndex < 1 || speakIndex > len(list) {
			return fmt.Errorf("result %d not found (%d results)", speakIndex, len(list))
		}
		m := list[speakIndex-1]

		voice := speech.NewVoice(createSpeechFromConfig(cfg), ui.NewTerminal(), cfg.Language)
		fmt.Println(speech.MovieSummary(m))
		return voice.SpeakMovie(ctx, m)
	},
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Dictate a search query and run it",
	Long:  `Transcribes the next audio clip dropped into speech.clip_dir and searches for the transcript.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, client, err := loadClient()
		if err != nil {
			return err
		}
		ctx := context.Background()

		input := speech.NewInput(createSpeechFromConfig(cfg), ui.NewTerminal(), cfg.Language)
		field := &speech.TextField{}
		fmt.Fprintf(os.Stderr, "Listening for a clip in %s...\n", cfg.Speech.ClipDir)
		if err := input.Dictate(ctx, field); err != nil {
			return err
		}
		fmt.Printf("Heard: %q\n\n", field.Value())

		kind, params := query.Resolve(field.Value())
		_, r := query.New(client, cfg.PageSize).Run(ctx, kind, params, 1)
		return render.WriteResults(os.Stdout, r)
	},
}

func init() {
	speakCmd.Flags().IntVarP(&speakIndex, "index", "n", 1, "result number to read")

	rootCmd.AddCommand(speakCmd)
	rootCmd.AddCommand(listenCmd)
}
