package speech

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/ziadkadry99/moviemood/internal/movies"
	"github.com/ziadkadry99/moviemood/internal/ui"
)

// UnsupportedSynthesis is the alert shown when speech output is unavailable.
const UnsupportedSynthesis = "Text-to-speech is not supported here."

// Voice reads summaries aloud.
type Voice struct {
	provider Provider
	alerter  ui.Alerter
	lang     string
}

// NewVoice creates a speech output adapter.
func NewVoice(p Provider, alerter ui.Alerter, lang string) *Voice {
	return &Voice{provider: p, alerter: alerter, lang: lang}
}

// MovieSummary is the text spoken for a movie.
func MovieSummary(m movies.Movie) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s", m.DisplayTitle())
	if y := m.Year(); y != "—" {
		fmt.Fprintf(&b, ", released in %s", y)
	}
	if r := m.Rating(); r != "N/A" {
		fmt.Fprintf(&b, ", rated %s out of 10", r)
	}
	b.WriteString(".")
	if o := strings.TrimSpace(m.Overview); o != "" {
		b.WriteString(" ")
		b.WriteString(o)
	}
	return b.String()
}

// SentimentSummary is the text spoken for a review's sentiment.
func SentimentSummary(title, label string) string {
	if label == "" {
		label = "neutral"
	}
	if strings.TrimSpace(title) == "" {
		return fmt.Sprintf("This review is %s.", label)
	}
	return fmt.Sprintf("The review of %s is %s.", title, label)
}

// SpeakMovie reads a movie summary.
func (v *Voice) SpeakMovie(ctx context.Context, m movies.Movie) error {
	return v.speak(ctx, MovieSummary(m))
}

// SpeakSentiment reads the sentiment of a review.
func (v *Voice) SpeakSentiment(ctx context.Context, title, label string) error {
	return v.speak(ctx, SentimentSummary(title, label))
}

func (v *Voice) speak(ctx context.Context, text string) error {
	syn, ok := v.provider.Synthesizer()
	if !ok {
		v.alerter.Alert(UnsupportedSynthesis)
		return ErrUnsupported
	}
	if err := syn.Speak(ctx, text, v.lang); err != nil {
		log.Printf("speech: synthesis failed: %v", err)
		return fmt.Errorf("speaking: %w", err)
	}
	return nil
}
