package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/moviemood/internal/movies"
	"github.com/ziadkadry99/moviemood/internal/page"
	"github.com/ziadkadry99/moviemood/internal/query"
	"github.com/ziadkadry99/moviemood/internal/render"
	"github.com/ziadkadry99/moviemood/internal/reviews"
	"github.com/ziadkadry99/moviemood/internal/ui"
)

const shellHelp = `Type a title or genre to search. Commands:
  :next, :prev                     page through results
  :filter genre=X year=Y rating=Z  filter the listing
  :similar N                       movies similar to result N
  :find TEXT                       narrow the shown results (globs allowed)
  :reviews                         list reviews
  :review TITLE | TEXT             submit a review
  :delete ID                       delete a review
  :stats                           sentiment analytics
  :watch                           toggle the watchlist (movie pages)
  :theme                           toggle light/dark
  :listen                          dictate a search
  :help, :quit`

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Browse movies and reviews interactively",
	Long: `Opens an interactive session that behaves like the movie page: the default
listing, reviews and analytics load first, and every command redraws the
affected region. Set page.movie_id in the config to open a movie's detail page.`,
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

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		term := ui.NewTerminal()
		c := page.ContextFrom(cfg)
		p := page.New(pageDeps(cfg, client, term, prefs), c, page.FeaturesFor(c))
		defer p.Close()

		sh := &shell{page: p, term: term, out: os.Stdout, triggers: make(chan string, 1)}
		sh.drawView(p.Load(ctx))

		if p.Hotword != nil {
			p.Hotword.OnTrigger = func(err error) {
				if err != nil {
					return
				}
				select {
				case sh.triggers <- p.SearchField.Value():
				case <-ctx.Done():
				}
			}
			if p.StartHotword(ctx) {
				fmt.Fprintf(sh.out, "Say %q to start dictating.\n", cfg.Speech.Hotword)
			}
		}

		fmt.Fprintln(sh.out, "Type :help for commands.")
		ready := make(chan struct{}, 1)
		return sh.loop(ctx, readLines(ctx, term, ready), ready)
	},
}

// input is one line read at the prompt.
type input struct {
	text string
	err  error
}

// readLines prompts on its own goroutine. After each line it waits on ready
// so the next prompt follows the line's output.
func readLines(ctx context.Context, term *ui.Terminal, ready <-chan struct{}) <-chan input {
	lines := make(chan input)
	go func() {
		defer close(lines)
		for {
			text, err := term.Ask("moviemood")
			select {
			case lines <- input{text: text, err: err}:
			case <-ctx.Done():
				return
			}
			if err != nil {
				return
			}
			select {
			case <-ready:
			case <-ctx.Done():
				return
			}
		}
	}()
	return lines
}

// shell runs one interactive page session.
type shell struct {
	page *page.Page
	term ui.Alerter
	out  io.Writer
	// triggers carries hotword dictations to the loop.
	triggers chan string
}

// loop handles typed lines and hotword searches on one goroutine, so all
// output is written from here.
func (sh *shell) loop(ctx context.Context, lines <-chan input, ready chan<- struct{}) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case in, ok := <-lines:
			if !ok || errors.Is(in.err, io.EOF) {
				return nil
			}
			if in.err != nil {
				return in.err
			}
			if quit := sh.run(ctx, strings.TrimSpace(in.text)); quit {
				return nil
			}
			select {
			case ready <- struct{}{}:
			default:
			}
		case text := <-sh.triggers:
			fmt.Fprintf(sh.out, "\nHeard: %q\n", text)
			sh.results(sh.page.Search(ctx, text))
		}
	}
}

func (sh *shell) run(ctx context.Context, line string) bool {
	p := sh.page
	if !strings.HasPrefix(line, ":") {
		p.SearchField.Set(line)
		sh.results(p.Search(ctx, line))
		return false
	}

	verb, rest, _ := strings.Cut(strings.TrimPrefix(line, ":"), " ")
	rest = strings.TrimSpace(rest)
	switch verb {
	case "quit", "q", "exit":
		return true
	case "help", "h":
		fmt.Fprintln(sh.out, shellHelp)
	case "next":
		r, err := p.Next(ctx)
		sh.paged(r, err)
	case "prev":
		r, err := p.Prev(ctx)
		sh.paged(r, err)
	case "filter":
		f := parseFilter(rest)
		sh.results(p.ApplyFilters(ctx, f.Genre, f.Year, f.Rating))
	case "similar":
		id, err := sh.resultID(rest)
		if err != nil {
			sh.term.Alert(err.Error())
			return false
		}
		sh.results(p.ShowSimilar(ctx, id))
	case "find":
		sh.results(p.FindInResults(rest))
	case "reviews":
		if sh.needs(p.Reviews != nil, "reviews") {
			render.WriteReviews(sh.out, p.Reviews.List(ctx))
		}
	case "review":
		if !sh.needs(p.Reviews != nil, "reviews") {
			return false
		}
		title, text, ok := strings.Cut(rest, "|")
		if !ok {
			title, text = p.TitleField.Value(), rest
		}
		out, err := p.Reviews.Submit(ctx, reviews.Form{Title: strings.TrimSpace(title), Text: text})
		if err == nil {
			fmt.Fprintf(sh.out, "Saved: %s\n", out.Saved.SentimentLabel)
			sh.outcome(out)
		}
	case "delete":
		if !sh.needs(p.Reviews != nil, "reviews") {
			return false
		}
		out, err := p.Reviews.Delete(ctx, rest)
		if err == nil && !out.Cancelled {
			sh.outcome(out)
		}
	case "stats":
		if sh.needs(p.Analytics != nil, "analytics") {
			render.WriteAnalytics(sh.out, p.Analytics.Refresh(ctx, p.Context.MovieTitle))
		}
	case "watch":
		if sh.needs(p.Watchlist != nil, "the watchlist") {
			b, err := p.Watchlist.Toggle(ctx)
			if err == nil {
				render.WriteWatchlist(sh.out, b)
			}
		}
	case "theme":
		if sh.needs(p.Theme != nil, "themes") {
			t, _ := p.Theme.Toggle(ctx)
			fmt.Fprintf(sh.out, "Theme: %s\n", t.ClassName())
		}
	case "listen":
		if !sh.needs(p.Input != nil, "speech input") {
			return false
		}
		if err := p.Input.Dictate(ctx, p.SearchField); err == nil {
			fmt.Fprintf(sh.out, "Heard: %q\n", p.SearchField.Value())
			sh.results(p.Search(ctx, p.SearchField.Value()))
		}
	default:
		sh.term.Alert("unknown command :" + verb + " (try :help)")
	}
	return false
}

func (sh *shell) needs(present bool, what string) bool {
	if !present {
		sh.term.Alert("This page has no " + what + ".")
	}
	return present
}

func (sh *shell) drawView(v page.View) {
	p := sh.page
	if p.Theme != nil {
		fmt.Fprintf(sh.out, "Theme: %s\n", v.Theme.ClassName())
	}
	if p.Watchlist != nil {
		render.WriteWatchlist(sh.out, v.Watchlist)
	}
	if p.Movies != nil {
		sh.results(v.Results)
	}
	if p.Reviews != nil {
		fmt.Fprintln(sh.out)
		render.WriteReviews(sh.out, v.Reviews)
	}
	if p.Analytics != nil {
		fmt.Fprintln(sh.out)
		render.WriteAnalytics(sh.out, v.Analytics)
	}
}

func (sh *shell) results(r render.Results) {
	if r.Stale {
		return
	}
	render.WriteResults(sh.out, r)
}

func (sh *shell) paged(r render.Results, err error) {
	if errors.Is(err, query.ErrNotPaginated) {
		sh.term.Alert("Similar-movie results have no pages.")
		return
	}
	sh.results(r)
}

func (sh *shell) outcome(out reviews.Outcome) {
	if !out.Refreshed {
		return
	}
	render.WriteReviews(sh.out, out.Reviews)
	if sh.page.Analytics != nil {
		fmt.Fprintln(sh.out)
		render.WriteAnalytics(sh.out, out.Analytics)
	}
}

// resultID maps a result number to its movie id. Anything that is not a
// valid result number is taken as an id.
func (sh *shell) resultID(arg string) (movies.ID, error) {
	if arg == "" {
		return "", errors.New("usage: :similar N")
	}
	n, err := strconv.Atoi(arg)
	if err != nil {
		return movies.ID(arg), nil
	}
	cards := sh.page.Results().Cards
	if n < 1 || n > len(cards) {
		return movies.ID(arg), nil
	}
	return movies.ID(cards[n-1].SimilarID), nil
}

// parseFilter reads key=value pairs; unknown keys are ignored.
func parseFilter(s string) query.Params {
	var p query.Params
	for _, field := range strings.Fields(s) {
		k, v, ok := strings.Cut(field, "=")
		if !ok {
			continue
		}
		switch strings.ToLower(k) {
		case "genre":
			p.Genre = v
		case "year":
			p.Year = v
		case "rating":
			p.Rating = v
		}
	}
	return p
}

func init() {
	rootCmd.AddCommand(shellCmd)
}
