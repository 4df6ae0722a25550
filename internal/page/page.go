package page

import (
	"context"
	"log"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/sourcegraph/conc"

	"github.com/ziadkadry99/moviemood/internal/analytics"
	"github.com/ziadkadry99/moviemood/internal/layout"
	"github.com/ziadkadry99/moviemood/internal/movies"
	"github.com/ziadkadry99/moviemood/internal/query"
	"github.com/ziadkadry99/moviemood/internal/render"
	"github.com/ziadkadry99/moviemood/internal/reviews"
	"github.com/ziadkadry99/moviemood/internal/speech"
	"github.com/ziadkadry99/moviemood/internal/theme"
	"github.com/ziadkadry99/moviemood/internal/watchlist"
)

// Page holds one page's controllers. Fields for absent features are nil.
type Page struct {
	Features Features
	Context  Context

	Movies    *query.Orchestrator
	Reviews   *reviews.Orchestrator
	Analytics *analytics.Refresher
	Watchlist *watchlist.Controller
	Theme     *theme.Controller
	Layout    *layout.Controller
	Input     *speech.Input
	Voice     *speech.Voice
	Hotword   *speech.Hotword

	SearchField *speech.TextField
	TitleField  *speech.TextField
	ReviewField *speech.TextField

	mu      sync.Mutex
	results render.Results
	stop    context.CancelFunc
	wg      conc.WaitGroup
}

// New wires the controllers f calls for.
func New(d Deps, c Context, f Features) *Page {
	p := &Page{
		Features:    f,
		Context:     c,
		SearchField: &speech.TextField{},
		TitleField:  &speech.TextField{},
		ReviewField: &speech.TextField{},
	}
	if c.MovieTitle != "" {
		p.TitleField.Set(c.MovieTitle)
	}

	if f.Movies {
		p.Movies = query.New(d.Client, d.PageSize)
	}
	if f.Analytics {
		p.Analytics = analytics.NewRefresher(d.Client)
	}
	if f.Reviews {
		var refresher reviews.Analytics
		if p.Analytics != nil {
			refresher = p.Analytics
		}
		p.Reviews = reviews.New(d.Client, refresher, d.UI, d.UI, c.MovieTitle)
	}
	if f.Watchlist && c.IsDetail() {
		session := watchlist.Session{LoggedIn: c.LoggedIn, LoginURL: c.LoginURL}
		p.Watchlist = watchlist.New(d.Client, c.Movie(), session, d.UI, d.UI)
	}
	if f.Theme && d.Prefs != nil {
		p.Theme = theme.NewController(d.Prefs)
	}
	if f.Layout {
		p.Layout = layout.New(d.Breakpoint)
	}
	if f.Speech {
		p.Input = speech.NewInput(d.Speech, d.UI, c.Language)
		p.Voice = speech.NewVoice(d.Speech, d.UI, c.Language)
		p.Hotword = speech.NewHotword(p.Input, p.SearchField, d.Hotword, c.UserAgent)
	}
	return p
}

// Load performs the initial data load for every present region
// concurrently.
func (p *Page) Load(ctx context.Context) View {
	var v View
	var wg conc.WaitGroup
	if p.Movies != nil {
		wg.Go(func() {
			_, v.Results = p.Movies.Search(ctx, "")
		})
	}
	if p.Reviews != nil {
		wg.Go(func() { v.Reviews = p.Reviews.List(ctx) })
	}
	if p.Analytics != nil {
		wg.Go(func() { v.Analytics = p.Analytics.Refresh(ctx, p.Context.MovieTitle) })
	}
	if p.Watchlist != nil {
		wg.Go(func() { v.Watchlist = p.Watchlist.Mount(ctx) })
	}
	if p.Theme != nil {
		wg.Go(func() { v.Theme = p.Theme.Load(ctx) })
	}
	wg.Wait()

	if !v.Results.Stale {
		p.setResults(v.Results)
	}
	if p.Layout != nil {
		v.Filters = p.Layout.Reevaluate()
	}
	return v
}

// StartHotword begins hands-free listening in the background when the
// device and provider allow it. It reports whether listening started.
func (p *Page) StartHotword(ctx context.Context) bool {
	if p.Hotword == nil || !p.Hotword.Enabled() {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.stop != nil {
		return true
	}
	ctx, cancel := context.WithCancel(ctx)
	p.stop = cancel
	p.wg.Go(func() {
		if err := p.Hotword.Run(ctx); err != nil {
			log.Printf("page: hotword stopped: %v", err)
		}
	})
	return true
}

// Close stops background listening and waits for it to end.
func (p *Page) Close() {
	p.mu.Lock()
	stop := p.stop
	p.stop = nil
	p.mu.Unlock()
	if stop != nil {
		stop()
	}
	p.wg.Wait()
}

// Search runs a search box query.
func (p *Page) Search(ctx context.Context, text string) render.Results {
	_, r := p.Movies.Search(ctx, text)
	return p.rendered(r)
}

// ApplyFilters runs the filter panel selections.
func (p *Page) ApplyFilters(ctx context.Context, genre, year, rating string) render.Results {
	_, r := p.Movies.ApplyFilters(ctx, genre, year, rating)
	return p.rendered(r)
}

// Next moves to the next page of the last search or filter.
func (p *Page) Next(ctx context.Context) (render.Results, error) {
	_, r, err := p.Movies.Next(ctx)
	return p.rendered(r), err
}

// Prev moves to the previous page of the last search or filter.
func (p *Page) Prev(ctx context.Context) (render.Results, error) {
	_, r, err := p.Movies.Prev(ctx)
	return p.rendered(r), err
}

// ShowSimilar lists recommendations for id.
func (p *Page) ShowSimilar(ctx context.Context, id movies.ID) render.Results {
	_, r := p.Movies.ShowSimilar(ctx, id)
	return p.rendered(r)
}

// Results is the results region as last rendered.
func (p *Page) Results() render.Results {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.results
}

// FilterView is the filter panel state after the last render.
func (p *Page) FilterView() render.FilterPanel {
	if p.Layout == nil {
		return render.FilterPanel{}
	}
	return p.Layout.View()
}

func (p *Page) rendered(r render.Results) render.Results {
	if r.Stale {
		return r
	}
	p.setResults(r)
	if p.Layout != nil {
		p.Layout.Reevaluate()
	}
	return r
}

func (p *Page) setResults(r render.Results) {
	p.mu.Lock()
	p.results = r
	p.mu.Unlock()
}

// FindInResults narrows the displayed cards to titles containing term,
// ignoring case. A term with glob characters is matched against the whole
// title instead. No request is made.
func (p *Page) FindInResults(term string) render.Results {
	r := p.Results()
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" || len(r.Cards) == 0 {
		return r
	}
	glob := strings.ContainsAny(term, "*?[")
	var kept []render.Card
	for _, c := range r.Cards {
		title := strings.ToLower(c.Title)
		var ok bool
		if glob {
			ok, _ = doublestar.Match(term, title)
		} else {
			ok = strings.Contains(title, term)
		}
		if ok {
			kept = append(kept, c)
		}
	}
	r.Cards = kept
	return r
}
