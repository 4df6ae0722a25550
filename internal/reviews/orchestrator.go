// Package reviews submits, lists and deletes reviews, keeping the review
// panel and sentiment analytics in step with every change.
package reviews

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"

	"github.com/sourcegraph/conc"

	"github.com/ziadkadry99/moviemood/internal/api"
	"github.com/ziadkadry99/moviemood/internal/render"
	"github.com/ziadkadry99/moviemood/internal/ui"
)

// UnknownTitle is submitted when the title field is blank.
const UnknownTitle = "Unknown"

// EmptyReviewAlert is shown when the review text is blank.
const EmptyReviewAlert = "Write a review first."

// DeletePrompt is the confirmation question asked before deleting.
const DeletePrompt = "Are you sure you want to delete this review?"

// ErrEmptyReview rejects a submission whose text is blank.
var ErrEmptyReview = errors.New("review text is empty")

// Source is the subset of the API client used for reviews.
type Source interface {
	Reviews(ctx context.Context, f api.ReviewFilter) ([]api.Review, error)
	AddReview(ctx context.Context, title, text string) (*api.Review, error)
	DeleteReview(ctx context.Context, id string) error
}

// Analytics is refreshed after every change to the review set.
type Analytics interface {
	Refresh(ctx context.Context, scope string) render.Analytics
}

// Form is the review input fields.
type Form struct {
	Title string
	Text  string
}

// Outcome is the result of a submit or delete. Form is what the input fields
// should now show; Reviews and Analytics are set when Refreshed.
type Outcome struct {
	Form      Form
	Saved     *api.Review
	Cancelled bool
	Refreshed bool
	Reviews   render.Reviews
	Analytics render.Analytics
}

// Orchestrator drives the review panel.
type Orchestrator struct {
	src       Source
	analytics Analytics
	alerter   ui.Alerter
	confirmer ui.Confirmer
	scope     string

	mu     sync.Mutex
	filter api.ReviewFilter
	view   render.Reviews
}

// New creates an orchestrator. scope is the movie title of a detail view, or
// empty for all reviews. analytics may be nil on pages without a chart.
func New(src Source, analytics Analytics, alerter ui.Alerter, confirmer ui.Confirmer, scope string) *Orchestrator {
	return &Orchestrator{
		src:       src,
		analytics: analytics,
		alerter:   alerter,
		confirmer: confirmer,
		scope:     scope,
		filter:    api.ReviewFilter{MovieTitle: scope},
	}
}

// SetFilter changes the list filter. The detail view's movie title is kept
// when f does not name one.
func (o *Orchestrator) SetFilter(f api.ReviewFilter) {
	if f.MovieTitle == "" {
		f.MovieTitle = o.scope
	}
	o.mu.Lock()
	o.filter = f
	o.mu.Unlock()
}

// Filter is the current list filter.
func (o *Orchestrator) Filter() api.ReviewFilter {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.filter
}

// View is the last rendered review panel.
func (o *Orchestrator) View() render.Reviews {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.view
}

// List fetches reviews with the current filter and rebuilds the panel.
func (o *Orchestrator) List(ctx context.Context) render.Reviews {
	list, err := o.src.Reviews(ctx, o.Filter())

	var view render.Reviews
	if err != nil {
		log.Printf("reviews: list failed: %v", err)
		view = render.ReviewError(api.Reason(err))
	} else {
		view = render.ReviewList(list)
	}

	o.mu.Lock()
	o.view = view
	o.mu.Unlock()
	return view
}

// Submit validates and posts a review. Blank text is rejected without a
// request.
func (o *Orchestrator) Submit(ctx context.Context, f Form) (Outcome, error) {
	text := strings.TrimSpace(f.Text)
	if text == "" {
		o.alerter.Alert(EmptyReviewAlert)
		return Outcome{Form: f}, ErrEmptyReview
	}
	title := strings.TrimSpace(f.Title)
	if title == "" {
		title = UnknownTitle
	}

	saved, err := o.src.AddReview(ctx, title, text)
	if err != nil {
		log.Printf("reviews: submit failed: %v", err)
		o.alerter.Alert("Failed to submit review: " + api.Reason(err))
		return Outcome{Form: f}, err
	}

	out := o.refresh(ctx)
	out.Saved = saved
	return out, nil
}

// Delete removes a review once the user confirms. Declining issues no
// request and reports Cancelled.
func (o *Orchestrator) Delete(ctx context.Context, id string) (Outcome, error) {
	if !o.confirmer.Confirm(DeletePrompt) {
		return Outcome{Cancelled: true}, nil
	}
	if err := o.src.DeleteReview(ctx, id); err != nil {
		log.Printf("reviews: delete %s failed: %v", id, err)
		o.alerter.Alert(api.Reason(err))
		return Outcome{}, err
	}
	return o.refresh(ctx), nil
}

// refresh re-fetches the review list and analytics concurrently, once each.
func (o *Orchestrator) refresh(ctx context.Context) Outcome {
	out := Outcome{Refreshed: true}
	var wg conc.WaitGroup
	wg.Go(func() {
		out.Reviews = o.List(ctx)
	})
	if o.analytics != nil {
		wg.Go(func() {
			out.Analytics = o.analytics.Refresh(ctx, o.scope)
		})
	}
	wg.Wait()
	return out
}
