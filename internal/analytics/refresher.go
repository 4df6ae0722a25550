// Package analytics keeps the sentiment chart and word cloud current.
package analytics

import (
	"context"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/spf13/afero"

	"github.com/ziadkadry99/moviemood/internal/api"
	"github.com/ziadkadry99/moviemood/internal/progress"
	"github.com/ziadkadry99/moviemood/internal/render"
)

// Source is the subset of the API client the refresher needs.
type Source interface {
	Stats(ctx context.Context, movieTitle string) (api.Counts, error)
	WordCloudURL(movieTitle string, at time.Time) string
}

// Refresher owns the page's single chart instance. The first successful
// refresh builds it; later refreshes update its dataset in place.
type Refresher struct {
	src Source
	now func() time.Time

	mu    sync.Mutex
	chart *render.Chart
	built int
	view  render.Analytics
}

// NewRefresher creates a refresher with no chart yet.
func NewRefresher(src Source) *Refresher {
	return &Refresher{src: src, now: time.Now}
}

// Refresh fetches counts for scope (empty for all reviews) and rewrites the
// word cloud URL with a fresh cache-busting token.
func (r *Refresher) Refresh(ctx context.Context, scope string) render.Analytics {
	counts, err := r.src.Stats(ctx, scope)
	cloud := r.src.WordCloudURL(scope, r.now())

	r.mu.Lock()
	defer r.mu.Unlock()

	r.view.WordCloudURL = cloud
	r.view.Error = ""
	if err != nil {
		log.Printf("analytics: stats for %q failed: %v", scope, err)
		r.view.Error = "Failed to load analytics: " + api.Reason(err)
	} else if r.chart == nil {
		r.chart = render.NewChart(counts)
		r.built++
	} else {
		r.chart.Update(counts)
	}
	r.view.Chart = r.chart.Clone()
	return r.view
}

// View is the last rendered state.
func (r *Refresher) View() render.Analytics {
	r.mu.Lock()
	defer r.mu.Unlock()
	v := r.view
	v.Chart = r.chart.Clone()
	return v
}

// Built is how many times the chart has been constructed: zero or one.
func (r *Refresher) Built() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.built
}

// ImageSource opens the word cloud image.
type ImageSource interface {
	OpenWordCloud(ctx context.Context, movieTitle string) (io.ReadCloser, int64, error)
}

// Download saves the word cloud for scope to path on fs, reporting progress.
func Download(ctx context.Context, src ImageSource, scope string, fs afero.Fs, path string, rep progress.Reporter) (int64, error) {
	body, size, err := src.OpenWordCloud(ctx, scope)
	if err != nil {
		return 0, fmt.Errorf("fetching word cloud: %w", err)
	}
	defer body.Close()

	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return 0, fmt.Errorf("creating output directory: %w", err)
	}
	f, err := fs.Create(path)
	if err != nil {
		return 0, fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	rep.Start(size, filepath.Base(path))
	n, err := io.Copy(io.MultiWriter(f, progress.Writer(rep)), body)
	rep.Finish()
	if err != nil {
		return n, fmt.Errorf("writing %s: %w", path, err)
	}
	return n, nil
}
