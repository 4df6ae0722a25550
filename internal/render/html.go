package render

import (
	"bytes"
	"fmt"
	"html/template"
	"strconv"
)

var regions = template.Must(template.New("regions").Parse(regionTemplates))

type reviewEntryView struct {
	ReviewEntry
	TitleHTML template.HTML
	BodyHTML  template.HTML
}

type reviewsView struct {
	Entries []reviewEntryView
	Notice  string
	Error   string
}

type chartSlice struct {
	Label string
	Value int
	Color string
}

type analyticsView struct {
	Error        string
	Revision     int
	SVG          template.HTML
	Slices       []chartSlice
	WordCloudURL string
}

type watchlistView struct {
	WatchlistButton
	ScaleText string
}

// ResultsHTML draws the results region.
func ResultsHTML(r Results) (string, error) {
	return execute(RegionResults, r)
}

// PaginationHTML draws the pagination controls.
func PaginationHTML(p Pagination) (string, error) {
	return execute(RegionPagination, p)
}

// ReviewsHTML draws the review panel. Entry titles and bodies are inserted
// as already-escaped markup.
func ReviewsHTML(r Reviews) (string, error) {
	v := reviewsView{Notice: r.Notice, Error: r.Error}
	for _, e := range r.Entries {
		v.Entries = append(v.Entries, reviewEntryView{
			ReviewEntry: e,
			TitleHTML:   template.HTML(e.Title),
			BodyHTML:    template.HTML(e.Body),
		})
	}
	return execute(RegionReviews, v)
}

// AnalyticsHTML draws the chart and word cloud.
func AnalyticsHTML(a Analytics) (string, error) {
	v := analyticsView{Error: a.Error, WordCloudURL: a.WordCloudURL}
	if a.Chart != nil {
		v.Revision = a.Chart.Revision
		v.SVG = template.HTML(a.Chart.SVG(200))
		for i, label := range a.Chart.Labels {
			v.Slices = append(v.Slices, chartSlice{Label: label, Value: a.Chart.Values[i], Color: a.Chart.Colors[i]})
		}
	}
	return execute(RegionAnalytics, v)
}

// WatchlistHTML draws the watchlist button.
func WatchlistHTML(b WatchlistButton) (string, error) {
	return execute(RegionWatchlist, watchlistView{
		WatchlistButton: b,
		ScaleText:       strconv.FormatFloat(b.Scale, 'f', 1, 64),
	})
}

// FilterPanelHTML draws the filter panel toggle.
func FilterPanelHTML(f FilterPanel) (string, error) {
	return execute(RegionFilters, f)
}

// ThemeHTML draws the theme marker consumed by the page script.
func ThemeHTML(t Theme) (string, error) {
	return execute(RegionTheme, t)
}

func execute(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := regions.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("rendering %s: %w", name, err)
	}
	return buf.String(), nil
}
