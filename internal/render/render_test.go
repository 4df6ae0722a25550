package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/ziadkadry99/moviemood/internal/api"
	"github.com/ziadkadry99/moviemood/internal/movies"
)

func parse(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parsing html: %v", err)
	}
	return doc
}

func sample(n int) []movies.Movie {
	out := make([]movies.Movie, n)
	for i := range out {
		out[i] = movies.Movie{ID: movies.ID(string(rune('a' + i))), Title: "T"}
	}
	return out
}

func TestMovieResultsEmpty(t *testing.T) {
	r := MovieResults(nil, 1, true, 20)
	if r.Notice != NoMoviesNotice {
		t.Errorf("Notice = %q", r.Notice)
	}
	if r.Pagination.NextEnabled || r.Pagination.PrevEnabled {
		t.Errorf("expected both controls disabled, got %+v", r.Pagination)
	}

	html, err := ResultsHTML(r)
	if err != nil {
		t.Fatalf("ResultsHTML: %v", err)
	}
	if got := parse(t, html).Find(".no-results").Text(); got != "No movies found." {
		t.Errorf("notice text = %q", got)
	}
}

func TestMovieResultsPagination(t *testing.T) {
	tests := []struct {
		name      string
		n, page   int
		paginated bool
		want      Pagination
	}{
		{"full first page", 20, 1, true, Pagination{Visible: true, Page: 1, NextEnabled: true}},
		{"full middle page", 20, 3, true, Pagination{Visible: true, Page: 3, PrevEnabled: true, NextEnabled: true}},
		{"short page", 7, 2, true, Pagination{Visible: true, Page: 2, PrevEnabled: true}},
		{"recommendations", 20, 1, false, Pagination{Page: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := MovieResults(sample(tt.n), tt.page, tt.paginated, 20)
			if r.Pagination != tt.want {
				t.Errorf("Pagination = %+v, want %+v", r.Pagination, tt.want)
			}
			if len(r.Cards) != tt.n {
				t.Errorf("cards = %d, want %d", len(r.Cards), tt.n)
			}
		})
	}
}

func TestMovieError(t *testing.T) {
	r := MovieError("connection refused", 2, true)
	html, err := ResultsHTML(r)
	if err != nil {
		t.Fatalf("ResultsHTML: %v", err)
	}
	if got := parse(t, html).Find(".error-message").Text(); got != "Failed to load movies: connection refused" {
		t.Errorf("error text = %q", got)
	}
}

func TestCardHTML(t *testing.T) {
	rating := 8.0
	list := []movies.Movie{
		{ID: "1", Title: "Alien", PosterPath: "/alien.jpg", VoteAverage: &rating, ReleaseDate: "1979-05-25", YouTubeID: "LjLamj-b0I8"},
		{ID: "2"},
	}
	html, err := ResultsHTML(MovieResults(list, 1, true, 20))
	if err != nil {
		t.Fatalf("ResultsHTML: %v", err)
	}
	doc := parse(t, html)
	cards := doc.Find(".movie-card")
	if cards.Length() != 2 {
		t.Fatalf("expected 2 cards, got %d", cards.Length())
	}

	first := cards.Eq(0)
	if src, _ := first.Find("img.poster").Attr("src"); src != "https://image.tmdb.org/t/p/w200/alien.jpg" {
		t.Errorf("poster src = %q", src)
	}
	if href, _ := first.Find("a.details-link").Attr("href"); href != "/movie/1" {
		t.Errorf("details href = %q", href)
	}
	if first.Find("a.trailer-link").Length() != 1 {
		t.Error("expected trailer link")
	}
	if id, _ := first.Find("button.similar-btn").Attr("data-id"); id != "1" {
		t.Errorf("similar id = %q", id)
	}

	second := cards.Eq(1)
	if second.Find("img").Length() != 0 {
		t.Error("card without poster should have no image")
	}
	if second.Find("a.trailer-link").Length() != 0 {
		t.Error("card without trailer id should have no trailer link")
	}
	if got := second.Find(".movie-title").Text(); got != "Untitled" {
		t.Errorf("title = %q", got)
	}
	if got := second.Find(".year").Text(); got != "—" {
		t.Errorf("year = %q", got)
	}
	if got := second.Find(".rating").Text(); !strings.Contains(got, "N/A") {
		t.Errorf("rating = %q", got)
	}
}

func TestCardTitleIsEscaped(t *testing.T) {
	html, err := ResultsHTML(MovieResults([]movies.Movie{{ID: "1", Title: "<script>alert(1)</script>"}}, 1, true, 20))
	if err != nil {
		t.Fatalf("ResultsHTML: %v", err)
	}
	if strings.Contains(html, "<script>") {
		t.Errorf("unescaped title in %s", html)
	}
}

func TestReviewsHTMLEscapesBody(t *testing.T) {
	list := []api.Review{{
		ID:             "9",
		MovieTitle:     `Fight "Club"`,
		ReviewText:     `<script>alert("x")</script> loved it`,
		SentimentLabel: "positive",
		WordCount:      3,
		DateCreated:    "2024-01-02",
	}}
	html, err := ReviewsHTML(ReviewList(list))
	if err != nil {
		t.Fatalf("ReviewsHTML: %v", err)
	}
	doc := parse(t, html)
	body, _ := doc.Find(".review-body").Html()
	if strings.ContainsAny(body, "<>") {
		t.Errorf("review body contains markup: %s", body)
	}
	if doc.Find("script").Length() != 0 {
		t.Error("script element rendered")
	}
	if got := doc.Find(".review-body").Text(); got != `<script>alert("x")</script> loved it` {
		t.Errorf("decoded body = %q", got)
	}
	if id, _ := doc.Find(".delete-review").Attr("data-id"); id != "9" {
		t.Errorf("delete id = %q", id)
	}
	if got := doc.Find(".word-count").Text(); got != "3 words" {
		t.Errorf("word count = %q", got)
	}
}

func TestReviewListEmpty(t *testing.T) {
	r := ReviewList(nil)
	if r.Notice != NoReviewsNotice {
		t.Errorf("Notice = %q", r.Notice)
	}
}

func TestWatchlistButton(t *testing.T) {
	in := WatchlistButtonFor(true)
	if in.Icon != "♥" || in.Scale != 1.2 {
		t.Errorf("in-watchlist button = %+v", in)
	}
	out := WatchlistButtonFor(false)
	if out.Icon != "♡" || out.Scale != 1.0 {
		t.Errorf("not-in-watchlist button = %+v", out)
	}

	html, err := WatchlistHTML(in)
	if err != nil {
		t.Fatalf("WatchlistHTML: %v", err)
	}
	style, _ := parse(t, html).Find("#watchlist-btn").Attr("style")
	if !strings.Contains(style, "scale(1.2)") {
		t.Errorf("style = %q", style)
	}
}

func TestChartUpdateKeepsInstance(t *testing.T) {
	ch := NewChart(api.Counts{Positive: 1})
	ch.Update(api.Counts{Positive: 2, Neutral: 1, Negative: 1})
	if ch.Revision != 1 {
		t.Errorf("Revision = %d", ch.Revision)
	}
	if ch.Total() != 4 {
		t.Errorf("Total = %d", ch.Total())
	}
	svg := ch.SVG(100)
	if strings.Count(svg, "<path") != 3 {
		t.Errorf("expected 3 slices in %s", svg)
	}
	if single := NewChart(api.Counts{Negative: 5}).SVG(100); !strings.Contains(single, "<circle") {
		t.Errorf("single-slice chart should be a circle: %s", single)
	}
}

func TestWriteResults(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteResults(&buf, MovieResults(sample(2), 1, true, 20)); err != nil {
		t.Fatalf("WriteResults: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "TITLE") || !strings.Contains(out, "(prev)  page 1  (next)") {
		t.Errorf("unexpected output:\n%s", out)
	}

	buf.Reset()
	WriteResults(&buf, Results{Stale: true, Notice: "ignored"})
	if buf.Len() != 0 {
		t.Errorf("stale results should print nothing, got %q", buf.String())
	}
}

func TestWriteReviewsUnescapes(t *testing.T) {
	var buf bytes.Buffer
	r := ReviewList([]api.Review{{ID: "1", MovieTitle: "Tom & Jerry", ReviewText: "a < b"}})
	if err := WriteReviews(&buf, r); err != nil {
		t.Fatalf("WriteReviews: %v", err)
	}
	if !strings.Contains(buf.String(), "Tom & Jerry") || !strings.Contains(buf.String(), "a < b") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
}
