package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// WriteResults prints the results region as a numbered table.
func WriteResults(w io.Writer, r Results) error {
	if r.Stale {
		return nil
	}
	if r.Error != "" {
		_, err := fmt.Fprintln(w, r.Error)
		return err
	}
	if r.Notice != "" {
		_, err := fmt.Fprintln(w, r.Notice)
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tTITLE\tYEAR\tRATING\tID\tTRAILER")
	for i, c := range r.Cards {
		trailer := c.TrailerURL
		if trailer == "" {
			trailer = "-"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n", i+1, c.Title, c.Year, c.Rating, c.ID, trailer)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	return WritePagination(w, r.Pagination)
}

// WritePagination prints the pagination line, if visible.
func WritePagination(w io.Writer, p Pagination) error {
	if !p.Visible {
		return nil
	}
	prev, next := "prev", "next"
	if !p.PrevEnabled {
		prev = "(" + prev + ")"
	}
	if !p.NextEnabled {
		next = "(" + next + ")"
	}
	_, err := fmt.Fprintf(w, "%s  page %d  %s\n", prev, p.Page, next)
	return err
}

// WriteReviews prints the review panel. Bodies are shown as submitted.
func WriteReviews(w io.Writer, r Reviews) error {
	if r.Error != "" {
		_, err := fmt.Fprintln(w, r.Error)
		return err
	}
	if r.Notice != "" {
		_, err := fmt.Fprintln(w, r.Notice)
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tSENTIMENT\tWORDS\tDATE\tREVIEW")
	for _, e := range r.Entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%s\n",
			e.ID, unescape(e.Title), e.Sentiment, e.WordCount, e.Date, truncate(unescape(e.Body), 60))
	}
	return tw.Flush()
}

// WriteAnalytics prints sentiment counts with a bar per slice.
func WriteAnalytics(w io.Writer, a Analytics) error {
	if a.Error != "" {
		if _, err := fmt.Fprintln(w, a.Error); err != nil {
			return err
		}
	}
	if a.Chart != nil {
		total := a.Chart.Total()
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for i, label := range a.Chart.Labels {
			v := a.Chart.Values[i]
			pct := 0.0
			if total > 0 {
				pct = 100 * float64(v) / float64(total)
			}
			fmt.Fprintf(tw, "%s\t%d\t%5.1f%%\t%s\n", label, v, pct, strings.Repeat("█", int(pct/5)))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	if a.WordCloudURL != "" {
		_, err := fmt.Fprintf(w, "Word cloud: %s\n", a.WordCloudURL)
		return err
	}
	return nil
}

// WriteWatchlist prints the watchlist button state.
func WriteWatchlist(w io.Writer, b WatchlistButton) error {
	if !b.Visible {
		return nil
	}
	_, err := fmt.Fprintf(w, "%s %s\n", b.Icon, b.Label)
	return err
}

var unescaper = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#39;", "'",
	"&#x2F;", "/",
	"&#x60;", "`",
	"&#x3D;", "=",
)

func unescape(s string) string {
	return unescaper.Replace(s)
}

func truncate(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
