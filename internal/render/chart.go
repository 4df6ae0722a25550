package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/ziadkadry99/moviemood/internal/api"
)

// ChartLabels are the pie slices in dataset order.
var ChartLabels = []string{"Positive", "Neutral", "Negative"}

var chartColors = []string{"#4caf50", "#ffc107", "#f44336"}

// Chart is the sentiment pie. It is built once per page and updated in place.
type Chart struct {
	Labels   []string
	Values   []int
	Colors   []string
	Revision int
}

// NewChart builds the chart for counts.
func NewChart(c api.Counts) *Chart {
	return &Chart{
		Labels: append([]string(nil), ChartLabels...),
		Values: []int{c.Positive, c.Neutral, c.Negative},
		Colors: append([]string(nil), chartColors...),
	}
}

// Update replaces the dataset and bumps the revision.
func (ch *Chart) Update(c api.Counts) {
	ch.Values[0], ch.Values[1], ch.Values[2] = c.Positive, c.Neutral, c.Negative
	ch.Revision++
}

// Total is the sum of all slices.
func (ch *Chart) Total() int {
	total := 0
	for _, v := range ch.Values {
		total += v
	}
	return total
}

// SVG draws the pie as a standalone SVG element of the given diameter.
func (ch *Chart) SVG(size int) string {
	r := float64(size) / 2
	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" data-revision="%d">`,
		size, size, size, size, ch.Revision)

	total := ch.Total()
	if total == 0 {
		fmt.Fprintf(&b, `<circle cx="%g" cy="%g" r="%g" fill="#ddd"/>`, r, r, r)
		b.WriteString(`</svg>`)
		return b.String()
	}

	angle := -math.Pi / 2
	for i, v := range ch.Values {
		if v == 0 {
			continue
		}
		if v == total {
			fmt.Fprintf(&b, `<circle cx="%g" cy="%g" r="%g" fill="%s"><title>%s: %d</title></circle>`,
				r, r, r, ch.Colors[i], ch.Labels[i], v)
			break
		}
		sweep := 2 * math.Pi * float64(v) / float64(total)
		x1, y1 := r+r*math.Cos(angle), r+r*math.Sin(angle)
		x2, y2 := r+r*math.Cos(angle+sweep), r+r*math.Sin(angle+sweep)
		large := 0
		if sweep > math.Pi {
			large = 1
		}
		fmt.Fprintf(&b, `<path d="M%g,%g L%.2f,%.2f A%g,%g 0 %d 1 %.2f,%.2f Z" fill="%s"><title>%s: %d</title></path>`,
			r, r, x1, y1, r, r, large, x2, y2, ch.Colors[i], ch.Labels[i], v)
		angle += sweep
	}
	b.WriteString(`</svg>`)
	return b.String()
}

// Clone copies the chart so a snapshot can leave its owner's lock.
func (ch *Chart) Clone() *Chart {
	if ch == nil {
		return nil
	}
	return &Chart{
		Labels:   append([]string(nil), ch.Labels...),
		Values:   append([]int(nil), ch.Values...),
		Colors:   append([]string(nil), ch.Colors...),
		Revision: ch.Revision,
	}
}
