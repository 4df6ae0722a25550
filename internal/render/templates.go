package render

// Page regions addressed by appliers.
const (
	RegionResults    = "results"
	RegionPagination = "pagination"
	RegionReviews    = "reviews"
	RegionAnalytics  = "analytics"
	RegionWatchlist  = "watchlist"
	RegionFilters    = "filters"
	RegionTheme      = "theme"
)

// regionTemplates holds one html/template definition per page region.
const regionTemplates = `
{{define "results"}}
{{- if .Error}}<p class="error-message">{{.Error}}</p>
{{- else if .Notice}}<p class="no-results">{{.Notice}}</p>
{{- else}}{{range .Cards}}
<div class="movie-card" data-id="{{.ID}}">
  {{- if .HasPoster}}<img class="poster" src="{{.PosterURL}}" alt="{{.Title}}" loading="lazy" onerror="this.style.display='none'">{{end}}
  <h3 class="movie-title">{{.Title}}</h3>
  <p class="movie-meta"><span class="year">{{.Year}}</span> <span class="rating">⭐ {{.Rating}}</span></p>
  {{- if .Overview}}<p class="overview">{{.Overview}}</p>{{end}}
  <a class="details-link" href="{{.DetailsURL}}">Details</a>
  {{- if .TrailerURL}} <a class="trailer-link" href="{{.TrailerURL}}" target="_blank" rel="noopener">Trailer</a>{{end}}
  <button class="similar-btn" data-action="similar" data-id="{{.SimilarID}}">Find similar</button>
</div>
{{- end}}{{end}}
{{- end}}

{{define "pagination"}}
<div class="pagination"{{if not .Visible}} hidden{{end}}>
  <button id="prev-page" data-action="prev"{{if not .PrevEnabled}} disabled{{end}}>Previous</button>
  <span class="page-number">Page {{.Page}}</span>
  <button id="next-page" data-action="next"{{if not .NextEnabled}} disabled{{end}}>Next</button>
</div>
{{- end}}

{{define "reviews"}}
{{- if .Error}}<p class="error-message">{{.Error}}</p>
{{- else if .Notice}}<p class="no-reviews">{{.Notice}}</p>
{{- else}}{{range .Entries}}
<div class="review-entry" data-id="{{.ID}}">
  <h4 class="review-title">{{.TitleHTML}}</h4>
  <p class="review-meta"><span class="sentiment sentiment-{{.Sentiment}}">{{.Sentiment}}</span> · <span class="word-count">{{.WordCount}} words</span> · <span class="date">{{.Date}}</span></p>
  <p class="review-body">{{.BodyHTML}}</p>
  <button class="delete-review" data-action="review_delete" data-id="{{.ID}}">Delete</button>
</div>
{{- end}}{{end}}
{{- end}}

{{define "analytics"}}
{{- if .Error}}<p class="error-message">{{.Error}}</p>{{end}}
<div class="sentiment-chart" data-revision="{{.Revision}}">{{.SVG}}</div>
<ul class="chart-legend">{{range .Slices}}<li style="color: {{.Color}}">{{.Label}}: {{.Value}}</li>{{end}}</ul>
{{- if .WordCloudURL}}<img id="wordcloud" src="{{.WordCloudURL}}" alt="Word cloud">{{end}}
{{- end}}

{{define "watchlist"}}
{{- if .Visible}}<button id="watchlist-btn" data-action="watchlist_toggle" class="{{if .InWatchlist}}in-watchlist{{end}}" style="transform: scale({{.ScaleText}})" title="{{.Label}}">{{.Icon}}</button>{{end}}
{{- end}}

{{define "filters"}}
<button id="toggle-filters" data-action="filters_toggle"{{if not .ToggleVisible}} hidden{{end}}>{{.ToggleLabel}}</button>
<div id="filter-panel" data-visible="{{.PanelVisible}}"{{if not .PanelVisible}} hidden{{end}}></div>
{{- end}}

{{define "theme"}}
<span id="theme-state" data-theme="{{.ClassName}}"></span>
{{- end}}
`
