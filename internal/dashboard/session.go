package dashboard

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/ziadkadry99/moviemood/internal/api"
	"github.com/ziadkadry99/moviemood/internal/movies"
	"github.com/ziadkadry99/moviemood/internal/page"
	"github.com/ziadkadry99/moviemood/internal/render"
	"github.com/ziadkadry99/moviemood/internal/reviews"
	"github.com/ziadkadry99/moviemood/internal/speech"
	"github.com/ziadkadry99/moviemood/internal/ui"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// request is the incoming WebSocket message format.
type request struct {
	Type string `json:"type"`

	Text   string    `json:"text,omitempty"`
	Genre  string    `json:"genre,omitempty"`
	Year   string    `json:"year,omitempty"`
	Rating string    `json:"rating,omitempty"`
	ID     movies.ID `json:"id,omitempty"`

	Title     string `json:"title,omitempty"`
	Review    string `json:"review,omitempty"`
	ReviewID  string `json:"review_id,omitempty"`
	Confirmed bool   `json:"confirmed,omitempty"`

	Sentiment string `json:"sentiment,omitempty"`
	DateOrder string `json:"date_order,omitempty"`
	MinWords  int    `json:"min_words,omitempty"`

	Field string `json:"field,omitempty"`
	Label string `json:"label,omitempty"`
	Width int    `json:"width,omitempty"`
}

// Frame types sent to the browser.
const (
	frameRegion   = "region"
	frameAlert    = "alert"
	frameRedirect = "redirect"
	frameNotice   = "notice"
	frameField    = "field"
	frameError    = "error"
)

// frame is the outgoing WebSocket message format.
type frame struct {
	Type    string `json:"type"`
	Region  string `json:"region,omitempty"`
	HTML    string `json:"html,omitempty"`
	Message string `json:"message,omitempty"`
	URL     string `json:"url,omitempty"`
	Field   string `json:"field,omitempty"`
	Value   string `json:"value,omitempty"`
	// Class is the body class for theme frames.
	Class string `json:"class,omitempty"`
}

// session is one connected browser page.
type session struct {
	conn *websocket.Conn
	rec  *ui.Recorder
	page *page.Page

	writeMu sync.Mutex
}

func (d *Dashboard) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("dashboard: websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	c := d.base
	if ua := r.UserAgent(); ua != "" {
		c.UserAgent = ua
	}
	s := &session{conn: conn, rec: ui.NewRecorder(false)}
	s.page = d.newPage(s.rec, c)
	defer s.page.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s.sendView(s.page.Load(ctx))
	s.flush()
	if s.page.Hotword != nil {
		s.page.Hotword.OnTrigger = func(err error) {
			if err == nil {
				s.sendField("search", s.page.SearchField.Value())
			}
			s.flush()
		}
		s.page.StartHotword(ctx)
	}

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("dashboard: websocket read: %v", err)
			}
			return
		}

		var req request
		if err := json.Unmarshal(msg, &req); err != nil {
			s.sendError("invalid message format")
			continue
		}
		s.handle(ctx, req)
		s.flush()
	}
}

func (s *session) handle(ctx context.Context, req request) {
	p := s.page
	if !s.supports(req.Type) {
		s.sendError("not available on this page: " + req.Type)
		return
	}

	switch req.Type {
	case "search":
		p.SearchField.Set(req.Text)
		s.sendResults(p.Search(ctx, req.Text))
	case "filter":
		s.sendResults(p.ApplyFilters(ctx, req.Genre, req.Year, req.Rating))
	case "next":
		r, err := p.Next(ctx)
		s.sendPaged(r, err)
	case "prev":
		r, err := p.Prev(ctx)
		s.sendPaged(r, err)
	case "similar":
		s.sendResults(p.ShowSimilar(ctx, req.ID))
	case "find":
		s.sendResults(p.FindInResults(req.Text))

	case "review_add":
		out, err := p.Reviews.Submit(ctx, reviews.Form{Title: req.Title, Text: req.Review})
		if err != nil {
			return
		}
		s.sendField("title", out.Form.Title)
		s.sendField("review", out.Form.Text)
		s.sendOutcome(out)
	case "review_delete":
		s.rec.SetAnswer(req.Confirmed)
		out, err := p.Reviews.Delete(ctx, req.ReviewID)
		if err != nil || out.Cancelled {
			return
		}
		s.sendOutcome(out)
	case "review_filter":
		p.Reviews.SetFilter(api.ReviewFilter{
			MovieTitle: req.Title,
			Sentiment:  req.Sentiment,
			DateOrder:  req.DateOrder,
			MinWords:   req.MinWords,
		})
		sendRegion(s, render.RegionReviews, render.ReviewsHTML, p.Reviews.List(ctx))
	case "stats":
		sendRegion(s, render.RegionAnalytics, render.AnalyticsHTML, p.Analytics.Refresh(ctx, req.Title))

	case "watchlist_toggle":
		b, _ := p.Watchlist.Toggle(ctx)
		sendRegion(s, render.RegionWatchlist, render.WatchlistHTML, b)
	case "theme_toggle":
		t, _ := p.Theme.Toggle(ctx)
		s.sendTheme(t)
	case "resize":
		sendRegion(s, render.RegionFilters, render.FilterPanelHTML, p.Layout.Resize(req.Width))
	case "filters_toggle":
		sendRegion(s, render.RegionFilters, render.FilterPanelHTML, p.Layout.Toggle())

	case "dictate":
		field := s.field(req.Field)
		if field == nil {
			s.sendError("unknown field: " + req.Field)
			return
		}
		if err := p.Input.Dictate(ctx, field); err == nil {
			s.sendField(req.Field, field.Value())
		}
	case "speak_sentiment":
		p.Voice.SpeakSentiment(ctx, req.Title, req.Label)

	default:
		s.sendError("unknown message type: " + req.Type)
	}
}

// supports reports whether the page has the controller a message needs.
func (s *session) supports(kind string) bool {
	p := s.page
	switch kind {
	case "search", "filter", "next", "prev", "similar", "find":
		return p.Movies != nil
	case "review_add", "review_delete", "review_filter":
		return p.Reviews != nil
	case "stats":
		return p.Analytics != nil
	case "watchlist_toggle":
		return p.Watchlist != nil
	case "theme_toggle":
		return p.Theme != nil
	case "resize", "filters_toggle":
		return p.Layout != nil
	case "dictate":
		return p.Input != nil
	case "speak_sentiment":
		return p.Voice != nil
	}
	return true
}

func (s *session) field(name string) *speech.TextField {
	switch name {
	case "search":
		return s.page.SearchField
	case "title":
		return s.page.TitleField
	case "review":
		return s.page.ReviewField
	}
	return nil
}

func (s *session) sendView(v page.View) {
	p := s.page
	if p.Movies != nil {
		s.sendResults(v.Results)
	}
	if p.Reviews != nil {
		sendRegion(s, render.RegionReviews, render.ReviewsHTML, v.Reviews)
	}
	if p.Analytics != nil {
		sendRegion(s, render.RegionAnalytics, render.AnalyticsHTML, v.Analytics)
	}
	if p.Watchlist != nil {
		sendRegion(s, render.RegionWatchlist, render.WatchlistHTML, v.Watchlist)
	}
	if p.Layout != nil {
		sendRegion(s, render.RegionFilters, render.FilterPanelHTML, v.Filters)
	}
	if p.Theme != nil {
		s.sendTheme(v.Theme)
	}
}

// sendResults redraws the results and pagination regions. Stale results
// are dropped.
func (s *session) sendResults(r render.Results) {
	if r.Stale {
		return
	}
	sendRegion(s, render.RegionResults, render.ResultsHTML, r)
	sendRegion(s, render.RegionPagination, render.PaginationHTML, r.Pagination)
	if s.page.Layout != nil {
		sendRegion(s, render.RegionFilters, render.FilterPanelHTML, s.page.FilterView())
	}
}

func (s *session) sendPaged(r render.Results, err error) {
	if err != nil {
		s.sendError(err.Error())
		return
	}
	s.sendResults(r)
}

func (s *session) sendOutcome(out reviews.Outcome) {
	if !out.Refreshed {
		return
	}
	sendRegion(s, render.RegionReviews, render.ReviewsHTML, out.Reviews)
	if s.page.Analytics != nil {
		sendRegion(s, render.RegionAnalytics, render.AnalyticsHTML, out.Analytics)
	}
}

func (s *session) sendTheme(t render.Theme) {
	html, err := render.ThemeHTML(t)
	if err != nil {
		log.Printf("dashboard: render theme: %v", err)
		return
	}
	s.send(frame{Type: frameRegion, Region: render.RegionTheme, HTML: html, Class: t.ClassName()})
}

func (s *session) sendField(name, value string) {
	s.send(frame{Type: frameField, Field: name, Value: value})
}

func (s *session) sendError(msg string) {
	s.send(frame{Type: frameError, Message: msg})
}

// flush forwards the alerts, redirects and notices the page raised.
func (s *session) flush() {
	alerts, redirects, notices := s.rec.Drain()
	for _, a := range alerts {
		s.send(frame{Type: frameAlert, Message: a})
	}
	for _, n := range notices {
		s.send(frame{Type: frameNotice, Message: n})
	}
	for _, u := range redirects {
		s.send(frame{Type: frameRedirect, URL: u})
	}
}

func (s *session) send(f frame) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if err := s.conn.WriteJSON(f); err != nil {
		log.Printf("dashboard: websocket write: %v", err)
	}
}

// sendRegion renders v with draw and sends it as a region frame.
func sendRegion[T any](s *session, region string, draw func(T) (string, error), v T) {
	html, err := draw(v)
	if err != nil {
		log.Printf("dashboard: render %s: %v", region, err)
		s.sendError("failed to render " + region)
		return
	}
	s.send(frame{Type: frameRegion, Region: region, HTML: html})
}
