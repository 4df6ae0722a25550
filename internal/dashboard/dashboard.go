// Package dashboard serves the browser front end. Each websocket connection
// gets its own page; user actions arrive as JSON messages and the updated
// regions go back as pre-rendered HTML fragments.
package dashboard

import (
	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/moviemood/internal/page"
	"github.com/ziadkadry99/moviemood/internal/ui"
)

// PageFactory builds the page for one connection. u collects the alerts,
// confirmations and redirects the page raises.
type PageFactory func(u ui.UI, c page.Context) *page.Page

// Dashboard provides the browser page and its websocket session endpoint.
type Dashboard struct {
	base    page.Context
	newPage PageFactory
}

// New creates a Dashboard. base is the injected page context; each
// connection overrides its user agent.
func New(base page.Context, newPage PageFactory) *Dashboard {
	return &Dashboard{base: base, newPage: newPage}
}

// RegisterRoutes mounts all dashboard routes onto the given router.
func (d *Dashboard) RegisterRoutes(r chi.Router) {
	r.Get("/", d.ServeIndex)
	r.Get("/api/page", d.handlePageInfo)
	r.Get("/ws/page", d.handleWebSocket)
}
