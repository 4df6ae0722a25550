// Package layout decides whether the filter panel is shown inline or behind
// a toggle, depending on viewport width.
package layout

import (
	"sync"

	"github.com/ziadkadry99/moviemood/internal/render"
)

// Toggle button labels.
const (
	ShowFilters = "Show Filters"
	HideFilters = "Hide Filters"
)

// Controller tracks the viewport width and the manual toggle.
type Controller struct {
	breakpoint int

	mu    sync.Mutex
	width int
	view  render.FilterPanel
}

// New creates a controller assuming a wide viewport until Resize.
func New(breakpoint int) *Controller {
	c := &Controller{breakpoint: breakpoint, width: breakpoint + 1}
	c.view = c.evaluate()
	return c
}

// Resize records a new width and re-applies the layout rule.
func (c *Controller) Resize(width int) render.FilterPanel {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.width = width
	c.view = c.evaluate()
	return c.view
}

// Reevaluate re-applies the layout rule for the current width, collapsing a
// manually opened panel on narrow viewports.
func (c *Controller) Reevaluate() render.FilterPanel {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.view = c.evaluate()
	return c.view
}

// Toggle shows or hides the panel on a narrow viewport. On a wide viewport
// the panel is always shown and the toggle does nothing.
func (c *Controller) Toggle() render.FilterPanel {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.narrow() {
		return c.view
	}
	c.view.PanelVisible = !c.view.PanelVisible
	if c.view.PanelVisible {
		c.view.ToggleLabel = HideFilters
	} else {
		c.view.ToggleLabel = ShowFilters
	}
	return c.view
}

// View is the current state.
func (c *Controller) View() render.FilterPanel {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view
}

func (c *Controller) narrow() bool {
	return c.width <= c.breakpoint
}

func (c *Controller) evaluate() render.FilterPanel {
	if c.narrow() {
		return render.FilterPanel{PanelVisible: false, ToggleVisible: true, ToggleLabel: ShowFilters}
	}
	return render.FilterPanel{PanelVisible: true, ToggleVisible: false, ToggleLabel: ShowFilters}
}
