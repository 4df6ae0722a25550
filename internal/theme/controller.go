package theme

import (
	"context"
	"log"
	"sync"

	"github.com/ziadkadry99/moviemood/internal/render"
)

// Preferences is where the mode is persisted.
type Preferences interface {
	Get(ctx context.Context) (Mode, error)
	Set(ctx context.Context, m Mode) error
}

// Controller holds the page's current mode.
type Controller struct {
	prefs Preferences

	mu   sync.Mutex
	mode Mode
}

// NewController creates a controller in light mode until Load.
func NewController(prefs Preferences) *Controller {
	return &Controller{prefs: prefs, mode: Light}
}

// Load applies the persisted mode. A read failure keeps light mode.
func (c *Controller) Load(ctx context.Context) render.Theme {
	m, err := c.prefs.Get(ctx)
	if err != nil {
		log.Printf("theme: %v", err)
		m = Light
	}
	c.mu.Lock()
	c.mode = m
	c.mu.Unlock()
	return render.Theme{Dark: m == Dark}
}

// Toggle flips the mode and persists it. The new mode applies to the page
// even if saving fails.
func (c *Controller) Toggle(ctx context.Context) (render.Theme, error) {
	c.mu.Lock()
	if c.mode == Dark {
		c.mode = Light
	} else {
		c.mode = Dark
	}
	m := c.mode
	c.mu.Unlock()

	view := render.Theme{Dark: m == Dark}
	if err := c.prefs.Set(ctx, m); err != nil {
		log.Printf("theme: %v", err)
		return view, err
	}
	return view, nil
}

// Mode is the current mode.
func (c *Controller) Mode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}
