package layout

import (
	"testing"

	"github.com/ziadkadry99/moviemood/internal/render"
)

func TestResize(t *testing.T) {
	tests := []struct {
		width int
		want  render.FilterPanel
	}{
		{1024, render.FilterPanel{PanelVisible: true, ToggleLabel: ShowFilters}},
		{769, render.FilterPanel{PanelVisible: true, ToggleLabel: ShowFilters}},
		{768, render.FilterPanel{ToggleVisible: true, ToggleLabel: ShowFilters}},
		{375, render.FilterPanel{ToggleVisible: true, ToggleLabel: ShowFilters}},
	}
	c := New(768)
	for _, tt := range tests {
		if got := c.Resize(tt.width); got != tt.want {
			t.Errorf("Resize(%d) = %+v, want %+v", tt.width, got, tt.want)
		}
	}
}

func TestToggleOnNarrow(t *testing.T) {
	c := New(768)
	c.Resize(400)

	v := c.Toggle()
	if !v.PanelVisible || v.ToggleLabel != HideFilters {
		t.Errorf("after first toggle: %+v", v)
	}
	v = c.Toggle()
	if v.PanelVisible || v.ToggleLabel != ShowFilters {
		t.Errorf("after second toggle: %+v", v)
	}
}

func TestToggleOnWideIsNoop(t *testing.T) {
	c := New(768)
	before := c.View()
	if after := c.Toggle(); after != before {
		t.Errorf("toggle changed wide layout: %+v -> %+v", before, after)
	}
}

func TestReevaluateCollapsesOpenPanel(t *testing.T) {
	c := New(768)
	c.Resize(500)
	c.Toggle()
	v := c.Reevaluate()
	if v.PanelVisible || v.ToggleLabel != ShowFilters {
		t.Errorf("Reevaluate() = %+v", v)
	}
}
