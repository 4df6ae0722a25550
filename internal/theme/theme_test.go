package theme

import (
	"context"
	"testing"

	"github.com/ziadkadry99/moviemood/internal/db"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	d, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() error: %v", err)
	}
	t.Cleanup(func() { d.Close() })
	return NewStore(d)
}

func TestStoreDefaultsToLight(t *testing.T) {
	s := newStore(t)
	m, err := s.Get(context.Background())
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if m != Light {
		t.Errorf("expected light, got %s", m)
	}
}

func TestStoreSetOverwrites(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	for _, m := range []Mode{Dark, Light, Dark} {
		if err := s.Set(ctx, m); err != nil {
			t.Fatalf("Set(%s) error: %v", m, err)
		}
		got, err := s.Get(ctx)
		if err != nil {
			t.Fatalf("Get() error: %v", err)
		}
		if got != m {
			t.Errorf("Get() = %s, want %s", got, m)
		}
	}
}

func TestControllerToggleSurvivesReload(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	c := NewController(s)
	if c.Load(ctx).Dark {
		t.Fatal("expected light on first load")
	}
	view, err := c.Toggle(ctx)
	if err != nil {
		t.Fatalf("Toggle() error: %v", err)
	}
	if !view.Dark || view.ClassName() != "dark-mode" {
		t.Errorf("unexpected view %+v", view)
	}

	reloaded := NewController(s)
	if !reloaded.Load(ctx).Dark {
		t.Error("expected dark mode after reload")
	}
	if reloaded.Mode() != Dark {
		t.Errorf("Mode() = %s", reloaded.Mode())
	}
}
