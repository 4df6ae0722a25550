package cmd

import (
	"bytes"
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/ziadkadry99/moviemood/internal/api"
	"github.com/ziadkadry99/moviemood/internal/api/apitest"
	"github.com/ziadkadry99/moviemood/internal/page"
	"github.com/ziadkadry99/moviemood/internal/speech"
	"github.com/ziadkadry99/moviemood/internal/ui"
)

func newTestShell(t *testing.T) (*shell, *apitest.Backend, *bytes.Buffer) {
	t.Helper()
	b := apitest.New(t)
	rec := ui.NewRecorder(false)
	deps := page.Deps{
		Client:     b.Client(),
		UI:         rec,
		Speech:     speech.Unavailable(),
		PageSize:   20,
		Breakpoint: 768,
	}
	p := page.New(deps, page.Context{}, page.Features{Movies: true})
	t.Cleanup(p.Close)

	out := &bytes.Buffer{}
	return &shell{page: p, term: rec, out: out, triggers: make(chan string, 1)}, b, out
}

func TestShellLoopRunsHotwordSearch(t *testing.T) {
	sh, b, out := newTestShell(t)
	lines := make(chan input)
	ready := make(chan struct{}, 1)

	done := make(chan error, 1)
	go func() { done <- sh.loop(context.Background(), lines, ready) }()

	sh.triggers <- "horror"
	// lines is unbuffered: the loop only takes the line after the search
	// output is written.
	lines <- input{text: ":quit"}

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("loop: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("loop did not quit")
	}

	if !strings.Contains(out.String(), `Heard: "horror"`) {
		t.Errorf("expected the dictated text in output, got %q", out.String())
	}
	calls := b.CallsTo(http.MethodGet, api.PathFilter)
	if len(calls) != 1 || calls[0].Query.Get("genre") != "horror" {
		t.Errorf("expected one horror filter call, got %+v", calls)
	}
}

func TestShellLoopSignalsReady(t *testing.T) {
	sh, b, _ := newTestShell(t)
	lines := make(chan input, 2)
	ready := make(chan struct{}, 1)

	lines <- input{text: "heat"}
	close(lines)
	if err := sh.loop(context.Background(), lines, ready); err != nil {
		t.Fatalf("loop: %v", err)
	}

	select {
	case <-ready:
	default:
		t.Error("expected ready after the line was handled")
	}
	if got := b.Count(http.MethodGet, api.PathSearch); got != 1 {
		t.Errorf("expected one title search, got %d", got)
	}
}
