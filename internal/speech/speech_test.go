package speech

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziadkadry99/moviemood/internal/movies"
	"github.com/ziadkadry99/moviemood/internal/ui"
)

const iPhoneUA = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15"
const desktopUA = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 Chrome/120.0"

// scriptedRecognizer returns queued transcripts, then blocks until the
// context ends.
type scriptedRecognizer struct {
	mu          sync.Mutex
	transcripts []string
	sessions    int
	langs       []string
}

func (r *scriptedRecognizer) Listen(ctx context.Context, lang string) (string, error) {
	r.mu.Lock()
	r.sessions++
	r.langs = append(r.langs, lang)
	if len(r.transcripts) == 0 {
		r.mu.Unlock()
		<-ctx.Done()
		return "", ctx.Err()
	}
	next := r.transcripts[0]
	r.transcripts = r.transcripts[1:]
	r.mu.Unlock()
	if next == "!error" {
		return "", errors.New("no-speech")
	}
	return next, nil
}

func (r *scriptedRecognizer) Sessions() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sessions
}

type recordingSynth struct {
	texts []string
}

func (s *recordingSynth) Speak(_ context.Context, text, _ string) error {
	s.texts = append(s.texts, text)
	return nil
}

func TestIsMobileOrTablet(t *testing.T) {
	tests := map[string]bool{
		iPhoneUA: true,
		"Mozilla/5.0 (Linux; Android 14; Pixel 8)":      true,
		"Mozilla/5.0 (iPad; CPU OS 16_0 like Mac OS X)": true,
		"Opera/9.80 (J2ME/MIDP; Opera Mini/9.80)":       true,
		"mozilla/5.0 (linux; android 10)":               true,
		desktopUA:                                       false,
		"":                                              false,
	}
	for ua, want := range tests {
		assert.Equal(t, want, IsMobileOrTablet(ua), ua)
	}
}

func TestDictateReplacesValue(t *testing.T) {
	rec := &scriptedRecognizer{transcripts: []string{" the thing "}}
	in := NewInput(Available(rec, nil), ui.NewRecorder(true), "en-US")

	field := &TextField{}
	field.Set("alien")
	require.NoError(t, in.Dictate(context.Background(), field))
	assert.Equal(t, "the thing", field.Value())
	assert.Equal(t, []string{"en-US"}, rec.langs)
}

func TestDictateUsesSelectedLanguage(t *testing.T) {
	rec := &scriptedRecognizer{transcripts: []string{"hola"}}
	in := NewInput(Available(rec, nil), ui.NewRecorder(true), "en-US")
	in.Language = func() string { return "es-ES" }

	require.NoError(t, in.Dictate(context.Background(), &TextField{}))
	assert.Equal(t, []string{"es-ES"}, rec.langs)
}

func TestDictateUnavailable(t *testing.T) {
	notes := ui.NewRecorder(true)
	in := NewInput(Unavailable(), notes, "en-US")

	field := &TextField{}
	field.Set("keep")
	err := in.Dictate(context.Background(), field)
	assert.ErrorIs(t, err, ErrUnsupported)
	assert.Equal(t, "keep", field.Value())
	assert.Equal(t, []string{UnsupportedRecognition}, notes.Notices())
}

func TestHotwordTriggersDictation(t *testing.T) {
	rec := &scriptedRecognizer{transcripts: []string{"hello there", "!error", "  Okay Buddy ", "blade runner"}}
	in := NewInput(Available(rec, nil), ui.NewRecorder(true), "en-US")
	field := &TextField{}
	h := NewHotword(in, field, "okay buddy", iPhoneUA)
	h.RetryDelay = time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	triggered := make(chan error, 1)
	h.OnTrigger = func(err error) { triggered <- err }

	done := make(chan error, 1)
	go func() { done <- h.Run(ctx) }()

	select {
	case err := <-triggered:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("hotword never triggered")
	}
	assert.Equal(t, "blade runner", field.Value())

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not stop after cancel")
	}
	assert.GreaterOrEqual(t, rec.Sessions(), 4)
}

// clipRecognizer hands each clip to whichever session is listening.
type clipRecognizer struct {
	clips chan string

	mu       sync.Mutex
	active   int
	sessions int
}

func (r *clipRecognizer) Listen(ctx context.Context, _ string) (string, error) {
	r.mu.Lock()
	r.active++
	r.sessions++
	r.mu.Unlock()
	defer func() {
		r.mu.Lock()
		r.active--
		r.mu.Unlock()
	}()

	select {
	case clip := <-r.clips:
		return clip, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (r *clipRecognizer) counts() (active, sessions int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.active, r.sessions
}

func TestDictationPausesHotword(t *testing.T) {
	rec := &clipRecognizer{clips: make(chan string)}
	in := NewInput(Available(rec, nil), ui.NewRecorder(true), "en-US")
	h := NewHotword(in, &TextField{}, "okay buddy", iPhoneUA)
	h.RetryDelay = time.Millisecond
	triggered := make(chan error, 1)
	h.OnTrigger = func(err error) { triggered <- err }

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go h.Run(ctx)

	require.Eventually(t, func() bool {
		active, _ := rec.counts()
		return active == 1
	}, 5*time.Second, time.Millisecond)

	field := &TextField{}
	dictated := make(chan error, 1)
	go func() { dictated <- in.Dictate(ctx, field) }()

	// The hotword session ends and only the dictation listens.
	require.Eventually(t, func() bool {
		active, sessions := rec.counts()
		return active == 1 && sessions == 2
	}, 5*time.Second, time.Millisecond)

	rec.clips <- "okay buddy"
	select {
	case err := <-dictated:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("dictation never finished")
	}
	assert.Equal(t, "okay buddy", field.Value())

	// Listening resumes afterwards.
	require.Eventually(t, func() bool {
		active, sessions := rec.counts()
		return active == 1 && sessions == 3
	}, 5*time.Second, time.Millisecond)
	select {
	case <-triggered:
		t.Fatal("dictated clip reached the hotword matcher")
	default:
	}
}

func TestHotwordDesktopDoesNotListen(t *testing.T) {
	rec := &scriptedRecognizer{}
	in := NewInput(Available(rec, nil), ui.NewRecorder(true), "en-US")
	h := NewHotword(in, &TextField{}, "okay buddy", desktopUA)

	assert.False(t, h.Enabled())
	assert.ErrorIs(t, h.Run(context.Background()), ErrUnsupported)
	assert.Zero(t, rec.Sessions())
}

func TestHotwordUnavailable(t *testing.T) {
	in := NewInput(Unavailable(), ui.NewRecorder(true), "en-US")
	h := NewHotword(in, &TextField{}, "okay buddy", iPhoneUA)
	assert.ErrorIs(t, h.Run(context.Background()), ErrUnsupported)
}

func TestHotwordMatchesExactly(t *testing.T) {
	h := NewHotword(NewInput(Unavailable(), ui.NewRecorder(true), "en-US"), &TextField{}, "okay buddy", iPhoneUA)
	assert.True(t, h.Matches("OKAY BUDDY"))
	assert.True(t, h.Matches("\tokay buddy\n"))
	assert.False(t, h.Matches("okay buddy please"))
	assert.False(t, h.Matches("ok buddy"))
}

func TestVoice(t *testing.T) {
	syn := &recordingSynth{}
	v := NewVoice(Available(nil, syn), ui.NewRecorder(true), "en-US")
	rating := 8.1
	ctx := context.Background()

	require.NoError(t, v.SpeakMovie(ctx, movies.Movie{ID: "1", Title: "Heat", ReleaseDate: "1995-12-15", VoteAverage: &rating, Overview: "A heist."}))
	require.NoError(t, v.SpeakSentiment(ctx, "Heat", "positive"))
	assert.Equal(t, []string{
		"Heat, released in 1995, rated 8.1 out of 10. A heist.",
		"The review of Heat is positive.",
	}, syn.texts)
}

func TestVoiceUnavailableAlerts(t *testing.T) {
	alerts := ui.NewRecorder(true)
	v := NewVoice(Unavailable(), alerts, "en-US")
	assert.ErrorIs(t, v.SpeakSentiment(context.Background(), "", "negative"), ErrUnsupported)
	assert.Equal(t, []string{UnsupportedSynthesis}, alerts.Alerts())
}

func TestSummariesTolerateMissingFields(t *testing.T) {
	assert.Equal(t, "Untitled.", MovieSummary(movies.Movie{ID: "1"}))
	assert.Equal(t, "This review is neutral.", SentimentSummary("", ""))
}
