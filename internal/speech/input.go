package speech

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/ziadkadry99/moviemood/internal/ui"
)

// UnsupportedRecognition is the notice shown when dictation is unavailable.
const UnsupportedRecognition = "Speech recognition is not supported here."

// Input dictates into text fields.
type Input struct {
	provider    Provider
	notifier    ui.Notifier
	defaultLang string
	// Language reads the language selector, if the page has one.
	Language func() string

	mu        sync.Mutex
	dictating int
	resume    chan struct{}
	hotCancel context.CancelFunc
}

// NewInput creates a dictation adapter using defaultLang when no language
// is selected.
func NewInput(p Provider, notifier ui.Notifier, defaultLang string) *Input {
	return &Input{provider: p, notifier: notifier, defaultLang: defaultLang}
}

// Available reports whether dictation can run.
func (in *Input) Available() bool {
	_, ok := in.provider.Recognizer()
	return ok
}

// Lang is the recognition language in effect.
func (in *Input) Lang() string {
	if in.Language != nil {
		if l := strings.TrimSpace(in.Language()); l != "" {
			return l
		}
	}
	return in.defaultLang
}

// Dictate runs a single recognition session and replaces field's value with
// the transcript. Without recognition it informs the user and does nothing.
func (in *Input) Dictate(ctx context.Context, field Field) error {
	rec, ok := in.provider.Recognizer()
	if !ok {
		in.notifier.Notify(UnsupportedRecognition)
		return ErrUnsupported
	}
	in.beginDictation()
	defer in.endDictation()

	transcript, err := rec.Listen(ctx, in.Lang())
	if err != nil {
		log.Printf("speech: recognition failed: %v", err)
		return fmt.Errorf("recognizing speech: %w", err)
	}
	if transcript = strings.TrimSpace(transcript); transcript != "" {
		field.Set(transcript)
	}
	return nil
}

// beginDictation stops any hotword session in flight and holds new ones
// back until endDictation.
func (in *Input) beginDictation() {
	in.mu.Lock()
	defer in.mu.Unlock()
	if in.dictating == 0 {
		in.resume = make(chan struct{})
	}
	in.dictating++
	if in.hotCancel != nil {
		in.hotCancel()
		in.hotCancel = nil
	}
}

func (in *Input) endDictation() {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.dictating--
	if in.dictating == 0 {
		close(in.resume)
	}
}

// hotwordSession waits until no dictation is running and returns a context
// for one hotword session. Dictation cancels it. release must be called
// when the session ends.
func (in *Input) hotwordSession(ctx context.Context) (session context.Context, release func(), err error) {
	for {
		in.mu.Lock()
		if in.dictating == 0 {
			sctx, cancel := context.WithCancel(ctx)
			in.hotCancel = cancel
			in.mu.Unlock()
			return sctx, func() {
				in.mu.Lock()
				in.hotCancel = nil
				in.mu.Unlock()
				cancel()
			}, nil
		}
		wait := in.resume
		in.mu.Unlock()

		select {
		case <-ctx.Done():
			return nil, nil, ctx.Err()
		case <-wait:
		}
	}
}
