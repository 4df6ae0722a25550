package speech

import (
	"context"
	"log"
	"strings"
	"time"
)

// Hotword listens continuously for a trigger phrase and starts dictation
// into the search field when it hears it. It only runs on phones and
// tablets.
type Hotword struct {
	input     *Input
	field     Field
	phrase    string
	userAgent string
	// RetryDelay is the pause after a failed session before listening again.
	RetryDelay time.Duration
	// OnTrigger, if set, is called after each triggered dictation.
	OnTrigger func(err error)
}

// NewHotword creates a listener for phrase that dictates into field.
func NewHotword(input *Input, field Field, phrase, userAgent string) *Hotword {
	return &Hotword{
		input:      input,
		field:      field,
		phrase:     phrase,
		userAgent:  userAgent,
		RetryDelay: time.Second,
	}
}

// Enabled reports whether the listener would run here.
func (h *Hotword) Enabled() bool {
	return IsMobileOrTablet(h.userAgent) && h.input.Available()
}

// Matches reports whether transcript is exactly the phrase, ignoring case
// and surrounding space.
func (h *Hotword) Matches(transcript string) bool {
	return strings.EqualFold(strings.TrimSpace(transcript), h.phrase)
}

// Run listens until ctx is cancelled, starting a new session whenever one
// ends. Sessions pause while Input.Dictate runs. It returns ErrUnsupported
// immediately when not Enabled.
func (h *Hotword) Run(ctx context.Context) error {
	if !h.Enabled() {
		return ErrUnsupported
	}
	rec, _ := h.input.provider.Recognizer()
	for {
		if ctx.Err() != nil {
			return nil
		}
		sctx, release, err := h.input.hotwordSession(ctx)
		if err != nil {
			return nil
		}
		transcript, err := rec.Listen(sctx, h.input.Lang())
		paused := sctx.Err() != nil
		release()
		if ctx.Err() != nil {
			return nil
		}
		if paused {
			continue
		}
		if err != nil {
			log.Printf("speech: hotword session failed: %v", err)
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(h.RetryDelay):
			}
			continue
		}
		if !h.Matches(transcript) {
			continue
		}
		log.Printf("speech: hotword detected")
		err = h.input.Dictate(ctx, h.field)
		if h.OnTrigger != nil {
			h.OnTrigger(err)
		}
	}
}
