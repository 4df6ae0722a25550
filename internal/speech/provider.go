// Package speech connects speech recognition and synthesis to text fields
// and spoken summaries. Both capabilities are optional: callers receive a
// Provider that says explicitly what is available.
package speech

import (
	"context"
	"errors"
	"regexp"
	"sync"
)

// ErrUnsupported is returned when the needed capability is absent.
var ErrUnsupported = errors.New("speech is not supported")

// Recognizer runs one recognition session and returns its transcript.
type Recognizer interface {
	Listen(ctx context.Context, lang string) (string, error)
}

// Synthesizer speaks text aloud.
type Synthesizer interface {
	Speak(ctx context.Context, text, lang string) error
}

// Provider is the capability set handed to the adapters.
type Provider struct {
	recognizer  Recognizer
	synthesizer Synthesizer
}

// Available builds a provider from the given capabilities; either may be
// nil.
func Available(r Recognizer, s Synthesizer) Provider {
	return Provider{recognizer: r, synthesizer: s}
}

// Unavailable is a provider with no capabilities.
func Unavailable() Provider {
	return Provider{}
}

// Recognizer returns the recognition capability, if any.
func (p Provider) Recognizer() (Recognizer, bool) {
	return p.recognizer, p.recognizer != nil
}

// Synthesizer returns the synthesis capability, if any.
func (p Provider) Synthesizer() (Synthesizer, bool) {
	return p.synthesizer, p.synthesizer != nil
}

var mobileUA = regexp.MustCompile(`(?i)Android|webOS|iPhone|iPad|iPod|BlackBerry|IEMobile|Opera Mini`)

// IsMobileOrTablet sniffs a user agent for phones and tablets.
func IsMobileOrTablet(userAgent string) bool {
	return mobileUA.MatchString(userAgent)
}

// Field is a text input speech can write into.
type Field interface {
	Set(value string)
}

// TextField is a concurrency-safe Field holding a string.
type TextField struct {
	mu    sync.Mutex
	value string
}

// Set replaces the value.
func (f *TextField) Set(value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.value = value
}

// Value is the current value.
func (f *TextField) Value() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.value
}
