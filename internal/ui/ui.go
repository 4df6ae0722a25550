// Package ui holds the user-interaction capabilities controllers depend on:
// alerts, confirmations, redirects and informational notices.
package ui

import "sync"

// Alerter shows a blocking message, typically an error.
type Alerter interface {
	Alert(msg string)
}

// Confirmer asks a yes/no question.
type Confirmer interface {
	Confirm(prompt string) bool
}

// Navigator moves the user to another view.
type Navigator interface {
	Redirect(url string)
}

// Notifier shows a non-blocking informational message.
type Notifier interface {
	Notify(msg string)
}

// UI bundles every capability.
type UI interface {
	Alerter
	Confirmer
	Navigator
	Notifier
}

// Recorder collects interactions instead of showing them, answering every
// confirmation with the answer last set. The browser adapter drains it after
// each action.
type Recorder struct {
	mu        sync.Mutex
	answer    bool
	alerts    []string
	redirects []string
	notices   []string
	prompts   []string
}

// NewRecorder creates a recorder answering confirmations with answer.
func NewRecorder(answer bool) *Recorder {
	return &Recorder{answer: answer}
}

func (r *Recorder) Alert(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.alerts = append(r.alerts, msg)
}

func (r *Recorder) Confirm(prompt string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.prompts = append(r.prompts, prompt)
	return r.answer
}

// SetAnswer changes the answer given to later confirmations.
func (r *Recorder) SetAnswer(answer bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.answer = answer
}

func (r *Recorder) Redirect(url string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.redirects = append(r.redirects, url)
}

func (r *Recorder) Notify(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, msg)
}

// Alerts returns the recorded alerts.
func (r *Recorder) Alerts() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.alerts...)
}

// Redirects returns the recorded redirect targets.
func (r *Recorder) Redirects() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.redirects...)
}

// Notices returns the recorded notices.
func (r *Recorder) Notices() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.notices...)
}

// Prompts returns the confirmation questions asked.
func (r *Recorder) Prompts() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.prompts...)
}

// Drain returns and clears alerts, redirects and notices.
func (r *Recorder) Drain() (alerts, redirects, notices []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	alerts, redirects, notices = r.alerts, r.redirects, r.notices
	r.alerts, r.redirects, r.notices, r.prompts = nil, nil, nil, nil
	return alerts, redirects, notices
}
