// Package progress reports byte progress of downloads.
package progress

import (
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
)

// Reporter provides progress feedback while bytes are transferred.
type Reporter interface {
	// Start begins a transfer of total bytes, or -1 when unknown.
	Start(total int64, description string)
	Add(n int)
	Finish()
}

// NewReporter returns a TerminalReporter if running in an interactive terminal,
// or a CIReporter if the CI environment variable is set.
func NewReporter(out io.Writer) Reporter {
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		return &CIReporter{Out: out}
	}
	return &TerminalReporter{Out: out}
}

// Writer adapts r so that io.Copy through it reports each chunk.
func Writer(r Reporter) io.Writer {
	return reportWriter{r}
}

type reportWriter struct {
	r Reporter
}

func (w reportWriter) Write(p []byte) (int, error) {
	w.r.Add(len(p))
	return len(p), nil
}

// TerminalReporter displays a progress bar in the terminal.
type TerminalReporter struct {
	Out io.Writer
	bar *progressbar.ProgressBar
}

func (r *TerminalReporter) Start(total int64, description string) {
	r.bar = progressbar.NewOptions64(total,
		progressbar.OptionSetWriter(r.Out),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowBytes(true),
		progressbar.OptionClearOnFinish(),
	)
}

func (r *TerminalReporter) Add(n int) {
	if r.bar != nil {
		_ = r.bar.Add(n)
	}
}

func (r *TerminalReporter) Finish() {
	if r.bar != nil {
		_ = r.bar.Finish()
	}
}

// CIReporter prints line-by-line progress suitable for CI logs.
type CIReporter struct {
	Out         io.Writer
	total       int64
	done        int64
	description string
}

func (r *CIReporter) Start(total int64, description string) {
	r.total, r.done, r.description = total, 0, description
	if total < 0 {
		fmt.Fprintf(r.Out, "%s: starting\n", description)
		return
	}
	fmt.Fprintf(r.Out, "%s: starting (%d bytes)\n", description, total)
}

func (r *CIReporter) Add(n int) {
	r.done += int64(n)
}

func (r *CIReporter) Finish() {
	fmt.Fprintf(r.Out, "%s: done (%d bytes)\n", r.description, r.done)
}

// Nop discards progress.
type Nop struct{}

func (Nop) Start(int64, string) {}
func (Nop) Add(int)             {}
func (Nop) Finish()             {}
