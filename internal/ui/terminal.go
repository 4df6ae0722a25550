package ui

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/manifoldco/promptui"
)

// Terminal implements UI with promptui on an interactive terminal.
type Terminal struct {
	In  io.ReadCloser
	Out io.WriteCloser
}

// NewTerminal uses stdin and stdout.
func NewTerminal() *Terminal {
	return &Terminal{In: os.Stdin, Out: os.Stdout}
}

func (t *Terminal) Alert(msg string) {
	fmt.Fprintf(t.Out, "⚠  %s\n", msg)
}

// Confirm returns true only for an explicit yes.
func (t *Terminal) Confirm(prompt string) bool {
	p := promptui.Prompt{
		Label:     prompt,
		IsConfirm: true,
		Stdin:     t.In,
		Stdout:    t.Out,
	}
	_, err := p.Run()
	return err == nil
}

func (t *Terminal) Redirect(url string) {
	fmt.Fprintf(t.Out, "Please log in to continue: %s\n", url)
}

func (t *Terminal) Notify(msg string) {
	fmt.Fprintln(t.Out, msg)
}

// Ask reads a line of input. It returns io.EOF when the user interrupts.
func (t *Terminal) Ask(label string) (string, error) {
	p := promptui.Prompt{
		Label:  label,
		Stdin:  t.In,
		Stdout: t.Out,
	}
	answer, err := p.Run()
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
		return "", io.EOF
	}
	return answer, err
}

// Choose shows a selection list and returns the chosen index.
func (t *Terminal) Choose(label string, items []string) (int, error) {
	s := promptui.Select{
		Label:  label,
		Items:  items,
		Stdin:  t.In,
		Stdout: t.Out,
	}
	i, _, err := s.Run()
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
		return 0, io.EOF
	}
	return i, err
}
