// Package gameio defines the input/output seam between the game core and
// whatever is driving it (stdin, the TUI, or a test script). The core only
// ever emits plain narrative strings through this interface; any styling or
// pacing belongs to the implementation.
package gameio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
)

// ErrInterrupted is returned by ReadLine when the player interrupts the
// session (for example closing the TUI mid-puzzle). Callers treat it like an
// explicit quit at the nearest prompt boundary.
var ErrInterrupted = errors.New("input interrupted")

// Terminal is a single-line text input source and plain text output sink.
type Terminal interface {
	// ReadLine shows the prompt and blocks for one line of input. The
	// returned line is not trimmed or normalized.
	ReadLine(prompt string) (string, error)
	// Print writes a plain string followed by a newline.
	Print(text string)
	// PrintSlowly writes a plain string with pacing, for dramatic passages.
	PrintSlowly(text string)
}

// StdTerminal is a Terminal over an io.Reader/io.Writer pair, usually
// stdin/stdout.
type StdTerminal struct {
	in    *bufio.Reader
	out   io.Writer
	delay time.Duration
}

func NewStdTerminal(in io.Reader, out io.Writer, delay time.Duration) *StdTerminal {
	return &StdTerminal{
		in:    bufio.NewReader(in),
		out:   out,
		delay: delay,
	}
}

func (t *StdTerminal) ReadLine(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprint(t.out, prompt)
	}
	line, err := t.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line == "" {
			return "", ErrInterrupted
		}
		if !errors.Is(err, io.EOF) {
			return "", err
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (t *StdTerminal) Print(text string) {
	fmt.Fprintln(t.out, text)
}

func (t *StdTerminal) PrintSlowly(text string) {
	if t.delay <= 0 {
		t.Print(text)
		return
	}
	for _, r := range text {
		fmt.Fprint(t.out, string(r))
		time.Sleep(t.delay)
	}
	fmt.Fprintln(t.out)
}
