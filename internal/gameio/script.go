package gameio

import "strings"

// ScriptTerminal is a Terminal fed from a fixed list of input lines,
// recording everything printed. Used in tests to drive puzzle sessions and
// full turns deterministically.
type ScriptTerminal struct {
	lines  []string
	next   int
	output strings.Builder
}

func NewScriptTerminal(lines ...string) *ScriptTerminal {
	return &ScriptTerminal{lines: lines}
}

// Push appends more scripted input.
func (t *ScriptTerminal) Push(lines ...string) {
	t.lines = append(t.lines, lines...)
}

func (t *ScriptTerminal) ReadLine(prompt string) (string, error) {
	if t.next >= len(t.lines) {
		return "", ErrInterrupted
	}
	line := t.lines[t.next]
	t.next++
	return line, nil
}

func (t *ScriptTerminal) Print(text string) {
	t.output.WriteString(text)
	t.output.WriteString("\n")
}

func (t *ScriptTerminal) PrintSlowly(text string) {
	t.Print(text)
}

// Output returns everything printed so far.
func (t *ScriptTerminal) Output() string {
	return t.output.String()
}

// Contains reports whether the printed output includes the substring.
func (t *ScriptTerminal) Contains(s string) bool {
	return strings.Contains(t.output.String(), s)
}
