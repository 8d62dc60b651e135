// Package puzzle implements the game's interactive puzzles: bounded-attempt
// state machines gated by required items, each mutating story flags on
// success. The directory routes locations to puzzles and guarantees that a
// session which ends abnormally leaves no puzzle-internal mutation behind.
package puzzle

import (
	"fmt"
	"math"
	"strings"

	"github.com/tatianab/seattle-noir/internal/gameio"
	"github.com/tatianab/seattle-noir/internal/item"
	"github.com/tatianab/seattle-noir/internal/state"
)

// Puzzle is one interactive puzzle. Solve runs a full session: present the
// puzzle, loop on answers, and terminate as solved, abandoned, or out of
// attempts. It returns true exactly when the success condition is met during
// the session (including when it was already solved). The caller checks
// Requirements before delegating; Solve assumes they are met.
type Puzzle interface {
	Name() string
	Requirements() []string
	Solve(term gameio.Terminal, inv *item.Inventory, st *state.State) (bool, error)
	// State and Restore snapshot the puzzle's internal state for rollback
	// and persistence. State must deep-copy; Restore must accept a value
	// that round-tripped through JSON.
	State() map[string]interface{}
	Restore(snapshot map[string]interface{}) error
}

// readAnswer reads one puzzle answer, trimmed and upper-cased. An
// interrupted read is surfaced to the directory for rollback.
func readAnswer(term gameio.Terminal, prompt string) (string, error) {
	line, err := term.ReadLine(prompt)
	if err != nil {
		return "", err
	}
	return strings.ToUpper(strings.TrimSpace(line)), nil
}

// onlyChars reports whether s is non-empty and made of the given characters.
func onlyChars(s, valid string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !strings.ContainsRune(valid, r) {
			return false
		}
	}
	return true
}

// stringsFromSnapshot reads a []string field out of a snapshot that may have
// round-tripped through JSON (where it arrives as []interface{}).
func stringsFromSnapshot(v interface{}) ([]string, error) {
	switch vv := v.(type) {
	case nil:
		return nil, nil
	case []string:
		return append([]string(nil), vv...), nil
	case []interface{}:
		out := make([]string, 0, len(vv))
		for _, e := range vv {
			s, ok := e.(string)
			if !ok {
				return nil, fmt.Errorf("expected string, got %T", e)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected string list, got %T", v)
	}
}

// intFromSnapshot reads an int field that may have arrived as float64.
func intFromSnapshot(v interface{}) (int, error) {
	switch n := v.(type) {
	case nil:
		return 0, nil
	case int:
		return n, nil
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("expected integer, got %v", n)
		}
		return int(n), nil
	default:
		return 0, fmt.Errorf("expected integer, got %T", v)
	}
}

// stringFromSnapshot reads a string field.
func stringFromSnapshot(v interface{}) (string, error) {
	switch s := v.(type) {
	case nil:
		return "", nil
	case string:
		return s, nil
	default:
		return "", fmt.Errorf("expected string, got %T", v)
	}
}
