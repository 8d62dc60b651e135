package puzzle

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tatianab/seattle-noir/internal/gameio"
	"github.com/tatianab/seattle-noir/internal/logging"
	"github.com/tatianab/seattle-noir/internal/state"
)

func TestPuzzlesLogSessions(t *testing.T) {
	tests := []struct {
		name string
		make func(log *logging.Logger) Puzzle
	}{
		{"cipher", func(log *logging.Logger) Puzzle { return NewCipher(log) }},
		{"radio", func(log *logging.Logger) Puzzle {
			return NewRadio(rand.New(rand.NewSource(1)), log)
		}},
		{"morse", func(log *logging.Logger) Puzzle { return NewMorse(log) }},
		{"vehicle", func(log *logging.Logger) Puzzle {
			return NewVehicle(rand.New(rand.NewSource(1)), log)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf strings.Builder
			p := tt.make(logging.New(&buf, logging.LevelDebug))
			term := gameio.NewScriptTerminal("quit")

			solved, err := p.Solve(term, newTestInventory(), state.New())
			require.NoError(t, err)
			assert.False(t, solved)
			assert.Contains(t, buf.String(), "session started")
		})
	}
}
