package puzzle

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tatianab/seattle-noir/internal/gameio"
	"github.com/tatianab/seattle-noir/internal/logging"
	"github.com/tatianab/seattle-noir/internal/state"
)

// sessionTargets runs an immediately-interrupted session with the given seed
// and returns the frequencies a real session with the same seed will use.
func sessionTargets(t *testing.T, seed int64) map[string]int {
	t.Helper()
	r := NewRadio(rand.New(rand.NewSource(seed)), logging.Discard())
	_, err := r.Solve(gameio.NewScriptTerminal(), newTestInventory(), state.New())
	require.ErrorIs(t, err, gameio.ErrInterrupted)

	out := make(map[string]int, len(r.targets))
	for band, target := range r.targets {
		out[band] = target.frequency
	}
	return out
}

func TestRadioTargetsStayInBand(t *testing.T) {
	targets := sessionTargets(t, 1)
	for _, band := range radioBands {
		freq := targets[band.name]
		assert.GreaterOrEqual(t, freq, band.min, band.name)
		assert.LessOrEqual(t, freq, band.max, band.name)
	}
}

func TestRadioExactEmergencyFrequencySolves(t *testing.T) {
	const seed = 42
	targets := sessionTargets(t, seed)

	r := NewRadio(rand.New(rand.NewSource(seed)), logging.Discard())
	st := state.New()
	term := gameio.NewScriptTerminal(fmt.Sprintf("%d", targets["emergency"]))

	solved, err := r.Solve(term, newTestInventory(), st)
	require.NoError(t, err)
	assert.True(t, solved)
	assert.True(t, st.Flag(state.SolvedRadioPuzzle))
	assert.True(t, term.Contains("Signal Strength: STRONG"))
	assert.True(t, term.Contains("smugglers' frequency"))
}

func TestRadioFarFrequencyIsSilent(t *testing.T) {
	const seed = 7
	r := NewRadio(rand.New(rand.NewSource(seed)), logging.Discard())
	st := state.New()
	// 9000 kHz is more than 25 away from every band.
	term := gameio.NewScriptTerminal("9000", "quit")

	solved, err := r.Solve(term, newTestInventory(), st)
	require.NoError(t, err)
	assert.False(t, solved)
	assert.False(t, st.Flag(state.SolvedRadioPuzzle))
	assert.True(t, term.Contains("Signal Strength: NONE"))
}

func TestRadioSignalStrengthTiers(t *testing.T) {
	r := NewRadio(rand.New(rand.NewSource(1)), logging.Discard())
	r.targets = map[string]radioTarget{
		"emergency": {frequency: 1450, message: "emergency traffic"},
		"police":    {frequency: 1250, message: "police traffic"},
		"civilian":  {frequency: 1050, message: "civilian traffic"},
	}

	tests := []struct {
		frequency int
		strength  string
	}{
		{1450, signalStrong},
		{1455, signalModerate},
		{1460, signalModerate},
		{1461, signalWeak},
		{1475, signalWeak},
		{1476, signalNone},
		{1250, signalStrong},
		{900, signalNone},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d", tt.frequency), func(t *testing.T) {
			strength, _, _ := r.signalAt(tt.frequency)
			assert.Equal(t, tt.strength, strength)
		})
	}
}

func TestRadioAttemptBound(t *testing.T) {
	r := NewRadio(rand.New(rand.NewSource(3)), logging.Discard())
	st := state.New()

	lines := make([]string, 0, radioMaxAttempts+2)
	lines = append(lines, "hint", "not-a-number")
	for i := 0; i < radioMaxAttempts; i++ {
		lines = append(lines, "9000")
	}
	term := gameio.NewScriptTerminal(lines...)

	solved, err := r.Solve(term, newTestInventory(), st)
	require.NoError(t, err)
	assert.False(t, solved, "hints and malformed input must not extend the budget")
	assert.True(t, term.Contains("cool down"))
}

func TestRadioStateRoundTrip(t *testing.T) {
	r := NewRadio(rand.New(rand.NewSource(5)), logging.Discard())
	r.found["police"] = true

	restored := NewRadio(rand.New(rand.NewSource(99)), logging.Discard())
	require.NoError(t, restored.Restore(r.State()))
	assert.True(t, restored.found["police"])
	assert.Equal(t, r.targets, restored.targets)
}

func TestRadioRestoreWithoutTargetsKeepsOwn(t *testing.T) {
	restored := NewRadio(rand.New(rand.NewSource(11)), logging.Discard())
	own := restored.targets

	require.NoError(t, restored.Restore(map[string]interface{}{
		"found_bands": []string{"civilian"},
	}))
	assert.True(t, restored.found["civilian"])
	assert.Equal(t, own, restored.targets, "absent targets leave the session tuning alone")
}
