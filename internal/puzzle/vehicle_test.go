package puzzle

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tatianab/seattle-noir/internal/gameio"
	"github.com/tatianab/seattle-noir/internal/logging"
	"github.com/tatianab/seattle-noir/internal/state"
)

// sessionRoute returns the pattern a session with this seed will draw.
func sessionRoute(t *testing.T, seed int64) string {
	t.Helper()
	v := NewVehicle(rand.New(rand.NewSource(seed)), logging.Discard())
	_, err := v.Solve(gameio.NewScriptTerminal(), newTestInventory(), state.New())
	require.ErrorIs(t, err, gameio.ErrInterrupted)
	return v.route.pattern
}

func TestVehicleCorrectPatternTracksCar(t *testing.T) {
	const seed = 17
	pattern := sessionRoute(t, seed)

	v := NewVehicle(rand.New(rand.NewSource(seed)), logging.Discard())
	st := state.New()
	term := gameio.NewScriptTerminal(pattern)

	solved, err := v.Solve(term, newTestInventory(), st)
	require.NoError(t, err)
	assert.True(t, solved)
	assert.True(t, st.Flag(state.TrackedCar))
	assert.True(t, term.Contains("warehouse near the waterfront"))
}

func TestVehicleAlreadyTracked(t *testing.T) {
	v := NewVehicle(rand.New(rand.NewSource(1)), logging.Discard())
	st := state.New()
	st.SetFlag(state.TrackedCar, true)

	solved, err := v.Solve(gameio.NewScriptTerminal(), newTestInventory(), st)
	require.NoError(t, err)
	assert.True(t, solved)
}

func TestVehicleWrongLengthIsFree(t *testing.T) {
	v := NewVehicle(rand.New(rand.NewSource(2)), logging.Discard())
	st := state.New()
	term := gameio.NewScriptTerminal("NS", "NSEWN", "quit")

	solved, err := v.Solve(term, newTestInventory(), st)
	require.NoError(t, err)
	assert.False(t, solved)
	assert.Equal(t, 0, st.Counter(state.VehicleAttempts))
	assert.True(t, term.Contains("exactly 4 turns"))
}

func TestVehicleRejectsBadCharacters(t *testing.T) {
	v := NewVehicle(rand.New(rand.NewSource(2)), logging.Discard())
	st := state.New()
	term := gameio.NewScriptTerminal("NSXW", "quit")

	solved, err := v.Solve(term, newTestInventory(), st)
	require.NoError(t, err)
	assert.False(t, solved)
	assert.Equal(t, 0, st.Counter(state.VehicleAttempts))
}

func TestVehicleAttemptBound(t *testing.T) {
	const seed = 23
	pattern := sessionRoute(t, seed)

	// A wrong answer of the right length and alphabet.
	wrong := "NNNN"
	if pattern == wrong {
		wrong = "SSSS"
	}

	v := NewVehicle(rand.New(rand.NewSource(seed)), logging.Discard())
	st := state.New()
	term := gameio.NewScriptTerminal(wrong, "hint", wrong, wrong, "hint", wrong, wrong)

	solved, err := v.Solve(term, newTestInventory(), st)
	require.NoError(t, err)
	assert.False(t, solved)
	assert.Equal(t, vehicleMaxAttempts, st.Counter(state.VehicleAttempts))
	assert.False(t, st.Flag(state.TrackedCar))
	assert.True(t, term.Contains("disappears into traffic"))
}

func TestVehicleStateRoundTrip(t *testing.T) {
	v := NewVehicle(rand.New(rand.NewSource(4)), logging.Discard())
	v.route = vehicleRoutes[2]

	restored := NewVehicle(rand.New(rand.NewSource(77)), logging.Discard())
	require.NoError(t, restored.Restore(v.State()))
	assert.Equal(t, vehicleRoutes[2], restored.route)

	assert.Error(t, restored.Restore(map[string]interface{}{"route": "XXXX"}))
}
