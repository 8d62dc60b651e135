package puzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tatianab/seattle-noir/internal/gameio"
	"github.com/tatianab/seattle-noir/internal/logging"
	"github.com/tatianab/seattle-noir/internal/state"
)

func TestEncodeMorse(t *testing.T) {
	assert.Equal(t, "... --- ...", EncodeMorse("SOS"))
	assert.Equal(t, "... . -.-. .-. . - / .-. --- --- --", EncodeMorse("secret room"))
}

func TestMorseTableMatchesPhrases(t *testing.T) {
	for _, msg := range morseMessages {
		assert.Equal(t, msg.morse, EncodeMorse(msg.phrase), msg.phrase)
	}
}

// The correct phrase must succeed on the spot, first try.
func TestMorseCorrectAnswerSucceeds(t *testing.T) {
	m := NewMorse(logging.Discard())
	st := state.New()
	term := gameio.NewScriptTerminal("secret room")

	solved, err := m.Solve(term, newTestInventory(), st)
	require.NoError(t, err)
	assert.True(t, solved)
	assert.True(t, st.Flag(state.FoundSecretRoom))
	assert.Equal(t, 0, st.Counter(state.MorseAttempts))
}

func TestMorseSecondMessageIsDockSeven(t *testing.T) {
	m := NewMorse(logging.Discard())
	st := state.New()

	_, err := m.Solve(gameio.NewScriptTerminal("SECRET ROOM"), newTestInventory(), st)
	require.NoError(t, err)

	term := gameio.NewScriptTerminal("DOCK SEVEN")
	solved, err := m.Solve(term, newTestInventory(), st)
	require.NoError(t, err)
	assert.True(t, solved)
	assert.True(t, st.Flag(state.DecodedDockSeven))

	// All messages decoded; a further session reports completion.
	term = gameio.NewScriptTerminal()
	solved, err = m.Solve(term, newTestInventory(), st)
	require.NoError(t, err)
	assert.True(t, solved)
	assert.True(t, term.Contains("decoded all the messages"))
}

func TestMorseAttemptBound(t *testing.T) {
	m := NewMorse(logging.Discard())
	st := state.New()
	term := gameio.NewScriptTerminal(
		"OPEN DOOR", "hint", "HIDDEN DOOR", "BASEMENT", "hint", "CELLAR", "ATTIC", "VAULT",
	)

	solved, err := m.Solve(term, newTestInventory(), st)
	require.NoError(t, err)
	assert.False(t, solved)
	assert.Equal(t, morseMaxAttempts, st.Counter(state.MorseAttempts))
	assert.False(t, st.Flag(state.FoundSecretRoom))
}

func TestMorseRejectsNonLetterInput(t *testing.T) {
	m := NewMorse(logging.Discard())
	st := state.New()
	term := gameio.NewScriptTerminal("... --- ...", "quit")

	solved, err := m.Solve(term, newTestInventory(), st)
	require.NoError(t, err)
	assert.False(t, solved)
	assert.Equal(t, 0, st.Counter(state.MorseAttempts), "malformed input costs nothing")
	assert.True(t, term.Contains("letters and spaces"))
}

func TestMorseStateRoundTrip(t *testing.T) {
	m := NewMorse(logging.Discard())
	st := state.New()
	_, err := m.Solve(gameio.NewScriptTerminal("SECRET ROOM"), newTestInventory(), st)
	require.NoError(t, err)

	restored := NewMorse(logging.Discard())
	require.NoError(t, restored.Restore(m.State()))
	assert.True(t, restored.solved["SECRET ROOM"])

	// The restored puzzle presents the remaining message next.
	next := restored.next()
	require.NotNil(t, next)
	assert.Equal(t, "DOCK SEVEN", next.phrase)
}
