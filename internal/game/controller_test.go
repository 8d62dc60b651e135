package game

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tatianab/seattle-noir/internal/gameio"
	"github.com/tatianab/seattle-noir/internal/item"
	"github.com/tatianab/seattle-noir/internal/logging"
	"github.com/tatianab/seattle-noir/internal/puzzle"
	"github.com/tatianab/seattle-noir/internal/save"
	"github.com/tatianab/seattle-noir/internal/state"
	"github.com/tatianab/seattle-noir/internal/world"
)

func newTestController(t *testing.T, term gameio.Terminal) *Controller {
	t.Helper()
	log := logging.Discard()
	saves, err := save.NewManager(t.TempDir(), 3, 1<<20, log)
	require.NoError(t, err)

	puzzles := puzzle.NewDirectory(
		puzzle.NewCipher(log),
		puzzle.NewRadio(rand.New(rand.NewSource(1)), log),
		puzzle.NewMorse(log),
		puzzle.NewVehicle(rand.New(rand.NewSource(1)), log),
		log,
	)
	return NewController(term, state.New(), world.New(log), item.NewInventory(log),
		puzzles, saves, time.Hour, log)
}

// play runs the controller over a scripted session; the session ends when
// the script runs out, which the controller treats as an interrupt.
func play(t *testing.T, commands ...string) (*Controller, *gameio.ScriptTerminal) {
	t.Helper()
	term := gameio.NewScriptTerminal(commands...)
	c := newTestController(t, term)
	require.NoError(t, c.Run())
	return c, term
}

func TestBadgeGatesSmithTower(t *testing.T) {
	c, term := play(t,
		"outside", "south", "east", // Smith Tower blocked without the badge
	)
	assert.Equal(t, "pioneer_square", c.world.Current())
	assert.True(t, term.Contains("You can't access this area yet"))

	c, _ = play(t,
		"take badge", "outside", "south", "east",
	)
	assert.Equal(t, "smith_tower", c.world.Current())
}

func TestItemConservation(t *testing.T) {
	c, _ := play(t, "take badge")

	assert.True(t, c.inv.Has("badge"))
	assert.NotContains(t, c.world.AvailableItems(), "badge")

	// Taking it again fails; the item exists in exactly one place.
	_, term := play(t, "take badge", "take badge")
	assert.True(t, term.Contains("There is no badge here."))
}

func TestUnknownCommand(t *testing.T) {
	_, term := play(t, "defenestrate")
	assert.True(t, term.Contains("I don't understand"))
}

func TestBareExitNamesMove(t *testing.T) {
	c, _ := play(t, "basement")
	assert.Equal(t, "evidence_room", c.world.Current())
}

func TestDirectionShorthand(t *testing.T) {
	c, _ := play(t, "outside", "s")
	assert.Equal(t, "pioneer_square", c.world.Current())
}

func TestSolveRoutesToLocationPuzzle(t *testing.T) {
	c, term := play(t,
		"basement", "take cipher_wheel", "solve", "SEATTLE",
	)
	assert.True(t, c.st.Flag(state.SolvedCipher))
	assert.True(t, term.Contains("decoded 'ZLHAASL'"))
}

func TestSolveWithNothingHere(t *testing.T) {
	_, term := play(t, "solve")
	assert.True(t, term.Contains("nothing to solve"))
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	term := gameio.NewScriptTerminal(
		"take badge", "basement", "save checkpoint",
	)
	c := newTestController(t, term)
	require.NoError(t, c.Run())
	require.True(t, term.Contains("Game saved."))

	// A second session against the same save directory resumes.
	term2 := gameio.NewScriptTerminal("load checkpoint")
	c2 := newTestController(t, term2)
	c2.saves = c.saves
	require.NoError(t, c2.Run())

	assert.Equal(t, "evidence_room", c2.world.Current())
	assert.True(t, c2.inv.Has("badge"))
	assert.True(t, c2.st.Flag(state.HasBadge))
}

func TestLoadUnknownSave(t *testing.T) {
	_, term := play(t, "load nothing_here")
	assert.True(t, term.Contains("No save by that name"))
}

func TestLoadFailureLeavesLiveStateUntouched(t *testing.T) {
	c, _ := play(t, "take badge", "load missing_save")
	assert.True(t, c.inv.Has("badge"))
	assert.Equal(t, world.StartLocation, c.world.Current())
}

func TestLoadRejectingRecordLeavesLiveStateUntouched(t *testing.T) {
	log := logging.Discard()
	tests := []struct {
		name   string
		mutate func(rec *save.Record)
	}{
		{"unknown puzzle", func(rec *save.Record) {
			rec.PuzzleStates = map[string]map[string]interface{}{"chess_puzzle": {}}
		}},
		{"invalid trolley position", func(rec *save.Record) {
			rec.TrolleyPosition = 9
		}},
		{"malformed combination", func(rec *save.Record) {
			rec.Combinations = []string{"not-a-pair"}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, term := play(t, "take badge", "basement")
			require.True(t, c.inv.Has("badge"))
			require.Equal(t, "evidence_room", c.world.Current())

			// A record of a fresh game whose required sections pass Load,
			// damaged in one of the later-applied sections. Rejecting it
			// must not leave any live component holding its values.
			rec := &save.Record{
				CurrentLocation: world.StartLocation,
				GameState:       state.New().Snapshot(),
				LocationStates:  world.New(log).Snapshot(),
				InventoryState:  item.NewInventory(log).Snapshot(),
			}
			tt.mutate(rec)
			require.NoError(t, c.saves.Save("damaged", rec))

			c.loadGame("damaged")

			assert.True(t, term.Contains("damaged and can't be loaded"))
			assert.Equal(t, "evidence_room", c.world.Current())
			assert.True(t, c.inv.Has("badge"))
			assert.True(t, c.st.Flag(state.HasBadge))
			assert.NotContains(t, c.world.Snapshot()["police_station"].Items, "badge",
				"location item state must be the live one, not the record's")
		})
	}
}

func TestQuitConfirmation(t *testing.T) {
	term := gameio.NewScriptTerminal("quit", "cancel", "quit", "no")
	c := newTestController(t, term)
	require.NoError(t, c.Run())
	assert.True(t, c.quit)
	assert.True(t, term.Contains("The case continues."))
}

func TestInterruptedSessionAutoSaves(t *testing.T) {
	// The script runs dry mid-game; the controller auto-saves on the way out.
	c, _ := play(t, "take badge")

	infos, err := c.saves.List()
	require.NoError(t, err)
	require.NotEmpty(t, infos)
	assert.True(t, infos[0].AutoSave)
}

func TestCombineViaCommand(t *testing.T) {
	c, _ := play(t,
		"take coffee", "take case_file", "combine coffee with case_file",
	)
	assert.True(t, c.st.Flag(state.CaseInsights))
	assert.False(t, c.inv.Has("coffee"))
}

func TestHandlerPanicDoesNotKillLoop(t *testing.T) {
	term := gameio.NewScriptTerminal("inventory", "quit", "no")
	c := newTestController(t, term)
	c.inv = nil // forces a panic inside the inventory handler
	require.NoError(t, c.Run())
	assert.True(t, term.Contains("Something went wrong"))
	assert.True(t, c.quit, "the loop keeps taking commands after a fault")
}

func TestWinCondition(t *testing.T) {
	c := newTestController(t, gameio.NewScriptTerminal())

	assert.False(t, c.checkWin())

	for _, flag := range state.CaseStates {
		c.st.SetFlag(flag, true)
	}
	assert.False(t, c.checkWin(), "flags alone are not enough")

	for _, id := range item.RequiredItems() {
		c.inv.Take(id, []string{id}, c.st)
	}
	assert.True(t, c.checkWin())
}

func TestFullCaseEndsWithEnding(t *testing.T) {
	c := newTestController(t, gameio.NewScriptTerminal())
	for _, flag := range state.CaseStates {
		c.st.SetFlag(flag, true)
	}
	for _, id := range item.RequiredItems() {
		c.inv.Take(id, []string{id}, c.st)
	}

	// Any command after the final flag triggers the ending.
	term := gameio.NewScriptTerminal("look")
	c.term = term
	require.NoError(t, c.Run())
	assert.True(t, c.won)
	assert.True(t, term.Contains("THE END"))
}
