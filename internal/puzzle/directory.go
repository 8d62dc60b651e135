package puzzle

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tatianab/seattle-noir/internal/gameio"
	"github.com/tatianab/seattle-noir/internal/item"
	"github.com/tatianab/seattle-noir/internal/logging"
	"github.com/tatianab/seattle-noir/internal/state"
)

// Directory routes locations to their puzzles and enforces the session
// contract: requirements are checked before a puzzle runs, and a session
// that ends abnormally rolls the puzzle back to its pre-session state.
type Directory struct {
	byLocation map[string]Puzzle
	log        *logging.Logger
}

// NewDirectory wires the standard puzzle placements.
func NewDirectory(cipher *Cipher, radio *Radio, morse *Morse, vehicle *Vehicle, log *logging.Logger) *Directory {
	return &Directory{
		byLocation: map[string]Puzzle{
			"evidence_room":       cipher,
			"warehouse_office":    radio,
			"underground_tunnels": morse,
			"observation_deck":    vehicle,
		},
		log: log,
	}
}

// At returns the puzzle mapped to a location, if any.
func (d *Directory) At(location string) (Puzzle, bool) {
	p, ok := d.byLocation[location]
	return p, ok
}

// Handle runs a solve session for the puzzle at the given location. It
// returns true only when the puzzle reports success. A panic or read error
// inside the session restores the puzzle's pre-session state.
func (d *Directory) Handle(location string, term gameio.Terminal, inv *item.Inventory, st *state.State) bool {
	p, ok := d.byLocation[location]
	if !ok {
		term.Print("There's nothing to solve here.")
		return false
	}

	var missing []string
	for _, req := range p.Requirements() {
		if !inv.Has(req) {
			missing = append(missing, strings.ReplaceAll(req, "_", " "))
		}
	}
	if len(missing) > 0 {
		term.Print("You're missing something you need: " + strings.Join(missing, ", ") + ".")
		return false
	}

	// Sole rollback point for the session.
	before := p.State()

	solved, err := d.run(p, term, inv, st)
	if err != nil {
		if !errors.Is(err, gameio.ErrInterrupted) {
			d.log.Error("puzzle %s session fault: %v", p.Name(), err)
		}
		if restoreErr := p.Restore(before); restoreErr != nil {
			d.log.Error("puzzle %s rollback failed: %v", p.Name(), restoreErr)
		}
		term.Print("Something went wrong with the puzzle. Your progress has been saved.")
		return false
	}

	if solved {
		st.SetFlag("mastered_"+p.Name(), true)
	}
	return solved
}

// run delegates to Solve, converting a panic into an error so Handle can
// roll back.
func (d *Directory) run(p Puzzle, term gameio.Terminal, inv *item.Inventory, st *state.State) (solved bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			solved = false
			err = fmt.Errorf("panic in solve: %v", r)
		}
	}()
	return p.Solve(term, inv, st)
}

// States collects every puzzle's internal state, keyed by puzzle name, for
// persistence.
func (d *Directory) States() map[string]map[string]interface{} {
	states := make(map[string]map[string]interface{}, len(d.byLocation))
	for _, p := range d.byLocation {
		states[p.Name()] = p.State()
	}
	return states
}

// RestoreStates applies persisted puzzle states. Puzzles absent from the
// record keep their fresh-session state.
func (d *Directory) RestoreStates(states map[string]map[string]interface{}) error {
	byName := make(map[string]Puzzle, len(d.byLocation))
	for _, p := range d.byLocation {
		byName[p.Name()] = p
	}
	for name, snapshot := range states {
		p, ok := byName[name]
		if !ok {
			return fmt.Errorf("unknown puzzle %q in save record", name)
		}
		if err := p.Restore(snapshot); err != nil {
			return err
		}
	}
	return nil
}
