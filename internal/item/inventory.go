// Package item owns what the player holds: the inventory, the static item
// registry, and the combination rule table.
package item

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tatianab/seattle-noir/internal/logging"
	"github.com/tatianab/seattle-noir/internal/state"
)

const newspaperStory = `SEATTLE POST-INTELLIGENCER, 1947

MYSTERIOUS DISAPPEARANCES PLAGUE WATERFRONT

A series of unexplained cargo disappearances has left Seattle Port Authority
officials baffled. The incidents, beginning shortly after the war's end,
have primarily involved medical supplies and machinery parts.

Local stevedores report unusual night-time activities, but harbor patrol
investigations have yielded no concrete evidence. The recent conversion
of wartime shipping operations to civilian use has created opportunities
for those seeking to exploit the confusion.

Port security chief Thomas McKinnon stated, "We're working closely with
the police department to resolve these incidents." Sources suggest possible
connections to similar cases in San Francisco and Vancouver.`

// Inventory tracks the player's held items, consumed items, collected
// newspaper pieces, and discovered combinations.
type Inventory struct {
	held       []string
	removed    []string
	pieces     int
	discovered map[pair]bool
	log        *logging.Logger
}

// State is the persisted slice of the inventory, matching the save format's
// inventory_state section.
type State struct {
	Inventory       []string `json:"inventory"`
	RemovedItems    []string `json:"removed_items"`
	NewspaperPieces int      `json:"newspaper_pieces"`
}

func NewInventory(log *logging.Logger) *Inventory {
	return &Inventory{
		discovered: make(map[pair]bool),
		log:        log,
	}
}

// Has reports whether the player holds the item.
func (inv *Inventory) Has(id string) bool {
	for _, held := range inv.held {
		if held == id {
			return true
		}
	}
	return false
}

// Items returns a copy of the held item list.
func (inv *Inventory) Items() []string {
	return append([]string(nil), inv.held...)
}

// Take picks up an item. locationItems is the current location's item list;
// the caller removes the item from the world as part of the same step. The
// returned text is shown to the player.
func (inv *Inventory) Take(id string, locationItems []string, st *state.State) (string, bool) {
	present := false
	for _, item := range locationItems {
		if item == id {
			present = true
			break
		}
	}
	if !present {
		return fmt.Sprintf("There is no %s here.", id), false
	}

	inv.held = append(inv.held, id)
	inv.log.Debug("took %s", id)

	if id == "badge" {
		st.SetFlag(state.HasBadge, true)
	}
	if flag, ok := requiredEvidence[id]; ok {
		st.SetFlag(flag, true)
	}

	if strings.HasPrefix(id, "newspaper_piece_") {
		inv.pieces++
		msg := fmt.Sprintf("You've found piece %d of %d of the newspaper story.", inv.pieces, NewspaperPieceCount)
		if inv.pieces == NewspaperPieceCount {
			st.SetFlag(state.FoundAllNewspaper, true)
			msg += "\n\nYou've collected all newspaper pieces!\nAs you piece together the clippings, a bigger picture emerges...\n\n" + newspaperStory
		}
		return msg, true
	}
	return fmt.Sprintf("You take the %s.", id), true
}

// Examine shows an item's detailed description. Held items may reveal clues
// as a side effect; items still in the world must be taken first.
func (inv *Inventory) Examine(id string, locationItems []string, st *state.State) string {
	if inv.Has(id) {
		def, ok := registry[id]
		if !ok {
			return fmt.Sprintf("You examine the %s closely but find nothing unusual.", id)
		}
		text := def.Detailed
		switch {
		case id == "wallet" && !st.Flag(state.DiscoveredClue):
			st.SetFlag(state.DiscoveredClue, true)
			text += "\n\nThe business card seems suspicious. This could be a valuable lead."
		case id == "coded_message" && !st.Flag(state.ExaminedCode):
			st.SetFlag(state.ExaminedCode, true)
			text += "\n\nThe code looks like it might be decipherable with the right tools..."
		}
		return text
	}
	for _, item := range locationItems {
		if item == id {
			return fmt.Sprintf("You'll need to take the %s first to examine it closely.", id)
		}
	}
	return fmt.Sprintf("You don't see any %s here.", id)
}

// Use applies an item's effect at the current location, consuming it if it
// is consumable and setting any (item, location) story flag.
func (inv *Inventory) Use(id, location string, st *state.State) string {
	if !inv.Has(id) {
		return "You don't have that item."
	}

	def := registry[id]
	effect, ok := def.UseEffects[location]
	if !ok {
		if all, hasAll := def.UseEffects[AllLocations]; hasAll {
			effect, ok = all, true
		}
	}
	if !ok {
		return fmt.Sprintf("You can't use the %s here effectively.", id)
	}

	text := effect
	if def.Consumable {
		inv.remove(id)
		text += fmt.Sprintf("\nYou no longer have the %s.", id)
	}
	if flag, found := specialUseFlags[[2]string{id, location}]; found {
		st.SetFlag(flag, true)
	}
	return text
}

// Combine attempts to use two held items together. A rule fires at most once
// per playthrough.
func (inv *Inventory) Combine(a, b string, st *state.State) (string, bool) {
	if !inv.Has(a) || !inv.Has(b) {
		return "You need both items in your inventory to combine them.", false
	}

	key := newPair(a, b)
	if inv.discovered[key] {
		return "You've already discovered what these items reveal together.", false
	}
	rule, ok := combinationTable[key]
	if !ok {
		return "These items can't be combined in any meaningful way.", false
	}

	for _, id := range rule.removes {
		inv.remove(id)
	}
	st.SetFlag(rule.resultFlag, true)
	inv.discovered[key] = true
	inv.log.Debug("combined %s with %s", key.first, key.second)
	return rule.description, true
}

// Describe lists held items with their basic descriptions.
func (inv *Inventory) Describe() string {
	if len(inv.held) == 0 {
		return "Your inventory is empty."
	}
	var b strings.Builder
	b.WriteString("Inventory:")
	for _, id := range inv.held {
		b.WriteString(fmt.Sprintf("\n- %s: %s", id, Describe(id)))
	}
	b.WriteString("\n\nTip: Use 'examine <item>' for a closer look.")
	return b.String()
}

func (inv *Inventory) remove(id string) {
	for i, held := range inv.held {
		if held == id {
			inv.held = append(inv.held[:i], inv.held[i+1:]...)
			inv.removed = append(inv.removed, id)
			return
		}
	}
}

// Snapshot captures the persisted inventory state.
func (inv *Inventory) Snapshot() State {
	return State{
		Inventory:       append([]string(nil), inv.held...),
		RemovedItems:    append([]string(nil), inv.removed...),
		NewspaperPieces: inv.pieces,
	}
}

// DiscoveredPairs returns the fired combinations in stable order, for
// persistence.
func (inv *Inventory) DiscoveredPairs() []string {
	pairs := make([]string, 0, len(inv.discovered))
	for key := range inv.discovered {
		pairs = append(pairs, key.String())
	}
	sort.Strings(pairs)
	return pairs
}

// Restore replaces the inventory wholesale from a snapshot.
func (inv *Inventory) Restore(snapshot State, discoveredPairs []string) error {
	discovered := make(map[pair]bool, len(discoveredPairs))
	for _, s := range discoveredPairs {
		parts := strings.SplitN(s, "+", 2)
		if len(parts) != 2 {
			return fmt.Errorf("malformed combination record %q", s)
		}
		discovered[newPair(parts[0], parts[1])] = true
	}
	inv.held = append([]string(nil), snapshot.Inventory...)
	inv.removed = append([]string(nil), snapshot.RemovedItems...)
	inv.pieces = snapshot.NewspaperPieces
	inv.discovered = discovered
	return nil
}
