// Package world owns the location graph: where the player is, which exits
// are open, and which items currently sit in each location. Items held by
// the player belong to the item package; an item identifier is never in both
// places at once.
package world

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tatianab/seattle-noir/internal/logging"
	"github.com/tatianab/seattle-noir/internal/state"
)

// Location is one node in the graph. Items and FirstVisit are mutable; the
// rest is fixed content.
type Location struct {
	ID             string
	Description    string
	Exits          map[string]string
	Items          []string
	FirstVisit     bool
	HistoricalNote string
	// Requires names a game state flag that must be true to enter.
	Requires string
}

// LocationState is the persisted mutable slice of a location.
type LocationState struct {
	Items      []string `json:"items"`
	FirstVisit bool     `json:"first_visit"`
}

// Graph tracks the player's position and the live copy of the map.
type Graph struct {
	locations map[string]*Location
	current   string
	trolley   *Trolley
	log       *logging.Logger
}

// New deep-copies the static location table for a fresh playthrough.
func New(log *logging.Logger) *Graph {
	locations := make(map[string]*Location, len(locationTable))
	for id, loc := range locationTable {
		copied := loc
		copied.Exits = make(map[string]string, len(loc.Exits))
		for k, v := range loc.Exits {
			copied.Exits[k] = v
		}
		copied.Items = append([]string(nil), loc.Items...)
		locations[id] = &copied
	}
	return &Graph{
		locations: locations,
		current:   StartLocation,
		trolley:   NewTrolley(),
		log:       log,
	}
}

// Current returns the player's location identifier.
func (g *Graph) Current() string {
	return g.current
}

// Trolley exposes the trolley line for status output and persistence.
func (g *Graph) Trolley() *Trolley {
	return g.trolley
}

// Move attempts to follow an exit. It returns a message for the player and
// whether the position changed. Position is untouched on any failure.
func (g *Graph) Move(direction string, st *state.State) (string, bool) {
	loc := g.locations[g.current]

	exits := loc.Exits
	if g.current == TrolleyLocation {
		exits = g.trolley.Exits()
		if direction == TrolleyAdvance {
			return g.trolley.Advance(), false
		}
	}

	dest, ok := exits[direction]
	if !ok {
		return "You can't go that way.", false
	}

	target := g.locations[dest]
	if target.Requires != "" && !st.Flag(target.Requires) {
		need := strings.ReplaceAll(target.Requires, "_", " ")
		return fmt.Sprintf("You can't access this area yet. You need to %s first.", need), false
	}

	g.current = dest
	if target.FirstVisit {
		target.FirstVisit = false
	}
	if dest == TrolleyLocation {
		g.log.Debug("boarded trolley at position %d", g.trolley.Position())
		return g.trolley.BoardingNotice(), true
	}
	g.log.Debug("moved %s to %s", direction, dest)
	return "", true
}

// Describe renders the current location: prose, exits, visible items.
func (g *Graph) Describe() string {
	loc := g.locations[g.current]
	var b strings.Builder
	b.WriteString(loc.Description)

	exits := loc.Exits
	if g.current == TrolleyLocation {
		exits = g.trolley.Exits()
	}
	if len(exits) > 0 {
		names := make([]string, 0, len(exits))
		for name := range exits {
			names = append(names, name)
		}
		sort.Strings(names)
		b.WriteString("\n\nExits: ")
		b.WriteString(strings.Join(names, ", "))
	}
	if len(loc.Items) > 0 {
		b.WriteString("\n\nYou can see: ")
		b.WriteString(strings.Join(loc.Items, ", "))
	}
	return b.String()
}

// AvailableItems returns the item identifiers at the current location.
func (g *Graph) AvailableItems() []string {
	return append([]string(nil), g.locations[g.current].Items...)
}

// TakeItem removes an item from the current location's list. The caller is
// responsible for adding it to the inventory as part of the same step.
func (g *Graph) TakeItem(id string) bool {
	loc := g.locations[g.current]
	for i, item := range loc.Items {
		if item == id {
			loc.Items = append(loc.Items[:i], loc.Items[i+1:]...)
			return true
		}
	}
	return false
}

// HistoricalNote returns the note for the current location, if any. Aboard
// the trolley the note is the current stop's.
func (g *Graph) HistoricalNote() (string, bool) {
	if g.current == TrolleyLocation {
		return g.trolley.StopNote(), true
	}
	loc := g.locations[g.current]
	if loc.HistoricalNote == "" {
		return "", false
	}
	return loc.HistoricalNote, true
}

// Talk runs the conversation for the current location, mutating story flags
// where the script calls for it.
func (g *Graph) Talk(st *state.State) string {
	switch g.current {
	case "diner":
		if !st.Flag(state.SpokeToWitness) {
			st.SetFlag(state.SpokeToWitness, true)
			return "The nervous witness tells you about strange activities at the waterfront.\n'Every night, around midnight. They think nobody's watching, but I see them...'"
		}
		return "The witness has nothing more to add."
	case "police_station":
		return "Your fellow officers are busy with their own cases..."
	case "waterfront":
		return "A weathered dock worker pauses from his work. He mentions unusual nighttime activity around the warehouse district."
	case "captain_office":
		return "Captain Morrison briefs you on recent suspicious activities around the waterfront."
	default:
		return "There's nobody here to talk to."
	}
}

// Snapshot captures per-location mutable state for persistence.
func (g *Graph) Snapshot() map[string]LocationState {
	out := make(map[string]LocationState, len(g.locations))
	for id, loc := range g.locations {
		out[id] = LocationState{
			Items:      append([]string(nil), loc.Items...),
			FirstVisit: loc.FirstVisit,
		}
	}
	return out
}

// ValidateSnapshot checks that a persisted snapshot refers only to known
// locations. Missing locations are allowed (they keep initial state).
func ValidateSnapshot(snapshot map[string]LocationState, current string) error {
	if _, ok := locationTable[current]; !ok {
		return fmt.Errorf("unknown location %q", current)
	}
	for id := range snapshot {
		if _, ok := locationTable[id]; !ok {
			return fmt.Errorf("unknown location %q in snapshot", id)
		}
	}
	return nil
}

// Restore replaces position and per-location state wholesale. The snapshot
// must already have passed ValidateSnapshot.
func (g *Graph) Restore(current string, snapshot map[string]LocationState, trolleyPosition int) error {
	if err := ValidateSnapshot(snapshot, current); err != nil {
		return err
	}
	fresh := New(g.log)
	for id, ls := range snapshot {
		loc := fresh.locations[id]
		loc.Items = append([]string(nil), ls.Items...)
		loc.FirstVisit = ls.FirstVisit
	}
	fresh.current = current
	if err := fresh.trolley.SetPosition(trolleyPosition); err != nil {
		return err
	}
	g.locations = fresh.locations
	g.current = fresh.current
	g.trolley = fresh.trolley
	return nil
}
