package puzzle

import (
	"fmt"
	"math/rand"

	"github.com/tatianab/seattle-noir/internal/gameio"
	"github.com/tatianab/seattle-noir/internal/item"
	"github.com/tatianab/seattle-noir/internal/logging"
	"github.com/tatianab/seattle-noir/internal/state"
)

const vehicleMaxAttempts = 5

type vehicleRoute struct {
	pattern string
	name    string
}

// Routes the suspect's car is known to take through the city grid, as
// compass turns observed from the tower.
var vehicleRoutes = []vehicleRoute{
	{pattern: "NSEW", name: "the waterfront circuit"},
	{pattern: "NWSE", name: "the market loop"},
	{pattern: "SENW", name: "the industrial district run"},
	{pattern: "SWNE", name: "the railway yard route"},
}

// Vehicle is the car-tracking puzzle on the Smith Tower observation deck.
// The route is drawn at random each session, so the pattern must be read
// from the streets below rather than remembered.
type Vehicle struct {
	rng   *rand.Rand
	route vehicleRoute
	log   *logging.Logger
}

func NewVehicle(rng *rand.Rand, log *logging.Logger) *Vehicle {
	v := &Vehicle{rng: rng, log: log}
	v.reroute()
	return v
}

func (v *Vehicle) Name() string { return "car_puzzle" }

func (v *Vehicle) Requirements() []string { return []string{"binoculars"} }

func (v *Vehicle) reroute() {
	v.route = vehicleRoutes[v.rng.Intn(len(vehicleRoutes))]
}

func (v *Vehicle) Solve(term gameio.Terminal, inv *item.Inventory, st *state.State) (bool, error) {
	v.log.Debug("car tracking session started")
	if st.Flag(state.TrackedCar) {
		term.Print("You've already tracked the suspicious car to its destination.")
		return true, nil
	}

	v.reroute()

	term.Print("Through the binoculars, you spot a suspicious car weaving through the streets below.")
	term.Print("If you can follow its turns, you can work out where it's headed.")
	term.Print("")
	term.Print("Track the car's movements using compass directions:")
	term.Print("N = North, S = South, E = East, W = West")
	term.Print(fmt.Sprintf("The car makes %d turns. Enter them as one sequence, like 'NSEW'.", len(v.route.pattern)))

	attempts := 0
	for attempts < vehicleMaxAttempts {
		answer, err := readAnswer(term, "\nEnter the car's route (or 'hint'/'quit'): ")
		if err != nil {
			return false, err
		}

		switch answer {
		case "QUIT":
			return false, nil
		case "HINT":
			v.hint(term, attempts)
			continue
		}

		if !onlyChars(answer, "NSEW") {
			term.Print("Please use only the letters N, S, E and W.")
			continue
		}
		if len(answer) != len(v.route.pattern) {
			term.Print(fmt.Sprintf("The car made exactly %d turns. Your sequence has %d.", len(v.route.pattern), len(answer)))
			continue
		}

		if answer == v.route.pattern {
			v.log.Debug("car tracked via %s", v.route.name)
			term.Print("You've successfully tracked the car through " + v.route.name + "!")
			term.Print("It stops at a warehouse near the waterfront. That's your lead.")
			st.SetFlag(state.TrackedCar, true)
			return true, nil
		}

		attempts++
		st.AddCounter(state.VehicleAttempts, 1)
		term.Print(fmt.Sprintf("You lose sight of the car. %d attempts remaining.", vehicleMaxAttempts-attempts))
	}

	term.Print("The car disappears into traffic. It will be back - they run this route nightly.")
	return false, nil
}

func (v *Vehicle) hint(term gameio.Terminal, attempts int) {
	switch {
	case attempts < 2:
		term.Print("Hint: Watch the car's first turn carefully - everything follows from it.")
	case attempts < 4:
		term.Print(fmt.Sprintf("Hint: The car first heads %s.", directionWord(v.route.pattern[0])))
	default:
		term.Print(fmt.Sprintf("Hint: The route starts with '%c%c'.", v.route.pattern[0], v.route.pattern[1]))
	}
}

func directionWord(c byte) string {
	switch c {
	case 'N':
		return "north"
	case 'S':
		return "south"
	case 'E':
		return "east"
	default:
		return "west"
	}
}

func (v *Vehicle) State() map[string]interface{} {
	return map[string]interface{}{
		"route": v.route.pattern,
	}
}

func (v *Vehicle) Restore(snapshot map[string]interface{}) error {
	pattern, err := stringFromSnapshot(snapshot["route"])
	if err != nil {
		return fmt.Errorf("car puzzle state: %w", err)
	}
	if pattern == "" {
		// Session-local; the next session draws a fresh route.
		return nil
	}
	for _, route := range vehicleRoutes {
		if route.pattern == pattern {
			v.route = route
			return nil
		}
	}
	return fmt.Errorf("car puzzle state: unknown route %q", pattern)
}
