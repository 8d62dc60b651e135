package puzzle

import (
	"fmt"
	"math/rand"
	"sort"
	"strconv"
	"strings"

	"github.com/tatianab/seattle-noir/internal/gameio"
	"github.com/tatianab/seattle-noir/internal/item"
	"github.com/tatianab/seattle-noir/internal/logging"
	"github.com/tatianab/seattle-noir/internal/state"
)

const radioMaxAttempts = 8

// Signal strengths by distance from a target frequency.
const (
	signalStrong   = "STRONG"
	signalModerate = "MODERATE"
	signalWeak     = "WEAK"
	signalNone     = "NONE"

	moderateRange = 10
	weakRange     = 25
)

type radioBand struct {
	name     string
	min, max int
	messages []string
}

var radioBands = []radioBand{
	{
		name: "emergency",
		min:  1400,
		max:  1500,
		messages: []string{
			"...urgent shipment tonight... dock 7... look for red star...",
			"...medical supplies... warehouse district... midnight...",
		},
	},
	{
		name: "police",
		min:  1200,
		max:  1300,
		messages: []string{
			"...patrol units report to waterfront... suspicious activity...",
			"...all units... warehouse district... maintain surveillance...",
		},
	},
	{
		name: "civilian",
		min:  1000,
		max:  1100,
		messages: []string{
			"...weather forecast: heavy rain expected... port closing early...",
			"...dock workers union meeting... discussing night shifts...",
		},
	},
}

type radioTarget struct {
	frequency int
	message   string
}

// Radio is the frequency-scanning puzzle. Targets are freshly randomized at
// each session start; found bands persist across sessions.
type Radio struct {
	rng     *rand.Rand
	targets map[string]radioTarget
	found   map[string]bool
	log     *logging.Logger
}

func NewRadio(rng *rand.Rand, log *logging.Logger) *Radio {
	r := &Radio{
		rng:   rng,
		found: make(map[string]bool),
		log:   log,
	}
	r.retune()
	return r
}

func (r *Radio) Name() string { return "radio_puzzle" }

func (r *Radio) Requirements() []string { return []string{"radio_manual"} }

// retune generates fresh target frequencies with a message per band.
func (r *Radio) retune() {
	targets := make(map[string]radioTarget, len(radioBands))
	for _, band := range radioBands {
		targets[band.name] = radioTarget{
			frequency: band.min + r.rng.Intn(band.max-band.min+1),
			message:   band.messages[r.rng.Intn(len(band.messages))],
		}
	}
	r.targets = targets
}

// signalAt returns the strength, transmission text, and band for a tuned
// frequency. Only an exact hit attributes the band.
func (r *Radio) signalAt(frequency int) (string, string, string) {
	strength, message, bandName := signalNone, "", ""
	for _, band := range radioBands {
		target := r.targets[band.name]
		diff := target.frequency - frequency
		if diff < 0 {
			diff = -diff
		}
		switch {
		case diff == 0:
			return signalStrong, target.message, band.name
		case diff <= moderateRange && strength != signalModerate:
			strength = signalModerate
			message = "Through the static, you hear fragments of a transmission..."
			bandName = band.name
		case diff <= weakRange && strength == signalNone:
			strength = signalWeak
			message = "You hear mostly static, but something's there..."
			bandName = band.name
		}
	}
	return strength, message, bandName
}

func (r *Radio) foundBands() []string {
	bands := make([]string, 0, len(r.found))
	for name := range r.found {
		bands = append(bands, name)
	}
	sort.Strings(bands)
	return bands
}

func (r *Radio) Solve(term gameio.Terminal, inv *item.Inventory, st *state.State) (bool, error) {
	r.log.Debug("radio session started")
	if st.Flag(state.SolvedRadioPuzzle) {
		term.Print("You've already decoded the critical emergency transmission.")
		term.Print("The radio remains available for scanning other frequencies.")
	}

	// The operators change frequencies between sessions.
	r.retune()

	term.Print("Objective: Locate the emergency frequency being used by the smugglers.")
	term.Print("The radio manual indicates suspicious activity on emergency channels.")
	term.Print("")
	term.Print("The radio manual lists several frequency ranges:")
	term.Print("Emergency Services: 1400-1500 kHz  (Known smuggler activity)")
	term.Print("Police Band: 1200-1300 kHz        (May contain useful intel)")
	term.Print("Civilian Band: 1000-1100 kHz      (Dock worker communications)")

	attemptsLeft := radioMaxAttempts

	for attemptsLeft > 0 {
		term.Print(fmt.Sprintf("\nAttempts remaining: %d", attemptsLeft))
		if len(r.found) > 0 {
			term.Print("Tuned bands: " + strings.Join(r.foundBands(), ", "))
		}

		answer, err := readAnswer(term, "Enter frequency to tune (or 'hint'/'quit'): ")
		if err != nil {
			return false, err
		}
		switch answer {
		case "QUIT":
			return false, nil
		case "HINT":
			term.Print("Try methodically scanning through each band's range.")
			continue
		}

		frequency, err := strconv.Atoi(answer)
		if err != nil {
			term.Print("Please enter a valid frequency number.")
			continue
		}

		strength, message, band := r.signalAt(frequency)
		attemptsLeft--

		term.Print(fmt.Sprintf("Signal Strength: %s", strength))
		if strength != signalStrong {
			if message != "" {
				term.Print(message)
			}
			if attemptsLeft == 3 {
				term.Print("Hint: Try methodically scanning through each band's range.")
			}
			continue
		}

		term.Print("Clear transmission:")
		term.Print(message)
		r.found[band] = true
		r.log.Debug("tuned %s band at %d kHz", band, frequency)

		solved := false
		if band == "emergency" && !st.Flag(state.SolvedRadioPuzzle) {
			term.Print("This is it! You've found the smugglers' frequency!")
			st.SetFlag(state.SolvedRadioPuzzle, true)
			solved = true
		}
		if len(r.found) == len(radioBands) {
			term.Print("By cross-referencing all the transmissions, you've uncovered")
			term.Print("a clear pattern of suspicious activity at the waterfront.")
			st.SetFlag(state.UnderstoodRadio, true)
			return true, nil
		}
		if solved {
			return true, nil
		}
	}

	term.Print("The radio needs time to cool down. Try again later.")
	return false, nil
}

func (r *Radio) State() map[string]interface{} {
	targets := make(map[string]interface{}, len(r.targets))
	for band, t := range r.targets {
		targets[band] = map[string]interface{}{
			"frequency": t.frequency,
			"message":   t.message,
		}
	}
	return map[string]interface{}{
		"found_bands": r.foundBands(),
		"targets":     targets,
	}
}

func (r *Radio) Restore(snapshot map[string]interface{}) error {
	found, err := stringsFromSnapshot(snapshot["found_bands"])
	if err != nil {
		return fmt.Errorf("radio puzzle state: %w", err)
	}
	r.found = make(map[string]bool, len(found))
	for _, band := range found {
		r.found[band] = true
	}

	rawTargets, ok := snapshot["targets"].(map[string]interface{})
	if !ok {
		// Targets are session-local; absent means the next session retunes.
		return nil
	}
	targets := make(map[string]radioTarget, len(rawTargets))
	for band, raw := range rawTargets {
		fields, ok := raw.(map[string]interface{})
		if !ok {
			return fmt.Errorf("radio puzzle state: malformed target for band %q", band)
		}
		frequency, err := intFromSnapshot(fields["frequency"])
		if err != nil {
			return fmt.Errorf("radio puzzle state: band %q: %w", band, err)
		}
		message, err := stringFromSnapshot(fields["message"])
		if err != nil {
			return fmt.Errorf("radio puzzle state: band %q: %w", band, err)
		}
		targets[band] = radioTarget{frequency: frequency, message: message}
	}
	r.targets = targets
	return nil
}
