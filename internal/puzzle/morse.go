package puzzle

import (
	"fmt"
	"strings"

	"github.com/tatianab/seattle-noir/internal/gameio"
	"github.com/tatianab/seattle-noir/internal/item"
	"github.com/tatianab/seattle-noir/internal/logging"
	"github.com/tatianab/seattle-noir/internal/state"
)

const morseMaxAttempts = 5

// morseCode maps letters to dot/dash sequences; '/' separates words.
var morseCode = map[rune]string{
	'A': ".-", 'B': "-...", 'C': "-.-.", 'D': "-..",
	'E': ".", 'F': "..-.", 'G': "--.", 'H': "....",
	'I': "..", 'J': ".---", 'K': "-.-", 'L': ".-..",
	'M': "--", 'N': "-.", 'O': "---", 'P': ".--.",
	'Q': "--.-", 'R': ".-.", 'S': "...", 'T': "-",
	'U': "..-", 'V': "...-", 'W': ".--", 'X': "-..-",
	'Y': "-.--", 'Z': "--..", ' ': "/",
}

type morseMessage struct {
	phrase  string
	morse   string
	clue    string
	hint    string
	success string
	// flag set in game state when this message is decoded, if any.
	flag string
}

// Messages tapped through the tunnel walls, presented least-recently-solved
// first.
var morseMessages = []morseMessage{
	{
		phrase:  "SECRET ROOM",
		morse:   "... . -.-. .-. . - / .-. --- --- --",
		clue:    "a hidden location",
		hint:    "Think about where something might be concealed...",
		success: "The tapping reveals a hidden area!",
		flag:    state.FoundSecretRoom,
	},
	{
		phrase:  "DOCK SEVEN",
		morse:   "-.. --- -.-. -.- / ... . ...- . -.",
		clue:    "a specific location",
		hint:    "Where ships might be found...",
		success: "Another location revealed through the code!",
		flag:    state.DecodedDockSeven,
	},
}

// EncodeMorse converts text to space-separated Morse with '/' between
// words. Characters outside the table are dropped.
func EncodeMorse(text string) string {
	var parts []string
	for _, r := range strings.ToUpper(text) {
		if code, ok := morseCode[r]; ok {
			parts = append(parts, code)
		}
	}
	return strings.Join(parts, " ")
}

// Morse is the wall-tapping puzzle in the underground tunnels. Decoding
// "SECRET ROOM" opens the way to the secret warehouse.
type Morse struct {
	solved map[string]bool
	log    *logging.Logger
}

func NewMorse(log *logging.Logger) *Morse {
	return &Morse{
		solved: make(map[string]bool),
		log:    log,
	}
}

func (m *Morse) Name() string { return "morse_puzzle" }

// No items required; the tapping is audible to anyone who listens.
func (m *Morse) Requirements() []string { return nil }

func (m *Morse) next() *morseMessage {
	for i := range morseMessages {
		if !m.solved[morseMessages[i].phrase] {
			return &morseMessages[i]
		}
	}
	return nil
}

func (m *Morse) Solve(term gameio.Terminal, inv *item.Inventory, st *state.State) (bool, error) {
	m.log.Debug("morse session started")
	msg := m.next()
	if msg == nil {
		term.Print("You've decoded all the messages in the walls.")
		return true, nil
	}

	term.Print("You hear tapping from the walls...")
	term.Print(fmt.Sprintf("It seems to be a message about %s:", msg.clue))
	term.Print("")
	term.Print(msg.morse)
	term.Print("")
	term.Print("Morse Code Guide:")
	term.Print("- Letters are separated by spaces")
	term.Print("- Words are separated by '/'")
	term.Print("- '.' represents a dot (short tap)")
	term.Print("- '-' represents a dash (long tap)")

	attempts := 0
	for attempts < morseMaxAttempts {
		answer, err := readAnswer(term, "\nWhat's the message? (or 'hint'/'quit'): ")
		if err != nil {
			return false, err
		}

		switch answer {
		case "QUIT":
			return false, nil
		case "HINT":
			m.hint(term, msg, attempts)
			continue
		}

		if !onlyChars(answer, alphabet+" ") {
			term.Print("Please enter a valid message using letters and spaces.")
			continue
		}

		if answer == msg.phrase {
			m.log.Debug("morse message %q decoded", msg.phrase)
			term.Print(msg.success)
			m.solved[msg.phrase] = true
			if msg.flag != "" {
				st.SetFlag(msg.flag, true)
			}
			if msg.phrase == "SECRET ROOM" {
				term.Print("This must be significant - a secret room in the underground!")
			}
			remaining := 0
			for _, other := range morseMessages {
				if !m.solved[other.phrase] {
					remaining++
				}
			}
			if remaining > 0 {
				term.Print(fmt.Sprintf("You can still hear tapping... %d more message(s) to decode.", remaining))
			}
			return true, nil
		}

		attempts++
		st.AddCounter(state.MorseAttempts, 1)
		term.Print(fmt.Sprintf("That doesn't seem right. %d attempts remaining.", morseMaxAttempts-attempts))
		if attempts == 1 {
			term.Print("Type 'hint' for help.")
		}
	}

	term.Print("The tapping fades away. Try listening again later.")
	return false, nil
}

func (m *Morse) hint(term gameio.Terminal, msg *morseMessage, attempts int) {
	switch {
	case attempts <= 1:
		term.Print("Hint: " + msg.hint)
	case attempts == 2:
		term.Print("Hint: Remember:")
		term.Print("S = ... (three dots)")
		term.Print("E = . (single dot)")
	default:
		first := rune(msg.phrase[0])
		term.Print(fmt.Sprintf("Hint: The message starts with '%c'", first))
		term.Print(fmt.Sprintf("'%s' decodes to '%c'", morseCode[first], first))
	}
}

func (m *Morse) State() map[string]interface{} {
	solved := make([]string, 0, len(m.solved))
	for _, msg := range morseMessages {
		if m.solved[msg.phrase] {
			solved = append(solved, msg.phrase)
		}
	}
	return map[string]interface{}{
		"solved_messages": solved,
	}
}

func (m *Morse) Restore(snapshot map[string]interface{}) error {
	solved, err := stringsFromSnapshot(snapshot["solved_messages"])
	if err != nil {
		return fmt.Errorf("morse puzzle state: %w", err)
	}
	m.solved = make(map[string]bool, len(solved))
	for _, phrase := range solved {
		m.solved[phrase] = true
	}
	return nil
}
