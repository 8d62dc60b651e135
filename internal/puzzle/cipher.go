package puzzle

import (
	"fmt"
	"strings"

	"github.com/tatianab/seattle-noir/internal/gameio"
	"github.com/tatianab/seattle-noir/internal/item"
	"github.com/tatianab/seattle-noir/internal/logging"
	"github.com/tatianab/seattle-noir/internal/state"
)

const (
	cipherShift       = 7
	cipherMaxAttempts = 5
	alphabet          = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

type cipherMessage struct {
	encoded string
	decoded string
	remark  string
}

// The messages scratched into the evidence room work table, in story order.
// Solving the first sets the main story flag; solving all three earns the
// bonus flag.
var cipherMessages = []cipherMessage{
	{encoded: "ZLHAASL", decoded: "SEATTLE", remark: "This must be significant - it's the name of our city!"},
	{encoded: "KVJRZ", decoded: "DOCKS", remark: "The docks... this confirms the waterfront connection."},
	{encoded: "YLKZAHY", decoded: "REDSTAR", remark: "Red Star - this matches what we heard about!"},
}

// Cipher is the cipher wheel puzzle: a fixed substitution shift over the
// 26-letter alphabet hides three messages.
type Cipher struct {
	solved map[string]bool
	log    *logging.Logger
}

func NewCipher(log *logging.Logger) *Cipher {
	return &Cipher{
		solved: make(map[string]bool),
		log:    log,
	}
}

func (c *Cipher) Name() string { return "cipher_puzzle" }

func (c *Cipher) Requirements() []string { return []string{"cipher_wheel"} }

// Encode applies the cipher shift to text. Non-alphabetic characters pass
// through unchanged.
func Encode(text string, shift int) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(text) {
		idx := strings.IndexRune(alphabet, r)
		if idx < 0 {
			b.WriteRune(r)
			continue
		}
		b.WriteByte(alphabet[(idx+shift)%26])
	}
	return b.String()
}

// Decode reverses Encode.
func Decode(text string, shift int) string {
	return Encode(text, 26-shift%26)
}

func (c *Cipher) unsolved() []cipherMessage {
	var out []cipherMessage
	for _, m := range cipherMessages {
		if !c.solved[m.encoded] {
			out = append(out, m)
		}
	}
	return out
}

func (c *Cipher) Solve(term gameio.Terminal, inv *item.Inventory, st *state.State) (bool, error) {
	c.log.Debug("cipher session started")
	unsolved := c.unsolved()
	if len(unsolved) == 0 {
		term.Print("You've already decoded every message scratched into the table.")
		return true, nil
	}
	if st.Flag(state.SolvedCipher) {
		term.Print("You've already decoded the main message, but there might be more to find.")
	}

	term.Print("Examining the cipher wheel, you see:")
	term.Print("- An outer ring with the letters A through Z")
	term.Print("- An inner ring that can be rotated to align with different letters")
	term.Print("- Several encoded messages scratched into the desk:")
	for _, m := range unsolved {
		term.Print("  " + m.encoded)
	}

	attempts := 0
	for attempts < cipherMaxAttempts {
		answer, err := readAnswer(term, "\nEnter decoded message (or 'hint' for help, 'quit' to leave): ")
		if err != nil {
			return false, err
		}

		switch answer {
		case "QUIT":
			return false, nil
		case "HINT":
			c.hint(term, attempts)
			continue
		case "":
			term.Print("Please enter a message using only letters.")
			continue
		}

		if !onlyChars(answer, alphabet) {
			term.Print("Please enter a valid message using only letters.")
			continue
		}

		matched := false
		for _, m := range unsolved {
			if answer == m.decoded {
				matched = true
				c.log.Debug("cipher message %s decoded", m.encoded)
				term.Print(fmt.Sprintf("Success! You've decoded '%s' to '%s'!", m.encoded, m.decoded))
				term.Print(m.remark)
				c.solved[m.encoded] = true
				if m.encoded == cipherMessages[0].encoded {
					st.SetFlag(state.SolvedCipher, true)
				}
				if len(c.unsolved()) == 0 {
					st.SetFlag(state.DecodedAllCiphers, true)
					term.Print("You've decoded all the messages! The pattern is clear now.")
				} else {
					term.Print(fmt.Sprintf("There are %d more encoded messages to solve.", len(c.unsolved())))
				}
				break
			}
		}
		if matched {
			return true, nil
		}

		attempts++
		st.AddCounter(state.CipherAttempts, 1)
		term.Print(fmt.Sprintf("That doesn't seem right. %d attempts remaining.", cipherMaxAttempts-attempts))
		switch attempts {
		case 2:
			term.Print("Hint: Each letter might be shifted by the same amount...")
		case 4:
			term.Print(fmt.Sprintf("Hint: Try shifting each letter %d positions...", cipherShift))
		}
	}

	c.log.Debug("cipher session exhausted")
	term.Print("The cipher wheel needs to be realigned. Try again later.")
	return false, nil
}

func (c *Cipher) hint(term gameio.Terminal, attempts int) {
	if attempts < 2 {
		term.Print("Try aligning different letters and looking for patterns.")
		term.Print("The text might be a local place or common word.")
		return
	}
	term.Print("Notice how each letter might be shifted by the same amount...")
}

func (c *Cipher) State() map[string]interface{} {
	solved := make([]string, 0, len(c.solved))
	for _, m := range cipherMessages {
		if c.solved[m.encoded] {
			solved = append(solved, m.encoded)
		}
	}
	return map[string]interface{}{
		"solved_ciphers": solved,
	}
}

func (c *Cipher) Restore(snapshot map[string]interface{}) error {
	solved, err := stringsFromSnapshot(snapshot["solved_ciphers"])
	if err != nil {
		return fmt.Errorf("cipher puzzle state: %w", err)
	}
	c.solved = make(map[string]bool, len(solved))
	for _, encoded := range solved {
		c.solved[encoded] = true
	}
	return nil
}
