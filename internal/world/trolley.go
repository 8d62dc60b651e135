package world

import "fmt"

// TrolleyLocation is the location identifier for being aboard the trolley.
const TrolleyLocation = "trolley"

// TrolleyAdvance is the pseudo-exit that moves the trolley one stop along
// its line instead of moving the player off it.
const TrolleyAdvance = "next"

type trolleyStop struct {
	name        string
	offExit     string
	destination string
	note        string
}

// The line is a fixed circuit; advancing from the last stop wraps to the
// first.
var trolleyLine = []trolleyStop{
	{
		name:        "Downtown Stop",
		offExit:     "off",
		destination: "pike_place",
		note:        "The Downtown trolley stop has served Pike Place Market since 1907, connecting shoppers to Seattle's famous public market.",
	},
	{
		name:        "Pioneer Square Stop",
		offExit:     "off",
		destination: "pioneer_square",
		note:        "Pioneer Square's trolley stop dates back to the 1890s, serving Seattle's historic first neighborhood.",
	},
	{
		name:        "Waterfront Stop",
		offExit:     "off",
		destination: "waterfront",
		note:        "The Waterfront trolley line, established in the early 1900s, was crucial for maritime commerce and shipyard workers.",
	},
	{
		name:        "Smith Tower Stop",
		offExit:     "off",
		destination: "smith_tower",
		note:        "Added in 1914 when Smith Tower opened, this stop served Seattle's first skyscraper.",
	},
}

// Trolley is the bounded circular line under the trolley location. Its
// transition function is a deterministic successor, unlike the named-exit
// lookup of the free-form graph.
type Trolley struct {
	position int
}

func NewTrolley() *Trolley {
	return &Trolley{}
}

// Position returns the current stop index.
func (t *Trolley) Position() int {
	return t.position
}

// SetPosition restores a persisted stop index.
func (t *Trolley) SetPosition(position int) error {
	if position < 0 || position >= len(trolleyLine) {
		return fmt.Errorf("invalid trolley position %d", position)
	}
	t.position = position
	return nil
}

// Exits returns the exits available aboard the trolley: the current stop's
// off-exit plus the advance pseudo-exit.
func (t *Trolley) Exits() map[string]string {
	stop := trolleyLine[t.position]
	return map[string]string{
		stop.offExit:   stop.destination,
		TrolleyAdvance: TrolleyLocation,
	}
}

// Advance moves the line one stop forward, wrapping at the end, and returns
// the arrival notice.
func (t *Trolley) Advance() string {
	atEnd := t.position == len(trolleyLine)-1
	t.position = (t.position + 1) % len(trolleyLine)
	stop := trolleyLine[t.position]
	if atEnd {
		return fmt.Sprintf("End of the line. The trolley loops back around.\n\nThe trolley arrives at: %s\nType 'off' to exit or 'next' to continue.", stop.name)
	}
	return fmt.Sprintf("The trolley rattles forward...\n\nThe trolley arrives at: %s\nType 'off' to exit or 'next' to continue.", stop.name)
}

// BoardingNotice describes the trolley and its controls on boarding.
func (t *Trolley) BoardingNotice() string {
	stop := trolleyLine[t.position]
	return fmt.Sprintf(`You board the electric trolley. The wooden seats and brass fixtures speak to an earlier era.

Current Stop: %s

Trolley Instructions:
- Type 'next' to move to the next stop
- Type 'off' to exit at the current stop
- Type 'history' to learn about the current stop

The trolley follows a fixed route:
Downtown -> Pioneer Square -> Waterfront -> Smith Tower`, stop.name)
}

// Status reports the current and next stop.
func (t *Trolley) Status() string {
	current := trolleyLine[t.position]
	next := trolleyLine[(t.position+1)%len(trolleyLine)]
	return fmt.Sprintf("Current Stop: %s\nNext Stop: %s", current.name, next.name)
}

// StopNote returns the historical note for the current stop.
func (t *Trolley) StopNote() string {
	return trolleyLine[t.position].note
}
