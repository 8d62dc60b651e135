// Package game runs the turn loop: it reads commands, dispatches them to the
// world, inventory, and puzzle components, evaluates the win condition, and
// drives auto-saving. The loop is fault tolerant: an unexpected error in a
// handler is logged and reported generically, and play continues.
package game

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tatianab/seattle-noir/internal/gameio"
	"github.com/tatianab/seattle-noir/internal/item"
	"github.com/tatianab/seattle-noir/internal/logging"
	"github.com/tatianab/seattle-noir/internal/puzzle"
	"github.com/tatianab/seattle-noir/internal/save"
	"github.com/tatianab/seattle-noir/internal/state"
	"github.com/tatianab/seattle-noir/internal/world"
)

const title = `
===================================
        SEATTLE NOIR
   A Detective Story - 1947
===================================`

const intro = `Seattle, 1947. The rain hasn't let up for three days.

You're Detective Johnny Diamond, and the Captain has a case for you:
cargo keeps vanishing from the waterfront. Medical supplies meant for
veterans' hospitals, disappearing into the night. The port authority is
stumped, City Hall wants answers, and the trail is getting colder with
every tide.

Your desk is in the Seattle Police Department headquarters. The case
starts here.

Type 'help' at any time for a list of commands.`

const ending = `The pieces finally fit together. The wallet's business card, the torn
letter, the dock schedule, the coded messages - they all point to
Maritime Imports Ltd., running stolen medical supplies through Dock 7
under cover of night.

With the smuggling plans as evidence, the arrests come quickly. The
supplies are recovered and sent where they were always meant to go.

Captain Morrison just nods when you drop the file on his desk. In this
city, that's high praise.

Outside, the rain keeps falling on Seattle. Somewhere out there is the
next case. But tonight, Detective Diamond, the city owes you one.

                        THE END`

const helpText = `Available commands:
  look                  - describe your surroundings
  go <direction>        - move (or just type the direction)
  take <item>           - pick up an item
  examine <item>        - inspect an item closely
  use <item>            - use an item here
  combine <a> <b>       - use two items together
  inventory             - list what you're carrying
  talk                  - talk to whoever is here
  history               - a historical note about this place
  solve                 - attempt the puzzle at this location
  save [name]           - save the game
  load <name>           - load a saved game
  saves                 - list saved games
  help                  - this text
  quit                  - leave the game`

// directionAliases normalizes shorthand movement input.
var directionAliases = map[string]string{
	"n": "north", "s": "south", "e": "east", "w": "west",
	"u": "up", "d": "down",
	"leave": "out", "exit": "out",
}

// Controller owns one playthrough.
type Controller struct {
	term    gameio.Terminal
	st      *state.State
	world   *world.Graph
	inv     *item.Inventory
	puzzles *puzzle.Directory
	saves   *save.Manager
	log     *logging.Logger

	autoSaveEvery time.Duration
	lastAutoSave  time.Time

	quit bool
	won  bool
}

func NewController(term gameio.Terminal, st *state.State, w *world.Graph, inv *item.Inventory,
	puzzles *puzzle.Directory, saves *save.Manager, autoSaveEvery time.Duration, log *logging.Logger) *Controller {
	return &Controller{
		term:          term,
		st:            st,
		world:         w,
		inv:           inv,
		puzzles:       puzzles,
		saves:         saves,
		log:           log,
		autoSaveEvery: autoSaveEvery,
		lastAutoSave:  time.Now(),
	}
}

// Run plays the game until the player quits or wins. An interrupted input
// stream ends the session with a final auto-save.
func (c *Controller) Run() error {
	c.term.Print(title)
	c.term.PrintSlowly(intro)
	c.term.Print("")
	c.term.Print(c.world.Describe())

	for !c.quit && !c.won {
		line, err := c.term.ReadLine("\n> ")
		if err != nil {
			if errors.Is(err, gameio.ErrInterrupted) {
				c.log.Info("input interrupted, auto-saving")
				c.autoSave()
				return nil
			}
			return fmt.Errorf("reading command: %w", err)
		}

		c.handle(line)

		if !c.won && c.checkWin() {
			c.won = true
			c.term.Print("")
			c.term.PrintSlowly(ending)
		}
		c.maybeAutoSave()
	}
	return nil
}

// handle dispatches one command, converting a handler panic into a generic
// message so the loop survives.
func (c *Controller) handle(line string) {
	defer func() {
		if r := recover(); r != nil {
			c.log.Error("command %q: %v", line, r)
			c.term.Print("Something went wrong. The case continues regardless.")
		}
	}()

	fields := strings.Fields(strings.ToLower(strings.TrimSpace(line)))
	if len(fields) == 0 {
		return
	}
	verb, args := fields[0], fields[1:]
	if alias, ok := directionAliases[verb]; ok && len(args) == 0 {
		verb = alias
	}

	switch verb {
	case "look", "l":
		c.term.Print(c.world.Describe())
	case "inventory", "inv", "i":
		c.term.Print(c.inv.Describe())
	case "go", "move":
		if len(args) == 0 {
			c.term.Print("Go where?")
			return
		}
		c.move(args[0])
	case "take", "get":
		if len(args) == 0 {
			c.term.Print("Take what?")
			return
		}
		c.take(strings.Join(args, "_"))
	case "examine", "x":
		if len(args) == 0 {
			c.term.Print("Examine what?")
			return
		}
		c.term.Print(c.inv.Examine(strings.Join(args, "_"), c.world.AvailableItems(), c.st))
	case "use":
		if len(args) == 0 {
			c.term.Print("Use what?")
			return
		}
		c.term.Print(c.inv.Use(strings.Join(args, "_"), c.world.Current(), c.st))
	case "combine":
		c.combine(args)
	case "talk":
		c.term.Print(c.world.Talk(c.st))
	case "history":
		if note, ok := c.world.HistoricalNote(); ok {
			c.term.Print(note)
		} else {
			c.term.Print("Nothing of historical note here.")
		}
	case "solve":
		c.puzzles.Handle(c.world.Current(), c.term, c.inv, c.st)
	case "save":
		name := ""
		if len(args) > 0 {
			name = strings.Join(args, "_")
		}
		c.saveGame(name)
	case "load":
		if len(args) == 0 {
			c.term.Print("Load which save? Use 'saves' to list them.")
			return
		}
		c.loadGame(args[0])
	case "saves":
		c.listSaves()
	case "status":
		if c.world.Current() == world.TrolleyLocation {
			c.term.Print(c.world.Trolley().Status())
		} else {
			c.term.Print("You check your notes. The case is still open.")
		}
	case "help", "?":
		c.term.Print(helpText)
	case "quit", "q":
		c.confirmQuit()
	default:
		// Bare exit names work as movement.
		if c.tryMove(verb) {
			return
		}
		c.term.Print("I don't understand that command. Type 'help' for options.")
	}
}

func (c *Controller) move(direction string) {
	if alias, ok := directionAliases[direction]; ok {
		direction = alias
	}
	msg, moved := c.world.Move(direction, c.st)
	if msg != "" {
		c.term.Print(msg)
	}
	if moved && msg == "" {
		c.term.Print(c.world.Describe())
	}
}

// tryMove attempts the word as an exit name; reports whether it matched.
func (c *Controller) tryMove(word string) bool {
	msg, moved := c.world.Move(word, c.st)
	if !moved && msg == "You can't go that way." {
		return false
	}
	if msg != "" {
		c.term.Print(msg)
	}
	if moved && msg == "" {
		c.term.Print(c.world.Describe())
	}
	return true
}

func (c *Controller) take(id string) {
	msg, ok := c.inv.Take(id, c.world.AvailableItems(), c.st)
	if ok {
		c.world.TakeItem(id)
	}
	c.term.Print(msg)
}

func (c *Controller) combine(args []string) {
	// Accept "combine a with b" as well as "combine a b".
	var items []string
	for _, a := range args {
		if a == "with" || a == "and" {
			continue
		}
		items = append(items, a)
	}
	if len(items) != 2 {
		c.term.Print("Combine which two items? Try: combine <item> <item>")
		return
	}
	msg, _ := c.inv.Combine(items[0], items[1], c.st)
	c.term.Print(msg)
}

// checkWin reports whether the case can be closed: every critical story flag
// set and every required piece of evidence in hand.
func (c *Controller) checkWin() bool {
	for _, flag := range state.CaseStates {
		if !c.st.Flag(flag) {
			return false
		}
	}
	for _, id := range item.RequiredItems() {
		if !c.inv.Has(id) {
			return false
		}
	}
	return true
}

func (c *Controller) confirmQuit() {
	answer, err := c.term.ReadLine("Save before quitting? (yes/no/cancel): ")
	if err != nil {
		c.quit = true
		return
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "yes", "y":
		c.saveGame("")
		c.quit = true
	case "no", "n":
		c.quit = true
	default:
		c.term.Print("The case continues.")
	}
}

// record composes the full save record from the live components.
func (c *Controller) record() *save.Record {
	return &save.Record{
		CurrentLocation: c.world.Current(),
		GameState:       c.st.Snapshot(),
		LocationStates:  c.world.Snapshot(),
		InventoryState:  c.inv.Snapshot(),
		PuzzleStates:    c.puzzles.States(),
		TrolleyPosition: c.world.Trolley().Position(),
		Combinations:    c.inv.DiscoveredPairs(),
	}
}

func (c *Controller) saveGame(name string) {
	if err := c.saves.Save(name, c.record()); err != nil {
		c.log.Error("save failed: %v", err)
		c.term.Print("Couldn't save the game. Check the log for details.")
		return
	}
	c.term.Print("Game saved.")
}

// loadGame replaces all live state from a record. Validation happens before
// any live structure is touched, so a bad record leaves the game unchanged.
func (c *Controller) loadGame(name string) {
	rec, err := c.saves.Load(name)
	if err != nil {
		switch {
		case errors.Is(err, save.ErrNotFound):
			c.term.Print("No save by that name. Use 'saves' to list them.")
		case errors.Is(err, save.ErrMalformed):
			c.log.Warn("load %s: %v", name, err)
			c.term.Print("That save file is damaged and can't be loaded.")
		default:
			c.log.Error("load %s: %v", name, err)
			c.term.Print("Couldn't load the game. Check the log for details.")
		}
		return
	}
	if err := c.apply(rec); err != nil {
		c.log.Error("applying save %s: %v", name, err)
		c.term.Print("That save file is damaged and can't be loaded.")
		return
	}
	c.term.Print(fmt.Sprintf("Loaded '%s'.", rec.SaveName))
	c.term.Print("")
	c.term.Print(c.world.Describe())
}

/// apply is all-or-nothing: a record that fails any restore step leaves every
// live component exactly as it was. The current state is snapshotted first
// and put back on failure, so a later step rejecting the record cannot leave
// the earlier components holding the rejected record's values.
func (c *Controller) apply(rec *save.Record) error {
	prevState := c.st.Snapshot()
	prevLocation := c.world.Current()
	prevWorld := c.world.Snapshot()
	prevTrolley := c.world.Trolley().Position()
	prevInv := c.inv.Snapshot()
	prevPairs := c.inv.DiscoveredPairs()
	prevPuzzles := c.puzzles.States()

	err := func() error {
		if err := c.st.Restore(rec.GameState); err != nil {
			return err
		}
		if err := c.world.Restore(rec.CurrentLocation, rec.LocationStates, rec.TrolleyPosition); err != nil {
			return err
		}
		if err := c.inv.Restore(rec.InventoryState, rec.Combinations); err != nil {
			return err
		}
		return c.puzzles.RestoreStates(rec.PuzzleStates)
	}()
	if err == nil {
		return nil
	}

	// The snapshots came from live, validated state; putting them back
	// cannot fail. Any error here is logged rather than surfaced because
	// there is no better state to fall back to.
	if rbErr := c.st.Restore(prevState); rbErr != nil {
		c.log.Error("game state rollback: %v", rbErr)
	}
	if rbErr := c.world.Restore(prevLocation, prevWorld, prevTrolley); rbErr != nil {
		c.log.Error("world rollback: %v", rbErr)
	}
	if rbErr := c.inv.Restore(prevInv, prevPairs); rbErr != nil {
		c.log.Error("inventory rollback: %v", rbErr)
	}
	if rbErr := c.puzzles.RestoreStates(prevPuzzles); rbErr != nil {
		c.log.Error("puzzle state rollback: %v", rbErr)
	}
	return err
}

func (c *Controller) listSaves() {
	infos, err := c.saves.List()
	if err != nil {
		c.log.Error("listing saves: %v", err)
		c.term.Print("Couldn't read the save directory.")
		return
	}
	if len(infos) == 0 {
		c.term.Print("No saved games yet.")
		return
	}
	c.term.Print("Saved games (newest first):")
	for _, info := range infos {
		c.term.Print(fmt.Sprintf("  %s - %s at %s", info.Name,
			info.SavedAt.Format("2006-01-02 15:04"), info.Location))
	}
}

func (c *Controller) maybeAutoSave() {
	if c.autoSaveEvery <= 0 || time.Since(c.lastAutoSave) < c.autoSaveEvery {
		return
	}
	c.autoSave()
}

func (c *Controller) autoSave() {
	if err := c.saves.AutoSave(c.record()); err != nil {
		c.log.Warn("auto-save failed: %v", err)
		return
	}
	c.lastAutoSave = time.Now()
}
