// Package tui renders the game in a terminal UI: a scrolling narrative log,
// a side pane with the detective's current position and inventory, and a
// single input line. The synchronous game loop runs on its own goroutine and
// talks to the UI through a channel-backed Terminal.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tatianab/seattle-noir/internal/gameio"
)

var (
	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EEEEEE")).
			Background(lipgloss.Color("#5F5F87")).
			Bold(true).
			PaddingLeft(1)

	gameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			PaddingLeft(2).
			Foreground(lipgloss.Color("#AAAAAA"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true).
			Underline(true)
)

// Status is the side-pane snapshot, polled from the game between turns.
type Status struct {
	Location  string
	Inventory []string
}

// Options wires the UI to a game session.
type Options struct {
	// Engine is the blocking game loop. It receives the UI-backed Terminal
	// and runs until the player quits or the input stream is interrupted.
	Engine func(term gameio.Terminal) error
	// Status supplies the side-pane snapshot. Called from the UI goroutine,
	// only between engine reads, when the engine is parked on ReadLine.
	Status func() Status
}

type outputMsg string

type engineDoneMsg struct {
	err error
}

// bridge implements gameio.Terminal over channels so the synchronous engine
// can drive the asynchronous UI.
type bridge struct {
	outputs chan string
	inputs  chan string
	done    chan struct{}
}

func newBridge() *bridge {
	return &bridge{
		outputs: make(chan string, 64),
		inputs:  make(chan string),
		done:    make(chan struct{}),
	}
}

func (b *bridge) ReadLine(prompt string) (string, error) {
	if p := strings.TrimSpace(prompt); p != "" && p != ">" {
		b.Print(p)
	}
	select {
	case line := <-b.inputs:
		return line, nil
	case <-b.done:
		return "", gameio.ErrInterrupted
	}
}

func (b *bridge) Print(text string) {
	select {
	case b.outputs <- text:
	case <-b.done:
	}
}

// PrintSlowly is plain output in the TUI; the viewport does not pace text.
func (b *bridge) PrintSlowly(text string) {
	b.Print(text)
}

type model struct {
	bridge     *bridge
	status     func() Status
	textInput  textinput.Model
	viewport   viewport.Model
	gameLog    string
	width      int
	height     int
	ready      bool
	engineDone bool
	err        error
}

func newModel(b *bridge, status func() Status) model {
	ti := textinput.New()
	ti.Placeholder = "What do you do, detective?"
	ti.Focus()
	ti.CharLimit = 156
	ti.Width = 40

	return model{
		bridge:    b,
		status:    status,
		textInput: ti,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.waitForOutput())
}

// waitForOutput blocks on the engine's output channel and feeds lines into
// the update loop one at a time.
func (m model) waitForOutput() tea.Cmd {
	return func() tea.Msg {
		text, ok := <-m.bridge.outputs
		if !ok {
			return nil
		}
		return outputMsg(text)
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyEnter:
			if m.engineDone {
				return m, tea.Quit
			}
			line := m.textInput.Value()
			if line == "" {
				return m, nil
			}
			m.textInput.Reset()

			logWidth := m.logWidth()
			m.gameLog += "\n" + userStyle.Width(logWidth).Render("> "+line) + "\n"
			m.refreshViewport()

			select {
			case m.bridge.inputs <- line:
			case <-m.bridge.done:
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(m.logWidth(), msg.Height-6)
			m.ready = true
		} else {
			m.viewport.Width = m.logWidth()
			m.viewport.Height = msg.Height - 6
		}
		m.refreshViewport()

	case outputMsg:
		m.gameLog += gameStyle.Width(m.logWidth()).Render(string(msg)) + "\n"
		m.refreshViewport()
		return m, m.waitForOutput()

	case engineDoneMsg:
		m.engineDone = true
		m.err = msg.err
		m.gameLog += "\n" + helpStyle.Render("The session has ended. Press Enter to close.") + "\n"
		m.refreshViewport()
		return m, nil
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m model) logWidth() int {
	w := int(float64(m.width) * 0.72)
	if w < 20 {
		w = 20
	}
	return w
}

func (m *model) refreshViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.gameLog)
	m.viewport.GotoBottom()
}

func (m model) View() string {
	if !m.ready {
		return "\n  Loading Seattle Noir...\n"
	}

	mainView := lipgloss.JoinHorizontal(lipgloss.Top,
		m.viewport.View(),
		m.renderPane(),
	)
	help := helpStyle.Render("Type 'help' for commands. Esc or Ctrl+C to leave.")

	return "\n" + lipgloss.JoinVertical(lipgloss.Left,
		mainView,
		"\n"+m.textInput.View(),
		"\n"+help,
	) + "\n"
}

func (m model) renderPane() string {
	st := m.status()

	location := titleStyle.Render("LOCATION") + "\n" +
		strings.ReplaceAll(st.Location, "_", " ") + "\n\n"

	invTitle := titleStyle.Render("CARRYING") + "\n"
	inventory := ""
	if len(st.Inventory) == 0 {
		inventory = "(nothing)"
	} else {
		for _, id := range st.Inventory {
			inventory += "- " + strings.ReplaceAll(id, "_", " ") + "\n"
		}
	}

	paneWidth := m.width - m.logWidth() - 4
	if paneWidth < 16 {
		paneWidth = 16
	}
	return paneStyle.Width(paneWidth).Height(m.viewport.Height).Render(location + invTitle + inventory)
}

// Run starts the UI and the engine goroutine, and blocks until the UI exits.
// Closing the UI interrupts the engine's next read, which lets the game loop
// finish cleanly (auto-saving on the way out).
func Run(opts Options) error {
	b := newBridge()
	p := tea.NewProgram(newModel(b, opts.Status), tea.WithAltScreen())

	engineErr := make(chan error, 1)
	go func() {
		err := opts.Engine(b)
		engineErr <- err
		p.Send(engineDoneMsg{err: err})
	}()

	_, uiErr := p.Run()
	close(b.done)

	if err := <-engineErr; err != nil {
		return fmt.Errorf("game session: %w", err)
	}
	return uiErr
}
