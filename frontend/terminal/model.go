// Package terminal runs a match as a Bubble Tea program, rasterizing the
// display list onto the terminal's character grid.
package terminal

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/plus3/pong/config"
	"github.com/plus3/pong/pong"
)

// TickMsg advances the simulation by one frame.
type TickMsg time.Time

func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

var statusStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#c0c0ff"))

// Model is the Bubble Tea model for one match.
type Model struct {
	match    *pong.Match
	keys     *HeldKeys
	opposite map[pong.Key]pong.Key
	grid     *Grid
	interval time.Duration
	logger   *log.Logger
	finished bool
}

// NewModel wires held-key input into match and sizes the grid to a
// width x height terminal, one row of which is the status line.
func NewModel(match *pong.Match, width, height int, logger *log.Logger) *Model {
	if logger == nil {
		logger = log.Default()
	}
	cfg := match.Config()
	m := &Model{
		match:    match,
		keys:     NewHeldKeys(time.Duration(cfg.Terminal.KeyHoldMillis) * time.Millisecond),
		opposite: make(map[pong.Key]pong.Key),
		grid:     NewGrid(width, height-1),
		interval: time.Second / time.Duration(cfg.TickRate),
		logger:   logger,
	}
	for _, player := range []config.Player{cfg.Players.Left, cfg.Players.Right} {
		if player.Control != config.ControlKeyboard {
			continue
		}
		up, down := pong.ParseKey(player.Up), pong.ParseKey(player.Down)
		m.opposite[up] = down
		m.opposite[down] = up
	}
	match.SetKeys(m.keys)
	return m
}

func (m *Model) Init() tea.Cmd {
	return tickCmd(m.interval)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.grid.Resize(msg.Width, msg.Height-1)
		return m, nil

	case TickMsg:
		m.step()
		return m, tickCmd(m.interval)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc", "q":
		return m, tea.Quit
	}

	name := msg.String()
	if name == " " {
		name = "space"
	}
	key := pong.ParseKey(name)
	m.keys.Touch(key)
	// A press of one direction ends the hold on the other.
	if opp, ok := m.opposite[key]; ok {
		m.keys.Release(opp)
	}
	return m, nil
}

func (m *Model) step() {
	if m.finished {
		return
	}
	m.match.Process()
	if side, ok := m.match.Winner(); ok {
		left, right := m.match.Scores()
		m.logger.Info("match over", "winner", side, "left", left, "right", right)
		m.finished = true
	}
}

func (m *Model) View() string {
	m.grid.Clear()
	for _, call := range m.match.DrawCalls() {
		m.grid.Paint(call)
	}
	return m.grid.Render() + "\n" + statusStyle.Render(m.status())
}

func (m *Model) status() string {
	left, right := m.match.Scores()
	line := fmt.Sprintf(" left %d : %d right   tick %d   esc to quit", left, right, m.match.World().Tick())
	if side, ok := m.match.Winner(); ok {
		line = fmt.Sprintf(" %s wins %d : %d   esc to quit", side, left, right)
	}
	return line
}

// Run starts the program on the alternate screen and blocks until the user quits.
func Run(match *pong.Match, width, height int, logger *log.Logger) error {
	program := tea.NewProgram(NewModel(match, width, height, logger), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run terminal program: %w", err)
	}
	return nil
}
