package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/skyraid/internal/core"
	"github.com/vovakirdan/skyraid/internal/registry"
)

// helpRows is the space reserved under the playfield for the help line.
const helpRows = 1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model that hosts one game.
// Frames are driven by TickMsg; key messages feed the input producer
// between frames.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	config    core.RuntimeConfig
	input     *core.InputState
	keys      KeyMap
	help      help.Model
	gameState core.GameState
	quitting  bool
	now       func() time.Time
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, playfieldRows(cfg.ScreenH)),
		config: cfg,
		input:  core.NewInputState(core.DefaultHoldWindow, core.DefaultRepeatDelay),
		keys:   DefaultKeyMap(),
		help:   h,
		now:    time.Now,
	}
}

func playfieldRows(h int) int {
	if h-helpRows < 1 {
		return 1
	}
	return h - helpRows
}

// Init resets the game and schedules the first frame.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Shot) {
		m.saveScreenshot()
		return m, nil
	}

	if m.keys.Apply(msg, m.input, m.now()) {
		m.game.Stop()
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize follows the terminal size. The world keeps its units and
// the canvas rescales, so the run continues.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playfieldRows(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one frame and schedules the next one while the game
// is still running.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.game.Stopped() {
		m.gameState = m.game.State()
		return m, tea.Quit
	}

	result := m.game.Frame(now, m.input.Frame(now))
	m.gameState = result.State

	if m.gameState.Stopped {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".skyraid", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the playfield with the help line below it.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// State returns the game state seen after the last frame.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program for game and blocks until it exits.
func Run(game registry.Game, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(game, cfg),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
