package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-coins/internal/core"
)

// Game is what the terminal platform drives. The game owns its loop state:
// Frame advances and draws one frame and reports whether another frame
// should be scheduled; Handle reports whether an input restarted the loop.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	Handle(a core.Action) bool
	Frame(dst *core.Screen) bool
	Render(dst *core.Screen)
	State() core.GameState
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game     Game
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	logger   *log.Logger
	loop     uint64
	ticking  bool // A TickMsg is in flight
	quitting bool

	menuBack   bool // Back returns to a menu instead of quitting
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config: cfg,
		keys:   DefaultKeyMap(),
		logger: logger,
		loop:   loopIDs.Add(1),
	}
}

// Init resets the game and draws the start panel. The tick loop starts
// only when the player starts a game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.game.Render(m.screen)
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		if !m.menuBack {
			m.quitting = true
			return m, tea.Quit
		}
		// A run in flight has to be paused before leaving.
		if st := m.game.State(); !st.Running() || st.Paused {
			m.backToMenu = true
		}
		return m, nil
	}

	kick := m.game.Handle(action)
	m.game.Render(m.screen)

	if kick && !m.ticking {
		m.ticking = true
		return m, tickCmd(m.config.TickRate, m.loop)
	}
	return m, nil
}

// handleResize processes window resize events. The field is fixed for a
// running session, so only a game that has not started picks up the new size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if m.game.State().Phase == core.PhaseNotStarted {
		m.game.Reset(m.config)
	}
	m.game.Render(m.screen)

	return m, nil
}

// handleTick runs one frame and reschedules only while the game asks for it.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.ticking = m.game.Frame(m.screen)
	if !m.ticking {
		return m, nil
	}
	return m, tickCmd(m.config.TickRate, m.loop)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot: no home directory", "error", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot: cannot create directory", "dir", dir, "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot: cannot write file", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// IsQuitting returns true if the user asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// View renders the last drawn frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given game.
func Run(game Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
