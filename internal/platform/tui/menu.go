package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flappy-coins/internal/config"
	"github.com/vovakirdan/flappy-coins/internal/core"
)

// MenuItem is one selectable difficulty.
type MenuItem struct {
	Preset config.DifficultyPreset
	Label  string
	Hint   string
}

// DefaultMenuItems lists the difficulty presets in menu order.
func DefaultMenuItems() []MenuItem {
	return []MenuItem{
		{config.DifficultyEasy, "Easy", "slower pipes"},
		{config.DifficultyNormal, "Normal", "the classic"},
		{config.DifficultyHard, "Hard", "faster pipes"},
		{config.DifficultyFixed, "Fixed", "speed never grows"},
	}
}

// MenuModel is the difficulty picker shown before a game.
type MenuModel struct {
	items    []MenuItem
	cursor   int
	best     int
	config   core.RuntimeConfig
	keys     MenuKeyMap
	help     help.Model
	quitting bool
	selected *MenuItem
}

// NewMenuModel creates a menu with the cursor on Normal.
func NewMenuModel(cfg core.RuntimeConfig, best int) MenuModel {
	items := DefaultMenuItems()
	cursor := 0
	for i, it := range items {
		if it.Preset == config.DifficultyNormal {
			cursor = i
		}
	}

	return MenuModel{
		items:  items,
		cursor: cursor,
		best:   best,
		config: cfg,
		keys:   DefaultMenuKeyMap(),
		help:   help.New(),
	}
}

func (m MenuModel) Init() tea.Cmd {
	return nil
}

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.cursor = max(m.cursor-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.cursor = min(m.cursor+1, len(m.items)-1)
	case key.Matches(msg, m.keys.Select):
		selected := m.items[m.cursor]
		m.selected = &selected
		return m, tea.Quit
	}
	return m, nil
}

// View renders the title, the best score and the preset list, centered.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var list strings.Builder
	for i, item := range m.items {
		if i > 0 {
			list.WriteByte('\n')
		}
		if i == m.cursor {
			list.WriteString(activeStyle.Render(fmt.Sprintf("> %-7s %s", item.Label, item.Hint)))
			continue
		}
		list.WriteString(fmt.Sprintf("  %-7s %s", item.Label, mutedStyle.Render(item.Hint)))
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		"",
		titleStyle.Render("F L A P P Y   C O I N S"),
		"",
		fmt.Sprintf("Best: %d", m.best),
		"",
		"Select difficulty",
		"",
		frameStyle.Render(list.String()),
		"",
		m.help.View(m.keys),
	)
	return centered(body, m.config.ScreenW)
}

// Selected returns the chosen item, or nil before a choice.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the runtime config, updated by resizes.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Preset config.DifficultyPreset
	Config core.RuntimeConfig
	Quit   bool
}

// RunMenu runs the difficulty picker and returns the selection.
func RunMenu(cfg core.RuntimeConfig, best int) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(cfg, best), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, fmt.Errorf("tui: menu: %w", err)
	}

	m, ok := final.(MenuModel)
	if !ok || m.Selected() == nil {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return MenuResult{Preset: m.Selected().Preset, Config: m.Config()}, nil
}
