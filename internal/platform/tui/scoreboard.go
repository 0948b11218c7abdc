package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flappy-coins/internal/storage"
)

// scoreboardLimit is how many runs the scoreboard loads.
const scoreboardLimit = 100

// ScoreSource is the read side of the score store.
type ScoreSource interface {
	TopScores(gameID string, limit int) ([]storage.ScoreEntry, error)
	GetGameStats(gameID string) (*storage.GameStats, error)
	BestScore(key string) (int, bool, error)
}

var scoreColumns = []table.Column{
	{Title: "Rank", Width: 6},
	{Title: "Score", Width: 8},
	{Title: "Speed", Width: 7},
	{Title: "Frames", Width: 8},
	{Title: "Date", Width: 16},
}

// ScoreboardModel browses the run history of one game.
type ScoreboardModel struct {
	gameID   string
	title    string
	bestKey  string
	source   ScoreSource
	scores   []storage.ScoreEntry
	stats    *storage.GameStats
	best     int
	err      error
	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	width    int
	quitting bool
}

// NewScoreboardModel creates a scoreboard and loads it. source may be nil.
func NewScoreboardModel(source ScoreSource, gameID, title, bestKey string, width, height int) ScoreboardModel {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))

	m := ScoreboardModel{
		gameID:  gameID,
		title:   title,
		bestKey: bestKey,
		source:  source,
		keys:    DefaultScoreboardKeyMap(),
		help:    help.New(),
		width:   width,
		table: table.New(
			table.WithColumns(scoreColumns),
			table.WithFocused(true),
			table.WithStyles(styles),
		),
	}
	m.fit(height)
	m.load()
	return m
}

// fit sizes the table to the rows left under the title, stats and help.
func (m *ScoreboardModel) fit(height int) {
	m.table.SetHeight(max(height-10, 3))
}

// load reads scores, stats and the best score from the source.
func (m *ScoreboardModel) load() {
	m.scores, m.stats, m.best, m.err = nil, nil, 0, nil
	if m.source != nil {
		m.scores, m.err = m.source.TopScores(m.gameID, scoreboardLimit)
		if m.err == nil {
			m.stats, m.err = m.source.GetGameStats(m.gameID)
		}
		if m.err == nil {
			m.best, _, m.err = m.source.BestScore(m.bestKey)
		}
	}

	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		date := "-"
		if !s.CreatedAt.IsZero() {
			date = s.CreatedAt.Local().Format("2006-01-02 15:04")
		}
		rows[i] = table.Row{
			"#" + strconv.Itoa(i+1),
			strconv.Itoa(s.Score),
			strconv.FormatFloat(s.Speed, 'f', 2, 64),
			strconv.Itoa(s.Ticks),
			date,
		}
	}
	m.table.SetRows(rows)
}

func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Reload):
			m.load()
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.fit(msg.Height)
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	content := m.table.View()
	if len(m.scores) == 0 {
		content = mutedStyle.Italic(true).Padding(2, 4).
			Render("No scores recorded yet.\nPlay a game to set a high score!")
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("HIGH SCORES - "+m.title),
		"",
		m.statsLine(),
		"",
		frameStyle.Render(content),
	)
	return centered(body, m.width) + "\n" + mutedStyle.Render(m.help.View(m.keys))
}

// statsLine summarises the best score and the history.
func (m ScoreboardModel) statsLine() string {
	switch {
	case m.err != nil:
		return errorStyle.Render("Error: " + m.err.Error())
	case m.stats == nil:
		return fmt.Sprintf("Best: %d", m.best)
	}
	line := fmt.Sprintf("Best: %d  |  Games: %d  |  Average: %.1f", m.best, m.stats.GamesCount, m.stats.AvgScore)
	if !m.stats.LastPlayed.IsZero() {
		line += "  |  Last: " + m.stats.LastPlayed.Local().Format("2006-01-02")
	}
	return line
}

// RunScoreboard runs the scoreboard screen until the user quits.
func RunScoreboard(source ScoreSource, gameID, title, bestKey string, width, height int) error {
	p := tea.NewProgram(
		NewScoreboardModel(source, gameID, title, bestKey, width, height),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: scoreboard: %w", err)
	}
	return nil
}
