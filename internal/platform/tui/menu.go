package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/missions"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

// MenuChoice is what the user picked in the menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoiceRun
	ChoiceScores
	ChoiceQuit
)

// MenuItem represents a selectable menu entry.
type MenuItem struct {
	Title  string
	Choice MenuChoice
}

var menuItems = []MenuItem{
	{Title: "Run", Choice: ChoiceRun},
	{Title: "Scores", Choice: ChoiceScores},
	{Title: "Quit", Choice: ChoiceQuit},
}

// missionsMsg delivers the asynchronously loaded mission list.
type missionsMsg []missions.Mission

// defaultMissionTimeout bounds a mission request when the config has none.
const defaultMissionTimeout = 5 * time.Second

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#48cae4"))
	menuDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	menuCurStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuDoneStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#2a9d8f"))
)

// MenuModel is the Bubble Tea model for the start menu.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	height    int
	host      Host
	config    core.RuntimeConfig
	stats     storage.PersistedStats
	missions  []missions.Mission // nil until loaded
	keyMapper *KeyMapper
	choice    MenuChoice
}

// NewMenuModel creates a new menu model.
func NewMenuModel(host Host, cfg core.RuntimeConfig) MenuModel {
	return MenuModel{
		items:     menuItems,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		host:      host,
		config:    cfg,
		stats:     host.stats(),
		keyMapper: NewKeyMapper(),
	}
}

// Init starts loading the missions for the current run count.
func (m MenuModel) Init() tea.Cmd {
	return loadMissionsCmd(m.host, m.stats.LifetimeRunCount)
}

// loadMissionsCmd asks the provider off the UI goroutine. Failures are
// handled inside missions.Load, which always yields a list.
func loadMissionsCmd(host Host, runCount int) tea.Cmd {
	timeout := time.Duration(host.Config.Missions.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = defaultMissionTimeout
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return missionsMsg(missions.Load(ctx, host.Missions, runCount, host.logger()))
	}
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case missionsMsg:
		m.missions = msg
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.choice = ChoiceQuit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		m.choice = m.items[m.cursor].Choice

	case MenuActionScoreboard:
		m.choice = ChoiceScores
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.choice == ChoiceQuit {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("L A N E   R U N N E R"), m.width))
	b.WriteString("\n\n")

	stats := fmt.Sprintf("best %s  ·  runs %s  ·  coins %s",
		humanize.Comma(int64(m.stats.HighScore)),
		humanize.Comma(int64(m.stats.LifetimeRunCount)),
		humanize.Comma(int64(m.stats.TotalCoins)))
	b.WriteString(centerText(menuDimStyle.Render(stats), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + item.Title
		if i == m.cursor {
			line = menuCurStyle.Render("> " + item.Title)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Missions", m.width))
	b.WriteString("\n")
	if m.missions == nil {
		b.WriteString(centerText(menuDimStyle.Render("loading..."), m.width))
		b.WriteString("\n")
	}
	for _, ms := range m.missions {
		line := "[ ] " + ms.Description
		if ms.Completed {
			line = menuDoneStyle.Render("[x] " + ms.Description)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	// Footer with controls
	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(menuDimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Choice returns what the user picked, or ChoiceNone.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// Missions returns the loaded missions, nil while loading.
func (m MenuModel) Missions() []missions.Mission {
	return m.missions
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width. Styled text is measured
// by its printable width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
