package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pnattawut/bgm-tui/internal/gang"
	"github.com/pnattawut/bgm-tui/internal/ui/styles"
)

type statusBarModel struct {
	width       int
	statusMsg   string
	statusError bool
	data        gang.AppData
	version     string
}

func newStatusBarModel(version string, data gang.AppData) *statusBarModel {
	return &statusBarModel{version: version, data: data}
}

func (m statusBarModel) Init() tea.Cmd {
	return nil
}

func (m statusBarModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dataMsg:
		m.data = msg.data
		if msg.message != "" {
			m.statusMsg = msg.message
			m.statusError = false

			return m, clearErrorAfter(clearMessageTimeout)
		}
	case statusMsg:
		m.statusMsg = msg.Message
		m.statusError = msg.Err

		return m, clearErrorAfter(clearMessageTimeout)
	case clearStatusMessageMsg:
		m.statusError = false
		m.statusMsg = ""
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}

	return m, nil
}

func (m statusBarModel) View() string {
	playing := 0
	for _, court := range m.data.Courts {
		if court.IsPlaying {
			playing++
		}
	}

	args := []string{
		styles.StatusCounts.Render(fmt.Sprintf("%s %d", styles.IconPlayers, len(m.data.Players))),
		styles.StatusCounts.Render(fmt.Sprintf("%s %d/%d", styles.IconCourt, playing, len(m.data.Courts))),
		styles.StatusCounts.Render(fmt.Sprintf("shuttles %d", gang.TotalShuttlecocks(m.data))),
		styles.StatusVersion.Render(m.version),
		styles.StatusHelp.Render(fmt.Sprintf("%s %s", defaultKeyMap.help.Help().Key, defaultKeyMap.help.Help().Desc)),
		m.status(),
	}

	return lipgloss.NewStyle().Width(m.width).Background(styles.Black).Render(lipgloss.JoinHorizontal(lipgloss.Top, args...))
}

func (m statusBarModel) status() string {
	if m.statusMsg == "" {
		return ""
	}
	if m.statusError {
		return styles.StatusError.Render(m.statusMsg)
	}

	return styles.StatusMessage.Render(m.statusMsg)
}
