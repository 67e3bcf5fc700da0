package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pnattawut/bgm-tui/internal/ui/styles"
)

func newHelpModel(buildVersion string, buildDate string, buildCommit string, configPath string, exportDir string) helpModel {
	return helpModel{
		configPath:   configPath,
		exportDir:    exportDir,
		buildVersion: buildVersion,
		buildDate:    buildDate,
		buildCommit:  buildCommit,
	}
}

type helpModel struct {
	helpView     help.Model
	configPath   string
	exportDir    string
	buildVersion string
	buildDate    string
	buildCommit  string
}

func (m helpModel) Init() tea.Cmd {
	return nil
}

func (m helpModel) Update(_ tea.Msg) (tea.Model, tea.Cmd) {
	return m, nil
}

func (m helpModel) View() string {
	left := m.helpView.FullHelpView([][]key.Binding{
		{
			defaultKeyMap.quit,
			defaultKeyMap.help,
			defaultKeyMap.accept,
			defaultKeyMap.back,
			defaultKeyMap.up,
			defaultKeyMap.down,
			defaultKeyMap.nextTab,
			defaultKeyMap.prevTab,
		},
	})

	middle := m.helpView.FullHelpView([][]key.Binding{
		{
			defaultKeyMap.add,
			defaultKeyMap.delete,
			defaultKeyMap.paid,
			defaultKeyMap.method,
			defaultKeyMap.assign,
			defaultKeyMap.toggle,
			defaultKeyMap.search,
			defaultKeyMap.export,
		},
	})

	right := m.helpView.FullHelpView([][]key.Binding{
		{
			defaultKeyMap.start,
			defaultKeyMap.endGame,
			defaultKeyMap.removePlayers,
			defaultKeyMap.closeCourt,
			defaultKeyMap.shuttleUp,
			defaultKeyMap.shuttleDown,
			defaultKeyMap.confirm,
		},
	})

	helpContent := lipgloss.JoinHorizontal(lipgloss.Top,
		styles.HelpBox.Render(left), styles.HelpBox.Render(middle), styles.HelpBox.Render(right))

	commit := m.buildCommit
	if len(commit) > 8 {
		commit = m.buildCommit[0:8]
	}

	content := lipgloss.JoinVertical(lipgloss.Center, helpContent,
		styles.DetailRow("Version", m.buildVersion),
		styles.DetailRow("Commit", commit),
		styles.DetailRow("Date", m.buildDate),
		styles.DetailRow("Config Path", m.configPath),
		styles.DetailRow("Export Dir", m.exportDir),
	)

	return lipgloss.Place(lipgloss.Width(content), lipgloss.Height(content),
		lipgloss.Center, lipgloss.Center, content)
}
