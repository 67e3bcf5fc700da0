package ui

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/pnattawut/bgm-tui/internal/config"
	"github.com/pnattawut/bgm-tui/internal/gang"
	"github.com/pnattawut/bgm-tui/internal/ui/styles"
)

type contentView int

const (
	viewMain contentView = iota
	viewHelp
)

// rootModel is the top level model for the ui side of the app.
type rootModel struct {
	currentView   contentView
	height        int
	width         int
	activeTab     tabView
	editing       bool
	courtsModel   courtsModel
	membersModel  membersModel
	incomeModel   incomeModel
	settingsModel settingsModel
	manageModel   manageModel
	helpModel     tea.Model
	tabsModel     tea.Model
	statusModel   tea.Model
	footerHeight  int
	headerHeight  int
}

func newRootModel(ctx context.Context, userConfig config.Config, store *gang.Store,
	buildVersion string, buildDate string, buildCommit string, configPath string,
) *rootModel {
	return &rootModel{
		currentView:   viewMain,
		activeTab:     tabCourts,
		courtsModel:   newCourtsModel(ctx, store),
		membersModel:  newMembersModel(ctx, store),
		incomeModel:   newIncomeModel(store.Data(), userConfig.ExportDir),
		settingsModel: newSettingsModel(ctx, store),
		manageModel:   newManageModel(ctx, store),
		helpModel:     newHelpModel(buildVersion, buildDate, buildCommit, configPath, userConfig.ExportDir),
		tabsModel:     newTabsModel(),
		statusModel:   newStatusBarModel(buildVersion, store.Data()),
		headerHeight:  1,
		footerHeight:  1,
	}
}

func (m rootModel) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("bgm-tui"),
		textinput.Blink,
		m.tabsModel.Init(),
		m.statusModel.Init(),
		m.helpModel.Init(),
		setTab(tabCourts),
	)
}

func (m rootModel) Update(inMsg tea.Msg) (tea.Model, tea.Cmd) {
	logMsg(inMsg)

	if !m.isInitialized() {
		if _, ok := inMsg.(tea.WindowSizeMsg); !ok {
			return m, nil
		}
	}

	switch msg := inMsg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.width = msg.Width
	case tabView:
		m.activeTab = msg
	case editingMsg:
		m.editing = bool(msg)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, defaultKeyMap.quit):
			if m.editing || m.currentView != viewMain {
				break
			}

			return m, tea.Quit
		case key.Matches(msg, defaultKeyMap.help):
			if m.editing {
				break
			}
			if m.currentView == viewHelp {
				m.currentView = viewMain
			} else {
				m.currentView = viewHelp
			}
		case key.Matches(msg, defaultKeyMap.back):
			if m.currentView == viewHelp {
				m.currentView = viewMain
			}
		}
	case contentView:
		m.currentView = msg
	}

	return m.propagate(inMsg)
}

func (m rootModel) View() string {
	footer := styles.FooterContainerStyle.
		Width(m.width).
		Render(lipgloss.JoinVertical(lipgloss.Top, m.statusModel.View()))
	header := m.tabsModel.View()
	hdr := styles.HeaderContainerStyle.Width(m.width).Render(header)
	_, hdrHeight := lipgloss.Size(hdr)

	ftr := styles.FooterContainerStyle.Width(m.width).Render(footer)
	_, ftrHeight := lipgloss.Size(ftr)

	contentViewPortHeight := m.height - hdrHeight - ftrHeight

	var content string
	switch m.currentView {
	case viewHelp:
		content = m.helpModel.View()
	case viewMain:
		panelHeight := contentViewPortHeight - 2
		switch m.activeTab {
		case tabCourts:
			content = m.courtsModel.Render(panelHeight)
		case tabMembers:
			content = m.membersModel.Render(panelHeight)
		case tabIncome:
			content = m.incomeModel.Render(panelHeight)
		case tabSettings:
			content = m.settingsModel.Render(panelHeight)
		case tabManage:
			content = m.manageModel.Render(panelHeight)
		}
	}

	ctr := styles.ContentContainerStyle.Height(contentViewPortHeight).Render(content)

	return zone.Scan(lipgloss.JoinVertical(lipgloss.Left, hdr, ctr, ftr))
}

func (m rootModel) isInitialized() bool {
	return m.height != 0 && m.width != 0
}

func (m rootModel) propagate(msg tea.Msg, _ ...tea.Cmd) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 8)

	m.courtsModel, cmds[0] = m.courtsModel.Update(msg)
	m.membersModel, cmds[1] = m.membersModel.Update(msg)
	m.incomeModel, cmds[2] = m.incomeModel.Update(msg)
	m.settingsModel, cmds[3] = m.settingsModel.Update(msg)
	m.manageModel, cmds[4] = m.manageModel.Update(msg)
	m.tabsModel, cmds[5] = m.tabsModel.Update(msg)
	m.statusModel, cmds[6] = m.statusModel.Update(msg)
	m.helpModel, cmds[7] = m.helpModel.Update(msg)

	return m, tea.Batch(cmds...)
}

// logMsg is useful for debugging events. Tail the log file ~/.config/bgm-tui/bgm-tui.log
func logMsg(inMsg tea.Msg) {
	// Filter out very noisy stuff
	switch inMsg.(type) {
	case tea.MouseMsg:
		break
	default:
		slog.Debug("tea.Msg", slog.Any("msg", inMsg))
	}
}
