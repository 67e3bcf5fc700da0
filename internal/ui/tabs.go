package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/pnattawut/bgm-tui/internal/ui/styles"
)

type tabView int

const (
	tabCourts tabView = iota
	tabMembers
	tabIncome
	tabSettings
	tabManage
)

type tabLabel struct {
	label string
	tab   tabView
}

func newTabsModel() tea.Model {
	return &tabsModel{
		id: zone.NewPrefix(),
		tabs: []tabLabel{
			{label: "Courts", tab: tabCourts},
			{label: "Members", tab: tabMembers},
			{label: "Income", tab: tabIncome},
			{label: "Settings", tab: tabSettings},
			{label: "Manage", tab: tabManage},
		},
		selectedTab: tabCourts,
	}
}

type tabsModel struct {
	tabs        []tabLabel
	selectedTab tabView
	width       int
	id          string
	editing     bool
}

func (m tabsModel) Init() tea.Cmd {
	return nil
}

func (m tabsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	changed := false
	switch msg := msg.(type) {
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		for _, item := range m.tabs {
			// Check each item to see if it's in bounds.
			if zone.Get(m.id + item.label).InBounds(msg) {
				m.selectedTab = item.tab

				return m, setTab(m.selectedTab)
			}
		}

		return m, nil
	case editingMsg:
		m.editing = bool(msg)

		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width

		return m, nil
	case tea.KeyMsg:
		// tab/shift+tab still work while a text input has focus, the
		// single-key shortcuts do not.
		switch {
		case key.Matches(msg, defaultKeyMap.nextTab):
			m.selectedTab++
			if m.selectedTab > tabManage {
				m.selectedTab = tabCourts
			}
			changed = true
		case key.Matches(msg, defaultKeyMap.prevTab):
			m.selectedTab--
			if m.selectedTab < tabCourts {
				m.selectedTab = tabManage
			}
			changed = true
		case m.editing:
		case key.Matches(msg, defaultKeyMap.courts):
			m.selectedTab = tabCourts
			changed = true
		case key.Matches(msg, defaultKeyMap.members):
			m.selectedTab = tabMembers
			changed = true
		case key.Matches(msg, defaultKeyMap.income):
			m.selectedTab = tabIncome
			changed = true
		case key.Matches(msg, defaultKeyMap.settings):
			m.selectedTab = tabSettings
			changed = true
		case key.Matches(msg, defaultKeyMap.manage):
			m.selectedTab = tabManage
			changed = true
		}
	}

	if changed {
		return m, setTab(m.selectedTab)
	}

	return m, nil
}

func (m tabsModel) View() string {
	if m.width == 0 {
		return ""
	}
	var tabs []string

	for _, tab := range m.tabs {
		if tab.tab == m.selectedTab {
			tabs = append(tabs, zone.Mark(m.id+tab.label, styles.TabsActive.Render(tab.label)))
		} else {
			tabs = append(tabs, zone.Mark(m.id+tab.label, styles.TabsInactive.Render(tab.label)))
		}
	}

	return styles.WrapX(m.width, styles.TabContainer.Width(m.width).Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...)), "x")
}
