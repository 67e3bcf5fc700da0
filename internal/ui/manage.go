package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/pnattawut/bgm-tui/internal/gang"
	"github.com/pnattawut/bgm-tui/internal/ui/model"
	"github.com/pnattawut/bgm-tui/internal/ui/styles"
)

const manageInfo = "Reset clears the session for the next gang day. Stats, payment status and shuttlecock counters go back to zero. Members and courts are kept unless marked for deletion below. Fees are never touched by a reset."

type manageModel struct {
	ctx        context.Context
	store      *gang.Store
	options    gang.ResetOptions
	confirming bool
	width      int
	height     int
	active     bool
}

func newManageModel(ctx context.Context, store *gang.Store) manageModel {
	return manageModel{ctx: ctx, store: store}
}

func (m manageModel) Init() tea.Cmd {
	return nil
}

func (m manageModel) Update(msg tea.Msg) (manageModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tabView:
		m.active = msg == tabManage
		m.confirming = false
	case tea.KeyMsg:
		if !m.active {
			return m, nil
		}

		return m.updateKey(msg)
	}

	return m, nil
}

func (m manageModel) updateKey(msg tea.KeyMsg) (manageModel, tea.Cmd) {
	if m.confirming {
		switch {
		case key.Matches(msg, defaultKeyMap.confirm):
			m.confirming = false
			options := m.options

			return m, applyChange(m.ctx, m.store, "Session reset", func(data gang.AppData) (gang.AppData, error) {
				return gang.Reset(data, options), nil
			})
		case key.Matches(msg, defaultKeyMap.back):
			m.confirming = false
		}

		return m, nil
	}

	switch {
	case key.Matches(msg, defaultKeyMap.paid):
		m.options.DeletePlayers = !m.options.DeletePlayers
	case key.Matches(msg, defaultKeyMap.closeCourt):
		m.options.DeleteCourts = !m.options.DeleteCourts
	case key.Matches(msg, defaultKeyMap.removePlayers):
		m.confirming = true
	}

	return m, nil
}

func (m manageModel) Render(height int) string {
	check := func(on bool) string {
		if on {
			return "[x]"
		}

		return "[ ]"
	}

	rows := []string{
		styles.InfoMessage.Render(wordwrap.String(manageInfo, max(20, m.width-8))),
		"",
		fmt.Sprintf("%s Delete all members (p)", check(m.options.DeletePlayers)),
		fmt.Sprintf("%s Delete all courts (c)", check(m.options.DeleteCourts)),
		"",
	}

	if m.confirming {
		rows = append(rows, styles.StatusError.Render(
			fmt.Sprintf("%s Reset the session? Press y to confirm, esc to cancel", styles.IconWarn)))
	} else {
		rows = append(rows, styles.BlurredStyle.Render("Press r to reset the session"))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, rows...)

	return model.Container("Manage", m.width-2, height, content, m.active)
}
