package ui

import (
	"context"
	"fmt"
	"slices"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pnattawut/bgm-tui/internal/gang"
	"github.com/pnattawut/bgm-tui/internal/ui/model"
	"github.com/pnattawut/bgm-tui/internal/ui/styles"
)

type courtsModel struct {
	ctx           context.Context
	store         *gang.Store
	data          gang.AppData
	selected      int
	creating      bool
	input         *validatingTextInputModel
	picking       bool
	picker        playerPicker
	confirmPrompt string
	confirmCmd    tea.Cmd
	width         int
	height        int
	active        bool
}

// playerPicker selects up to four unassigned members for a court. Selection
// order is kept because it decides the team pairing.
type playerPicker struct {
	courtID   string
	available []gang.Player
	cursor    int
	selected  []string
}

func (p playerPicker) isSelected(id string) bool {
	return slices.Contains(p.selected, id)
}

func newCourtsModel(ctx context.Context, store *gang.Store) courtsModel {
	return courtsModel{
		ctx:   ctx,
		store: store,
		data:  store.Data(),
		input: newValidatingTextInputModel("New court", "", "Court name"),
	}
}

func (m courtsModel) Init() tea.Cmd {
	return nil
}

func (m courtsModel) Update(msg tea.Msg) (courtsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		return m, nil
	case tabView:
		m.active = msg == tabCourts
		if !m.active {
			m.picking = false
			m.confirmPrompt = ""
			m.confirmCmd = nil
			if m.creating {
				m.creating = false
				m.input.blur()
				m.input.input.SetValue("")

				return m, setEditing(false)
			}
		}

		return m, nil
	case dataMsg:
		m.data = msg.data
		if m.selected >= len(m.data.Courts) {
			m.selected = max(0, len(m.data.Courts)-1)
		}

		return m, nil
	case tea.KeyMsg:
		if !m.active {
			return m, nil
		}
		switch {
		case m.creating:
			return m.updateCreating(msg)
		case m.picking:
			return m.updatePicking(msg)
		case m.confirmCmd != nil:
			return m.updateConfirming(msg)
		default:
			return m.updateBrowsing(msg)
		}
	}

	return m, nil
}

func (m courtsModel) updateCreating(msg tea.KeyMsg) (courtsModel, tea.Cmd) {
	switch {
	case key.Matches(msg, defaultKeyMap.accept):
		name := m.input.input.Value()
		m.creating = false
		m.input.blur()
		m.input.input.SetValue("")

		return m, tea.Batch(
			setEditing(false),
			applyChange(m.ctx, m.store, "Opened court "+name, func(data gang.AppData) (gang.AppData, error) {
				return gang.CreateCourt(data, name)
			}))
	case key.Matches(msg, defaultKeyMap.back):
		m.creating = false
		m.input.blur()
		m.input.input.SetValue("")

		return m, setEditing(false)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m courtsModel) updatePicking(msg tea.KeyMsg) (courtsModel, tea.Cmd) {
	switch {
	case key.Matches(msg, defaultKeyMap.back):
		m.picking = false
	case key.Matches(msg, defaultKeyMap.up):
		if m.picker.cursor > 0 {
			m.picker.cursor--
		}
	case key.Matches(msg, defaultKeyMap.down):
		if m.picker.cursor < len(m.picker.available)-1 {
			m.picker.cursor++
		}
	case key.Matches(msg, defaultKeyMap.toggle):
		if m.picker.cursor >= len(m.picker.available) {
			break
		}
		id := m.picker.available[m.picker.cursor].ID
		if m.picker.isSelected(id) {
			m.picker.selected = slices.DeleteFunc(m.picker.selected, func(s string) bool { return s == id })
		} else if len(m.picker.selected) < gang.CourtSize {
			m.picker.selected = append(m.picker.selected, id)
		}
	case key.Matches(msg, defaultKeyMap.accept):
		if len(m.picker.selected) == 0 {
			break
		}
		courtID := m.picker.courtID
		ids := slices.Clone(m.picker.selected)
		m.picking = false

		return m, applyChange(m.ctx, m.store, "Filled court", func(data gang.AppData) (gang.AppData, error) {
			return gang.AssignPlayers(data, courtID, ids)
		})
	}

	return m, nil
}

func (m courtsModel) updateConfirming(msg tea.KeyMsg) (courtsModel, tea.Cmd) {
	if key.Matches(msg, defaultKeyMap.confirm) {
		cmd := m.confirmCmd
		m.confirmPrompt = ""
		m.confirmCmd = nil

		return m, cmd
	}

	m.confirmPrompt = ""
	m.confirmCmd = nil

	return m, nil
}

// confirm stages a destructive action behind a y/esc prompt.
func (m courtsModel) confirm(prompt string, cmd tea.Cmd) (courtsModel, tea.Cmd) {
	m.confirmPrompt = prompt
	m.confirmCmd = cmd

	return m, nil
}

func (m courtsModel) updateBrowsing(msg tea.KeyMsg) (courtsModel, tea.Cmd) {
	switch {
	case key.Matches(msg, defaultKeyMap.up):
		if m.selected > 0 {
			m.selected--
		}
	case key.Matches(msg, defaultKeyMap.down):
		if m.selected < len(m.data.Courts)-1 {
			m.selected++
		}
	case key.Matches(msg, defaultKeyMap.add):
		m.creating = true

		return m, tea.Batch(setEditing(true), m.input.focus())
	case key.Matches(msg, defaultKeyMap.assign):
		court, ok := m.selectedCourt()
		if !ok {
			break
		}
		if court.IsPlaying {
			return m, setStatusMessage("Cannot change players mid-game", true)
		}
		m.picker = playerPicker{courtID: court.ID, available: m.availablePlayers()}
		if len(m.picker.available) == 0 {
			return m, setStatusMessage("No unassigned members available", true)
		}
		m.picking = true
	case key.Matches(msg, defaultKeyMap.start):
		court, ok := m.selectedCourt()
		if !ok {
			break
		}

		return m, applyChange(m.ctx, m.store, "Game on "+court.Name, func(data gang.AppData) (gang.AppData, error) {
			return gang.StartGame(data, court.ID)
		})
	case key.Matches(msg, defaultKeyMap.endGame):
		court, ok := m.selectedCourt()
		if !ok {
			break
		}

		return m.confirm("End game on "+court.Name+" and credit games and shuttles?",
			applyChange(m.ctx, m.store, "Game over on "+court.Name, func(data gang.AppData) (gang.AppData, error) {
				return gang.EndGame(data, court.ID)
			}))
	case key.Matches(msg, defaultKeyMap.removePlayers):
		court, ok := m.selectedCourt()
		if !ok {
			break
		}

		return m.confirm("Clear "+court.Name+" without crediting anything?",
			applyChange(m.ctx, m.store, "Cleared "+court.Name, func(data gang.AppData) (gang.AppData, error) {
				return gang.RemovePlayers(data, court.ID)
			}))
	case key.Matches(msg, defaultKeyMap.closeCourt):
		court, ok := m.selectedCourt()
		if !ok {
			break
		}

		return m.confirm("Close "+court.Name+"?",
			applyChange(m.ctx, m.store, "Closed "+court.Name, func(data gang.AppData) (gang.AppData, error) {
				return gang.CloseCourt(data, court.ID)
			}))
	case key.Matches(msg, defaultKeyMap.shuttleUp):
		court, ok := m.selectedCourt()
		if !ok {
			break
		}

		return m, applyChange(m.ctx, m.store, "", func(data gang.AppData) (gang.AppData, error) {
			return gang.AdjustShuttlecocks(data, court.ID, 1)
		})
	case key.Matches(msg, defaultKeyMap.shuttleDown):
		court, ok := m.selectedCourt()
		if !ok {
			break
		}

		return m, applyChange(m.ctx, m.store, "", func(data gang.AppData) (gang.AppData, error) {
			return gang.AdjustShuttlecocks(data, court.ID, -1)
		})
	}

	return m, nil
}

func (m courtsModel) selectedCourt() (gang.Court, bool) {
	if m.selected < 0 || m.selected >= len(m.data.Courts) {
		return gang.Court{}, false
	}

	return m.data.Courts[m.selected], true
}

func (m courtsModel) availablePlayers() []gang.Player {
	var available []gang.Player
	for _, player := range m.data.Players {
		if player.CourtID == "" {
			available = append(available, player)
		}
	}

	return available
}

func (m courtsModel) Render(height int) string {
	if m.picking {
		return model.Container("Fill Court", m.width-2, height, m.pickerView(), true)
	}

	var content string
	if len(m.data.Courts) == 0 {
		content = styles.InfoMessage.Width(m.width - 2).Render("No open courts. Press a to open one " + styles.IconCourt)
	} else {
		var cards []string
		for i, court := range m.data.Courts {
			cards = append(cards, m.courtCard(court, i == m.selected))
		}
		content = lipgloss.JoinVertical(lipgloss.Left, cards...)
	}

	if m.creating {
		content = lipgloss.JoinVertical(lipgloss.Top, content, "", m.input.View())
	}

	if m.confirmCmd != nil {
		prompt := styles.ConfirmPrompt.Render(m.confirmPrompt + " (y to confirm, any other key cancels)")
		content = lipgloss.JoinVertical(lipgloss.Top, content, "", prompt)
	}

	return model.Container("Courts", m.width-2, height, content, m.active)
}

func (m courtsModel) courtCard(court gang.Court, selected bool) string {
	status := "waiting"
	if court.IsPlaying {
		status = fmt.Sprintf("playing, %d shuttles", court.Shuttlecocks)
	}

	marker := "  "
	if selected {
		marker = styles.FocusedStyle.Render("> ")
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		marker,
		styles.CourtBadge(court.ColorIndex, court.Name),
		"  ",
		m.pairing(court),
		"  ",
		styles.BlurredStyle.Render(status))
}

// pairing renders the doubles matchup in court order, with placeholders for
// unfilled slots.
func (m courtsModel) pairing(court gang.Court) string {
	names := []string{"_", "_", "_", "_"}
	for i, id := range court.Players {
		if i >= gang.CourtSize {
			break
		}
		if player, ok := m.data.PlayerByID(id); ok {
			names[i] = player.Name
		}
	}

	return fmt.Sprintf("%s & %s vs %s & %s", names[0], names[1], names[2], names[3])
}

func (m courtsModel) pickerView() string {
	rows := []string{
		styles.ContainerTitle.Render(fmt.Sprintf("Pick up to %d members, space toggles, enter fills", gang.CourtSize)),
		"",
	}

	for i, player := range m.picker.available {
		cursor := "  "
		if i == m.picker.cursor {
			cursor = styles.FocusedStyle.Render("> ")
		}

		check := "[ ]"
		if m.picker.isSelected(player.ID) {
			check = "[x]"
		}

		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cursor, check+" ", player.Name))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
