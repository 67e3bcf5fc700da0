package ui

import (
	"context"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pnattawut/bgm-tui/internal/gang"
	"github.com/pnattawut/bgm-tui/internal/ui/model"
	"github.com/pnattawut/bgm-tui/internal/ui/styles"
)

type settingsIdx int

const (
	fieldPlayerCourtFee settingsIdx = iota
	fieldPlayerShuttlecockFee
	fieldOrganizerCourtFee
	fieldOrganizerShuttlecockFee
	fieldSave
)

type settingsModel struct {
	ctx        context.Context
	store      *gang.Store
	fields     []*validatingTextInputModel
	focusIndex settingsIdx
	width      int
	height     int
	active     bool
	editing    bool
}

func newSettingsModel(ctx context.Context, store *gang.Store) settingsModel {
	settings := store.Data().Settings

	return settingsModel{
		ctx:   ctx,
		store: store,
		fields: []*validatingTextInputModel{
			newValidatingTextInputModel("Court fee / player", strconv.Itoa(settings.PlayerCourtFee), "0", feeValidator{}),
			newValidatingTextInputModel("Shuttle fee / player", strconv.Itoa(settings.PlayerShuttlecockFee), "0", feeValidator{}),
			newValidatingTextInputModel("Court cost (organizer)", strconv.Itoa(settings.OrganizerCourtFee), "0", feeValidator{}),
			newValidatingTextInputModel("Shuttle cost (organizer)", strconv.Itoa(settings.OrganizerShuttlecockFee), "0", feeValidator{}),
		},
		focusIndex: fieldPlayerCourtFee,
	}
}

func (m settingsModel) Init() tea.Cmd {
	return nil
}

func (m settingsModel) Update(msg tea.Msg) (settingsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		return m, nil
	case tabView:
		wasActive := m.active
		m.active = msg == tabSettings
		if m.active && !wasActive {
			m.editing = true

			return m, tea.Batch(setEditing(true), m.fields[m.focusIndex].focus())
		}
		if !m.active && wasActive {
			m.editing = false
			m.fields[m.focusIndex].blur()

			return m, setEditing(false)
		}

		return m, nil
	case tea.KeyMsg:
		if !m.active {
			return m, nil
		}

		return m.updateKey(msg)
	}

	return m, nil
}

func (m settingsModel) updateKey(msg tea.KeyMsg) (settingsModel, tea.Cmd) {
	switch {
	case key.Matches(msg, defaultKeyMap.up):
		if m.focusIndex > fieldPlayerCourtFee {
			cmd := m.changeInput(-1)

			return m, cmd
		}
	case key.Matches(msg, defaultKeyMap.down):
		if m.focusIndex < fieldSave {
			cmd := m.changeInput(1)

			return m, cmd
		}
	case key.Matches(msg, defaultKeyMap.accept):
		if m.focusIndex < fieldSave {
			cmd := m.changeInput(1)

			return m, cmd
		}

		return m.save()
	}

	if m.focusIndex < fieldSave {
		var cmd tea.Cmd
		m.fields[m.focusIndex], cmd = m.fields[m.focusIndex].Update(msg)

		return m, cmd
	}

	return m, nil
}

func (m settingsModel) save() (settingsModel, tea.Cmd) {
	for _, field := range m.fields {
		if field.input.Err != nil {
			return m, setStatusMessage("Fees are not valid, cannot save", true)
		}
	}

	settings := gang.Settings{
		PlayerCourtFee:          mustFee(m.fields[fieldPlayerCourtFee].input.Value()),
		PlayerShuttlecockFee:    mustFee(m.fields[fieldPlayerShuttlecockFee].input.Value()),
		OrganizerCourtFee:       mustFee(m.fields[fieldOrganizerCourtFee].input.Value()),
		OrganizerShuttlecockFee: mustFee(m.fields[fieldOrganizerShuttlecockFee].input.Value()),
	}

	return m, applyChange(m.ctx, m.store, "Saved fees", func(data gang.AppData) (gang.AppData, error) {
		return gang.UpdateSettings(data, settings)
	})
}

// mustFee trusts the field validator; an unparseable value reads as zero.
func mustFee(value string) int {
	fee, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}

	return fee
}

func (m *settingsModel) changeInput(direction settingsIdx) tea.Cmd {
	m.focusIndex += direction

	var cmd tea.Cmd
	for i := range m.fields {
		if settingsIdx(i) == m.focusIndex {
			cmd = m.fields[i].focus()
		} else {
			m.fields[i].blur()
		}
	}

	return cmd
}

func (m settingsModel) Render(height int) string {
	fields := []string{
		m.fields[fieldPlayerCourtFee].View(),
		m.fields[fieldPlayerShuttlecockFee].View(),
		m.fields[fieldOrganizerCourtFee].View(),
		m.fields[fieldOrganizerShuttlecockFee].View(),
	}

	if m.focusIndex == fieldSave {
		fields = append(fields, styles.FocusedSubmitButton)
	} else {
		fields = append(fields, styles.BlurredSubmitButton)
	}

	content := lipgloss.NewStyle().Width(m.width - 4).Align(lipgloss.Left).
		Render(lipgloss.JoinVertical(lipgloss.Top, fields...))

	return model.Container("Fees", m.width-2, height, content, m.active)
}
