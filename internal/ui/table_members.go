package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/pnattawut/bgm-tui/internal/gang"
	"github.com/pnattawut/bgm-tui/internal/ui/model"
	"github.com/pnattawut/bgm-tui/internal/ui/styles"
)

type memberTableCol int

const (
	colMemberName memberTableCol = iota
	colMemberGames
	colMemberShuttles
	colMemberTotal
	colMemberMethod
	colMemberPaid
	colMemberCourt
)

const (
	colMemberNameSize     = 24
	colMemberGamesSize    = 7
	colMemberShuttlesSize = 10
	colMemberTotalSize    = 12
	colMemberMethodSize   = 8
	colMemberPaidSize     = 10
)

type membersModel struct {
	ctx       context.Context
	store     *gang.Store
	data      gang.AppData
	selected  int
	adding    bool
	input     *validatingTextInputModel
	searching bool
	search    *validatingTextInputModel
	width     int
	height    int
	active    bool
}

func newMembersModel(ctx context.Context, store *gang.Store) membersModel {
	return membersModel{
		ctx:    ctx,
		store:  store,
		data:   store.Data(),
		input:  newValidatingTextInputModel("New member", "", "Name"),
		search: newValidatingTextInputModel("Filter", "", "Name contains..."),
	}
}

func (m membersModel) Init() tea.Cmd {
	return nil
}

func (m membersModel) Update(msg tea.Msg) (membersModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		return m, nil
	case tabView:
		m.active = msg == tabMembers
		if !m.active && (m.adding || m.searching) {
			m.adding = false
			m.input.blur()
			m.input.input.SetValue("")
			m.searching = false
			m.search.blur()

			return m, setEditing(false)
		}

		return m, nil
	case dataMsg:
		m.data = msg.data
		if m.selected >= len(m.visiblePlayers()) {
			m.selected = max(0, len(m.visiblePlayers())-1)
		}

		return m, nil
	case tea.KeyMsg:
		if !m.active {
			return m, nil
		}
		switch {
		case m.adding:
			return m.updateAdding(msg)
		case m.searching:
			return m.updateSearching(msg)
		default:
			return m.updateBrowsing(msg)
		}
	}

	return m, nil
}

func (m membersModel) updateAdding(msg tea.KeyMsg) (membersModel, tea.Cmd) {
	switch {
	case key.Matches(msg, defaultKeyMap.accept):
		name := m.input.input.Value()
		m.adding = false
		m.input.blur()
		m.input.input.SetValue("")

		return m, tea.Batch(
			setEditing(false),
			applyChange(m.ctx, m.store, "Added "+name, func(data gang.AppData) (gang.AppData, error) {
				return gang.AddPlayer(data, name)
			}))
	case key.Matches(msg, defaultKeyMap.back):
		m.adding = false
		m.input.blur()
		m.input.input.SetValue("")

		return m, setEditing(false)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

// updateSearching narrows the table live as the filter is typed. Enter keeps
// the filter, esc drops it.
func (m membersModel) updateSearching(msg tea.KeyMsg) (membersModel, tea.Cmd) {
	switch {
	case key.Matches(msg, defaultKeyMap.accept):
		m.searching = false
		m.search.blur()

		return m, setEditing(false)
	case key.Matches(msg, defaultKeyMap.back):
		m.searching = false
		m.search.blur()
		m.search.input.SetValue("")
		m.selected = 0

		return m, setEditing(false)
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.selected >= len(m.visiblePlayers()) {
		m.selected = max(0, len(m.visiblePlayers())-1)
	}

	return m, cmd
}

func (m membersModel) updateBrowsing(msg tea.KeyMsg) (membersModel, tea.Cmd) {
	switch {
	case key.Matches(msg, defaultKeyMap.up):
		if m.selected > 0 {
			m.selected--
		}
	case key.Matches(msg, defaultKeyMap.down):
		if m.selected < len(m.visiblePlayers())-1 {
			m.selected++
		}
	case key.Matches(msg, defaultKeyMap.add):
		m.adding = true

		return m, tea.Batch(setEditing(true), m.input.focus())
	case key.Matches(msg, defaultKeyMap.search):
		m.searching = true

		return m, tea.Batch(setEditing(true), m.search.focus())
	case key.Matches(msg, defaultKeyMap.delete):
		player, ok := m.selectedPlayer()
		if !ok {
			break
		}

		return m, applyChange(m.ctx, m.store, "Deleted "+player.Name, func(data gang.AppData) (gang.AppData, error) {
			return gang.DeletePlayer(data, player.ID)
		})
	case key.Matches(msg, defaultKeyMap.paid):
		player, ok := m.selectedPlayer()
		if !ok {
			break
		}

		return m, applyChange(m.ctx, m.store, "Updated "+player.Name, func(data gang.AppData) (gang.AppData, error) {
			return gang.TogglePaid(data, player.ID)
		})
	case key.Matches(msg, defaultKeyMap.method):
		player, ok := m.selectedPlayer()
		if !ok {
			break
		}

		return m, applyChange(m.ctx, m.store, "Updated "+player.Name, func(data gang.AppData) (gang.AppData, error) {
			return gang.TogglePaymentMethod(data, player.ID)
		})
	}

	return m, nil
}

func (m membersModel) selectedPlayer() (gang.Player, bool) {
	visible := m.visiblePlayers()
	if m.selected < 0 || m.selected >= len(visible) {
		return gang.Player{}, false
	}

	return visible[m.selected], true
}

func (m membersModel) visiblePlayers() []gang.Player {
	query := strings.ToLower(strings.TrimSpace(m.search.input.Value()))
	if query == "" {
		return m.data.Players
	}

	var visible []gang.Player
	for _, player := range m.data.Players {
		if strings.Contains(strings.ToLower(player.Name), query) {
			visible = append(visible, player)
		}
	}

	return visible
}

func (m membersModel) Render(height int) string {
	if len(m.data.Players) == 0 {
		content := styles.InfoMessage.Width(m.width - 2).Render("No members yet. Press a to add one " + styles.IconPlayers)
		if m.adding {
			content = lipgloss.JoinVertical(lipgloss.Top, content, m.input.View())
		}

		return model.Container("Members", m.width-2, height, content, m.active)
	}

	tbl := newUnstyledTable("Name", "Games", "Shuttles", "Total", "Method", "Paid", "Court")
	for _, player := range m.visiblePlayers() {
		tbl.Row(m.row(player)...)
	}

	selected := m.selected
	content := tbl.StyleFunc(func(row, col int) lipgloss.Style {
		width := m.colWidth(memberTableCol(col))
		switch {
		case row == table.HeaderRow:
			return styles.TableHeading.Width(width)
		case row == selected:
			return styles.TableRowSelected.Width(width)
		case row%2 == 0:
			return styles.TableRowValuesEven.Width(width)
		default:
			return styles.TableRowValuesOdd.Width(width)
		}
	}).Render()

	if m.adding {
		content = lipgloss.JoinVertical(lipgloss.Top, content, "", m.input.View())
	}

	if m.searching || m.search.input.Value() != "" {
		content = lipgloss.JoinVertical(lipgloss.Top, content, "", m.search.View())
	}

	return model.Container("Members", m.width-2, height, content, m.active)
}

func (m membersModel) colWidth(col memberTableCol) int {
	switch col {
	case colMemberName:
		return colMemberNameSize
	case colMemberGames:
		return colMemberGamesSize
	case colMemberShuttles:
		return colMemberShuttlesSize
	case colMemberTotal:
		return colMemberTotalSize
	case colMemberMethod:
		return colMemberMethodSize
	case colMemberPaid:
		return colMemberPaidSize
	case colMemberCourt:
		fallthrough
	default:
		return max(8, m.width-colMemberNameSize-colMemberGamesSize-colMemberShuttlesSize-
			colMemberTotalSize-colMemberMethodSize-colMemberPaidSize-4)
	}
}

func (m membersModel) row(player gang.Player) []string {
	method := "Mobile"
	if player.PaymentMethod == gang.PayCash {
		method = "Cash"
	}

	paid := styles.UnpaidBadge.Render("unpaid")
	if player.Paid {
		paid = styles.PaidBadge.Render("paid " + styles.IconCheck)
	}

	courtName := ""
	if court, ok := m.data.CourtByID(player.CourtID); ok {
		courtName = styles.CourtBadge(court.ColorIndex, court.Name)
	}

	return []string{
		player.Name,
		fmt.Sprintf("%d", player.Games),
		fmt.Sprintf("%d", player.Shuttlecocks),
		humanize.Comma(int64(gang.PlayerTotal(player, m.data.Settings))) + " ฿",
		method,
		paid,
		courtName,
	}
}
