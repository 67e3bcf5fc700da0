package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/pnattawut/bgm-tui/internal/config"
	"github.com/pnattawut/bgm-tui/internal/gang"
	"github.com/pnattawut/bgm-tui/internal/ui/model"
	"github.com/pnattawut/bgm-tui/internal/ui/styles"
)

type incomeModel struct {
	data      gang.AppData
	exportDir string
	width     int
	height    int
	active    bool
}

func newIncomeModel(data gang.AppData, exportDir string) incomeModel {
	return incomeModel{data: data, exportDir: exportDir}
}

func (m incomeModel) Init() tea.Cmd {
	return nil
}

func (m incomeModel) Update(msg tea.Msg) (incomeModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tabView:
		m.active = msg == tabIncome
	case dataMsg:
		m.data = msg.data
	case config.Config:
		m.exportDir = msg.ExportDir
	case tea.KeyMsg:
		if !m.active {
			return m, nil
		}
		if key.Matches(msg, defaultKeyMap.export) {
			return m, m.export()
		}
	}

	return m, nil
}

// export writes the income summary file. Everyone has to settle up first.
func (m incomeModel) export() tea.Cmd {
	data := m.data
	dir := m.exportDir

	return func() tea.Msg {
		path, err := gang.WriteSummary(data, dir)
		if err != nil {
			return statusMsg{Message: err.Error(), Err: true}
		}

		return statusMsg{Message: "Exported " + path}
	}
}

func (m incomeModel) Render(height int) string {
	cash, mobile := gang.Income(m.data)
	profit := gang.ProfitLoss(m.data)

	profitLabel := "Profit"
	profitStyle := styles.ProfitValue
	if profit < 0 {
		profitLabel = "Loss"
		profitStyle = styles.LossValue
	}

	unpaid := 0
	for _, player := range m.data.Players {
		if !player.Paid {
			unpaid++
		}
	}

	exportHint := fmt.Sprintf("Press %s to export the summary %s", defaultKeyMap.export.Help().Key, styles.IconExport)
	if unpaid > 0 {
		exportHint = styles.UnpaidBadge.Render(fmt.Sprintf("%s %d member(s) have not settled up", styles.IconWarn, unpaid))
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		styles.DetailRow("Shuttlecocks used", fmt.Sprintf("%d", gang.TotalShuttlecocks(m.data))),
		styles.DetailRow("Shuttlecock cost", baht(gang.ShuttlecockCost(m.data))),
		styles.DetailRow("Organizer cost", baht(gang.OrganizerCost(m.data))),
		"",
		styles.DetailRow("Cash income", baht(cash)),
		styles.DetailRow("Transfer income", baht(mobile)),
		styles.DetailRow("Total income", baht(cash+mobile)),
		"",
		styles.DetailRow(profitLabel, profitStyle.Render(baht(abs(profit)))),
		"",
		styles.InfoMessage.Render(exportHint),
	)

	return model.Container("Income "+styles.IconMoney, m.width-2, height, content, m.active)
}

func baht(amount int) string {
	return humanize.Comma(int64(amount)) + " ฿"
}

func abs(value int) int {
	if value < 0 {
		return -value
	}

	return value
}
