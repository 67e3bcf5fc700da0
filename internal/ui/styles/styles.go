package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	Accent = lipgloss.Color("#059669")

	ContainerTitle       = lipgloss.NewStyle().Bold(true)
	ContainerBorder      = lipgloss.DoubleBorder()
	ContainerStyle       = lipgloss.NewStyle().Border(ContainerBorder).BorderForeground(Gray)
	ContainerStyleActive = lipgloss.NewStyle().Border(ContainerBorder).BorderForeground(Accent)

	HeaderContainerStyle  = lipgloss.NewStyle().Align(lipgloss.Center)
	ContentContainerStyle = lipgloss.NewStyle().Align(lipgloss.Center)
	FooterContainerStyle  = lipgloss.NewStyle().Align(lipgloss.Center)

	FocusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	BlurredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Background(Black)
	CursorStyle  = FocusedStyle
	NoStyle      = lipgloss.NewStyle()
	HelpStyle    = BlurredStyle

	FocusedSubmitButton = lipgloss.NewStyle().Foreground(Accent).Render("[ Save ]")
	BlurredSubmitButton = fmt.Sprintf("[ %s ]", BlurredStyle.Render("Save"))

	Black       = lipgloss.Color("#111111")
	Gray        = lipgloss.Color("#3e3e3e")
	GrayDark    = lipgloss.Color("#2f3030")
	GrayDarkAlt = lipgloss.Color("#0f0f0f")
	White       = lipgloss.Color("#cccccc")
	Whiter      = lipgloss.Color("#aaaaaa")

	Green  = lipgloss.Color("#059669")
	Red    = lipgloss.Color("#e11d48")
	Amber  = lipgloss.Color("#d97706")
	Indigo = lipgloss.Color("#4f46e5")

	TableHeading = lipgloss.NewStyle().Background(Black).Foreground(Amber).Bold(true)

	TableRowValuesEven = lipgloss.NewStyle().Background(GrayDark)
	TableRowValuesOdd  = lipgloss.NewStyle().Background(GrayDarkAlt)
	TableRowSelected   = lipgloss.NewStyle().Background(Indigo).Foreground(White).Bold(true)

	PaidBadge   = lipgloss.NewStyle().Foreground(Green).Bold(true)
	UnpaidBadge = lipgloss.NewStyle().Foreground(Red)

	PanelLabel   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Align(lipgloss.Right).Width(24)
	PanelValue   = lipgloss.NewStyle().Width(40)
	TabContainer = lipgloss.NewStyle().Align(lipgloss.Center)
	TabsInactive = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color("#476291")).PaddingLeft(2).PaddingRight(2)
	TabsActive = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8650ac")).PaddingLeft(2).PaddingRight(2)

	StatusError   = lipgloss.NewStyle().Foreground(Red).Align(lipgloss.Right).Bold(true).PaddingRight(2)
	StatusMessage = lipgloss.NewStyle().Foreground(Green).Align(lipgloss.Right).Bold(true).PaddingRight(2)
	StatusHelp    = lipgloss.NewStyle().Foreground(Gray).Bold(true).Align(lipgloss.Center)
	StatusVersion = lipgloss.NewStyle().Foreground(Green).Bold(true).Align(lipgloss.Center)
	StatusCounts  = lipgloss.NewStyle().Foreground(Amber).Bold(true).PaddingLeft(1).PaddingRight(2)

	ProfitValue = lipgloss.NewStyle().Foreground(Green).Bold(true)
	LossValue   = lipgloss.NewStyle().Foreground(Red).Bold(true)

	InfoMessage   = lipgloss.NewStyle().Align(lipgloss.Center).Padding(1)
	ConfirmPrompt = lipgloss.NewStyle().Foreground(Amber).Bold(true)

	HelpBox = lipgloss.NewStyle().Padding(3)

	IconCourt   = "🏸"
	IconPlayers = "👥"
	IconMoney   = "💰"
	IconCheck   = "✅"
	IconWarn    = "🚨"
	IconExport  = "📄"
)

// courtPalette is a fixed rotation of badge colors, assigned round-robin as
// courts are opened.
var courtPalette = []lipgloss.Color{
	"#059669",
	"#0284c7",
	"#d97706",
	"#e11d48",
	"#4f46e5",
	"#ea580c",
	"#0d9488",
	"#c026d3",
	"#2563eb",
	"#db2777",
}

// CourtBadge renders a court name on its palette color. Out of range indexes
// wrap around rather than panic.
func CourtBadge(colorIndex int, name string) string {
	color := courtPalette[((colorIndex%len(courtPalette))+len(courtPalette))%len(courtPalette)]

	return lipgloss.NewStyle().
		Background(color).
		Foreground(lipgloss.Color("#ffffff")).
		Bold(true).
		PaddingLeft(1).
		PaddingRight(1).
		Render(name)
}

func DetailRow(label string, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		PanelLabel.Render(label+" "),
		PanelValue.Render(value))
}

// WrapX will wrap a centered string with the supplied character up to the lenth specified.
func WrapX(width int, value string, character string) string {
	all := width - lipgloss.Width(value)
	if all < 2 {
		return value
	}

	return strings.Repeat(character, all/2) + value + strings.Repeat(character, all/2)
}

func TitleBorder(border lipgloss.Border, width int, title string) lipgloss.Border {
	border.Top = WrapX(width, "║"+title+"║", border.Top)

	return border
}
