package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

type keymap struct {
	quit          key.Binding
	help          key.Binding
	accept        key.Binding
	back          key.Binding
	up            key.Binding
	down          key.Binding
	nextTab       key.Binding
	prevTab       key.Binding
	courts        key.Binding
	members       key.Binding
	income        key.Binding
	settings      key.Binding
	manage        key.Binding
	add           key.Binding
	delete        key.Binding
	paid          key.Binding
	method        key.Binding
	assign        key.Binding
	toggle        key.Binding
	start         key.Binding
	endGame       key.Binding
	removePlayers key.Binding
	closeCourt    key.Binding
	shuttleUp     key.Binding
	shuttleDown   key.Binding
	export        key.Binding
	confirm       key.Binding
	search        key.Binding
}

// TODO make configurable.
var defaultKeyMap = keymap{
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "Quit"),
	),
	help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "Help"),
	),
	accept: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "Select"),
	),
	back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "Back"),
	),
	up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑", "Up"),
	),
	down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓", "Down"),
	),
	nextTab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "Next Tab"),
	),
	prevTab: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "Prev Tab"),
	),
	courts: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "Courts"),
	),
	members: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "Members"),
	),
	income: key.NewBinding(
		key.WithKeys("3"),
		key.WithHelp("3", "Income"),
	),
	settings: key.NewBinding(
		key.WithKeys("4"),
		key.WithHelp("4", "Settings"),
	),
	manage: key.NewBinding(
		key.WithKeys("5"),
		key.WithHelp("5", "Manage"),
	),
	add: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "Add"),
	),
	delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "Delete"),
	),
	paid: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "Toggle paid"),
	),
	method: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "Toggle method"),
	),
	assign: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "Fill court"),
	),
	toggle: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "Toggle selection"),
	),
	start: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "Start game"),
	),
	endGame: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "End game"),
	),
	removePlayers: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "Clear court"),
	),
	closeCourt: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "Close court"),
	),
	shuttleUp: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "Add shuttle"),
	),
	shuttleDown: key.NewBinding(
		key.WithKeys("-"),
		key.WithHelp("-", "Remove shuttle"),
	),
	export: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "Export summary"),
	),
	confirm: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "Confirm"),
	),
	search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "Filter members"),
	),
}
