package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pnattawut/bgm-tui/internal/gang"
)

// dataMsg broadcasts the session aggregate after a successful change. The
// message, when set, is shown in the status bar.
type dataMsg struct {
	data    gang.AppData
	message string
}

// applyChange runs a session mutation through the store and broadcasts either
// the new aggregate or the error.
func applyChange(ctx context.Context, store *gang.Store, message string, mutate func(gang.AppData) (gang.AppData, error)) tea.Cmd {
	return func() tea.Msg {
		data, err := store.Update(ctx, mutate)
		if err != nil {
			return statusMsg{Message: err.Error(), Err: true}
		}

		return dataMsg{data: data, message: message}
	}
}

type clearStatusMessageMsg struct{}

func clearErrorAfter(t time.Duration) tea.Cmd {
	return tea.Tick(t, func(_ time.Time) tea.Msg {
		return clearStatusMessageMsg{}
	})
}

type statusMsg struct {
	Message string
	Err     bool
}

func setStatusMessage(msg string, err bool) tea.Cmd {
	return func() tea.Msg {
		return statusMsg{Message: msg, Err: err}
	}
}

// editingMsg is broadcast while a text input holds focus so single-letter
// shortcuts, including quit, stay out of the way.
type editingMsg bool

func setEditing(editing bool) tea.Cmd {
	return func() tea.Msg { return editingMsg(editing) }
}

func setTab(tab tabView) tea.Cmd {
	return func() tea.Msg { return tab }
}
