package ui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/pnattawut/bgm-tui/internal/config"
	"github.com/pnattawut/bgm-tui/internal/gang"
)

const (
	clearMessageTimeout = time.Second * 10
)

var ErrUIExit = errors.New("ui error returned")

type UI struct {
	program *tea.Program
}

func New(ctx context.Context, userConfig config.Config, store *gang.Store,
	buildVersion string, buildDate string, buildCommit string, configPath string,
) *UI {
	zone.NewGlobal()

	fps := userConfig.FPS
	if fps <= 0 {
		fps = 30
	}

	return &UI{
		program: tea.NewProgram(
			newRootModel(ctx, userConfig, store, buildVersion, buildDate, buildCommit, configPath),
			tea.WithMouseCellMotion(),
			tea.WithAltScreen(),
			tea.WithMouseAllMotion(),
			tea.WithContext(ctx),
			tea.WithFPS(fps)),
	}
}

func (t UI) Run() error {
	if _, err := t.program.Run(); err != nil {
		return errors.Join(err, ErrUIExit)
	}

	return nil
}

func (t UI) Send(msg tea.Msg) {
	t.program.Send(msg)
}
