package main

import (
	"context"
	"log/slog"

	"github.com/pnattawut/bgm-tui/internal/config"
	"github.com/pnattawut/bgm-tui/internal/gang"
	"github.com/pnattawut/bgm-tui/internal/ui"
	"golang.org/x/sync/errgroup"
)

// App is the main application container.
type App struct {
	ui            *ui.UI
	config        config.Config
	loader        *config.Loader
	session       *gang.Store
	configUpdates chan config.Config
}

// New returns a new application instance. To actually start the app you must call
// Start().
func New(conf config.Config, loader *config.Loader, session *gang.Store, configUpdates chan config.Config) *App {
	return &App{
		config:        conf,
		loader:        loader,
		session:       session,
		configUpdates: configUpdates,
	}
}

// Start runs the UI and the config watcher until the UI exits.
func (app *App) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		defer cancel()

		return app.createUI(ctx).Run()
	})

	group.Go(func() error {
		for {
			select {
			case conf := <-app.configUpdates:
				slog.Info("Config file changed")
				app.config = conf
				if app.ui != nil {
					app.ui.Send(conf)
				}
			case <-ctx.Done():
				return nil
			}
		}
	})

	return group.Wait()
}

func (app *App) createUI(ctx context.Context) *ui.UI {
	if app.ui == nil {
		app.ui = ui.New(ctx, app.config, app.session,
			BuildVersion, BuildDate, BuildCommit, app.loader.Path())
	}

	return app.ui
}
