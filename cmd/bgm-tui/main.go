package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/fang"
	_ "github.com/joho/godotenv/autoload"
	"github.com/pnattawut/bgm-tui/internal/config"
	"github.com/pnattawut/bgm-tui/internal/gang"
	"github.com/pnattawut/bgm-tui/internal/store"
	"github.com/spf13/cobra"
	_ "modernc.org/sqlite"
)

var (
	BuildVersion   = "master"
	BuildCommit    = "00000000"
	BuildDate      = time.Now().Format("2006-01-02T15:04:05Z")
	BuildGoVersion = runtime.Version()
	cfgFile        string
	rootCmd        = &cobra.Command{
		Use:   "bgm-tui",
		Short: "Badminton gang manager TUI",
		Long:  `bgm-tui - Track players, courts, shuttlecocks and money for a badminton gang session`,
		RunE:  run,
	}

	versionCmd = &cobra.Command{
		Use:               "version",
		Short:             "Print version information",
		Long:              "Print detailed version information about bgm-tui",
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		Run:               version,
	}
)

var errApp = errors.New("application error")

func main() {
	configPath := config.Path(config.DefaultConfigName)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", configPath,
		"Config file path")
	rootCmd.AddCommand(versionCmd)

	if err := fang.Execute(context.Background(), rootCmd); err != nil {
		slog.Error("Exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func version(_ *cobra.Command, _ []string) {
	fmt.Printf("bgm-tui - Badminton Gang Manager\n\n") //nolint:forbidigo
	fmt.Printf("  Version: %s\n", BuildVersion)        //nolint:forbidigo
	fmt.Printf("  Commit:  %s\n", BuildCommit)         //nolint:forbidigo
	fmt.Printf("  Built:   %s\n", BuildDate)           //nolint:forbidigo
	fmt.Printf("  Runtime: %s\n\n", BuildGoVersion)    //nolint:forbidigo
}

// run is the main entry point of bgm-tui.
func run(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	// If PROFILE is set, it will be used as the output file path for the profiler.
	if len(os.Getenv("PROFILE")) > 0 {
		f, err := os.Create(os.Getenv("PROFILE"))
		if err != nil {
			return errors.Join(err, errApp)
		}

		if errStart := pprof.StartCPUProfile(f); errStart != nil {
			return errors.Join(errStart, errApp)
		}
		defer pprof.StopCPUProfile()
	}

	// Make sure our config & data home exists.
	if err := os.MkdirAll(path.Join(xdg.ConfigHome, config.ConfigDirName), 0o750); err != nil {
		return errors.Join(err, errApp)
	}

	configUpdates := make(chan config.Config)

	loader := config.NewLoader(configUpdates)
	userConfig, errConfig := loader.Read()
	if errConfig != nil {
		return errors.Join(errConfig, errApp)
	}

	// Setup file based logger. This is very useful for us as our console is taken over by the ui.
	logLevel := slog.LevelInfo
	if userConfig.Debug {
		logLevel = slog.LevelDebug
	}
	logFile, errLogger := config.LoggerInit(config.DefaultLogName, logLevel)
	if errLogger != nil {
		return errors.Join(errLogger, errApp)
	}

	defer func(closer io.Closer) {
		if err := closer.Close(); err != nil {
			slog.Error("Failed to close log file", slog.String("error", err.Error()))
		}
	}(logFile)

	slog.Info("Starting bgm-tui", slog.String("version", BuildVersion),
		slog.String("commit", BuildCommit), slog.String("date", BuildDate),
		slog.String("go", runtime.Version()))

	// Setup the sqlite database system.
	database, errDB := store.Open(ctx, config.Path(config.DefaultDBName), true)
	if errDB != nil {
		return errors.Join(errDB, errApp)
	}

	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Error closing database", slog.String("error", err.Error()))
		}
	}()

	session, errSession := gang.NewStore(ctx, store.NewDocStore(database))
	if errSession != nil {
		return errors.Join(errSession, errApp)
	}

	app := New(userConfig, loader, session, configUpdates)

	return app.Start(ctx)
}
