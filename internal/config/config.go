package config

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path"

	"github.com/adrg/xdg"
)

var (
	errConfigWrite = errors.New("failed to write config file")
	errConfigRead  = errors.New("failed to read config file")
	errLoggerInit  = errors.New("failed to initialize logger")
)

const (
	ConfigDirName     = "bgm-tui"
	DefaultConfigName = "bgm-tui"
	DefaultDBName     = "bgm-tui.db"
	DefaultLogName    = "bgm-tui.log"
	EnvPrefix         = "bgmtui"
)

type Config struct {
	// ExportDir is where income summary exports are written.
	ExportDir string `mapstructure:"export_dir"`
	Debug     bool   `mapstructure:"debug"`
	FPS       int    `mapstructure:"fps"`
}

// Path generates a path pointing to the filename under this apps defined $XDG_CONFIG_HOME.
func Path(name string) string {
	fullPath, errFullPath := xdg.ConfigFile(path.Join(ConfigDirName, name))
	if errFullPath != nil {
		panic(errFullPath)
	}

	return fullPath
}

func defaultExportDir() string {
	if xdg.UserDirs.Documents != "" {
		return xdg.UserDirs.Documents
	}

	homedir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}

	return homedir
}

// LoggerInit sets up the slog global handler to use a log file as we cant print to the console.
func LoggerInit(logPath string, level slog.Level) (io.Closer, error) {
	logFile, errLogFile := os.Create(path.Join(xdg.ConfigHome, ConfigDirName, logPath))
	if errLogFile != nil {
		return nil, errors.Join(errLogFile, errLoggerInit)
	}

	logger := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{
		AddSource: false,
		Level:     level,
	}))

	slog.SetDefault(logger)

	return logFile, nil
}
