package app

import (
	"log/slog"

	"explorer.himalayandata.org/internal/himalaya"
)

// Application holds the dependencies for the explorer: the top-level config,
// a logger, and the data manager that owns the table cache. The terminal UI
// receives one of these and everything it needs hangs off it.
type Application struct {
	Config      Config
	DataConfig  himalaya.Config
	Logger      *slog.Logger
	DataManager *himalaya.Manager
}

// Config holds the top-level configuration settings for the Application:
// the name of the current operating environment (development, production)
// and whether verbose logging is enabled. These are read from command-line
// flags when the explorer starts.
type Config struct {
	Env     string
	Verbose bool
}
