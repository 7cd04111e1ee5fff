package main

import (
	"flag"
	"log/slog"
	"os"

	"explorer.himalayandata.org/internal/app"
	"explorer.himalayandata.org/internal/himalaya"
	"explorer.himalayandata.org/internal/logging"
	"explorer.himalayandata.org/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	var cfg app.Config
	var dataPath string

	flag.StringVar(&dataPath, "data", "DataCSV", "Directory containing the Himalayan Database CSV files")
	flag.StringVar(&cfg.Env, "env", "development", "Environment (development|production)")
	flag.BoolVar(&cfg.Verbose, "verbose", false, "Verbose logging")
	flag.Parse()

	// The terminal UI owns stdout, so logs go to stderr.
	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelInfo
	}
	logger := logging.NewStructuredLogger(os.Stderr, level)

	dataConfig := himalaya.Config{DataPath: dataPath, Verbose: cfg.Verbose}
	manager := himalaya.NewManager(dataConfig, logger)
	manager.LoadAll()

	application := &app.Application{
		Config:      cfg,
		DataConfig:  dataConfig,
		Logger:      logger,
		DataManager: manager,
	}

	program := tea.NewProgram(ui.NewModel(application), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		logging.LogError(logger, "explorer terminated", err)
		os.Exit(1)
	}
}
