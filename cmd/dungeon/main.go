package main

import (
	"fmt"
	"os"

	"github.com/Mshel/dungeoneer/internal/config"
	"github.com/Mshel/dungeoneer/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

const envLogFile = "DUNGEON_LOG_FILE"

func main() {
	cfg, err := config.FromEnvironment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error %v\n", err)
		os.Exit(1)
	}

	// the alt screen owns stdout, so logs go to a file
	logPath := cfg.Logging.File
	if p := os.Getenv(envLogFile); p != "" {
		logPath = p
	}
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error opening log file %s: %v\n", logPath, err)
		os.Exit(1)
	}
	defer logFile.Close()

	logger := log.NewWithOptions(logFile, log.Options{
		ReportTimestamp: true,
		Level:           cfg.LogLevel(),
		Prefix:          "dungeon",
	})
	log.SetDefault(logger)
	logger.Info("Starting local session", "env", cfg.Env, "dev", cfg.IsDev())

	p := tea.NewProgram(
		ui.NewControllerModel(cfg.SceneOptions(logger), 0, 0),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	if _, err := p.Run(); err != nil {
		logger.Error("Program exited with error", "error", err)
		fmt.Printf("error %v", err)
		os.Exit(1)
	}
}
