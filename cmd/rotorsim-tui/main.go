package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rotorsim/rotorsim/core/engine"
	"github.com/rotorsim/rotorsim/pkg/logging"
	"github.com/rotorsim/rotorsim/pkg/machineflags"
)

func main() {
	fs := flag.NewFlagSet("rotorsim-tui", flag.ExitOnError)
	mf := machineflags.Register(fs)
	logLevel := fs.String("log-level", "error", "Log level (debug, info, warn, error)")
	logFile := fs.String("log-file", "", "Write logs to this file instead of discarding them.")
	_ = fs.Parse(os.Args[1:])

	if *logFile != "" {
		f, err := tea.LogToFile(*logFile, "rotorsim")
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logging.InitLogger(*logLevel, "json", f)
	} else {
		logging.SetLogger(logging.NewNop())
	}
	logger := logging.GetLogger()

	settings, err := mf.Settings(fs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load settings: %v\n", err)
		os.Exit(1)
	}

	trace := &tracePath{}
	machine, err := engine.New(settings, engine.WithTrace(trace.record), engine.WithLogger(logger))
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid machine settings: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(newModel(machine, trace), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("terminal UI failed", "error", err)
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
