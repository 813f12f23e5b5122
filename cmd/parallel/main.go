// cmd/parallel/main.go
//
// This is the entry point for the trick kit.
// When you run `parallel` from any directory, this is what executes.
//
// Flow:
// 0. With --eval, run a calculator button sequence and exit
// 1. Resolve the project directory and create .parallel/ if needed
// 2. Build the App (config + journey log)
// 3. Run the TUI until the user quits

package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kingrea/parallel/internal/calculator"
	"github.com/kingrea/parallel/internal/config"
	"github.com/kingrea/parallel/internal/tui"
)

func main() {
	projectDir := flag.String("project", "", "directory holding .parallel/ (defaults to cwd)")
	screen := flag.String("screen", "", "screen to open on launch: lockscreen, calculator, or default")
	eval := flag.String("eval", "", "press a button sequence (e.g. \"5 + 3 =\"), print the display and trace, then exit")
	flag.Parse()

	if *eval != "" {
		tokens, err := calculator.ParseTokens(*eval)
		if err != nil {
			die("Error parsing button sequence: %v", err)
		}
		state := calculator.Run(tokens...)
		fmt.Println(state.Display)
		if len(state.Trace) > 0 {
			fmt.Println(strings.Join(state.Trace, " "))
		}
		return
	}

	project := *projectDir
	if project == "" {
		cwd, err := os.Getwd()
		if err != nil {
			die("Error getting working directory: %v", err)
		}
		project = cwd
	}
	project, err := filepath.Abs(project)
	if err != nil {
		die("Error resolving project directory: %v", err)
	}

	if err := config.InitDir(project); err != nil {
		die("Error initializing %s directory: %v", config.AppDir, err)
	}

	app, err := tui.NewApp(project, tui.WithStartScreen(*screen))
	if err != nil {
		die("Error loading configuration: %v", err)
	}

	// tea.NewProgram creates a new bubbletea application
	p := tea.NewProgram(
		app,
		tea.WithAltScreen(), // Use alternate screen buffer (like vim does)
	)

	// Run blocks until the user quits
	if _, err := p.Run(); err != nil {
		die("Error running TUI: %v", err)
	}
}

func die(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
