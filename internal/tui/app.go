// internal/tui/app.go
//
// This is the main TUI (Terminal User Interface) for the trick kit.
// It uses bubbletea, which follows The Elm Architecture:
//
// 1. Model: Your application state
// 2. Update: A function that updates state based on messages
// 3. View: A function that renders state to a string
//
// The App owns the main menu and hands the screen over to one mode at a
// time (lock screen or calculator). Modes report back with ModeCompleteMsg.

package tui

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kingrea/parallel/internal/config"
	"github.com/kingrea/parallel/internal/logbook"
	"github.com/kingrea/parallel/internal/modes"
	calcmode "github.com/kingrea/parallel/internal/modes/calculator"
	lockmode "github.com/kingrea/parallel/internal/modes/lockscreen"
)

// appState represents which "screen" we're on
type appState int

const (
	stateMainMenu appState = iota // Main menu
	stateScreen                   // A mode owns the screen
)

const logPanelLines = 6

const (
	menuLockScreen = "Lock Screen"
	menuCalculator = "Calculator"
	menuLaunch     = "Launch Screen"
	menuExit       = "Exit"
)

// AppOption customizes App construction for tests and alternate runtimes.
type AppOption func(*App)

// WithClock overrides the time source handed to modes.
func WithClock(now func() time.Time) AppOption {
	return func(a *App) {
		if now != nil {
			a.now = now
		}
	}
}

// WithStartScreen opens the given screen on launch instead of the menu.
// "default" uses the configured launch screen.
func WithStartScreen(screen string) AppOption {
	return func(a *App) {
		a.startScreen = strings.ToLower(strings.TrimSpace(screen))
	}
}

// App is the main application model. In bubbletea, this holds ALL your state.
type App struct {
	state   appState
	config  *config.Config
	logbook *logbook.Logbook
	now     func() time.Time

	startScreen string
	activeMode  modes.Mode

	// UI components
	mainMenu  list.Model
	statusMsg string

	// Window size (we get this from bubbletea)
	width  int
	height int
}

// menuItem implements list.Item interface for our menu items
type menuItem struct {
	title string
	desc  string
}

func (i menuItem) Title() string       { return i.title }
func (i menuItem) Description() string { return i.desc }
func (i menuItem) FilterValue() string { return i.title }

// NewApp creates a new App instance
func NewApp(projectDir string, opts ...AppOption) (*App, error) {
	cfg, err := config.NewConfig(projectDir)
	if err != nil {
		return nil, err
	}
	lb, err := logbook.New(cfg.JourneyLogPath())
	if err == nil {
		lb.Info("Session opened · launch screen: %s", cfg.DefaultScreen())
	}

	mainMenu := list.New(buildMainMenu(cfg), list.NewDefaultDelegate(), 0, 0)
	mainMenu.Title = "♠ PARALLEL"
	mainMenu.SetShowStatusBar(false)
	mainMenu.SetFilteringEnabled(false)

	app := &App{
		state:    stateMainMenu,
		config:   cfg,
		logbook:  lb,
		now:      time.Now,
		mainMenu: mainMenu,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(app)
		}
	}
	if app.startScreen == "default" {
		app.startScreen = cfg.DefaultScreen()
	}
	return app, nil
}

// buildMainMenu creates the main menu items
func buildMainMenu(cfg *config.Config) []list.Item {
	launch := config.ScreenLockScreen
	if cfg != nil {
		launch = cfg.DefaultScreen()
	}
	return []list.Item{
		menuItem{title: menuLockScreen, desc: "Clock with a secret card counter"},
		menuItem{title: menuCalculator, desc: "A perfectly ordinary calculator"},
		menuItem{title: menuLaunch, desc: fmt.Sprintf("Opens on launch: %s (enter to switch)", launch)},
		menuItem{title: menuExit, desc: "Quit"},
	}
}

func (a *App) logInfo(format string, args ...any) {
	if a.logbook == nil {
		return
	}
	a.logbook.Info(format, args...)
}

func (a *App) logError(format string, args ...any) {
	if a.logbook == nil {
		return
	}
	a.logbook.Error(format, args...)
}

// Init is called once when the program starts.
func (a *App) Init() tea.Cmd {
	if a.startScreen == "" {
		return nil
	}
	_, cmd := a.openScreen(a.startScreen)
	return cmd
}

// Update is called when a message is received.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.mainMenu.SetSize(max(0, msg.Width-6), max(0, msg.Height-10))
		if a.activeMode != nil {
			_, cmd := a.activeMode.Update(msg)
			return a, cmd
		}
		return a, nil

	case modes.ModeCompleteMsg:
		if msg.Error != nil {
			a.statusMsg = fmt.Sprintf("Error: %v", msg.Error)
			a.logError("%s ended with error: %v", msg.Screen, msg.Error)
		}
		return a.returnToMainMenu()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return a, tea.Quit
		case "q":
			if a.state == stateMainMenu {
				return a, tea.Quit
			}
		case "enter":
			if a.state == stateMainMenu {
				return a.handleMainMenuSelection()
			}
		}
	}

	switch a.state {
	case stateMainMenu:
		var menuCmd tea.Cmd
		a.mainMenu, menuCmd = a.mainMenu.Update(msg)
		return a, menuCmd
	case stateScreen:
		if a.activeMode != nil {
			var cmd tea.Cmd
			a.activeMode, cmd = a.activeMode.Update(msg)
			return a, cmd
		}
	}
	return a, nil
}

// handleMainMenuSelection processes menu item selection
func (a *App) handleMainMenuSelection() (tea.Model, tea.Cmd) {
	item, ok := a.mainMenu.SelectedItem().(menuItem)
	if !ok {
		return a, nil
	}

	switch item.title {
	case menuLockScreen:
		return a.openScreen(config.ScreenLockScreen)
	case menuCalculator:
		return a.openScreen(config.ScreenCalculator)
	case menuLaunch:
		return a.toggleLaunchScreen()
	case menuExit:
		a.logInfo("Menu · Exit selected")
		return a, tea.Quit
	}
	return a, nil
}

// openScreen hands the terminal to a fresh mode for screen.
func (a *App) openScreen(screen string) (tea.Model, tea.Cmd) {
	var mode modes.Mode
	switch screen {
	case config.ScreenLockScreen:
		mode = lockmode.New()
	case config.ScreenCalculator:
		mode = calcmode.New()
	default:
		a.statusMsg = fmt.Sprintf("Unknown screen %q", screen)
		a.logError("Unknown screen requested: %s", screen)
		return a, nil
	}
	a.logInfo("Menu · %s opened", mode.Name())
	a.state = stateScreen
	a.activeMode = mode
	a.statusMsg = ""
	cmd := mode.Init(&modes.ModeContext{Config: a.config, Logbook: a.logbook, Now: a.now})
	if a.width > 0 && a.height > 0 {
		a.activeMode.Update(tea.WindowSizeMsg{Width: a.width, Height: a.height})
	}
	return a, cmd
}

func (a *App) toggleLaunchScreen() (tea.Model, tea.Cmd) {
	next := config.ScreenCalculator
	if a.config.DefaultScreen() == config.ScreenCalculator {
		next = config.ScreenLockScreen
	}
	if err := a.config.SetDefaultScreen(next); err != nil {
		a.statusMsg = fmt.Sprintf("Could not save launch screen: %v", err)
		a.logError("Launch screen change failed: %v", err)
		return a, nil
	}
	a.statusMsg = fmt.Sprintf("Launch screen set to %s", next)
	a.logInfo("Settings · launch screen set to %s", next)
	a.mainMenu.SetItems(buildMainMenu(a.config))
	return a, nil
}

// returnToMainMenu transitions back to the main menu
func (a *App) returnToMainMenu() (tea.Model, tea.Cmd) {
	if a.activeMode != nil {
		a.logInfo("Returned to main menu from %s", a.activeMode.Name())
	}
	a.state = stateMainMenu
	a.activeMode = nil
	return a, nil
}

// View renders the current state to a string.
func (a *App) View() string {
	var content string
	switch a.state {
	case stateMainMenu:
		content = a.mainMenu.View()
	case stateScreen:
		if a.activeMode != nil {
			content = a.activeMode.View()
		}
	}
	return a.renderFrame(content)
}

func (a *App) renderFrame(mainContent string) string {
	width := a.width
	if width <= 0 {
		width = 80
	}
	title := "♠ PARALLEL"
	if a.state == stateScreen && a.activeMode != nil {
		title = fmt.Sprintf("♠ PARALLEL · %s", a.activeMode.Name())
	}
	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FF6B6B")).
		MarginBottom(1).
		Render(title)
	body := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444444")).
		Padding(0, 1).
		Width(max(20, width-4)).
		Render(mainContent)
	sections := []string{header, body}
	if a.state == stateMainMenu {
		if logPanel := a.renderLogPanel(); logPanel != "" {
			sections = append(sections, logPanel)
		}
	}
	if a.statusMsg != "" {
		footer := lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			MarginTop(1).
			Render(a.statusMsg)
		sections = append(sections, footer)
	}
	return strings.Join(sections, "\n")
}

func (a *App) renderLogPanel() string {
	if a.logbook == nil {
		return ""
	}
	entries := a.logbook.Recent(logPanelLines)
	if len(entries) == 0 {
		return ""
	}
	fileName := filepath.Base(a.logbook.Path())
	if fileName == "." || fileName == "" {
		fileName = "log"
	}
	head := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#5B8DEF")).
		Render(fmt.Sprintf("LOG · %s", fileName))
	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		lines = append(lines, fmt.Sprintf("%s %-5s %s",
			entry.Time.Local().Format("15:04:05"), entry.Level, entry.Message))
	}
	body := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#AAAAAA")).
		Render(strings.Join(lines, "\n"))
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444444")).
		Padding(0, 1).
		Render(fmt.Sprintf("%s\n%s", head, body))
}
