// internal/modes/mode.go
//
// Defines the Mode interface that both trick screens implement.
// Each mode owns its own state and reports back to the App via messages.

package modes

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kingrea/parallel/internal/config"
	"github.com/kingrea/parallel/internal/logbook"
)

// ModeContext provides shared context for all modes
type ModeContext struct {
	Config  *config.Config
	Logbook *logbook.Logbook
	// Now returns the current time. Tests pin it; nil means time.Now.
	Now func() time.Time
}

// Clock returns the current time from the context clock.
func (c *ModeContext) Clock() time.Time {
	if c == nil || c.Now == nil {
		return time.Now()
	}
	return c.Now()
}

// Mode defines the interface that all screens must implement
type Mode interface {
	// Name returns the mode's display name
	Name() string

	// Screen returns the config identifier of the screen (see config.Screen*)
	Screen() string

	// Init initializes the mode and returns a startup command
	Init(ctx *ModeContext) tea.Cmd

	// Update handles messages and returns the updated mode plus any commands
	// When the user leaves the screen, it should return a ModeCompleteMsg
	Update(msg tea.Msg) (Mode, tea.Cmd)

	// View renders the mode's current state
	View() string

	// IsComplete returns true if the user has left the screen
	IsComplete() bool
}

// ModeCompleteMsg signals that a mode has finished and the App should
// return to the main menu
type ModeCompleteMsg struct {
	Screen string
	// Error if the mode failed
	Error error
}

// Complete returns a command emitting ModeCompleteMsg for screen.
func Complete(screen string) tea.Cmd {
	return func() tea.Msg {
		return ModeCompleteMsg{Screen: screen}
	}
}

// BaseMode provides common functionality for all modes
type BaseMode struct {
	ctx       *ModeContext
	name      string
	screen    string
	complete  bool
	statusMsg string
	width     int
	height    int
}

// NewBaseMode creates a new BaseMode with the given name and screen
func NewBaseMode(name, screen string) BaseMode {
	return BaseMode{
		name:   name,
		screen: screen,
	}
}

// Name returns the mode's display name
func (m *BaseMode) Name() string {
	return m.name
}

// Screen returns the screen identifier
func (m *BaseMode) Screen() string {
	return m.screen
}

// IsComplete returns true if the mode has finished
func (m *BaseMode) IsComplete() bool {
	return m.complete
}

// SetComplete marks the mode as complete
func (m *BaseMode) SetComplete(complete bool) {
	m.complete = complete
}

// Context returns the mode context
func (m *BaseMode) Context() *ModeContext {
	return m.ctx
}

// SetContext sets the mode context
func (m *BaseMode) SetContext(ctx *ModeContext) {
	m.ctx = ctx
}

// StatusMsg returns the current status message
func (m *BaseMode) StatusMsg() string {
	return m.statusMsg
}

// SetStatusMsg sets the status message
func (m *BaseMode) SetStatusMsg(msg string) {
	m.statusMsg = msg
}

// SetSize records the terminal size
func (m *BaseMode) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Size returns the last recorded terminal size
func (m *BaseMode) Size() (int, int) {
	return m.width, m.height
}

// Logbook returns the journey log, or nil when the mode has no context.
func (m *BaseMode) Logbook() *logbook.Logbook {
	if m.ctx == nil {
		return nil
	}
	return m.ctx.Logbook
}
