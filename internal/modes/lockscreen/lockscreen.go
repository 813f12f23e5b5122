// internal/modes/lockscreen/lockscreen.go
//
// Lock screen mode: a fake phone lock screen. The clock's seconds secretly
// walk through the card ranks; picking a suit deals the card the clock is
// pointing at and floats it over the screen until it is dismissed or swiped.

package lockscreen

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kingrea/parallel/internal/config"
	ls "github.com/kingrea/parallel/internal/lockscreen"
	"github.com/kingrea/parallel/internal/modes"
)

const (
	frameInterval    = 120 * time.Millisecond
	defaultTick      = time.Second
	defaultHintEvery = 8 * time.Second
)

// session numbers distinguish tick chains of successive Mode instances so a
// stale tick from a previous visit cannot double the clock speed.
var session int

type clockTickMsg struct {
	session int
	at      time.Time
}

type frameMsg struct {
	session int
	at      time.Time
}

// Mode handles the lock screen
type Mode struct {
	modes.BaseMode
	session   int
	clock     ls.Clock
	reveal    ls.Reveal
	selected  int
	tick      time.Duration
	hintEvery time.Duration
	started   time.Time
	now       time.Time
	keys      keyMap
	help      help.Model
}

// New creates a new Lock Screen mode
func New() *Mode {
	session++
	return &Mode{
		BaseMode:  modes.NewBaseMode("Lock Screen", config.ScreenLockScreen),
		session:   session,
		clock:     ls.NewClock(),
		tick:      defaultTick,
		hintEvery: defaultHintEvery,
		keys:      defaultKeyMap(),
		help:      help.New(),
	}
}

// Init starts the clock and animation ticks
func (m *Mode) Init(ctx *modes.ModeContext) tea.Cmd {
	m.SetContext(ctx)
	if ctx != nil && ctx.Config != nil {
		m.tick = ctx.Config.TickInterval()
		m.hintEvery = ctx.Config.HintPeriod()
		m.selected = suitIndex(ctx.Config.DefaultSuit())
	}
	m.now = ctx.Clock()
	m.started = m.now
	m.clock = m.clock.Tick(m.now)
	return tea.Batch(m.scheduleClockTick(), m.scheduleFrame())
}

// Update handles messages for the lock screen
func (m *Mode) Update(msg tea.Msg) (modes.Mode, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		return m, nil

	case clockTickMsg:
		if msg.session != m.session || m.IsComplete() {
			return m, nil
		}
		m.now = msg.at
		m.clock = m.clock.Tick(msg.at)
		return m, m.scheduleClockTick()

	case frameMsg:
		if msg.session != m.session || m.IsComplete() {
			return m, nil
		}
		m.now = msg.at
		m.reveal = m.reveal.Step()
		return m, m.scheduleFrame()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Back):
			m.SetComplete(true)
			return m, modes.Complete(m.Screen())
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Left):
			m.selected = (m.selected + len(ls.Suits) - 1) % len(ls.Suits)
		case key.Matches(msg, m.keys.Right):
			m.selected = (m.selected + 1) % len(ls.Suits)
		case key.Matches(msg, m.keys.Choose):
			m.Choose(ls.Suits[m.selected])
		case key.Matches(msg, m.keys.Dismiss):
			m.reveal = m.reveal.Dismiss()
		case key.Matches(msg, m.keys.Swipe):
			m.reveal = m.reveal.Swipe()
		case key.Matches(msg, m.keys.Suit):
			if suit, ok := suitForKey(msg.String()); ok {
				m.selected = suitIndex(suit)
				m.Choose(suit)
			}
		}
	}
	return m, nil
}

// Choose deals the card for suit from the current clock counter.
func (m *Mode) Choose(suit ls.Suit) {
	m.reveal = m.reveal.Choose(suit, m.clock)
	m.SetStatusMsg(fmt.Sprintf("Dealt %s", m.reveal.Card.Name()))
	if lb := m.Logbook(); lb != nil {
		lb.Info("Lock screen · dealt %s at %s:%s", m.reveal.Card.Name(), m.clock.HourMinute(), m.clock.Seconds())
	}
}

// Clock returns the current lock screen clock.
func (m *Mode) Clock() ls.Clock {
	return m.clock
}

// Reveal returns the current card overlay state.
func (m *Mode) Reveal() ls.Reveal {
	return m.reveal
}

func (m *Mode) scheduleClockTick() tea.Cmd {
	id := m.session
	return tea.Tick(m.tick, func(t time.Time) tea.Msg {
		return clockTickMsg{session: id, at: t}
	})
}

func (m *Mode) scheduleFrame() tea.Cmd {
	id := m.session
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg{session: id, at: t}
	})
}

func suitIndex(suit ls.Suit) int {
	for i, s := range ls.Suits {
		if s == suit {
			return i
		}
	}
	return 0
}

func suitForKey(k string) (ls.Suit, bool) {
	switch k {
	case "1":
		return ls.Spades, true
	case "2":
		return ls.Hearts, true
	case "3":
		return ls.Clubs, true
	case "4":
		return ls.Diamonds, true
	}
	suit, err := ls.ParseSuit(k)
	return suit, err == nil
}

var (
	clockStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF"))
	secondsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAAA"))
	suitStyle = lipgloss.NewStyle().
			Width(9).
			Align(lipgloss.Center).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444444"))
	selectedSuitStyle = suitStyle.
				BorderForeground(lipgloss.Color("#5B8DEF")).
				Bold(true)
	cardStyle = lipgloss.NewStyle().
			Width(11).
			Height(7).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#DDDDDD")).
			Background(lipgloss.Color("#FFFFFF")).
			Padding(0, 1)
	redInk   = lipgloss.Color("#FF0000")
	blackInk = lipgloss.Color("#000000")
	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			MarginTop(1)
)

// View renders the lock screen
func (m *Mode) View() string {
	clock := lipgloss.JoinVertical(lipgloss.Center,
		clockStyle.Render(bigDigits(m.clock.HourMinute())),
		secondsStyle.Render(m.clock.Seconds()),
	)

	var stage string
	if m.reveal.Visible() {
		stage = m.renderCard()
	} else {
		stage = m.renderSuitGrid()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		clock,
		"",
		stage,
		m.renderHint(),
		statusStyle.Render(m.StatusMsg()),
		m.help.View(m.keys),
	)
}

func (m *Mode) renderSuitGrid() string {
	cells := make([]string, len(ls.Suits))
	for i, suit := range ls.Suits {
		ink := blackInk
		if suit.IsRed() {
			ink = redInk
		}
		style := suitStyle
		if i == m.selected {
			style = selectedSuitStyle
		}
		cells[i] = style.Render(lipgloss.NewStyle().Foreground(ink).Render(suit.Symbol()))
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, cells[0], cells[1]),
		lipgloss.JoinHorizontal(lipgloss.Top, cells[2], cells[3]),
	)
}

func (m *Mode) renderCard() string {
	card := m.reveal.Card
	ink := blackInk
	if card.Suit.IsRed() {
		ink = redInk
	}
	inked := lipgloss.NewStyle().Foreground(ink).Background(lipgloss.Color("#FFFFFF"))
	corner := card.Value + card.Suit.Symbol()
	face := lipgloss.JoinVertical(lipgloss.Left,
		inked.Render(corner),
		"",
		lipgloss.PlaceHorizontal(9, lipgloss.Center, inked.Bold(true).Render(card.Suit.Symbol())),
		"",
		lipgloss.PlaceHorizontal(9, lipgloss.Right, inked.Render(corner)),
	)
	rendered := cardStyle.Render(face)

	motion := m.reveal.Motion()
	indent := max(0, 2+motion.Sway+motion.Slide)
	lift := 2 - motion.Lift
	return lipgloss.NewStyle().
		MarginLeft(indent).
		MarginTop(max(0, lift)).
		Render(rendered)
}

func (m *Mode) renderHint() string {
	lift := ls.HintLift(m.now.Sub(m.started), m.hintEvery)
	pad := 2 - int(lift*2+0.5)
	return strings.Repeat("\n", max(0, pad)) + hintStyle.Render("↑ swipe up to unlock")
}

// bigDigits spaces the clock out so it reads like a lock screen clock.
func bigDigits(s string) string {
	return strings.Join(strings.Split(s, ""), " ")
}
