package lockscreen

import "time"

// RevealPhase tracks the card overlay.
type RevealPhase int

const (
	RevealHidden RevealPhase = iota
	RevealVisible
	RevealExiting
)

// String returns a human-readable name for the phase
func (p RevealPhase) String() string {
	switch p {
	case RevealHidden:
		return "hidden"
	case RevealVisible:
		return "visible"
	case RevealExiting:
		return "exiting"
	default:
		return "unknown"
	}
}

// ExitFrames is how many animation frames a swiped card stays on screen.
const ExitFrames = 4

// Reveal is the card overlay state. Frame counts animation steps since the
// card appeared and drives the floating motion.
type Reveal struct {
	Phase RevealPhase
	Card  Card
	Frame int
	exit  int
}

// Visible reports whether a card is on screen, including while it leaves.
func (r Reveal) Visible() bool {
	return r.Phase != RevealHidden
}

// Choose deals the card for suit at the clock's current counter. Choosing
// again while a card is showing replaces it and restarts the animation.
func (r Reveal) Choose(suit Suit, clock Clock) Reveal {
	return Reveal{Phase: RevealVisible, Card: clock.Card(suit)}
}

// Dismiss hides the card. A card that is already being swiped away is left
// to finish its exit.
func (r Reveal) Dismiss() Reveal {
	if r.Phase == RevealExiting {
		return r
	}
	r.Phase = RevealHidden
	return r
}

// Swipe starts the exit animation of a visible card.
func (r Reveal) Swipe() Reveal {
	if r.Phase != RevealVisible {
		return r
	}
	r.Phase = RevealExiting
	r.exit = ExitFrames
	return r
}

// Step advances the animation by one frame. An exiting card is hidden once
// its exit frames run out.
func (r Reveal) Step() Reveal {
	switch r.Phase {
	case RevealVisible:
		r.Frame++
	case RevealExiting:
		r.Frame++
		r.exit--
		if r.exit <= 0 {
			r.Phase = RevealHidden
			r.exit = 0
		}
	}
	return r
}

// Motion is the card offset for one animation frame, in terminal cells.
type Motion struct {
	Lift  int // rows above the resting line
	Sway  int // columns right (negative: left)
	Slide int // columns the card has travelled while exiting
}

var floatLift = []int{0, 1, 2, 2, 1, 0}
var floatSway = []int{0, 1, 0, -1}

// Motion returns the floating offset for the current frame.
func (r Reveal) Motion() Motion {
	if r.Phase == RevealHidden {
		return Motion{}
	}
	m := Motion{
		Lift: floatLift[r.Frame%len(floatLift)],
		Sway: floatSway[r.Frame%len(floatSway)],
	}
	if r.Phase == RevealExiting {
		m.Slide = (ExitFrames - r.exit) * 6
	}
	return m
}

// Swipe hint bounce: up, down, a smaller hop, down; repeated each period.
var hintKeyframes = []struct {
	duration time.Duration
	to       float64
}{
	{300 * time.Millisecond, 1},
	{300 * time.Millisecond, 0},
	{200 * time.Millisecond, 0.7},
	{200 * time.Millisecond, 0},
}

// HintLift returns how far the "swipe up" hint is raised (0..1) at
// elapsed time into a bounce period.
func HintLift(elapsed, period time.Duration) float64 {
	if period > 0 {
		elapsed %= period
	}
	if elapsed < 0 {
		return 0
	}
	from := 0.0
	for _, kf := range hintKeyframes {
		if elapsed < kf.duration {
			progress := float64(elapsed) / float64(kf.duration)
			return from + (kf.to-from)*progress
		}
		elapsed -= kf.duration
		from = kf.to
	}
	return 0
}
