package calculator

import (
	"slices"
	"strings"
)

// Transition applies one button press to s and returns the resulting state.
// s itself is never modified.
func Transition(s State, tok Token) State {
	next := s.clone()
	if tok.Kind == KindClear {
		return Initial()
	}
	if next.IsError() {
		next.Display = "0"
		next.Trace = nil
		next.Phase = PhaseIdle
	}
	switch tok.Kind {
	case KindDigit:
		next.inputDigit(tok.Digit)
	case KindPoint:
		next.inputPoint()
	case KindOperator:
		next.inputOperator(tok.Op)
	case KindEquals:
		next.inputEquals()
	case KindSign:
		next.transformDisplay(func(v float64) float64 { return -v })
	case KindPercent:
		next.transformDisplay(func(v float64) float64 { return v / 100 })
	}
	return next
}

// Run folds a sequence of tokens over the initial state.
func Run(tokens ...Token) State {
	s := Initial()
	for _, tok := range tokens {
		s = Transition(s, tok)
	}
	return s
}

// startFresh handles the first keystroke after a result or error. A
// completed chain is discarded so the new number begins a new calculation.
func (s *State) startFresh(display string) {
	if s.Phase == PhaseResultShown {
		s.Trace = nil
		s.clearPending()
	}
	s.Display = display
	s.FreshInput = false
	s.AwaitingOperand = false
	s.Phase = PhaseAccumulating
}

func (s *State) inputDigit(d byte) {
	digit := string(d)
	switch {
	case s.FreshInput:
		s.startFresh(digit)
	case s.AwaitingOperand:
		s.Display = digit
		s.AwaitingOperand = false
		s.Phase = PhaseAccumulating
	default:
		if digitCount(s.Display) >= MaxDigits {
			return
		}
		if s.Display == "0" {
			s.Display = digit
		} else {
			s.Display += digit
		}
		s.Phase = PhaseAccumulating
	}
}

func (s *State) inputPoint() {
	switch {
	case s.FreshInput:
		s.startFresh("0.")
	case s.AwaitingOperand:
		s.Display = "0."
		s.AwaitingOperand = false
		s.Phase = PhaseAccumulating
	default:
		if !strings.Contains(s.Display, ".") {
			s.Display += "."
		}
		s.Phase = PhaseAccumulating
	}
}

func (s *State) inputOperator(op Operator) {
	switch {
	case s.Phase == PhaseResultShown:
		s.beginOperation(op)
	case s.AwaitingOperand:
		s.Operator = op
		if n := len(s.Trace); n > 0 {
			s.Trace[n-1] = op.String()
		} else {
			s.Trace = append(s.Trace, op.String())
		}
	case !s.HasOperand:
		s.beginOperation(op)
	default:
		before := s.Display
		result, ok := s.evaluate()
		if !ok {
			return
		}
		s.Operand, _ = parseDisplay(result)
		s.HasOperand = true
		s.Operator = op
		s.Display = result
		s.AwaitingOperand = true
		s.FreshInput = false
		s.Trace = append(s.Trace, before, "=", result, op.String())
		s.Phase = PhaseAwaitingOperand
	}
}

// beginOperation stores the display as the left-hand operand and restarts
// the trace from it.
func (s *State) beginOperation(op Operator) {
	s.Operand, _ = parseDisplay(s.Display)
	s.HasOperand = true
	s.Operator = op
	s.AwaitingOperand = true
	s.FreshInput = false
	s.Trace = []string{s.Display, op.String()}
	s.Phase = PhaseAwaitingOperand
}

func (s *State) inputEquals() {
	if !s.HasOperand || s.Operator == OpNone {
		return
	}
	before := s.Display
	result, ok := s.evaluate()
	if !ok {
		return
	}
	s.Display = result
	s.Trace = append(s.Trace, before, "=", result)
	s.clearPending()
	s.AwaitingOperand = false
	s.FreshInput = true
	s.Phase = PhaseResultShown
}

// evaluate computes the pending operation against the display. On failure
// the state is switched to the error display and ok is false.
func (s *State) evaluate() (string, bool) {
	rhs, _ := parseDisplay(s.Display)
	value, err := s.Operator.Apply(s.Operand, rhs)
	if err != nil {
		s.fail()
		return "", false
	}
	formatted := Format(value)
	if formatted == ErrorMarker {
		s.fail()
		return "", false
	}
	return formatted, true
}

func (s *State) transformDisplay(fn func(float64) float64) {
	if s.IsError() {
		return
	}
	v, ok := parseDisplay(s.Display)
	if !ok {
		return
	}
	formatted := Format(fn(v))
	if formatted == ErrorMarker {
		return
	}
	s.Display = formatted
	if s.Phase == PhaseIdle {
		s.Phase = PhaseAccumulating
	}
}

// Engine is a stateful wrapper around Transition.
type Engine struct {
	state State
}

// New returns an engine showing "0".
func New() *Engine {
	return &Engine{state: Initial()}
}

// Apply processes one button press and returns the new display string.
func (e *Engine) Apply(tok Token) string {
	e.state = Transition(e.state, tok)
	return e.state.Display
}

// Display returns the current display string.
func (e *Engine) Display() string {
	return e.state.Display
}

// Trace returns a copy of the formula trace.
func (e *Engine) Trace() []string {
	return slices.Clone(e.state.Trace)
}

// State returns a snapshot of the engine state.
func (e *Engine) State() State {
	return e.state.clone()
}

// Reset returns the engine to its initial state.
func (e *Engine) Reset() {
	e.state = Initial()
}
