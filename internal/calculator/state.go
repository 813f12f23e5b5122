package calculator

import "slices"

// Phase is the coarse position of the calculator in a computation chain.
type Phase int

const (
	PhaseIdle           Phase = iota // fresh engine or after clear
	PhaseAccumulating                // typing an operand
	PhaseAwaitingOperand             // an operator was pressed, right-hand side not started
	PhaseResultShown                 // equals completed a chain
	PhaseError                       // arithmetic failure on display
)

// String returns a human-readable name for the phase
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseAccumulating:
		return "Accumulating"
	case PhaseAwaitingOperand:
		return "Awaiting Operand"
	case PhaseResultShown:
		return "Result"
	case PhaseError:
		return "Error"
	default:
		return "Unknown"
	}
}

// State is a complete snapshot of the calculator. The zero value is not
// ready for use; start from Initial.
type State struct {
	Display string
	// Operand is the pending left-hand value, valid only when HasOperand.
	Operand    float64
	HasOperand bool
	Operator   Operator
	// AwaitingOperand makes the next digit replace the display.
	AwaitingOperand bool
	// FreshInput makes the next digit start a new number after a result
	// or an error.
	FreshInput bool
	Trace      []string
	Phase      Phase
}

// Initial returns the state of a freshly started calculator.
func Initial() State {
	return State{Display: "0", Phase: PhaseIdle}
}

// IsError reports whether the display shows the error marker.
func (s State) IsError() bool {
	return s.Display == ErrorMarker
}

// Pending returns the pending operand and operator, if any.
func (s State) Pending() (float64, Operator, bool) {
	if !s.HasOperand || s.Operator == OpNone {
		return 0, OpNone, false
	}
	return s.Operand, s.Operator, true
}

func (s State) clone() State {
	s.Trace = slices.Clone(s.Trace)
	return s
}

func (s *State) clearPending() {
	s.Operand = 0
	s.HasOperand = false
	s.Operator = OpNone
}

// fail puts the calculator into the error state.
func (s *State) fail() {
	s.Display = ErrorMarker
	s.clearPending()
	s.AwaitingOperand = false
	s.FreshInput = true
	s.Trace = []string{ErrorMarker}
	s.Phase = PhaseError
}
