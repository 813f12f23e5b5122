package calculator

import "errors"

// ErrDivideByZero is the only arithmetic failure the calculator knows about.
var ErrDivideByZero = errors.New("calculator: division by zero")

// Operator is one of the four binary operations.
type Operator int

const (
	OpNone Operator = iota
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
)

// String returns the glyph shown on the keypad and in the formula trace.
func (o Operator) String() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "−"
	case OpMultiply:
		return "×"
	case OpDivide:
		return "÷"
	default:
		return ""
	}
}

// Apply evaluates a <o> b. Division by exactly zero fails instead of
// producing an infinity.
func (o Operator) Apply(a, b float64) (float64, error) {
	switch o {
	case OpAdd:
		return a + b, nil
	case OpSubtract:
		return a - b, nil
	case OpMultiply:
		return a * b, nil
	case OpDivide:
		if b == 0 {
			return 0, ErrDivideByZero
		}
		return a / b, nil
	default:
		return 0, errors.New("calculator: no operator")
	}
}
