package calculator

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownToken is returned by ParseToken for input that maps to no button.
var ErrUnknownToken = errors.New("calculator: unknown token")

// Kind groups tokens by the branch of the state machine that handles them.
type Kind int

const (
	KindDigit Kind = iota
	KindPoint
	KindOperator
	KindEquals
	KindClear
	KindSign
	KindPercent
)

// Token is a single button press.
type Token struct {
	Kind  Kind
	Digit byte     // '0'..'9' for KindDigit
	Op    Operator // set for KindOperator
}

// Convenience tokens for the non-digit buttons.
var (
	Point    = Token{Kind: KindPoint}
	Equals   = Token{Kind: KindEquals}
	Clear    = Token{Kind: KindClear}
	Sign     = Token{Kind: KindSign}
	Percent  = Token{Kind: KindPercent}
	Add      = Token{Kind: KindOperator, Op: OpAdd}
	Subtract = Token{Kind: KindOperator, Op: OpSubtract}
	Multiply = Token{Kind: KindOperator, Op: OpMultiply}
	Divide   = Token{Kind: KindOperator, Op: OpDivide}
)

// Digit returns the token for the digit d (0-9). Out of range values panic
// because they can only come from a programming error.
func Digit(d int) Token {
	if d < 0 || d > 9 {
		panic(fmt.Sprintf("calculator: digit %d out of range", d))
	}
	return Token{Kind: KindDigit, Digit: byte('0' + d)}
}

// String returns the button label for the token.
func (t Token) String() string {
	switch t.Kind {
	case KindDigit:
		return string(t.Digit)
	case KindPoint:
		return "."
	case KindOperator:
		return t.Op.String()
	case KindEquals:
		return "="
	case KindClear:
		return "AC"
	case KindSign:
		return "±"
	case KindPercent:
		return "%"
	default:
		return "?"
	}
}

// ParseToken maps a button label to a Token. Both the display glyphs
// (−, ×, ÷, ±) and their ASCII spellings (-, *, x, /, +/-) are accepted.
func ParseToken(label string) (Token, error) {
	s := strings.TrimSpace(label)
	if len(s) == 1 && s[0] >= '0' && s[0] <= '9' {
		return Token{Kind: KindDigit, Digit: s[0]}, nil
	}
	switch strings.ToLower(s) {
	case ".", ",":
		return Point, nil
	case "+":
		return Add, nil
	case "-", "−":
		return Subtract, nil
	case "*", "x", "×":
		return Multiply, nil
	case "/", "÷":
		return Divide, nil
	case "=":
		return Equals, nil
	case "c", "ac", "clear":
		return Clear, nil
	case "±", "+/-", "neg":
		return Sign, nil
	case "%":
		return Percent, nil
	}
	return Token{}, fmt.Errorf("%w: %q", ErrUnknownToken, label)
}

// ParseTokens splits a space separated sequence of labels, e.g. "5 + 3 =".
func ParseTokens(input string) ([]Token, error) {
	fields := strings.Fields(input)
	tokens := make([]Token, 0, len(fields))
	for _, field := range fields {
		tok, err := ParseToken(field)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}
