package calculator

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func mustTokens(t *testing.T, input string) []Token {
	t.Helper()
	tokens, err := ParseTokens(input)
	if err != nil {
		t.Fatalf("parse %q: %v", input, err)
	}
	return tokens
}

func TestAdditionProducesDisplayAndTrace(t *testing.T) {
	state := Run(mustTokens(t, "5 + 3 =")...)
	if state.Display != "8" {
		t.Fatalf("display = %q, want 8", state.Display)
	}
	want := []string{"5", "+", "3", "=", "8"}
	if !reflect.DeepEqual(state.Trace, want) {
		t.Fatalf("trace = %v, want %v", state.Trace, want)
	}
	if state.Phase != PhaseResultShown {
		t.Fatalf("phase = %s, want result", state.Phase)
	}
	if _, _, ok := state.Pending(); ok {
		t.Fatalf("expected pending operation to be cleared after equals")
	}
}

func TestDivideByZeroShowsError(t *testing.T) {
	state := Run(mustTokens(t, "4 ÷ 0 =")...)
	if state.Display != ErrorMarker {
		t.Fatalf("display = %q, want %q", state.Display, ErrorMarker)
	}
	if !reflect.DeepEqual(state.Trace, []string{"Error"}) {
		t.Fatalf("trace = %v, want [Error]", state.Trace)
	}
	if state.HasOperand || state.Operator != OpNone {
		t.Fatalf("pending operation must be cleared on error: %+v", state)
	}
	if !state.FreshInput || state.Phase != PhaseError {
		t.Fatalf("expected fresh input in error phase, got %+v", state)
	}
}

func TestDivideByZeroWhileChaining(t *testing.T) {
	state := Run(mustTokens(t, "4 / 0 +")...)
	if state.Display != ErrorMarker {
		t.Fatalf("display = %q, want error", state.Display)
	}
	if !reflect.DeepEqual(state.Trace, []string{"Error"}) {
		t.Fatalf("trace = %v, want [Error]", state.Trace)
	}
}

func TestDigitAfterErrorStartsOver(t *testing.T) {
	state := Run(mustTokens(t, "4 / 0 = 7")...)
	if state.Display != "7" {
		t.Fatalf("display = %q, want 7", state.Display)
	}
	if len(state.Trace) != 0 {
		t.Fatalf("trace = %v, want empty", state.Trace)
	}
	state = Transition(state, Digit(2))
	if state.Display != "72" {
		t.Fatalf("display = %q, want 72", state.Display)
	}
}

func TestOperatorAfterErrorUsesZero(t *testing.T) {
	state := Run(mustTokens(t, "1 / 0 = + 4 =")...)
	if state.Display != "4" {
		t.Fatalf("display = %q, want 4", state.Display)
	}
	want := []string{"0", "+", "4", "=", "4"}
	if !reflect.DeepEqual(state.Trace, want) {
		t.Fatalf("trace = %v, want %v", state.Trace, want)
	}
}

func TestConsecutiveOperatorsCollapse(t *testing.T) {
	state := Run(mustTokens(t, "5 + ×")...)
	_, op, ok := state.Pending()
	if !ok || op != OpMultiply {
		t.Fatalf("pending operator = %v (ok=%v), want ×", op, ok)
	}
	if !reflect.DeepEqual(state.Trace, []string{"5", "×"}) {
		t.Fatalf("trace = %v, want [5 ×]", state.Trace)
	}
	state = Run(mustTokens(t, "5 + × 3 =")...)
	if state.Display != "15" {
		t.Fatalf("display = %q, want 15", state.Display)
	}
}

func TestChainedOperatorsEvaluateLeftToRight(t *testing.T) {
	state := Run(mustTokens(t, "2 + 3 × 4")...)
	if state.Display != "4" {
		t.Fatalf("display = %q, want 4", state.Display)
	}
	wantTrace := []string{"2", "+", "3", "=", "5", "×"}
	if !reflect.DeepEqual(state.Trace, wantTrace) {
		t.Fatalf("trace = %v, want %v", state.Trace, wantTrace)
	}
	state = Transition(state, Equals)
	if state.Display != "20" {
		t.Fatalf("display = %q, want 20", state.Display)
	}
	wantTrace = append(wantTrace, "4", "=", "20")
	if !reflect.DeepEqual(state.Trace, wantTrace) {
		t.Fatalf("trace = %v, want %v", state.Trace, wantTrace)
	}
}

func TestOperatorAfterResultContinuesFromResult(t *testing.T) {
	state := Run(mustTokens(t, "5 + 3 = - 2 =")...)
	if state.Display != "6" {
		t.Fatalf("display = %q, want 6", state.Display)
	}
	want := []string{"8", "−", "2", "=", "6"}
	if !reflect.DeepEqual(state.Trace, want) {
		t.Fatalf("trace = %v, want %v", state.Trace, want)
	}
}

func TestDigitAfterResultStartsNewChain(t *testing.T) {
	state := Run(mustTokens(t, "5 + 3 = 9")...)
	if state.Display != "9" {
		t.Fatalf("display = %q, want 9", state.Display)
	}
	if len(state.Trace) != 0 {
		t.Fatalf("trace = %v, want empty", state.Trace)
	}
	if state.HasOperand {
		t.Fatalf("expected pending operand to be cleared")
	}
	state = Transition(state, Digit(1))
	if state.Display != "91" {
		t.Fatalf("display = %q, want 91", state.Display)
	}
}

func TestPointAfterResultStartsDecimal(t *testing.T) {
	state := Run(mustTokens(t, "5 + 3 = . 5")...)
	if state.Display != "0.5" {
		t.Fatalf("display = %q, want 0.5", state.Display)
	}
	if len(state.Trace) != 0 {
		t.Fatalf("trace = %v, want empty", state.Trace)
	}
}

func TestEqualsWithoutPendingIsNoop(t *testing.T) {
	before := Run(mustTokens(t, "4 2")...)
	after := Transition(before, Equals)
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("equals changed state: %+v -> %+v", before, after)
	}
}

func TestDigitsConcatenateUpToCap(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"0", "0"},
		{"0 0 0", "0"},
		{"0 7", "7"},
		{"1 2 3", "123"},
		{"1 2 3 4 5 6 7 8 9", "123456789"},
		{"1 2 3 4 5 6 7 8 9 0 1", "123456789"},
		{"1 2 . 3 4 5 6 7 8 9 1", "12.3456789"},
		{"1 . 2 . 3", "1.23"},
		{". 5", "0.5"},
	}
	for _, tc := range cases {
		state := Run(mustTokens(t, tc.input)...)
		if state.Display != tc.want {
			t.Fatalf("%q: display = %q, want %q", tc.input, state.Display, tc.want)
		}
	}
}

func TestPointWhileAwaitingOperand(t *testing.T) {
	state := Run(mustTokens(t, "3 + . 5 =")...)
	if state.Display != "3.5" {
		t.Fatalf("display = %q, want 3.5", state.Display)
	}
}

func TestPercentAndSign(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"9 %", "0.09"},
		{"5 0 %", "0.5"},
		{"7 ±", "-7"},
		{"7 ± ±", "7"},
		{"0 ±", "0"},
		{"1 . 5 ±", "-1.5"},
	}
	for _, tc := range cases {
		state := Run(mustTokens(t, tc.input)...)
		if state.Display != tc.want {
			t.Fatalf("%q: display = %q, want %q", tc.input, state.Display, tc.want)
		}
	}
}

func TestClearResetsEverything(t *testing.T) {
	state := Run(mustTokens(t, "5 + 3 = × 2 C")...)
	if !reflect.DeepEqual(state, Initial()) {
		t.Fatalf("state after clear = %+v, want initial", state)
	}
	state = Run(mustTokens(t, "1 / 0 = AC")...)
	if !reflect.DeepEqual(state, Initial()) {
		t.Fatalf("state after clearing error = %+v, want initial", state)
	}
}

func TestTransitionDoesNotMutateInput(t *testing.T) {
	start := Run(mustTokens(t, "5 + 3 +")...)
	snapshot := start.clone()
	_ = Transition(start, Multiply)
	_ = Transition(start, Equals)
	if !reflect.DeepEqual(start, snapshot) {
		t.Fatalf("transition mutated its input: %+v vs %+v", start, snapshot)
	}
}

func TestLargeResultsUseExponentialNotation(t *testing.T) {
	state := Run(mustTokens(t, "1 2 3 4 5 6 7 8 9 × 9 =")...)
	if !strings.Contains(state.Display, "e+") {
		t.Fatalf("display = %q, want exponential", state.Display)
	}
	if state.Display != "1.11111e+9" {
		t.Fatalf("display = %q, want 1.11111e+9", state.Display)
	}
}

func TestEngineApplyReturnsDisplay(t *testing.T) {
	eng := New()
	for _, tok := range mustTokens(t, "1 2 +") {
		eng.Apply(tok)
	}
	if got := eng.Apply(Digit(8)); got != "8" {
		t.Fatalf("apply returned %q, want 8", got)
	}
	if got := eng.Apply(Equals); got != "20" {
		t.Fatalf("apply returned %q, want 20", got)
	}
	trace := eng.Trace()
	trace[0] = "mutated"
	if eng.Trace()[0] != "12" {
		t.Fatalf("Trace must return a copy, got %v", eng.Trace())
	}
	eng.Reset()
	if eng.Display() != "0" || len(eng.Trace()) != 0 {
		t.Fatalf("reset did not restore the initial state: %+v", eng.State())
	}
}

func TestParseTokenRejectsUnknownLabels(t *testing.T) {
	if _, err := ParseToken("sqrt"); !errors.Is(err, ErrUnknownToken) {
		t.Fatalf("expected ErrUnknownToken, got %v", err)
	}
	if _, err := ParseTokens("1 + foo"); err == nil {
		t.Fatalf("expected error for unknown label")
	}
}

func TestOperatorApplyRejectsZeroDivisor(t *testing.T) {
	if _, err := OpDivide.Apply(1, 0); !errors.Is(err, ErrDivideByZero) {
		t.Fatalf("expected ErrDivideByZero, got %v", err)
	}
	if v, err := OpDivide.Apply(1, 4); err != nil || v != 0.25 {
		t.Fatalf("1 ÷ 4 = %v (%v), want 0.25", v, err)
	}
}
