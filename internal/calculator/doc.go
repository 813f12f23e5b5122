// Package calculator implements the four-function calculator behind the
// calculator screen. The engine is a pure transition function over an
// explicit State value: every button press maps to a Token, and
// Transition(state, token) returns the next State without touching the
// previous one. Engine wraps that function for callers that prefer a
// mutable Apply-style API.
package calculator
