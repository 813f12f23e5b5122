// Package lockscreen models the fake lock screen used for the card reveal.
//
// The clock shows the real hours and minutes, but its "seconds" field is a
// secret counter that walks 1..13 and wraps. When the performer taps a suit,
// the card is built from whatever value the counter shows at that moment.
// Everything here is pure state; drawing lives in internal/modes/lockscreen.
package lockscreen
