package lockscreen

import (
	"fmt"
	"time"
)

const (
	firstCounter = 1
	lastCounter  = 13
)

// Clock is the lock screen clock. Hours and minutes follow the wall clock;
// CustomSeconds is the secret card counter.
type Clock struct {
	Hours         string
	Minutes       string
	CustomSeconds int
}

// NewClock returns a clock showing 00:00 with the counter on the ace.
func NewClock() Clock {
	return Clock{Hours: "00", Minutes: "00", CustomSeconds: firstCounter}
}

// Tick updates the wall time from now and advances the counter, wrapping
// from the king back to the ace.
func (c Clock) Tick(now time.Time) Clock {
	c.Hours = fmt.Sprintf("%02d", now.Hour())
	c.Minutes = fmt.Sprintf("%02d", now.Minute())
	if c.CustomSeconds >= lastCounter || c.CustomSeconds < firstCounter {
		c.CustomSeconds = firstCounter
	} else {
		c.CustomSeconds++
	}
	return c
}

// HourMinute returns "HH:MM".
func (c Clock) HourMinute() string {
	return c.Hours + ":" + c.Minutes
}

// Seconds returns the counter zero padded to two digits.
func (c Clock) Seconds() string {
	return fmt.Sprintf("%02d", c.CustomSeconds)
}

// Card builds the card the counter currently points at.
func (c Clock) Card(suit Suit) Card {
	return Card{Value: CardValue(c.CustomSeconds), Suit: suit}
}
