package lockscreen

import (
	"fmt"
	"strconv"
	"strings"
)

// Suit is one of the four French suits.
type Suit int

const (
	Spades Suit = iota
	Hearts
	Clubs
	Diamonds
)

// Suits lists the suits in the order they appear on the picker grid.
var Suits = []Suit{Spades, Hearts, Clubs, Diamonds}

// String returns the suit name.
func (s Suit) String() string {
	switch s {
	case Spades:
		return "Spades"
	case Hearts:
		return "Hearts"
	case Clubs:
		return "Clubs"
	case Diamonds:
		return "Diamonds"
	default:
		return "Unknown"
	}
}

// Symbol returns the suit glyph.
func (s Suit) Symbol() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	default:
		return ""
	}
}

// IsRed reports whether the suit is printed in red.
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// ParseSuit accepts a suit name, its initial, or its glyph.
func ParseSuit(value string) (Suit, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "spades", "spade", "s", "♠":
		return Spades, nil
	case "hearts", "heart", "h", "♥":
		return Hearts, nil
	case "clubs", "club", "c", "♣":
		return Clubs, nil
	case "diamonds", "diamond", "d", "♦":
		return Diamonds, nil
	}
	return 0, fmt.Errorf("lockscreen: unknown suit %q", value)
}

// CardValue maps the secret counter to a card rank: 1 is the ace and
// 11..13 are the court cards.
func CardValue(seconds int) string {
	switch seconds {
	case 1:
		return "A"
	case 11:
		return "J"
	case 12:
		return "Q"
	case 13:
		return "K"
	default:
		return strconv.Itoa(seconds)
	}
}

// Card is a revealed playing card.
type Card struct {
	Value string
	Suit  Suit
}

// String renders the card as rank plus glyph, e.g. "Q♥".
func (c Card) String() string {
	if c.Value == "" {
		return ""
	}
	return c.Value + c.Suit.Symbol()
}

// Name renders the card in words, e.g. "Q of Hearts".
func (c Card) Name() string {
	if c.Value == "" {
		return ""
	}
	return fmt.Sprintf("%s of %s", c.Value, c.Suit)
}
