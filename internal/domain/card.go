package domain

import (
	"fmt"
	"strings"
)

// rankSymbols orders the 13 rank symbols by strength, weakest first.
// A rank's priority is its index in this string.
const rankSymbols = "23456789TJQKA"

// Rank is a card's face value, stored as its strength priority 0..12
// (Two = 0, Ace = 12).
type Rank int

const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Suit is one of the four card suits. Suits carry no strength and matter
// only for flush detection.
type Suit string

const (
	Clubs    Suit = "C"
	Diamonds Suit = "D"
	Hearts   Suit = "H"
	Spades   Suit = "S"
)

var suitNames = map[Suit]string{
	Clubs:    "Clubs",
	Diamonds: "Diamonds",
	Hearts:   "Hearts",
	Spades:   "Spades",
}

var rankNames = map[Rank]string{
	Ten:   "10",
	Jack:  "Jack",
	Queen: "Queen",
	King:  "King",
	Ace:   "Ace",
}

// Card is a single playing card. Two cards are equal iff rank and suit
// both match; the struct is comparable and immutable.
type Card struct {
	Rank Rank
	Suit Suit
}

// ParseCard parses a two-character card code such as "KD" or "td":
// rank symbol (2-9, T, J, Q, K, A) followed by suit symbol (C, D, H, S),
// case-insensitive.
func ParseCard(code string) (Card, error) {
	if len(code) != 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, code)
	}
	up := strings.ToUpper(code)
	r := strings.IndexByte(rankSymbols, up[0])
	if r < 0 {
		return Card{}, fmt.Errorf("%w: unknown rank in %q", ErrInvalidCard, code)
	}
	suit := Suit(up[1:])
	if _, ok := suitNames[suit]; !ok {
		return Card{}, fmt.Errorf("%w: unknown suit in %q", ErrInvalidCard, code)
	}
	return Card{Rank: Rank(r), Suit: suit}, nil
}

// Symbol returns the rank's single-character code.
func (r Rank) Symbol() string {
	if r < Two || r > Ace {
		return "?"
	}
	return string(rankSymbols[r])
}

// Name returns the rank's display name ("2".."9", "10", "Jack", ...).
func (r Rank) Name() string {
	if name, ok := rankNames[r]; ok {
		return name
	}
	return r.Symbol()
}

// Name returns the suit's display name ("Clubs", "Diamonds", ...).
func (s Suit) Name() string {
	if name, ok := suitNames[s]; ok {
		return name
	}
	return "?"
}

// String returns the canonical two-character card code, e.g. "KD".
func (c Card) String() string {
	return c.Rank.Symbol() + string(c.Suit)
}

// Name returns the long display form, e.g. "King of Diamonds".
func (c Card) Name() string {
	return c.Rank.Name() + " of " + c.Suit.Name()
}
