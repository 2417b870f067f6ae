package domain

import "errors"

var (
	// ErrInvalidCard reports a malformed card code or an unknown rank or suit.
	ErrInvalidCard = errors.New("invalid card")
	// ErrInvalidHand reports a wrong card count or a duplicated card.
	ErrInvalidHand = errors.New("invalid hand")
	// ErrNoCombination reports that no rule matched a hand. High Card matches
	// every hand, so seeing this error means the rule table is broken.
	ErrNoCombination = errors.New("no combination matched")
)
