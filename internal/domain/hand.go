package domain

import (
	"fmt"
	"sort"
	"strings"
)

// HandSize is the fixed number of cards in a showdown hand.
const HandSize = 5

// Hand is a classified set of five distinct cards. A Hand either exists
// fully classified or was never constructed; it is immutable afterwards and
// safe to share across goroutines.
type Hand struct {
	ctx  *handContext
	comb combination
}

// NewHand validates and classifies a five-card hand. It fails with
// ErrInvalidHand when the count is not five or a card repeats, and with
// ErrNoCombination on an (unreachable) classification miss.
func NewHand(cards []Card) (*Hand, error) {
	if len(cards) != HandSize {
		return nil, fmt.Errorf("%w: got %d cards, want %d", ErrInvalidHand, len(cards), HandSize)
	}
	seen := make(map[Card]struct{}, HandSize)
	for _, c := range cards {
		if _, dup := seen[c]; dup {
			return nil, fmt.Errorf("%w: duplicate card %s", ErrInvalidHand, c)
		}
		seen[c] = struct{}{}
	}

	ctx := newHandContext(cards)
	comb, err := classify(ctx)
	if err != nil {
		return nil, err
	}
	return &Hand{ctx: ctx, comb: comb}, nil
}

// ParseHand builds a hand from five whitespace-separated card codes,
// e.g. "KD KS QS KC KH".
func ParseHand(s string) (*Hand, error) {
	fields := strings.Fields(s)
	cards := make([]Card, 0, len(fields))
	for _, f := range fields {
		c, err := ParseCard(f)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return NewHand(cards)
}

// Kind returns the matched combination category.
func (h *Hand) Kind() Kind { return h.comb.kind }

// Cards returns a copy of the hand's cards in ascending rank order.
func (h *Hand) Cards() []Card {
	out := make([]Card, len(h.ctx.sortedCards))
	copy(out, h.ctx.sortedCards)
	return out
}

// Priorities returns a copy of the tie-break priority list for the
// matched kind.
func (h *Hand) Priorities() []int {
	out := make([]int, len(h.comb.priorities))
	copy(out, h.comb.priorities)
	return out
}

// Compare orders two hands: -1 if h is weaker than other, 0 if they tie
// exactly, 1 if stronger. Kind decides first; same-kind hands fall back to
// the priority-list comparison, most significant rank first.
func (h *Hand) Compare(other *Hand) int {
	switch {
	case h.comb.kind < other.comb.kind:
		return -1
	case h.comb.kind > other.comb.kind:
		return 1
	}
	return comparePriorities(h.comb.priorities, other.comb.priorities)
}

// Equal reports whether two hands tie exactly: same kind and same priority
// list, regardless of the concrete cards.
func (h *Hand) Equal(other *Hand) bool {
	return h.Compare(other) == 0
}

// String renders the cards in ascending rank order plus the combination
// name, e.g. "QC QD 5C 5H QS" -> "5C, 5H, QC, QD, QS (Full House)".
func (h *Hand) String() string {
	codes := make([]string, len(h.ctx.sortedCards))
	for i, c := range h.ctx.sortedCards {
		codes[i] = c.String()
	}
	return strings.Join(codes, ", ") + " (" + h.comb.kind.String() + ")"
}

// SortHands orders hands in place from weakest to strongest, stably.
func SortHands(hands []*Hand) {
	sort.SliceStable(hands, func(i, j int) bool { return hands[i].Compare(hands[j]) < 0 })
}
