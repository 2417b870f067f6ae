package domain

import (
	"reflect"
	"testing"
)

func mustHand(t *testing.T, s string) *Hand {
	t.Helper()
	h, err := ParseHand(s)
	if err != nil {
		t.Fatalf("ParseHand(%q) error: %v", s, err)
	}
	return h
}

func TestClassification(t *testing.T) {
	tests := []struct {
		name  string
		cards string
		want  Kind
	}{
		{"High Card", "JD 8C 5D 3H TS", HighCard},
		{"One Pair", "JD JC 5D AH TS", OnePair},
		{"Two Pair", "JD JC 5D 5H TS", TwoPair},
		{"Three of a Kind", "JD JC JH 5H 8D", ThreeOfAKind},
		{"Straight", "4D 5D 6D 7H 8D", Straight},
		{"Flush", "2D 3D 7D QD AD", Flush},
		{"Full House", "5H 5C QD QC QS", FullHouse},
		{"Four of a Kind", "KD KS QS KC KH", FourOfAKind},
		{"Straight Flush", "6D 3D 5D 4D 2D", StraightFlush},
		{"Royal Flush", "AS JS QS KS TS", RoyalFlush},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := mustHand(t, tt.cards)
			if h.Kind() != tt.want {
				t.Errorf("Kind() = %v, want %v", h.Kind(), tt.want)
			}
		})
	}
}

// A straight flush satisfies the plain straight and plain flush predicates,
// and a full house satisfies the one-pair and three-of-a-kind predicates.
// The strongest rule has to win.
func TestClassificationPicksStrongest(t *testing.T) {
	tests := []struct {
		cards string
		want  Kind
	}{
		{"6D 3D 5D 4D 2D", StraightFlush}, // also straight, flush
		{"AS JS QS KS TS", RoyalFlush},    // also straight flush, flush
		{"5H 5C QD QC QS", FullHouse},     // also one pair, three of a kind
		{"KD KS QS KC KH", FourOfAKind},
	}

	for _, tt := range tests {
		h := mustHand(t, tt.cards)
		if h.Kind() != tt.want {
			t.Errorf("%s: Kind() = %v, want %v", tt.cards, h.Kind(), tt.want)
		}
	}
}

func TestPriorityLists(t *testing.T) {
	tests := []struct {
		name  string
		cards string
		want  []int
	}{
		// All five kickers, ascending.
		{"High Card", "JD 8C 5D 3H TS", []int{1, 3, 6, 8, 9}},
		{"Flush", "2D 3D 7D QD AD", []int{0, 1, 5, 10, 12}},
		// Kickers first, the defining group last.
		{"One Pair", "JD JC 5D AH TS", []int{3, 8, 12, 9}},
		{"Two Pair", "JD JC 5D 5H TS", []int{8, 3, 9}},
		{"Three of a Kind", "JD JC JH 5H 8D", []int{3, 6, 9}},
		{"Full House", "5H 5C QD QC QS", []int{3, 10}},
		{"Four of a Kind", "KD KS QS KC KH", []int{10, 11}},
		// Straight family: the top card alone.
		{"Straight", "4D 5D 6D 7H 8D", []int{6}},
		{"Straight Flush", "6D 3D 5D 4D 2D", []int{4}},
		{"Royal Flush", "AS JS QS KS TS", []int{12}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := mustHand(t, tt.cards)
			if got := h.Priorities(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Priorities() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNotAStraight(t *testing.T) {
	// Ace plays high only; the wheel is not a straight here.
	h := mustHand(t, "AD 2C 3H 4S 5D")
	if h.Kind() != HighCard {
		t.Errorf("A-2-3-4-5 Kind() = %v, want HighCard", h.Kind())
	}
}

func TestComparePriorities(t *testing.T) {
	tests := []struct {
		name string
		a, b []int
		want int
	}{
		{"equal", []int{3, 6, 9}, []int{3, 6, 9}, 0},
		{"most significant wins", []int{12, 0}, []int{0, 1}, -1},
		{"falls through to kickers", []int{1, 6, 9}, []int{3, 6, 9}, -1},
		{"first difference decides", []int{3, 6, 9}, []int{1, 6, 9}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := comparePriorities(tt.a, tt.b); got != tt.want {
				t.Errorf("comparePriorities(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestRankCountsOrder(t *testing.T) {
	h := mustHand(t, "JD JC 5D 5H TS")
	hc := h.ctx

	want := []rankCount{{Five, 2}, {Ten, 1}, {Jack, 2}}
	if !reflect.DeepEqual(hc.rankCounts, want) {
		t.Errorf("rankCounts = %v, want %v", hc.rankCounts, want)
	}

	total := 0
	for _, rc := range hc.rankCounts {
		total += rc.count
	}
	if total != HandSize {
		t.Errorf("rank counts sum = %d, want %d", total, HandSize)
	}
}
