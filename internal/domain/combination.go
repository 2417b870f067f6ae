package domain

import "sort"

// Kind identifies one of the ten hand categories, ordered by strength
// (HighCard weakest, RoyalFlush strongest).
type Kind int

const (
	HighCard Kind = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

var kindNames = [...]string{
	"High Card",
	"One Pair",
	"Two Pair",
	"Three of a Kind",
	"Straight",
	"Flush",
	"Full House",
	"Four of a Kind",
	"Straight Flush",
	"Royal Flush",
}

// String returns the display name of the kind, e.g. "Full House".
func (k Kind) String() string {
	if k < HighCard || k > RoyalFlush {
		return "Unknown"
	}
	return kindNames[k]
}

// combination is the classification result for one hand: the matched kind
// and the tie-break priority list compared against other hands of the
// same kind.
type combination struct {
	kind       Kind
	priorities []int
}

// combinationRule tests whether a hand context satisfies one kind and
// produces its priority list on match.
type combinationRule struct {
	kind       Kind
	matches    func(*handContext) bool
	priorities func(*handContext) []int
}

// rules lists every combination rule indexed by Kind. Classification walks
// this table from the end (Royal Flush) down to High Card. The order is
// load-bearing: several weaker predicates are also true of stronger hands
// (a straight flush satisfies both the plain straight and the plain flush
// predicates), so the strongest matching rule must be seen first.
var rules = [...]combinationRule{
	{kind: HighCard, matches: matchAny, priorities: ascendingPriorities},
	{kind: OnePair, matches: isOnePair, priorities: byCountPriorities},
	{kind: TwoPair, matches: isTwoPair, priorities: byCountPriorities},
	{kind: ThreeOfAKind, matches: isThreeOfAKind, priorities: byCountPriorities},
	{kind: Straight, matches: isStraight, priorities: topPriority},
	{kind: Flush, matches: isFlush, priorities: ascendingPriorities},
	{kind: FullHouse, matches: isFullHouse, priorities: byCountPriorities},
	{kind: FourOfAKind, matches: isFourOfAKind, priorities: byCountPriorities},
	{kind: StraightFlush, matches: isStraightFlush, priorities: topPriority},
	{kind: RoyalFlush, matches: isRoyalFlush, priorities: topPriority},
}

// classify finds the strongest combination the context satisfies. High Card
// matches unconditionally, so a miss is a logic defect and surfaces as
// ErrNoCombination.
func classify(hc *handContext) (combination, error) {
	for i := len(rules) - 1; i >= 0; i-- {
		rule := rules[i]
		if rule.matches(hc) {
			return combination{kind: rule.kind, priorities: rule.priorities(hc)}, nil
		}
	}
	return combination{}, ErrNoCombination
}

func matchAny(*handContext) bool { return true }

func isOnePair(hc *handContext) bool { return hc.ranksWithCount(2) == 1 }

func isTwoPair(hc *handContext) bool { return hc.ranksWithCount(2) == 2 }

func isThreeOfAKind(hc *handContext) bool { return hc.ranksWithCount(3) == 1 }

// isFullHouse relies on the fixed hand size: two distinct ranks across five
// cards force a 3+2 split. Not valid for any other hand size.
func isFullHouse(hc *handContext) bool { return len(hc.rankCounts) == 2 }

func isFourOfAKind(hc *handContext) bool { return hc.ranksWithCount(4) == 1 }

// isStraight checks that the sorted priorities form a run with step
// exactly 1. Ace is always high; A-2-3-4-5 is not a straight here.
func isStraight(hc *handContext) bool {
	for i := 1; i < len(hc.sortedRanks); i++ {
		if hc.sortedRanks[i]-hc.sortedRanks[i-1] != 1 {
			return false
		}
	}
	return true
}

func isFlush(hc *handContext) bool {
	suit := hc.sortedCards[0].Suit
	for _, c := range hc.sortedCards[1:] {
		if c.Suit != suit {
			return false
		}
	}
	return true
}

func isStraightFlush(hc *handContext) bool { return isFlush(hc) && isStraight(hc) }

var royalRanks = [...]Rank{Ten, Jack, Queen, King, Ace}

func isRoyalFlush(hc *handContext) bool {
	if !isFlush(hc) {
		return false
	}
	for i, r := range royalRanks {
		if hc.sortedRanks[i] != r {
			return false
		}
	}
	return true
}

// ascendingPriorities returns all five rank priorities, weakest first.
// Used by High Card and Flush, where every card is a kicker.
func ascendingPriorities(hc *handContext) []int {
	out := make([]int, len(hc.sortedRanks))
	for i, r := range hc.sortedRanks {
		out[i] = int(r)
	}
	return out
}

// byCountPriorities returns the distinct rank priorities sorted stably by
// occurrence count ascending: kickers first, the defining pair/set last.
// Stability over the first-occurrence order in rankCounts keeps equal-count
// ranks ascending, which the tie-break comparison depends on.
func byCountPriorities(hc *handContext) []int {
	counts := make([]rankCount, len(hc.rankCounts))
	copy(counts, hc.rankCounts)
	sort.SliceStable(counts, func(i, j int) bool { return counts[i].count < counts[j].count })

	out := make([]int, len(counts))
	for i, rc := range counts {
		out[i] = int(rc.rank)
	}
	return out
}

// topPriority returns the highest rank priority alone, for the straight
// family where the top card decides everything.
func topPriority(hc *handContext) []int {
	return []int{int(hc.sortedRanks[len(hc.sortedRanks)-1])}
}

// comparePriorities compares two same-kind priority lists. The most
// significant entry sits at the back, so the walk runs back to front; the
// first differing position decides. Same-kind lists always have the same
// length. Returns -1, 0 or 1.
func comparePriorities(a, b []int) int {
	for i := len(a) - 1; i >= 0; i-- {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	return 0
}
