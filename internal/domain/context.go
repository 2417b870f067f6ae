package domain

import "sort"

// rankCount pairs a distinct rank with its total number of occurrences
// across the hand.
type rankCount struct {
	rank  Rank
	count int
}

// handContext caches the derived views of a five-card hand that the
// combination rules read. Built once at Hand construction, never mutated.
type handContext struct {
	// sortedCards holds the cards ascending by rank priority, stable with
	// respect to input order for equal ranks.
	sortedCards []Card
	// sortedRanks mirrors sortedCards.
	sortedRanks []Rank
	// rankCounts has one entry per distinct rank, in the order ranks first
	// appear in sortedCards. Counts sum to the hand size. The ordering is
	// what makes the tie-break priority lists reproducible, so this is a
	// slice rather than a map.
	rankCounts []rankCount
}

func newHandContext(cards []Card) *handContext {
	sorted := make([]Card, len(cards))
	copy(sorted, cards)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Rank < sorted[j].Rank })

	ranks := make([]Rank, len(sorted))
	totals := make(map[Rank]int, len(sorted))
	for i, c := range sorted {
		ranks[i] = c.Rank
		totals[c.Rank]++
	}

	counts := make([]rankCount, 0, len(totals))
	for _, c := range sorted {
		if n := len(counts); n > 0 && counts[n-1].rank == c.Rank {
			continue
		}
		counts = append(counts, rankCount{rank: c.Rank, count: totals[c.Rank]})
	}

	return &handContext{sortedCards: sorted, sortedRanks: ranks, rankCounts: counts}
}

// ranksWithCount returns how many distinct ranks occur exactly n times.
func (hc *handContext) ranksWithCount(n int) int {
	total := 0
	for _, rc := range hc.rankCounts {
		if rc.count == n {
			total++
		}
	}
	return total
}
