package app

import (
	"errors"
	"fmt"
	"sort"

	"showdown/internal/config"
	"showdown/internal/domain"
)

var (
	ErrNoHands      = errors.New("no hands provided")
	ErrTooManyHands = errors.New("too many hands")
	ErrCardReused   = errors.New("card reused across hands")
)

// HandResult describes a single classified hand.
type HandResult struct {
	// Cards holds the canonical card codes in ascending rank order.
	Cards      []string `json:"cards"`
	Kind       int      `json:"kind"`
	KindName   string   `json:"kind_name"`
	Priorities []int    `json:"priorities"`
}

// RankedHand is a HandResult with its place in a ranking, strongest first.
// Hands that tie exactly share a place.
type RankedHand struct {
	Place int    `json:"place"`
	Input string `json:"input"`
	HandResult
}

// Service contains showdown use-cases operating on domain hands.
type Service struct {
	// MaxHands caps RankHands batch size.
	MaxHands int
	// StrictDeck rejects rankings that reuse a physical card across hands.
	StrictDeck bool
}

// NewService constructs a Service configured from the loaded config file,
// or defaults when none was loaded.
func NewService() *Service {
	return &Service{
		MaxHands:   config.MaxHandsPerRanking(),
		StrictDeck: config.StrictDeck(),
	}
}

// EvaluateHand parses and classifies a single hand string such as
// "KD KS QS KC KH".
func (s *Service) EvaluateHand(handStr string) (HandResult, error) {
	h, err := domain.ParseHand(handStr)
	if err != nil {
		return HandResult{}, err
	}
	return toResult(h), nil
}

// CompareHands classifies both hand strings and returns -1 if a is weaker
// than b, 0 on an exact tie, 1 if a is stronger.
func (s *Service) CompareHands(a, b string) (int, error) {
	ha, err := domain.ParseHand(a)
	if err != nil {
		return 0, fmt.Errorf("hand a: %w", err)
	}
	hb, err := domain.ParseHand(b)
	if err != nil {
		return 0, fmt.Errorf("hand b: %w", err)
	}
	return ha.Compare(hb), nil
}

// RankHands classifies every hand string and returns them strongest first.
// Parsing fails fast on the first bad hand, with its index in the error.
func (s *Service) RankHands(handStrs []string) ([]RankedHand, error) {
	if len(handStrs) == 0 {
		return nil, ErrNoHands
	}
	if len(handStrs) > s.MaxHands {
		return nil, fmt.Errorf("%w: got %d, limit %d", ErrTooManyHands, len(handStrs), s.MaxHands)
	}

	type entry struct {
		input string
		hand  *domain.Hand
	}

	entries := make([]entry, len(handStrs))
	dealt := make(map[domain.Card]int, len(handStrs)*domain.HandSize)
	for i, hs := range handStrs {
		h, err := domain.ParseHand(hs)
		if err != nil {
			return nil, fmt.Errorf("hand %d: %w", i, err)
		}
		if s.StrictDeck {
			for _, c := range h.Cards() {
				if prev, taken := dealt[c]; taken {
					return nil, fmt.Errorf("%w: %s in hands %d and %d", ErrCardReused, c, prev, i)
				}
				dealt[c] = i
			}
		}
		entries[i] = entry{input: hs, hand: h}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].hand.Compare(entries[j].hand) > 0
	})

	ranked := make([]RankedHand, len(entries))
	for i, e := range entries {
		place := i + 1
		if i > 0 && e.hand.Equal(entries[i-1].hand) {
			place = ranked[i-1].Place
		}
		ranked[i] = RankedHand{
			Place:      place,
			Input:      e.input,
			HandResult: toResult(e.hand),
		}
	}
	return ranked, nil
}

func toResult(h *domain.Hand) HandResult {
	cards := h.Cards()
	codes := make([]string, len(cards))
	for i, c := range cards {
		codes[i] = c.String()
	}
	return HandResult{
		Cards:      codes,
		Kind:       int(h.Kind()),
		KindName:   h.Kind().String(),
		Priorities: h.Priorities(),
	}
}
