package domain

import (
	"errors"
	"testing"
)

func TestParseCard(t *testing.T) {
	tests := []struct {
		code string
		want Card
	}{
		{"2C", Card{Rank: Two, Suit: Clubs}},
		{"9D", Card{Rank: Nine, Suit: Diamonds}},
		{"TS", Card{Rank: Ten, Suit: Spades}},
		{"JH", Card{Rank: Jack, Suit: Hearts}},
		{"QD", Card{Rank: Queen, Suit: Diamonds}},
		{"KC", Card{Rank: King, Suit: Clubs}},
		{"AS", Card{Rank: Ace, Suit: Spades}},
		// Case-insensitive
		{"td", Card{Rank: Ten, Suit: Diamonds}},
		{"aH", Card{Rank: Ace, Suit: Hearts}},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got, err := ParseCard(tt.code)
			if err != nil {
				t.Fatalf("ParseCard(%q) error: %v", tt.code, err)
			}
			if got != tt.want {
				t.Errorf("ParseCard(%q) = %v, want %v", tt.code, got, tt.want)
			}
		})
	}
}

func TestParseCardInvalid(t *testing.T) {
	codes := []string{"", "K", "ZZ", "1D", "KX", "10D", "K D"}

	for _, code := range codes {
		t.Run(code, func(t *testing.T) {
			if _, err := ParseCard(code); !errors.Is(err, ErrInvalidCard) {
				t.Errorf("ParseCard(%q) error = %v, want ErrInvalidCard", code, err)
			}
		})
	}
}

func TestRankOrdering(t *testing.T) {
	if Two != 0 || Ace != 12 {
		t.Fatalf("rank priorities shifted: Two=%d Ace=%d", Two, Ace)
	}
	for code, prev := range map[string]string{"3C": "2C", "TC": "9C", "AC": "KC"} {
		higher, _ := ParseCard(code)
		lower, _ := ParseCard(prev)
		if higher.Rank <= lower.Rank {
			t.Errorf("%s should outrank %s", code, prev)
		}
	}
}

func TestCardString(t *testing.T) {
	c, err := ParseCard("kd")
	if err != nil {
		t.Fatalf("ParseCard error: %v", err)
	}
	if c.String() != "KD" {
		t.Errorf("String() = %q, want KD", c.String())
	}
	if c.Name() != "King of Diamonds" {
		t.Errorf("Name() = %q, want King of Diamonds", c.Name())
	}
	if got := (Card{Rank: Ten, Suit: Spades}).Name(); got != "10 of Spades" {
		t.Errorf("Name() = %q, want 10 of Spades", got)
	}
}
