package main

import (
	"os"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"showdown/internal/app"
	"showdown/internal/domain"
)

// demoHands is the classic demonstration list: at least one hand per
// category, including an exact four-of-a-kind tie.
var demoHands = []string{
	"6D 3D 5D 4D 2D",
	"AS JS QS KS TS",
	"KD KS QS KC KH",
	"JD 8C 5D 3H TS",
	"5H 5C QD QC QS",
	"2D 3D 7D QD AD",
	"4D 5D 6D 7H 8D",
	"JD JC JH 5H 8D",
	"JD JC 5D 5H TS",
	"JD JC 5D AH TS",
	"JD AC 5D 3H TS",
	"JD JC JH 3H 8D",
	"QD TS QS 2C KH",
	"KD KS QS KC KH",
	"QD QS QH QC KH",
}

func main() {
	hands := os.Args[1:]
	if len(hands) == 0 {
		hands = demoHands
	}

	ranking, err := app.NewService().RankHands(hands)
	if err != nil {
		pterm.Error.Printfln("ranking failed: %v", err)
		os.Exit(1)
	}

	rows := pterm.TableData{{"Place", "Cards", "Combination"}}
	for _, rh := range ranking {
		rows = append(rows, []string{
			strconv.Itoa(rh.Place),
			formatCards(rh.Cards),
			rh.KindName,
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(rows).Render(); err != nil {
		pterm.Error.Printfln("render failed: %v", err)
		os.Exit(1)
	}

	best := ranking[0]
	pterm.Success.Printfln("Strongest hand: %s with %s", describeCards(best.Cards), pterm.LightYellow(best.KindName))
}

// formatCards renders card codes with suit glyphs, red suits colored.
func formatCards(codes []string) string {
	out := make([]string, len(codes))
	for i, code := range codes {
		c, err := domain.ParseCard(code)
		if err != nil {
			out[i] = code
			continue
		}
		glyph := c.Rank.Symbol() + suitGlyph(c.Suit)
		if c.Suit == domain.Diamonds || c.Suit == domain.Hearts {
			glyph = pterm.LightRed(glyph)
		}
		out[i] = glyph
	}
	return strings.Join(out, " ")
}

func suitGlyph(s domain.Suit) string {
	switch s {
	case domain.Clubs:
		return "♣"
	case domain.Diamonds:
		return "♦"
	case domain.Hearts:
		return "♥"
	case domain.Spades:
		return "♠"
	}
	return "?"
}

// describeCards spells the cards out long form, e.g. "Queen of Spades".
func describeCards(codes []string) string {
	out := make([]string, len(codes))
	for i, code := range codes {
		c, err := domain.ParseCard(code)
		if err != nil {
			out[i] = code
			continue
		}
		out[i] = c.Name()
	}
	return strings.Join(out, ", ")
}
