package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// DefaultMaxHandsPerRanking bounds a single ranking request when no config
// file is loaded.
const DefaultMaxHandsPerRanking = 64

// ShowdownConfig tunes the evaluation service.
type ShowdownConfig struct {
	// MaxHandsPerRanking caps how many hands one ranking request may carry.
	MaxHandsPerRanking int `json:"max_hands_per_ranking"`
	// StrictDeck rejects ranking requests where the same physical card
	// appears in more than one hand, as in a real single-deck showdown.
	StrictDeck bool `json:"strict_deck"`
}

var (
	cfg      *ShowdownConfig
	loadOnce sync.Once
	loadErr  error
)

// LoadConfig loads the service configuration from the given path.
func LoadConfig(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read showdown config: %w", err)
			return
		}

		var c ShowdownConfig
		if err := json.Unmarshal(data, &c); err != nil {
			loadErr = fmt.Errorf("failed to unmarshal showdown config: %w", err)
			return
		}
		cfg = &c
	})
	return loadErr
}

// GetConfig returns the global service configuration, or nil when unloaded.
func GetConfig() *ShowdownConfig {
	return cfg
}

// MaxHandsPerRanking returns the configured batch limit, falling back to the
// default when no config is loaded or the value is unset.
func MaxHandsPerRanking() int {
	if cfg == nil || cfg.MaxHandsPerRanking <= 0 {
		return DefaultMaxHandsPerRanking
	}
	return cfg.MaxHandsPerRanking
}

// StrictDeck reports whether ranking requests must draw from a single deck.
func StrictDeck() bool {
	if cfg == nil {
		return false
	}
	return cfg.StrictDeck
}
