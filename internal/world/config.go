// Package world runs the play-field simulation: drone waves, projectile
// flight, hit resolution, ammo and scoring. Rules are loaded from a data
// file so the mechanics can be tuned without touching code.
package world

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/chalkfire/skymath/internal/entity"
)

// Rules holds all simulation tunables for a session.
type Rules struct {
	// Kinematics and animation timing
	Physics entity.Params `json:"physics"`

	// Ammo economy
	Ammo AmmoConfig `json:"ammo"`

	// Score values
	Scoring ScoringConfig `json:"scoring"`

	// Wave composition and pacing
	Waves WaveConfig `json:"waves"`
}

// AmmoConfig defines the ammo economy.
type AmmoConfig struct {
	Initial   int `json:"initial"`    // rounds at session start
	ShotCost  int `json:"shot_cost"`  // rounds spent per burst
	HitReward int `json:"hit_reward"` // rounds returned for a correct hit
	Max       int `json:"max"`        // hard cap on rounds held
}

// ScoringConfig defines score changes per outcome.
type ScoringConfig struct {
	CorrectHit int `json:"correct_hit"`
	WrongHit   int `json:"wrong_hit"` // negative
}

// WaveConfig defines how drone waves are composed.
type WaveConfig struct {
	MinDrones      int     `json:"min_drones"`
	MaxDrones      int     `json:"max_drones"`
	RespawnDelay   float64 `json:"respawn_delay"`    // seconds after the Shahed is resolved
	WrongOffsetMax int     `json:"wrong_offset_max"` // wrong answers sit within +/- this of the correct one
}

// DefaultRules returns the stock game balance.
func DefaultRules() *Rules {
	return &Rules{
		Physics: entity.DefaultParams(),
		Ammo: AmmoConfig{
			Initial:   10,
			ShotCost:  2,
			HitReward: 3,
			Max:       20,
		},
		Scoring: ScoringConfig{
			CorrectHit: 10,
			WrongHit:   -5,
		},
		Waves: WaveConfig{
			MinDrones:      2,
			MaxDrones:      5,
			RespawnDelay:   1.0,
			WrongOffsetMax: 10,
		},
	}
}

// LoadRules loads simulation rules from a JSON file.
func LoadRules(path string) (*Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// Return defaults if file doesn't exist
		if os.IsNotExist(err) {
			return DefaultRules(), nil
		}
		return nil, fmt.Errorf("failed to read rules file: %w", err)
	}

	rules := DefaultRules() // Start with defaults
	if err := json.Unmarshal(data, rules); err != nil {
		return nil, fmt.Errorf("failed to parse rules file: %w", err)
	}

	return rules, nil
}
