package feed

import (
	"fmt"
	"math"
	"time"
)

// Weights is the scoring weight vector. The six weights must sum to 1.0;
// Validate enforces this at engine construction so experiments cannot
// silently skew the combined score.
type Weights struct {
	Effectiveness  float64
	Novelty        float64
	ViralPotential float64
	UserAffinity   float64
	Recency        float64
	CreatorTrust   float64
}

// returns the production weight vector
func DefaultWeights() Weights {
	return Weights{
		Effectiveness:  0.30,
		Novelty:        0.20,
		ViralPotential: 0.20,
		UserAffinity:   0.15,
		Recency:        0.10,
		CreatorTrust:   0.05,
	}
}

func (w Weights) sum() float64 {
	return w.Effectiveness + w.Novelty + w.ViralPotential +
		w.UserAffinity + w.Recency + w.CreatorTrust
}

// Config carries every tunable ranking policy knob. Zero values are not
// usable; start from DefaultConfig and override.
type Config struct {
	Weights Weights

	// exploration boost applied to the final score when the profile's
	// appetite exceeds the threshold
	AppetiteThreshold float64
	ExploreBoost      float64

	// viral detection
	ViralRemixThreshold float64
	ViralAmplification  float64

	// trend decay: momentum *= DecayFactor^(elapsed/DecayUnit),
	// entries below Epsilon are evicted
	DecayFactor float64
	DecayUnit   time.Duration
	Epsilon     float64

	// diversity caps
	MaxPerCreator  int
	MaxPerCategory int

	// exploration injection
	ExplorationFraction float64
	MinExplorationSlots int

	// candidate overfetch multiplier for GetFeed
	OverfetchFactor int

	// trust assumed for creators the store has no score for
	NeutralTrust float64

	// per-user event log retention, oldest events dropped beyond this
	MaxEventsPerUser int
}

// returns the default ranking configuration
func DefaultConfig() Config {
	return Config{
		Weights:             DefaultWeights(),
		AppetiteThreshold:   0.7,
		ExploreBoost:        1.2,
		ViralRemixThreshold: 0.10,
		ViralAmplification:  2.0,
		DecayFactor:         0.99,
		DecayUnit:           time.Minute,
		Epsilon:             0.01,
		MaxPerCreator:       2,
		MaxPerCategory:      5,
		ExplorationFraction: 0.10,
		MinExplorationSlots: 2,
		OverfetchFactor:     5,
		NeutralTrust:        0.5,
		MaxEventsPerUser:    1000,
	}
}

// checks internal consistency of the configuration
func (c Config) Validate() error {
	if diff := math.Abs(c.Weights.sum() - 1.0); diff > 1e-9 {
		return fmt.Errorf("scoring weights must sum to 1.0, got %v", c.Weights.sum())
	}

	if c.ViralRemixThreshold <= 0 || c.ViralRemixThreshold >= 1 {
		return fmt.Errorf("viral remix threshold must be in (0, 1), got %v", c.ViralRemixThreshold)
	}

	if c.ViralAmplification < 1 {
		return fmt.Errorf("viral amplification must be >= 1, got %v", c.ViralAmplification)
	}

	if c.DecayFactor <= 0 || c.DecayFactor >= 1 {
		return fmt.Errorf("decay factor must be in (0, 1), got %v", c.DecayFactor)
	}

	if c.DecayUnit <= 0 {
		return fmt.Errorf("decay unit must be positive, got %v", c.DecayUnit)
	}

	if c.Epsilon <= 0 {
		return fmt.Errorf("eviction epsilon must be positive, got %v", c.Epsilon)
	}

	if c.MaxPerCreator < 1 || c.MaxPerCategory < 1 {
		return fmt.Errorf("diversity caps must be >= 1, got creator=%d category=%d",
			c.MaxPerCreator, c.MaxPerCategory)
	}

	if c.ExplorationFraction < 0 || c.ExplorationFraction > 1 {
		return fmt.Errorf("exploration fraction must be in [0, 1], got %v", c.ExplorationFraction)
	}

	if c.OverfetchFactor < 1 {
		return fmt.Errorf("overfetch factor must be >= 1, got %d", c.OverfetchFactor)
	}

	if c.NeutralTrust < 0 || c.NeutralTrust > 1 {
		return fmt.Errorf("neutral trust must be in [0, 1], got %v", c.NeutralTrust)
	}

	return nil
}
