package feed

import (
	"math"
	"time"
)

// recency half-life scale in hours (one week)
const recencyScaleHours = 168.0

// items younger than this get the full freshness multiplier in the viral
// potential signal
const freshnessWindow = 24 * time.Hour

// Scorer computes the utility of a candidate for a user. Scoring is a
// pure function of (candidate, profile, trust, now): no clocks are read
// and no state is touched, so identical inputs always produce identical
// scores.
type Scorer struct {
	cfg Config
}

func NewScorer(cfg Config) *Scorer {
	return &Scorer{cfg: cfg}
}

// Score combines the six weighted signals and applies the exploration
// boost for high-appetite profiles.
func (s *Scorer) Score(item CandidateItem, profile UserProfile, trust float64, now time.Time) float64 {
	w := s.cfg.Weights

	score := w.Effectiveness*item.EffectivenessScore +
		w.Novelty*s.novelty(item, profile) +
		w.ViralPotential*s.viralPotential(item, now) +
		w.UserAffinity*s.affinity(item, profile) +
		w.Recency*s.recency(item, now) +
		w.CreatorTrust*clamp01(trust)

	if profile.ExplorationAppetite > s.cfg.AppetiteThreshold {
		score *= s.cfg.ExploreBoost
	}

	return score
}

// novelty decays asymptotically toward zero as the user accumulates
// exposures to the candidate's category, never reaching it
func (s *Scorer) novelty(item CandidateItem, profile UserProfile) float64 {
	seenSimilar := profile.CategorySeen[item.Category]
	return 1.0 / (1.0 + float64(seenSimilar))
}

// viralPotential blends remix rate, retention, momentum and an age-based
// freshness multiplier. Ratio denominators of zero short-circuit to 0.
func (s *Scorer) viralPotential(item CandidateItem, now time.Time) float64 {
	var remixRate, retention float64

	if item.UsageCount > 0 {
		remixRate = float64(item.RemixCount) / float64(item.UsageCount)
		retention = float64(item.UniqueUserCount) / float64(item.UsageCount)
	}

	// momentum is unbounded; squash into [0,1) preserving order
	momentum := item.TrendingMomentum
	if momentum < 0 {
		momentum = 0
	}
	momentum = momentum / (1.0 + momentum)

	freshness := 0.8
	if now.Sub(item.CreatedAt) < freshnessWindow {
		freshness = 1.0
	}

	return 0.4*math.Min(remixRate*10, 1.0) +
		0.3*math.Min(retention, 1.0) +
		0.2*momentum +
		0.1*freshness
}

func (s *Scorer) affinity(item CandidateItem, profile UserProfile) float64 {
	return clamp01(profile.Affinities[item.Category])
}

func (s *Scorer) recency(item CandidateItem, now time.Time) float64 {
	ageHours := now.Sub(item.CreatedAt).Hours()
	if ageHours < 0 {
		ageHours = 0
	}

	return math.Exp(-ageHours / recencyScaleHours)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}

	if v > 1 {
		return 1
	}

	return v
}
