package playlist

import (
	"math/rand"

	"github.com/DathaCode/moody-backend/internal/mood"
)

// minStrictness floors the classification confidence so a vague mood
// still produces a reasonably targeted feature set.
const minStrictness = 0.3

// Targets are the per-request numeric targets for the four audio
// features, derived from a profile and a classification confidence.
type Targets struct {
	Energy       float64 `json:"energy"`
	Valence      float64 `json:"valence"`
	Danceability float64 `json:"danceability"`
	Tempo        float64 `json:"tempo"`
}

// ComputeTargets derives a target per feature range. Each target is the
// range midpoint jittered by up to (width * (1-strictness) / 2) in either
// direction, clamped back into the range. At confidence 1.0 the jitter is
// zero and the targets are the exact midpoints.
//
// rng is the caller's random source; tests pass a seeded one.
func ComputeTargets(p mood.Profile, confidence float64, rng *rand.Rand) Targets {
	strictness := max(minStrictness, confidence)
	return Targets{
		Energy:       targetWithin(p.Energy, strictness, rng),
		Valence:      targetWithin(p.Valence, strictness, rng),
		Danceability: targetWithin(p.Danceability, strictness, rng),
		Tempo:        targetWithin(p.Tempo, strictness, rng),
	}
}

// targetWithin picks a value in r near its midpoint.
func targetWithin(r mood.FeatureRange, strictness float64, rng *rand.Rand) float64 {
	variance := r.Width() * (1 - strictness) * 0.5
	jitter := 0.0
	if variance > 0 {
		jitter = (rng.Float64()*2 - 1) * variance
	}
	return clamp(r.Midpoint()+jitter, r.Min, r.Max)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
