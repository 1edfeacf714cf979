package playlist

import (
	"math/rand"
	"testing"

	"github.com/DathaCode/moody-backend/internal/mood"
)

func TestComputeTargetsStayWithinRanges(t *testing.T) {
	confidences := []float64{0, 0.1, 0.3, 0.5, 0.7, 0.9, 1.0}

	for _, emotion := range mood.Emotions {
		profile, err := mood.ProfileFor(emotion)
		if err != nil {
			t.Fatalf("ProfileFor(%s): %v", emotion, err)
		}

		for _, conf := range confidences {
			rng := rand.New(rand.NewSource(42))
			for i := 0; i < 50; i++ {
				targets := ComputeTargets(profile, conf, rng)

				if !profile.Energy.Contains(targets.Energy) {
					t.Errorf("%s conf=%.1f: energy %.3f outside [%.2f, %.2f]",
						emotion, conf, targets.Energy, profile.Energy.Min, profile.Energy.Max)
				}
				if !profile.Valence.Contains(targets.Valence) {
					t.Errorf("%s conf=%.1f: valence %.3f outside [%.2f, %.2f]",
						emotion, conf, targets.Valence, profile.Valence.Min, profile.Valence.Max)
				}
				if !profile.Danceability.Contains(targets.Danceability) {
					t.Errorf("%s conf=%.1f: danceability %.3f outside [%.2f, %.2f]",
						emotion, conf, targets.Danceability, profile.Danceability.Min, profile.Danceability.Max)
				}
				if !profile.Tempo.Contains(targets.Tempo) {
					t.Errorf("%s conf=%.1f: tempo %.1f outside [%.1f, %.1f]",
						emotion, conf, targets.Tempo, profile.Tempo.Min, profile.Tempo.Max)
				}
			}
		}
	}
}

func TestComputeTargetsFullConfidenceIsMidpoint(t *testing.T) {
	for _, emotion := range mood.Emotions {
		profile, err := mood.ProfileFor(emotion)
		if err != nil {
			t.Fatalf("ProfileFor(%s): %v", emotion, err)
		}

		rng := rand.New(rand.NewSource(1))
		targets := ComputeTargets(profile, 1.0, rng)

		if targets.Energy != profile.Energy.Midpoint() {
			t.Errorf("%s: energy = %.3f, want midpoint %.3f", emotion, targets.Energy, profile.Energy.Midpoint())
		}
		if targets.Valence != profile.Valence.Midpoint() {
			t.Errorf("%s: valence = %.3f, want midpoint %.3f", emotion, targets.Valence, profile.Valence.Midpoint())
		}
		if targets.Danceability != profile.Danceability.Midpoint() {
			t.Errorf("%s: danceability = %.3f, want midpoint %.3f", emotion, targets.Danceability, profile.Danceability.Midpoint())
		}
		if targets.Tempo != profile.Tempo.Midpoint() {
			t.Errorf("%s: tempo = %.1f, want midpoint %.1f", emotion, targets.Tempo, profile.Tempo.Midpoint())
		}
	}
}

func TestComputeTargetsLowConfidenceUsesStrictnessFloor(t *testing.T) {
	profile, err := mood.ProfileFor(mood.Happy)
	if err != nil {
		t.Fatalf("ProfileFor: %v", err)
	}

	// With the 0.3 floor the jitter is bounded by width * 0.7 / 2 around
	// the midpoint; confidence 0 and confidence 0.3 must behave the same.
	maxJitter := profile.Energy.Width() * 0.7 * 0.5
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		targets := ComputeTargets(profile, 0, rng)
		delta := targets.Energy - profile.Energy.Midpoint()
		if delta < -maxJitter || delta > maxJitter {
			t.Fatalf("energy jitter %.3f exceeds floor-bounded variance %.3f", delta, maxJitter)
		}
	}
}
