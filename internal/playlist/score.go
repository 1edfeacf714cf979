package playlist

import "github.com/DathaCode/moody-backend/internal/mood"

// Feature weights for similarity scoring. Energy and valence dominate
// because they carry most of a track's perceived mood.
const (
	weightEnergy       = 0.3
	weightValence      = 0.3
	weightDanceability = 0.2
	weightTempo        = 0.2
)

// Score computes the similarity between a track's audio features and the
// targets, in [0, 1]. Energy, valence and danceability live on a [0,1]
// scale and are scored by absolute distance; tempo is scored by relative
// error since BPM has no fixed scale. A missing feature is excluded from
// both the numerator and the weight sum. If every feature is missing the
// score is 0; such tracks sort last but are never dropped from the pool.
func Score(f *mood.AudioFeatures, t Targets) float64 {
	if f == nil {
		return 0
	}

	var sum, weight float64

	if f.Energy != nil {
		sum += weightEnergy * boundedScore(*f.Energy, t.Energy)
		weight += weightEnergy
	}
	if f.Valence != nil {
		sum += weightValence * boundedScore(*f.Valence, t.Valence)
		weight += weightValence
	}
	if f.Danceability != nil {
		sum += weightDanceability * boundedScore(*f.Danceability, t.Danceability)
		weight += weightDanceability
	}
	if f.Tempo != nil {
		sum += weightTempo * tempoScore(*f.Tempo, t.Tempo)
		weight += weightTempo
	}

	if weight == 0 {
		return 0
	}
	return sum / weight
}

// boundedScore scores a [0,1]-scale feature by absolute distance.
func boundedScore(actual, target float64) float64 {
	return max(0, 1-abs(actual-target))
}

// tempoScore scores tempo by relative error against the target BPM.
func tempoScore(actual, target float64) float64 {
	if target == 0 {
		return 0
	}
	return max(0, 1-abs(actual-target)/target)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
