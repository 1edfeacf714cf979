package playlist

import (
	"math/rand"
	"sort"

	"github.com/DathaCode/moody-backend/internal/mood"
)

// scoredTrack pairs a candidate with its similarity score during ranking.
type scoredTrack struct {
	track mood.Track
	score float64
}

// SelectTracks scores every candidate against the targets, keeps the top
// n by score, then shuffles the kept set. Ranking decides membership, not
// final order; a strictly score-sorted playlist reads as repetitive.
//
// The sort is stable so equal scores (common when feature data is sparse)
// keep insertion order. Returns ErrNoCandidates on an empty pool.
func SelectTracks(candidates []mood.Track, targets Targets, n int, rng *rand.Rand) ([]mood.Track, error) {
	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}

	scored := make([]scoredTrack, len(candidates))
	for i, c := range candidates {
		scored[i] = scoredTrack{track: c, score: Score(c.Features, targets)}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	if n > len(scored) {
		n = len(scored)
	}

	selected := make([]mood.Track, n)
	for i := 0; i < n; i++ {
		selected[i] = scored[i].track
	}

	rng.Shuffle(len(selected), func(i, j int) {
		selected[i], selected[j] = selected[j], selected[i]
	})

	return selected, nil
}
