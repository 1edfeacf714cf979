package playlist

import (
	"context"
	"fmt"

	"github.com/DathaCode/moody-backend/internal/mood"
)

const (
	// maxSearchResults caps the keyword preview result set.
	maxSearchResults = 30

	// perQueryLimit bounds each individual text search.
	perQueryLimit = 10
)

// SearchByKeywords is the read-only preview path: instead of feature
// steered recommendations it runs text searches built from the mood
// profile's keywords and genres, deduplicated by track ID and capped at
// maxSearchResults. Returns ErrUnknownMood for an unrecognized emotion.
func (g *Generator) SearchByKeywords(ctx context.Context, analysis mood.Analysis) ([]mood.Track, error) {
	profile, err := mood.ProfileFor(analysis.PrimaryEmotion)
	if err != nil {
		return nil, fmt.Errorf("looking up mood profile: %w", err)
	}

	queries := make([]string, 0, len(profile.Keywords)+len(profile.Genres))
	queries = append(queries, profile.Keywords...)
	queries = append(queries, profile.Genres...)

	seen := make(map[string]struct{})
	var results []mood.Track

	for _, query := range queries {
		if len(results) >= maxSearchResults {
			break
		}

		tracks, err := g.catalog.SearchTracks(ctx, query, perQueryLimit)
		if err != nil {
			return nil, fmt.Errorf("searching tracks for %q: %w", query, err)
		}

		for _, t := range tracks {
			if _, ok := seen[t.ID]; ok {
				continue
			}
			seen[t.ID] = struct{}{}
			results = append(results, t)
			if len(results) >= maxSearchResults {
				break
			}
		}
	}

	return results, nil
}
