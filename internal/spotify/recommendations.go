package spotify

import (
	"context"
	"fmt"

	"github.com/zmb3/spotify/v2"

	"github.com/DathaCode/moody-backend/internal/mood"
	"github.com/DathaCode/moody-backend/internal/playlist"
)

// maxSeedGenres is the Spotify recommendation endpoint's seed limit.
const maxSeedGenres = 5

// Recommendations fetches candidate tracks seeded by genres and steered
// toward the target audio features.
func (c *Client) Recommendations(ctx context.Context, genres []string, targets playlist.Targets, limit int) ([]mood.Track, error) {
	if len(genres) > maxSeedGenres {
		genres = genres[:maxSeedGenres]
	}

	seeds := spotify.Seeds{Genres: genres}
	attrs := spotify.NewTrackAttributes().
		TargetEnergy(targets.Energy).
		TargetValence(targets.Valence).
		TargetDanceability(targets.Danceability).
		TargetTempo(targets.Tempo)

	recs, err := c.api.GetRecommendations(ctx, seeds, attrs, spotify.Limit(limit))
	if err != nil {
		return nil, fmt.Errorf("fetching recommendations: %w", err)
	}

	tracks := make([]mood.Track, len(recs.Tracks))
	for i, t := range recs.Tracks {
		tracks[i] = fromSimpleTrack(t)
	}
	return tracks, nil
}
