package spotify

import (
	"context"
	"fmt"

	"github.com/zmb3/spotify/v2"

	"github.com/DathaCode/moody-backend/internal/mood"
)

// AudioFeatures retrieves audio features for the given track IDs.
// The result is positionally aligned with ids; entries are nil when the
// catalog has no feature data for a track. Requests are batched to the
// API's 100-track limit.
func (c *Client) AudioFeatures(ctx context.Context, ids []string) ([]*mood.AudioFeatures, error) {
	out := make([]*mood.AudioFeatures, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	indexByID := make(map[string]int, len(ids))
	spotifyIDs := make([]spotify.ID, len(ids))
	for i, id := range ids {
		spotifyIDs[i] = spotify.ID(id)
		indexByID[id] = i
	}

	for start := 0; start < len(spotifyIDs); start += maxTracksPerRequest {
		end := min(start+maxTracksPerRequest, len(spotifyIDs))
		batch := spotifyIDs[start:end]

		features, err := c.api.GetAudioFeatures(ctx, batch...)
		if err != nil {
			return nil, fmt.Errorf("fetching audio features (batch %d-%d): %w", start+1, end, err)
		}

		for _, f := range features {
			if f == nil {
				continue
			}
			if idx, ok := indexByID[f.ID.String()]; ok {
				out[idx] = fromAudioFeatures(f)
			}
		}
	}

	return out, nil
}
