package spotify

import (
	"context"
	"fmt"

	"github.com/zmb3/spotify/v2"

	"github.com/DathaCode/moody-backend/internal/mood"
)

// SearchTracks runs a free-text track search against the catalog.
func (c *Client) SearchTracks(ctx context.Context, query string, limit int) ([]mood.Track, error) {
	result, err := c.api.Search(ctx, query, spotify.SearchTypeTrack, spotify.Limit(limit))
	if err != nil {
		return nil, fmt.Errorf("searching tracks for %q: %w", query, err)
	}

	if result.Tracks == nil {
		return nil, nil
	}

	tracks := make([]mood.Track, len(result.Tracks.Tracks))
	for i, t := range result.Tracks.Tracks {
		tracks[i] = fromFullTrack(t)
	}
	return tracks, nil
}
