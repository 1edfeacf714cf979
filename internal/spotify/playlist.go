package spotify

import (
	"context"
	"fmt"

	"github.com/zmb3/spotify/v2"

	"github.com/DathaCode/moody-backend/internal/playlist"
)

// CreatePlaylist creates an empty playlist on the user's account.
func (c *Client) CreatePlaylist(ctx context.Context, userID, name, description string, public bool) (playlist.Handle, error) {
	created, err := c.api.CreatePlaylistForUser(ctx, userID, name, description, public, false)
	if err != nil {
		return playlist.Handle{}, fmt.Errorf("creating playlist: %w", err)
	}

	return playlist.Handle{
		ID:          created.ID.String(),
		Name:        created.Name,
		Description: created.Description,
		ExternalURL: created.ExternalURLs["spotify"],
	}, nil
}

// AddTracks appends tracks to a playlist, batching to the API's
// 100-track limit.
func (c *Client) AddTracks(ctx context.Context, playlistID string, uris []string) error {
	if len(uris) == 0 {
		return nil
	}

	ids := make([]spotify.ID, len(uris))
	for i, uri := range uris {
		ids[i] = idFromURI(uri)
	}

	for start := 0; start < len(ids); start += maxTracksPerRequest {
		end := min(start+maxTracksPerRequest, len(ids))
		batch := ids[start:end]

		if _, err := c.api.AddTracksToPlaylist(ctx, spotify.ID(playlistID), batch...); err != nil {
			return fmt.Errorf("adding tracks (batch %d-%d): %w", start+1, end, err)
		}
	}

	return nil
}

// idFromURI extracts the track ID from a spotify:track:<id> URI. Bare
// IDs pass through unchanged.
func idFromURI(uri string) spotify.ID {
	const prefix = "spotify:track:"
	if len(uri) > len(prefix) && uri[:len(prefix)] == prefix {
		return spotify.ID(uri[len(prefix):])
	}
	return spotify.ID(uri)
}
