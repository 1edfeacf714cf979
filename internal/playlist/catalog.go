// Package playlist implements mood-driven playlist generation: deriving
// audio-feature targets from a mood profile, scoring candidate tracks
// against them, and orchestrating the external catalog calls that turn a
// classified mood into a playlist.
package playlist

import (
	"context"
	"errors"

	"github.com/DathaCode/moody-backend/internal/mood"
)

// ErrNoCandidates is returned when the recommendation pool is empty.
// Generation stops before any playlist is created.
var ErrNoCandidates = errors.New("no candidate tracks")

// Handle identifies a playlist created on the external catalog.
type Handle struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ExternalURL string `json:"externalUrl"`
}

// Catalog is the external music catalog the generator talks to.
// Implementations wrap the third-party API; tests supply fakes.
type Catalog interface {
	// AvailableGenres returns the catalog's current genre seed taxonomy.
	// Degrades to an empty list on failure rather than erroring.
	AvailableGenres(ctx context.Context) ([]string, error)

	// Recommendations fetches up to limit candidate tracks seeded by
	// genres (at most five) and steered toward the target features.
	Recommendations(ctx context.Context, genres []string, targets Targets, limit int) ([]mood.Track, error)

	// AudioFeatures returns one entry per input ID, positionally aligned.
	// Entries are nil when the catalog has no feature data for a track.
	AudioFeatures(ctx context.Context, ids []string) ([]*mood.AudioFeatures, error)

	// CreatePlaylist creates an empty playlist on the user's account.
	CreatePlaylist(ctx context.Context, userID, name, description string, public bool) (Handle, error)

	// AddTracks appends tracks to a playlist by URI.
	AddTracks(ctx context.Context, playlistID string, uris []string) error

	// SearchTracks runs a free-text track search.
	SearchTracks(ctx context.Context, query string, limit int) ([]mood.Track, error)
}
