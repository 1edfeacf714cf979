package playlist

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/DathaCode/moody-backend/internal/mood"
)

const (
	// DefaultTrackCount is the number of tracks in a generated playlist.
	DefaultTrackCount = 15

	// poolMultiplier oversizes the recommendation request so the scorer
	// has a meaningful pool to rank.
	poolMultiplier = 2

	// maxSeedGenres caps how many profile genres seed the recommendation
	// request.
	maxSeedGenres = 3
)

// Playlist is the final output of a generation request.
type Playlist struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Tracks      []mood.Track `json:"tracks"`
	ExternalURL string       `json:"externalUrl"`
}

// Generator runs the mood-to-playlist pipeline against a catalog.
type Generator struct {
	catalog    Catalog
	rng        *rand.Rand
	log        *zap.Logger
	trackCount int
	public     bool
	now        func() time.Time
}

// Option configures a Generator.
type Option func(*Generator)

// WithTrackCount overrides the number of tracks per playlist.
func WithTrackCount(n int) Option {
	return func(g *Generator) { g.trackCount = n }
}

// WithClock overrides the time source used for playlist names.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// WithPublicPlaylists makes created playlists public.
func WithPublicPlaylists(public bool) Option {
	return func(g *Generator) { g.public = public }
}

// NewGenerator creates a Generator. rng is the random source for target
// jitter, shuffling and name selection; pass a seeded one in tests.
func NewGenerator(catalog Catalog, rng *rand.Rand, log *zap.Logger, opts ...Option) *Generator {
	g := &Generator{
		catalog:    catalog,
		rng:        rng,
		log:        log,
		trackCount: DefaultTrackCount,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate turns a mood analysis into a playlist on the user's account.
//
// The pipeline is strictly sequential: profile lookup, genre selection,
// target computation, candidate retrieval, feature attachment, scoring
// and selection, then playlist creation. An unknown primary emotion
// aborts before any external call. An empty candidate pool aborts after
// the read-only calls, before anything is created.
//
// Known gap: if adding tracks fails after the playlist was created, the
// empty playlist is left on the external service. No rollback is
// attempted; the failure is surfaced to the caller.
func (g *Generator) Generate(ctx context.Context, analysis mood.Analysis, userID string) (*Playlist, error) {
	profile, err := mood.ProfileFor(analysis.PrimaryEmotion)
	if err != nil {
		return nil, fmt.Errorf("looking up mood profile: %w", err)
	}

	genres, err := g.selectGenres(ctx, profile)
	if err != nil {
		return nil, err
	}

	targets := ComputeTargets(profile, analysis.Confidence, g.rng)

	g.log.Info("computed feature targets",
		zap.String("emotion", string(analysis.PrimaryEmotion)),
		zap.Strings("genres", genres),
		zap.Float64("energy", targets.Energy),
		zap.Float64("valence", targets.Valence),
		zap.Float64("danceability", targets.Danceability),
		zap.Float64("tempo", targets.Tempo),
	)

	candidates, err := g.catalog.Recommendations(ctx, genres, targets, g.trackCount*poolMultiplier)
	if err != nil {
		return nil, fmt.Errorf("fetching recommendations: %w", err)
	}
	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}

	if err := g.attachFeatures(ctx, candidates); err != nil {
		return nil, err
	}

	selected, err := SelectTracks(candidates, targets, g.trackCount, g.rng)
	if err != nil {
		return nil, err
	}

	name := PlaylistName(analysis.PrimaryEmotion, g.now(), g.rng)
	description := PlaylistDescription(analysis)

	handle, err := g.catalog.CreatePlaylist(ctx, userID, name, description, g.public)
	if err != nil {
		return nil, fmt.Errorf("creating playlist: %w", err)
	}

	uris := make([]string, len(selected))
	for i, t := range selected {
		uris[i] = t.URI
	}

	if err := g.catalog.AddTracks(ctx, handle.ID, uris); err != nil {
		g.log.Warn("playlist created but adding tracks failed; empty playlist left behind",
			zap.String("playlistID", handle.ID), zap.Error(err))
		return nil, fmt.Errorf("adding tracks to playlist %s: %w", handle.ID, err)
	}

	g.log.Info("playlist created",
		zap.String("playlistID", handle.ID),
		zap.String("name", handle.Name),
		zap.Int("tracks", len(selected)),
	)

	return &Playlist{
		ID:          handle.ID,
		Name:        handle.Name,
		Description: handle.Description,
		Tracks:      selected,
		ExternalURL: handle.ExternalURL,
	}, nil
}

// selectGenres intersects the profile's genres with the catalog's current
// taxonomy, preserving profile order and capping at maxSeedGenres. An
// empty intersection falls back to DefaultGenre so generation can proceed
// even when the catalog's taxonomy has drifted.
func (g *Generator) selectGenres(ctx context.Context, profile mood.Profile) ([]string, error) {
	available, err := g.catalog.AvailableGenres(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching available genres: %w", err)
	}

	availableSet := make(map[string]struct{}, len(available))
	for _, genre := range available {
		availableSet[genre] = struct{}{}
	}

	var genres []string
	for _, genre := range profile.Genres {
		if _, ok := availableSet[genre]; ok {
			genres = append(genres, genre)
			if len(genres) == maxSeedGenres {
				break
			}
		}
	}

	if len(genres) == 0 {
		g.log.Warn("no profile genres available in catalog, using default",
			zap.Strings("profileGenres", profile.Genres),
			zap.String("fallback", mood.DefaultGenre))
		genres = []string{mood.DefaultGenre}
	}

	return genres, nil
}

// attachFeatures fetches audio features for all candidates in one batched
// call and attaches them positionally. Missing entries stay nil; the
// scorer handles those.
func (g *Generator) attachFeatures(ctx context.Context, candidates []mood.Track) error {
	ids := make([]string, len(candidates))
	for i, c := range candidates {
		ids[i] = c.ID
	}

	features, err := g.catalog.AudioFeatures(ctx, ids)
	if err != nil {
		return fmt.Errorf("fetching audio features: %w", err)
	}

	for i := range candidates {
		if i < len(features) {
			candidates[i].Features = features[i]
		}
	}
	return nil
}
