// Package spotify adapts the Spotify Web API to the playlist.Catalog
// interface the generation pipeline consumes.
package spotify

import (
	"context"
	"fmt"

	"github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

const maxTracksPerRequest = 100

// Client wraps the Spotify API client with the catalog operations the
// playlist pipeline needs. One Client is built per request from the
// session's OAuth token.
type Client struct {
	api *spotify.Client
	log *zap.Logger
}

// New creates a catalog client from an already-authenticated API client.
func New(api *spotify.Client, log *zap.Logger) *Client {
	return &Client{api: api, log: log}
}

// NewFromToken builds a catalog client for a user's OAuth token.
// Rate-limit retries are handled by the underlying client.
func NewFromToken(ctx context.Context, auth *spotifyauth.Authenticator, token *oauth2.Token, log *zap.Logger) *Client {
	api := spotify.New(auth.Client(ctx, token), spotify.WithRetry(true))
	return New(api, log)
}

// UserID returns the current user's Spotify ID.
func (c *Client) UserID(ctx context.Context) (string, error) {
	user, err := c.api.CurrentUser(ctx)
	if err != nil {
		return "", fmt.Errorf("getting current user: %w", err)
	}
	return user.ID, nil
}

// AvailableGenres returns the catalog's current genre seed taxonomy.
// Degrades to an empty list on failure so generation falls back to the
// default genre instead of aborting.
func (c *Client) AvailableGenres(ctx context.Context) ([]string, error) {
	genres, err := c.api.GetAvailableGenreSeeds(ctx)
	if err != nil {
		c.log.Warn("fetching genre seeds failed, continuing with empty taxonomy", zap.Error(err))
		return nil, nil
	}
	return genres, nil
}
