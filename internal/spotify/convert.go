package spotify

import (
	"strings"

	"github.com/zmb3/spotify/v2"

	"github.com/DathaCode/moody-backend/internal/mood"
)

// fromSimpleTrack converts a Spotify track to the domain representation.
// Audio features are attached later by a separate batched call.
func fromSimpleTrack(t spotify.SimpleTrack) mood.Track {
	return mood.Track{
		ID:         t.ID.String(),
		Name:       t.Name,
		Artist:     joinArtists(t.Artists),
		Album:      t.Album.Name,
		DurationMs: int(t.Duration),
		URI:        string(t.URI),
	}
}

func fromFullTrack(t spotify.FullTrack) mood.Track {
	track := fromSimpleTrack(t.SimpleTrack)
	track.Album = t.Album.Name
	return track
}

func joinArtists(artists []spotify.SimpleArtist) string {
	names := make([]string, len(artists))
	for i, a := range artists {
		names[i] = a.Name
	}
	return strings.Join(names, ", ")
}

// fromAudioFeatures extracts the four scored attributes. The wire type
// uses float32; the scorer works in float64.
func fromAudioFeatures(f *spotify.AudioFeatures) *mood.AudioFeatures {
	if f == nil {
		return nil
	}
	energy := float64(f.Energy)
	valence := float64(f.Valence)
	danceability := float64(f.Danceability)
	tempo := float64(f.Tempo)
	return &mood.AudioFeatures{
		Energy:       &energy,
		Valence:      &valence,
		Danceability: &danceability,
		Tempo:        &tempo,
	}
}
