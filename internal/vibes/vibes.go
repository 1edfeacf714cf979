// Package vibes groups a candidate track pool into named vibe clusters
// by audio-feature similarity. It backs the read-only mood preview so
// callers can see what kind of tracks a mood maps to before generating
// a playlist.
package vibes

import (
	"sort"

	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"

	"github.com/DathaCode/moody-backend/internal/mood"
)

// Config holds vibe grouping parameters.
type Config struct {
	NumClusters    int // number of clusters to create (default 3)
	MinClusterSize int // smaller clusters become outliers
}

// DefaultConfig returns the recommended defaults.
func DefaultConfig() Config {
	return Config{
		NumClusters:    3,
		MinClusterSize: 2,
	}
}

// Vibe is a cluster of tracks that share a feel.
type Vibe struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Tracks      []mood.Track       `json:"tracks"`
	Centroid    map[string]float64 `json:"centroid"`
}

// featureNames defines the coordinate order used for clustering. Tempo
// is normalized into [0,1] so it doesn't dominate the distance metric.
var featureNames = []string{"energy", "valence", "danceability", "tempo"}

// tempoScale maps BPM into roughly [0,1] for clustering.
const tempoScale = 200.0

// trackObservation wraps a track to satisfy clusters.Observation.
type trackObservation struct {
	track  *mood.Track
	coords clusters.Coordinates
}

func (o trackObservation) Coordinates() clusters.Coordinates {
	return o.coords
}

func (o trackObservation) Distance(point clusters.Coordinates) float64 {
	return o.coords.Distance(point)
}

// Group clusters tracks by audio-feature similarity. Tracks missing any
// of the four features are returned as outliers, never invented.
func Group(tracks []mood.Track, cfg Config) ([]Vibe, []mood.Track) {
	if len(tracks) == 0 {
		return nil, nil
	}

	if cfg.NumClusters <= 0 {
		cfg.NumClusters = DefaultConfig().NumClusters
	}

	var valid []*mood.Track
	var outliers []mood.Track
	for i := range tracks {
		t := &tracks[i]
		if hasAllFeatures(t.Features) {
			valid = append(valid, t)
		} else {
			outliers = append(outliers, *t)
		}
	}

	if len(valid) < cfg.NumClusters {
		for _, t := range valid {
			outliers = append(outliers, *t)
		}
		return nil, outliers
	}

	var obs clusters.Observations
	for _, t := range valid {
		obs = append(obs, trackObservation{track: t, coords: coordinates(t.Features)})
	}

	km := kmeans.New()
	result, err := km.Partition(obs, cfg.NumClusters)
	if err != nil {
		for _, t := range valid {
			outliers = append(outliers, *t)
		}
		return nil, outliers
	}

	var groups []Vibe
	for _, cluster := range result {
		var clusterTracks []mood.Track
		for _, o := range cluster.Observations {
			if to, ok := o.(trackObservation); ok {
				clusterTracks = append(clusterTracks, *to.track)
			}
		}

		if len(clusterTracks) < cfg.MinClusterSize {
			outliers = append(outliers, clusterTracks...)
			continue
		}

		centroid := make(map[string]float64, len(featureNames))
		for i, name := range featureNames {
			centroid[name] = cluster.Center[i]
		}
		centroid["tempo"] *= tempoScale

		groups = append(groups, Vibe{
			Name:        vibeName(centroid),
			Description: vibeDescription(centroid),
			Tracks:      clusterTracks,
			Centroid:    centroid,
		})
	}

	// Largest vibes first keeps the preview readable.
	sort.SliceStable(groups, func(i, j int) bool {
		return len(groups[i].Tracks) > len(groups[j].Tracks)
	})

	return groups, outliers
}

func hasAllFeatures(f *mood.AudioFeatures) bool {
	return f != nil &&
		f.Energy != nil &&
		f.Valence != nil &&
		f.Danceability != nil &&
		f.Tempo != nil
}

func coordinates(f *mood.AudioFeatures) clusters.Coordinates {
	return clusters.Coordinates{
		*f.Energy,
		*f.Valence,
		*f.Danceability,
		*f.Tempo / tempoScale,
	}
}
