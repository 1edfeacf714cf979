package vibes

import (
	"fmt"
	"testing"

	"github.com/DathaCode/moody-backend/internal/mood"
)

func ptr(v float64) *float64 { return &v }

func track(id string, energy, valence, danceability, tempo float64) mood.Track {
	return mood.Track{
		ID: id,
		Features: &mood.AudioFeatures{
			Energy:       ptr(energy),
			Valence:      ptr(valence),
			Danceability: ptr(danceability),
			Tempo:        ptr(tempo),
		},
	}
}

func TestVibeName(t *testing.T) {
	tests := []struct {
		name     string
		centroid map[string]float64
		want     string
	}{
		{
			name:     "high energy high valence",
			centroid: map[string]float64{"energy": 0.8, "valence": 0.7, "tempo": 120},
			want:     "Upbeat",
		},
		{
			name:     "high energy low valence",
			centroid: map[string]float64{"energy": 0.8, "valence": 0.3, "tempo": 120},
			want:     "Intense",
		},
		{
			name:     "low energy high valence",
			centroid: map[string]float64{"energy": 0.4, "valence": 0.7, "tempo": 100},
			want:     "Breezy",
		},
		{
			name:     "low energy low valence",
			centroid: map[string]float64{"energy": 0.3, "valence": 0.3, "tempo": 80},
			want:     "Brooding",
		},
		{
			name:     "fast tempo adds modifier",
			centroid: map[string]float64{"energy": 0.8, "valence": 0.7, "tempo": 170},
			want:     "Upbeat (Fast)",
		},
		{
			name:     "boundary energy exactly 0.6 is low",
			centroid: map[string]float64{"energy": 0.6, "valence": 0.7, "tempo": 100},
			want:     "Breezy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := vibeName(tt.centroid); got != tt.want {
				t.Errorf("vibeName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGroupSeparatesDistinctVibes(t *testing.T) {
	var tracks []mood.Track
	// Two tight, well-separated pools.
	for i := 0; i < 5; i++ {
		d := float64(i) * 0.01
		tracks = append(tracks, track(fmt.Sprintf("up-%d", i), 0.9-d, 0.9-d, 0.8-d, 130+float64(i)))
	}
	for i := 0; i < 5; i++ {
		d := float64(i) * 0.01
		tracks = append(tracks, track(fmt.Sprintf("down-%d", i), 0.1+d, 0.1+d, 0.2+d, 70+float64(i)))
	}

	groups, outliers := Group(tracks, Config{NumClusters: 2, MinClusterSize: 2})

	if len(groups) != 2 {
		t.Fatalf("len(groups) = %d, want 2", len(groups))
	}
	if len(outliers) != 0 {
		t.Errorf("len(outliers) = %d, want 0", len(outliers))
	}

	total := 0
	for _, g := range groups {
		total += len(g.Tracks)
		if g.Name == "" || g.Description == "" {
			t.Errorf("group missing name or description: %+v", g)
		}
	}
	if total != len(tracks) {
		t.Errorf("clustered %d tracks, want %d", total, len(tracks))
	}
}

func TestGroupMissingFeaturesBecomeOutliers(t *testing.T) {
	tracks := []mood.Track{
		track("a", 0.9, 0.9, 0.8, 130),
		track("b", 0.8, 0.8, 0.7, 125),
		track("c", 0.1, 0.2, 0.2, 70),
		{ID: "no-features"},
		{ID: "partial", Features: &mood.AudioFeatures{Energy: ptr(0.5)}},
	}

	_, outliers := Group(tracks, Config{NumClusters: 2, MinClusterSize: 1})

	ids := map[string]bool{}
	for _, o := range outliers {
		ids[o.ID] = true
	}
	if !ids["no-features"] || !ids["partial"] {
		t.Errorf("outliers = %v, want tracks with missing features", ids)
	}
}

func TestGroupTooFewTracksAllOutliers(t *testing.T) {
	tracks := []mood.Track{track("only", 0.5, 0.5, 0.5, 100)}

	groups, outliers := Group(tracks, Config{NumClusters: 3, MinClusterSize: 1})
	if groups != nil {
		t.Errorf("groups = %v, want nil", groups)
	}
	if len(outliers) != 1 {
		t.Errorf("len(outliers) = %d, want 1", len(outliers))
	}
}

func TestGroupEmptyInput(t *testing.T) {
	groups, outliers := Group(nil, DefaultConfig())
	if groups != nil || outliers != nil {
		t.Errorf("Group(nil) = %v, %v, want nil, nil", groups, outliers)
	}
}
