package playlist

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/DathaCode/moody-backend/internal/mood"
)

func TestPlaylistNameUsesEmotionTemplateAndDate(t *testing.T) {
	now := time.Date(2024, time.March, 14, 12, 0, 0, 0, time.UTC)
	rng := rand.New(rand.NewSource(2))

	for i := 0; i < 20; i++ {
		name := PlaylistName(mood.Happy, now, rng)

		if !strings.HasSuffix(name, " - Mar 14, 2024") {
			t.Fatalf("name %q missing date suffix", name)
		}

		prefix := strings.TrimSuffix(name, " - Mar 14, 2024")
		found := false
		for _, tmpl := range nameTemplates[mood.Happy] {
			if prefix == tmpl {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("name prefix %q is not one of the happy templates", prefix)
		}
	}
}

func TestPlaylistNameUnknownEmotionFallsBackToGeneric(t *testing.T) {
	now := time.Date(2024, time.March, 14, 12, 0, 0, 0, time.UTC)
	rng := rand.New(rand.NewSource(2))

	name := PlaylistName(mood.Emotion("furious"), now, rng)
	if name != "Mood Mix - Mar 14, 2024" {
		t.Errorf("name = %q, want generic template with date", name)
	}
}

func TestPlaylistDescription(t *testing.T) {
	tests := []struct {
		name     string
		analysis mood.Analysis
		contains []string
	}{
		{
			name: "quotes text and includes confidence",
			analysis: mood.Analysis{
				PrimaryEmotion: mood.Happy,
				Confidence:     0.9,
				RawText:        "I feel amazing today!",
			},
			contains: []string{`"I feel amazing today!"`, "Mood match: 90%."},
		},
		{
			name: "rounds confidence",
			analysis: mood.Analysis{
				PrimaryEmotion: mood.Sad,
				Confidence:     0.666,
				RawText:        "rough week",
			},
			contains: []string{"Mood match: 67%."},
		},
		{
			name: "unknown emotion uses generic sentence",
			analysis: mood.Analysis{
				PrimaryEmotion: mood.Emotion("furious"),
				Confidence:     0.5,
				RawText:        "so angry",
			},
			contains: []string{"A playlist tuned to how you're feeling right now."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PlaylistDescription(tt.analysis)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("description %q missing %q", got, want)
				}
			}
		})
	}
}

func TestPlaylistDescriptionTruncatesLongText(t *testing.T) {
	long := strings.Repeat("a", 150)
	got := PlaylistDescription(mood.Analysis{
		PrimaryEmotion: mood.Calm,
		Confidence:     0.5,
		RawText:        long,
	})

	want := `"` + strings.Repeat("a", 100) + `..."`
	if !strings.Contains(got, want) {
		t.Errorf("description does not contain the 100-rune truncated quote with ellipsis")
	}
	if strings.Contains(got, strings.Repeat("a", 101)) {
		t.Errorf("description contains more than 100 quoted runes")
	}
}
