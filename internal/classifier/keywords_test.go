package classifier

import (
	"context"
	"testing"

	"github.com/DathaCode/moody-backend/internal/mood"
)

func TestKeywordAnalyzer(t *testing.T) {
	tests := []struct {
		name           string
		text           string
		wantPrimary    mood.Emotion
		wantConfidence float64 // exact when deterministic, else minimum
	}{
		{
			name:           "clear happy text",
			text:           "I feel amazing and so happy today, what a wonderful day",
			wantPrimary:    mood.Happy,
			wantConfidence: 1.0,
		},
		{
			name:           "sad text",
			text:           "feeling really down and lonely tonight",
			wantPrimary:    mood.Sad,
			wantConfidence: 1.0,
		},
		{
			name:           "anxious text",
			text:           "so stressed and worried about tomorrow",
			wantPrimary:    mood.Anxious,
			wantConfidence: 1.0,
		},
		{
			name:           "nostalgic text",
			text:           "listening to this brings back childhood memories",
			wantPrimary:    mood.Nostalgic,
			wantConfidence: 1.0,
		},
		{
			name:           "no matches defaults to neutral calm",
			text:           "xylophone quartz",
			wantPrimary:    mood.Calm,
			wantConfidence: neutralConfidence,
		},
	}

	a := NewKeywordAnalyzer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := a.Analyze(context.Background(), tt.text)
			if err != nil {
				t.Fatalf("Analyze: %v", err)
			}
			if got.PrimaryEmotion != tt.wantPrimary {
				t.Errorf("primary = %s, want %s", got.PrimaryEmotion, tt.wantPrimary)
			}
			if got.Confidence < tt.wantConfidence {
				t.Errorf("confidence = %.2f, want >= %.2f", got.Confidence, tt.wantConfidence)
			}
			if got.RawText != tt.text {
				t.Errorf("rawText = %q, want original input", got.RawText)
			}
			if len(got.Emotions) != len(mood.Emotions) {
				t.Errorf("emotions has %d entries, want %d", len(got.Emotions), len(mood.Emotions))
			}
		})
	}
}

func TestKeywordAnalyzerDistributionSumsToOne(t *testing.T) {
	a := NewKeywordAnalyzer()
	got, err := a.Analyze(context.Background(), "happy but also a bit nervous and worried")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	sum := 0.0
	for _, v := range got.Emotions {
		sum += v
	}
	if sum < 0.999 || sum > 1.001 {
		t.Errorf("distribution sums to %.4f, want ~1.0", sum)
	}

	if got.PrimaryEmotion != mood.Anxious {
		t.Errorf("primary = %s, want anxious (two hits beat one)", got.PrimaryEmotion)
	}
}

func TestKeywordAnalyzerConfidenceFloor(t *testing.T) {
	a := NewKeywordAnalyzer()

	// One hit across several emotions: the winning share is small but
	// confidence must not drop below the floor.
	got, err := a.Analyze(context.Background(), "happy sad calm anxious nostalgic pumped")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if got.Confidence < fallbackFloor {
		t.Errorf("confidence = %.2f, want >= %.2f", got.Confidence, fallbackFloor)
	}
}
