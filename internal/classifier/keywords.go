package classifier

import (
	"context"
	"strings"

	"github.com/DathaCode/moody-backend/internal/mood"
)

const (
	// fallbackFloor is the minimum confidence reported when at least one
	// keyword matched.
	fallbackFloor = 0.35

	// neutralConfidence is reported when nothing matched at all.
	neutralConfidence = 0.3
)

// lexicon maps each emotion to the words the fallback scans for. It
// extends the profile keywords with common phrasings people actually use.
var lexicon = map[mood.Emotion][]string{
	mood.Happy: {
		"happy", "joy", "joyful", "great", "amazing", "wonderful", "excited",
		"cheerful", "glad", "fantastic", "smiling", "delighted",
	},
	mood.Sad: {
		"sad", "down", "depressed", "unhappy", "crying", "heartbroken",
		"lonely", "miserable", "grief", "blue", "hurt",
	},
	mood.Energetic: {
		"energetic", "pumped", "hyped", "workout", "running", "motivated",
		"unstoppable", "fired up", "adrenaline", "energized",
	},
	mood.Calm: {
		"calm", "relaxed", "peaceful", "chill", "serene", "mellow",
		"tranquil", "quiet", "cozy", "content",
	},
	mood.Anxious: {
		"anxious", "nervous", "worried", "stressed", "overwhelmed",
		"restless", "uneasy", "tense", "panicking", "on edge",
	},
	mood.Nostalgic: {
		"nostalgic", "memories", "remember", "miss", "old times",
		"throwback", "childhood", "back then", "reminiscing", "used to",
	},
}

// KeywordAnalyzer classifies text by counting lexicon hits per emotion.
// It never errors; zero hits yield a neutral calm classification.
type KeywordAnalyzer struct{}

// NewKeywordAnalyzer creates a keyword-based mood analyzer.
func NewKeywordAnalyzer() *KeywordAnalyzer {
	return &KeywordAnalyzer{}
}

// Analyze scores each emotion by the number of lexicon words found in
// the lowercased input, normalizing hit counts into a distribution. The
// primary emotion is the highest scorer; ties resolve in the stable
// emotion order. Confidence is the primary's share of all hits, floored
// at fallbackFloor.
func (a *KeywordAnalyzer) Analyze(_ context.Context, text string) (mood.Analysis, error) {
	lowered := strings.ToLower(text)

	hits := make(map[mood.Emotion]int, len(mood.Emotions))
	total := 0
	for _, e := range mood.Emotions {
		for _, word := range lexicon[e] {
			if strings.Contains(lowered, word) {
				hits[e]++
				total++
			}
		}
	}

	emotions := make(map[mood.Emotion]float64, len(mood.Emotions))
	if total == 0 {
		for _, e := range mood.Emotions {
			emotions[e] = 0
		}
		emotions[mood.Calm] = 1
		return mood.Analysis{
			PrimaryEmotion: mood.Calm,
			Emotions:       emotions,
			Confidence:     neutralConfidence,
			RawText:        text,
		}, nil
	}

	primary := mood.Emotions[0]
	for _, e := range mood.Emotions {
		emotions[e] = float64(hits[e]) / float64(total)
		if hits[e] > hits[primary] {
			primary = e
		}
	}

	confidence := emotions[primary]
	if confidence < fallbackFloor {
		confidence = fallbackFloor
	}

	return mood.Analysis{
		PrimaryEmotion: primary,
		Emotions:       emotions,
		Confidence:     confidence,
		RawText:        text,
	}, nil
}
