package playlist

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/DathaCode/moody-backend/internal/mood"
)

const maxQuoteLen = 100

// nameTemplates holds five playlist name candidates per emotion.
var nameTemplates = map[mood.Emotion][]string{
	mood.Happy: {
		"Sunshine Mix",
		"Good Vibes Only",
		"Pure Joy",
		"Smile Soundtrack",
		"Golden Hour",
	},
	mood.Sad: {
		"Rainy Day Companion",
		"Blue Notes",
		"Heavy Heart",
		"Quiet Tears",
		"After Midnight",
	},
	mood.Energetic: {
		"Full Throttle",
		"Power Surge",
		"Turn It Up",
		"Adrenaline Rush",
		"No Brakes",
	},
	mood.Calm: {
		"Still Waters",
		"Deep Breath",
		"Slow Morning",
		"Soft Focus",
		"Unwind",
	},
	mood.Anxious: {
		"Steady Ground",
		"Breathing Room",
		"Eye of the Storm",
		"Easing Off",
		"Safe Harbor",
	},
	mood.Nostalgic: {
		"Rewind",
		"Old Flames",
		"Faded Photographs",
		"Yesterday Once More",
		"Time Capsule",
	},
}

// moodSentences describes each emotion for playlist descriptions.
var moodSentences = map[mood.Emotion]string{
	mood.Happy:     "Bright, upbeat tracks to keep the good mood rolling.",
	mood.Sad:       "Gentle, melancholic songs for sitting with the feeling.",
	mood.Energetic: "High-octane tracks to match your energy.",
	mood.Calm:      "Soft, unhurried music to help you stay grounded.",
	mood.Anxious:   "Steady, soothing tracks to take the edge off.",
	mood.Nostalgic: "Songs that sound like old memories.",
}

const (
	genericTemplate = "Mood Mix"
	genericSentence = "A playlist tuned to how you're feeling right now."
)

// PlaylistName picks one of the emotion's five name templates at random
// and appends the current date. Unlike profile lookup, an unrecognized
// emotion falls back to generic text instead of erroring.
func PlaylistName(e mood.Emotion, now time.Time, rng *rand.Rand) string {
	templates, ok := nameTemplates[e]
	name := genericTemplate
	if ok {
		name = templates[rng.Intn(len(templates))]
	}
	return fmt.Sprintf("%s - %s", name, now.Format("Jan 2, 2006"))
}

// PlaylistDescription builds a description from the quoted input text,
// the emotion's descriptive sentence, and the rounded confidence.
func PlaylistDescription(a mood.Analysis) string {
	sentence, ok := moodSentences[a.PrimaryEmotion]
	if !ok {
		sentence = genericSentence
	}
	pct := int(math.Round(a.Confidence * 100))
	return fmt.Sprintf("%q | %s Mood match: %d%%.", truncate(a.RawText, maxQuoteLen), sentence, pct)
}

// truncate shortens s to at most n runes, appending an ellipsis when cut.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
