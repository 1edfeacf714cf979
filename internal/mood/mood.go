// Package mood defines the emotion domain model: the closed set of
// recognized emotions, classifier output, and the static profile table
// mapping each emotion to musical search and target parameters.
package mood

import (
	"errors"
	"fmt"
)

// ErrUnknownMood is returned when an emotion is not one of the six
// recognized categories.
var ErrUnknownMood = errors.New("unknown mood")

// Emotion is one of the six fixed mood labels the service recognizes.
type Emotion string

const (
	Happy     Emotion = "happy"
	Sad       Emotion = "sad"
	Energetic Emotion = "energetic"
	Calm      Emotion = "calm"
	Anxious   Emotion = "anxious"
	Nostalgic Emotion = "nostalgic"
)

// Emotions lists every recognized emotion in a stable order.
var Emotions = []Emotion{Happy, Sad, Energetic, Calm, Anxious, Nostalgic}

// ParseEmotion validates a raw label against the recognized set.
// Returns ErrUnknownMood for anything else.
func ParseEmotion(s string) (Emotion, error) {
	for _, e := range Emotions {
		if Emotion(s) == e {
			return e, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMood, s)
}

// Analysis is the classifier's description of a text input's emotional
// content. Consumed read-only by the playlist pipeline.
type Analysis struct {
	PrimaryEmotion Emotion             `json:"primaryEmotion"`
	Emotions       map[Emotion]float64 `json:"emotions"`
	Confidence     float64             `json:"confidence"`
	RawText        string              `json:"rawText"`
}

// AudioFeatures holds the four audio attributes the scorer uses.
// A nil field means the catalog had no value for that attribute.
type AudioFeatures struct {
	Energy       *float64 `json:"energy,omitempty"`
	Valence      *float64 `json:"valence,omitempty"`
	Danceability *float64 `json:"danceability,omitempty"`
	Tempo        *float64 `json:"tempo,omitempty"`
}

// Track is a candidate track from the external catalog.
type Track struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Artist     string         `json:"artist"` // comma-separated artist names
	Album      string         `json:"album"`
	DurationMs int            `json:"durationMs"`
	URI        string         `json:"uri"`
	Features   *AudioFeatures `json:"features,omitempty"`
}
