package mood

// FeatureRange is an inclusive [Min, Max] interval for one audio feature.
type FeatureRange struct {
	Min float64
	Max float64
}

// Midpoint returns the center of the range.
func (r FeatureRange) Midpoint() float64 {
	return (r.Min + r.Max) / 2
}

// Width returns the span of the range.
func (r FeatureRange) Width() float64 {
	return r.Max - r.Min
}

// Contains reports whether v lies within the range, inclusive.
func (r FeatureRange) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Profile maps an emotion to musical search and target parameters.
// Genres are in preference order. Keywords drive the text-search fallback.
type Profile struct {
	Genres       []string
	Energy       FeatureRange
	Valence      FeatureRange
	Danceability FeatureRange
	Tempo        FeatureRange
	Keywords     []string
}

// DefaultGenre is the safe fallback seed when none of a profile's genres
// are available in the catalog's current taxonomy.
const DefaultGenre = "pop"

// profiles is the static mood profile table. Built once, never mutated.
var profiles = map[Emotion]Profile{
	Happy: {
		Genres:       []string{"pop", "dance", "happy", "disco", "funk"},
		Energy:       FeatureRange{0.6, 1.0},
		Valence:      FeatureRange{0.6, 1.0},
		Danceability: FeatureRange{0.5, 1.0},
		Tempo:        FeatureRange{100, 180},
		Keywords:     []string{"happy", "joy", "upbeat", "sunshine", "celebration"},
	},
	Sad: {
		Genres:       []string{"sad", "acoustic", "piano", "blues", "folk"},
		Energy:       FeatureRange{0.1, 0.4},
		Valence:      FeatureRange{0.1, 0.35},
		Danceability: FeatureRange{0.2, 0.5},
		Tempo:        FeatureRange{60, 100},
		Keywords:     []string{"sad", "heartbreak", "lonely", "melancholy", "tears"},
	},
	Energetic: {
		Genres:       []string{"edm", "work-out", "rock", "electro", "techno"},
		Energy:       FeatureRange{0.75, 1.0},
		Valence:      FeatureRange{0.5, 0.9},
		Danceability: FeatureRange{0.6, 1.0},
		Tempo:        FeatureRange{120, 190},
		Keywords:     []string{"energy", "workout", "hype", "power", "adrenaline"},
	},
	Calm: {
		Genres:       []string{"chill", "ambient", "classical", "sleep", "jazz"},
		Energy:       FeatureRange{0.1, 0.4},
		Valence:      FeatureRange{0.4, 0.7},
		Danceability: FeatureRange{0.2, 0.5},
		Tempo:        FeatureRange{60, 110},
		Keywords:     []string{"calm", "relax", "peaceful", "meditation", "serene"},
	},
	Anxious: {
		Genres:       []string{"ambient", "piano", "classical", "chill", "minimal-techno"},
		Energy:       FeatureRange{0.3, 0.6},
		Valence:      FeatureRange{0.2, 0.5},
		Danceability: FeatureRange{0.3, 0.6},
		Tempo:        FeatureRange{80, 130},
		Keywords:     []string{"anxious", "nervous", "stress", "worried", "tense"},
	},
	Nostalgic: {
		Genres:       []string{"rock-n-roll", "soul", "folk", "indie", "synth-pop"},
		Energy:       FeatureRange{0.3, 0.7},
		Valence:      FeatureRange{0.3, 0.7},
		Danceability: FeatureRange{0.3, 0.7},
		Tempo:        FeatureRange{80, 130},
		Keywords:     []string{"nostalgia", "memories", "throwback", "remember", "vintage"},
	},
}

// ProfileFor returns the profile for an emotion.
// Returns ErrUnknownMood if the emotion is not one of the six recognized
// categories; callers must abort playlist generation before any external call.
func ProfileFor(e Emotion) (Profile, error) {
	p, ok := profiles[e]
	if !ok {
		return Profile{}, ErrUnknownMood
	}
	return p, nil
}
