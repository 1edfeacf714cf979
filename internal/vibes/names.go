package vibes

// vibeName names a cluster from its energy/valence quadrant, with a
// tempo modifier for notably fast clusters.
//
// Quadrants:
//   - High Energy + High Valence = "Upbeat"
//   - High Energy + Low Valence  = "Intense"
//   - Low Energy  + High Valence = "Breezy"
//   - Low Energy  + Low Valence  = "Brooding"
func vibeName(centroid map[string]float64) string {
	energy := centroid["energy"]
	valence := centroid["valence"]
	tempo := centroid["tempo"]

	highEnergy := energy > 0.6
	highValence := valence > 0.5

	var base string
	switch {
	case highEnergy && highValence:
		base = "Upbeat"
	case highEnergy && !highValence:
		base = "Intense"
	case !highEnergy && highValence:
		base = "Breezy"
	default:
		base = "Brooding"
	}

	if tempo > 140 {
		return base + " (Fast)"
	}
	return base
}

// vibeDescription summarizes the feel of a cluster centroid.
func vibeDescription(centroid map[string]float64) string {
	energy := centroid["energy"]
	valence := centroid["valence"]

	switch {
	case energy > 0.6 && valence > 0.5:
		return "High-energy, positive tracks"
	case energy > 0.6 && valence <= 0.5:
		return "Driving energy with darker tones"
	case energy <= 0.6 && valence > 0.5:
		return "Relaxed, uplifting tracks"
	default:
		return "Slow, introspective tracks"
	}
}
