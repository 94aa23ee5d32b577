package foil

import "math"

// EstimateRadius inverts deflected/emitted ≈ nuclei·π·r²/foilArea for r.
func EstimateRadius(deflected, emitted int, foilArea float64, nuclei int) (float64, error) {
	if emitted == 0 {
		return 0, ErrZeroEmitted
	}
	switch {
	case emitted < 0:
		return 0, invalid("emitted count %d must be positive", emitted)
	case deflected < 0 || deflected > emitted:
		return 0, invalid("deflected count %d outside [0, %d]", deflected, emitted)
	case nuclei <= 0:
		return 0, invalid("nucleus count %d must be positive", nuclei)
	case !positive(foilArea):
		return 0, invalid("foil area %g must be positive and finite", foilArea)
	}
	ratio := float64(deflected) / float64(emitted)
	return math.Sqrt(ratio * (foilArea / (float64(nuclei) * math.Pi))), nil
}
