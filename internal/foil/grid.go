package foil

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// BuildGrid lays count nuclei of the given radius over a width×height
// rectangle anchored at the origin. The rectangle is cut into a side×side
// lattice with side = ceil(sqrt(count)); nuclei sit at cell centers, filled
// column by column, and trailing cells stay empty when side² > count.
func BuildGrid(count int, width, height, radius float64) ([]Circle, error) {
	if count <= 0 {
		return nil, invalid("nucleus count %d must be positive", count)
	}
	if !positive(width) || !positive(height) {
		return nil, invalid("grid extent %g×%g must be positive and finite", width, height)
	}
	if !nonNegative(radius) {
		return nil, invalid("nucleus radius %g must be finite and non-negative", radius)
	}

	side := int(math.Ceil(math.Sqrt(float64(count))))
	distX := width / float64(side)
	distY := height / float64(side)
	offX, offY := distX/2, distY/2

	nuclei := make([]Circle, 0, count)
	for ix := 0; ix < side && len(nuclei) < count; ix++ {
		for iy := 0; iy < side && len(nuclei) < count; iy++ {
			nuclei = append(nuclei, Circle{
				center: r2.Vec{X: distX*float64(ix) + offX, Y: distY*float64(iy) + offY},
				radius: radius,
			})
		}
	}
	return nuclei, nil
}
