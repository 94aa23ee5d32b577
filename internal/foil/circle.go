package foil

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Circle is an immutable disc on the foil plane. It stands for either a
// nucleus or an emitted particle.
type Circle struct {
	center r2.Vec
	radius float64
}

// NewCircle validates that the center lies in the first quadrant and the
// radius is non-negative.
func NewCircle(x, y, radius float64) (Circle, error) {
	if !nonNegative(x) || !nonNegative(y) {
		return Circle{}, invalid("circle center (%g, %g) must be finite and non-negative", x, y)
	}
	if !nonNegative(radius) {
		return Circle{}, invalid("circle radius %g must be finite and non-negative", radius)
	}
	return Circle{center: r2.Vec{X: x, Y: y}, radius: radius}, nil
}

func (c Circle) X() float64      { return c.center.X }
func (c Circle) Y() float64      { return c.center.Y }
func (c Circle) Radius() float64 { return c.radius }
func (c Circle) Center() r2.Vec  { return c.center }

// Overlaps reports whether the two discs share interior area. Tangent
// circles do not overlap.
func (c Circle) Overlaps(o Circle) bool {
	return r2.Norm(r2.Sub(c.center, o.center)) < c.radius+o.radius
}

// Overlaps is the free-function form of Circle.Overlaps.
func Overlaps(a, b Circle) bool { return a.Overlaps(b) }

func nonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 1)
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
