// Package foil simulates the Geiger–Marsden gold-foil experiment as a 2D
// Monte Carlo overlap count.
//
// A square foil of side sqrt(area) carries a grid of equal circular nuclei.
// Particles of a fixed radius land uniformly at random on the foil; a
// particle is deflected when it overlaps at least one nucleus. The observed
// deflection ratio approximates the fraction of foil covered by nuclei, so
//
//	ratio ≈ n·π·r² / area  ⇒  r = sqrt(ratio · area / (n·π))
//
// Overlap is tested against the sum of nucleus and particle radii, so r is
// the effective radius of both combined. Nuclei are assumed not to overlap
// each other and a particle hitting two nuclei is counted once.
//
// Errors:
//
//   - ErrInvalidArgument: non-positive counts, non-positive area, negative radii.
//   - ErrZeroEmitted: estimator called with no emitted particles; wraps ErrInvalidArgument.
package foil
