package foil

import (
	"math"

	"geigermarsden/internal/config"
)

// Params configures a single run.
type Params struct {
	FoilArea       float64 `json:"foil_area"`
	NumNuclei      int     `json:"num_nuclei"`
	NumParticles   int     `json:"num_particles"`
	NucleusRadius  float64 `json:"nucleus_radius"`
	ParticleRadius float64 `json:"particle_radius"`
}

// DefaultParams mirrors config.Default.
func DefaultParams() Params {
	return ParamsFromConfig(config.Default())
}

func ParamsFromConfig(ec *config.ExperimentConfig) Params {
	return Params{
		FoilArea:       ec.FoilArea,
		NumNuclei:      ec.NumNuclei,
		NumParticles:   ec.NumParticles,
		NucleusRadius:  ec.NucleusRadius,
		ParticleRadius: ec.ParticleRadius,
	}
}

// Validate reports the first parameter outside its domain.
func (p Params) Validate() error {
	switch {
	case !positive(p.FoilArea):
		return invalid("foil area %g must be positive and finite", p.FoilArea)
	case p.NumNuclei <= 0:
		return invalid("nucleus count %d must be positive", p.NumNuclei)
	case p.NumParticles <= 0:
		return invalid("particle count %d must be positive", p.NumParticles)
	case !nonNegative(p.NucleusRadius):
		return invalid("nucleus radius %g must be finite and non-negative", p.NucleusRadius)
	case !nonNegative(p.ParticleRadius):
		return invalid("particle radius %g must be finite and non-negative", p.ParticleRadius)
	}
	return nil
}

// Side is the edge length of the square foil.
func (p Params) Side() float64 { return math.Sqrt(p.FoilArea) }

// Result is the tally of one run. Collisions counts every overlapping
// particle/nucleus pair, so a particle touching two nuclei adds two.
type Result struct {
	Emitted         int     `json:"emitted"`
	Deflected       int     `json:"deflected"`
	Collisions      int     `json:"collisions"`
	EstimatedRadius float64 `json:"estimated_radius"`
}

// Ratio is the observed deflection fraction.
func (r Result) Ratio() float64 {
	if r.Emitted == 0 {
		return 0
	}
	return float64(r.Deflected) / float64(r.Emitted)
}

// Event types emitted to an observer during Run.
const (
	EventGridBuilt = "grid_built"
	EventDeflected = "deflected"
	EventFinished  = "finished"
)

type Event struct {
	Seq     int            `json:"seq"`
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload,omitempty"`
}

type runOptions struct {
	observe func(Event)
}

// Option tunes Run and RunBatch.
type Option func(*runOptions)

// WithObserver receives every event of a run, in order.
func WithObserver(fn func(Event)) Option {
	return func(o *runOptions) { o.observe = fn }
}
