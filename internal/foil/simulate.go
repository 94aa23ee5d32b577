package foil

import (
	"geigermarsden/internal/util"
)

// Run fires p.NumParticles particles at the foil and estimates the nucleus
// radius from the deflection ratio. src supplies the uniform draws; two are
// consumed per particle, x first.
func Run(p Params, src util.Source, opts ...Option) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, err
	}
	if src == nil {
		return Result{}, invalid("random source must not be nil")
	}
	var o runOptions
	for _, opt := range opts {
		opt(&o)
	}
	seq := 0
	emit := func(typ string, payload map[string]any) {
		if o.observe == nil {
			return
		}
		o.observe(Event{Seq: seq, Type: typ, Payload: payload})
		seq++
	}

	side := p.Side()
	nuclei, err := BuildGrid(p.NumNuclei, side, side, p.NucleusRadius)
	if err != nil {
		return Result{}, err
	}
	emit(EventGridBuilt, map[string]any{"nuclei": len(nuclei), "side": side})

	res := Result{Emitted: p.NumParticles}
	for i := 0; i < p.NumParticles; i++ {
		particle := Circle{radius: p.ParticleRadius}
		particle.center.X = src.Float64() * side
		particle.center.Y = src.Float64() * side

		hits := 0
		for _, nucleus := range nuclei {
			if particle.Overlaps(nucleus) {
				hits++
			}
		}
		if hits == 0 {
			continue
		}
		res.Deflected++
		res.Collisions += hits
		emit(EventDeflected, map[string]any{
			"particle": i,
			"x":        particle.X(),
			"y":        particle.Y(),
			"hits":     hits,
		})
	}

	res.EstimatedRadius, err = EstimateRadius(res.Deflected, res.Emitted, p.FoilArea, p.NumNuclei)
	if err != nil {
		return Result{}, err
	}
	emit(EventFinished, map[string]any{
		"emitted":          res.Emitted,
		"deflected":        res.Deflected,
		"collisions":       res.Collisions,
		"estimated_radius": res.EstimatedRadius,
	})
	return res, nil
}
