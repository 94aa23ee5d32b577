package config

// ExperimentConfig describes one foil setup. Lengths are in meters, areas in
// square meters.
type ExperimentConfig struct {
	Note           string  `yaml:"note"`
	FoilArea       float64 `yaml:"foil_area"`
	NumNuclei      int     `yaml:"num_nuclei"`
	NumParticles   int     `yaml:"num_particles"`
	NucleusRadius  float64 `yaml:"nucleus_radius"`
	ParticleRadius float64 `yaml:"particle_radius"`
	Seed           uint64  `yaml:"seed"`
	Runs           int     `yaml:"runs"`
}

// Default is the MIT classroom setup: styrofoam balls as nuclei, ping-pong
// balls as alpha particles.
func Default() *ExperimentConfig {
	return &ExperimentConfig{
		Note:           "MIT classroom experiment",
		FoilArea:       1.39,
		NumNuclei:      119,
		NumParticles:   266,
		NucleusRadius:  0.0125,
		ParticleRadius: 0.02,
		Runs:           1,
	}
}
