package foil

import (
	"gonum.org/v1/gonum/stat"

	"geigermarsden/internal/util"
)

// seedStride separates the per-run seeds of a batch.
const seedStride = 7919

// BatchSummary aggregates repeated independent runs of one setup.
type BatchSummary struct {
	Runs      int      `json:"runs"`
	Emitted   int      `json:"emitted"`
	Deflected int      `json:"deflected"`
	Results   []Result `json:"results"`

	MeanRadius   float64 `json:"mean_radius"`
	StdDevRadius float64 `json:"stddev_radius"`
	MeanRatio    float64 `json:"mean_ratio"`
}

// RunBatch repeats Run sequentially, run i drawing from util.New(seed+i*seedStride).
// StdDevRadius is the sample standard deviation and is NaN for a single run.
func RunBatch(p Params, runs int, seed uint64, opts ...Option) (BatchSummary, error) {
	if runs <= 0 {
		return BatchSummary{}, invalid("run count %d must be positive", runs)
	}
	if err := p.Validate(); err != nil {
		return BatchSummary{}, err
	}

	sum := BatchSummary{Runs: runs, Results: make([]Result, 0, runs)}
	radii := make([]float64, 0, runs)
	ratios := make([]float64, 0, runs)
	for i := 0; i < runs; i++ {
		res, err := Run(p, util.New(seed+uint64(i)*seedStride), opts...)
		if err != nil {
			return BatchSummary{}, err
		}
		sum.Results = append(sum.Results, res)
		sum.Emitted += res.Emitted
		sum.Deflected += res.Deflected
		radii = append(radii, res.EstimatedRadius)
		ratios = append(ratios, res.Ratio())
	}
	sum.MeanRadius, sum.StdDevRadius = stat.MeanStdDev(radii, nil)
	sum.MeanRatio = stat.Mean(ratios, nil)
	return sum, nil
}
