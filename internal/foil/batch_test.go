package foil_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geigermarsden/internal/foil"
	"geigermarsden/internal/util"
)

func TestRunBatch_Aggregates(t *testing.T) {
	p := foil.DefaultParams()
	sum, err := foil.RunBatch(p, 5, 12345)
	require.NoError(t, err)
	require.Equal(t, 5, sum.Runs)
	require.Len(t, sum.Results, 5)

	emitted, deflected, radii := 0, 0, 0.0
	for _, r := range sum.Results {
		emitted += r.Emitted
		deflected += r.Deflected
		radii += r.EstimatedRadius
	}
	assert.Equal(t, 5*p.NumParticles, sum.Emitted)
	assert.Equal(t, emitted, sum.Emitted)
	assert.Equal(t, deflected, sum.Deflected)
	assert.InDelta(t, radii/5, sum.MeanRadius, 1e-12)
	assert.GreaterOrEqual(t, sum.StdDevRadius, 0.0)
}

func TestRunBatch_Reproducible(t *testing.T) {
	p := foil.DefaultParams()
	a, err := foil.RunBatch(p, 3, 99)
	require.NoError(t, err)
	b, err := foil.RunBatch(p, 3, 99)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRunBatch_FirstRunMatchesRun(t *testing.T) {
	p := foil.DefaultParams()
	sum, err := foil.RunBatch(p, 2, 42)
	require.NoError(t, err)
	single, err := foil.Run(p, util.New(42))
	require.NoError(t, err)
	assert.Equal(t, single, sum.Results[0])
}

func TestRunBatch_SingleRunStdDevUndefined(t *testing.T) {
	sum, err := foil.RunBatch(foil.DefaultParams(), 1, 3)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(sum.StdDevRadius))
	assert.Equal(t, sum.Results[0].EstimatedRadius, sum.MeanRadius)
}

func TestRunBatch_Errors(t *testing.T) {
	_, err := foil.RunBatch(foil.DefaultParams(), 0, 1)
	require.ErrorIs(t, err, foil.ErrInvalidArgument)

	p := foil.DefaultParams()
	p.NumParticles = 0
	_, err = foil.RunBatch(p, 3, 1)
	require.ErrorIs(t, err, foil.ErrInvalidArgument)
}
