package foil_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geigermarsden/internal/foil"
)

func TestEstimateRadius_NoDeflections(t *testing.T) {
	r, err := foil.EstimateRadius(0, 500, 1.39, 119)
	require.NoError(t, err)
	assert.Equal(t, 0.0, r)
}

func TestEstimateRadius_AllDeflected(t *testing.T) {
	r, err := foil.EstimateRadius(266, 266, 1.39, 119)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(1.39/(119*math.Pi)), r, 1e-15)
}

func TestEstimateRadius_Inverts(t *testing.T) {
	// A single nucleus of radius 0.1 covers π/100 of a unit foil.
	r, err := foil.EstimateRadius(314159, 10000000, 1.0, 1)
	require.NoError(t, err)
	assert.InDelta(t, 0.1, r, 1e-6)
}

func TestEstimateRadius_ZeroEmitted(t *testing.T) {
	_, err := foil.EstimateRadius(0, 0, 1.0, 1)
	require.ErrorIs(t, err, foil.ErrZeroEmitted)
	require.ErrorIs(t, err, foil.ErrInvalidArgument)
}

func TestEstimateRadius_Errors(t *testing.T) {
	cases := []struct {
		name               string
		deflected, emitted int
		area               float64
		nuclei             int
	}{
		{"NegativeEmitted", 0, -1, 1, 1},
		{"NegativeDeflected", -1, 10, 1, 1},
		{"MoreDeflectedThanEmitted", 11, 10, 1, 1},
		{"ZeroNuclei", 1, 10, 1, 0},
		{"ZeroArea", 1, 10, 0, 1},
		{"NegativeArea", 1, 10, -2, 1},
		{"NaNArea", 1, 10, math.NaN(), 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := foil.EstimateRadius(tc.deflected, tc.emitted, tc.area, tc.nuclei)
			require.ErrorIs(t, err, foil.ErrInvalidArgument)
			assert.NotErrorIs(t, err, foil.ErrZeroEmitted)
		})
	}
}
