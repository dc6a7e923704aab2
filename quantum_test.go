package main

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-12

func TestNewAmplitudeVectorIsGroundState(t *testing.T) {
	v := NewAmplitudeVector()
	assert.Equal(t, AmplitudeVector{1, 0, 0, 0, 0, 0, 0, 0}, v)
	assert.Len(t, v, 8)
}

func TestApplyGateRuleTable(t *testing.T) {
	start := AmplitudeVector{1, 2, 3, 4, 5, 6, 7, 8}
	s2 := math.Sqrt2

	tests := []struct {
		token string
		want  AmplitudeVector
	}{
		{"x0", AmplitudeVector{2, 1, 3, 4, 5, 6, 7, 8}},
		{"x1", AmplitudeVector{1, 4, 3, 2, 5, 6, 7, 8}},
		{"y0", AmplitudeVector{-1, 2, 3, 4, 5, 6, 7, 8}},
		{"y1", AmplitudeVector{1, -2, 3, 4, 5, 6, 7, 8}},
		{"z0", AmplitudeVector{1, 2, -3, 4, 5, 6, 7, 8}},
		{"z1", AmplitudeVector{1, -2, 3, 4, 5, 6, 7, 8}},
		{"h0", AmplitudeVector{4 / s2, 2, -2 / s2, 4, 5, 6, 7, 8}},
		{"h1", AmplitudeVector{1, 6 / s2, 3, -2 / s2, 5, 6, 7, 8}},
		{"cx", AmplitudeVector{1, 4, 3, 2, 5, 6, 7, 8}},
		{"sw", AmplitudeVector{1, 3, 2, 4, 5, 6, 7, 8}},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			v := start
			require.NoError(t, v.ApplyGate(tt.token))
			assert.InDeltaSlice(t, tt.want[:], v[:], tol)
		})
	}
}

func TestApplyGateCoversGateTable(t *testing.T) {
	for _, g := range gateTable {
		v := NewAmplitudeVector()
		assert.NoError(t, v.ApplyGate(g.token), "gate %s", g.token)
	}
}

func TestApplyGateUnknownTokenLeavesVector(t *testing.T) {
	v := AmplitudeVector{1, 2, 3, 4, 5, 6, 7, 8}
	before := v

	err := v.ApplyGate("q9")
	require.Error(t, err)

	var unknown *UnknownGateError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "q9", unknown.Token)
	assert.Equal(t, "unknown gate 'q9'", err.Error())
	assert.Equal(t, before, v)
}

func TestApplyGateIsCaseSensitive(t *testing.T) {
	v := NewAmplitudeVector()
	assert.Error(t, v.ApplyGate("X0"))
	assert.Error(t, v.ApplyGate("H0"))
}

func TestApplyGateDeterministic(t *testing.T) {
	seq := []string{"h0", "x0", "sw", "h1", "z0", "cx", "y1"}
	run := func() AmplitudeVector {
		v := NewAmplitudeVector()
		for _, tok := range seq {
			require.NoError(t, v.ApplyGate(tok))
		}
		return v
	}
	assert.Equal(t, run(), run())
}

func TestHadamardSelfInverse(t *testing.T) {
	for _, tok := range []string{"h0", "h1"} {
		t.Run(tok, func(t *testing.T) {
			v := AmplitudeVector{0.3, -0.1, 0.7, 0.2, 0, 0, 0, 0}
			before := v
			require.NoError(t, v.ApplyGate(tok))
			require.NoError(t, v.ApplyGate(tok))
			assert.InDeltaSlice(t, before[:], v[:], tol)
		})
	}
}

func TestSwapSelfInverse(t *testing.T) {
	for _, tok := range []string{"x0", "x1", "cx", "sw"} {
		t.Run(tok, func(t *testing.T) {
			v := AmplitudeVector{1, 2, 3, 4, 5, 6, 7, 8}
			before := v
			require.NoError(t, v.ApplyGate(tok))
			require.NoError(t, v.ApplyGate(tok))
			assert.Equal(t, before, v)
		})
	}
}

// h1 keeps the literal base-1/offset-2 formula: only indices 1 and 3 move.
func TestH1TouchesOnlyIndicesOneAndThree(t *testing.T) {
	v := AmplitudeVector{1, 2, 3, 4, 5, 6, 7, 8}
	require.NoError(t, v.ApplyGate("h1"))
	for _, i := range []int{0, 2, 4, 5, 6, 7} {
		assert.Equal(t, float64(i+1), v[i], "index %d", i)
	}
}

func TestGatesNeverReachUpperBuckets(t *testing.T) {
	v := NewAmplitudeVector()
	for i := 0; i < 5; i++ {
		for _, g := range gateTable {
			require.NoError(t, v.ApplyGate(g.token))
		}
	}
	p := v.Probabilities()
	assert.Zero(t, p[Bucket2])
	assert.Zero(t, p[Bucket3])
}

func TestProbabilitiesGroundState(t *testing.T) {
	p := NewAmplitudeVector().Probabilities()
	assert.Equal(t, ProbabilityDistribution{1, 0, 0, 0}, p)
}

// After x0 the amplitude sits at index 1, which is the second slot of pair 0,
// so all mass stays in bucket 0.
func TestProbabilitiesAfterX0(t *testing.T) {
	v := NewAmplitudeVector()
	require.NoError(t, v.ApplyGate("x0"))
	assert.Equal(t, AmplitudeVector{0, 1, 0, 0, 0, 0, 0, 0}, v)
	assert.Equal(t, ProbabilityDistribution{1, 0, 0, 0}, v.Probabilities())
}

func TestProbabilitiesPairSums(t *testing.T) {
	v := AmplitudeVector{1, 2, 3, 4, 5, 6, 7, 8}
	assert.Equal(t, ProbabilityDistribution{5, 25, 61, 113}, v.Probabilities())
}

func TestNormalizeRescale(t *testing.T) {
	v := AmplitudeVector{3, 4}
	changed, err := v.Normalize(NormalizeRescale)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.InDeltaSlice(t, []float64{0.6, 0.8, 0, 0, 0, 0, 0, 0}, v[:], tol)
	assert.InDelta(t, 1.0, v.SquaredNorm(), tol)
	assert.InDelta(t, 1.0, v.Probabilities().Sum(), tol)
}

func TestNormalizeLegacyHasNoEffect(t *testing.T) {
	v := AmplitudeVector{3, 4}
	changed, err := v.Normalize(NormalizeLegacy)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, AmplitudeVector{3, 4}, v)
	assert.Equal(t, ProbabilityDistribution{25, 0, 0, 0}, v.Probabilities())
}

func TestNormalizeWithinTolerance(t *testing.T) {
	for _, mode := range []NormalizeMode{NormalizeRescale, NormalizeLegacy} {
		t.Run(mode.String(), func(t *testing.T) {
			v := AmplitudeVector{math.Sqrt(1 + 5e-6)}
			before := v
			changed, err := v.Normalize(mode)
			require.NoError(t, err)
			assert.False(t, changed)
			assert.Equal(t, before, v)
		})
	}
}

func TestNormalizeZeroVectorFailsFast(t *testing.T) {
	for _, mode := range []NormalizeMode{NormalizeRescale, NormalizeLegacy} {
		t.Run(mode.String(), func(t *testing.T) {
			var v AmplitudeVector
			_, err := v.Normalize(mode)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrDegenerateState)

			var domain *DomainError
			require.True(t, errors.As(err, &domain))
			assert.Equal(t, "normalize", domain.Op)
			assert.Equal(t, AmplitudeVector{}, v)
		})
	}
}

func TestNormalizeNaNFailsFast(t *testing.T) {
	v := AmplitudeVector{math.NaN()}
	_, err := v.Normalize(NormalizeRescale)
	assert.ErrorIs(t, err, ErrDegenerateState)
}

func TestParseNormalizeMode(t *testing.T) {
	tests := []struct {
		in      string
		want    NormalizeMode
		wantErr bool
	}{
		{"", NormalizeRescale, false},
		{"rescale", NormalizeRescale, false},
		{" Legacy ", NormalizeLegacy, false},
		{"fix", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseNormalizeMode(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestBucketLabelsAndDisplayOrder(t *testing.T) {
	labels := make([]string, 0, 4)
	for _, b := range displayOrder {
		labels = append(labels, b.Label())
	}
	assert.Equal(t, []string{"00", "01", "10", "11"}, labels)
	assert.Equal(t, "01", Bucket2.Label())
	assert.Equal(t, "10", Bucket1.Label())
}

func TestOutcomeCountsAddAndTotal(t *testing.T) {
	c := OutcomeCounts{1, 2, 3, 4}
	c.Add(OutcomeCounts{4, 3, 2, 1})
	assert.Equal(t, OutcomeCounts{5, 5, 5, 5}, c)
	assert.Equal(t, 20, c.Total())
}
