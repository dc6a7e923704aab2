package main

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// normTolerance is how far the squared norm may drift from 1 before the
// vector is rescaled.
const normTolerance = 1e-5

// AmplitudeVector holds the real-valued amplitudes of the two-qubit model.
// Pair (2k, 2k+1) feeds measurement bucket k.
type AmplitudeVector [8]float64

// NewAmplitudeVector returns the ground state: amplitude 1 at index 0.
func NewAmplitudeVector() AmplitudeVector {
	return AmplitudeVector{1}
}

// ApplyGate mutates the vector in place according to the gate table.
// An unknown token leaves the vector untouched and returns *UnknownGateError.
func (v *AmplitudeVector) ApplyGate(token string) error {
	switch token {
	case "x0":
		v.swap(0, 1)
	case "x1":
		v.swap(1, 3)
	case "y0":
		v[0] = -v[0]
	case "y1":
		v[1] = -v[1]
	case "z0":
		v[2] = -v[2]
	case "z1":
		v[1] = -v[1]
	case "h0":
		v.applyHadamard(0)
	case "h1":
		// Literal formula: base index 1, partner at base+2.
		v.applyHadamard(1)
	case "cx":
		v.swap(1, 3)
	case "sw":
		v.swap(1, 2)
	default:
		return &UnknownGateError{Token: token}
	}
	return nil
}

func (v *AmplitudeVector) swap(i, j int) {
	v[i], v[j] = v[j], v[i]
}

// applyHadamard mixes amplitudes idx and idx+2.
func (v *AmplitudeVector) applyHadamard(idx int) {
	a := (v[idx] + v[idx+2]) / math.Sqrt2
	b := (v[idx] - v[idx+2]) / math.Sqrt2
	v[idx] = a
	v[idx+2] = b
}

// SquaredNorm returns the sum of squares of all amplitudes.
func (v *AmplitudeVector) SquaredNorm() float64 {
	return floats.Dot(v[:], v[:])
}

// NormalizeMode selects how Normalize treats a vector whose norm drifted.
type NormalizeMode int

const (
	// NormalizeRescale divides every amplitude by the L2 norm.
	NormalizeRescale NormalizeMode = iota
	// NormalizeLegacy detects drift but leaves the vector unchanged, so
	// normalization has no observable effect on the probabilities.
	NormalizeLegacy
)

func (m NormalizeMode) String() string {
	switch m {
	case NormalizeRescale:
		return "rescale"
	case NormalizeLegacy:
		return "legacy"
	default:
		return fmt.Sprintf("NormalizeMode(%d)", int(m))
	}
}

// ParseNormalizeMode maps a configuration string to a NormalizeMode.
func ParseNormalizeMode(s string) (NormalizeMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "rescale":
		return NormalizeRescale, nil
	case "legacy":
		return NormalizeLegacy, nil
	}
	return 0, fmt.Errorf("unknown normalize mode %q (want rescale or legacy)", s)
}

// Normalize rescales the vector to unit norm when it drifted more than
// normTolerance. It reports whether the vector was modified.
// A zero or non-finite norm fails with ErrDegenerateState in every mode.
func (v *AmplitudeVector) Normalize(mode NormalizeMode) (bool, error) {
	sq := v.SquaredNorm()
	if sq == 0 || math.IsNaN(sq) || math.IsInf(sq, 0) {
		return false, &DomainError{Op: "normalize", Err: ErrDegenerateState}
	}
	if math.Abs(sq-1.0) <= normTolerance {
		return false, nil
	}
	if mode == NormalizeLegacy {
		return false, nil
	}
	floats.Scale(1/math.Sqrt(sq), v[:])
	return true, nil
}

// Probabilities sums the squared amplitude pairs into the four buckets.
// The result is not forced to sum to 1.
func (v AmplitudeVector) Probabilities() ProbabilityDistribution {
	var p ProbabilityDistribution
	for _, b := range Buckets {
		lo, hi := v[2*int(b)], v[2*int(b)+1]
		p[b] = lo*lo + hi*hi
	}
	return p
}

// Bucket identifies one of the four measurement outcomes.
type Bucket int

const (
	Bucket0 Bucket = iota
	Bucket1
	Bucket2
	Bucket3
)

// Buckets is the canonical enumeration order used for sampling.
var Buckets = [4]Bucket{Bucket0, Bucket1, Bucket2, Bucket3}

// displayOrder is the order results are printed in. Buckets 1 and 2 are
// swapped relative to binary order, matching the labels below.
var displayOrder = [4]Bucket{Bucket0, Bucket2, Bucket1, Bucket3}

// Label returns the basis-state label printed for the bucket.
func (b Bucket) Label() string {
	switch b {
	case Bucket0:
		return "00"
	case Bucket1:
		return "10"
	case Bucket2:
		return "01"
	case Bucket3:
		return "11"
	default:
		return "??"
	}
}

// ProbabilityDistribution maps each bucket to its probability.
type ProbabilityDistribution [4]float64

// Sum returns the total probability mass.
func (p ProbabilityDistribution) Sum() float64 {
	return floats.Sum(p[:])
}

// OutcomeCounts maps each bucket to the number of shots that landed in it.
type OutcomeCounts [4]int

// Total returns the number of shots that were credited to a bucket.
func (c OutcomeCounts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// Add merges other into c.
func (c *OutcomeCounts) Add(other OutcomeCounts) {
	for i := range c {
		c[i] += other[i]
	}
}
