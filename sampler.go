package main

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"golang.org/x/sync/errgroup"
)

// drawCeiling bounds the uniform draw: r is taken from [0, drawCeiling).
const drawCeiling = 0.9999

// LeftoverPolicy decides what happens to probability mass that the four
// buckets do not cover.
type LeftoverPolicy int

const (
	// LeftoverDrop discards a shot whose draw exceeds the cumulative mass.
	LeftoverDrop LeftoverPolicy = iota
	// LeftoverRenormalize rescales the distribution to sum to 1 first.
	LeftoverRenormalize
)

func (p LeftoverPolicy) String() string {
	switch p {
	case LeftoverDrop:
		return "drop"
	case LeftoverRenormalize:
		return "renormalize"
	default:
		return fmt.Sprintf("LeftoverPolicy(%d)", int(p))
	}
}

// ParseLeftoverPolicy maps a configuration string to a LeftoverPolicy.
func ParseLeftoverPolicy(s string) (LeftoverPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "drop":
		return LeftoverDrop, nil
	case "renormalize":
		return LeftoverRenormalize, nil
	}
	return 0, fmt.Errorf("unknown leftover policy %q (want drop or renormalize)", s)
}

// Sampler draws measurement outcomes from a probability distribution.
type Sampler struct {
	Shots    int
	Seed     uint64
	Workers  int
	Leftover LeftoverPolicy
}

// Sample runs s.Shots independent trials against p and returns the counts.
// Buckets are always visited in canonical order, so the counts depend only
// on p, Seed and Workers.
func (s *Sampler) Sample(p ProbabilityDistribution) (OutcomeCounts, error) {
	var counts OutcomeCounts
	if s.Shots <= 0 {
		return counts, fmt.Errorf("sample: shots must be positive, got %d", s.Shots)
	}

	if s.Leftover == LeftoverRenormalize {
		total := p.Sum()
		if !(total > 0) {
			return counts, &DomainError{Op: "renormalize distribution", Err: ErrDegenerateState}
		}
		for i := range p {
			p[i] /= total
		}
	}

	workers := max(s.Workers, 1)
	workers = min(workers, s.Shots)
	if workers == 1 {
		return sampleShots(p, s.Shots, newShotSource(s.Seed, 0)), nil
	}

	partials := make([]OutcomeCounts, workers)
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		quota := s.Shots / workers
		if w < s.Shots%workers {
			quota++
		}
		g.Go(func() error {
			partials[w] = sampleShots(p, quota, newShotSource(s.Seed, uint64(w)))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return counts, err
	}
	for _, part := range partials {
		counts.Add(part)
	}
	return counts, nil
}

// newShotSource returns the random stream owned by one worker.
func newShotSource(seed, stream uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, stream))
}

func sampleShots(p ProbabilityDistribution, shots int, rng *rand.Rand) OutcomeCounts {
	var counts OutcomeCounts
	for range shots {
		if b, ok := drawBucket(p, rng.Float64()*drawCeiling); ok {
			counts[b]++
		}
	}
	return counts
}

// drawBucket returns the first bucket whose cumulative probability exceeds r.
// The second result is false when the buckets run out first and the shot
// is dropped.
func drawBucket(p ProbabilityDistribution, r float64) (Bucket, bool) {
	var sum float64
	for _, b := range Buckets {
		sum += p[b]
		if r < sum {
			return b, true
		}
	}
	return 0, false
}
