package main

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Progress receives the milestones of a simulation run.
type Progress interface {
	Calculating()
	GateApplied(token string, known bool)
	GatesDone()
	Sampling(shots int)
}

type nopProgress struct{}

func (nopProgress) Calculating()             {}
func (nopProgress) GateApplied(string, bool) {}
func (nopProgress) GatesDone()               {}
func (nopProgress) Sampling(int)             {}

// Result is everything one run produced.
type Result struct {
	RunID          uuid.UUID
	Input          string
	Tokens         []string
	Unknown        []string
	Vector         AmplitudeVector
	Normalized     bool
	Probabilities  ProbabilityDistribution
	Counts         OutcomeCounts
	Shots          int
	Seed           uint64
	NormalizeMode  NormalizeMode
	LeftoverPolicy LeftoverPolicy
	StartedAt      time.Time
	Duration       time.Duration
}

// Dropped returns how many shots were not credited to any bucket.
func (r *Result) Dropped() int {
	return r.Shots - r.Counts.Total()
}

// Simulator runs gate sequences. It holds no per-run state, so one value
// may serve several runs.
type Simulator struct {
	cfg SimConfig
	log zerolog.Logger
}

// NewSimulator creates a simulator with the given settings.
func NewSimulator(cfg SimConfig, log zerolog.Logger) *Simulator {
	return &Simulator{cfg: cfg, log: log}
}

// Run parses input, applies each gate in order to a fresh ground state, then
// normalizes, computes the bucket probabilities and samples them.
// Unknown gates are logged and skipped; domain errors abort the run.
func (s *Simulator) Run(input string, progress Progress) (*Result, error) {
	if progress == nil {
		progress = nopProgress{}
	}

	seed := s.cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	res := &Result{
		RunID:          uuid.New(),
		Input:          input,
		Shots:          s.cfg.Shots,
		Seed:           seed,
		NormalizeMode:  s.cfg.NormalizeMode,
		LeftoverPolicy: s.cfg.LeftoverPolicy,
		StartedAt:      time.Now(),
	}
	log := s.log.With().Str("run_id", res.RunID.String()).Logger()

	progress.Calculating()
	vec := NewAmplitudeVector()
	res.Tokens = ParseGateSequence(input)
	for _, tok := range res.Tokens {
		known := true
		if err := vec.ApplyGate(tok); err != nil {
			var unknown *UnknownGateError
			if !errors.As(err, &unknown) {
				return nil, err
			}
			known = false
			res.Unknown = append(res.Unknown, tok)
			log.Warn().Str("gate", tok).Msg("unknown gate")
		}
		progress.GateApplied(tok, known)
	}
	progress.GatesDone()
	progress.Sampling(s.cfg.Shots)

	normalized, err := vec.Normalize(s.cfg.NormalizeMode)
	if err != nil {
		return nil, fmt.Errorf("normalize state vector: %w", err)
	}
	if normalized {
		log.Debug().Msg("state vector rescaled to unit norm")
	}
	res.Vector = vec
	res.Normalized = normalized
	res.Probabilities = vec.Probabilities()

	sampler := &Sampler{
		Shots:    s.cfg.Shots,
		Seed:     seed,
		Workers:  s.cfg.Workers,
		Leftover: s.cfg.LeftoverPolicy,
	}
	counts, err := sampler.Sample(res.Probabilities)
	if err != nil {
		return nil, fmt.Errorf("sample outcomes: %w", err)
	}
	res.Counts = counts
	res.Duration = time.Since(res.StartedAt)

	log.Debug().
		Int("gates", len(res.Tokens)).
		Int("unknown", len(res.Unknown)).
		Int("shots", res.Shots).
		Int("dropped", res.Dropped()).
		Uint64("seed", seed).
		Dur("took", res.Duration).
		Msg("simulation finished")

	return res, nil
}
