package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// Report is the serialized form of a Result.
type Report struct {
	RunID          string             `json:"run_id" msgpack:"run_id"`
	Input          string             `json:"input" msgpack:"input"`
	Tokens         []string           `json:"tokens" msgpack:"tokens"`
	Unknown        []string           `json:"unknown,omitempty" msgpack:"unknown,omitempty"`
	Vector         []float64          `json:"vector" msgpack:"vector"`
	Normalized     bool               `json:"normalized" msgpack:"normalized"`
	Probabilities  map[string]float64 `json:"probabilities" msgpack:"probabilities"`
	Counts         map[string]int     `json:"counts" msgpack:"counts"`
	Shots          int                `json:"shots" msgpack:"shots"`
	Dropped        int                `json:"dropped" msgpack:"dropped"`
	Seed           uint64             `json:"seed" msgpack:"seed"`
	NormalizeMode  string             `json:"normalize_mode" msgpack:"normalize_mode"`
	LeftoverPolicy string             `json:"leftover_policy" msgpack:"leftover_policy"`
	StartedAt      time.Time          `json:"started_at" msgpack:"started_at"`
	DurationMicros int64              `json:"duration_us" msgpack:"duration_us"`
}

// NewReport converts a Result; per-bucket maps are keyed by display label.
func NewReport(res *Result) Report {
	rep := Report{
		RunID:          res.RunID.String(),
		Input:          res.Input,
		Tokens:         res.Tokens,
		Unknown:        res.Unknown,
		Vector:         append([]float64(nil), res.Vector[:]...),
		Normalized:     res.Normalized,
		Probabilities:  make(map[string]float64, len(Buckets)),
		Counts:         make(map[string]int, len(Buckets)),
		Shots:          res.Shots,
		Dropped:        res.Dropped(),
		Seed:           res.Seed,
		NormalizeMode:  res.NormalizeMode.String(),
		LeftoverPolicy: res.LeftoverPolicy.String(),
		StartedAt:      res.StartedAt.UTC(),
		DurationMicros: res.Duration.Microseconds(),
	}
	for _, b := range Buckets {
		rep.Probabilities[b.Label()] = res.Probabilities[b]
		rep.Counts[b.Label()] = res.Counts[b]
	}
	return rep
}

// isMsgpackPath reports whether path asks for MessagePack encoding.
func isMsgpackPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".msgpack", ".mp":
		return true
	}
	return false
}

// WriteReport writes res to path, as MessagePack for .msgpack/.mp files and
// indented JSON otherwise.
func WriteReport(path string, res *Result) error {
	rep := NewReport(res)

	var (
		data []byte
		err  error
	)
	if isMsgpackPath(path) {
		data, err = msgpack.Marshal(&rep)
	} else {
		data, err = json.MarshalIndent(&rep, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write report %s: %w", path, err)
	}
	return nil
}

// ReadReport loads a report written by WriteReport.
func ReadReport(path string) (Report, error) {
	var rep Report
	data, err := os.ReadFile(path)
	if err != nil {
		return rep, fmt.Errorf("failed to read report %s: %w", path, err)
	}
	if isMsgpackPath(path) {
		err = msgpack.Unmarshal(data, &rep)
	} else {
		err = json.Unmarshal(data, &rep)
	}
	if err != nil {
		return rep, fmt.Errorf("failed to decode report %s: %w", path, err)
	}
	return rep, nil
}
