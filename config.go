package main

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

// DefaultShots is the shot count used when none is configured.
const DefaultShots = 28

// Mode selects the front end.
type Mode string

const (
	ModeAuto  Mode = "auto"
	ModePlain Mode = "plain"
	ModeTUI   Mode = "tui"
)

// SimConfig holds the settings that affect simulation results.
type SimConfig struct {
	Shots          int
	Seed           uint64 // 0 picks a fresh seed per run
	Workers        int
	NormalizeMode  NormalizeMode
	LeftoverPolicy LeftoverPolicy
}

// Config holds application configuration.
type Config struct {
	Sim        SimConfig
	Mode       Mode
	Gates      string // preset gate sequence; empty means prompt for one
	Table      bool
	ReportPath string
	Log        LogConfig
	LogFile    string
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		Sim: SimConfig{
			Shots:          DefaultShots,
			Workers:        1,
			NormalizeMode:  NormalizeRescale,
			LeftoverPolicy: LeftoverDrop,
		},
		Mode: ModeAuto,
		Log:  LogConfig{Level: "warn"},
	}
}

// Validate checks ranges and enum values.
func (c *Config) Validate() error {
	if c.Sim.Shots <= 0 {
		return fmt.Errorf("shots must be positive, got %d", c.Sim.Shots)
	}
	if c.Sim.Workers <= 0 {
		return fmt.Errorf("workers must be positive, got %d", c.Sim.Workers)
	}
	switch c.Mode {
	case ModeAuto, ModePlain, ModeTUI:
	default:
		return fmt.Errorf("unknown mode %q (want auto, plain or tui)", c.Mode)
	}
	return nil
}

// loadDotEnv loads a .env file from the working directory if one exists.
// Values already present in the environment win.
func loadDotEnv() {
	_ = godotenv.Load()
}

// configFlags declares every setting as a flag bound to a QSIM_* variable.
func configFlags() []cli.Flag {
	def := DefaultConfig()
	return []cli.Flag{
		&cli.IntFlag{
			Name:    "shots",
			Aliases: []string{"n"},
			Usage:   "number of measurement shots",
			Value:   def.Sim.Shots,
			EnvVars: []string{"QSIM_SHOTS"},
		},
		&cli.Uint64Flag{
			Name:    "seed",
			Usage:   "random seed for sampling (0 = random)",
			EnvVars: []string{"QSIM_SEED"},
		},
		&cli.IntFlag{
			Name:    "workers",
			Usage:   "parallel sampling workers",
			Value:   def.Sim.Workers,
			EnvVars: []string{"QSIM_WORKERS"},
		},
		&cli.StringFlag{
			Name:    "normalize",
			Usage:   "normalization mode: rescale or legacy",
			Value:   def.Sim.NormalizeMode.String(),
			EnvVars: []string{"QSIM_NORMALIZE"},
		},
		&cli.StringFlag{
			Name:    "leftover",
			Usage:   "uncovered probability mass: drop or renormalize",
			Value:   def.Sim.LeftoverPolicy.String(),
			EnvVars: []string{"QSIM_LEFTOVER"},
		},
		&cli.StringFlag{
			Name:    "mode",
			Usage:   "front end: auto, plain or tui",
			Value:   string(def.Mode),
			EnvVars: []string{"QSIM_MODE"},
		},
		&cli.StringFlag{
			Name:    "gates",
			Aliases: []string{"g"},
			Usage:   "gate sequence to run instead of prompting, e.g. \"h0,h1\"",
			EnvVars: []string{"QSIM_GATES"},
		},
		&cli.BoolFlag{
			Name:    "table",
			Usage:   "print a probability table after the results",
			EnvVars: []string{"QSIM_TABLE"},
		},
		&cli.StringFlag{
			Name:    "report",
			Usage:   "write the run to a .json or .msgpack file",
			EnvVars: []string{"QSIM_REPORT"},
		},
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "debug, info, warn or error",
			Value:   def.Log.Level,
			EnvVars: []string{"QSIM_LOG_LEVEL"},
		},
		&cli.BoolFlag{
			Name:    "log-pretty",
			Usage:   "human-readable log lines",
			EnvVars: []string{"QSIM_LOG_PRETTY"},
		},
		&cli.StringFlag{
			Name:    "log-file",
			Usage:   "append logs to this file (the TUI logs nowhere otherwise)",
			EnvVars: []string{"QSIM_LOG_FILE"},
		},
	}
}

// configFromContext builds a validated Config from parsed flags.
func configFromContext(c *cli.Context) (Config, error) {
	cfg := DefaultConfig()
	cfg.Sim.Shots = c.Int("shots")
	cfg.Sim.Seed = c.Uint64("seed")
	cfg.Sim.Workers = c.Int("workers")

	var err error
	if cfg.Sim.NormalizeMode, err = ParseNormalizeMode(c.String("normalize")); err != nil {
		return cfg, err
	}
	if cfg.Sim.LeftoverPolicy, err = ParseLeftoverPolicy(c.String("leftover")); err != nil {
		return cfg, err
	}

	cfg.Mode = Mode(strings.ToLower(strings.TrimSpace(c.String("mode"))))
	cfg.Gates = c.String("gates")
	cfg.Table = c.Bool("table")
	cfg.ReportPath = c.String("report")
	cfg.Log.Level = c.String("log-level")
	cfg.Log.Pretty = c.Bool("log-pretty")
	cfg.LogFile = c.String("log-file")

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
