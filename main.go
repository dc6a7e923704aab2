package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
)

func main() {
	loadDotEnv()

	app := newApp(os.Stdin, os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newApp builds the command line application around the given streams.
func newApp(in io.Reader, out, errOut io.Writer) *cli.App {
	return &cli.App{
		Name:      "qtermsim",
		Usage:     "simulate a two-qubit state vector and sample its measurements",
		UsageText: "qtermsim [--shots N] [--seed S] [--gates \"h0,h1\"]",
		Flags:     configFlags(),
		Writer:    out,
		ErrWriter: errOut,
		Action: func(c *cli.Context) error {
			cfg, err := configFromContext(c)
			if err != nil {
				return err
			}
			return run(cfg, in, out, errOut)
		},
	}
}

// run dispatches to the plain console or the TUI and writes the report.
func run(cfg Config, in io.Reader, out, errOut io.Writer) error {
	mode := resolveMode(cfg.Mode, in, out)

	logOut := errOut
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	} else if mode == ModeTUI {
		logOut = io.Discard
	}
	cfg.Log.Output = logOut
	log := NewLogger(cfg.Log)

	sim := NewSimulator(cfg.Sim, log)
	log.Debug().
		Str("mode", string(mode)).
		Int("shots", cfg.Sim.Shots).
		Int("workers", cfg.Sim.Workers).
		Str("normalize", cfg.Sim.NormalizeMode.String()).
		Str("leftover", cfg.Sim.LeftoverPolicy.String()).
		Msg("starting")

	var (
		res *Result
		err error
	)
	if mode == ModeTUI {
		res, err = runTUI(sim, cfg.Gates, in, out)
	} else {
		res, err = NewConsole(in, out, sim).
			WithPreset(cfg.Gates).
			WithTable(cfg.Table).
			Run()
	}
	if err != nil {
		return err
	}

	return writeReportIfRequested(cfg.ReportPath, res, log)
}

func writeReportIfRequested(path string, res *Result, log zerolog.Logger) error {
	if path == "" || res == nil {
		return nil
	}
	if err := WriteReport(path, res); err != nil {
		return err
	}
	log.Info().Str("path", path).Str("run_id", res.RunID.String()).Msg("report written")
	return nil
}

func runTUI(sim *Simulator, preset string, in io.Reader, out io.Writer) (*Result, error) {
	p := tea.NewProgram(
		initialModel(sim, preset),
		tea.WithAltScreen(),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("tui: %w", err)
	}
	if m, ok := final.(Model); ok {
		return m.LastResult(), nil
	}
	return nil, nil
}

// resolveMode turns ModeAuto into the TUI when both streams are terminals.
func resolveMode(mode Mode, in io.Reader, out io.Writer) Mode {
	if mode != ModeAuto {
		return mode
	}
	if isTerminal(in) && isTerminal(out) {
		return ModeTUI
	}
	return ModePlain
}

func isTerminal(stream any) bool {
	f, ok := stream.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
