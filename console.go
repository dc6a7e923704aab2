package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
)

// Console is the line-oriented front end: banner, prompt, one line of input,
// progress dots and the results table.
type Console struct {
	in     *bufio.Reader
	out    io.Writer
	sim    *Simulator
	preset string // gate sequence to use instead of reading in
	table  bool
}

// NewConsole wires a console to its streams.
func NewConsole(in io.Reader, out io.Writer, sim *Simulator) *Console {
	return &Console{in: bufio.NewReader(in), out: out, sim: sim}
}

// WithPreset makes the console run gates instead of reading a line.
func (c *Console) WithPreset(gates string) *Console {
	c.preset = gates
	return c
}

// WithTable enables the probability table after the results.
func (c *Console) WithTable(enabled bool) *Console {
	c.table = enabled
	return c
}

// Run performs one simulation round trip.
func (c *Console) Run() (*Result, error) {
	c.writeBanner()

	input := c.preset
	if input == "" {
		line, err := c.readLine()
		if err != nil {
			return nil, err
		}
		input = line
	}

	res, err := c.sim.Run(input, &consoleProgress{out: c.out})
	if err != nil {
		return nil, err
	}

	writeResults(c.out, res.Counts)
	if c.table {
		writeProbabilityTable(c.out, res)
	}
	return res, nil
}

func (c *Console) writeBanner() {
	fmt.Fprintln(c.out, "Quantum Simulator")
	fmt.Fprintln(c.out, "Two-qubit state vector sampler")
	fmt.Fprintln(c.out, "")
	fmt.Fprintf(c.out, "Enter gate seq (%s): \n", gateTokenList())
}

// readLine reads the gate sequence. A final line without a newline is
// accepted; a read error or an empty stream is an InputError.
func (c *Console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return line, nil
		}
		return "", &InputError{Err: err}
	}
	return line, nil
}

// consoleProgress prints the calculation banner, one dot per gate and the
// iteration line.
type consoleProgress struct {
	out io.Writer
}

func (p *consoleProgress) Calculating() {
	fmt.Fprintln(p.out, "Calculating the state vector...")
}

func (p *consoleProgress) GateApplied(string, bool) {
	fmt.Fprint(p.out, ".")
}

func (p *consoleProgress) GatesDone() {
	fmt.Fprintln(p.out, "")
}

func (p *consoleProgress) Sampling(shots int) {
	fmt.Fprintf(p.out, "Running %d iterations...\n", shots)
}

// writeResults prints the four labelled counts in display order.
func writeResults(w io.Writer, counts OutcomeCounts) {
	fmt.Fprintln(w, "Results:")
	for _, b := range displayOrder {
		fmt.Fprintf(w, "%s: [%d]\n", b.Label(), counts[b])
	}
}

// writeProbabilityTable renders amplitudes, probabilities and counts per
// bucket, in display order.
func writeProbabilityTable(w io.Writer, res *Result) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"State", "Amplitudes", "Probability", "Count"})
	for _, b := range displayOrder {
		lo, hi := res.Vector[2*int(b)], res.Vector[2*int(b)+1]
		table.Append([]string{
			b.Label(),
			fmt.Sprintf("%+.4f, %+.4f", lo, hi),
			fmt.Sprintf("%.4f", res.Probabilities[b]),
			fmt.Sprintf("%d", res.Counts[b]),
		})
	}
	table.SetFooter([]string{"", "", "dropped", fmt.Sprintf("%d", res.Dropped())})
	table.Render()
}
