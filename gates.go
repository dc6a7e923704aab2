package main

import "strings"

// gateInfo describes a single entry of the fixed gate table.
type gateInfo struct {
	token       string
	name        string
	symbol      string
	description string
}

// gateTable lists every recognized gate token in canonical order.
// The effects mirror ApplyGate; they are a reduced model, not physical gates.
var gateTable = []gateInfo{
	{token: "x0", name: "Pauli-X q0", symbol: "X₀", description: "swap amplitudes 0 and 1"},
	{token: "x1", name: "Pauli-X q1", symbol: "X₁", description: "swap amplitudes 1 and 3"},
	{token: "y0", name: "Pauli-Y q0", symbol: "Y₀", description: "negate amplitude 0"},
	{token: "y1", name: "Pauli-Y q1", symbol: "Y₁", description: "negate amplitude 1"},
	{token: "z0", name: "Pauli-Z q0", symbol: "Z₀", description: "negate amplitude 2"},
	{token: "z1", name: "Pauli-Z q1", symbol: "Z₁", description: "negate amplitude 1"},
	{token: "h0", name: "Hadamard q0", symbol: "H₀", description: "mix amplitudes 0 and 2"},
	{token: "h1", name: "Hadamard q1", symbol: "H₁", description: "mix amplitudes 1 and 3"},
	{token: "cx", name: "CNOT", symbol: "●─⊕", description: "swap amplitudes 1 and 3"},
	{token: "sw", name: "SWAP", symbol: "×─×", description: "swap amplitudes 1 and 2"},
}

// lookupGate returns the table entry for token.
func lookupGate(token string) (gateInfo, bool) {
	for _, g := range gateTable {
		if g.token == token {
			return g, true
		}
	}
	return gateInfo{}, false
}

// gateTokenList renders the recognized tokens as "x0,x1,...".
func gateTokenList() string {
	tokens := make([]string, len(gateTable))
	for i, g := range gateTable {
		tokens[i] = g.token
	}
	return strings.Join(tokens, ",")
}
