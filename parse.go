package main

import "strings"

// tokenNoise is stripped from every field of the gate sequence.
var tokenNoise = strings.NewReplacer("\n", "", "\r", "", "\t", "", " ", "")

// ParseGateSequence splits a comma-separated gate line into tokens.
// Whitespace inside a field is removed, and empty fields are kept so that
// they count as (unknown) gates.
//
// Examples:
//   - "h0,h1"       -> ["h0", "h1"]
//   - " x0 , cx\n"  -> ["x0", "cx"]
//   - "x0,,sw"      -> ["x0", "", "sw"]
func ParseGateSequence(input string) []string {
	parts := strings.Split(input, ",")
	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		tokens = append(tokens, tokenNoise.Replace(part))
	}
	return tokens
}

