//
// Copyright (c) 2026 Circuit Lab Authors
//
// All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/circuitlab/gmw/circuit"
)

// parseBits converts a string of '0'/'1' characters into a bit slice
// in the same order, matching the CLI's --input/--server-input/
// --client-input flag format.
func parseBits(s string) ([]bool, error) {
	bits := make([]bool, len(s))
	for i, r := range s {
		switch r {
		case '0':
			bits[i] = false
		case '1':
			bits[i] = true
		default:
			return nil, fmt.Errorf("invalid bit %q at position %d: want 0 or 1", r, i)
		}
	}
	return bits, nil
}

// formatBits renders a bit slice as a string of '0'/'1' characters.
func formatBits(bits []bool) string {
	var b strings.Builder
	for _, bit := range bits {
		if bit {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

// loadCircuit reads and parses a Bristol-fashion circuit from path, or
// from standard input if path is "-" or empty.
func loadCircuit(path string) (*circuit.Circuit, error) {
	var r io.Reader
	if path == "" || path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open circuit %q: %w", path, err)
		}
		defer f.Close()
		r = f
	}
	c, err := circuit.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse circuit: %w", err)
	}
	return c, nil
}
