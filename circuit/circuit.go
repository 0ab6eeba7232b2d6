//
// Copyright (c) 2026 Circuit Lab Authors
//
// All rights reserved.
//

// Package circuit implements the Bristol-fashion Boolean circuit
// format: its token stream, its parser, and the immutable Circuit
// value the parser produces. Evaluation lives in the party package;
// this package only knows about the circuit's static shape.
package circuit

import "fmt"

// WireIndex identifies a wire in a Circuit. Valid values are in
// [0, Circuit.Header.NumWires).
type WireIndex uint32

// Role distinguishes the two parties in a two-party execution. The
// Server holds the circuit's first input (wires_per_input[0]); the
// Client holds the second.
type Role int

// The two roles.
const (
	Server Role = iota
	Client
)

// Index returns the role's input/output position: 0 for Server, 1
// for Client.
func (r Role) Index() int {
	return int(r)
}

// Other returns the opposing role.
func (r Role) Other() Role {
	if r == Server {
		return Client
	}
	return Server
}

func (r Role) String() string {
	switch r {
	case Server:
		return "Server"
	case Client:
		return "Client"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

// GateKind identifies which operation a Gate performs.
type GateKind int

// Gate kinds. MAND (multi-input AND) is intentionally absent: the
// format supports it but this engine does not, per spec.
const (
	// XOR computes In0 ^ In1.
	XOR GateKind = iota
	// AND computes In0 & In1 via the interactive Beaver subprotocol.
	AND
	// INV computes !In0.
	INV
	// EQ drives a constant (0 or 1) onto its output wire.
	EQ
	// EQW copies In0 to the output wire.
	EQW
)

func (k GateKind) String() string {
	switch k {
	case XOR:
		return "XOR"
	case AND:
		return "AND"
	case INV:
		return "INV"
	case EQ:
		return "EQ"
	case EQW:
		return "EQW"
	default:
		return fmt.Sprintf("GateKind(%d)", int(k))
	}
}

// Gate is a single circuit instruction. Which of In0/In1/Constant are
// meaningful depends on Kind:
//
//	XOR:  In0, In1
//	AND:  In0, In1
//	INV:  In0
//	EQ:   Constant
//	EQW:  In0
type Gate struct {
	Kind     GateKind
	In0      WireIndex
	In1      WireIndex
	Constant bool
	Output   WireIndex
}

func (g Gate) String() string {
	switch g.Kind {
	case XOR, AND:
		return fmt.Sprintf("w%d = %s(w%d, w%d)", g.Output, g.Kind, g.In0, g.In1)
	case INV, EQW:
		return fmt.Sprintf("w%d = %s(w%d)", g.Output, g.Kind, g.In0)
	case EQ:
		return fmt.Sprintf("w%d = EQ(%v)", g.Output, g.Constant)
	default:
		return fmt.Sprintf("w%d = %s(?)", g.Output, g.Kind)
	}
}

// Header carries a Circuit's gate/wire counts and the per-party
// input/output bit widths.
type Header struct {
	NumGates       int
	NumWires       int
	WiresPerInput  []int
	WiresPerOutput []int
}

// Circuit is an immutable, validated Boolean circuit in the sense of
// spec §3: every gate's input wires precede its output wire, every
// non-input wire is the output of at most one gate, and every
// declared output wire is defined. A Circuit may be shared by
// reference across independent executions.
type Circuit struct {
	Header Header
	Gates  []Gate
}

// NumWires returns the circuit's total wire count.
func (c *Circuit) NumWires() int {
	return c.Header.NumWires
}

// InputWidth returns the bit width of the given role's input.
func (c *Circuit) InputWidth(role Role) int {
	return c.Header.WiresPerInput[role.Index()]
}

// OutputWidth returns the total number of output wires (both
// parties learn the full output per spec's Non-goals).
func (c *Circuit) OutputWidth() int {
	total := 0
	for _, w := range c.Header.WiresPerOutput {
		total += w
	}
	return total
}

// InputOffset returns the index of the first wire belonging to the
// given role's input, i.e. offset(r) = sum of wires_per_input[k] for
// k < r.Index().
func (c *Circuit) InputOffset(role Role) int {
	offset := 0
	for k := 0; k < role.Index(); k++ {
		offset += c.Header.WiresPerInput[k]
	}
	return offset
}

// TotalInputWidth returns the sum of all parties' input widths.
func (c *Circuit) TotalInputWidth() int {
	total := 0
	for _, w := range c.Header.WiresPerInput {
		total += w
	}
	return total
}

// OutputOffset returns the index of the first output wire:
// num_wires - total output width.
func (c *Circuit) OutputOffset() int {
	return c.Header.NumWires - c.OutputWidth()
}
