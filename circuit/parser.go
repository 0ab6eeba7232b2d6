//
// Copyright (c) 2026 Circuit Lab Authors
//
// All rights reserved.
//

package circuit

import (
	"fmt"
	"io"
)

// Parse reads a Bristol-fashion circuit from r and returns the
// resulting Circuit. Parse validates the formatting constraints that
// imply spec invariants (1)-(5): that every gate's inputs precede its
// output, that no wire is the output of more than one gate, that
// input wires are never gate outputs, that the gate count matches the
// header, and that every declared output wire is defined.
func Parse(r io.Reader) (*Circuit, error) {
	lex := NewLexer(r)
	return parse(lex)
}

func parse(lex *Lexer) (*Circuit, error) {
	numGates64, err := lex.AcceptNumber()
	if err != nil {
		return nil, err
	}
	numWires64, err := lex.AcceptNumber()
	if err != nil {
		return nil, err
	}
	if err := lex.AcceptNewline(); err != nil {
		return nil, err
	}
	numGates := int(numGates64)
	numWires := int(numWires64)

	niv64, err := lex.AcceptNumber()
	if err != nil {
		return nil, err
	}
	niv := int(niv64)
	wiresPerInput64, err := lex.AcceptNNumbers(niv)
	if err != nil {
		return nil, err
	}
	if err := lex.AcceptNewline(); err != nil {
		return nil, err
	}
	if niv != 2 {
		return nil, &SyntaxError{
			Message:  fmt.Sprintf("two-party circuits require exactly 2 input groups, got %d", niv),
			Location: lex.loc(),
		}
	}

	nov64, err := lex.AcceptNumber()
	if err != nil {
		return nil, err
	}
	nov := int(nov64)
	wiresPerOutput64, err := lex.AcceptNNumbers(nov)
	if err != nil {
		return nil, err
	}
	if err := lex.AcceptNewline(); err != nil {
		return nil, err
	}

	// BLANK line separating header from gates.
	if err := lex.AcceptNewline(); err != nil {
		return nil, err
	}

	wiresPerInput := toIntSlice(wiresPerInput64)
	wiresPerOutput := toIntSlice(wiresPerOutput64)

	totalInputs := sum(wiresPerInput)
	totalOutputs := sum(wiresPerOutput)
	outputOffset := numWires - totalOutputs

	defined := make([]bool, numWires)
	for i := 0; i < totalInputs && i < numWires; i++ {
		defined[i] = true
	}

	gates := make([]Gate, 0, numGates)

	for i := 0; i < numGates; i++ {
		gate, loc, err := parseGateLine(lex)
		if err != nil {
			return nil, err
		}

		if err := checkGate(gate, loc, numWires, totalInputs, defined); err != nil {
			return nil, err
		}
		defined[gate.Output] = true

		if err := lex.AcceptNewline(); err != nil {
			return nil, err
		}

		gates = append(gates, gate)
	}

	if len(gates) != numGates {
		return nil, &SyntaxError{
			Message:  fmt.Sprintf("expected %d gates, got %d", numGates, len(gates)),
			Location: lex.loc(),
		}
	}

	for w := outputOffset; w < numWires; w++ {
		if !defined[w] {
			return nil, &SyntaxError{
				Message:  fmt.Sprintf("output wire %d is never defined", w),
				Location: lex.loc(),
			}
		}
	}

	return &Circuit{
		Header: Header{
			NumGates:       numGates,
			NumWires:       numWires,
			WiresPerInput:  wiresPerInput,
			WiresPerOutput: wiresPerOutput,
		},
		Gates: gates,
	}, nil
}

// checkGate enforces invariants (1)-(3) from spec §3 for a single
// gate as it is parsed: every input wire precedes the output wire,
// the output wire is not an input wire, and the output wire has not
// already been defined by an earlier gate.
func checkGate(gate Gate, loc Location, numWires, totalInputs int, defined []bool) error {
	if int(gate.Output) >= numWires {
		return &SyntaxError{
			Message:  fmt.Sprintf("output wire %d out of range [0, %d)", gate.Output, numWires),
			Location: loc,
		}
	}
	ins := gateInputs(gate)
	for _, in := range ins {
		if int(in) >= numWires {
			return &SyntaxError{
				Message:  fmt.Sprintf("input wire %d out of range [0, %d)", in, numWires),
				Location: loc,
			}
		}
		if in >= gate.Output {
			return &SyntaxError{
				Message:  fmt.Sprintf("input wire %d does not precede output wire %d", in, gate.Output),
				Location: loc,
			}
		}
	}
	if int(gate.Output) < totalInputs {
		return &SyntaxError{
			Message:  fmt.Sprintf("wire %d is an input wire and cannot be a gate output", gate.Output),
			Location: loc,
		}
	}
	if defined[gate.Output] {
		return &SyntaxError{
			Message:  fmt.Sprintf("wire %d is defined by more than one gate", gate.Output),
			Location: loc,
		}
	}
	return nil
}

func gateInputs(g Gate) []WireIndex {
	switch g.Kind {
	case XOR, AND:
		return []WireIndex{g.In0, g.In1}
	case INV, EQW:
		return []WireIndex{g.In0}
	case EQ:
		return nil
	default:
		return nil
	}
}

// parseGateLine parses one "<n_in> <n_out> <in...> <out...> <OPCODE>"
// line.
func parseGateLine(lex *Lexer) (Gate, Location, error) {
	loc := lex.loc()
	if tok, err := lex.Peek(); err == nil {
		loc = tok.Location
	}

	nIn64, err := lex.AcceptNumber()
	if err != nil {
		return Gate{}, loc, err
	}
	nOut64, err := lex.AcceptNumber()
	if err != nil {
		return Gate{}, loc, err
	}
	nIn := int(nIn64)
	nOut := int(nOut64)

	if nOut != 1 {
		return Gate{}, loc, &SyntaxError{
			Message:  fmt.Sprintf("MAND gates (n_out=%d) are not supported", nOut),
			Location: loc,
		}
	}
	if nIn != 1 && nIn != 2 {
		return Gate{}, loc, &SyntaxError{
			Message:  fmt.Sprintf("gate must have 1 or 2 inputs, got %d", nIn),
			Location: loc,
		}
	}

	ins, err := lex.AcceptNNumbers(nIn)
	if err != nil {
		return Gate{}, loc, err
	}
	outs, err := lex.AcceptNNumbers(nOut)
	if err != nil {
		return Gate{}, loc, err
	}
	opcode, err := lex.AcceptIdentifier()
	if err != nil {
		return Gate{}, loc, err
	}

	output := WireIndex(outs[0])

	switch opcode {
	case "XOR":
		if nIn != 2 {
			return Gate{}, loc, &SyntaxError{Message: "XOR requires 2 inputs", Location: loc}
		}
		return Gate{Kind: XOR, In0: WireIndex(ins[0]), In1: WireIndex(ins[1]), Output: output}, loc, nil
	case "AND":
		if nIn != 2 {
			return Gate{}, loc, &SyntaxError{Message: "AND requires 2 inputs", Location: loc}
		}
		return Gate{Kind: AND, In0: WireIndex(ins[0]), In1: WireIndex(ins[1]), Output: output}, loc, nil
	case "INV":
		if nIn != 1 {
			return Gate{}, loc, &SyntaxError{Message: "INV requires 1 input", Location: loc}
		}
		return Gate{Kind: INV, In0: WireIndex(ins[0]), Output: output}, loc, nil
	case "EQ":
		if nIn != 1 {
			return Gate{}, loc, &SyntaxError{Message: "EQ requires 1 input", Location: loc}
		}
		if ins[0] != 0 && ins[0] != 1 {
			return Gate{}, loc, &SyntaxError{
				Message:  fmt.Sprintf("EQ constant must be 0 or 1, got %d", ins[0]),
				Location: loc,
			}
		}
		return Gate{Kind: EQ, Constant: ins[0] != 0, Output: output}, loc, nil
	case "EQW":
		if nIn != 1 {
			return Gate{}, loc, &SyntaxError{Message: "EQW requires 1 input", Location: loc}
		}
		return Gate{Kind: EQW, In0: WireIndex(ins[0]), Output: output}, loc, nil
	default:
		return Gate{}, loc, &SyntaxError{
			Message:  fmt.Sprintf("Unknown Gate type: %s", opcode),
			Location: loc,
		}
	}
}

func toIntSlice(in []uint64) []int {
	out := make([]int, len(in))
	for i, v := range in {
		out[i] = int(v)
	}
	return out
}

func sum(in []int) int {
	total := 0
	for _, v := range in {
		total += v
	}
	return total
}
