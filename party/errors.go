//
// Copyright (c) 2026 Circuit Lab Authors
//
// All rights reserved.

package party

import (
	"fmt"

	"github.com/circuitlab/gmw/channel"
	"github.com/circuitlab/gmw/circuit"
)

// InputLengthMismatchError reports that Execute was called with an
// input bitstring whose length does not match the circuit's declared
// width for this party's role.
type InputLengthMismatchError struct {
	Actual   int
	Expected int
}

func (e *InputLengthMismatchError) Error() string {
	return fmt.Sprintf("party: input length mismatch: got %d bits, want %d", e.Actual, e.Expected)
}

// ProtocolError reports that the peer sent a packet variant other
// than the one expected at the current step of the protocol.
type ProtocolError struct {
	Expected channel.PacketKind
	Actual   channel.PacketKind
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("party: protocol error: expected %v packet, got %v", e.Expected, e.Actual)
}

// InvalidGateError reports that the circuit contains a gate kind this
// engine does not implement.
type InvalidGateError struct {
	Kind circuit.GateKind
}

func (e *InvalidGateError) Error() string {
	return fmt.Sprintf("party: invalid gate: %v is not supported by this engine", e.Kind)
}
