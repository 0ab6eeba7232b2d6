//
// Copyright (c) 2026 Circuit Lab Authors
//
// All rights reserved.

// Package party implements the GMW execution engine: the Party type
// walks a Circuit gate by gate, maintaining additively-shared wire
// values over GF(2), driving input sharing, the per-AND Beaver
// subprotocol, and output reconstruction over a Channel.
package party

import (
	"fmt"

	"github.com/circuitlab/gmw/channel"
	"github.com/circuitlab/gmw/circuit"
	"github.com/circuitlab/gmw/triple"
)

// randBits is swappable in tests; it must never be used for anything
// beyond the input-sharing mask, since it carries no secrecy
// requirement stronger than "uniform and independent of the clear
// input" (the XOR with it is what hides the input, not the RNG
// itself).
var randBits = cryptoRandBits

// State is a Party's position in a single execute call's lifecycle.
type State int

// States of the per-execution state machine.
const (
	Idle State = iota
	Sharing
	Evaluating
	Reconstructing
	Done
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Sharing:
		return "Sharing"
	case Evaluating:
		return "Evaluating"
	case Reconstructing:
		return "Reconstructing"
	case Done:
		return "Done"
	case Failed:
		return "Failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Party evaluates a Circuit against a private input, cooperating with
// its peer (the other Party of the same execution, reachable over
// Channel) via the GMW protocol. A Party is single-use per execution
// in the sense that Execute reinitializes its wire table each call,
// but the same Party value may be reused across independent
// executions of the same Circuit.
type Party struct {
	Circuit  *circuit.Circuit
	Role     circuit.Role
	Provider triple.Provider
	Channel  channel.Channel

	state            State
	wires            []bool
	peerPartnerShare []bool
}

// New constructs a Party. circ is shared by reference and must not be
// mutated while any execution is in progress.
func New(circ *circuit.Circuit, role circuit.Role, provider triple.Provider, ch channel.Channel) *Party {
	return &Party{
		Circuit:  circ,
		Role:     role,
		Provider: provider,
		Channel:  ch,
		state:    Idle,
	}
}

// State returns the Party's current position in its execution state
// machine.
func (p *Party) State() State {
	return p.state
}

// Execute runs one full GMW evaluation of Party's Circuit against
// inputBits, this party's private input, cooperating with the peer
// Party over Channel. It returns the full cleartext output bitstring,
// identical at both parties, or a fatal error.
func (p *Party) Execute(inputBits []bool) ([]bool, error) {
	p.state = Sharing
	if err := p.checkInputLength(inputBits); err != nil {
		p.state = Failed
		return nil, err
	}

	ownShare, err := p.shareInput(inputBits)
	if err != nil {
		p.state = Failed
		return nil, err
	}

	p.state = Evaluating
	p.initWireTable(ownShare)

	for _, gate := range p.Circuit.Gates {
		if err := p.evalGate(gate); err != nil {
			p.state = Failed
			return nil, err
		}
	}

	p.state = Reconstructing
	output, err := p.reconstructOutput()
	if err != nil {
		p.state = Failed
		return nil, err
	}

	p.state = Done
	return output, nil
}

func (p *Party) checkInputLength(inputBits []bool) error {
	expected := p.Circuit.InputWidth(p.Role)
	if len(inputBits) != expected {
		return &InputLengthMismatchError{Actual: len(inputBits), Expected: expected}
	}
	return nil
}

// shareInput implements algorithm step 1: it returns this party's
// share of its own input after exchanging masks with the peer.
func (p *Party) shareInput(inputBits []bool) ([]bool, error) {
	partnerShare := randBits(len(inputBits))
	ownShare := make([]bool, len(inputBits))
	for i, b := range inputBits {
		ownShare[i] = b != partnerShare[i]
	}

	reply, err := p.Channel.Exchange(channel.NewParameterShares(partnerShare))
	if err != nil {
		return nil, err
	}
	if reply.Kind != channel.ParameterShares {
		return nil, &ProtocolError{Expected: channel.ParameterShares, Actual: reply.Kind}
	}
	p.peerPartnerShare = reply.Shares

	return ownShare, nil
}

// initWireTable implements algorithm step 2.
func (p *Party) initWireTable(ownShare []bool) {
	p.wires = make([]bool, p.Circuit.NumWires())

	selfOffset := p.Circuit.InputOffset(p.Role)
	copy(p.wires[selfOffset:selfOffset+len(ownShare)], ownShare)

	peer := p.Role.Other()
	peerOffset := p.Circuit.InputOffset(peer)
	copy(p.wires[peerOffset:peerOffset+len(p.peerPartnerShare)], p.peerPartnerShare)
}

// evalGate implements one iteration of algorithm step 3.
func (p *Party) evalGate(g circuit.Gate) error {
	i := p.Role.Index()
	switch g.Kind {
	case circuit.XOR:
		p.wires[g.Output] = p.wires[g.In0] != p.wires[g.In1]
	case circuit.INV:
		if i == 1 {
			p.wires[g.Output] = p.wires[g.In0]
		} else {
			p.wires[g.Output] = !p.wires[g.In0]
		}
	case circuit.AND:
		out, err := p.evalAnd(p.wires[g.In0], p.wires[g.In1])
		if err != nil {
			return err
		}
		p.wires[g.Output] = out
	case circuit.EQ:
		if i == 0 {
			p.wires[g.Output] = g.Constant
		} else {
			p.wires[g.Output] = false
		}
	case circuit.EQW:
		p.wires[g.Output] = p.wires[g.In0]
	default:
		return &InvalidGateError{Kind: g.Kind}
	}
	return nil
}

// evalAnd runs the interactive Beaver-triple subprotocol for one AND
// gate with local share inputs x, y, returning this party's share of
// x&y.
func (p *Party) evalAnd(x, y bool) (bool, error) {
	t, err := p.Provider.Triple()
	if err != nil {
		return false, err
	}

	d1 := x != t.A
	e1 := y != t.B

	reply, err := p.Channel.Exchange(channel.NewAnd(d1, e1))
	if err != nil {
		return false, err
	}
	if reply.Kind != channel.And {
		return false, &ProtocolError{Expected: channel.And, Actual: reply.Kind}
	}

	d := d1 != reply.D
	e := e1 != reply.E

	share := (d && t.B) != (e && t.A) != t.C
	if p.Role == circuit.Server {
		share = share != (d && e)
	}
	return share, nil
}

// reconstructOutput implements algorithm step 4.
func (p *Party) reconstructOutput() ([]bool, error) {
	offset := p.Circuit.OutputOffset()
	ownOutputShare := append([]bool(nil), p.wires[offset:p.Circuit.NumWires()]...)

	reply, err := p.Channel.Exchange(channel.NewResult(ownOutputShare))
	if err != nil {
		return nil, err
	}
	if reply.Kind != channel.Result {
		return nil, &ProtocolError{Expected: channel.Result, Actual: reply.Kind}
	}
	if len(reply.Shares) != len(ownOutputShare) {
		return nil, &ProtocolError{Expected: channel.Result, Actual: reply.Kind}
	}

	output := make([]bool, len(ownOutputShare))
	for i := range output {
		output[i] = ownOutputShare[i] != reply.Shares[i]
	}
	return output, nil
}
