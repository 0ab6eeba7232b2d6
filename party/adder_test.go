//
// Copyright (c) 2026 Circuit Lab Authors
//
// All rights reserved.

package party

import "github.com/circuitlab/gmw/circuit"

// adderBuilder assembles a ripple-carry adder circuit gate by gate,
// tracking the next free wire index. It exists only to give the test
// suite a larger correctness scenario than the hand-written examples
// without round-tripping through the text parser.
type adderBuilder struct {
	gates []circuit.Gate
	next  circuit.WireIndex
}

func (b *adderBuilder) xor(x, y circuit.WireIndex) circuit.WireIndex {
	out := b.next
	b.next++
	b.gates = append(b.gates, circuit.Gate{Kind: circuit.XOR, In0: x, In1: y, Output: out})
	return out
}

func (b *adderBuilder) and(x, y circuit.WireIndex) circuit.WireIndex {
	out := b.next
	b.next++
	b.gates = append(b.gates, circuit.Gate{Kind: circuit.AND, In0: x, In1: y, Output: out})
	return out
}

func (b *adderBuilder) eqConst(c bool) circuit.WireIndex {
	out := b.next
	b.next++
	b.gates = append(b.gates, circuit.Gate{Kind: circuit.EQ, Constant: c, Output: out})
	return out
}

func (b *adderBuilder) eqw(x circuit.WireIndex) circuit.WireIndex {
	out := b.next
	b.next++
	b.gates = append(b.gates, circuit.Gate{Kind: circuit.EQW, In0: x, Output: out})
	return out
}

// rippleCarryAdder builds an n-bit ripple-carry adder circuit: Server
// supplies the n-bit addend a (wires 0..n-1, LSB first), Client
// supplies the n-bit addend b (wires n..2n-1, LSB first). The n-bit
// output (LSB first) is a+b truncated to n bits; the final carry-out
// is discarded, matching a fixed-width adder.
func rippleCarryAdder(n int) *circuit.Circuit {
	b := &adderBuilder{next: circuit.WireIndex(2 * n)}

	carry := b.eqConst(false)
	sums := make([]circuit.WireIndex, n)
	for i := 0; i < n; i++ {
		a := circuit.WireIndex(i)
		bb := circuit.WireIndex(n + i)

		axb := b.xor(a, bb)
		sums[i] = b.xor(axb, carry)
		if i == n-1 {
			break
		}
		aAndB := b.and(a, bb)
		axbAndCarry := b.and(axb, carry)
		carry = b.xor(aAndB, axbAndCarry)
	}

	outputs := make([]circuit.WireIndex, n)
	for i, s := range sums {
		outputs[i] = b.eqw(s)
	}
	_ = outputs

	return &circuit.Circuit{
		Header: circuit.Header{
			NumGates:       len(b.gates),
			NumWires:       int(b.next),
			WiresPerInput:  []int{n, n},
			WiresPerOutput: []int{n},
		},
		Gates: b.gates,
	}
}

// bitsFromUint converts the low n bits of v into a bool slice, LSB
// first.
func bitsFromUint(v uint64, n int) []bool {
	bits := make([]bool, n)
	for i := 0; i < n; i++ {
		bits[i] = (v>>uint(i))&1 == 1
	}
	return bits
}

// uintFromBits is the inverse of bitsFromUint.
func uintFromBits(bits []bool) uint64 {
	var v uint64
	for i, bit := range bits {
		if bit {
			v |= 1 << uint(i)
		}
	}
	return v
}
