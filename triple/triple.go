//
// Copyright (c) 2026 Circuit Lab Authors
//
// All rights reserved.

// Package triple provides Beaver multiplication triple providers for
// the GMW AND subprotocol. A triple is a pair of additive shares
// (a0,b0,c0) and (a1,b1,c1) over GF(2) satisfying the correlation
// (a0^a1) & (b0^b1) == (c0^c1). Party.Execute consumes one triple per
// AND gate evaluated.
package triple

import "fmt"

// Triple is one party's share of a multiplication triple.
type Triple struct {
	A bool
	B bool
	C bool
}

func (t Triple) String() string {
	return fmt.Sprintf("(a=%v, b=%v, c=%v)", t.A, t.B, t.C)
}

// Provider hands out multiplication triples. Implementations must be
// safe for concurrent use only if the caller serializes AND-gate
// evaluation per Party, which Execute does; Provider itself makes no
// concurrency guarantees beyond that.
type Provider interface {
	// Triple returns this party's share of the next multiplication
	// triple. Two Providers configured as a correlated pair (e.g. two
	// SharedSeed providers constructed with the same seed, one per
	// role) must return shares satisfying the Beaver correlation on
	// the Nth call to both.
	Triple() (Triple, error)
}
