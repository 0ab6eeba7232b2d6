//
// Copyright (c) 2026 Circuit Lab Authors
//
// All rights reserved.

package triple

// NewTrivial returns a Provider that always yields the zero triple
// (a=b=c=false). It satisfies the Beaver correlation trivially, since
// (0^0)&(0^0) == (0^0), but offers no privacy for AND gates: with
// a=b=0 the opened d and e of every AND gate are its clear-text input
// bits. It exists for test fixtures, not deployment.
func NewTrivial() Provider {
	return trivial{}
}

type trivial struct{}

func (trivial) Triple() (Triple, error) {
	return Triple{}, nil
}
