//
// Copyright (c) 2026 Circuit Lab Authors
//
// All rights reserved.

package main

import (
	"fmt"

	"github.com/circuitlab/gmw/triple"
)

// newProvider builds the triple.Provider named by seed: Trivial when
// seed is empty, SharedSeed(seed) otherwise. Neither variant is
// suitable for anything beyond tests and local demos, per §4.3.
func newProvider(seed string) (triple.Provider, error) {
	if seed == "" {
		return triple.NewTrivial(), nil
	}
	p, err := triple.NewSharedSeed([]byte(seed))
	if err != nil {
		return nil, fmt.Errorf("triple provider: %w", err)
	}
	return p, nil
}
