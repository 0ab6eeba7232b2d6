//
// Copyright (c) 2026 Circuit Lab Authors
//
// All rights reserved.

package triple

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrivialIsZero(t *testing.T) {
	p := NewTrivial()
	for i := 0; i < 8; i++ {
		tr, err := p.Triple()
		require.NoError(t, err)
		assert.Equal(t, Triple{}, tr)
		assert.Equal(t, tr.A && tr.B, tr.C)
	}
}

func TestSharedSeedCorrelation(t *testing.T) {
	seed := []byte("a shared demo seed, not secret")
	p0, err := NewSharedSeed(seed)
	require.NoError(t, err)
	p1, err := NewSharedSeed(seed)
	require.NoError(t, err)

	for i := 0; i < 256; i++ {
		t0, err := p0.Triple()
		require.NoError(t, err)
		t1, err := p1.Triple()
		require.NoError(t, err)

		assert.Equal(t, t0, t1, "shared-seed providers must agree at draw %d", i)

		a := xorBool(t0.A, t1.A)
		b := xorBool(t0.B, t1.B)
		c := xorBool(t0.C, t1.C)
		assert.Equal(t, a && b, c, "Beaver correlation (*) violated at draw %d", i)
	}
}

func TestSharedSeedDifferentSeedsDiverge(t *testing.T) {
	p0, err := NewSharedSeed([]byte("seed-one"))
	require.NoError(t, err)
	p1, err := NewSharedSeed([]byte("seed-two"))
	require.NoError(t, err)

	same := true
	for i := 0; i < 64; i++ {
		t0, err := p0.Triple()
		require.NoError(t, err)
		t1, err := p1.Triple()
		require.NoError(t, err)
		if t0 != t1 {
			same = false
		}
	}
	assert.False(t, same, "different seeds should not produce an identical 64-draw sequence")
}

func xorBool(a, b bool) bool {
	return a != b
}
