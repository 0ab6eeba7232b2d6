//
// Copyright (c) 2026 Circuit Lab Authors
//
// All rights reserved.

package channel

import (
	"sync"
	"testing"

	"github.com/markkurossi/mpc/p2p"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetChannelRoundTripsAllPacketKinds(t *testing.T) {
	connA, connB := p2p.Pipe()
	a := NewNetChannel(connA)
	b := NewNetChannel(connB)
	defer a.Close()
	defer b.Close()

	packets := []Packet{
		NewParameterShares([]bool{true, false, true}),
		NewAnd(true, false),
		NewResult([]bool{false, false, true}),
	}

	var wg sync.WaitGroup
	var got []Packet
	var recvErr error
	wg.Go(func() {
		for range packets {
			p, err := b.Recv()
			if err != nil {
				recvErr = err
				return
			}
			got = append(got, p)
		}
	})

	for _, p := range packets {
		require.NoError(t, a.Send(p))
	}
	wg.Wait()

	require.NoError(t, recvErr)
	require.Len(t, got, len(packets))
	for i, want := range packets {
		assert.Equal(t, want, got[i], "packet %d did not round-trip faithfully", i)
	}
}

func TestNetChannelExchange(t *testing.T) {
	connA, connB := p2p.Pipe()
	a := NewNetChannel(connA)
	b := NewNetChannel(connB)
	defer a.Close()
	defer b.Close()

	var wg sync.WaitGroup
	var bGot Packet
	var bErr error
	wg.Go(func() {
		bGot, bErr = b.Exchange(NewAnd(false, true))
	})

	aGot, err := a.Exchange(NewAnd(true, false))
	require.NoError(t, err)
	wg.Wait()
	require.NoError(t, bErr)

	assert.Equal(t, NewAnd(false, true), aGot)
	assert.Equal(t, NewAnd(true, false), bGot)
}
