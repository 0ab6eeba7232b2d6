//
// Copyright (c) 2026 Circuit Lab Authors
//
// All rights reserved.

package triple

import (
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20"
	"golang.org/x/crypto/hkdf"
)

// sharedSeedInfo is domain-separation context for the HKDF expansion;
// it has no secrecy requirement, only uniqueness within this package.
var sharedSeedInfo = []byte("circuit-lab/triple/shared-seed/v1")

// SharedSeed is a correctness-only Provider: both parties construct it
// from the same seed, so the bit stream it draws from is identical on
// both sides. Each Triple() call consumes three bits (a, b, c) from
// that shared stream; because a0=a1, b0=b1 and c0=c1, invariant (*)
// reduces to 0&0 == 0. It offers zero privacy and must never be used
// outside test fixtures and local demos.
type SharedSeed struct {
	cipher  *chacha20.Cipher
	scratch [1]byte
	bitPos  uint8
}

// NewSharedSeed derives a deterministic keystream from seed and
// returns a Provider drawing triples from it. Two SharedSeed providers
// constructed with equal seed values produce byte-for-byte identical
// triple sequences.
func NewSharedSeed(seed []byte) (*SharedSeed, error) {
	kdf := hkdf.New(sha256.New, seed, nil, sharedSeedInfo)
	key := make([]byte, chacha20.KeySize)
	if _, err := io.ReadFull(kdf, key); err != nil {
		return nil, fmt.Errorf("triple: derive key: %w", err)
	}
	nonce := make([]byte, chacha20.NonceSize)
	cipher, err := chacha20.NewUnauthenticatedCipher(key, nonce)
	if err != nil {
		return nil, fmt.Errorf("triple: init cipher: %w", err)
	}
	return &SharedSeed{cipher: cipher}, nil
}

// nextBit returns the next pseudorandom bit from the shared stream.
func (s *SharedSeed) nextBit() bool {
	if s.bitPos == 0 {
		var zero [1]byte
		s.cipher.XORKeyStream(s.scratch[:], zero[:])
		s.bitPos = 8
	}
	s.bitPos--
	bit := (s.scratch[0]>>s.bitPos)&1 == 1
	return bit
}

// Triple implements Provider.
func (s *SharedSeed) Triple() (Triple, error) {
	a := s.nextBit()
	b := s.nextBit()
	c := s.nextBit()
	return Triple{A: a, B: b, C: c}, nil
}
