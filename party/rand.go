//
// Copyright (c) 2026 Circuit Lab Authors
//
// All rights reserved.

package party

import (
	"crypto/rand"
	"fmt"
)

// cryptoRandBits draws n independent uniform bits from the operating
// system's CSPRNG, used to mask a party's own input share.
func cryptoRandBits(n int) []bool {
	if n == 0 {
		return nil
	}
	buf := make([]byte, (n+7)/8)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand.Read only fails if the OS entropy source is
		// broken, a condition this engine has no meaningful recovery
		// from.
		panic(fmt.Sprintf("party: crypto/rand failed: %v", err))
	}
	bits := make([]bool, n)
	for i := range bits {
		bits[i] = buf[i/8]&(1<<uint(i%8)) != 0
	}
	return bits
}
