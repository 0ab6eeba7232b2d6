//
// Copyright (c) 2026 Circuit Lab Authors
//
// All rights reserved.

package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"
)

var triplesCmd = &cobra.Command{
	Use:   "triples",
	Short: "Tooling around multiplication-triple providers",
}

var triplesSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Print a fresh random seed for the SharedSeed provider (demo only)",
	RunE:  runTriplesSeed,
}

func init() {
	triplesCmd.AddCommand(triplesSeedCmd)
}

func runTriplesSeed(cmd *cobra.Command, args []string) error {
	seed := make([]byte, 32)
	if _, err := rand.Read(seed); err != nil {
		return fmt.Errorf("generate seed: %w", err)
	}
	fmt.Println(hex.EncodeToString(seed))
	return nil
}
