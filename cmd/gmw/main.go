//
// Copyright (c) 2026 Circuit Lab Authors
//
// All rights reserved.

// Command gmw is the reference CLI for the GMW two-party engine: it
// can run one party of a real two-process execution over TCP, run
// both parties in one process over an in-memory channel for demos,
// and mint seeds for the demonstration-only SharedSeed triple
// provider.
package main

import (
	"fmt"
	"os"

	"github.com/getamis/sirius/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gmw",
	Short: "A two-party GMW secure computation engine",
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(triplesCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error("gmw: command failed", "err", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
