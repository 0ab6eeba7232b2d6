//
// Copyright (c) 2026 Circuit Lab Authors
//
// All rights reserved.

// Package config binds the gmw CLI's flags and environment variables
// to a Config value via viper, the way cobra/viper commands in the
// wider examples this project learned from do it.
package config

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config holds everything the gmw CLI needs to run one party of a GMW
// execution.
type Config struct {
	// CircuitPath is the path to a Bristol-fashion circuit file, or
	// "-" for standard input.
	CircuitPath string
	// Role selects which circuit input this process supplies: "server"
	// or "client".
	Role string
	// Listen is the local TCP address this process listens on.
	Listen string
	// Peer is the TCP address of the other party, dialed if non-empty.
	Peer string
	// Seed, if non-empty, selects the SharedSeed triple provider with
	// this value as the shared seed; otherwise the Trivial provider is
	// used.
	Seed string
	// Input is the input bits for this party, as a string of '0'/'1'
	// characters.
	Input string
}

// BindFlags registers Config's flags on cmd. Binding them through
// viper (and to CIRCUITLAB_GMW_*-prefixed environment variables) is
// done by Load.
func BindFlags(cmd *cobra.Command) {
	cmd.Flags().String("circuit", "-", "path to a Bristol-fashion circuit file, or - for stdin")
	cmd.Flags().String("role", "", "this process's role: server or client")
	cmd.Flags().String("listen", "", "local TCP address to listen on")
	cmd.Flags().String("peer", "", "peer TCP address to dial")
	cmd.Flags().String("seed", "", "shared seed for the SharedSeed triple provider (demo only)")
	cmd.Flags().String("input", "", "this party's input bits, e.g. 1011")
}

// Load binds cmd's flags into viper with BindPFlags, enables
// CIRCUITLAB_GMW_*-prefixed environment variables, and reads the
// resulting viper state into a Config.
func Load(cmd *cobra.Command) (*Config, error) {
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return nil, fmt.Errorf("config: bind flags: %w", err)
	}
	viper.SetEnvPrefix("circuitlab_gmw")
	viper.AutomaticEnv()

	cfg := &Config{
		CircuitPath: viper.GetString("circuit"),
		Role:        viper.GetString("role"),
		Listen:      viper.GetString("listen"),
		Peer:        viper.GetString("peer"),
		Seed:        viper.GetString("seed"),
		Input:       viper.GetString("input"),
	}
	return cfg, nil
}
