//
// Copyright (c) 2026 Circuit Lab Authors
//
// All rights reserved.

package main

import (
	"fmt"
	"sync"

	"github.com/getamis/sirius/log"
	"github.com/spf13/cobra"

	"github.com/circuitlab/gmw/channel"
	circuitpkg "github.com/circuitlab/gmw/circuit"
	"github.com/circuitlab/gmw/party"
)

var (
	demoCircuitPath string
	demoServerInput string
	demoClientInput string
	demoSeed        string
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run both GMW parties in one process over an in-memory channel",
	RunE:  runDemo,
}

func init() {
	demoCmd.Flags().StringVar(&demoCircuitPath, "circuit", "-", "path to a Bristol-fashion circuit file, or - for stdin")
	demoCmd.Flags().StringVar(&demoServerInput, "server-input", "", "server's input bits, e.g. 1011")
	demoCmd.Flags().StringVar(&demoClientInput, "client-input", "", "client's input bits, e.g. 0110")
	demoCmd.Flags().StringVar(&demoSeed, "seed", "", "shared seed for the SharedSeed triple provider (demo only)")
}

func runDemo(cmd *cobra.Command, args []string) error {
	circ, err := loadCircuit(demoCircuitPath)
	if err != nil {
		return err
	}
	serverBits, err := parseBits(demoServerInput)
	if err != nil {
		return fmt.Errorf("--server-input: %w", err)
	}
	clientBits, err := parseBits(demoClientInput)
	if err != nil {
		return fmt.Errorf("--client-input: %w", err)
	}

	serverChan, clientChan := channel.NewInMemoryPair()

	serverProvider, err := newProvider(demoSeed)
	if err != nil {
		return err
	}
	clientProvider, err := newProvider(demoSeed)
	if err != nil {
		return err
	}

	serverParty := party.New(circ, circuitpkg.Server, serverProvider, serverChan)
	clientParty := party.New(circ, circuitpkg.Client, clientProvider, clientChan)

	var wg sync.WaitGroup
	var clientOutput []bool
	var clientErr error

	wg.Go(func() {
		clientOutput, clientErr = clientParty.Execute(clientBits)
	})

	serverOutput, serverErr := serverParty.Execute(serverBits)
	wg.Wait()

	if serverErr != nil {
		log.Error("demo: server execution failed", "err", serverErr)
		return serverErr
	}
	if clientErr != nil {
		log.Error("demo: client execution failed", "err", clientErr)
		return clientErr
	}

	fmt.Println(formatBits(serverOutput))
	_ = clientOutput
	return nil
}
