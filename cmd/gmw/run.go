//
// Copyright (c) 2026 Circuit Lab Authors
//
// All rights reserved.

package main

import (
	"fmt"
	"net"

	"github.com/getamis/sirius/log"
	"github.com/markkurossi/mpc/p2p"
	"github.com/spf13/cobra"

	"github.com/circuitlab/gmw/channel"
	circuitpkg "github.com/circuitlab/gmw/circuit"
	"github.com/circuitlab/gmw/party"
)

var (
	runCircuitPath string
	runRole        string
	runInput       string
	runListen      string
	runPeer        string
	runSeed        string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one party of a GMW execution over a TCP connection",
	RunE:  runRunCmd,
}

func init() {
	runCmd.Flags().StringVar(&runCircuitPath, "circuit", "-", "path to a Bristol-fashion circuit file, or - for stdin")
	runCmd.Flags().StringVar(&runRole, "role", "", "this process's role: server or client")
	runCmd.Flags().StringVar(&runInput, "input", "", "this party's input bits, e.g. 1011")
	runCmd.Flags().StringVar(&runListen, "listen", "", "local TCP address to listen on (server role)")
	runCmd.Flags().StringVar(&runPeer, "peer", "", "peer TCP address to dial (client role)")
	runCmd.Flags().StringVar(&runSeed, "seed", "", "shared seed for the SharedSeed triple provider (demo only)")
}

func runRunCmd(cmd *cobra.Command, args []string) error {
	circ, err := loadCircuit(runCircuitPath)
	if err != nil {
		return err
	}
	bits, err := parseBits(runInput)
	if err != nil {
		return fmt.Errorf("--input: %w", err)
	}

	var role circuitpkg.Role
	switch runRole {
	case "server":
		role = circuitpkg.Server
	case "client":
		role = circuitpkg.Client
	default:
		return fmt.Errorf("--role must be server or client, got %q", runRole)
	}

	conn, err := dialPeer(role, runListen, runPeer)
	if err != nil {
		return fmt.Errorf("connect to peer: %w", err)
	}
	netChan := channel.NewNetChannel(conn)
	defer netChan.Close()

	provider, err := newProvider(runSeed)
	if err != nil {
		return err
	}

	p := party.New(circ, role, provider, netChan)
	output, err := p.Execute(bits)
	if err != nil {
		log.Error("run: execution failed", "role", runRole, "err", err)
		return err
	}

	fmt.Println(formatBits(output))
	return nil
}

// dialPeer establishes the TCP connection for role: the server
// listens and accepts a single connection, the client dials.
func dialPeer(role circuitpkg.Role, listen, peer string) (*p2p.Conn, error) {
	if role == circuitpkg.Server {
		if listen == "" {
			return nil, fmt.Errorf("--listen is required for --role server")
		}
		l, err := net.Listen("tcp", listen)
		if err != nil {
			return nil, err
		}
		defer l.Close()
		log.Info("run: waiting for peer", "listen", listen)
		c, err := l.Accept()
		if err != nil {
			return nil, err
		}
		return p2p.NewConn(c), nil
	}

	if peer == "" {
		return nil, fmt.Errorf("--peer is required for --role client")
	}
	log.Info("run: dialing peer", "peer", peer)
	c, err := net.Dial("tcp", peer)
	if err != nil {
		return nil, err
	}
	return p2p.NewConn(c), nil
}
