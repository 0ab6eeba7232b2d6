//
// Copyright (c) 2026 Circuit Lab Authors
//
// All rights reserved.

package channel

import (
	"bytes"
	"encoding/gob"
	"fmt"

	"github.com/markkurossi/mpc/p2p"
)

// NetChannel carries Packet values over a markkurossi/mpc/p2p
// connection, framing each Packet as a length-prefixed gob-encoded
// blob via Conn's SendData/ReceiveData. It is the deployment
// transport; InMemoryChannel is the test/demo transport.
type NetChannel struct {
	conn *p2p.Conn
}

// NewNetChannel wraps an established p2p.Conn. The connection's
// framing (SendData/ReceiveData) already gives NetChannel exactly-once,
// in-order delivery per direction, matching Channel's contract.
func NewNetChannel(conn *p2p.Conn) *NetChannel {
	return &NetChannel{conn: conn}
}

// Send implements Channel.
func (c *NetChannel) Send(p Packet) error {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(&p); err != nil {
		return &NetworkError{Direction: DirectionSend, Cause: fmt.Errorf("encode packet: %w", err)}
	}
	if err := c.conn.SendData(buf.Bytes()); err != nil {
		return &NetworkError{Direction: DirectionSend, Cause: err}
	}
	if err := c.conn.Flush(); err != nil {
		return &NetworkError{Direction: DirectionSend, Cause: err}
	}
	return nil
}

// Recv implements Channel.
func (c *NetChannel) Recv() (Packet, error) {
	data, err := c.conn.ReceiveData()
	if err != nil {
		return Packet{}, &NetworkError{Direction: DirectionRecv, Cause: err}
	}
	var p Packet
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&p); err != nil {
		return Packet{}, &NetworkError{Direction: DirectionRecv, Cause: fmt.Errorf("decode packet: %w", err)}
	}
	return p, nil
}

// Exchange implements Channel.
func (c *NetChannel) Exchange(p Packet) (Packet, error) {
	return exchange(c, p)
}

// Close closes the underlying connection.
func (c *NetChannel) Close() error {
	return c.conn.Close()
}
