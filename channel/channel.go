//
// Copyright (c) 2026 Circuit Lab Authors
//
// All rights reserved.

package channel

// Channel is the point-to-point, ordered, reliable, bidirectional
// transport a Party uses to talk to its peer. Both directions are
// independent FIFO queues: a party's k-th Send is received as the
// peer's k-th Recv, with no reordering across packet kinds.
type Channel interface {
	Send(p Packet) error
	Recv() (Packet, error)
	// Exchange is a convenience for Send(p) followed by Recv.
	Exchange(p Packet) (Packet, error)
}

// exchange implements Channel.Exchange in terms of Send and Recv for
// implementations that embed it.
func exchange(c Channel, p Packet) (Packet, error) {
	if err := c.Send(p); err != nil {
		return Packet{}, err
	}
	return c.Recv()
}
