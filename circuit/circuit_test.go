//
// Copyright (c) 2026 Circuit Lab Authors
//
// All rights reserved.

package circuit

import "testing"

func TestCircuitAccessors(t *testing.T) {
	c := &Circuit{
		Header: Header{
			NumGates:       3,
			NumWires:       12,
			WiresPerInput:  []int{5, 3},
			WiresPerOutput: []int{2, 2},
		},
	}

	if c.NumWires() != 12 {
		t.Fatalf("NumWires() = %d, want 12", c.NumWires())
	}
	if c.InputWidth(Server) != 5 {
		t.Fatalf("InputWidth(Server) = %d, want 5", c.InputWidth(Server))
	}
	if c.InputWidth(Client) != 3 {
		t.Fatalf("InputWidth(Client) = %d, want 3", c.InputWidth(Client))
	}
	if c.InputOffset(Server) != 0 {
		t.Fatalf("InputOffset(Server) = %d, want 0", c.InputOffset(Server))
	}
	if c.InputOffset(Client) != 5 {
		t.Fatalf("InputOffset(Client) = %d, want 5", c.InputOffset(Client))
	}
	if c.TotalInputWidth() != 8 {
		t.Fatalf("TotalInputWidth() = %d, want 8", c.TotalInputWidth())
	}
	if c.OutputWidth() != 4 {
		t.Fatalf("OutputWidth() = %d, want 4", c.OutputWidth())
	}
	if c.OutputOffset() != 8 {
		t.Fatalf("OutputOffset() = %d, want 8", c.OutputOffset())
	}
}

func TestRoleOtherAndIndex(t *testing.T) {
	if Server.Other() != Client {
		t.Fatalf("Server.Other() = %v, want Client", Server.Other())
	}
	if Client.Other() != Server {
		t.Fatalf("Client.Other() = %v, want Server", Client.Other())
	}
	if Server.Index() != 0 || Client.Index() != 1 {
		t.Fatalf("unexpected role indices: Server=%d Client=%d", Server.Index(), Client.Index())
	}
}
