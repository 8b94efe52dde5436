package fractal

import "testing"

func TestTicketGoesStaleAfterAdvance(t *testing.T) {
	var generation Generation
	ticket := generation.Ticket()
	if ticket.Stale() {
		t.Fatal("fresh ticket is stale")
	}
	generation.Advance()
	if !ticket.Stale() {
		t.Fatal("ticket should be stale after Advance")
	}
	if generation.Ticket().Stale() {
		t.Fatal("new ticket is stale")
	}
	if generation.Current() != 1 || ticket.Generation() != 0 {
		t.Fatalf("current %d, captured %d", generation.Current(), ticket.Generation())
	}
}

func TestZeroTicketNeverStale(t *testing.T) {
	var ticket Ticket
	if ticket.Stale() {
		t.Fatal("zero ticket is stale")
	}
}
