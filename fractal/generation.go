package fractal

import "sync/atomic"

// Outcome tells a caller whether a compute pass ran to the end or was abandoned because its generation went stale
type Outcome int

const (
	Completed Outcome = iota
	Aborted
)

func (o Outcome) String() string {
	return []string{
		"Completed", "Aborted",
	}[o]
}

// Generation is a monotonically increasing epoch shared by an owner and the compute passes it starts
type Generation struct {
	current atomic.Uint64
}

// Advance invalidates every ticket handed out so far
func (g *Generation) Advance() uint64 {
	return g.current.Add(1)
}

func (g *Generation) Current() uint64 {
	return g.current.Load()
}

func (g *Generation) Ticket() Ticket {
	return Ticket{captured: g.current.Load(), generation: g}
}

// Ticket is captured at the start of a pass and checked at every cancellation checkpoint.
// The zero Ticket never goes stale.
type Ticket struct {
	captured   uint64
	generation *Generation
}

func (t Ticket) Generation() uint64 {
	return t.captured
}

func (t Ticket) Stale() bool {
	return t.generation != nil && t.generation.Current() != t.captured
}
