package refkernel

import "sync/atomic"

// idCounter hands out fresh, process-unique original-IDs for primitives and
// AssignOriginalID calls. Starts at 1 so a zero value reads as "unassigned"
// in mesh data that predates this counter.
type idCounter struct {
	n atomic.Int64
}

func newIDCounter() *idCounter {
	return &idCounter{}
}

func (c *idCounter) next() int {
	return int(c.n.Add(1))
}
