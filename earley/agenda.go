package earley

import (
	"fmt"
	"strings"
)

// Order is the discipline used to drain the agenda. Recognition results do
// not depend on it.
type Order int

const (
	LIFO Order = iota // stack
	FIFO              // queue
)

func (o Order) String() string {
	switch o {
	case LIFO:
		return "lifo"
	case FIFO:
		return "fifo"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// ParseOrder converts "lifo" or "fifo" to an Order.
func ParseOrder(name string) (Order, error) {
	switch strings.ToLower(name) {
	case "lifo", "stack":
		return LIFO, nil
	case "fifo", "queue":
		return FIFO, nil
	}
	return LIFO, fmt.Errorf("unknown agenda order %q (expected lifo or fifo)", name)
}

// agenda holds edges waiting to be processed at the current position.
type agenda struct {
	order Order
	edges []Edge
	head  int
}

func newAgenda(order Order) *agenda {
	return &agenda{order: order}
}

func (a *agenda) push(e Edge) {
	a.edges = append(a.edges, e)
}

func (a *agenda) pop() (Edge, bool) {
	if a.head == len(a.edges) {
		a.edges = a.edges[:0]
		a.head = 0
		return Edge{}, false
	}
	if a.order == FIFO {
		e := a.edges[a.head]
		a.head++
		return e, true
	}
	last := len(a.edges) - 1
	e := a.edges[last]
	a.edges = a.edges[:last]
	return e, true
}
