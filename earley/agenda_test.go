package earley

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func drain(a *agenda) []int {
	var starts []int
	for e, ok := a.pop(); ok; e, ok = a.pop() {
		starts = append(starts, e.Start)
	}
	return starts
}

func TestAgendaOrder(t *testing.T) {
	for _, tt := range []struct {
		order Order
		want  []int
	}{
		{LIFO, []int{3, 2, 1}},
		{FIFO, []int{1, 2, 3}},
	} {
		a := newAgenda(tt.order)
		for i := 1; i <= 3; i++ {
			a.push(Edge{Start: i})
		}
		require.Equal(t, tt.want, drain(a), tt.order.String())

		// Reusable once drained.
		a.push(Edge{Start: 7})
		require.Equal(t, []int{7}, drain(a))
	}
}

func TestAgendaPushWhileDraining(t *testing.T) {
	a := newAgenda(FIFO)
	a.push(Edge{Start: 1})
	e, ok := a.pop()
	require.True(t, ok)
	require.Equal(t, 1, e.Start)

	a.push(Edge{Start: 2})
	a.push(Edge{Start: 3})
	require.Equal(t, []int{2, 3}, drain(a))
}

func TestParseOrder(t *testing.T) {
	for name, want := range map[string]Order{"lifo": LIFO, "FIFO": FIFO, "stack": LIFO, "queue": FIFO} {
		got, err := ParseOrder(name)
		require.NoError(t, err)
		require.Equal(t, want, got, name)
	}
	_, err := ParseOrder("random")
	require.Error(t, err)
	require.Equal(t, "Order(9)", Order(9).String())
}
