package iwp

import (
	"testing"

	"github.com/luiz-couto/image-processing-iwp/pixelgrid"
)

// TestQueue_FIFO verifies strict first-in-first-out ordering across a
// push/pop interleaving that forces the ring buffer to grow.
func TestQueue_FIFO(t *testing.T) {
	q := NewQueue(nil)
	for i := 0; i < 5; i++ {
		q.Push(pixelgrid.Coord{X: i, Y: 0})
	}

	for i := 0; i < 3; i++ {
		c, ok := q.Pop()
		if !ok || c.X != i {
			t.Fatalf("Pop() = (%v, %v); want (X=%d, true)", c, ok, i)
		}
	}

	for i := 5; i < 10; i++ {
		q.Push(pixelgrid.Coord{X: i, Y: 0})
	}

	want := []int{3, 4, 5, 6, 7, 8, 9}
	for _, w := range want {
		c, ok := q.Pop()
		if !ok || c.X != w {
			t.Fatalf("Pop() = (%v, %v); want (X=%d, true)", c, ok, w)
		}
	}

	if _, ok := q.Pop(); ok {
		t.Fatalf("Pop() on empty queue returned ok=true")
	}
}

// TestNewQueue_Dedup verifies that duplicate seeds collapse to their first
// occurrence, matching the dedup-then-drain seeding idiom of both client
// algorithms.
func TestNewQueue_Dedup(t *testing.T) {
	seeds := []pixelgrid.Coord{{X: 1, Y: 1}, {X: 2, Y: 2}, {X: 1, Y: 1}, {X: 3, Y: 3}}
	q := NewQueue(seeds)
	if q.Len() != 3 {
		t.Fatalf("Len() = %d; want 3", q.Len())
	}
}
