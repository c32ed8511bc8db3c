package iwp

import "github.com/luiz-couto/image-processing-iwp/pixelgrid"

// Queue is a FIFO of pixel coordinates with amortised O(1) push and pop,
// backed by a growable ring buffer. Spec note: the historical reference
// source repeatedly removed from the head of a plain slice (O(n) per pop);
// this type is the fix spec.md §9 calls for.
//
// Duplicates are permitted — Run and RunParallel tolerate them by design
// (spec.md §3) — but NewQueue dedupes its initial seed set, matching the
// HashSet-then-drain seeding idiom both client algorithms use.
type Queue struct {
	buf        []pixelgrid.Coord
	head, tail int
	size       int
}

// NewQueue builds a Queue pre-loaded with the given seeds, deduplicated in
// their original order (first occurrence wins).
// Complexity: O(len(seeds)).
func NewQueue(seeds []pixelgrid.Coord) *Queue {
	seen := make(map[pixelgrid.Coord]struct{}, len(seeds))
	deduped := make([]pixelgrid.Coord, 0, len(seeds))
	for _, c := range seeds {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		deduped = append(deduped, c)
	}

	cap := nextPow2(len(deduped) + 1)
	q := &Queue{buf: make([]pixelgrid.Coord, cap)}
	for _, c := range deduped {
		q.Push(c)
	}

	return q
}

// Len returns the number of pending coordinates.
func (q *Queue) Len() int { return q.size }

// Push enqueues c at the tail, growing the backing buffer if full.
// Complexity: amortised O(1).
func (q *Queue) Push(c pixelgrid.Coord) {
	if q.size == len(q.buf) {
		q.grow()
	}
	q.buf[q.tail] = c
	q.tail = (q.tail + 1) % len(q.buf)
	q.size++
}

// Pop removes and returns the coordinate at the head. The second return
// value is false if the queue is empty.
// Complexity: O(1).
func (q *Queue) Pop() (pixelgrid.Coord, bool) {
	if q.size == 0 {
		return pixelgrid.Coord{}, false
	}
	c := q.buf[q.head]
	q.head = (q.head + 1) % len(q.buf)
	q.size--

	return c, true
}

func (q *Queue) grow() {
	newCap := len(q.buf) * 2
	if newCap == 0 {
		newCap = 1
	}
	newBuf := make([]pixelgrid.Coord, newCap)
	for i := 0; i < q.size; i++ {
		newBuf[i] = q.buf[(q.head+i)%len(q.buf)]
	}
	q.buf = newBuf
	q.head, q.tail = 0, q.size
}

func nextPow2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}

	return p
}
