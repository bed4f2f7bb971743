package day06

// Window is a fixed-capacity FIFO over the most recent elements of a stream.
// Pushing past capacity evicts the oldest element. Element counts are kept so
// Distinct answers in constant time.
type Window[T comparable] struct {
	buf    []T
	head   int
	size   int
	counts map[T]int
	dups   int
}

func NewWindow[T comparable](capacity int) *Window[T] {
	return &Window[T]{
		buf:    make([]T, max(capacity, 0)),
		counts: make(map[T]int, max(capacity, 0)),
	}
}

func (w *Window[T]) Cap() int {
	return len(w.buf)
}

func (w *Window[T]) Len() int {
	return w.size
}

func (w *Window[T]) Full() bool {
	return len(w.buf) > 0 && w.size == len(w.buf)
}

// Distinct reports whether all elements currently held are pairwise distinct.
func (w *Window[T]) Distinct() bool {
	return w.dups == 0
}

// Push appends e, evicting and returning the oldest element when full.
func (w *Window[T]) Push(e T) (evicted T, ok bool) {
	if len(w.buf) == 0 {
		return evicted, false
	}

	if w.Full() {
		evicted, ok = w.buf[w.head], true
		w.release(evicted)
		w.buf[w.head] = e
		w.head = (w.head + 1) % len(w.buf)
	} else {
		w.buf[(w.head+w.size)%len(w.buf)] = e
		w.size++
	}

	w.counts[e]++
	if w.counts[e] == 2 {
		w.dups++
	}
	return evicted, ok
}

func (w *Window[T]) release(e T) {
	w.counts[e]--
	switch w.counts[e] {
	case 1:
		w.dups--
	case 0:
		delete(w.counts, e)
	}
}

// Items returns the held elements, oldest first.
func (w *Window[T]) Items() []T {
	out := make([]T, 0, w.size)
	for i := range w.size {
		out = append(out, w.buf[(w.head+i)%len(w.buf)])
	}
	return out
}
