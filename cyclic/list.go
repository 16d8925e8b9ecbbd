// Package cyclic provides a restartable circular cursor over a fixed sequence.
package cyclic

// List walks a fixed sequence one step at a time, wrapping at the end
type List[T any] struct {
	items []T
	pos   int
}

// New copies items into a list positioned at the first element
func New[T any](items []T) *List[T] {
	cp := make([]T, len(items))
	copy(cp, items)
	return &List[T]{items: cp}
}

// Len returns the number of elements in the rotation
func (l *List[T]) Len() int {
	return len(l.items)
}

// Cur returns the element under the cursor, false if the list is empty
func (l *List[T]) Cur() (T, bool) {
	if len(l.items) == 0 {
		var zero T
		return zero, false
	}
	return l.items[l.pos], true
}

// Next advances the cursor one step, wrapping to the start, and returns the new current element
func (l *List[T]) Next() (T, bool) {
	if len(l.items) == 0 {
		var zero T
		return zero, false
	}
	l.pos = (l.pos + 1) % len(l.items)
	return l.items[l.pos], true
}

// Reset moves the cursor back to the first element
func (l *List[T]) Reset() {
	l.pos = 0
}
