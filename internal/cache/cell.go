package cache

// Cell holds one piece of memoized device state.
//
// The sentinel passed to NewCell is stored on construction and on Reset.
// Because a reset is always followed by a forced change, the first Set after
// NewCell or Reset reports a change even when the new value equals the
// sentinel.
//
// The zero Cell is usable and behaves like NewCell with the zero value of T
// as sentinel.
type Cell[T comparable] struct {
	value    T
	sentinel T
	changed  bool
	clean    bool // false until the first Set after construction or Reset
}

// NewCell returns a cell holding sentinel that will report a change on the
// next Set.
func NewCell[T comparable](sentinel T) Cell[T] {
	return Cell[T]{value: sentinel, sentinel: sentinel}
}

// Set stores v and records whether it differs from the previous value.
func (c *Cell[T]) Set(v T) {
	c.changed = !c.clean || v != c.value
	c.value = v
	c.clean = true
}

// Get returns the stored value.
func (c *Cell[T]) Get() T {
	return c.value
}

// Changed reports whether the last Set changed the value.
func (c *Cell[T]) Changed() bool {
	return c.changed
}

// Reset restores the sentinel and forces the next Set to report a change.
func (c *Cell[T]) Reset() {
	c.value = c.sentinel
	c.changed = false
	c.clean = false
}
