// Package cache provides the small caching primitives used by scene
// execution.
//
// # Cell[T]
//
// A memoized state value with change tracking. Set reports a change only
// when the stored value differs from the new one, or when the cell was reset
// since the last Set.
//
//	c := cache.NewCell(math32.Inf(1))
//	c.Set(0.5)
//	if c.Changed() {
//	    dev.BlendColor(c.Get())
//	}
//
// # Map[K, V]
//
// A soft-limited map that evicts the least recently used quarter of its
// entries once the limit is exceeded.
//
//	m := cache.NewMap[key, device.Constant](4096)
//	m.Set(k, v)
//	v, ok := m.Get(k)
//
// # Thread Safety
//
// Neither type is safe for concurrent use. Both belong to a single render
// loop.
package cache
