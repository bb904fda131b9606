package cache

// Map is a generic LRU map with a soft limit.
// When the map exceeds softLimit, the oldest entries are evicted.
//
// Map is not safe for concurrent use.
type Map[K comparable, V any] struct {
	entries   map[K]*mapEntry[V]
	softLimit int
	tick      int64 // monotonic access counter
	hits      uint64
	misses    uint64
}

type mapEntry[V any] struct {
	value V
	atime int64
}

// NewMap creates a map with the given soft limit.
// A softLimit of 0 means unlimited.
func NewMap[K comparable, V any](softLimit int) *Map[K, V] {
	return &Map[K, V]{
		entries:   make(map[K]*mapEntry[V]),
		softLimit: softLimit,
	}
}

// Get retrieves a value.
// Returns (value, true) if found, (zero, false) otherwise.
func (m *Map[K, V]) Get(key K) (V, bool) {
	entry, ok := m.entries[key]
	if !ok {
		m.misses++
		var zero V
		return zero, false
	}
	m.hits++
	m.tick++
	entry.atime = m.tick
	return entry.value, true
}

// Set stores a value, overwriting any previous value for key.
// If the map exceeds softLimit after insertion, oldest entries are evicted.
func (m *Map[K, V]) Set(key K, value V) {
	m.tick++
	if entry, ok := m.entries[key]; ok {
		entry.value = value
		entry.atime = m.tick
		return
	}
	m.entries[key] = &mapEntry[V]{value: value, atime: m.tick}
	if m.softLimit > 0 && len(m.entries) > m.softLimit {
		m.evictOldest()
	}
}

// Delete removes an entry. Returns true if the entry was present.
func (m *Map[K, V]) Delete(key K) bool {
	if _, ok := m.entries[key]; ok {
		delete(m.entries, key)
		return true
	}
	return false
}

// Clear removes all entries and resets statistics.
func (m *Map[K, V]) Clear() {
	m.entries = make(map[K]*mapEntry[V])
	m.tick = 0
	m.hits = 0
	m.misses = 0
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	return len(m.entries)
}

// Capacity returns the soft limit.
func (m *Map[K, V]) Capacity() int {
	return m.softLimit
}

// Stats returns map statistics.
func (m *Map[K, V]) Stats() Stats {
	return Stats{
		Len:      len(m.entries),
		Capacity: m.softLimit,
		Hits:     m.hits,
		Misses:   m.misses,
	}
}

// evictOldest removes entries until the map is at three quarters of the
// soft limit.
func (m *Map[K, V]) evictOldest() {
	targetSize := m.softLimit * 3 / 4
	if targetSize < 1 {
		targetSize = 1
	}
	toEvict := len(m.entries) - targetSize
	if toEvict <= 0 {
		return
	}

	type entry struct {
		key   K
		atime int64
	}
	entries := make([]entry, 0, len(m.entries))
	for key, e := range m.entries {
		entries = append(entries, entry{key: key, atime: e.atime})
	}

	// Partial selection sort, oldest first. Batches are small.
	for i := 0; i < toEvict && i < len(entries); i++ {
		minIdx := i
		for j := i + 1; j < len(entries); j++ {
			if entries[j].atime < entries[minIdx].atime {
				minIdx = j
			}
		}
		if minIdx != i {
			entries[i], entries[minIdx] = entries[minIdx], entries[i]
		}
		delete(m.entries, entries[i].key)
	}
}

// Stats contains map statistics.
type Stats struct {
	// Len is the current number of entries.
	Len int
	// Capacity is the soft limit.
	Capacity int
	// Hits is the number of successful lookups.
	Hits uint64
	// Misses is the number of failed lookups.
	Misses uint64
}
