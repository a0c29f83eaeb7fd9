package cache

import "github.com/segmentio/containers/container/list"

// LRU is an Interface implementation which caches elements and tracks least
// recently used items as candidates for eviction.
//
// Entries are held in a list ordered from the most to the least recently
// used, and the index maps keys to their position in the list. Recording a use
// relinks the entry's node to the front of the list, so positions held by the
// index are never invalidated.
//
// The zero-value is a valid, unbounded cache.
type LRU[K comparable, V any] struct {
	capacity int
	index    map[K]list.Iterator[entry[K, V]]
	queue    list.List[entry[K, V]]
}

type entry[K comparable, V any] struct {
	key   K
	value V
}

// New constructs a new LRU cache, using the list of options passed as
// arguments to configure it.
func New[K comparable, V any](options ...Option) *LRU[K, V] {
	config := DefaultConfig()
	config.Apply(options...)
	return NewWithConfig[K, V](config)
}

// NewWithConfig is like New but uses a Config instance to pass the cache
// configuration instead of a list of options.
func NewWithConfig[K comparable, V any](config *Config) *LRU[K, V] {
	return &LRU[K, V]{capacity: max(config.Capacity, 0)}
}

func (lru *LRU[K, V]) Len() int {
	return lru.queue.Len()
}

func (lru *LRU[K, V]) Insert(key K, value V) (previous V, replaced bool) {
	if lru.index == nil {
		lru.index = make(map[K]list.Iterator[entry[K, V]])
	}
	if it, ok := lru.index[key]; ok {
		previous, replaced = it.Value().value, true
		it.Ptr().value = value
		lru.queue.MoveToFront(it)
		return previous, replaced
	}
	for lru.capacity > 0 && lru.queue.Len() >= lru.capacity {
		lru.Evict()
	}
	lru.queue.PushFront(entry[K, V]{key: key, value: value})
	lru.index[key] = lru.queue.Begin()
	return previous, replaced
}

func (lru *LRU[K, V]) Lookup(key K) (value V, found bool) {
	if it, ok := lru.index[key]; ok {
		lru.queue.MoveToFront(it)
		value, found = it.Value().value, true
	}
	return value, found
}

func (lru *LRU[K, V]) Delete(key K) (value V, deleted bool) {
	if it, ok := lru.index[key]; ok {
		delete(lru.index, key)
		value, deleted = it.Value().value, true
		// Positions held by the index always point at elements of the queue,
		// which Erase never rejects.
		_, _ = lru.queue.Erase(it)
	}
	return value, deleted
}

func (lru *LRU[K, V]) Evict() (key K, value V, evicted bool) {
	e, err := lru.queue.PopBack()
	if err != nil {
		return key, value, false
	}
	delete(lru.index, e.key)
	return e.key, e.value, true
}

// Range calls f for each entry in the cache, from the most to the least
// recently used. Ranging does not count as a use of the entries.
func (lru *LRU[K, V]) Range(f func(K, V) bool) {
	lru.queue.Range(func(e entry[K, V]) bool { return f(e.key, e.value) })
}
