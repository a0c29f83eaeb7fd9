// Package cache contains caches built on the containers of this module.
//
// The types provided by the package do not synchronize access, which makes
// them unsafe to use concurrently from multiple goroutines. Programs that share
// a cache must guard it with their own synchronization, chosen to fit the
// access pattern of the application.
package cache

// Interface is the interface implemented by caches.
type Interface[K comparable, V any] interface {
	// Returns the number of items in the cache.
	Len() int

	// Inserts an item in the cache, returning the previous value associated
	// with the cache key.
	Insert(key K, value V) (previous V, replaced bool)

	// Returns the value associated with the given key in the cache.
	Lookup(key K) (value V, found bool)

	// Deletes an item from the cache.
	Delete(key K) (value V, deleted bool)

	// Evicts an item from the cache.
	Evict() (key K, value V, evicted bool)

	// Calls f for each entry in the cache. If f returns false, iteration
	// stops.
	Range(f func(K, V) bool)
}

// Config carries the configuration of a cache.
type Config struct {
	// Maximum number of entries held in the cache. Zero means unbounded.
	Capacity int
}

// DefaultConfig constructs a new Config instance initialized with the default
// configuration.
func DefaultConfig() *Config {
	return &Config{}
}

// Apply applies the list of options passed as arguments to c.
func (c *Config) Apply(options ...Option) {
	for _, opt := range options {
		opt.Configure(c)
	}
}

// Option is an interface implemented by options allowing configuration of new
// caches.
type Option interface {
	Configure(*Config)
}

type option func(*Config)

func (opt option) Configure(config *Config) { opt(config) }

// Capacity is a cache configuration option setting the maximum number of
// entries in the cache. Inserting beyond the capacity evicts entries.
//
// Default: 0 (unbounded)
func Capacity(n int) Option {
	return option(func(config *Config) { config.Capacity = n })
}
