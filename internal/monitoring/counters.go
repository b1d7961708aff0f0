package monitoring

import (
	"sort"
	"sync"
	"sync/atomic"
)

// Counter is a named monotonic diagnostic counter. Counters are safe for
// concurrent use so internals can increment them while an operator polls a
// snapshot.
type Counter struct {
	name string
	v    atomic.Int64
}

// Name returns the counter's registry name.
func (c *Counter) Name() string { return c.name }

// Add increments the counter by n.
func (c *Counter) Add(n int64) { c.v.Add(n) }

// Inc increments the counter by one.
func (c *Counter) Inc() { c.v.Add(1) }

// Value returns the current count.
func (c *Counter) Value() int64 { return c.v.Load() }

// Reset zeros the counter. Intended for tests and A/B sweeps only.
func (c *Counter) Reset() { c.v.Store(0) }

var (
	countersMu sync.Mutex
	counters   = map[string]*Counter{}
)

// NewCounter returns the counter registered under name, creating it on
// first use. Repeated calls with the same name share one counter.
func NewCounter(name string) *Counter {
	countersMu.Lock()
	defer countersMu.Unlock()
	if c, ok := counters[name]; ok {
		return c
	}
	c := &Counter{name: name}
	counters[name] = c
	return c
}

// Snapshot returns the current value of every registered counter, keyed by
// name. The returned map is a copy and safe for the caller to inspect.
func Snapshot() map[string]int64 {
	countersMu.Lock()
	defer countersMu.Unlock()
	out := make(map[string]int64, len(counters))
	for name, c := range counters {
		out[name] = c.Value()
	}
	return out
}

// Names returns the registered counter names in sorted order.
func Names() []string {
	countersMu.Lock()
	defer countersMu.Unlock()
	names := make([]string, 0, len(counters))
	for name := range counters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
