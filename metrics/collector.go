package metrics

import (
	"sync"

	"github.com/katalvlaran/majority/majority"
)

// Observer receives every record added to a Collector.
type Observer interface {
	Observe(m majority.Metrics)
}

// NopObserver discards every record.
type NopObserver struct{}

// Compile-time assertion that NopObserver implements Observer.
var _ Observer = NopObserver{}

// Observe implements Observer.
func (NopObserver) Observe(majority.Metrics) {}

// Collector is an append-only, concurrency-safe log of benchmark records.
// The zero value is ready to use and has no observers.
type Collector struct {
	mu        sync.Mutex
	records   []majority.Metrics
	observers []Observer
}

// NewCollector returns an empty Collector that forwards to obs (nil entries
// are skipped).
func NewCollector(obs ...Observer) *Collector {
	c := &Collector{}
	for _, o := range obs {
		if o != nil {
			c.observers = append(c.observers, o)
		}
	}
	return c
}

// Add appends m and forwards it to every observer.
func (c *Collector) Add(m majority.Metrics) {
	c.mu.Lock()
	c.records = append(c.records, m)
	observers := c.observers
	c.mu.Unlock()

	for _, o := range observers {
		o.Observe(m)
	}
}

// Records returns a copy of all records in insertion order.
func (c *Collector) Records() []majority.Metrics {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]majority.Metrics, len(c.records))
	copy(out, c.records)
	return out
}

// Len returns the number of records.
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.records)
}

// Reset drops all records. Observers are kept.
func (c *Collector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records = nil
}
