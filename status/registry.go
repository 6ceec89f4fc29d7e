package status

import (
	"fmt"
	"sync/atomic"
)

// Registry is the central metrics facade
// Systems cache pointers during init; tick code writes directly to atomics
type Registry struct {
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Reset zeroes every registered metric, keeping cached pointers valid
func (r *Registry) Reset() {
	r.Ints.Range(func(_ string, v *atomic.Int64) { v.Store(0) })
	r.Floats.Range(func(_ string, v *AtomicFloat) { v.Set(0) })
	r.Strings.Range(func(_ string, v *AtomicString) { v.Store("") })
}

// Snapshot flattens all metrics into formatted values keyed by name
func (r *Registry) Snapshot() map[string]string {
	out := make(map[string]string, r.TotalCount())
	r.Ints.Range(func(k string, v *atomic.Int64) {
		out[k] = fmt.Sprintf("%d", v.Load())
	})
	r.Floats.Range(func(k string, v *AtomicFloat) {
		out[k] = fmt.Sprintf("%.2f", v.Get())
	})
	r.Strings.Range(func(k string, v *AtomicString) {
		out[k] = v.Load()
	})
	return out
}
