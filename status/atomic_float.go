package status

import (
	"math"
	"sync/atomic"
)

// AtomicFloat is a float64 metric stored as its IEEE bits
// The zero value reads 0
type AtomicFloat struct {
	bits atomic.Uint64
}

// Set overwrites the value
func (f *AtomicFloat) Set(val float64) {
	f.bits.Store(math.Float64bits(val))
}

// Get returns the value
func (f *AtomicFloat) Get() float64 {
	return math.Float64frombits(f.bits.Load())
}

// Max raises the value to val if val is larger, returning the resulting value
// NaN is ignored
func (f *AtomicFloat) Max(val float64) float64 {
	for {
		old := f.bits.Load()
		cur := math.Float64frombits(old)
		if math.IsNaN(val) || val <= cur {
			return cur
		}
		if f.bits.CompareAndSwap(old, math.Float64bits(val)) {
			return val
		}
	}
}
