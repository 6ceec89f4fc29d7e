package status

import (
	"sync/atomic"
	"unicode/utf8"
)

// MaxStringLen bounds a string metric in bytes
const MaxStringLen = 32

// AtomicString is a short string metric such as a state name
// The zero value reads ""
type AtomicString struct {
	ptr atomic.Pointer[string]
}

// Store replaces the value, cutting it to MaxStringLen on a rune boundary
func (s *AtomicString) Store(val string) {
	if len(val) > MaxStringLen {
		cut := MaxStringLen
		for cut > 0 && !utf8.RuneStart(val[cut]) {
			cut--
		}
		val = val[:cut]
	}
	s.ptr.Store(&val)
}

// Load returns the value
func (s *AtomicString) Load() string {
	if p := s.ptr.Load(); p != nil {
		return *p
	}
	return ""
}
