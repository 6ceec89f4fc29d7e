package config

import (
	"log"
	"strings"
)

// TimeLimit is the selectable session length
type TimeLimit uint8

const (
	LimitBeginner TimeLimit = iota
	LimitIntermediate
	LimitAdvanced
	TimeLimitCount
)

var limitNames = [TimeLimitCount]string{
	LimitBeginner:     "beginner",
	LimitIntermediate: "intermediate",
	LimitAdvanced:     "advanced",
}

func (l TimeLimit) String() string {
	if l < TimeLimitCount {
		return limitNames[l]
	}
	return "unknown"
}

// Valid reports whether l is one of the enumerated limits
func (l TimeLimit) Valid() bool {
	return l < TimeLimitCount
}

// ParseTimeLimit maps a name to a limit, falling back to beginner on unknown input
func ParseTimeLimit(name string) TimeLimit {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, v := range limitNames {
		if v == n {
			return TimeLimit(i)
		}
	}
	log.Printf("[config] unknown time limit %q, using %s", name, LimitBeginner)
	return LimitBeginner
}
