package model

import (
	"fmt"
	"strings"
)

// Strategy selects how leaf values are generated.
type Strategy int

const (
	// StrategyDefault emits fixed, deterministic values.
	StrategyDefault Strategy = iota
	// StrategyRandom draws values from an injected random source.
	StrategyRandom
)

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case StrategyDefault:
		return "default"
	case StrategyRandom:
		return "random"
	default:
		return "invalid"
	}
}

// ParseStrategy parses a strategy name; empty means StrategyDefault.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "default":
		return StrategyDefault, nil
	case "random":
		return StrategyRandom, nil
	default:
		return StrategyDefault, fmt.Errorf("unknown strategy %q (want default or random)", s)
	}
}

// Counter hands out increasing identifiers within one synthesis request.
// It is not safe for concurrent use; every request owns its own Counter.
type Counter struct {
	n int
}

// Next returns the next identifier, starting at 1.
func (c *Counter) Next() int {
	c.n++

	return c.n
}

// Request is the top-level input of one synthesis.
type Request struct {
	ItemCount int
	Strategy  Strategy
	Counter   *Counter
}

// NewRequest returns a request with a fresh counter.
func NewRequest(itemCount int, strategy Strategy) Request {
	return Request{ItemCount: itemCount, Strategy: strategy, Counter: &Counter{}}
}
