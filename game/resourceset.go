// Package game holds the domain value types shared by the Colony message
// layer: the resource set carried by trade and discard messages, and the
// game-state constants broadcast by the arbiter.
package game

import "fmt"

// ResourceKind identifies one of the six resource slots.
// The order is part of the wire format and must never change;
// new kinds may only be appended.
type ResourceKind int

// Resource kinds, in wire order.
const (
	Brick ResourceKind = iota
	Ore
	Wool
	Grain
	Lumber
	Unknown
)

// Kinds lists all resource kinds in wire order.
var Kinds = [...]ResourceKind{Brick, Ore, Wool, Grain, Lumber, Unknown}

// String returns the lowercase name of the resource kind.
func (k ResourceKind) String() string {
	switch k {
	case Brick:
		return "brick"
	case Ore:
		return "ore"
	case Wool:
		return "wool"
	case Grain:
		return "grain"
	case Lumber:
		return "lumber"
	case Unknown:
		return "unknown"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ResourceSet is a fixed vector of six resource counts.
// It is an immutable value: construct one with NewResourceSet and read
// counts with Amount. The codec does not interpret the counts, so
// negative values are carried as-is; validating totals is the rules
// engine's job.
type ResourceSet struct {
	amounts [len(Kinds)]int
}

// NewResourceSet builds a resource set from six counts in wire order.
func NewResourceSet(brick, ore, wool, grain, lumber, unknown int) ResourceSet {
	return ResourceSet{amounts: [...]int{brick, ore, wool, grain, lumber, unknown}}
}

// Amount returns the count for the given kind, or 0 for an out-of-range kind.
func (s ResourceSet) Amount(k ResourceKind) int {
	if k < 0 || int(k) >= len(s.amounts) {
		return 0
	}
	return s.amounts[k]
}

// Total returns the sum of all six counts.
func (s ResourceSet) Total() int {
	total := 0
	for _, n := range s.amounts {
		total += n
	}
	return total
}

// String returns the diagnostic form "brick=N|ore=N|wool=N|grain=N|lumber=N|unknown=N".
func (s ResourceSet) String() string {
	return fmt.Sprintf("brick=%d|ore=%d|wool=%d|grain=%d|lumber=%d|unknown=%d",
		s.amounts[Brick], s.amounts[Ore], s.amounts[Wool],
		s.amounts[Grain], s.amounts[Lumber], s.amounts[Unknown])
}
