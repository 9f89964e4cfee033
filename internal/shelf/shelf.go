// Package shelf defines the kitchen's shelf kinds and the occupancy
// bookkeeping the allocator works with.
//
// Four shelves have configured capacity: one per storage temperature
// plus the shared overflow shelf. Waste is a terminal pseudo-shelf with
// no capacity; orders moved there are lost but their records remain.
package shelf

import "fmt"

// Kind identifies one of the kitchen shelves.
type Kind string

const (
	Hot      Kind = "hot"
	Cold     Kind = "cold"
	Frozen   Kind = "frozen"
	Overflow Kind = "overflow"
	Waste    Kind = "waste"
)

// Temps returns the three temperature-controlled kinds in the order
// they appear in order files and configs.
func Temps() []Kind {
	return []Kind{Hot, Cold, Frozen}
}

// Capacity maps each real shelf to the maximum number of live orders it
// holds. Waste never appears here.
type Capacity map[Kind]int

// Validate checks that the table covers exactly the four real shelves,
// that no capacity is negative and that the overflow shelf can hold at
// least one order. Temperature shelves may be zero; such a shelf simply
// routes everything to overflow.
func (c Capacity) Validate() error {
	shelves := append(Temps(), Overflow)
	if len(c) != len(shelves) {
		return fmt.Errorf("capacity must define exactly %d shelves, got %d", len(shelves), len(c))
	}
	for _, k := range shelves {
		n, ok := c[k]
		if !ok {
			return fmt.Errorf("capacity missing shelf %q", k)
		}
		if n < 0 {
			return fmt.Errorf("capacity for shelf %q must not be negative, got %d", k, n)
		}
	}
	if c[Overflow] < 1 {
		return fmt.Errorf("overflow capacity must be at least 1, got %d", c[Overflow])
	}
	return nil
}

// Counts is an occupancy snapshot: live (non-closed) orders per real
// shelf, plus a tally of wasted orders under Waste. It is derived from
// the order table on demand, never cached.
type Counts map[Kind]int

// Full reports whether shelf k has no room left under capacity.
func (n Counts) Full(k Kind, capacity Capacity) bool {
	return n[k] >= capacity[k]
}

// Utilization returns the occupancy ratio of shelf k. A shelf with zero
// capacity reports 1: it is always full.
func (n Counts) Utilization(k Kind, capacity Capacity) float64 {
	if capacity[k] <= 0 {
		return 1
	}
	return float64(n[k]) / float64(capacity[k])
}
