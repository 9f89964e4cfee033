// Package order defines the order model: the immutable fields read from
// the input file, and the placement history an order accumulates as it
// moves between shelves during a run.
package order

import (
	"fmt"

	"ordersim/internal/shelf"
)

// Temp is the storage temperature an order asks for. It names the
// order's home shelf.
type Temp string

const (
	Hot    Temp = "hot"
	Cold   Temp = "cold"
	Frozen Temp = "frozen"
)

// Shelf returns the home shelf for this temperature.
func (t Temp) Shelf() shelf.Kind {
	return shelf.Kind(t)
}

// Order is one entry of the input file. All fields are immutable for
// the duration of a run.
type Order struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Temp      Temp    `json:"temp"`
	ShelfLife int     `json:"shelfLife"`
	DecayRate float64 `json:"decayRate"`
}

// Validate checks the ranges the simulation depends on: a known
// temperature, a positive shelf life (it divides the decay sum) and a
// non-negative decay rate. A zero decay rate is legal and means the
// order never loses value.
func (o Order) Validate() error {
	switch o.Temp {
	case Hot, Cold, Frozen:
	default:
		return fmt.Errorf("unknown temp %q", o.Temp)
	}
	if o.ShelfLife <= 0 {
		return fmt.Errorf("shelfLife must be positive, got %d", o.ShelfLife)
	}
	if o.DecayRate < 0 {
		return fmt.Errorf("decayRate must not be negative, got %v", o.DecayRate)
	}
	return nil
}

// decayModifier is the rate multiplier for time spent on shelf k:
// orders age at normal speed on their home shelf and twice as fast
// anywhere else.
func (o Order) decayModifier(k shelf.Kind) float64 {
	if k == o.Temp.Shelf() {
		return 1
	}
	return 2
}
