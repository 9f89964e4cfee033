package main

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestRandomOrders(t *testing.T) {
	orders := randomOrders(30, 7)
	if len(orders) != 30 {
		t.Fatalf("generated %d orders, want 30", len(orders))
	}

	seen := make(map[string]bool)
	for i, o := range orders {
		if err := o.Validate(); err != nil {
			t.Errorf("order %d invalid: %v", i, err)
		}
		if _, err := uuid.Parse(o.ID); err != nil {
			t.Errorf("order %d id %q is not a uuid: %v", i, o.ID, err)
		}
		if seen[o.ID] {
			t.Errorf("order %d reuses id %q", i, o.ID)
		}
		seen[o.ID] = true

		matched := false
		for _, f := range foods {
			if strings.HasSuffix(o.Name, f.name) {
				matched = true
				if o.Temp != f.temp {
					t.Errorf("order %d (%s) temp = %s, want %s", i, o.Name, o.Temp, f.temp)
				}
			}
		}
		if !matched {
			t.Errorf("order %d name %q names no menu item", i, o.Name)
		}
	}
}

func TestRandomOrdersSeedGovernsNumericDraws(t *testing.T) {
	a := randomOrders(10, 42)
	b := randomOrders(10, 42)
	for i := range a {
		if a[i].Temp != b[i].Temp {
			t.Errorf("order %d temp %s != %s for equal seeds", i, a[i].Temp, b[i].Temp)
		}
		if a[i].ShelfLife != b[i].ShelfLife {
			t.Errorf("order %d shelfLife %d != %d for equal seeds", i, a[i].ShelfLife, b[i].ShelfLife)
		}
		if a[i].DecayRate != b[i].DecayRate {
			t.Errorf("order %d decayRate %g != %g for equal seeds", i, a[i].DecayRate, b[i].DecayRate)
		}
	}
}
