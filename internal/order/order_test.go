package order

import (
	"strings"
	"testing"

	"ordersim/internal/shelf"
)

func TestTempShelf(t *testing.T) {
	tests := []struct {
		temp Temp
		want shelf.Kind
	}{
		{Hot, shelf.Hot},
		{Cold, shelf.Cold},
		{Frozen, shelf.Frozen},
	}
	for _, tt := range tests {
		if got := tt.temp.Shelf(); got != tt.want {
			t.Errorf("Shelf(%q) = %q, want %q", tt.temp, got, tt.want)
		}
	}
}

func TestOrderValidate(t *testing.T) {
	valid := Order{ID: "1", Name: "Soup", Temp: Hot, ShelfLife: 100, DecayRate: 0.5}

	tests := []struct {
		name    string
		mutate  func(*Order)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(*Order) {},
		},
		{
			name:   "zero decay rate allowed",
			mutate: func(o *Order) { o.DecayRate = 0 },
		},
		{
			name:    "unknown temp",
			mutate:  func(o *Order) { o.Temp = "lukewarm" },
			wantErr: "unknown temp",
		},
		{
			name:    "zero shelf life",
			mutate:  func(o *Order) { o.ShelfLife = 0 },
			wantErr: "shelfLife must be positive",
		},
		{
			name:    "negative shelf life",
			mutate:  func(o *Order) { o.ShelfLife = -5 },
			wantErr: "shelfLife must be positive",
		},
		{
			name:    "negative decay rate",
			mutate:  func(o *Order) { o.DecayRate = -0.1 },
			wantErr: "decayRate must not be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := valid
			tt.mutate(&o)
			err := o.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}
