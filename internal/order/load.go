package order

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// DefaultIntakeLimit is the historical cap on how many orders one run
// accepts from the input file.
const DefaultIntakeLimit = 13

// LoadFile reads a JSON array of orders. The array must contain objects
// with exactly the Order fields; unknown keys and trailing data are
// rejected. A limit > 0 truncates the list to its first entries before
// validation, so a run never fails on orders it would not accept.
func LoadFile(path string, limit int) ([]Order, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read orders file: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var orders []Order
	if err := dec.Decode(&orders); err != nil {
		return nil, fmt.Errorf("parse orders file: %w", err)
	}
	if dec.More() {
		return nil, fmt.Errorf("parse orders file: trailing data after the orders array")
	}

	if limit > 0 && len(orders) > limit {
		orders = orders[:limit]
	}
	for i, o := range orders {
		if err := o.Validate(); err != nil {
			return nil, fmt.Errorf("order %d (%s): %w", i, o.ID, err)
		}
	}
	return orders, nil
}
