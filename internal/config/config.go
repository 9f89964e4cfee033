// Package config loads and validates the kitchen configuration file.
//
// The file is a single JSON object with shelf capacities and the run's
// pacing parameters. Decoding is strict: unknown keys, missing keys and
// trailing data are all errors, so a typo in a config never silently
// falls back to a default.
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"ordersim/internal/shelf"
)

// Config is one run's immutable configuration.
type Config struct {
	Capacity           shelf.Capacity
	IntakeOrdersPerSec int
	PickupMinSec       int
	PickupMaxSec       int
	CleanupDelay       float64
}

// fileConfig mirrors Config with pointer fields so a missing key is
// distinguishable from a zero value.
type fileConfig struct {
	Capacity           *shelf.Capacity `json:"capacity"`
	IntakeOrdersPerSec *int            `json:"intake_orders_per_sec"`
	PickupMinSec       *int            `json:"pickup_min_sec"`
	PickupMaxSec       *int            `json:"pickup_max_sec"`
	CleanupDelay       *float64        `json:"cleanup_delay"`
}

// Load reads, decodes and validates the config file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var fc fileConfig
	if err := dec.Decode(&fc); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	if dec.More() {
		return nil, fmt.Errorf("parse config file: trailing data after the config object")
	}

	missing := ""
	switch {
	case fc.Capacity == nil:
		missing = "capacity"
	case fc.IntakeOrdersPerSec == nil:
		missing = "intake_orders_per_sec"
	case fc.PickupMinSec == nil:
		missing = "pickup_min_sec"
	case fc.PickupMaxSec == nil:
		missing = "pickup_max_sec"
	case fc.CleanupDelay == nil:
		missing = "cleanup_delay"
	}
	if missing != "" {
		return nil, fmt.Errorf("config file missing key %q", missing)
	}

	cfg := &Config{
		Capacity:           *fc.Capacity,
		IntakeOrdersPerSec: *fc.IntakeOrdersPerSec,
		PickupMinSec:       *fc.PickupMinSec,
		PickupMaxSec:       *fc.PickupMaxSec,
		CleanupDelay:       *fc.CleanupDelay,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the semantic constraints on an assembled Config.
func (c *Config) Validate() error {
	if err := c.Capacity.Validate(); err != nil {
		return fmt.Errorf("capacity: %w", err)
	}
	if c.IntakeOrdersPerSec <= 0 {
		return fmt.Errorf("intake_orders_per_sec must be positive, got %d", c.IntakeOrdersPerSec)
	}
	if c.PickupMinSec <= 0 {
		return fmt.Errorf("pickup_min_sec must be positive, got %d", c.PickupMinSec)
	}
	if c.PickupMaxSec < c.PickupMinSec {
		return fmt.Errorf("pickup_max_sec %d is below pickup_min_sec %d", c.PickupMaxSec, c.PickupMinSec)
	}
	if c.CleanupDelay <= 0 {
		return fmt.Errorf("cleanup_delay must be positive, got %g", c.CleanupDelay)
	}
	if c.CleanupInterval() <= 0 {
		return fmt.Errorf("cleanup_delay %g is below the 1ns timer resolution", c.CleanupDelay)
	}
	return nil
}

// IntakeInterval is the pause between consecutive order intakes.
func (c *Config) IntakeInterval() time.Duration {
	return time.Second / time.Duration(c.IntakeOrdersPerSec)
}

// CleanupInterval is the sweeper period. Validate guarantees it is
// positive.
func (c *Config) CleanupInterval() time.Duration {
	return time.Duration(c.CleanupDelay * float64(time.Second))
}

// PickupRange returns the inclusive bounds for courier wait draws.
func (c *Config) PickupRange() (min, max int) {
	return c.PickupMinSec, c.PickupMaxSec
}
