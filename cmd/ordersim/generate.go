package main

import (
	"encoding/json"
	"fmt"
	"math"
	"math/rand/v2"
	"os"

	"ordersim/internal/order"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// foods is the menu generated orders draw from. Shelf lives are jittered
// around the base per draw.
var foods = []struct {
	name string
	temp order.Temp
	life int
}{
	{"icecream", order.Cold, 25},
	{"soup", order.Hot, 50},
	{"pizza", order.Frozen, 100},
}

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a random orders file",
		RunE: func(cmd *cobra.Command, args []string) error {
			count, _ := cmd.Flags().GetInt("count")
			seed, _ := cmd.Flags().GetUint64("seed")
			out, _ := cmd.Flags().GetString("out")

			if count <= 0 {
				return fmt.Errorf("count must be positive, got %d", count)
			}
			data, err := json.MarshalIndent(randomOrders(count, seed), "", "  ")
			if err != nil {
				return fmt.Errorf("encode orders: %w", err)
			}
			data = append(data, '\n')

			if out == "" {
				_, err := os.Stdout.Write(data)
				return err
			}
			if err := os.WriteFile(out, data, 0644); err != nil {
				return fmt.Errorf("write orders file: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().Int("count", 20, "number of orders to generate")
	cmd.Flags().Uint64("seed", 0, "seed for the numeric draws (0 seeds from the clock)")
	cmd.Flags().String("out", "", "output file (default stdout)")
	return cmd
}

// randomOrders draws count orders from the foods table. The seed
// governs the numeric draws; names carry a petname adjective and stay
// random either way.
func randomOrders(count int, seed uint64) []order.Order {
	if seed == 0 {
		seed = rand.Uint64()
	}
	rng := rand.New(rand.NewPCG(seed, seed))
	petname.NonDeterministicMode()

	orders := make([]order.Order, 0, count)
	for range count {
		f := foods[rng.IntN(len(foods))]
		orders = append(orders, order.Order{
			ID:        uuid.New().String(),
			Name:      petname.Adjective() + " " + f.name,
			Temp:      f.temp,
			ShelfLife: f.life/2 + rng.IntN(f.life),
			DecayRate: math.Round((0.05+0.5*rng.Float64())*100) / 100,
		})
	}
	return orders
}
