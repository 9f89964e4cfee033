// Command ordersim replays an orders file through a simulated kitchen
// and reports what happened to every order.
//
// Logging:
//   - Base logger is created here with output format and level
//   - Logger is passed to all components via dependency injection
//   - No global slog configuration (no slog.SetDefault)
//   - Components scope loggers with their own attributes
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"time"

	"ordersim/internal/config"
	"ordersim/internal/kitchen"
	"ordersim/internal/logging"
	"ordersim/internal/order"
	"ordersim/internal/sched"
	"ordersim/internal/sysmetrics"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create base logger. The level is a LevelVar so the --debug_level
	// flag can take effect after cobra has parsed it.
	level := new(slog.LevelVar)
	level.Set(slog.LevelWarn)
	counter := logging.NewCountingHandler(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	logger := slog.New(counter)

	rootCmd := &cobra.Command{
		Use:   "ordersim",
		Short: "Kitchen order fulfillment simulator",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			pprofAddr, _ := cmd.Flags().GetString("pprof")
			if pprofAddr != "" {
				go func() {
					logger.Info("pprof server listening", "addr", pprofAddr)
					if err := http.ListenAndServe(pprofAddr, nil); err != nil {
						logger.Error("pprof server error", "error", err)
					}
				}()
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			debugLevel, _ := cmd.Flags().GetInt("debug_level")
			level.Set(logging.LevelFromDebug(debugLevel))

			ordersPath, _ := cmd.Flags().GetString("orders")
			configPath, _ := cmd.Flags().GetString("config")
			maxOrders, _ := cmd.Flags().GetInt("max-orders")
			reportEvery, _ := cmd.Flags().GetDuration("report-every")
			seed, _ := cmd.Flags().GetUint64("seed")

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
			defer cancel()

			return run(ctx, logger, counter, ordersPath, configPath, maxOrders, reportEvery, seed)
		},
	}

	rootCmd.PersistentFlags().String("pprof", "", "pprof HTTP server address (e.g. localhost:6060). WARNING: exposes CPU/memory profiles and goroutine dumps; bind to loopback only, never expose publicly")

	rootCmd.Flags().String("orders", "", "path to the orders JSON file")
	rootCmd.Flags().String("config", "", "path to the kitchen config JSON file")
	rootCmd.Flags().Int("debug_level", 0, "verbosity: 0 warnings and losses, 1 adds the order event stream, 2 adds courier bookkeeping")
	rootCmd.Flags().Int("max-orders", order.DefaultIntakeLimit, "accept at most this many orders from the file (0 = all)")
	rootCmd.Flags().Duration("report-every", 10*time.Second, "progress report interval (0 disables)")
	rootCmd.Flags().Uint64("seed", 0, "seed for courier wait draws (0 seeds from the clock)")
	_ = rootCmd.MarkFlagRequired("orders")
	_ = rootCmd.MarkFlagRequired("config")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	rootCmd.AddCommand(newGenerateCmd(), versionCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, counter *logging.CountingHandler, ordersPath, configPath string, maxOrders int, reportEvery time.Duration, seed uint64) error {
	// Tag every record of this run so interleaved invocations stay
	// distinguishable in shared sinks.
	logger = logger.With("run", uuid.New().String()[:8])

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	orders, err := order.LoadFile(ordersPath, maxOrders)
	if err != nil {
		return err
	}

	k := kitchen.New(orders, cfg, logger)
	if seed != 0 {
		k.Seed(seed)
	}

	var reporter *sched.Scheduler
	if reportEvery > 0 {
		reporter, err = sched.New(logger)
		if err != nil {
			return err
		}
		err = reporter.AddEvery("progress", reportEvery, func() { reportProgress(logger, k) })
		if err != nil {
			return err
		}
		reporter.Start()
	}

	runErr := k.Run(ctx)

	if reporter != nil {
		if err := reporter.Stop(); err != nil {
			logger.Warn("scheduler shutdown", "error", err)
		}
	}

	counts := counter.Counts()
	logger.Warn("log volume",
		"errors", counts[slog.LevelError],
		"warnings", counts[slog.LevelWarn],
		"infos", counts[slog.LevelInfo],
		"debugs", counts[slog.LevelDebug])
	return runErr
}

// reportProgress logs one snapshot of the kitchen and of the process.
func reportProgress(logger *slog.Logger, k *kitchen.Kitchen) {
	snap := k.Snapshot()
	sys := sysmetrics.Sample()
	logger.Info("progress",
		"total", snap.Totals.Total,
		"active", snap.Totals.Active,
		"delivered", snap.Totals.Delivered,
		"wasted", snap.Totals.Wasted,
		"shelves", snap.Shelves,
		"cpu_percent", sys.CPUPercent,
		"mem_bytes", sys.MemoryInuse,
		"goroutines", sys.Goroutines)
}
