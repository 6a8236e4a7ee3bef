package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	sim "github.com/littlefield-sim/littlefield-sim/sim"
)

var (
	sweepRuns     int // number of consecutive seeds to simulate
	sweepParallel int // concurrency limit across runs
)

// sweepCmd runs the same scenario across consecutive seeds. Each run owns
// an independent Simulator, so runs parallelize freely; determinism holds
// per seed regardless of scheduling.
var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Run the same scenario across many seeds concurrently",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		cfg := buildConfig(cmd)
		results, err := runSweep(cfg, sweepRuns, sweepParallel)
		if err != nil {
			logrus.Fatalf("sweep failed: %v", err)
		}

		fmt.Println("=== Sweep Results ===")
		for i, r := range results {
			fmt.Printf("seed %-6d cash $%14.2f  revenue $%14.2f  completed %5d  avg lead %7.3f  warnings %d\n",
				cfg.Seed+int64(i), r.Summary.FinalCash, r.Summary.TotalRevenue,
				r.Summary.OrdersCompleted, r.Summary.AvgLeadTime, len(r.Warnings))
		}
	},
}

// runSweep simulates runs consecutive seeds starting at cfg.Seed, at most
// parallel at a time, and returns the results in seed order.
func runSweep(cfg sim.Config, runs, parallel int) ([]*sim.Result, error) {
	if runs < 1 {
		return nil, fmt.Errorf("sweep needs at least 1 run, got %d", runs)
	}
	if parallel < 1 {
		parallel = 1
	}

	results := make([]*sim.Result, runs)
	var g errgroup.Group
	g.SetLimit(parallel)
	for i := 0; i < runs; i++ {
		i := i
		runCfg := cfg
		runCfg.Seed = cfg.Seed + int64(i)
		g.Go(func() error {
			s, err := sim.NewSimulator(runCfg)
			if err != nil {
				return err
			}
			results[i] = s.Run()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
