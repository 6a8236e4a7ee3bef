package cmd

import (
	"encoding/json"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/littlefield-sim/littlefield-sim/sim"
)

var (
	// CLI flags mirroring sim.Config; defaults are the day-0 factory state.
	scenarioPath string // optional YAML scenario file
	outputPath   string // optional JSON result file
	logLevel     string // log verbosity level

	seed             int64
	endDay           float64
	startDay         int
	initialCash      float64
	interarrivalMean float64
	lotSize          int
	stuffers         int
	testers          int
	tuners           int
	contractID       int
	initialInventory int
	reorderPoint     int
	reorderQuantity  int
	priorityStep4    bool
	deferPurchases   bool
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "littlefield-sim",
	Short: "Discrete-event simulator for the Littlefield factory game",
}

// runCmd executes one simulation using the scenario file and/or CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one factory simulation",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		cfg := buildConfig(cmd)
		s, err := sim.NewSimulator(cfg)
		if err != nil {
			logrus.Fatalf("Invalid configuration: %v", err)
		}

		logrus.Infof("Starting simulation: seed=%d, days %d..%v, machines=%v",
			cfg.Seed, cfg.StartDay, cfg.EndDay, cfg.Machines)
		result := s.Run()
		result.Print()

		if outputPath != "" {
			if err := writeResult(outputPath, result); err != nil {
				logrus.Fatalf("unable to write result: %v", err)
			}
			logrus.Infof("Result written to %s", outputPath)
		}
	},
}

func setupLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// buildConfig layers the configuration: defaults, then the scenario file,
// then any flag explicitly set on the command line.
func buildConfig(cmd *cobra.Command) sim.Config {
	cfg := sim.DefaultConfig()
	if scenarioPath != "" {
		loaded, err := LoadScenario(scenarioPath)
		if err != nil {
			logrus.Fatalf("unable to read scenario: %v", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("end-day") {
		cfg.EndDay = endDay
	}
	if flags.Changed("start-day") {
		cfg.StartDay = startDay
	}
	if flags.Changed("initial-cash") {
		cfg.InitialCash = initialCash
	}
	if flags.Changed("interarrival-mean") {
		cfg.InterarrivalMean = interarrivalMean
	}
	if flags.Changed("lot-size") {
		cfg.LotSize = lotSize
	}
	if flags.Changed("stuffers") {
		cfg.Machines[0] = stuffers
	}
	if flags.Changed("testers") {
		cfg.Machines[1] = testers
	}
	if flags.Changed("tuners") {
		cfg.Machines[2] = tuners
	}
	if flags.Changed("contract") {
		cfg.Contract = contractID
	}
	if flags.Changed("initial-inventory") {
		cfg.InitialInventory = initialInventory
	}
	if flags.Changed("reorder-point") {
		cfg.ReorderPoint = reorderPoint
	}
	if flags.Changed("reorder-quantity") {
		cfg.ReorderQuantity = reorderQuantity
	}
	if flags.Changed("priority-step4") {
		cfg.PriorityRetest = priorityStep4
	}
	if flags.Changed("defer-purchases") {
		cfg.DeferPurchases = deferPurchases
	}
	return cfg
}

func writeResult(path string, result *sim.Result) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func addConfigFlags(cmd *cobra.Command) {
	defaults := sim.DefaultConfig()
	cmd.Flags().StringVar(&scenarioPath, "scenario", "", "YAML scenario file; flags override its values")
	cmd.Flags().Int64Var(&seed, "seed", defaults.Seed, "Random seed")
	cmd.Flags().Float64Var(&endDay, "end-day", defaults.EndDay, "Simulation horizon in days")
	cmd.Flags().IntVar(&startDay, "start-day", defaults.StartDay, "Simulated day the run starts at")
	cmd.Flags().Float64Var(&initialCash, "initial-cash", defaults.InitialCash, "Opening cash balance")
	cmd.Flags().Float64Var(&interarrivalMean, "interarrival-mean", defaults.InterarrivalMean, "Mean days between order arrivals")
	cmd.Flags().IntVar(&lotSize, "lot-size", defaults.LotSize, "Kits consumed per order")
	cmd.Flags().IntVar(&stuffers, "stuffers", defaults.Machines[0], "Initial machines at station 0")
	cmd.Flags().IntVar(&testers, "testers", defaults.Machines[1], "Initial machines at station 1")
	cmd.Flags().IntVar(&tuners, "tuners", defaults.Machines[2], "Initial machines at station 2")
	cmd.Flags().IntVar(&contractID, "contract", defaults.Contract, "Contract id (1, 2 or 3)")
	cmd.Flags().IntVar(&initialInventory, "initial-inventory", defaults.InitialInventory, "Opening kit inventory")
	cmd.Flags().IntVar(&reorderPoint, "reorder-point", defaults.ReorderPoint, "Inventory level that triggers replenishment")
	cmd.Flags().IntVar(&reorderQuantity, "reorder-quantity", defaults.ReorderQuantity, "Kits per replenishment shipment (0 disables)")
	cmd.Flags().BoolVar(&priorityStep4, "priority-step4", defaults.PriorityRetest, "Prioritize final-step orders at the shared station")
	cmd.Flags().BoolVar(&deferPurchases, "defer-purchases", defaults.DeferPurchases, "Retry unaffordable machine buys the next day")
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	addConfigFlags(runCmd)
	runCmd.Flags().StringVar(&outputPath, "output", "", "Write the full result document as JSON to this file")

	addConfigFlags(sweepCmd)
	sweepCmd.Flags().IntVar(&sweepRuns, "runs", 10, "Number of seeds to simulate")
	sweepCmd.Flags().IntVar(&sweepParallel, "parallel", 4, "Maximum concurrent runs")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(sweepCmd)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
}
