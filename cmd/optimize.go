package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/burnwise/burnsched/analysis"
	"github.com/burnwise/burnsched/config"
	"github.com/burnwise/burnsched/core/model"
	"github.com/burnwise/burnsched/infra/logger"
	"github.com/burnwise/burnsched/simulator"
)

var (
	optScenario string
	optSeed     int64
	optGenerate int
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Run a one-shot schedule optimization",
	RunE:  optimize,
}

func init() {
	optimizeCmd.Flags().StringVar(&optScenario, "scenario", "", "scenario file (overrides config)")
	optimizeCmd.Flags().Int64Var(&optSeed, "seed", 0, "rng seed (0 = time-derived)")
	optimizeCmd.Flags().IntVar(&optGenerate, "generate", 0, "generate N synthetic burns instead of loading a scenario")
	rootCmd.AddCommand(optimizeCmd)
}

func optimize(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg.Logging.Apply()
	logg := logger.New("optimize-command")

	obj, err := cfg.Objective.Build(cfg.Exposure)
	if err != nil {
		return fmt.Errorf("build objective: %w", err)
	}

	var initial model.Schedule
	if optGenerate > 0 {
		initial = simulator.Generate(simulator.Config{Events: optGenerate, Seed: optSeed, Day: time.Now()})
	} else {
		scenario := cfg.Scenario
		if optScenario != "" {
			scenario.Path = optScenario
		}
		initial, err = scenario.LoadSchedule()
		if err != nil {
			return fmt.Errorf("load scenario: %w", err)
		}
	}

	seeds := cfg.Scenario.Seeds
	if optSeed != 0 {
		seeds = []int64{optSeed}
	}
	if len(seeds) == 0 {
		seeds = []int64{time.Now().UnixNano()}
	}

	runner := analysis.Runner{Cfg: cfg.Annealing, Objective: obj, Log: logg}
	results, err := runner.Run(ctx, initial, seeds)
	if err != nil {
		return err
	}
	summary := analysis.Summarize(results)

	before := obj.Rule.Count(initial)
	fmt.Fprintf(cmd.OutOrStdout(), "runs: %d\nbest score: %.1f (mean %.1f, stddev %.1f)\n",
		summary.Runs, summary.MaxBest, summary.MeanBest, summary.StdDevBest)
	for _, res := range results {
		fmt.Fprintf(cmd.OutOrStdout(), "run %s: %.1f -> %.1f in %d iterations, conflicts %d -> %d\n",
			res.RunID, res.InitialScore, res.BestScore, res.Iterations,
			before, obj.Rule.Count(res.Best))
	}
	return nil
}
