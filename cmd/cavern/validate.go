package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/cavern/internal/config"
	"github.com/vovakirdan/cavern/internal/validate"
)

var (
	flagFrom           uint32
	flagTo             uint32
	flagWorkers        int
	flagTimeout        int
	flagValidateConfig string
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a range of levels for fairness",
	Long: `Generate every level in a range and check it against the fairness
rules: the trophy and exit must exist, sit on solid ground, and be
reachable from the start; hazards must leave safe landing spots and
stay below the density cap.

The command exits non-zero if any level fails, so it can gate tuning
changes in CI.

Examples:
  cavern validate
  cavern validate --from 1 --to 100000
  cavern validate --workers 4 --timeout 300
  cavern validate --config ./my-cavern.yaml`,
	Run: runValidate,
}

func init() {
	validateCmd.Flags().Uint32Var(&flagFrom, "from", 1, "First level to check")
	validateCmd.Flags().Uint32Var(&flagTo, "to", 10000, "Last level to check")
	validateCmd.Flags().IntVar(&flagWorkers, "workers", 0, "Worker count (0 = number of CPUs)")
	validateCmd.Flags().IntVar(&flagTimeout, "timeout", 0, "Timeout in seconds (0 = no timeout)")
	validateCmd.Flags().StringVar(&flagValidateConfig, "config", "", "Path to custom game config YAML")
}

func runValidate(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "validate",
	})

	if flagFrom > flagTo {
		logger.Error("invalid range", "from", flagFrom, "to", flagTo)
		os.Exit(1)
	}

	cfg, err := config.Load(flagValidateConfig)
	if err != nil {
		logger.Error("cannot load config", "error", err)
		os.Exit(1)
	}

	opts := validate.DefaultOptions()
	opts.Workers = flagWorkers
	opts.Params = cfg.GenParams()
	opts.Envelope = cfg.Envelope()

	ctx := context.Background()
	if flagTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(flagTimeout)*time.Second)
		defer cancel()
	}

	logger.Info("checking levels", "from", flagFrom, "to", flagTo, "workers", opts.Workers)
	startTime := time.Now()

	result, runErr := validate.Run(ctx, flagFrom, flagTo, opts)
	if runErr != nil {
		logger.Warn("run stopped early", "error", runErr, "checked", result.Checked)
	}

	for _, report := range result.Reports {
		for _, f := range report.Findings {
			logger.Error("level failed", "seed", report.Seed, "code", f.Code, "detail", f.Message)
		}
	}

	logger.Info("done",
		"checked", result.Checked,
		"failed", result.Failed,
		"elapsed", time.Since(startTime).Round(time.Millisecond),
	)

	if result.Failed > 0 {
		fmt.Fprintf(os.Stderr, "%d of %d levels failed validation\n", result.Failed, result.Checked)
		os.Exit(1)
	}
	if runErr != nil {
		os.Exit(1)
	}
}
