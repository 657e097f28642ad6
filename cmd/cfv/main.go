// Command cfv validates the elementary complex functions of numeric
// libraries against a reference and writes the accuracy reports.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ajroetker/go-cfv/internal/config"
	"github.com/ajroetker/go-cfv/internal/logging"
)

const defaultConfigPath = "cfv.yaml"

type options struct {
	verbose    bool
	configPath string

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "cfv",
		Short: "Validate complex elementary functions against a reference",
		Long: `cfv samples the complex plane, from the tiniest subnormal to the largest
finite value and the infinities, evaluates each function of each library,
and classifies every result against the reference library.

Run "cfv run" for the full table, "cfv report <function>" for one report.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			opts.cfg = cfg
			opts.logger, err = logging.New(logging.Verbose(cfg.Logging.Level, opts.verbose), cfg.Logging.JSON)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
	}
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose logging")
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", defaultConfigPath, "YAML configuration file")

	root.AddCommand(newRunCmd(opts))
	root.AddCommand(newReportCmd(opts))
	root.AddCommand(newHistoryCmd(opts))
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
