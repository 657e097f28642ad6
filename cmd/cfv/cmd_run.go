package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ajroetker/go-cfv/batch"
	"github.com/ajroetker/go-cfv/cfv"
	"github.com/ajroetker/go-cfv/cfv/backend"
	"github.com/ajroetker/go-cfv/internal/config"
	"github.com/ajroetker/go-cfv/internal/store"
)

func newRunCmd(opts *options) *cobra.Command {
	var (
		targetDir string
		workers   int
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run every configured comparison and write the summary table",
		Long: `Evaluates every configured function of every configured library, dtype
and device against the reference. Writes one report per cell to
<target-dir>/data, the summary table to <target-dir>/README.md and all
reports to <target-dir>/reports.txtar.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.cfg
			if cmd.Flags().Changed("target-dir") {
				cfg.TargetDir = targetDir
			}
			if cmd.Flags().Changed("workers") {
				cfg.Workers = workers
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			res, err := runBatch(ctx, cfg, opts.logger)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "run %s: %d reports in %s\n", res.RunID, len(res.Files), cfg.TargetDir)
			return nil
		},
	}
	cmd.Flags().StringVar(&targetDir, "target-dir", "", "Directory receiving the results (overrides target_dir)")
	cmd.Flags().IntVarP(&workers, "workers", "j", 0, "Cells evaluated concurrently (overrides workers)")
	return cmd
}

func runBatch(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*batch.Result, error) {
	refLib, err := backend.Open(cfg.Reference.Library)
	if err != nil {
		return nil, err
	}
	var others []cfv.Library
	for _, name := range cfg.Libraries {
		lib, err := backend.Open(name)
		if err != nil {
			return nil, err
		}
		others = append(others, lib)
	}
	ref := batch.Column{Library: refLib, Dtype: cfg.ReferenceDtype(), Device: cfg.Reference.Device}
	plan := batch.NewPlan(ref, others, cfg.ParsedDtypes(), cfg.Functions)

	runner := &batch.Runner{
		Logger:     logger,
		TargetDir:  cfg.TargetDir,
		ReportSize: batch.Size{Re: cfg.ReportSize.Re, Im: cfg.ReportSize.Im},
		StatsSize:  batch.Size{Re: cfg.StatsSize.Re, Im: cfg.StatsSize.Im},
		FTZ:        cfg.FTZMode(),
		Samples:    cfg.SampleCodes(),
		Workers:    cfg.Workers,
	}
	if cfg.HistoryDB != "" {
		s, err := store.Open(cfg.HistoryDB)
		if err != nil {
			return nil, err
		}
		defer s.Close()
		runner.Recorder = s
	}
	return runner.Run(ctx, plan)
}
