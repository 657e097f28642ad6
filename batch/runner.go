// Package batch runs a plan of comparisons on a bounded worker pool and
// writes the per-cell reports, the Markdown summary and a txtar bundle of
// every report.
package batch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/go-cfv/cfv"
	"github.com/ajroetker/go-cfv/internal/store"
	"github.com/ajroetker/go-cfv/report"
)

// Size is a pair of sampler sizes.
type Size struct {
	Re, Im int
}

// Status is the outcome of one cell.
type Status int

const (
	// StatusOK means the cell was rated.
	StatusOK Status = iota
	// StatusNA means the candidate or reference is unavailable or does not
	// implement the function.
	StatusNA
	// StatusError means the evaluation or the report write failed.
	StatusError
)

var statusNames = [...]string{"ok", "n/a", "error"}

func (s Status) String() string { return statusNames[s] }

// Cell is the result of one (function, column) comparison.
type Cell struct {
	Function string
	Column   Column
	Status   Status
	Summary  cfv.Summary
	Rating   cfv.Rating
	// File is the report file name within the data directory.
	File string
	Err  error
}

// Text returns the table cell: "RATING: [m/i/x %](data/file)", "N/A" or
// "ERROR".
func (c Cell) Text() string {
	switch c.Status {
	case StatusNA:
		return "N/A"
	case StatusError:
		return "ERROR"
	}
	s := c.Summary
	return fmt.Sprintf("%s: [%.1f/%.1f/%.1f %%](data/%s)",
		c.Rating, s.MatchRate(), s.InaccuracyRate(), s.MismatchRate(), c.File)
}

// Recorder stores summary rows.
type Recorder interface {
	Record(ctx context.Context, rows []store.Row) error
}

// Runner executes plans.
type Runner struct {
	Logger    *zap.Logger
	TargetDir string

	ReportSize Size
	StatsSize  Size
	FTZ        cfv.FTZMode
	// Samples are the codes whose representative samples are listed in
	// each report.
	Samples []cfv.Code

	// Workers bounds the cells evaluated concurrently; values below one
	// mean one.
	Workers int

	// Recorder, when set, receives one row per cell.
	Recorder Recorder
}

// Result is a completed run.
type Result struct {
	RunID uuid.UUID
	Plan  Plan
	// Cells holds one row per plan function, one cell per plan column.
	Cells [][]Cell
	// Files lists the written paths relative to TargetDir.
	Files []string
}

// Run evaluates every cell of plan. A failing cell never stops the others.
// Cells that had not started when ctx is done fail with the context error,
// which Run also returns after writing the summary of the finished cells.
func (r *Runner) Run(ctx context.Context, plan Plan) (*Result, error) {
	logger := r.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	dataDir := filepath.Join(r.TargetDir, "data")
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("batch: %w", err)
	}

	res := &Result{RunID: uuid.New(), Plan: plan, Cells: make([][]Cell, len(plan.Functions))}
	logger = logger.With(zap.String("run", res.RunID.String()))
	logger.Info("starting run",
		zap.Int("functions", len(plan.Functions)),
		zap.Int("columns", len(plan.Columns)),
		zap.Int("workers", max(r.Workers, 1)))

	var g errgroup.Group
	g.SetLimit(max(r.Workers, 1))
	for i, fn := range plan.Functions {
		res.Cells[i] = make([]Cell, len(plan.Columns))
		for j, col := range plan.Columns {
			g.Go(func() error {
				cell := Cell{Function: fn, Column: col}
				if err := ctx.Err(); err != nil {
					cell.Status, cell.Err = StatusError, err
				} else {
					r.evaluate(logger, dataDir, plan.Reference, &cell)
				}
				res.Cells[i][j] = cell
				return nil
			})
		}
	}
	_ = g.Wait()

	for _, row := range res.Cells {
		for _, c := range row {
			if c.Status == StatusOK {
				res.Files = append(res.Files, filepath.Join("data", c.File))
			}
		}
	}
	if err := r.writeSummary(res); err != nil {
		return res, err
	}
	if r.Recorder != nil {
		if err := r.Recorder.Record(context.WithoutCancel(ctx), res.rows()); err != nil {
			return res, fmt.Errorf("batch: record history: %w", err)
		}
	}
	logger.Info("run finished", zap.Int("reports", len(res.Files)))
	return res, ctx.Err()
}

func (r *Runner) evaluate(logger *zap.Logger, dataDir string, refCol Column, cell *Cell) {
	ref, cand := refCol.Function(cell.Function), cell.Column.Function(cell.Function)
	log := logger.With(zap.String("function", cell.Function), zap.String("candidate", cand.Info().Slug()))

	for _, f := range []cfv.Function{ref, cand} {
		if err := f.Probe(); err != nil {
			cell.Err = err
			cell.Status = StatusError
			if errors.Is(err, cfv.ErrBackendUnavailable) || errors.Is(err, cfv.ErrUnsupportedFunction) {
				cell.Status = StatusNA
			}
			log.Debug("skipping cell", zap.Error(err))
			return
		}
	}

	start := time.Now()
	img := report.NewImage()
	opts := report.Options{SizeRe: r.ReportSize.Re, SizeIm: r.ReportSize.Im, FTZ: r.FTZ}
	if err := img.GenerateReport(ref, []cfv.Function{cand}, opts); err != nil {
		cell.Status, cell.Err = StatusError, err
		log.Warn("report failed", zap.Error(err))
		return
	}
	if len(r.Samples) > 0 {
		img.InsertSamples(report.End(1), report.At(0), r.Samples)
	}
	img.InsertText(report.End(0), report.At(0), "\nVersions:\n    "+version(ref))
	img.InsertText(report.End(0), report.At(0), "    "+version(cand)+"\n ")
	img.InsertLegend(report.End(0), report.At(10))

	cell.File = fmt.Sprintf("%s_%s_versus_%s.txt", cell.Function, ref.Info().Slug(), cand.Info().Slug())
	path := filepath.Join(dataDir, cell.File)
	if err := os.WriteFile(path, []byte(img.String()), 0o644); err != nil {
		cell.Status, cell.Err = StatusError, err
		log.Warn("write failed", zap.Error(err))
		return
	}
	log.Info("created report", zap.String("file", path))

	g, err := cfv.Build(ref, cand, cfv.BuildOptions{SizeRe: r.StatsSize.Re, SizeIm: r.StatsSize.Im, FTZ: r.FTZ})
	if err != nil {
		cell.Status, cell.Err = StatusError, err
		log.Warn("statistics failed", zap.Error(err))
		return
	}
	cell.Summary = g.Map.Stats.Summary()
	cell.Rating = cell.Summary.Rating()
	cell.Status = StatusOK
	log.Debug("rated cell", zap.String("rating", string(cell.Rating)), zap.Duration("elapsed", time.Since(start)))
}

func version(f cfv.Function) string {
	if v, ok := f.ModuleVersion(); ok {
		return v
	}
	return f.Info().Library + " (unknown version)"
}

func (res *Result) rows() []store.Row {
	now := time.Now()
	var rows []store.Row
	for _, row := range res.Cells {
		for _, c := range row {
			rows = append(rows, store.Row{
				RunID:          res.RunID.String(),
				Function:       c.Function,
				Reference:      res.Plan.Reference.Function(c.Function).Info().Slug(),
				Candidate:      c.Column.Function(c.Function).Info().Slug(),
				Status:         c.Status.String(),
				Rating:         string(c.Rating),
				MatchRate:      c.Summary.MatchRate(),
				InaccuracyRate: c.Summary.InaccuracyRate(),
				MismatchRate:   c.Summary.MismatchRate(),
				Report:         c.File,
				CreatedAt:      now,
			})
		}
	}
	return rows
}
