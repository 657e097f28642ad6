package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/tools/txtar"

	"github.com/ajroetker/go-cfv/cfv"
)

const (
	readmeName = "README.md"
	bundleName = "reports.txtar"
)

// Table returns the Markdown table of the result, one row per function.
func (res *Result) Table() string {
	join := func(cols []string) string {
		return strings.Join(append(append([]string{""}, cols...), ""), " | ")
	}
	labels := res.Plan.Labels()
	align := append([]string{":----"}, lo.Times(len(labels)-1, func(int) string { return ":----:" })...)

	rows := []string{join(labels), join(align)}
	for i, fn := range res.Plan.Functions {
		cols := append([]string{fn}, lo.Map(res.Cells[i], func(c Cell, _ int) string { return c.Text() })...)
		rows = append(rows, join(cols))
	}
	return strings.Join(rows, "\n")
}

// Readme returns the Markdown summary of the result.
func (res *Result) Readme() string {
	versions := lo.Map(res.Plan.Libraries(), func(lib cfv.Library, _ int) string {
		v, ok := lib.Version()
		if !ok {
			v = "unknown version"
		}
		return fmt.Sprintf("- %s %s", lib.Name(), v)
	})
	ref := res.Plan.Reference
	return fmt.Sprintf(`
# Results

This document is generated by go-cfv, run %s.

Library versions:
%s

Reference library and dtype: %s, %v

## Table of match/inaccuracy/mismatch rates

%s
`, res.RunID, strings.Join(versions, "\n"), ref.Library.Name(), ref.Dtype, res.Table())
}

// Bundle returns every report of the result as one txtar archive.
func (res *Result) Bundle(targetDir string) (*txtar.Archive, error) {
	ar := &txtar.Archive{Comment: []byte(fmt.Sprintf("go-cfv run %s\n", res.RunID))}
	for _, name := range res.Files {
		data, err := os.ReadFile(filepath.Join(targetDir, name))
		if err != nil {
			return nil, fmt.Errorf("batch: bundle: %w", err)
		}
		if len(data) > 0 && data[len(data)-1] != '\n' {
			data = append(data, '\n')
		}
		ar.Files = append(ar.Files, txtar.File{Name: filepath.ToSlash(name), Data: data})
	}
	return ar, nil
}

func (r *Runner) writeSummary(res *Result) error {
	readme := filepath.Join(r.TargetDir, readmeName)
	if err := os.WriteFile(readme, []byte(res.Readme()), 0o644); err != nil {
		return fmt.Errorf("batch: %w", err)
	}
	ar, err := res.Bundle(r.TargetDir)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(r.TargetDir, bundleName), txtar.Format(ar), 0o644); err != nil {
		return fmt.Errorf("batch: %w", err)
	}
	return nil
}
