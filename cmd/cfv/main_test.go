package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	for _, env := range []string{"CFV_TARGET_DIR", "CFV_WORKERS", "CFV_HISTORY_DB"} {
		t.Setenv(env, "")
	}
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "cfv.yaml")
	data := `target_dir: ` + filepath.Join(dir, "results") + `
functions: [exp, tan]
report_size: {re: 2, im: 2}
stats_size: {re: 3, im: 3}
workers: 2
libraries: [Decomposed]
dtypes: [complex64]
history_db: ` + filepath.Join(dir, "history.db") + `
logging:
  level: error
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func TestRunAndHistory(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeConfig(t, dir)

	out, err := execute(t, "run", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "4 reports in "+filepath.Join(dir, "results"))

	readme, err := os.ReadFile(filepath.Join(dir, "results", "README.md"))
	require.NoError(t, err)
	assert.Contains(t, string(readme), " | exp | PERFECT: ")

	out, err = execute(t, "history", "--config", cfgPath, "--function", "tan")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "TIME"), lines[0])
	assert.Contains(t, lines[1], "Decomposed_complex64_cpu")
	assert.Contains(t, lines[2], "Go_complex64_cpu")
}

func TestRunTargetDirFlag(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeConfig(t, dir)
	target := filepath.Join(dir, "elsewhere")

	_, err := execute(t, "run", "--config", cfgPath, "--target-dir", target, "-j", "1")
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(target, "reports.txtar"))
	assert.NoError(t, err)
}

func TestRunInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cfv.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dtypes: [complex32]\nlogging: {level: error}\n"), 0o644))

	_, err := execute(t, "run", "--config", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "complex32")
}

func TestReport(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "none.yaml")
	out, err := execute(t, "report", "sqrt", "--config", missing, "--library", "Go", "--size", "2", "--samples", "X")
	require.NoError(t, err)
	assert.Contains(t, out, "real line:")
	assert.Contains(t, out, "Statistics:")
	assert.Contains(t, out, "match rate: 100.0%")
	assert.Contains(t, out, "Legend:")
}

func TestReportErrors(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "none.yaml")
	for _, tc := range []struct {
		name string
		args []string
		want string
	}{
		{"unknown function", []string{"report", "gamma"}, `unknown function "gamma"`},
		{"unknown library", []string{"report", "exp", "--library", "mkl"}, "mkl"},
		{"bad dtype", []string{"report", "exp", "--dtype", "float16"}, "float16"},
		{"unsupported", []string{"report", "arcsin", "--library", "Hwy"}, "arcsin"},
		{"no args", []string{"report"}, "accepts 1 arg"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := execute(t, append(tc.args, "--config", missing)...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestHistoryWithoutDatabase(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "none.yaml")
	_, err := execute(t, "history", "--config", missing)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no history database")
}
