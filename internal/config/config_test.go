package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-cfv/cfv"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, cfv.FunctionNames, cfg.Functions)
	assert.Equal(t, Size{40, 40}, cfg.ReportSize)
	assert.Equal(t, Size{200, 200}, cfg.StatsSize)
	assert.Equal(t, cfv.Complex128, cfg.ReferenceDtype())
	assert.Equal(t, []cfv.Dtype{cfv.Complex64, cfv.Complex128}, cfg.ParsedDtypes())
	assert.Equal(t, cfv.FTZAuto, cfg.FTZMode())
	assert.Positive(t, cfg.Workers)
}

func TestDefaultFunctionsAreACopy(t *testing.T) {
	cfg := Default()
	cfg.Functions[0] = "changed"
	assert.Equal(t, "exp", cfv.FunctionNames[0])
}

func TestLoad(t *testing.T) {
	t.Setenv("CFV_TARGET_DIR", "")
	t.Setenv("CFV_WORKERS", "")
	path := filepath.Join(t.TempDir(), "cfv.yaml")
	const doc = `
target_dir: out
functions: [exp, sqrt]
report_size: {re: 10, im: 5}
workers: 3
libraries: [Hwy]
ftz: "on"
samples: XN
logging:
  level: debug
  json: true
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "out", cfg.TargetDir)
	assert.Equal(t, []string{"exp", "sqrt"}, cfg.Functions)
	assert.Equal(t, Size{10, 5}, cfg.ReportSize)
	assert.Equal(t, Size{200, 200}, cfg.StatsSize, "unset keys keep their defaults")
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, []string{"Hwy"}, cfg.Libraries)
	assert.Equal(t, cfv.FTZOn, cfg.FTZMode())
	assert.Equal(t, []cfv.Code{cfv.CodeDifferent, cfv.CodeNaN}, cfg.SampleCodes())
	assert.Equal(t, Logging{Level: "debug", JSON: true}, cfg.Logging)
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("CFV_TARGET_DIR", "")
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default().TargetDir, cfg.TargetDir)
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("workers: [1, 2"), 0o644))
	_, err := Load(path)
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("CFV_TARGET_DIR", "elsewhere")
	t.Setenv("CFV_WORKERS", "7")
	t.Setenv("CFV_HISTORY_DB", "h.db")
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "elsewhere", cfg.TargetDir)
	assert.Equal(t, 7, cfg.Workers)
	assert.Equal(t, "h.db", cfg.HistoryDB)
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name   string
		modify func(*Config)
		want   string
	}{
		{"function", func(c *Config) { c.Functions = []string{"gamma"} }, `unknown function "gamma"`},
		{"dtype", func(c *Config) { c.Dtypes = []string{"float16"} }, `unknown dtype "float16"`},
		{"reference dtype", func(c *Config) { c.Reference.Dtype = "int8" }, `unknown dtype "int8"`},
		{"ftz", func(c *Config) { c.FTZ = "sometimes" }, `unknown ftz mode "sometimes"`},
		{"size", func(c *Config) { c.ReportSize.Re = -1 }, "report_size -1x40 is negative"},
		{"stats size", func(c *Config) { c.StatsSize.Im = -2 }, "stats_size 200x-2 is negative"},
		{"workers", func(c *Config) { c.Workers = 0 }, "workers must be at least 1"},
		{"samples", func(c *Config) { c.Samples = "X?" }, `'?' is not a code`},
		{"target", func(c *Config) { c.TargetDir = "" }, "target_dir is empty"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.modify(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalid))
			assert.ErrorContains(t, err, tc.want)
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "cfv.yaml")
	cfg := Default()
	cfg.Workers = 2
	cfg.Samples = "I"
	require.NoError(t, cfg.Save(path))

	t.Setenv("CFV_TARGET_DIR", "")
	t.Setenv("CFV_WORKERS", "")
	t.Setenv("CFV_HISTORY_DB", "")
	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}
