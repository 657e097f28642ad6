package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func open(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "db", "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordHistory(t *testing.T) {
	ctx := context.Background()
	s := open(t)
	created := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

	rows := []Row{
		{RunID: "r1", Function: "exp", Reference: "Go_complex128_cpu", Candidate: "Go_complex64_cpu",
			Status: "ok", Rating: "PERFECT", MatchRate: 100, Report: "exp.txt", CreatedAt: created},
		{RunID: "r1", Function: "log", Reference: "Go_complex128_cpu", Candidate: "Hwy_complex64_scalar",
			Status: "ok", Rating: "GOOD", MatchRate: 95, InaccuracyRate: 4, MismatchRate: 1, Report: "log.txt", CreatedAt: created},
		{RunID: "r2", Function: "exp", Reference: "Go_complex128_cpu", Candidate: "Hwy_complex64_tpu",
			Status: "n/a", CreatedAt: created.Add(time.Hour)},
	}
	require.NoError(t, s.Record(ctx, rows))

	all, err := s.History(ctx, Query{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	if diff := cmp.Diff([]Row{rows[2], rows[1], rows[0]}, all); diff != "" {
		t.Errorf("History mismatch (-want +got):\n%s", diff)
	}

	exp, err := s.History(ctx, Query{Function: "exp"})
	require.NoError(t, err)
	assert.Len(t, exp, 2)

	run, err := s.History(ctx, Query{RunID: "r1", Limit: 1})
	require.NoError(t, err)
	require.Len(t, run, 1)
	assert.Equal(t, "log", run[0].Function)
}

func TestReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "history.db")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Record(ctx, []Row{{RunID: "r", Function: "sin", Status: "ok"}}))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()
	rows, err := s.History(ctx, Query{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.False(t, rows[0].CreatedAt.IsZero())
}
