// SPDX-License-Identifier: MIT

package store_test

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/katalvlaran/algocmp/dataset"
	"github.com/katalvlaran/algocmp/experiment"
	"github.com/katalvlaran/algocmp/store"
)

func openTest(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(t.TempDir(), store.DefaultOptions(), zaptest.NewLogger(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func TestOpen(t *testing.T) {
	t.Parallel()

	t.Run("creates nested directory", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "a", "b")
		s, err := store.Open(dir, store.DefaultOptions(), nil)
		require.NoError(t, err)
		defer s.Close()

		_, err = os.Stat(filepath.Join(dir, store.FileName))
		require.NoError(t, err)
		require.Equal(t, filepath.Join(dir, store.FileName), s.Path())
	})

	t.Run("missing database without create", func(t *testing.T) {
		t.Parallel()

		_, err := store.Open(t.TempDir(), store.Options{}, nil)
		require.ErrorIs(t, err, store.ErrStoreNotFound)
	})

	t.Run("reopens existing database", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		s, err := store.Open(dir, store.DefaultOptions(), nil)
		require.NoError(t, err)
		_, err = s.Save(context.Background(), "trials", experiment.Builtin())
		require.NoError(t, err)
		require.NoError(t, s.Close())

		s, err = store.Open(dir, store.Options{}, nil)
		require.NoError(t, err)
		defer s.Close()
		ds, err := s.Load(context.Background(), "trials")
		require.NoError(t, err)
		require.Equal(t, 40, ds.Len())
	})
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	t.Parallel()

	s := openTest(t)
	ctx := context.Background()
	orig := experiment.Builtin()

	id, err := s.Save(ctx, "trials", orig)
	require.NoError(t, err)
	_, err = uuid.Parse(id)
	require.NoError(t, err)

	got, err := s.Load(ctx, "trials")
	require.NoError(t, err)
	require.Equal(t, orig.Schema().Columns(), got.Schema().Columns())
	require.Equal(t, orig.Len(), got.Len())
	for r := 0; r < orig.Len(); r++ {
		require.Equal(t, orig.Row(r), got.Row(r), "row %d", r)
	}
}

func TestSave_ReplacesByName(t *testing.T) {
	t.Parallel()

	s := openTest(t)
	ctx := context.Background()

	first, err := s.Save(ctx, "trials", experiment.Builtin())
	require.NoError(t, err)

	small, err := dataset.NewBuilder().
		Categorical("algorithm", []string{"ACO", "GA"}).
		Numeric("seconds", []float64{1.5, 2.25}).
		Build()
	require.NoError(t, err)
	second, err := s.Save(ctx, "trials", small)
	require.NoError(t, err)
	require.NotEqual(t, first, second)

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, second, list[0].ID)
	require.Equal(t, 2, list[0].Rows)
	require.Equal(t, 2, list[0].Columns)
	require.False(t, list[0].Created.IsZero())

	got, err := s.Load(ctx, "trials")
	require.NoError(t, err)
	require.Equal(t, []any{"GA", 2.25}, got.Row(1))
}

func TestList_OrderedByName(t *testing.T) {
	t.Parallel()

	s := openTest(t)
	ctx := context.Background()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		_, err := s.Save(ctx, name, experiment.Builtin())
		require.NoError(t, err)
	}

	list, err := s.List(ctx)
	require.NoError(t, err)
	names := make([]string, len(list))
	for i, info := range list {
		names[i] = info.Name
	}
	require.Equal(t, []string{"alpha", "mid", "zeta"}, names)
}

func TestDelete(t *testing.T) {
	t.Parallel()

	s := openTest(t)
	ctx := context.Background()
	_, err := s.Save(ctx, "trials", experiment.Builtin())
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, "trials"))
	_, err = s.Load(ctx, "trials")
	require.ErrorIs(t, err, store.ErrDatasetNotFound)
	require.ErrorIs(t, s.Delete(ctx, "trials"), store.ErrDatasetNotFound)

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestSave_EmptyName(t *testing.T) {
	t.Parallel()

	s := openTest(t)
	_, err := s.Save(context.Background(), "", experiment.Builtin())
	require.ErrorIs(t, err, store.ErrEmptyName)
}

func TestSave_CancelledContext(t *testing.T) {
	t.Parallel()

	s := openTest(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := s.Save(ctx, "trials", experiment.Builtin())
	require.Error(t, err)

	_, err = s.Load(context.Background(), "trials")
	require.ErrorIs(t, err, store.ErrDatasetNotFound)
}

func TestLoad_MissingCells(t *testing.T) {
	t.Parallel()

	seconds := func(t *testing.T) int {
		_, pos, err := experiment.Builtin().Schema().Lookup(experiment.Seconds)
		require.NoError(t, err)
		return pos
	}
	algorithm := func(t *testing.T) int {
		_, pos, err := experiment.Builtin().Schema().Lookup(experiment.Algorithm)
		require.NoError(t, err)
		return pos
	}

	tests := []struct {
		name  string
		query string
		pos   func(*testing.T) int
	}{
		{"deleted numeric cell", `DELETE FROM cells WHERE row_index = 3 AND position = ?`, seconds},
		{"null numeric value", `UPDATE cells SET num_value = NULL WHERE row_index = 3 AND position = ?`, seconds},
		{"deleted categorical cell", `DELETE FROM cells WHERE row_index = 3 AND position = ?`, algorithm},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			s, err := store.Open(dir, store.DefaultOptions(), zaptest.NewLogger(t))
			require.NoError(t, err)
			_, err = s.Save(context.Background(), "trials", experiment.Builtin())
			require.NoError(t, err)
			require.NoError(t, s.Close())

			db, err := sql.Open("sqlite", filepath.Join(dir, store.FileName))
			require.NoError(t, err)
			res, err := db.Exec(tc.query, tc.pos(t))
			require.NoError(t, err)
			n, err := res.RowsAffected()
			require.NoError(t, err)
			require.EqualValues(t, 1, n)
			require.NoError(t, db.Close())

			s, err = store.Open(dir, store.Options{}, zaptest.NewLogger(t))
			require.NoError(t, err)
			defer s.Close()

			ds, err := s.Load(context.Background(), "trials")
			require.Nil(t, ds)
			require.ErrorIs(t, err, dataset.ErrMissingValue)
		})
	}
}
