package store

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/cwbudde/tourclimb/internal/tour"
)

// setupTestStore creates a store in a temporary directory
func setupTestStore(t *testing.T) (*FSStore, string) {
	t.Helper()

	dir := t.TempDir()
	s, err := NewFSStore(dir)
	require.NoError(t, err)
	return s, dir
}

func testCities() []tour.City {
	return []tour.City{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
}

func createTestResult() *Result {
	cfg := RunConfig{CityFile: "cities.bin", CityCount: 4, Restarts: 10, Strategy: "sweep", Seed: 42}
	return NewResult(cfg, tour.Answer{Route: []int{0, 1, 2, 3}, Distance: 40}, 48.28, 10)
}

func TestNewResult(t *testing.T) {
	r := createTestResult()

	assert.NotEmpty(t, r.ID)
	assert.True(t, r.Found)
	assert.False(t, r.Timestamp.IsZero())
	assert.NoError(t, r.Validate())

	other := createTestResult()
	assert.NotEqual(t, r.ID, other.ID)
}

func TestResultValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(r *Result)
		field  string
	}{
		{"empty id", func(r *Result) { r.ID = "" }, "ID"},
		{"bad route", func(r *Result) { r.Route = []int{0, 1, 1, 3} }, "Route"},
		{"negative distance", func(r *Result) { r.Distance = -1 }, "Distance"},
		{"no restarts", func(r *Result) { r.Restarts = 0 }, "Restarts"},
		{"too many restarts", func(r *Result) { r.Restarts = 11 }, "Restarts"},
		{"zero time", func(r *Result) { r.Timestamp = time.Time{} }, "Timestamp"},
		{"one city", func(r *Result) { r.Config.CityCount = 1 }, "Config.CityCount"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := createTestResult()
			tt.modify(r)

			var verr *ValidationError
			require.True(t, errors.As(r.Validate(), &verr))
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestSaveLoadResult(t *testing.T) {
	s, dir := setupTestStore(t)
	r := createTestResult()

	require.NoError(t, s.SaveResult(r))
	assert.FileExists(t, filepath.Join(dir, "runs", r.ID, "result.json"))
	assert.NoFileExists(t, filepath.Join(dir, "runs", r.ID, "result.json.tmp"))

	loaded, err := s.LoadResult(r.ID)
	require.NoError(t, err)
	assert.Equal(t, r.Route, loaded.Route)
	assert.Equal(t, r.Distance, loaded.Distance)
	assert.Equal(t, r.Config, loaded.Config)
	assert.True(t, r.Timestamp.Equal(loaded.Timestamp))
}

func TestSaveResultRejectsInvalid(t *testing.T) {
	s, _ := setupTestStore(t)

	assert.Error(t, s.SaveResult(nil))

	r := createTestResult()
	r.Route = nil
	assert.Error(t, s.SaveResult(r))
}

func TestLoadResultNotFound(t *testing.T) {
	s, _ := setupTestStore(t)

	id := uuid.NewString()
	_, err := s.LoadResult(id)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), id)
}

func TestRejectsIDsOutsideRunsDir(t *testing.T) {
	root := t.TempDir()
	dataDir := filepath.Join(root, "data")
	s, err := NewFSStore(dataDir)
	require.NoError(t, err)

	sibling := filepath.Join(root, "keep.txt")
	require.NoError(t, os.WriteFile(sibling, []byte("keep"), 0644))

	// A result.json one level up must stay unreachable through LoadResult
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "result.json"), []byte("{}"), 0644))

	ids := []string{"..", "../..", ".", "../x", "a/b", "runs", "not-a-uuid",
		"{" + uuid.NewString() + "}", "urn:uuid:" + uuid.NewString()}
	for _, id := range ids {
		t.Run(id, func(t *testing.T) {
			assert.ErrorIs(t, s.DeleteResult(id), ErrInvalidID)
			_, err := s.LoadResult(id)
			assert.ErrorIs(t, err, ErrInvalidID)
		})
	}

	assert.FileExists(t, sibling)
	assert.FileExists(t, filepath.Join(dataDir, "result.json"))

	r := createTestResult()
	r.ID = "../escape"
	assert.ErrorIs(t, s.SaveResult(r), ErrInvalidID)
	assert.NoFileExists(t, filepath.Join(root, "escape", "result.json"))
}

func TestListResults(t *testing.T) {
	s, dir := setupTestStore(t)

	infos, err := s.ListResults()
	require.NoError(t, err)
	assert.Empty(t, infos)

	older := createTestResult()
	older.Timestamp = time.Now().Add(-time.Hour)
	newer := createTestResult()
	require.NoError(t, s.SaveResult(newer))
	require.NoError(t, s.SaveResult(older))

	// A corrupt entry is skipped
	bad := filepath.Join(dir, "runs", "corrupt")
	require.NoError(t, os.MkdirAll(bad, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(bad, "result.json"), []byte("{"), 0644))

	infos, err = s.ListResults()
	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.Equal(t, older.ID, infos[0].ID)
	assert.Equal(t, newer.ID, infos[1].ID)
	assert.Equal(t, "sweep", infos[0].Strategy)
	assert.Equal(t, 4, infos[0].CityCount)
}

func TestDeleteResult(t *testing.T) {
	s, _ := setupTestStore(t)
	r := createTestResult()
	require.NoError(t, s.SaveResult(r))

	require.NoError(t, s.DeleteResult(r.ID))
	_, err := s.LoadResult(r.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, s.DeleteResult(r.ID), ErrNotFound)
	assert.Error(t, s.DeleteResult(""))
}

func TestTraceRoundTrip(t *testing.T) {
	s, _ := setupTestStore(t)
	path := s.TracePath("run-1")

	tw, err := NewTraceWriter(path)
	require.NoError(t, err)
	assert.Equal(t, path, tw.Path())

	now := time.Now().UTC()
	for i := 0; i < 3; i++ {
		require.NoError(t, tw.Write(TraceEntry{Restart: i, Distance: float64(100 - i), Best: float64(100 - i), Timestamp: now}))
	}
	require.NoError(t, tw.Close())

	entries, err := LoadTrace(path)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, 2, entries[2].Restart)
	assert.Equal(t, 98.0, entries[2].Best)
}

func TestReadTraceErrors(t *testing.T) {
	_, err := ReadTrace(bytes.NewBufferString("{\"restart\":0}\nnot json\n"))
	assert.Error(t, err)

	_, err = LoadTrace(filepath.Join(t.TempDir(), "none.jsonl"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestWriteReport(t *testing.T) {
	r := createTestResult()
	trace := []TraceEntry{{Restart: 0, Distance: 48.28, Best: 48.28}, {Restart: 1, Distance: 40, Best: 40}}
	path := filepath.Join(t.TempDir(), "report.xlsx")

	require.NoError(t, WriteReport(path, r, testCities(), trace))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SummarySheet, RouteSheet, TraceSheet}, f.GetSheetList())

	v, err := f.GetCellValue(SummarySheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, r.ID, v)

	rows, err := f.GetRows(RouteSheet)
	require.NoError(t, err)
	require.Len(t, rows, 5)
	assert.Equal(t, []string{"3", "3", "C_3", "0", "10", "10"}, rows[4])

	rows, err = f.GetRows(TraceSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}
