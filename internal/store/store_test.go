package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sood122/yeild-pridiction/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := New(MemoryDSN)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func TestNewFileStoreCreatesDirectory(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "cropwise.db")

	st, err := New(dbPath)
	require.NoError(t, err)
	require.NoError(t, st.Close())

	assert.FileExists(t, dbPath)
}

func TestPreviewWithoutDataset(t *testing.T) {
	st := newTestStore(t)

	_, err := st.Preview(5)
	assert.ErrorIs(t, err, ErrNoDataset)
}

func TestSaveDatasetAndPreview(t *testing.T) {
	st := newTestStore(t)

	columns := []string{"crop", "season", "yield"}
	rows := [][]string{
		{"Rice", "Kharif", "3.2"},
		{"Wheat", "Rabi", "2.9"},
		{"Moong", "Zaid", "0.8"},
	}
	require.NoError(t, st.SaveDataset("ds-1", "crops.csv", columns, rows))

	preview, err := st.Preview(2)
	require.NoError(t, err)

	assert.True(t, preview.Loaded)
	assert.Equal(t, "ds-1", preview.ID)
	assert.Equal(t, "crops.csv", preview.Source)
	assert.Equal(t, columns, preview.Columns)
	assert.Equal(t, rows[:2], preview.Rows)
	assert.Equal(t, 3, preview.TotalRows)
	assert.NotNil(t, preview.LoadedAt)
}

func TestLatestDatasetPicksNewest(t *testing.T) {
	st := newTestStore(t)

	require.NoError(t, st.SaveDataset("old", "a.csv", []string{"x"}, [][]string{{"1"}}))
	require.NoError(t, st.SaveDataset("new", "b.csv", []string{"y"}, [][]string{{"2"}}))

	meta, err := st.LatestDataset()
	require.NoError(t, err)
	assert.Equal(t, "new", meta.ID)
	assert.Equal(t, []string{"y"}, meta.Columns)
}

func TestLoadLogLifecycle(t *testing.T) {
	st := newTestStore(t)

	_, err := st.LatestLoadLog()
	require.ErrorIs(t, err, ErrNoLoadLog)

	id, err := st.CreateLoadLog("https://example.com/crops.csv")
	require.NoError(t, err)

	log, err := st.LatestLoadLog()
	require.NoError(t, err)
	assert.Equal(t, id, log.ID)
	assert.Equal(t, model.LoadStatusProcessing, log.Status)
	assert.Nil(t, log.CompletedAt)

	require.NoError(t, st.FinishLoadLog(id, model.LoadStatusFailed, 0, "404 Not Found"))

	log, err = st.LatestLoadLog()
	require.NoError(t, err)
	assert.Equal(t, model.LoadStatusFailed, log.Status)
	assert.Equal(t, "404 Not Found", log.ErrorMessage)
	assert.NotNil(t, log.CompletedAt)
}
