package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackwell-systems/codelens/internal/analyzer"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func sampleResults() []analyzer.Result {
	return []analyzer.Result{
		{
			FilePath:             "main.py",
			Language:             "python",
			Summary:              "Main application entry point written in Python.",
			ComplexityScore:      3.5,
			KeyFunctions:         []string{"main", "run"},
			Dependencies:         []string{"os", "sys"},
			DocumentationQuality: 6.0,
			Suggestions:          []string{"Enhance documentation coverage, particularly for complex functions"},
		},
		{
			FilePath:             "util.py",
			Language:             "python",
			Summary:              "Utility helper module written in Python.",
			ComplexityScore:      1.2,
			KeyFunctions:         []string{},
			Dependencies:         []string{},
			DocumentationQuality: 0.0,
			Suggestions:          []string{},
		},
	}
}

func TestSaveAndLoadSnapshot(t *testing.T) {
	db := openTestDB(t)

	id, err := db.SaveSnapshot("/src/app", "1.0.0", 7.25, sampleResults())
	require.NoError(t, err)
	require.NotZero(t, id)

	snap, err := db.GetSnapshot(id)
	require.NoError(t, err)
	require.NotNil(t, snap)
	assert.Equal(t, "/src/app", snap.Root)
	assert.Equal(t, "1.0.0", snap.Version)
	assert.Equal(t, 2, snap.TotalFiles)
	assert.Equal(t, 7.25, snap.QualityScore)
	assert.NotEmpty(t, snap.RunID)
	assert.False(t, snap.TakenAt.IsZero())

	results, err := db.LoadResults(id)
	require.NoError(t, err)
	assert.Equal(t, sampleResults(), results)
}

func TestGetSnapshotMissing(t *testing.T) {
	db := openTestDB(t)

	snap, err := db.GetSnapshot(999)
	require.NoError(t, err)
	assert.Nil(t, snap)
}

func TestListSnapshotsNewestFirst(t *testing.T) {
	db := openTestDB(t)

	first, err := db.SaveSnapshot("/a", "1.0.0", 5.0, nil)
	require.NoError(t, err)
	second, err := db.SaveSnapshot("/b", "1.0.0", 6.0, nil)
	require.NoError(t, err)

	snapshots, err := db.ListSnapshots()
	require.NoError(t, err)
	require.Len(t, snapshots, 2)
	assert.Equal(t, second, snapshots[0].ID)
	assert.Equal(t, first, snapshots[1].ID)
	assert.NotEqual(t, snapshots[0].RunID, snapshots[1].RunID)
}

func TestListSnapshotsEmpty(t *testing.T) {
	db := openTestDB(t)

	snapshots, err := db.ListSnapshots()
	require.NoError(t, err)
	assert.Empty(t, snapshots)
}

func TestLoadResultsUnknownSnapshot(t *testing.T) {
	db := openTestDB(t)

	results, err := db.LoadResults(42)
	require.NoError(t, err)
	assert.Empty(t, results)
}
