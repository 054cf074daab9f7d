package journal

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/foldernorm/internal/naming"
)

func openTemp(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "nested", "journal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestRecordAndRead(t *testing.T) {
	db := openTemp(t)
	opts := naming.DefaultOptions()
	opts.PreserveDots = true

	entries := []Entry{
		{Index: 1, Original: "Fotos (2024)", New: "fotos_2024", Outcome: OutcomeRenamed},
		{Index: 2, Original: "docs", New: "docs", Outcome: "skipped"},
		{Index: 3, Original: "A B", New: "a_b", Outcome: "failed", Reason: "permission"},
	}
	id, err := db.Record("/data", opts, entries)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := db.Entries(id)
	require.NoError(t, err)
	assert.Equal(t, entries, got)

	batches, err := db.Batches()
	require.NoError(t, err)
	require.Len(t, batches, 1)
	assert.Equal(t, id, batches[0].ID)
	assert.Equal(t, "/data", batches[0].Dir)
	assert.Equal(t, opts, batches[0].Options)
	assert.Equal(t, 3, batches[0].Total)
	assert.Equal(t, 1, batches[0].Renamed)
}

func TestBatches_NewestFirst(t *testing.T) {
	db := openTemp(t)
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	var ids []string
	for i := 0; i < 3; i++ {
		at := base.Add(time.Duration(i) * time.Minute)
		db.now = func() time.Time { return at }
		id, err := db.Record("/d", naming.DefaultOptions(), nil)
		require.NoError(t, err)
		ids = append(ids, id)
	}

	batches, err := db.Batches()
	require.NoError(t, err)
	require.Len(t, batches, 3)
	assert.Equal(t, ids[2], batches[0].ID)
	assert.Equal(t, ids[0], batches[2].ID)
	assert.True(t, batches[0].CreatedAt.Equal(base.Add(2*time.Minute)))
}

func TestEntries_UnknownBatch(t *testing.T) {
	db := openTemp(t)
	got, err := db.Entries("missing")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")
	db, err := Open(path)
	require.NoError(t, err)
	id, err := db.Record("/d", naming.DefaultOptions(), []Entry{{Index: 1, Original: "X", New: "x", Outcome: OutcomeRenamed}})
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = Open(path)
	require.NoError(t, err)
	defer db.Close()
	got, err := db.Entries(id)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "X", got[0].Original)
}
