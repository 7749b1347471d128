package history

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectAndRecordRun(t *testing.T) {
	dir := t.TempDir()
	store, err := Connect(filepath.Join(dir, "history.db"), false)
	require.NoError(t, err)
	defer store.Close()

	err = store.RecordRun("foo.addaat", "foo.c", true, 12*time.Millisecond, nil)
	require.NoError(t, err)

	err = store.RecordRun("foo.addaat", "foo.c", false, 3*time.Millisecond,
		[]string{"semantic error: Class redefinition"})
	require.NoError(t, err)

	runs, err := store.RecentRuns("foo.addaat", 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.False(t, runs[0].Success, "most recent run should be the failing one")
	assert.True(t, runs[1].Success)
}

func TestRunTableName(t *testing.T) {
	assert.Equal(t, "runs", Run{}.TableName())
}

func TestIsRemoteURL(t *testing.T) {
	assert.True(t, isRemoteURL("libsql://foo.turso.io"))
	assert.True(t, isRemoteURL("https://example.com/db"))
	assert.False(t, isRemoteURL("/tmp/history.db"))
	assert.False(t, isRemoteURL("history.db"))
}
