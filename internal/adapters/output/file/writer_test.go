package file

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/bnema/conference-tracks/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteAtomicCreatesFileAndDirectories(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "schedule.txt")

	require.NoError(t, WriteAtomic(path, []byte("Track 1\n")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Track 1\n", string(data))

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(scheduleFileMode), info.Mode().Perm())
	}
}

func TestWriteAtomicReplacesExistingFileWithoutLeftovers(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "schedule.txt")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o600))

	require.NoError(t, WriteAtomic(path, []byte("new")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWriteAtomicRejectsEmptyPath(t *testing.T) {
	t.Parallel()

	assert.ErrorContains(t, WriteAtomic("", nil), "output path is empty")
}

func TestWriteAtomicIntoFileParentIsIOError(t *testing.T) {
	t.Parallel()

	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	err := WriteAtomic(filepath.Join(blocker, "schedule.txt"), []byte("x"))

	assert.ErrorIs(t, err, domain.ErrIO)
}
