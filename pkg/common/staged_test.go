// 12 Oct 2026

package common_test

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	. "github.com/andrew-torda/chitrna/pkg/common"
)

func TestStageCommit(t *testing.T) {
	dir := t.TempDir()
	fname := filepath.Join(dir, "out.txt")
	var set StageSet
	s, err := set.Add(fname)
	require.NoError(t, err)
	_, err = io.WriteString(s, "hello\n")
	require.NoError(t, err)

	_, err = os.Stat(fname)
	require.True(t, os.IsNotExist(err), "file visible before commit")

	require.NoError(t, set.Commit())
	b, err := os.ReadFile(fname)
	require.NoError(t, err)
	require.Equal(t, "hello\n", string(b))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temporary file left behind")
}

func TestStageAbort(t *testing.T) {
	dir := t.TempDir()
	var set StageSet
	for _, n := range []string{"a", "b"} {
		s, err := set.Add(filepath.Join(dir, n))
		require.NoError(t, err)
		_, err = io.WriteString(s, n)
		require.NoError(t, err)
	}
	set.Abort()
	set.Abort() // twice is fine
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries)
}

// writeSet stages name=content for each pair under dir.
func writeSet(t *testing.T, dir string, files map[string]string) StageSet {
	t.Helper()
	var set StageSet
	for name, content := range files {
		s, err := set.Add(filepath.Join(dir, name))
		require.NoError(t, err)
		_, err = io.WriteString(s, content)
		require.NoError(t, err)
	}
	return set
}

func dirNames(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

// A directory in the way of one output stops all of them, and an old
// file with another output's name is not touched.
func TestStageDirInTheWay(t *testing.T) {
	dir := t.TempDir()
	old := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(old, []byte("old"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "b"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b", "x"), []byte("x"), 0o644))

	set := writeSet(t, dir, map[string]string{"a.txt": "new", "b": "new", "c": "new"})
	defer set.Abort()
	err := set.Commit()
	var rerr *ResourceError
	require.ErrorAs(t, err, &rerr)
	require.True(t, errors.Is(err, ErrIsDir))
	require.Equal(t, filepath.Join(dir, "b"), rerr.Path)

	b, err := os.ReadFile(old)
	require.NoError(t, err)
	require.Equal(t, "old", string(b))
	require.ElementsMatch(t, []string{"a.txt", "b"}, dirNames(t, dir))
}

func TestStageRollback(t *testing.T) {
	dir := t.TempDir()
	old := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(old, []byte("old"), 0o644))

	set := writeSet(t, dir, map[string]string{"a.txt": "new", "b.txt": "new"})
	require.NoError(t, set.Commit())
	b, err := os.ReadFile(old)
	require.NoError(t, err)
	require.Equal(t, "new", string(b))

	set.Rollback()
	set.Rollback() // twice is fine
	b, err = os.ReadFile(old)
	require.NoError(t, err)
	require.Equal(t, "old", string(b))
	require.Equal(t, []string{"a.txt"}, dirNames(t, dir))
}

func TestStageRelease(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("old"), 0o644))
	set := writeSet(t, dir, map[string]string{"a.txt": "new", "b.txt": "new"})
	require.NoError(t, set.Commit())
	set.Release()
	set.Rollback() // too late, nothing happens
	set.Abort()
	require.ElementsMatch(t, []string{"a.txt", "b.txt"}, dirNames(t, dir))
	b, err := os.ReadFile(filepath.Join(dir, "a.txt"))
	require.NoError(t, err)
	require.Equal(t, "new", string(b))
}

func TestStageBadDir(t *testing.T) {
	_, err := Stage(filepath.Join(t.TempDir(), "no", "such", "dir", "f"))
	var rerr *ResourceError
	require.ErrorAs(t, err, &rerr)
	require.Contains(t, rerr.Error(), "f")
}

func TestWrtTemp(t *testing.T) {
	fname, err := WrtTemp("abc")
	require.NoError(t, err)
	defer os.Remove(fname)
	b, err := os.ReadFile(fname)
	require.NoError(t, err)
	require.Equal(t, "abc", string(b))
}
