package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	return NewFileStore(t.TempDir(), nil)
}

func TestFileStore_WriteThenRead(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Write(DefaultList, "Buy milk", "true"))
	assert.Equal(t, "true", s.Read(DefaultList, "Buy milk", "false"))
}

func TestFileStore_WriteOverwrites(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Write(DefaultList, "a", "false-but-longer"))
	require.NoError(t, s.Write(DefaultList, "a", "true"))
	assert.Equal(t, "true", s.Read(DefaultList, "a", ""))
}

func TestFileStore_WriteLayout(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Write(DefaultList, "Buy milk", "false"))

	data, err := os.ReadFile(filepath.Join(s.Root(), DefaultList, "Buy milk"))
	require.NoError(t, err)
	assert.Equal(t, "false", string(data))
}

func TestFileStore_ReadMissingReturnsDefault(t *testing.T) {
	s := newTestStore(t)

	assert.Equal(t, "false", s.Read(DefaultList, "never written", "false"))
	assert.Equal(t, "missing", s.Read("other", "x", "missing"))
}

func TestFileStore_ReadUnreadableReturnsDefault(t *testing.T) {
	s := newTestStore(t)

	// A directory where a task file is expected cannot be read as a value.
	require.NoError(t, os.MkdirAll(filepath.Join(s.Root(), DefaultList, "dir"), 0755))
	assert.Equal(t, "def", s.Read(DefaultList, "dir", "def"))

	// Invalid names are treated as missing.
	assert.Equal(t, "def", s.Read(DefaultList, "../escape", "def"))
}

func TestFileStore_DeleteThenRead(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Write(DefaultList, "a", "true"))
	require.NoError(t, s.Delete(DefaultList, "a"))
	assert.Equal(t, "gone", s.Read(DefaultList, "a", "gone"))
}

func TestFileStore_DeleteIsIdempotent(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Write(DefaultList, "a", "true"))
	require.NoError(t, s.Delete(DefaultList, "a"))
	require.NoError(t, s.Delete(DefaultList, "a"))
	require.NoError(t, s.Delete("never-created", "a"))

	names, err := s.List(DefaultList)
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestFileStore_ListAfterDelete(t *testing.T) {
	s := newTestStore(t)

	for _, name := range []string{"a", "b", "c"} {
		require.NoError(t, s.Write(DefaultList, name, "false"))
	}
	require.NoError(t, s.Delete(DefaultList, "b"))

	names, err := s.List(DefaultList)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "c"}, names)
}

func TestFileStore_ListMissingIsEmpty(t *testing.T) {
	s := newTestStore(t)

	names, err := s.List(DefaultList)
	require.NoError(t, err)
	assert.NotNil(t, names)
	assert.Empty(t, names)
}

func TestFileStore_ListSkipsDirectories(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Write(DefaultList, "task", "false"))
	require.NoError(t, s.Write(DefaultList+"/nested", "inner", "false"))

	names, err := s.List(DefaultList)
	require.NoError(t, err)
	assert.Equal(t, []string{"task"}, names)

	nested, err := s.List(DefaultList + "/nested")
	require.NoError(t, err)
	assert.Equal(t, []string{"inner"}, nested)

	// Deleting the nested list's name as a task leaves it alone.
	require.NoError(t, s.Delete(DefaultList, "nested"))
	assert.Equal(t, "false", s.Read(DefaultList+"/nested", "inner", "x"))
}

func TestFileStore_DeleteAll(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Write("Shopping", "Bread", "false"))
	require.NoError(t, s.Write("Shopping", "Butter", "true"))
	require.NoError(t, s.DeleteAll("Shopping"))
	require.NoError(t, s.DeleteAll("Shopping"))

	names, err := s.List("Shopping")
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestFileStore_Lists(t *testing.T) {
	s := newTestStore(t)

	lists, err := s.Lists()
	require.NoError(t, err)
	assert.Empty(t, lists)

	require.NoError(t, s.Write(DefaultList, "a", "false"))
	require.NoError(t, s.Write("Work", "b", "false"))
	require.NoError(t, os.WriteFile(filepath.Join(s.Root(), "stray-file"), nil, 0644))
	require.NoError(t, os.MkdirAll(filepath.Join(s.Root(), ".hidden"), 0755))

	lists, err = s.Lists()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{DefaultList, "Work"}, lists)
}

func TestFileStore_RejectsInvalidNames(t *testing.T) {
	s := newTestStore(t)

	for _, name := range []string{"", "   ", ".", "..", "a/b", `a\b`, "nul\x00"} {
		err := s.Write(DefaultList, name, "true")
		assert.True(t, errors.Is(err, ErrInvalidName), "name %q: got %v", name, err)
	}

	for _, list := range []string{"", "../outside", "a//b", "/abs"} {
		err := s.Write(list, "task", "true")
		assert.True(t, errors.Is(err, ErrInvalidName), "list %q: got %v", list, err)

		_, err = s.List(list)
		assert.True(t, errors.Is(err, ErrInvalidName), "list %q: got %v", list, err)
	}

	_, err := os.Stat(filepath.Join(filepath.Dir(s.Root()), "outside"))
	assert.True(t, os.IsNotExist(err))
}

func TestValidateList(t *testing.T) {
	assert.NoError(t, ValidateList(DefaultList))
	assert.NoError(t, ValidateList("work/q3"))
	assert.Error(t, ValidateList("work/../q3"))
}
