package report

import (
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const input = `# sample hands
K Q J 5 5

1 2 3 4 5
A A A 2 2
K 5
1,9,10,3,3
`

func TestBuild(t *testing.T) {
	rep, err := Build(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rep.Entries, 5)

	assert.Equal(t, 2, rep.Entries[0].Line)
	assert.Equal(t, 10, rep.Entries[0].Score)
	assert.True(t, rep.Entries[0].IsDouble)

	assert.Equal(t, 4, rep.Entries[1].Line)
	assert.True(t, rep.Entries[1].Swapped)
	assert.Equal(t, []int{1, 2, 6, 4, 5}, rep.Entries[1].Variant)

	assert.False(t, rep.Entries[2].HasNiu)
	assert.Empty(t, rep.Entries[2].Error)

	assert.Contains(t, rep.Entries[3].Error, "expected 5 cards")
	assert.True(t, rep.Entries[4].IsDouble)
	assert.Equal(t, 6, rep.Entries[4].Score)

	assert.Equal(t, Summary{Total: 5, Invalid: 1, NoNiu: 1, NiuNiu: 1, Doubles: 2, Swapped: 1}, rep.Summary)
}

func TestWriteFile(t *testing.T) {
	rep, err := Build(strings.NewReader("K Q J 5 5\n"))
	require.NoError(t, err)

	dir := t.TempDir()
	path := filepath.Join(dir, "report.json")
	require.NoError(t, rep.WriteFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded Report
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, rep.Summary, decoded.Summary)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())

	assertOnlyFile(t, dir, "report.json")
}

func TestWriteAtomic(t *testing.T) {
	t.Run("replaces existing file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "out.json")
		require.NoError(t, os.WriteFile(path, []byte("old"), 0o600))

		require.NoError(t, writeAtomic(path, 0o644, func(w io.Writer) error {
			_, err := io.WriteString(w, "new")
			return err
		}))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "new", string(data))
		assertOnlyFile(t, dir, "out.json")
	})

	t.Run("failed encode keeps previous report", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "out.json")
		require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))

		boom := errors.New("boom")
		err := writeAtomic(path, 0o644, func(w io.Writer) error {
			_, _ = io.WriteString(w, "partial")
			return boom
		})
		assert.ErrorIs(t, err, boom)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "old", string(data))
		assertOnlyFile(t, dir, "out.json")
	})

	t.Run("failed rename removes temp file", func(t *testing.T) {
		dir := t.TempDir()
		target := filepath.Join(dir, "taken")
		require.NoError(t, os.Mkdir(target, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(target, "keep"), nil, 0o644))

		err := writeAtomic(target, 0o644, func(w io.Writer) error {
			_, err := io.WriteString(w, "x")
			return err
		})
		assert.Error(t, err)
		assertOnlyFile(t, dir, "taken")
	})

	t.Run("missing directory", func(t *testing.T) {
		err := writeAtomic(filepath.Join(t.TempDir(), "missing", "out.json"), 0o644, func(io.Writer) error { return nil })
		assert.Error(t, err)
	})
}

func assertOnlyFile(t *testing.T, dir, name string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, name, entries[0].Name())
}
