package client

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/OnitiFR/gofiledl/common"
	"github.com/stretchr/testify/require"
)

func TestListDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), pattern(2048), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), nil, 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0755))

	files, err := ListDirectory(dir)
	require.NoError(t, err)
	require.Equal(t, []LocalFile{
		{Name: "a.txt", Size: 0},
		{Name: "b.txt", Size: 2048},
	}, files)

	_, err = ListDirectory(filepath.Join(dir, "missing"))
	require.Error(t, err)
}

func TestRenderFileTable(t *testing.T) {
	out := &bytes.Buffer{}
	RenderFileTable(out, []LocalFile{
		{Name: "a.txt", Size: 10},
		{Name: "b.bin", Size: 2048},
	})

	require.Contains(t, out.String(), "NAME")
	require.Contains(t, out.String(), "a.txt")
	require.Contains(t, out.String(), "10 B")
	require.Contains(t, out.String(), "2.0 KB")
}

func TestRenderEntryTable(t *testing.T) {
	out := &bytes.Buffer{}
	RenderEntryTable(out, []common.FileEntry{
		{RemoteID: "f1", Name: "a.txt", Size: 10, Type: "file"},
		{RemoteID: "d1", Name: "sub", Type: "folder"},
	})

	require.Contains(t, out.String(), "f1")
	require.Contains(t, out.String(), "(folder)")
}
