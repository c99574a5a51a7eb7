package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeABIFolder(t *testing.T, root, abi string, files ...string) {
	t.Helper()
	dir := filepath.Join(root, NativeLibsDirName, abi)
	require.NoError(t, os.MkdirAll(dir, 0755))
	for _, f := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, f), []byte("lib"), 0644))
	}
}

func TestListABIFolders(t *testing.T) {
	root := t.TempDir()
	makeABIFolder(t, root, "x86", "libnative.so")
	makeABIFolder(t, root, "armeabi", "libnative.so", "notes.txt")

	abis, err := ListABIFolders(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"armeabi", "x86"}, abis)
}

func TestListABIFoldersSkipsEmptyFolders(t *testing.T) {
	root := t.TempDir()
	makeABIFolder(t, root, "armeabi", "libnative.so")
	makeABIFolder(t, root, "mips")                 // no files at all
	makeABIFolder(t, root, "x86", "README")        // no native libs
	makeABIFolder(t, root, "armeabi-v7a", "LIB.SO") // suffix match is case-insensitive

	abis, err := ListABIFolders(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"armeabi", "armeabi-v7a"}, abis)
}

func TestListABIFoldersNoLibsDir(t *testing.T) {
	abis, err := ListABIFolders(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, abis)
}

func TestListABIFoldersIgnoresPlainFiles(t *testing.T) {
	root := t.TempDir()
	libsDir := filepath.Join(root, NativeLibsDirName)
	require.NoError(t, os.MkdirAll(libsDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(libsDir, "stray.so"), []byte("lib"), 0644))

	abis, err := ListABIFolders(root)
	require.NoError(t, err)
	assert.Empty(t, abis)
}
