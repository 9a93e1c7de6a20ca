package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFile_TruncatesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "KrampUI.exe")
	require.NoError(t, os.WriteFile(path, []byte("old release contents"), 0o644))

	f, err := CreateFile(path)
	require.NoError(t, err)
	_, err = f.WriteString("new")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestCreateFile_DirectoryFails(t *testing.T) {
	dir := t.TempDir()

	f, err := CreateFile(dir)
	assert.Error(t, err)
	assert.Nil(t, f)
}

func TestCreateFile_MissingParentFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "KrampUI.exe")

	_, err := CreateFile(path)
	assert.Error(t, err)
}

func TestMakeExecutable(t *testing.T) {
	if runtime.GOOS == OSWindows {
		t.Skip("no executable bits on windows")
	}

	path := filepath.Join(t.TempDir(), "KrampUI.exe")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))

	require.NoError(t, MakeExecutable(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(ExecutablePermissions), info.Mode().Perm())
}

func TestMakeExecutable_MissingFile(t *testing.T) {
	if runtime.GOOS == OSWindows {
		t.Skip("no executable bits on windows")
	}

	err := MakeExecutable(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
