//go:build unix

package filesystem_test

import (
	"os"
	"testing"

	"github.com/buildbarn/bb-pathname/pkg/filesystem"
	"github.com/buildbarn/bb-pathname/pkg/filesystem/path"
	"github.com/stretchr/testify/require"
)

func TestLocalWorkingDirectoryProvider(t *testing.T) {
	directory := t.TempDir()
	originalDirectory, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(directory))
	t.Cleanup(func() { require.NoError(t, os.Chdir(originalDirectory)) })

	workingDirectory, err := filesystem.LocalWorkingDirectoryProvider.GetWorkingDirectory()
	require.NoError(t, err)
	require.True(t, workingDirectory.IsAbsolute())

	// The temporary directory may itself be reached through a
	// symbolic link, so compare the files instead.
	expectedInfo, err := os.Stat(directory)
	require.NoError(t, err)
	actualInfo, err := os.Stat(workingDirectory.GetUNIXString())
	require.NoError(t, err)
	require.True(t, os.SameFile(expectedInfo, actualInfo))

	p, err := path.Absolutize(path.NewPortablePath("./a/b/"), filesystem.LocalWorkingDirectoryProvider)
	require.NoError(t, err)
	require.Equal(t, workingDirectory.GetUNIXString()+"/a/b/", p.GetUNIXString())
}
