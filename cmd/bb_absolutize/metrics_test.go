//go:build unix

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/buildbarn/bb-pathname/pkg/filesystem"
	"github.com/buildbarn/bb-pathname/pkg/filesystem/path"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestWriteMetricsTextfile(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		workingDirectoryProvider := filesystem.NewMetricsWorkingDirectoryProvider(
			path.WorkingDirectoryProviderFunc(func() (path.PortablePath, error) {
				return path.NewPortablePath("/home/u"), nil
			}),
			"bb_absolutize_textfile")
		p, err := path.Absolutize(path.NewPortablePath("foo"), workingDirectoryProvider)
		require.NoError(t, err)
		require.Equal(t, "/home/u/foo", p.GetUNIXString())

		filename := filepath.Join(t.TempDir(), "bb_absolutize.prom")
		require.NoError(t, writeMetricsTextfile(filename, prometheus.DefaultGatherer))

		contents, err := os.ReadFile(filename)
		require.NoError(t, err)
		require.Contains(t, string(contents), `buildbarn_filesystem_working_directory_provider_operations_total{grpc_code="OK",name="bb_absolutize_textfile"} 1`)
		require.Contains(t, string(contents), "buildbarn_filesystem_working_directory_provider_operations_duration_seconds_count{name=\"bb_absolutize_textfile\"} 1")
	})

	t.Run("MissingDirectory", func(t *testing.T) {
		filename := filepath.Join(t.TempDir(), "nonexistent", "bb_absolutize.prom")
		err := writeMetricsTextfile(filename, prometheus.DefaultGatherer)
		require.Error(t, err)
		require.Equal(t, codes.Unknown, status.Code(err))
	})
}
