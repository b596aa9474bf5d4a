//go:build unix

package main

import (
	"testing"

	"github.com/buildbarn/bb-pathname/pkg/filesystem/path"
	"github.com/buildbarn/bb-pathname/pkg/testutil"
	"github.com/buildbarn/bb-pathname/pkg/util"
	"github.com/stretchr/testify/require"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

func mustParse(t *testing.T, jsonnetInput string) (*applicationConfiguration, error) {
	var rawConfiguration structpb.Struct
	require.NoError(t, util.UnmarshalConfiguration("bb_absolutize.jsonnet", []byte(jsonnetInput), &rawConfiguration))
	return parseApplicationConfiguration(&rawConfiguration)
}

func TestParseApplicationConfiguration(t *testing.T) {
	t.Run("Minimal", func(t *testing.T) {
		configuration, err := mustParse(t, `{ paths: ['foo', '//bar/'] }`)
		require.NoError(t, err)
		require.Equal(t, &applicationConfiguration{
			paths: []path.PortablePath{
				path.NewPortablePath("foo"),
				path.NewPortablePath("//bar/"),
			},
		}, configuration)
	})

	t.Run("Complete", func(t *testing.T) {
		configuration, err := mustParse(t, `{
			paths: ['foo'],
			workingDirectory: '/home/u',
			checkAccess: true,
			metricsTextfile: '/tmp/bb_absolutize.prom',
		}`)
		require.NoError(t, err)
		workingDirectory := path.NewPortablePath("/home/u")
		require.Equal(t, &applicationConfiguration{
			paths:            []path.PortablePath{path.NewPortablePath("foo")},
			workingDirectory: &workingDirectory,
			checkAccess:      true,
			metricsTextfile:  "/tmp/bb_absolutize.prom",
		}, configuration)
	})

	t.Run("NoPaths", func(t *testing.T) {
		_, err := mustParse(t, `{ paths: [] }`)
		testutil.RequireEqualStatus(t, status.Error(codes.InvalidArgument, "No paths provided"), err)
	})

	t.Run("InvalidPath", func(t *testing.T) {
		_, err := mustParse(t, `{ paths: ['foo', 42] }`)
		testutil.RequireEqualStatus(t, status.Error(codes.InvalidArgument, "Element 1 of field \"paths\" is not a string"), err)
	})

	t.Run("UnknownField", func(t *testing.T) {
		_, err := mustParse(t, `{ paths: ['foo'], cwd: '/' }`)
		testutil.RequireEqualStatus(t, status.Error(codes.InvalidArgument, "Unknown field \"cwd\""), err)
	})

	t.Run("MultipleUnknownFields", func(t *testing.T) {
		// The first unknown field in sorted order is reported,
		// regardless of the order in which fields are stored.
		for i := 0; i < 10; i++ {
			_, err := mustParse(t, `{ zeta: 1, paths: ['foo'], alpha: 2, mu: 3 }`)
			testutil.RequireEqualStatus(t, status.Error(codes.InvalidArgument, "Unknown field \"alpha\""), err)
		}
	})

	t.Run("InvalidMetricsTextfile", func(t *testing.T) {
		_, err := mustParse(t, `{ paths: ['foo'], metricsTextfile: 42 }`)
		testutil.RequireEqualStatus(t, status.Error(codes.InvalidArgument, "Field \"metricsTextfile\" must be a non-empty string"), err)
	})
}
