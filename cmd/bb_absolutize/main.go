//go:build unix

package main

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/buildbarn/bb-pathname/pkg/filesystem"
	"github.com/buildbarn/bb-pathname/pkg/filesystem/path"
	"github.com/buildbarn/bb-pathname/pkg/program"
	"github.com/buildbarn/bb-pathname/pkg/util"
	"github.com/prometheus/client_golang/prometheus"

	"golang.org/x/sys/unix"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// A utility for converting pathnames to absolute pathnames, without
// accessing the file system. Unlike realpath(1), symbolic links are not
// expanded, and "." and ".." components are retained. The resulting
// paths thus have the same meaning as the original paths, regardless of
// the layout of the file system.
//
// The paths to convert are provided through a Jsonnet configuration
// file:
//
//	{
//	  paths: ['foo/bar', '//server/share/'],
//	  workingDirectory: '/home/user',  // Optional.
//	  checkAccess: true,               // Optional.
//	  metricsTextfile: '/var/lib/node_exporter/bb_absolutize.prom',  // Optional.
//	}

func main() {
	program.RunMain(func(ctx context.Context) error {
		if len(os.Args) != 2 {
			return status.Error(codes.InvalidArgument, "Usage: bb_absolutize bb_absolutize.jsonnet")
		}
		var rawConfiguration structpb.Struct
		if err := util.UnmarshalConfigurationFromFile(os.Args[1], &rawConfiguration); err != nil {
			return util.StatusWrapf(err, "Failed to read configuration from %s", os.Args[1])
		}
		configuration, err := parseApplicationConfiguration(&rawConfiguration)
		if err != nil {
			return util.StatusWrap(err, "Invalid configuration")
		}

		workingDirectoryProvider := filesystem.LocalWorkingDirectoryProvider
		if configuration.workingDirectory != nil {
			workingDirectoryProvider, err = path.NewFixedWorkingDirectoryProvider(*configuration.workingDirectory)
			if err != nil {
				return util.StatusWrap(err, "Invalid working directory")
			}
		}
		workingDirectoryProvider = filesystem.NewMetricsWorkingDirectoryProvider(workingDirectoryProvider, "bb_absolutize")

		w := bufio.NewWriter(os.Stdout)
		for _, p := range configuration.paths {
			if err := ctx.Err(); err != nil {
				return util.StatusWrap(status.FromContextError(err).Err(), "Interrupted")
			}
			absolute, err := path.Absolutize(p, workingDirectoryProvider)
			if err != nil {
				return util.StatusWrapf(err, "Failed to absolutize %#v", p.GetUNIXString())
			}
			if configuration.checkAccess {
				if err := filesystem.Access(absolute, unix.F_OK); err != nil {
					return util.StatusFromSyscallError(err, fmt.Sprintf("Cannot access %#v", absolute.GetUNIXString()))
				}
			}
			if _, err := fmt.Fprintln(w, absolute.GetUNIXString()); err != nil {
				return util.StatusWrap(err, "Failed to write output")
			}
		}
		if err := w.Flush(); err != nil {
			return util.StatusWrap(err, "Failed to write output")
		}

		if configuration.metricsTextfile != "" {
			return writeMetricsTextfile(configuration.metricsTextfile, prometheus.DefaultGatherer)
		}
		return nil
	})
}
