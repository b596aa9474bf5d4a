//go:build unix

package filesystem

import (
	"github.com/buildbarn/bb-pathname/pkg/filesystem/path"
	"github.com/buildbarn/bb-pathname/pkg/util"

	"golang.org/x/sys/unix"
)

type localWorkingDirectoryProvider struct{}

func (localWorkingDirectoryProvider) GetWorkingDirectory() (path.PortablePath, error) {
	workingDirectory, err := unix.Getwd()
	if err != nil {
		return path.PortablePath{}, util.StatusFromSyscallError(err, "Failed to obtain working directory")
	}
	return path.NewPortablePath(workingDirectory), nil
}

// LocalWorkingDirectoryProvider obtains the working directory of the
// current process. It fails if the working directory has been removed,
// or if one of its ancestors is not accessible.
var LocalWorkingDirectoryProvider path.WorkingDirectoryProvider = localWorkingDirectoryProvider{}
