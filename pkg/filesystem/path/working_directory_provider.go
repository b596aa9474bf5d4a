package path

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// WorkingDirectoryProvider is called into by Absolutize() to obtain the
// directory against which relative paths are resolved.
type WorkingDirectoryProvider interface {
	// GetWorkingDirectory returns an absolute path of the current
	// working directory. Errors are propagated by Absolutize() as
	// is.
	GetWorkingDirectory() (PortablePath, error)
}

// WorkingDirectoryProviderFunc is a function that implements
// WorkingDirectoryProvider.
type WorkingDirectoryProviderFunc func() (PortablePath, error)

// GetWorkingDirectory calls into the function.
func (f WorkingDirectoryProviderFunc) GetWorkingDirectory() (PortablePath, error) {
	return f()
}

type fixedWorkingDirectoryProvider struct {
	workingDirectory PortablePath
}

// NewFixedWorkingDirectoryProvider creates a WorkingDirectoryProvider
// that always returns the same path. This is useful for resolving
// paths against a directory other than the one of the current process.
func NewFixedWorkingDirectoryProvider(workingDirectory PortablePath) (WorkingDirectoryProvider, error) {
	if !workingDirectory.IsAbsolute() {
		return nil, status.Errorf(codes.InvalidArgument, "Working directory %#v is not an absolute path", workingDirectory.GetUNIXString())
	}
	return fixedWorkingDirectoryProvider{
		workingDirectory: workingDirectory,
	}, nil
}

func (wdp fixedWorkingDirectoryProvider) GetWorkingDirectory() (PortablePath, error) {
	return wdp.workingDirectory, nil
}
