//go:build unix && !linux

package filesystem

import (
	"github.com/buildbarn/bb-pathname/pkg/filesystem/path"

	"golang.org/x/sys/unix"
)

// Access checks whether the calling process can access a file, using
// the same semantics as access(2). Mode is a mask consisting of
// unix.F_OK, unix.R_OK, unix.W_OK and unix.X_OK.
func Access(p path.PathLike, mode uint32) error {
	return p.WithNativePath(func(p path.NativePath) error {
		return unix.Access(p.String(), mode)
	})
}

// Readlink returns the target of a symbolic link, using the same
// semantics as readlink(2).
func Readlink(p path.PathLike) (path.PortablePath, error) {
	return path.WithNativeView(p, func(p path.NativePath) (path.PortablePath, error) {
		for size := 128; ; size *= 2 {
			buf := make([]byte, size)
			n, err := unix.Readlink(p.String(), buf)
			if err != nil {
				return path.PortablePath{}, err
			}
			if n < size {
				return path.NewPortablePathFromBytes(buf[:n]), nil
			}
		}
	})
}
