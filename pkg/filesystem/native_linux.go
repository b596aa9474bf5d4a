//go:build linux

package filesystem

import (
	"unsafe"

	"github.com/buildbarn/bb-pathname/pkg/filesystem/path"

	"golang.org/x/sys/unix"
)

// Access checks whether the calling process can access a file, using
// the same semantics as access(2). Mode is a mask consisting of
// unix.F_OK, unix.R_OK, unix.W_OK and unix.X_OK.
//
// The null terminated form of the path is passed to the kernel
// directly, meaning no copies are made for instances of NativePath.
func Access(p path.PathLike, mode uint32) error {
	return p.WithNativePath(func(p path.NativePath) error {
		dirfd := unix.AT_FDCWD
		if _, _, e := unix.Syscall6(unix.SYS_FACCESSAT, uintptr(dirfd), uintptr(unsafe.Pointer(p.Pointer())), uintptr(mode), 0, 0, 0); e != 0 {
			return e
		}
		return nil
	})
}

// Readlink returns the target of a symbolic link, using the same
// semantics as readlink(2).
func Readlink(p path.PathLike) (path.PortablePath, error) {
	return path.WithNativeView(p, func(p path.NativePath) (path.PortablePath, error) {
		dirfd := unix.AT_FDCWD
		for size := 128; ; size *= 2 {
			buf := make([]byte, size)
			n, _, e := unix.Syscall6(unix.SYS_READLINKAT, uintptr(dirfd), uintptr(unsafe.Pointer(p.Pointer())), uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)), 0, 0)
			if e != 0 {
				return path.PortablePath{}, e
			}
			if int(n) < size {
				return path.NewPortablePathFromBytes(buf[:n]), nil
			}
			// The target may have been truncated. Retry with
			// a larger buffer.
		}
	})
}
