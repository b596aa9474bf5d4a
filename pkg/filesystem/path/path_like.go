package path

import (
	"strings"
	"sync"
)

// PathLike is implemented by the types in this package that can be
// passed to functions that either need to inspect the structure of a
// path, or need to hand it to a system call. Each implementation
// provides the representation it already holds without conversion, and
// converts to the other representation as cheaply as possible.
//
// The set of implementations is closed: PortablePath, NativePath and
// WrappedNativePath.
//
// The path passed to the callback is only valid for the duration of
// the call. It must not be retained.
type PathLike interface {
	WithPortablePath(f func(p PortablePath) error) error
	WithNativePath(f func(p NativePath) error) error

	isPathLike()
}

var (
	_ PathLike = PortablePath{}
	_ PathLike = NativePath{}
	_ PathLike = WrappedNativePath{}
)

// WithPortableView calls into a function with a PortablePath view of a
// PathLike, returning the value yielded by the function. No allocations
// are performed if the PathLike is a PortablePath.
func WithPortableView[T any](p PathLike, f func(p PortablePath) (T, error)) (T, error) {
	if pp, ok := p.(PortablePath); ok {
		return f(pp)
	}
	return withConvertedPortableView(p, f)
}

func withConvertedPortableView[T any](p PathLike, f func(p PortablePath) (T, error)) (T, error) {
	var result T
	err := p.WithPortablePath(func(p PortablePath) error {
		var err error
		result, err = f(p)
		return err
	})
	return result, err
}

// WithNativeView calls into a function with a NativePath view of a
// PathLike, returning the value yielded by the function. No allocations
// are performed if the PathLike is a NativePath or WrappedNativePath.
func WithNativeView[T any](p PathLike, f func(p NativePath) (T, error)) (T, error) {
	switch np := p.(type) {
	case NativePath:
		return f(np)
	case WrappedNativePath:
		return f(np.native)
	default:
		return withConvertedNativeView(p, f)
	}
}

func withConvertedNativeView[T any](p PathLike, f func(p NativePath) (T, error)) (T, error) {
	var result T
	err := p.WithNativePath(func(p NativePath) error {
		var err error
		result, err = f(p)
		return err
	})
	return result, err
}

// maximumPooledNativePathSizeBytes is the size of the buffers that are
// used to convert short instances of PortablePath to NativePath,
// including the terminating null byte.
const maximumPooledNativePathSizeBytes = 384

var nativePathBufferPool = sync.Pool{
	New: func() any {
		return new([maximumPooledNativePathSizeBytes]byte)
	},
}

func (PortablePath) isPathLike() {}

// WithPortablePath calls into the function with the path itself.
func (p PortablePath) WithPortablePath(f func(p PortablePath) error) error {
	return f(p)
}

// WithNativePath converts the path to a C string and calls into the
// function with it.
//
// Paths that fit in a fixed size buffer are converted using a buffer
// obtained from a pool, which is returned to the pool as soon as the
// function returns. Longer paths are converted using a buffer that is
// allocated to fit exactly. The function is not called if the path
// contains a null byte.
func (p PortablePath) WithNativePath(f func(p NativePath) error) error {
	if strings.IndexByte(p.path, 0) >= 0 {
		return errNullByte
	}

	if len(p.path) >= maximumPooledNativePathSizeBytes {
		pathWithNUL := make([]byte, len(p.path)+1)
		copy(pathWithNUL, p.path)
		return f(NativePath{pathWithNUL: pathWithNUL})
	}

	buffer := nativePathBufferPool.Get().(*[maximumPooledNativePathSizeBytes]byte)
	defer nativePathBufferPool.Put(buffer)
	n := copy(buffer[:], p.path)
	buffer[n] = 0
	return f(NativePath{pathWithNUL: buffer[:n+1]})
}

func (NativePath) isPathLike() {}

// WithPortablePath copies the contents of the C string into a
// PortablePath and calls into the function with it.
func (p NativePath) WithPortablePath(f func(p PortablePath) error) error {
	return f(NewPortablePathFromBytes(p.Bytes()))
}

// WithNativePath calls into the function with the path itself.
func (p NativePath) WithNativePath(f func(p NativePath) error) error {
	return f(p)
}

func (WrappedNativePath) isPathLike() {}

// WithPortablePath calls into WithPortablePath() of the wrapped
// NativePath.
func (p WrappedNativePath) WithPortablePath(f func(p PortablePath) error) error {
	return p.native.WithPortablePath(f)
}

// WithNativePath calls into WithNativePath() of the wrapped NativePath.
func (p WrappedNativePath) WithNativePath(f func(p NativePath) error) error {
	return p.native.WithNativePath(f)
}
