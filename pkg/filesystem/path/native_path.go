package path

import (
	"bytes"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var errNullByte = status.Error(codes.InvalidArgument, "Path contains a null byte")

// emptyNativePath is used to provide a valid C string for the zero
// value of NativePath.
var emptyNativePath = [1]byte{0}

// NativePath is a pathname in the form that is accepted by system
// calls: a C string that is terminated by a single null byte and does
// not contain any other null bytes.
//
// The zero value corresponds to the empty path.
type NativePath struct {
	pathWithNUL []byte
}

// NewNativePath creates a NativePath by copying the contents of a
// string and appending a null byte. Creation fails if the string
// contains a null byte.
func NewNativePath(path string) (NativePath, error) {
	if strings.IndexByte(path, 0) >= 0 {
		return NativePath{}, errNullByte
	}
	pathWithNUL := make([]byte, len(path)+1)
	copy(pathWithNUL, path)
	return NativePath{pathWithNUL: pathWithNUL}, nil
}

// MustNewNativePath is identical to NewNativePath, except that it
// panics upon failure.
func MustNewNativePath(path string) NativePath {
	p, err := NewNativePath(path)
	if err != nil {
		panic(err)
	}
	return p
}

// NewNativePathFromBytesWithNUL creates a NativePath that takes
// ownership of a byte slice. The byte slice must be terminated by a
// null byte and may not contain any other null bytes. The caller must
// not modify the byte slice afterwards.
func NewNativePathFromBytesWithNUL(pathWithNUL []byte) (NativePath, error) {
	nul := bytes.IndexByte(pathWithNUL, 0)
	if nul < 0 {
		return NativePath{}, status.Error(codes.InvalidArgument, "Path is not terminated by a null byte")
	}
	if nul != len(pathWithNUL)-1 {
		return NativePath{}, errNullByte
	}
	return NativePath{pathWithNUL: pathWithNUL}, nil
}

// Bytes returns the contents of the path without the terminating null
// byte. The returned slice must not be modified.
func (p NativePath) Bytes() []byte {
	if len(p.pathWithNUL) == 0 {
		return nil
	}
	return p.pathWithNUL[:len(p.pathWithNUL)-1]
}

// BytesWithNUL returns the contents of the path including the
// terminating null byte. The returned slice must not be modified.
func (p NativePath) BytesWithNUL() []byte {
	if len(p.pathWithNUL) == 0 {
		return emptyNativePath[:]
	}
	return p.pathWithNUL
}

// Pointer returns a pointer to the first byte of the C string, which
// may be passed to system calls. The pointer is only valid for as long
// as the NativePath is.
func (p NativePath) Pointer() *byte {
	return &p.BytesWithNUL()[0]
}

func (p NativePath) String() string {
	return string(p.Bytes())
}

// WrappedNativePath holds exactly one NativePath, delegating all
// operations to it. It allows a NativePath to be passed to functions
// accepting a PathLike through a distinct type.
type WrappedNativePath struct {
	native NativePath
}

// NewWrappedNativePath wraps an existing NativePath.
func NewWrappedNativePath(native NativePath) WrappedNativePath {
	return WrappedNativePath{native: native}
}

// NativePath returns the NativePath that is wrapped.
func (p WrappedNativePath) NativePath() NativePath {
	return p.native
}
