package path

import (
	"strings"
)

// PortablePath is an immutable pathname string in POSIX notation.
// Components are separated by one or more slashes, and there is no
// notion of drive letters or other prefixes.
//
// PortablePath retains the pathname exactly as provided. This means
// that information such as the number of leading slashes and the
// presence of a trailing slash is preserved. Both are significant
// during pathname resolution.
//
// The zero value corresponds to the empty path.
type PortablePath struct {
	path string
}

// NewPortablePath creates a PortablePath from a pathname string.
func NewPortablePath(path string) PortablePath {
	return PortablePath{path: path}
}

// NewPortablePathFromBytes creates a PortablePath from the contents of
// a byte slice. The contents of the byte slice are copied.
func NewPortablePathFromBytes(path []byte) PortablePath {
	return PortablePath{path: string(path)}
}

// IsAbsolute returns true if the path starts with a slash.
func (p PortablePath) IsAbsolute() bool {
	return p.path != "" && p.path[0] == '/'
}

// HasTrailingSeparator returns true if the path ends with a slash.
func (p PortablePath) HasTrailingSeparator() bool {
	return strings.HasSuffix(p.path, "/")
}

// HasImplementationDefinedRoot returns true if the path starts with
// exactly two slashes. POSIX permits the component following such a
// prefix to be interpreted in an implementation-defined manner. Three
// or more leading slashes are equivalent to a single slash.
func (p PortablePath) HasImplementationDefinedRoot() bool {
	return strings.HasPrefix(p.path, "//") && !strings.HasPrefix(p.path, "///")
}

// StripCurrentDirectoryPrefix removes the first component of a
// relative path if it is equal to ".". Any slashes following it are
// removed as well. Other paths are returned as is.
func (p PortablePath) StripCurrentDirectoryPrefix() PortablePath {
	if p.path == "." {
		return PortablePath{}
	}
	if strings.HasPrefix(p.path, "./") {
		return PortablePath{path: stripOneOrMoreSlashes(p.path[1:])}
	}
	return p
}

// Components returns an iterator over the components of the path.
func (p PortablePath) Components() ComponentIterator {
	return ComponentIterator{remainder: p.path}
}

// GetUNIXString returns the pathname string exactly as it was provided
// when the PortablePath was created.
func (p PortablePath) GetUNIXString() string {
	return p.path
}

func (p PortablePath) String() string {
	return p.path
}
