package path

// Absolutize converts a path to an absolute path without changing its
// meaning under the pathname resolution rules of POSIX (IEEE Std
// 1003.1-2017, section 4.13). The file system is not accessed, except
// for obtaining the working directory when the path is relative.
//
// Symbolic links are not expanded, and "." and ".." components are
// retained. Redundant slashes are removed, with the exception of the
// following cases:
//
//   - A path starting with exactly two slashes keeps its "//" prefix.
//     The first component following it may be interpreted in an
//     implementation-defined manner. Three or more leading slashes are
//     equivalent to a single slash.
//
//   - A trailing slash is retained. It requires the final component to
//     resolve to a directory, and causes a symbolic link in that
//     position to be followed.
func Absolutize(p PortablePath, workingDirectoryProvider WorkingDirectoryProvider) (PortablePath, error) {
	// A leading "." component carries no information once the path
	// is resolved against the working directory.
	components := p.StripCurrentDirectoryPrefix().Components()

	var normalized *PathBuffer
	if p.IsAbsolute() {
		if p.HasImplementationDefinedRoot() {
			// Discard the root directory component, as it
			// would replace "//" with "/".
			components.Next()
			normalized = NewPathBuffer(PortablePath{path: "//"})
		} else {
			normalized = NewPathBuffer(PortablePath{})
		}
	} else {
		workingDirectory, err := workingDirectoryProvider.GetWorkingDirectory()
		if err != nil {
			return PortablePath{}, err
		}
		normalized = NewPathBuffer(workingDirectory)
	}
	normalized.Extend(&components)

	if p.HasTrailingSeparator() {
		normalized.Push(PortablePath{})
	}
	return normalized.ToPortablePath(), nil
}

// AbsolutizePathLike is identical to Absolutize(), except that it
// accepts any PathLike.
func AbsolutizePathLike(p PathLike, workingDirectoryProvider WorkingDirectoryProvider) (PortablePath, error) {
	return WithPortableView(p, func(p PortablePath) (PortablePath, error) {
		return Absolutize(p, workingDirectoryProvider)
	})
}
