package path

import (
	"strings"
)

// Component of a pathname. This type is nothing more than a string that
// is guaranteed to be a valid Unix filename.
type Component struct {
	name string
}

// NewComponent creates a new pathname component. Creation fails in case
// the name is empty, ".", "..", contains a slash, or is not a valid
// C string.
func NewComponent(name string) (Component, bool) {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, "/\x00") {
		return Component{}, false
	}
	return Component{name: name}, true
}

// MustNewComponent is identical to NewComponent, except that it panics
// upon failure.
func MustNewComponent(name string) Component {
	c, ok := NewComponent(name)
	if !ok {
		panic("Invalid component name")
	}
	return c
}

func (c Component) String() string {
	return c.name
}

// ComponentKind is the kind of element yielded by ComponentIterator.
type ComponentKind int

const (
	// ComponentKindRootDirectory corresponds to one or more leading
	// slashes of an absolute path.
	ComponentKindRootDirectory ComponentKind = iota + 1
	// ComponentKindCurrentDirectory corresponds to a "." segment.
	ComponentKindCurrentDirectory
	// ComponentKindParentDirectory corresponds to a ".." segment.
	ComponentKindParentDirectory
	// ComponentKindNormal corresponds to a filename.
	ComponentKindNormal
)

// PathComponent is a single element of a decomposed pathname. Unlike
// Component, it may also denote the root directory or one of the
// special "." and ".." entries.
type PathComponent struct {
	kind ComponentKind
	name Component
}

var (
	// RootDirectoryComponent is yielded once at the start of every
	// absolute path.
	RootDirectoryComponent = PathComponent{kind: ComponentKindRootDirectory}
	// CurrentDirectoryComponent is yielded for "." segments.
	CurrentDirectoryComponent = PathComponent{kind: ComponentKindCurrentDirectory}
	// ParentDirectoryComponent is yielded for ".." segments.
	ParentDirectoryComponent = PathComponent{kind: ComponentKindParentDirectory}
)

// NewNormalPathComponent creates a PathComponent that refers to a
// filename.
func NewNormalPathComponent(name Component) PathComponent {
	return PathComponent{
		kind: ComponentKindNormal,
		name: name,
	}
}

// Kind returns the kind of the path component.
func (c PathComponent) Kind() ComponentKind {
	return c.kind
}

// Name returns the filename of the path component. The boolean is
// false for anything other than ComponentKindNormal.
func (c PathComponent) Name() (Component, bool) {
	return c.name, c.kind == ComponentKindNormal
}

// GetUNIXString returns the textual form of the path component, as it
// would be pushed onto a PathBuffer.
func (c PathComponent) GetUNIXString() string {
	switch c.kind {
	case ComponentKindRootDirectory:
		return "/"
	case ComponentKindCurrentDirectory:
		return "."
	case ComponentKindParentDirectory:
		return ".."
	case ComponentKindNormal:
		return c.name.String()
	default:
		panic("Invalid path component kind")
	}
}
