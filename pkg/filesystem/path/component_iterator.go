package path

import (
	"strings"
)

func stripOneOrMoreSlashes(p string) string {
	for {
		p = p[1:]
		if p == "" || p[0] != '/' {
			return p
		}
	}
}

// ComponentIterator decomposes a pathname into its components. It is
// a forward-only iterator. Decomposing the same path again requires
// calling PortablePath.Components() once more.
//
// Runs of slashes are treated as a single separator, meaning that
// empty components are never yielded. An absolute path yields exactly
// one RootDirectoryComponent, regardless of the number of leading
// slashes. "." and ".." are yielded as they appear in the path.
type ComponentIterator struct {
	remainder string
	started   bool
}

// Next returns the next component of the path. The boolean is false
// when the path has been consumed entirely.
func (it *ComponentIterator) Next() (PathComponent, bool) {
	if !it.started {
		it.started = true
		if it.remainder != "" && it.remainder[0] == '/' {
			it.remainder = stripOneOrMoreSlashes(it.remainder)
			return RootDirectoryComponent, true
		}
	}
	if it.remainder == "" {
		return PathComponent{}, false
	}

	var name string
	if slash := strings.IndexByte(it.remainder, '/'); slash == -1 {
		// Path no longer contains a slash. Consume it entirely.
		name = it.remainder
		it.remainder = ""
	} else {
		// Consume the next component and as many slashes as
		// possible, so that no empty components remain.
		name = it.remainder[:slash]
		it.remainder = stripOneOrMoreSlashes(it.remainder[slash:])
	}

	switch name {
	case ".":
		return CurrentDirectoryComponent, true
	case "..":
		return ParentDirectoryComponent, true
	default:
		return NewNormalPathComponent(Component{name: name}), true
	}
}

// Collect drains the iterator, returning all of the remaining
// components in a list.
func (it *ComponentIterator) Collect() []PathComponent {
	var components []PathComponent
	for {
		c, ok := it.Next()
		if !ok {
			return components
		}
		components = append(components, c)
	}
}
