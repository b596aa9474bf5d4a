package path

// PathBuffer is a growable pathname that can be extended by pushing
// additional segments onto it. It performs no normalization of ".."
// or "." components.
type PathBuffer struct {
	path []byte
}

// NewPathBuffer creates a PathBuffer whose initial contents are equal
// to the provided path.
func NewPathBuffer(base PortablePath) *PathBuffer {
	return &PathBuffer{
		path: append([]byte(nil), base.path...),
	}
}

// Push a segment onto the buffer.
//
// If the segment is absolute, it replaces the contents of the buffer.
// Otherwise, a slash is inserted if the buffer is non-empty and does
// not already end with one, followed by the segment. Pushing an empty
// segment onto a non-empty buffer thus only ensures that the buffer
// ends with a slash.
func (b *PathBuffer) Push(segment PortablePath) {
	if segment.IsAbsolute() {
		b.path = append(b.path[:0], segment.path...)
		return
	}
	if len(b.path) > 0 && b.path[len(b.path)-1] != '/' {
		b.path = append(b.path, '/')
	}
	b.path = append(b.path, segment.path...)
}

// PushComponent pushes a single path component onto the buffer.
// RootDirectoryComponent resets the buffer to "/".
func (b *PathBuffer) PushComponent(component PathComponent) {
	b.Push(PortablePath{path: component.GetUNIXString()})
}

// Extend the buffer with all components remaining in an iterator.
func (b *PathBuffer) Extend(components *ComponentIterator) {
	for {
		component, ok := components.Next()
		if !ok {
			return
		}
		b.PushComponent(component)
	}
}

// ToPortablePath returns a copy of the contents of the buffer.
func (b *PathBuffer) ToPortablePath() PortablePath {
	return PortablePath{path: string(b.path)}
}

// GetUNIXString returns the contents of the buffer as a string.
func (b *PathBuffer) GetUNIXString() string {
	return string(b.path)
}
