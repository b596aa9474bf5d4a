package path_test

import (
	"testing"

	"github.com/buildbarn/bb-pathname/pkg/filesystem/path"
	"github.com/stretchr/testify/require"
)

func normal(name string) path.PathComponent {
	return path.NewNormalPathComponent(path.MustNewComponent(name))
}

func TestComponentIterator(t *testing.T) {
	for _, data := range []struct {
		path       string
		components []path.PathComponent
	}{
		{"", nil},
		{"hello", []path.PathComponent{normal("hello")}},
		{"hello/", []path.PathComponent{normal("hello")}},
		{"hello//world", []path.PathComponent{normal("hello"), normal("world")}},
		{".hidden", []path.PathComponent{normal(".hidden")}},
		{"...", []path.PathComponent{normal("...")}},
		{".", []path.PathComponent{path.CurrentDirectoryComponent}},
		{"./hello", []path.PathComponent{path.CurrentDirectoryComponent, normal("hello")}},
		{"..", []path.PathComponent{path.ParentDirectoryComponent}},
		{"/", []path.PathComponent{path.RootDirectoryComponent}},
		{"//", []path.PathComponent{path.RootDirectoryComponent}},
		{"///", []path.PathComponent{path.RootDirectoryComponent}},
		{"//hello", []path.PathComponent{path.RootDirectoryComponent, normal("hello")}},
		{
			"/a//b/./../c/",
			[]path.PathComponent{
				path.RootDirectoryComponent,
				normal("a"),
				normal("b"),
				path.CurrentDirectoryComponent,
				path.ParentDirectoryComponent,
				normal("c"),
			},
		},
	} {
		t.Run(data.path, func(t *testing.T) {
			components := path.NewPortablePath(data.path).Components()
			require.Equal(t, data.components, components.Collect())

			// The iterator remains exhausted.
			_, ok := components.Next()
			require.False(t, ok)
		})
	}

	t.Run("Incremental", func(t *testing.T) {
		components := path.NewPortablePath("/hello/world").Components()

		c, ok := components.Next()
		require.True(t, ok)
		require.Equal(t, path.RootDirectoryComponent, c)

		require.Equal(t, []path.PathComponent{normal("hello"), normal("world")}, components.Collect())
	})
}
