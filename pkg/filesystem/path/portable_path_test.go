package path_test

import (
	"testing"

	"github.com/buildbarn/bb-pathname/pkg/filesystem/path"
	"github.com/stretchr/testify/require"
)

func TestPortablePath(t *testing.T) {
	t.Run("IsAbsolute", func(t *testing.T) {
		require.False(t, path.NewPortablePath("").IsAbsolute())
		require.False(t, path.NewPortablePath("hello").IsAbsolute())
		require.False(t, path.NewPortablePath("./hello").IsAbsolute())
		require.True(t, path.NewPortablePath("/").IsAbsolute())
		require.True(t, path.NewPortablePath("//hello").IsAbsolute())
	})

	t.Run("HasTrailingSeparator", func(t *testing.T) {
		require.False(t, path.NewPortablePath("").HasTrailingSeparator())
		require.False(t, path.NewPortablePath("/hello").HasTrailingSeparator())
		require.True(t, path.NewPortablePath("/").HasTrailingSeparator())
		require.True(t, path.NewPortablePath("hello/").HasTrailingSeparator())
	})

	t.Run("HasImplementationDefinedRoot", func(t *testing.T) {
		require.False(t, path.NewPortablePath("/").HasImplementationDefinedRoot())
		require.False(t, path.NewPortablePath("/hello").HasImplementationDefinedRoot())
		require.True(t, path.NewPortablePath("//").HasImplementationDefinedRoot())
		require.True(t, path.NewPortablePath("//hello").HasImplementationDefinedRoot())
		require.False(t, path.NewPortablePath("///hello").HasImplementationDefinedRoot())
		require.False(t, path.NewPortablePath("hello//").HasImplementationDefinedRoot())
	})

	t.Run("StripCurrentDirectoryPrefix", func(t *testing.T) {
		for _, data := range [][2]string{
			{"", ""},
			{".", ""},
			{"./", ""},
			{"./hello", "hello"},
			{".//hello/", "hello/"},
			{"././hello", "./hello"},
			{".hello", ".hello"},
			{"..", ".."},
			{"../hello", "../hello"},
			{"hello/.", "hello/."},
			{"/.", "/."},
		} {
			require.Equal(t, data[1], path.NewPortablePath(data[0]).StripCurrentDirectoryPrefix().GetUNIXString(), data[0])
		}
	})

	t.Run("FromBytes", func(t *testing.T) {
		b := []byte("/hello")
		p := path.NewPortablePathFromBytes(b)
		b[1] = 'j'
		require.Equal(t, "/hello", p.String())
	})
}
