package cursor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCursor(t *testing.T) {
	t.Run("fresh", func(t *testing.T) {
		c := New([]byte("GET / HTTP/1.1"))
		require.Equal(t, 0, c.Position())
		require.Equal(t, "GET / HTTP/1.1", string(c.Remaining()))
	})

	t.Run("advance", func(t *testing.T) {
		c := New([]byte("GET / HTTP/1.1"))
		c.Advance(3)
		require.Equal(t, 3, c.Position())
		require.Equal(t, " / HTTP/1.1", string(c.Remaining()))
		c.Advance(0)
		require.Equal(t, 3, c.Position())
		c.Advance(11)
		require.Equal(t, 14, c.Position())
		require.Empty(t, c.Remaining())
	})

	t.Run("empty", func(t *testing.T) {
		c := New(nil)
		require.Empty(t, c.Remaining())
		require.Equal(t, 0, c.Position())
	})

	t.Run("advance past the end", func(t *testing.T) {
		c := New([]byte("GET"))
		c.Advance(4)
		require.Equal(t, 4, c.Position())
		require.Panics(t, func() {
			_ = c.Remaining()
		})
	})
}
