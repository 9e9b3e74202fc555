package method

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMethod(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		require.Len(t, List, int(Count))
		for i, method := range List {
			require.Equal(t, Method(i+1), method)
		}
	})

	t.Run("tokens", func(t *testing.T) {
		tokens := []string{"GET", "HEAD", "POST", "PUT", "DELETE", "CONNECT", "OPTIONS", "TRACE", "PATCH"}
		for i, method := range List {
			require.Equal(t, tokens[i], method.String())
		}
	})

	t.Run("no token is a prefix of another", func(t *testing.T) {
		for _, a := range List {
			for _, b := range List {
				if a == b {
					continue
				}

				require.False(t, len(a.String()) <= len(b.String()) && b.String()[:len(a.String())] == a.String(),
					"%s is a prefix of %s", a, b)
			}
		}
	})

	t.Run("unknown", func(t *testing.T) {
		require.Equal(t, "Unknown", Unknown.String())
		require.Equal(t, "Method(42)", Method(42).String())
	})
}
