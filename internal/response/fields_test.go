package response

import (
	"strconv"
	"testing"

	"github.com/indigo-web/fixhttp/config"
	"github.com/stretchr/testify/require"
)

func TestFields_Place(t *testing.T) {
	t.Run("first vacant slot", func(t *testing.T) {
		var fields Fields
		fields.Headers[0] = Slot{Header: Header{"A", "1"}, Occupied: true}
		fields.Headers[2] = Slot{Header: Header{"C", "3"}, Occupied: true}
		fields.Occupied = 2

		require.True(t, fields.Place(Header{"B", "2"}))
		require.Equal(t, Slot{Header: Header{"B", "2"}, Occupied: true}, fields.Headers[1])
		require.True(t, fields.Place(Header{"D", "4"}))
		require.Equal(t, Slot{Header: Header{"D", "4"}, Occupied: true}, fields.Headers[3])
		require.Equal(t, 4, fields.Occupied)
	})

	t.Run("full", func(t *testing.T) {
		var fields Fields
		for i := 0; i < config.HeadersCount; i++ {
			require.True(t, fields.Place(Header{"Key" + strconv.Itoa(i), "value"}))
		}

		snapshot := fields.Headers
		require.False(t, fields.Place(Header{"Overflow", "value"}))
		require.Equal(t, config.HeadersCount, fields.Occupied)
		require.Equal(t, snapshot, fields.Headers)
	})
}
