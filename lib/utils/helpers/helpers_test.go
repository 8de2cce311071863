package helpers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHelpers(t *testing.T) {
	t.Run(`Truncate check`, func(t *testing.T) {
		require.Equal(t, "abc", Truncate("abc", 1000))
		require.Equal(t, "ab", Truncate("abcd", 2))
		require.Equal(t, "", Truncate("abcd", 0))
		// multi-byte reasons must not be cut mid-rune
		require.Equal(t, "Lý", Truncate("Lý do", 2))
		long := strings.Repeat("ộ", 1200)
		require.Equal(t, 1000, len([]rune(Truncate(long, 1000))))
	})
}
