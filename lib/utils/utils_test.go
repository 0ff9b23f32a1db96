package utils

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToLine(t *testing.T) {
	line := ToLine("MPUT", "1000", "dog")
	require.Equal(t, [][]byte{[]byte("MPUT"), []byte("1000"), []byte("dog")}, line)
	require.Empty(t, ToLine())
}

func TestRandomValuesInRange(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		k, err := strconv.Atoi(RandomMapKey(r))
		require.NoError(t, err)
		require.GreaterOrEqual(t, k, 1000)
		require.LessOrEqual(t, k, 9999)

		w := RandomWord(r, 5)
		require.GreaterOrEqual(t, len(w), 1)
		require.LessOrEqual(t, len(w), 5)
		for _, c := range w {
			require.True(t, c >= 'a' && c <= 'z')
		}
	}
}
