package growth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMapPrimes(t *testing.T) {
	seq := MapPrimes()
	require.Equal(t, 2, seq.Current())
	var got []int
	for {
		c, ok := seq.Next()
		if !ok {
			require.Equal(t, 397, c)
			break
		}
		got = append(got, c)
	}
	require.Equal(t, []int{5, 11, 23, 47, 97, 197, 397}, got)
	require.True(t, seq.Exhausted())
	require.Equal(t, 397, seq.Current())
}

func TestSetPrimes(t *testing.T) {
	seq := SetPrimes()
	require.Equal(t, 1597, seq.Max())
	steps := 0
	for !seq.Exhausted() {
		_, ok := seq.Next()
		require.True(t, ok)
		steps++
	}
	require.Equal(t, 9, steps)
	_, ok := seq.Next()
	require.False(t, ok)
}

func TestSequenceCopiesInput(t *testing.T) {
	caps := []int{3, 7}
	seq := NewSequence(caps...)
	caps[0] = 100
	require.Equal(t, 3, seq.Current())
}

func TestEmptySequencePanics(t *testing.T) {
	require.Panics(t, func() { NewSequence() })
}
