package dict

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPutAndGetAndRehash(t *testing.T) {
	m := NewChainedHashMap()
	for _, v := range []string{"1", "!", "q", "10"} {
		require.NoError(t, m.Put(1000, v))
	}
	_, ok, err := m.Get(2000)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, m.Put(2000, "heheheha"))
	require.NoError(t, m.Put(2000, ":)"))
	require.Equal(t, 2, m.Size())
	v, ok, err := m.Get(1000)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "10", v)

	err = m.Put(10000, "Not Valid")
	require.ErrorIs(t, err, ErrInvalidKey)
	require.ErrorIs(t, m.PutPtr(1000, nil), ErrNullValue)
	require.Equal(t, 2, m.Size())

	for _, k := range []int{2001, 3002, 5000, 7000} {
		require.NoError(t, m.Put(k, "x"))
	}
	require.Equal(t, 6, m.Size())
	require.Equal(t, 2, m.TableLength())
	require.NoError(t, m.Put(9001, "over 9000"))
	require.Equal(t, 7, m.Size())
	require.Equal(t, 5, m.TableLength())
}

func TestRehashMovesEntries(t *testing.T) {
	m := NewChainedHashMap()
	for i := 1; i <= 6; i++ {
		require.NoError(t, m.Put(i*1000+1, "v"))
	}
	require.Equal(t, 2, m.TableLength())
	require.NoError(t, m.Put(7001, "v"))
	require.Equal(t, 5, m.TableLength())
	// 53228 % 5 == 3
	require.Contains(t, m.String(), "3 -> (1001, v)")
}

func TestInvalidKeys(t *testing.T) {
	m := NewChainedHashMap()
	for _, k := range []int{0, 999, 10000, -1234} {
		_, err := m.ContainsKey(k)
		require.ErrorIs(t, err, ErrInvalidKey)
		_, _, err = m.Get(k)
		require.ErrorIs(t, err, ErrInvalidKey)
		require.ErrorIs(t, m.Remove(k), ErrInvalidKey)
		require.ErrorIs(t, m.Put(k, "v"), ErrInvalidKey)
	}
	require.EqualError(t, ErrInvalidKey, "Key must be 4 digits long")
	require.Equal(t, 0, m.Size())
}

func TestContainsKey(t *testing.T) {
	m := NewChainedHashMap()
	require.NoError(t, m.Put(1000, "cheese"))
	ok, err := m.ContainsKey(1000)
	require.NoError(t, err)
	require.True(t, ok)
	ok, _ = m.ContainsKey(1001)
	require.False(t, ok)
	ok, _ = m.ContainsKey(2000)
	require.False(t, ok)
}

func TestGetValues(t *testing.T) {
	m := NewChainedHashMap()
	_, err := m.GetValues(nil)
	require.ErrorIs(t, err, ErrNullTarget)
	require.EqualError(t, err, "values: No null")

	put := map[int]string{1000: "dog", 2000: "dog", 3000: "cat", 4000: "cat", 5000: "dog", 9999: "dat"}
	for _, k := range []int{1000, 2000, 3000, 4000, 5000, 9999} {
		require.NoError(t, m.Put(k, put[k]))
	}
	require.Equal(t, 6, m.Size())
	require.Equal(t, []int{9999}, m.Values("dat"))
	require.Equal(t, []int{1000, 2000, 5000}, m.Values("dog"))
	require.Equal(t, []int{}, m.Values("heheheha"))
}

func TestRemove(t *testing.T) {
	m := NewChainedHashMap()
	require.NoError(t, m.Remove(4321))
	require.NoError(t, m.Put(1000, "lol"))
	require.NoError(t, m.Remove(1000))
	ok, _ := m.ContainsKey(1000)
	require.False(t, ok)

	require.NoError(t, m.Put(1000, "T-T"))
	require.NoError(t, m.Put(2000, "T=T"))
	require.Equal(t, 2, m.Size())
	require.NoError(t, m.Remove(1000))
	require.NoError(t, m.Remove(2000))
	require.NoError(t, m.Remove(2000))
	require.Equal(t, 0, m.Size())
}

func TestString(t *testing.T) {
	m := NewChainedHashMap()
	require.Equal(t, "0 -> \n1 -> \n", m.String())
	for _, k := range []int{1000, 1001, 1002} {
		require.NoError(t, m.Put(k, "-.-"))
	}
	require.Equal(t, "0 -> (1001, -.-) \n"+
		"1 -> (1000, -.-) (1002, -.-) \n", m.String())
	for k := 1003; k <= 1007; k++ {
		require.NoError(t, m.Put(k, "-.-"))
	}
	require.Equal(t, "0 -> (1002, -.-) (1007, -.-) \n"+
		"1 -> (1005, -.-) (1000, -.-) \n"+
		"2 -> (1003, -.-) \n"+
		"3 -> (1001, -.-) (1006, -.-) \n"+
		"4 -> (1004, -.-) \n", m.String())
}

func TestIterator(t *testing.T) {
	m := NewChainedHashMap()
	require.False(t, m.Iterator().HasNext())

	require.NoError(t, m.Put(1000, "1"))
	it := m.Iterator()
	require.True(t, it.HasNext())
	e, err := it.Next()
	require.NoError(t, err)
	require.Equal(t, 1000, e.Key)
	require.False(t, it.HasNext())
	_, err = it.Next()
	require.ErrorIs(t, err, ErrNoMoreElements)

	require.NoError(t, m.Put(1000, "heheheha"))
	require.NoError(t, m.Put(2000, "2"))
	require.NoError(t, m.Put(3000, "3"))
	require.NoError(t, m.Remove(1000))
	var keys []int
	for it := m.Iterator(); it.HasNext(); {
		e, err := it.Next()
		require.NoError(t, err)
		keys = append(keys, e.Key)
	}
	require.ElementsMatch(t, []int{2000, 3000}, keys)
}

func TestIteratorOrderMatchesForEach(t *testing.T) {
	m := NewChainedHashMap()
	for k := 1000; k < 1100; k++ {
		require.NoError(t, m.Put(k, "v"))
	}
	var fromEach []int
	m.ForEach(func(e *Entry) bool {
		fromEach = append(fromEach, e.Key)
		return true
	})
	var fromIter []int
	for it := m.Iterator(); it.HasNext(); {
		e, _ := it.Next()
		fromIter = append(fromIter, e.Key)
	}
	require.Equal(t, fromEach, fromIter)
	require.Len(t, fromIter, 100)
}

func TestGrowthStopsAtMax(t *testing.T) {
	m := NewChainedHashMap()
	for k := MinKey; k <= MaxKey; k++ {
		require.NoError(t, m.Put(k, "v"))
		if m.Size() <= 3*m.TableLength() {
			continue
		}
		require.Equal(t, 397, m.TableLength())
	}
	require.Equal(t, 9000, m.Size())
	require.Equal(t, 397, m.TableLength())
}

func TestRandomOperations(t *testing.T) {
	m := NewChainedHashMap()
	want := make(map[int]string)
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 5000; i++ {
		k := MinKey + r.Intn(MaxKey-MinKey+1)
		if r.Intn(3) == 0 {
			require.NoError(t, m.Remove(k))
			delete(want, k)
		} else {
			v := string(rune('a' + r.Intn(26)))
			require.NoError(t, m.Put(k, v))
			want[k] = v
		}
		require.Equal(t, len(want), m.Size())
	}
	for k, v := range want {
		got, ok, err := m.Get(k)
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, v, got)
	}
	m.ForEach(func(e *Entry) bool {
		require.Equal(t, want[e.Key], e.Value)
		return true
	})
}
