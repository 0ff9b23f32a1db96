package growth

// Sequence 是一张表可以使用的容量序列，游标只会向后移动
type Sequence struct {
	capacities []int
	cursor     int
}

func NewSequence(capacities ...int) Sequence {
	if len(capacities) == 0 {
		panic("empty growth sequence")
	}
	cp := make([]int, len(capacities))
	copy(cp, capacities)
	return Sequence{capacities: cp}
}

// MapPrimes 是 ChainedHashMap 使用的容量序列
func MapPrimes() Sequence {
	return NewSequence(2, 5, 11, 23, 47, 97, 197, 397)
}

// SetPrimes 是 BoundedHashSet 使用的容量序列
func SetPrimes() Sequence {
	return NewSequence(2, 5, 11, 23, 47, 97, 197, 397, 797, 1597)
}

func (s *Sequence) Current() int {
	return s.capacities[s.cursor]
}

func (s *Sequence) Exhausted() bool {
	return s.cursor == len(s.capacities)-1
}

// Next 移动到下一个容量，已到末尾时返回 false 且游标不变
func (s *Sequence) Next() (capacity int, ok bool) {
	if s.Exhausted() {
		return s.Current(), false
	}
	s.cursor++
	return s.Current(), true
}

func (s *Sequence) Max() int {
	return s.capacities[len(s.capacities)-1]
}
