package set

import (
	"math"
	"strconv"
	"strings"

	"github.com/efficientgo/core/errors"

	"fixedhash/lib/growth"
)

const (
	maxKeyLen  = 5
	hashPrime  = 19
	epsilon    = 0.00001
	deletedStr = "DELETED"
	emptyStr   = "null"
)

var (
	ErrInvalidKey        = errors.New("Invalid Key")
	ErrInvalidThreshold  = errors.New("Not a predefined threshold value")
	ErrTableFull         = errors.New("table is full")
	ErrCapacityExhausted = errors.New("Max size")
)

// Thresholds 是允许的负载因子阈值
var Thresholds = [...]float64{0.45, 0.60, 0.75, 0.85}

const DefaultThreshold = 0.75

// Consumer 返回 false 时停止遍历
type Consumer func(string) bool

type slotState uint8

const (
	empty slotState = iota
	deleted
	occupied
)

type slot struct {
	state slotState
	value string
}

// BoundedHashSet 使用线性探测的开放寻址法，元素只能是 1 到 5 个小写字母
type BoundedHashSet struct {
	table     []slot
	size      int
	caps      growth.Sequence
	threshold float64
	// 重新插入期间不再触发扩容
	rehashing bool
}

func NewBoundedHashSet() *BoundedHashSet {
	caps := growth.SetPrimes()
	return &BoundedHashSet{
		table:     make([]slot, caps.Current()),
		caps:      caps,
		threshold: DefaultThreshold,
	}
}

func ValidKey(key string) bool {
	if len(key) == 0 || len(key) > maxKeyLen {
		return false
	}
	for i := 0; i < len(key); i++ {
		if key[i] < 'a' || key[i] > 'z' {
			return false
		}
	}
	return true
}

// MyHashCode 以 19 为底计算多项式哈希，不取模
func MyHashCode(key string) (int, error) {
	if !ValidKey(key) {
		return 0, errors.Wrapf(ErrInvalidKey, "hash %q", key)
	}
	hash := int(key[0])
	for i := 1; i < len(key); i++ {
		hash = hash*hashPrime + int(key[i])
	}
	return hash, nil
}

func (s *BoundedHashSet) home(key string) int {
	code, _ := MyHashCode(key)
	return code % len(s.table)
}

func (s *BoundedHashSet) Size() int {
	return s.size
}

func (s *BoundedHashSet) TableLength() int {
	return len(s.table)
}

func (s *BoundedHashSet) LoadFactor() float64 {
	return float64(s.size) / float64(len(s.table))
}

func (s *BoundedHashSet) LoadFactorThreshold() float64 {
	return s.threshold
}

// SetLoadFactorThreshold 只接受与预定义阈值相差不超过 1e-5 的值
func (s *BoundedHashSet) SetLoadFactorThreshold(threshold float64) error {
	for _, t := range Thresholds {
		if math.Abs(t-threshold) < epsilon {
			s.threshold = t
			return nil
		}
	}
	return errors.Wrapf(ErrInvalidThreshold, "threshold %v", threshold)
}

// Add 插入 key，已存在时什么都不做。探测途中遇到的第一个墓碑优先被复用
func (s *BoundedHashSet) Add(key string) error {
	if !ValidKey(key) {
		return errors.Wrapf(ErrInvalidKey, "add %q", key)
	}
	index := s.home(key)
	origin := index
	firstDeleted := -1
	for {
		cur := &s.table[index]
		if cur.state == empty {
			if firstDeleted != -1 {
				cur = &s.table[firstDeleted]
			}
			cur.state, cur.value = occupied, key
			s.size++
			break
		}
		if cur.state == occupied && cur.value == key {
			return nil
		}
		if cur.state == deleted && firstDeleted == -1 {
			firstDeleted = index
		}
		index = (index + 1) % len(s.table)
		if index == origin {
			return errors.Wrapf(ErrTableFull, "add %q", key)
		}
	}
	if !s.rehashing && s.LoadFactor() > s.threshold {
		return s.rehash()
	}
	return nil
}

// lookup 返回 key 所在的下标，不存在时返回 -1
func (s *BoundedHashSet) lookup(key string) int {
	index := s.home(key)
	origin := index
	for s.table[index].state != empty {
		if s.table[index].state == occupied && s.table[index].value == key {
			return index
		}
		index = (index + 1) % len(s.table)
		if index == origin {
			break
		}
	}
	return -1
}

func (s *BoundedHashSet) Remove(key string) error {
	if !ValidKey(key) {
		return errors.Wrapf(ErrInvalidKey, "remove %q", key)
	}
	if index := s.lookup(key); index >= 0 {
		s.table[index] = slot{state: deleted}
		s.size--
	}
	return nil
}

func (s *BoundedHashSet) Contains(key string) (bool, error) {
	if !ValidKey(key) {
		return false, errors.Wrapf(ErrInvalidKey, "contains %q", key)
	}
	return s.lookup(key) >= 0, nil
}

// ContainsAll 在 keys 为 nil、含有非法元素或缺少任一元素时返回 false
func (s *BoundedHashSet) ContainsAll(keys []string) bool {
	if keys == nil {
		return false
	}
	for _, key := range keys {
		if !ValidKey(key) || s.lookup(key) < 0 {
			return false
		}
	}
	return true
}

// ForEach 按槽位顺序遍历存活元素
func (s *BoundedHashSet) ForEach(c Consumer) {
	for i := range s.table {
		if s.table[i].state == occupied && !c(s.table[i].value) {
			return
		}
	}
}

func (s *BoundedHashSet) Members() []string {
	res := make([]string, 0, s.size)
	s.ForEach(func(member string) bool {
		res = append(res, member)
		return true
	})
	return res
}

// rehash 丢弃墓碑，按旧槽位顺序把存活元素重新插入下一个容量的表
func (s *BoundedHashSet) rehash() error {
	length, ok := s.caps.Next()
	if !ok {
		return errors.Wrapf(ErrCapacityExhausted, "grow beyond %d", length)
	}
	members := s.Members()
	s.table = make([]slot, length)
	s.size = 0
	s.rehashing = true
	defer func() { s.rehashing = false }()
	for _, member := range members {
		if err := s.Add(member); err != nil {
			return err
		}
	}
	return nil
}

func (s *BoundedHashSet) String() string {
	var sb strings.Builder
	for i, cur := range s.table {
		sb.WriteString("Index ")
		sb.WriteString(strconv.Itoa(i))
		sb.WriteString(": ")
		switch cur.state {
		case empty:
			sb.WriteString(emptyStr)
		case deleted:
			sb.WriteString(deletedStr)
		default:
			sb.WriteString(cur.value)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
