package dict

import (
	"strconv"
	"strings"

	"github.com/efficientgo/core/errors"

	"fixedhash/lib/growth"
)

const (
	hashP = 104729
	hashA = 2347
	hashB = 7919

	// 平均链长超过该值时扩容
	resizeThreshold = 3
)

// ChainedHashMap 使用拉链法解决冲突，不是线程安全的
type ChainedHashMap struct {
	table [][]*Entry
	size  int
	caps  growth.Sequence
}

func NewChainedHashMap() *ChainedHashMap {
	caps := growth.MapPrimes()
	return &ChainedHashMap{
		table: make([][]*Entry, caps.Current()),
		caps:  caps,
	}
}

func bucketOf(key, length int) int {
	return ((hashA*key + hashB) % hashP) % length
}

func (m *ChainedHashMap) Size() int {
	return m.size
}

func (m *ChainedHashMap) TableLength() int {
	return len(m.table)
}

func (m *ChainedHashMap) Put(key int, value string) error {
	return m.PutPtr(key, &value)
}

// PutPtr 中 value 为 nil 表示缺失的值
func (m *ChainedHashMap) PutPtr(key int, value *string) error {
	if !ValidKey(key) {
		return errors.Wrapf(ErrInvalidKey, "put %d", key)
	}
	if value == nil {
		return errors.Wrapf(ErrNullValue, "put %d", key)
	}
	index := bucketOf(key, len(m.table))
	for _, e := range m.table[index] {
		if e.Key == key {
			e.Value = *value
			return nil
		}
	}
	m.table[index] = append(m.table[index], &Entry{Key: key, Value: *value})
	m.size++
	if float64(m.size)/float64(len(m.table)) > resizeThreshold {
		m.rehash()
	}
	return nil
}

func (m *ChainedHashMap) find(key int) *Entry {
	for _, e := range m.table[bucketOf(key, len(m.table))] {
		if e.Key == key {
			return e
		}
	}
	return nil
}

func (m *ChainedHashMap) Get(key int) (value string, ok bool, err error) {
	if !ValidKey(key) {
		return "", false, errors.Wrapf(ErrInvalidKey, "get %d", key)
	}
	e := m.find(key)
	if e == nil {
		return "", false, nil
	}
	return e.Value, true, nil
}

func (m *ChainedHashMap) ContainsKey(key int) (bool, error) {
	if !ValidKey(key) {
		return false, errors.Wrapf(ErrInvalidKey, "contains %d", key)
	}
	return m.find(key) != nil, nil
}

// Remove 删除 key 对应的键值对，key 不存在时什么都不做
func (m *ChainedHashMap) Remove(key int) error {
	if !ValidKey(key) {
		return errors.Wrapf(ErrInvalidKey, "remove %d", key)
	}
	index := bucketOf(key, len(m.table))
	bucket := m.table[index]
	for i, e := range bucket {
		if e.Key == key {
			copy(bucket[i:], bucket[i+1:])
			bucket[len(bucket)-1] = nil
			m.table[index] = bucket[:len(bucket)-1]
			m.size--
			return nil
		}
	}
	return nil
}

// GetValues 按桶下标升序、桶内插入顺序返回值等于 target 的所有键
func (m *ChainedHashMap) GetValues(target *string) ([]int, error) {
	if target == nil {
		return nil, errors.Wrapf(ErrNullTarget, "values")
	}
	keys := make([]int, 0)
	m.ForEach(func(e *Entry) bool {
		if e.Value == *target {
			keys = append(keys, e.Key)
		}
		return true
	})
	return keys, nil
}

// Values 是 GetValues 的非空版本
func (m *ChainedHashMap) Values(target string) []int {
	keys, _ := m.GetValues(&target)
	return keys
}

func (m *ChainedHashMap) ForEach(p EntryProcessor) {
	for _, bucket := range m.table {
		for _, e := range bucket {
			if !p(e) {
				return
			}
		}
	}
}

// rehash 按旧表的桶顺序和桶内顺序把 Entry 重新放入新表，到达最大容量后不再扩容
func (m *ChainedHashMap) rehash() {
	length, ok := m.caps.Next()
	if !ok {
		return
	}
	table := make([][]*Entry, length)
	m.ForEach(func(e *Entry) bool {
		index := bucketOf(e.Key, length)
		table[index] = append(table[index], e)
		return true
	})
	m.table = table
}

func (m *ChainedHashMap) String() string {
	var sb strings.Builder
	for i, bucket := range m.table {
		sb.WriteString(strconv.Itoa(i))
		sb.WriteString(" -> ")
		for _, e := range bucket {
			sb.WriteByte('(')
			sb.WriteString(strconv.Itoa(e.Key))
			sb.WriteString(", ")
			sb.WriteString(e.Value)
			sb.WriteString(") ")
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (m *ChainedHashMap) Iterator() *Iterator {
	return &Iterator{table: m.table}
}

// Iterator 是单次遍历的惰性迭代器，遍历期间修改 map 时元素的可见性不确定
type Iterator struct {
	table  [][]*Entry
	bucket int
	offset int
}

func (it *Iterator) HasNext() bool {
	for it.bucket < len(it.table) {
		if it.offset < len(it.table[it.bucket]) {
			return true
		}
		it.bucket++
		it.offset = 0
	}
	return false
}

func (it *Iterator) Next() (*Entry, error) {
	if !it.HasNext() {
		return nil, ErrNoMoreElements
	}
	e := it.table[it.bucket][it.offset]
	it.offset++
	return e, nil
}
