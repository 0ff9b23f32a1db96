package dict

import "github.com/efficientgo/core/errors"

const (
	MinKey = 1000
	MaxKey = 9999
)

var (
	ErrInvalidKey     = errors.New("Key must be 4 digits long")
	ErrNullValue      = errors.New("No null")
	ErrNullTarget     = errors.New("No null")
	ErrNoMoreElements = errors.New("No more elements")
)

// Entry 是链表桶中的一个键值对，更新时原地修改 Value
type Entry struct {
	Key   int
	Value string
}

// EntryProcessor 返回 false 时停止遍历
type EntryProcessor func(e *Entry) bool

// HashMap 是定长整数键到字符串的映射
type HashMap interface {
	Size() int
	TableLength() int
	Put(key int, value string) error
	PutPtr(key int, value *string) error
	Get(key int) (value string, ok bool, err error)
	ContainsKey(key int) (bool, error)
	Remove(key int) error
	GetValues(target *string) ([]int, error)
	ForEach(p EntryProcessor)
	Iterator() *Iterator
	String() string
}

func ValidKey(key int) bool {
	return key >= MinKey && key <= MaxKey
}
