package database

import (
	"strings"

	"fixedhash/interface/redis"
)

var (
	cmdMap = make(map[string]*command)
)

// ExecFunc 在对应表的锁内执行，args 不包含命令名
type ExecFunc func(t *Tables, args [][]byte) redis.Reply

type tableKind int

const (
	noTable tableKind = iota
	mapTable
	setTable
)

type command struct {
	executor ExecFunc
	table    tableKind
	arity    int
}

// RegisterCommand 注册命令。arity 为正数时参数个数（包含命令名）必须相等，为负数时至少为 -arity
func RegisterCommand(name string, executor ExecFunc, table tableKind, arity int) {
	name = strings.ToLower(name)
	cmdMap[name] = &command{
		executor: executor,
		table:    table,
		arity:    arity,
	}
}

func invalidArity(line redis.Line, cmd *command) bool {
	n, arity := len(line), cmd.arity
	if arity >= 0 {
		return n != arity
	}
	return n < -arity
}
