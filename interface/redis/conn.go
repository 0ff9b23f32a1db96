package redis

import (
	"bytes"
)

// Line 是一条命令，参数为 nil 表示 RESP 中的 null bulk string
type Line [][]byte

// Connection 是服务端对客户端连接的抽象
type Connection interface {
	Write([]byte) error
	Name() string
}

func (l Line) CommandName() []byte {
	return bytes.ToLower(l[0])
}

func (l Line) CommandContent() [][]byte {
	return l[1:]
}
