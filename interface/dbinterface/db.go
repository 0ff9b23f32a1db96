package dbinterface

import (
	"fixedhash/interface/redis"
)

// DB 是命令执行引擎的抽象，由 redis/server 调用
type DB interface {
	Execute(conn redis.Connection, line redis.Line) redis.Reply
	AfterClientClose(conn redis.Connection)
	Close()
}
