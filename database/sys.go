package database

import (
	"fixedhash/interface/redis"
	"fixedhash/redis/protocol"
)

func Ping(_ *Tables, args [][]byte) redis.Reply {
	switch len(args) {
	case 0:
		return protocol.PongReply()
	case 1:
		return protocol.StatusReply(args[0])
	default:
		return protocol.ArgumentCountErrorReply([]byte("ping"))
	}
}

func init() {
	RegisterCommand("ping", Ping, noTable, -1)
}
