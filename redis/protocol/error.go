package protocol

import (
	"fmt"

	"fixedhash/interface/redis"
)

type simpleErrorReply struct {
	info string
}

func (r *simpleErrorReply) GetBytes() []byte {
	return []byte("-" + r.info + crlf)
}

func (r *simpleErrorReply) Error() string {
	return r.info
}

func NewErrorReply(info string) redis.ErrorReply {
	return &simpleErrorReply{info: info}
}

// ErrReply 把执行命令时得到的 error 转为 "-ERR ..." 形式的回复
func ErrReply(err error) redis.ErrorReply {
	return NewErrorReply("ERR " + err.Error())
}

func ArgumentCountErrorReply(cmd []byte) redis.ErrorReply {
	return NewErrorReply(fmt.Sprintf("ERR wrong number of arguments for '%s' command", cmd))
}

func UnknownCommandErrorReply(cmd []byte) redis.ErrorReply {
	return NewErrorReply(fmt.Sprintf("ERR unknown command '%s'", cmd))
}

func UnknownErrorReply() redis.ErrorReply {
	return NewErrorReply("ERR unknown")
}

func SyntaxErrorReply() redis.ErrorReply {
	return NewErrorReply("ERR syntax error")
}
