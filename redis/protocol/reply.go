package protocol

import (
	"bytes"
	"strconv"

	"fixedhash/interface/redis"
)

const crlf = "\r\n"

var (
	emptyMultiBulkBytes = []byte("*0" + crlf)
	nullBulkBytes       = []byte("$-1" + crlf)
	okBytes             = []byte("+OK" + crlf)
	pongBytes           = []byte("+PONG" + crlf)
)

type (
	emptyArrayReply     struct{}
	nullBulkStringReply struct{}
	okReply             struct{}
	pongReply           struct{}
	statusReply         struct{ status []byte }
	intReply            struct{ code int64 }
	bulkReply           struct{ arg []byte }
	// args 中的 nil 元素编码为 null bulk string
	arrayReply struct{ args [][]byte }
)

func CheckErrorReply(r redis.Reply) bool {
	b := r.GetBytes()
	return len(b) > 0 && b[0] == '-'
}

func CheckOKReply(r redis.Reply) bool {
	return bytes.Equal(okBytes, r.GetBytes())
}

func (r *emptyArrayReply) GetBytes() []byte {
	return emptyMultiBulkBytes
}

func (r *nullBulkStringReply) GetBytes() []byte {
	return nullBulkBytes
}

func (r *okReply) GetBytes() []byte {
	return okBytes
}

func (r *pongReply) GetBytes() []byte {
	return pongBytes
}

func (r *statusReply) GetBytes() []byte {
	return []byte("+" + string(r.status) + crlf)
}

func (r *intReply) GetBytes() []byte {
	return []byte(":" + strconv.FormatInt(r.code, 10) + crlf)
}

func (r *bulkReply) GetBytes() []byte {
	return convertArg(r.arg)
}

func (r *arrayReply) GetBytes() []byte {
	var buf bytes.Buffer
	buf.WriteString("*" + strconv.Itoa(len(r.args)) + crlf)
	for _, arg := range r.args {
		buf.Write(convertArg(arg))
	}
	return buf.Bytes()
}

func EmptyArrayReply() redis.Reply {
	return &emptyArrayReply{}
}

func NullBulkStringReply() redis.Reply {
	return &nullBulkStringReply{}
}

func OkReply() redis.Reply {
	return &okReply{}
}

func PongReply() redis.Reply {
	return &pongReply{}
}

func StatusReply(status []byte) redis.Reply {
	return &statusReply{status: status}
}

func IntReply(code int64) redis.Reply {
	return &intReply{code: code}
}

func BoolReply(b bool) redis.Reply {
	if b {
		return IntReply(1)
	}
	return IntReply(0)
}

func BulkStringReply(arg []byte) redis.Reply {
	return &bulkReply{arg: arg}
}

func ArrayReply(args [][]byte) redis.Reply {
	if len(args) == 0 {
		return EmptyArrayReply()
	}
	return &arrayReply{args: args}
}

func FetchStatus(r redis.Reply) (status []byte, ok bool) {
	st, ok := r.(*statusReply)
	if !ok {
		return nil, false
	}
	return st.status, true
}

func FetchCode(r redis.Reply) (code int64, ok bool) {
	ir, ok := r.(*intReply)
	if !ok {
		return 0, false
	}
	return ir.code, true
}

func FetchBulkString(r redis.Reply) (str []byte, ok bool) {
	st, ok := r.(*bulkReply)
	if !ok {
		return nil, false
	}
	return st.arg, true
}

// FetchArrayArgs 对空数组返回长度为 0 的切片
func FetchArrayArgs(r redis.Reply) (args [][]byte, ok bool) {
	switch ar := r.(type) {
	case *arrayReply:
		return ar.args, true
	case *emptyArrayReply:
		return [][]byte{}, true
	}
	return nil, false
}

func convertArg(arg []byte) []byte {
	if arg == nil {
		return nullBulkBytes
	}
	return []byte("$" + strconv.Itoa(len(arg)) + crlf + string(arg) + crlf)
}
