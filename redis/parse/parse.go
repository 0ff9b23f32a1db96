package parse

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"runtime/debug"
	"strconv"

	"fixedhash/interface/redis"
	"fixedhash/lib/logger"
	"fixedhash/redis/protocol"
)

const (
	maxBulkLen  = 512 * 1024 * 1024
	maxArrayLen = 1024 * 1024
)

// Payload 储存了 redis.Reply 或是一个 error
type Payload struct {
	Data redis.Reply
	Err  error
}

// ProtocolError 表示一行无法识别的数据，解析会跳过这一行继续进行
type ProtocolError struct {
	Line []byte
}

func (e *ProtocolError) Error() string {
	return "Protocol error: " + strconv.Quote(string(e.Line))
}

// StartParseStream 在新的 goroutine 中解析 reader，读到 EOF 或 IO 错误后关闭通道
func StartParseStream(reader io.Reader) <-chan *Payload {
	ch := make(chan *Payload)
	go parse0(reader, ch)
	return ch
}

func ParseBytes(data []byte) ([]redis.Reply, error) {
	ch := StartParseStream(bytes.NewReader(data))
	var replies []redis.Reply
	for payload := range ch {
		if payload.Err != nil {
			if payload.Err == io.EOF {
				break
			}
			return nil, payload.Err
		}
		replies = append(replies, payload.Data)
	}
	return replies, nil
}

func parse0(rawReader io.Reader, ch chan<- *Payload) {
	defer func() {
		if err := recover(); err != nil {
			logger.Errorf("%v\n%s", err, debug.Stack())
		}
	}()
	defer close(ch)
	reader := bufio.NewReader(rawReader)
	for {
		line, err := reader.ReadBytes('\n')
		if err != nil {
			ch <- &Payload{Err: err}
			return
		}
		length := len(line)
		if length <= 2 || line[length-2] != '\r' {
			protocolError(ch, line)
			continue
		}
		line = line[:length-2]
		switch line[0] {
		case '+':
			ch <- &Payload{Data: protocol.StatusReply(line[1:])}
		case '-':
			ch <- &Payload{Data: protocol.NewErrorReply(string(line[1:]))}
		case ':':
			value, err := strconv.ParseInt(string(line[1:]), 10, 64)
			if err != nil {
				protocolError(ch, line)
				continue
			}
			ch <- &Payload{Data: protocol.IntReply(value)}
		case '$':
			body, err := readBulk(line, reader)
			if err != nil {
				if !sendParseError(ch, err) {
					return
				}
				continue
			}
			if body == nil {
				ch <- &Payload{Data: protocol.NullBulkStringReply()}
			} else {
				ch <- &Payload{Data: protocol.BulkStringReply(body)}
			}
		case '*':
			args, err := readArray(line, reader)
			if err != nil {
				if !sendParseError(ch, err) {
					return
				}
				continue
			}
			ch <- &Payload{Data: protocol.ArrayReply(args)}
		default:
			// 内联命令
			args := bytes.Fields(line)
			if len(args) == 0 {
				protocolError(ch, line)
				continue
			}
			ch <- &Payload{Data: protocol.ArrayReply(args)}
		}
	}
}

// readBulk 读取 "$<len>" 之后的内容，长度为 -1 时返回 nil
func readBulk(header []byte, reader *bufio.Reader) ([]byte, error) {
	strLen, err := strconv.ParseInt(string(header[1:]), 10, 64)
	if err != nil || strLen < -1 || strLen > maxBulkLen {
		return nil, &ProtocolError{Line: header}
	}
	if strLen == -1 {
		return nil, nil
	}
	body := make([]byte, strLen+2)
	if _, err = io.ReadFull(reader, body); err != nil {
		return nil, err
	}
	if body[strLen] != '\r' || body[strLen+1] != '\n' {
		return nil, &ProtocolError{Line: body}
	}
	return body[:strLen], nil
}

func readArray(header []byte, reader *bufio.Reader) ([][]byte, error) {
	nStrs, err := strconv.ParseInt(string(header[1:]), 10, 64)
	if err != nil || nStrs < 0 || nStrs > maxArrayLen {
		return nil, &ProtocolError{Line: header}
	}
	args := make([][]byte, 0, nStrs)
	for i := int64(0); i < nStrs; i++ {
		line, err := reader.ReadBytes('\n')
		if err != nil {
			return nil, err
		}
		length := len(line)
		if length < 4 || line[length-2] != '\r' || line[0] != '$' {
			return nil, &ProtocolError{Line: line}
		}
		body, err := readBulk(line[:length-2], reader)
		if err != nil {
			return nil, err
		}
		args = append(args, body)
	}
	return args, nil
}

// sendParseError 发送错误，返回 false 表示底层读取已失败，需要结束解析
func sendParseError(ch chan<- *Payload, err error) bool {
	ch <- &Payload{Err: err}
	var pe *ProtocolError
	return errors.As(err, &pe)
}

func protocolError(ch chan<- *Payload, line []byte) {
	ch <- &Payload{Err: &ProtocolError{Line: line}}
}
