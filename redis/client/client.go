package client

import (
	"errors"
	"net"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"fixedhash/interface/redis"
	"fixedhash/lib/logger"
	"fixedhash/lib/utils"
	"fixedhash/redis/parse"
	"fixedhash/redis/protocol"
)

const (
	chanSize = 256
	timeout  = 3 * time.Second
)

const (
	created int32 = iota
	running
	closed
)

var errConnClosed = errors.New("connection closed")

type request struct {
	line      redis.Line
	reply     redis.Reply
	heartbeat bool
	done      chan struct{}
	err       error
}

// Client 是一个流水线式的 RESP 客户端，请求按发送顺序与回复对应
type Client struct {
	addr        string
	conn        net.Conn
	pendingChan chan *request
	waitingChan chan *request
	ticker      *time.Ticker
	stop        chan struct{}
	status      atomic.Int32
	working     sync.WaitGroup
}

func NewClient(addr string) (*Client, error) {
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, err
	}
	return &Client{
		addr:        addr,
		conn:        conn,
		pendingChan: make(chan *request, chanSize),
		waitingChan: make(chan *request, chanSize),
		stop:        make(chan struct{}),
	}, nil
}

func (c *Client) Start() {
	c.ticker = time.NewTicker(10 * time.Second)
	c.status.Store(running)
	go c.handleWrite()
	go c.handleRead()
	go c.heartbeat()
}

func (c *Client) Close() {
	if !c.status.CompareAndSwap(running, closed) {
		return
	}
	c.ticker.Stop()
	close(c.stop)
	c.working.Wait()
	close(c.pendingChan)
	_ = c.conn.Close()
}

// Send 发送一条命令并等待回复，超时或连接已关闭时返回错误回复
func (c *Client) Send(line redis.Line) redis.Reply {
	req := &request{
		line: line,
		done: make(chan struct{}),
	}
	if err := c.enqueue(req); err != nil {
		return protocol.NewErrorReply(err.Error())
	}
	select {
	case <-req.done:
	case <-time.After(timeout):
		return protocol.NewErrorReply("server time out")
	}
	if req.err != nil {
		return protocol.NewErrorReply("request failed: " + req.err.Error())
	}
	return req.reply
}

// SendArgs 是 Send 的便捷形式
func (c *Client) SendArgs(args ...string) redis.Reply {
	return c.Send(utils.ToLine(args...))
}

func (c *Client) enqueue(req *request) error {
	c.working.Add(1)
	defer c.working.Done()
	if c.status.Load() != running {
		return errConnClosed
	}
	c.pendingChan <- req
	return nil
}

func (c *Client) handleWrite() {
	for req := range c.pendingChan {
		c.doRequest(req)
	}
}

func (c *Client) handleRead() {
	ch := parse.StartParseStream(c.conn)
	for payload := range ch {
		if payload.Err != nil {
			var pe *parse.ProtocolError
			if errors.As(payload.Err, &pe) {
				c.finishRequest(nil, payload.Err)
				continue
			}
			if c.status.Load() != closed {
				logger.Warn("read from " + c.addr + " failed: " + payload.Err.Error())
			}
			c.failWaiting()
			return
		}
		c.finishRequest(payload.Data, nil)
	}
}

func (c *Client) heartbeat() {
	for {
		select {
		case <-c.ticker.C:
			req := &request{
				line:      redis.Line{[]byte("PING")},
				heartbeat: true,
				done:      make(chan struct{}),
			}
			if c.enqueue(req) != nil {
				return
			}
		case <-c.stop:
			return
		}
	}
}

func (c *Client) doRequest(req *request) {
	if req == nil || len(req.line) == 0 {
		return
	}
	data := protocol.ArrayReply(req.line).GetBytes()
	var err error
	for i := 0; i < 3; i++ {
		_, err = c.conn.Write(data)
		if err == nil {
			break
		}
		errStr := err.Error()
		if !(strings.Contains(errStr, "timeout") || strings.Contains(errStr, "deadline exceeded")) {
			break
		}
	}
	if err != nil {
		req.err = err
		close(req.done)
		return
	}
	c.waitingChan <- req
}

func (c *Client) finishRequest(reply redis.Reply, err error) {
	var req *request
	select {
	case req = <-c.waitingChan:
	case <-c.stop:
		return
	}
	req.reply, req.err = reply, err
	close(req.done)
}

// failWaiting 在读取失败后让等待中的请求立即返回
func (c *Client) failWaiting() {
	for {
		select {
		case req := <-c.waitingChan:
			req.err = errConnClosed
			close(req.done)
		default:
			return
		}
	}
}
