package connection

import (
	"net"
	"sync"
	"time"
)

const closeTimeout = 10 * time.Second

// ClientConn 是服务端持有的客户端连接，关闭前会等待正在写的回复完成
type ClientConn struct {
	conn         net.Conn
	waitingReply sync.WaitGroup
	mutex        sync.Mutex
}

func NewClientConn(conn net.Conn) *ClientConn {
	return &ClientConn{conn: conn}
}

func (c *ClientConn) RemoteAddr() net.Addr {
	return c.conn.RemoteAddr()
}

func (c *ClientConn) Name() string {
	return c.conn.RemoteAddr().String()
}

func (c *ClientConn) Close() error {
	done := make(chan struct{})
	go func() {
		c.waitingReply.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(closeTimeout):
	}
	return c.conn.Close()
}

func (c *ClientConn) Write(s []byte) error {
	if len(s) == 0 {
		return nil
	}
	c.waitingReply.Add(1)
	defer c.waitingReply.Done()
	c.mutex.Lock()
	defer c.mutex.Unlock()
	_, err := c.conn.Write(s)
	return err
}
