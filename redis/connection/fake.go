package connection

import (
	"bytes"
)

// FakeConn 把写入的数据保存在内存中，用于测试
type FakeConn struct {
	buf bytes.Buffer
}

func NewFakeConn() *FakeConn {
	return &FakeConn{}
}

func (c *FakeConn) Write(s []byte) error {
	c.buf.Write(s)
	return nil
}

func (c *FakeConn) Name() string {
	return "fake"
}

func (c *FakeConn) Clean() {
	c.buf.Reset()
}

func (c *FakeConn) GetBytes() []byte {
	return c.buf.Bytes()
}
