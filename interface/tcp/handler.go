package tcp

import (
	"context"
	"net"
)

// Handler 是应用层服务器的抽象，Handle 在每个连接自己的 goroutine 中执行
type Handler interface {
	Handle(ctx context.Context, conn net.Conn)
	ActiveConnections() int
	Close() error
}
