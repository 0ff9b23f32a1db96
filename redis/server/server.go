package server

import (
	"context"
	"errors"
	"io"
	"net"
	"sync"
	"sync/atomic"

	"golang.org/x/time/rate"

	"fixedhash/interface/dbinterface"
	"fixedhash/interface/redis"
	"fixedhash/lib/logger"
	"fixedhash/redis/connection"
	"fixedhash/redis/parse"
	"fixedhash/redis/protocol"
)

var (
	maxClientsBytes     = []byte("-ERR max number of clients reached\r\n")
	multiBulkErrorBytes = []byte("-ERR require multi bulk protocol\r\n")
)

// Handler 解析每个连接上的 RESP 请求并交给 db 执行
type Handler struct {
	activeConn sync.Map
	count      atomic.Int32
	db         dbinterface.DB
	closing    atomic.Bool
	maxClients int
	rateLimit  int
}

// MakeHandler 中 maxClients 与 rateLimit 为 0 时表示不限制
func MakeHandler(db dbinterface.DB, maxClients, rateLimit int) *Handler {
	return &Handler{
		db:         db,
		maxClients: maxClients,
		rateLimit:  rateLimit,
	}
}

func (h *Handler) ActiveConnections() int {
	return int(h.count.Load())
}

func (h *Handler) Handle(ctx context.Context, conn net.Conn) {
	if h.closing.Load() {
		_ = conn.Close()
		return
	}
	// 先占位再检查，避免并发 accept 同时越过上限
	if n := int(h.count.Add(1)); h.maxClients > 0 && n > h.maxClients {
		h.count.Add(-1)
		_, _ = conn.Write(maxClientsBytes)
		_ = conn.Close()
		return
	}
	client := connection.NewClientConn(conn)
	h.activeConn.Store(client, struct{}{})

	var limiter *rate.Limiter
	if h.rateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(h.rateLimit), h.rateLimit)
	}
	ch := parse.StartParseStream(conn)
	// 无论以何种方式退出都释放连接，关闭后排空 ch 让解析协程结束
	defer func() {
		h.closeClient(client)
		for range ch {
		}
	}()
	for payload := range ch {
		if payload.Err != nil {
			var pe *parse.ProtocolError
			if errors.As(payload.Err, &pe) {
				_ = client.Write(protocol.ErrReply(payload.Err).GetBytes())
				continue
			}
			if payload.Err == io.EOF ||
				errors.Is(payload.Err, io.ErrUnexpectedEOF) ||
				errors.Is(payload.Err, net.ErrClosed) {
				logger.Info("connection closed: " + client.Name())
			} else {
				logger.Warn(payload.Err)
			}
			return
		}
		if payload.Data == nil {
			continue
		}
		args, ok := protocol.FetchArrayArgs(payload.Data)
		if !ok {
			_ = client.Write(multiBulkErrorBytes)
			continue
		}
		if len(args) == 0 {
			continue
		}
		if limiter != nil {
			if err := limiter.Wait(ctx); err != nil {
				return
			}
		}
		result := h.db.Execute(client, redis.Line(args))
		if result != nil {
			_ = client.Write(result.GetBytes())
		}
	}
}

func (h *Handler) closeClient(client *connection.ClientConn) {
	if _, loaded := h.activeConn.LoadAndDelete(client); !loaded {
		return
	}
	_ = client.Close()
	h.count.Add(-1)
	h.db.AfterClientClose(client)
}

func (h *Handler) Close() error {
	logger.Info("handler shutting down...")
	h.closing.Store(true)
	h.activeConn.Range(func(key, _ any) bool {
		h.closeClient(key.(*connection.ClientConn))
		return true
	})
	h.db.Close()
	return nil
}
