package client

import (
	"context"
	"errors"

	pool "github.com/jolestar/go-commons-pool/v2"

	"fixedhash/redis/protocol"
)

type connectionFactory struct {
	addr string
}

func (f *connectionFactory) MakeObject(_ context.Context) (*pool.PooledObject, error) {
	cli, err := NewClient(f.addr)
	if err != nil {
		return nil, err
	}
	cli.Start()
	return pool.NewPooledObject(cli), nil
}

func (f *connectionFactory) DestroyObject(_ context.Context, obj *pool.PooledObject) error {
	cli, ok := obj.Object.(*Client)
	if !ok {
		return errors.New("type mismatch")
	}
	cli.Close()
	return nil
}

// ValidateObject 借出前用 PING 检查连接是否可用
func (f *connectionFactory) ValidateObject(_ context.Context, obj *pool.PooledObject) bool {
	cli, ok := obj.Object.(*Client)
	if !ok {
		return false
	}
	return !protocol.CheckErrorReply(cli.SendArgs("PING"))
}

func (f *connectionFactory) ActivateObject(_ context.Context, _ *pool.PooledObject) error {
	return nil
}

func (f *connectionFactory) PassivateObject(_ context.Context, _ *pool.PooledObject) error {
	return nil
}

// Pool 是到同一个地址的客户端连接池
type Pool struct {
	objects *pool.ObjectPool
}

func NewPool(ctx context.Context, addr string, maxConn int) *Pool {
	cfg := pool.NewDefaultPoolConfig()
	cfg.MaxTotal = maxConn
	cfg.MaxIdle = maxConn
	cfg.TestOnBorrow = true
	return &Pool{
		objects: pool.NewObjectPool(ctx, &connectionFactory{addr: addr}, cfg),
	}
}

func (p *Pool) Borrow(ctx context.Context) (*Client, error) {
	obj, err := p.objects.BorrowObject(ctx)
	if err != nil {
		return nil, err
	}
	cli, ok := obj.(*Client)
	if !ok {
		return nil, errors.New("type mismatch")
	}
	return cli, nil
}

func (p *Pool) Return(ctx context.Context, cli *Client) error {
	return p.objects.ReturnObject(ctx, cli)
}

func (p *Pool) Close(ctx context.Context) {
	p.objects.Close(ctx)
}
