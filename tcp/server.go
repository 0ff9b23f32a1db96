package tcp

import (
	"context"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"fixedhash/interface/tcp"
	"fixedhash/lib/logger"
)

// Config stores tcp server properties
type Config struct {
	Address string
}

// ListenAndServeWithSignal 监听中断信号，并且通过 closeChan 通知服务器关闭
func ListenAndServeWithSignal(cfg *Config, hr tcp.Handler) error {
	closeChan := make(chan struct{})
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGHUP, syscall.SIGQUIT, syscall.SIGTERM, syscall.SIGINT)
	go func() {
		sig := <-signalChan
		logger.Infof("received signal %s", sig)
		close(closeChan)
	}()
	lr, err := net.Listen("tcp", cfg.Address)
	if err != nil {
		return err
	}
	logger.Infof("bound %s success, start listening...", lr.Addr())
	ListenAndServe(lr, hr, closeChan)
	return nil
}

// ListenAndServe 提供服务，直到 closeChan 可读或 listener 出错
func ListenAndServe(lr net.Listener, hr tcp.Handler, closeChan <-chan struct{}) {
	ctx, cancel := context.WithCancel(context.Background())
	var once sync.Once
	shutdown := func() {
		once.Do(func() {
			cancel()
			_ = lr.Close()
			_ = hr.Close()
		})
	}
	go func() {
		select {
		case <-closeChan:
			logger.Info("shutting down...")
		case <-ctx.Done():
		}
		shutdown()
	}()
	var waitDone sync.WaitGroup
	for {
		conn, err := lr.Accept()
		if err != nil {
			break
		}
		logger.Debugf("connection accepted: %s", conn.RemoteAddr())
		waitDone.Add(1)
		go func() {
			defer waitDone.Done()
			hr.Handle(ctx, conn)
		}()
	}
	shutdown()
	logger.Infof("waiting for %d connections", hr.ActiveConnections())
	waitDone.Wait()
}
