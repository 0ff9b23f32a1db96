package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"fixedhash/lib/logger"
	"fixedhash/lib/utils"
	"fixedhash/redis/client"
	"fixedhash/redis/protocol"
)

func main() {
	addr := flag.String("addr", "127.0.0.1:6399", "server address")
	clients := flag.Int("clients", 8, "number of concurrent clients")
	requests := flag.Int("requests", 1000, "requests per client")
	flag.Parse()
	logger.Setup("warn")

	ctx := context.Background()
	p := client.NewPool(ctx, *addr, *clients)
	defer p.Close(ctx)

	var failed atomic.Int64
	var wg sync.WaitGroup
	start := time.Now()
	for i := 0; i < *clients; i++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			cli, err := p.Borrow(ctx)
			if err != nil {
				logger.Error("borrow client: ", err)
				failed.Add(int64(*requests))
				return
			}
			defer func() { _ = p.Return(ctx, cli) }()
			r := rand.New(rand.NewSource(seed))
			for n := 0; n < *requests; n++ {
				var line [][]byte
				if n%2 == 0 {
					line = utils.ToLine("MPUT", utils.RandomMapKey(r), utils.RandomWord(r, 5))
				} else {
					// 集合容量有限，单词长度限制为 2
					line = utils.ToLine("SADD", utils.RandomWord(r, 2))
				}
				reply := cli.Send(line)
				if protocol.CheckErrorReply(reply) {
					failed.Add(1)
				}
			}
		}(time.Now().UnixNano() + int64(i))
	}
	wg.Wait()
	elapsed := time.Since(start)

	cli, err := p.Borrow(ctx)
	if err != nil {
		logger.Fatal("borrow client: ", err)
	}
	defer func() { _ = p.Return(ctx, cli) }()
	total := *clients * *requests
	fmt.Printf("%d requests in %s (%.0f req/s), %d failed\n",
		total, elapsed, float64(total)/elapsed.Seconds(), failed.Load())
	for _, cmd := range []string{"MSIZE", "MCAP", "SSIZE", "SCAP"} {
		code, _ := protocol.FetchCode(cli.SendArgs(cmd))
		fmt.Printf("%-6s %d\n", cmd, code)
	}
}
