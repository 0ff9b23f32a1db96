package database

import (
	"fmt"
	"runtime/debug"
	"sync"

	"fixedhash/datastruct/dict"
	"fixedhash/datastruct/set"
	"fixedhash/interface/redis"
	"fixedhash/lib/logger"
	"fixedhash/lib/metrics"
	"fixedhash/redis/protocol"
)

const (
	mapLabel = "map"
	setLabel = "set"
)

// Tables 持有一个 ChainedHashMap 和一个 BoundedHashSet，每张表由各自的互斥锁保护
type Tables struct {
	mapMu sync.Mutex
	m     *dict.ChainedHashMap
	setMu sync.Mutex
	s     *set.BoundedHashSet
}

// NewTables 创建两张空表，threshold 是集合的初始负载因子阈值
func NewTables(threshold float64) (*Tables, error) {
	s := set.NewBoundedHashSet()
	if err := s.SetLoadFactorThreshold(threshold); err != nil {
		return nil, err
	}
	t := &Tables{
		m: dict.NewChainedHashMap(),
		s: s,
	}
	metrics.ObserveTable(mapLabel, t.m.TableLength(), t.m.TableLength(), 0)
	metrics.ObserveTable(setLabel, t.s.TableLength(), t.s.TableLength(), 0)
	return t, nil
}

func (t *Tables) Execute(_ redis.Connection, line redis.Line) (res redis.Reply) {
	defer func() {
		if err := recover(); err != nil {
			logger.Warn(fmt.Sprintf("error occurs: %v\n%s", err, string(debug.Stack())))
			res = protocol.UnknownErrorReply()
		}
	}()
	if len(line) == 0 {
		return protocol.SyntaxErrorReply()
	}
	cmdName := line.CommandName()
	cmd, ok := cmdMap[string(cmdName)]
	if !ok {
		return protocol.UnknownCommandErrorReply(cmdName)
	}
	if invalidArity(line, cmd) {
		return protocol.ArgumentCountErrorReply(cmdName)
	}
	metrics.IncCommand(string(cmdName))
	switch cmd.table {
	case mapTable:
		t.mapMu.Lock()
		defer t.mapMu.Unlock()
		before := t.m.TableLength()
		defer func() {
			t.afterExecute(mapLabel, before, t.m.TableLength(), t.m.Size())
		}()
	case setTable:
		t.setMu.Lock()
		defer t.setMu.Unlock()
		before := t.s.TableLength()
		defer func() {
			t.afterExecute(setLabel, before, t.s.TableLength(), t.s.Size())
		}()
	}
	return cmd.executor(t, line.CommandContent())
}

func (t *Tables) afterExecute(table string, before, after, size int) {
	if after != before {
		logger.Infof("%s table grew from %d to %d with %d entries", table, before, after, size)
	}
	metrics.ObserveTable(table, before, after, size)
}

func (t *Tables) AfterClientClose(conn redis.Connection) {
	logger.Debugf("client %s closed", conn.Name())
}

func (t *Tables) Close() {
	t.mapMu.Lock()
	defer t.mapMu.Unlock()
	t.setMu.Lock()
	defer t.setMu.Unlock()
	logger.Infof("closing tables: map size %d, set size %d", t.m.Size(), t.s.Size())
}
