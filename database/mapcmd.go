package database

import (
	"strconv"

	"fixedhash/datastruct/dict"
	"fixedhash/interface/redis"
	"fixedhash/redis/protocol"
)

// parseKey 把参数解析为整数键，null 参数视为非法键
func parseKey(arg []byte) (int, redis.Reply) {
	if arg == nil {
		return 0, protocol.ErrReply(dict.ErrInvalidKey)
	}
	key, err := strconv.Atoi(string(arg))
	if err != nil {
		return 0, protocol.NewErrorReply("ERR value is not an integer or out of range")
	}
	return key, nil
}

func execMPut(t *Tables, args [][]byte) redis.Reply {
	key, errReply := parseKey(args[0])
	if errReply != nil {
		return errReply
	}
	var value *string
	if args[1] != nil {
		v := string(args[1])
		value = &v
	}
	if err := t.m.PutPtr(key, value); err != nil {
		return protocol.ErrReply(err)
	}
	return protocol.OkReply()
}

func execMGet(t *Tables, args [][]byte) redis.Reply {
	key, errReply := parseKey(args[0])
	if errReply != nil {
		return errReply
	}
	value, ok, err := t.m.Get(key)
	if err != nil {
		return protocol.ErrReply(err)
	}
	if !ok {
		return protocol.NullBulkStringReply()
	}
	return protocol.BulkStringReply([]byte(value))
}

func execMHas(t *Tables, args [][]byte) redis.Reply {
	key, errReply := parseKey(args[0])
	if errReply != nil {
		return errReply
	}
	ok, err := t.m.ContainsKey(key)
	if err != nil {
		return protocol.ErrReply(err)
	}
	return protocol.BoolReply(ok)
}

func execMDel(t *Tables, args [][]byte) redis.Reply {
	key, errReply := parseKey(args[0])
	if errReply != nil {
		return errReply
	}
	if err := t.m.Remove(key); err != nil {
		return protocol.ErrReply(err)
	}
	return protocol.OkReply()
}

func execMValues(t *Tables, args [][]byte) redis.Reply {
	var target *string
	if args[0] != nil {
		v := string(args[0])
		target = &v
	}
	keys, err := t.m.GetValues(target)
	if err != nil {
		return protocol.ErrReply(err)
	}
	return protocol.ArrayReply(formatKeys(keys))
}

func execMSize(t *Tables, _ [][]byte) redis.Reply {
	return protocol.IntReply(int64(t.m.Size()))
}

func execMCap(t *Tables, _ [][]byte) redis.Reply {
	return protocol.IntReply(int64(t.m.TableLength()))
}

func execMDump(t *Tables, _ [][]byte) redis.Reply {
	return protocol.BulkStringReply([]byte(t.m.String()))
}

// execMKeys 按迭代顺序返回所有键
func execMKeys(t *Tables, _ [][]byte) redis.Reply {
	keys := make([]int, 0, t.m.Size())
	for it := t.m.Iterator(); it.HasNext(); {
		e, err := it.Next()
		if err != nil {
			return protocol.ErrReply(err)
		}
		keys = append(keys, e.Key)
	}
	return protocol.ArrayReply(formatKeys(keys))
}

func formatKeys(keys []int) [][]byte {
	res := make([][]byte, len(keys))
	for i, key := range keys {
		res[i] = []byte(strconv.Itoa(key))
	}
	return res
}

func init() {
	RegisterCommand("mput", execMPut, mapTable, 3)
	RegisterCommand("mget", execMGet, mapTable, 2)
	RegisterCommand("mhas", execMHas, mapTable, 2)
	RegisterCommand("mdel", execMDel, mapTable, 2)
	RegisterCommand("mvalues", execMValues, mapTable, 2)
	RegisterCommand("msize", execMSize, mapTable, 1)
	RegisterCommand("mcap", execMCap, mapTable, 1)
	RegisterCommand("mdump", execMDump, mapTable, 1)
	RegisterCommand("mkeys", execMKeys, mapTable, 1)
}
