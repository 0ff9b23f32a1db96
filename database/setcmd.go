package database

import (
	"strconv"

	"fixedhash/datastruct/set"
	"fixedhash/interface/redis"
	"fixedhash/redis/protocol"
)

func execSAdd(t *Tables, args [][]byte) redis.Reply {
	if err := t.s.Add(string(args[0])); err != nil {
		return protocol.ErrReply(err)
	}
	return protocol.OkReply()
}

func execSRem(t *Tables, args [][]byte) redis.Reply {
	if err := t.s.Remove(string(args[0])); err != nil {
		return protocol.ErrReply(err)
	}
	return protocol.OkReply()
}

func execSHas(t *Tables, args [][]byte) redis.Reply {
	ok, err := t.s.Contains(string(args[0]))
	if err != nil {
		return protocol.ErrReply(err)
	}
	return protocol.BoolReply(ok)
}

// execSHasAll 对非法成员返回 0 而不是错误
func execSHasAll(t *Tables, args [][]byte) redis.Reply {
	members := make([]string, len(args))
	for i, arg := range args {
		members[i] = string(arg)
	}
	return protocol.BoolReply(t.s.ContainsAll(members))
}

func execSSize(t *Tables, _ [][]byte) redis.Reply {
	return protocol.IntReply(int64(t.s.Size()))
}

func execSCap(t *Tables, _ [][]byte) redis.Reply {
	return protocol.IntReply(int64(t.s.TableLength()))
}

func execSLoad(t *Tables, _ [][]byte) redis.Reply {
	return protocol.BulkStringReply([]byte(strconv.FormatFloat(t.s.LoadFactor(), 'f', -1, 64)))
}

func execSSetLF(t *Tables, args [][]byte) redis.Reply {
	threshold, err := strconv.ParseFloat(string(args[0]), 64)
	if err != nil {
		return protocol.NewErrorReply("ERR value is not a valid float")
	}
	if err := t.s.SetLoadFactorThreshold(threshold); err != nil {
		return protocol.ErrReply(err)
	}
	return protocol.OkReply()
}

func execSHash(_ *Tables, args [][]byte) redis.Reply {
	code, err := set.MyHashCode(string(args[0]))
	if err != nil {
		return protocol.ErrReply(err)
	}
	return protocol.IntReply(int64(code))
}

func execSDump(t *Tables, _ [][]byte) redis.Reply {
	return protocol.BulkStringReply([]byte(t.s.String()))
}

func execSMembers(t *Tables, _ [][]byte) redis.Reply {
	members := t.s.Members()
	res := make([][]byte, len(members))
	for i, member := range members {
		res[i] = []byte(member)
	}
	return protocol.ArrayReply(res)
}

func init() {
	RegisterCommand("sadd", execSAdd, setTable, 2)
	RegisterCommand("srem", execSRem, setTable, 2)
	RegisterCommand("shas", execSHas, setTable, 2)
	RegisterCommand("shasall", execSHasAll, setTable, -1)
	RegisterCommand("ssize", execSSize, setTable, 1)
	RegisterCommand("scap", execSCap, setTable, 1)
	RegisterCommand("sload", execSLoad, setTable, 1)
	RegisterCommand("ssetlf", execSSetLF, setTable, 2)
	RegisterCommand("shash", execSHash, noTable, 2)
	RegisterCommand("sdump", execSDump, setTable, 1)
	RegisterCommand("smembers", execSMembers, setTable, 1)
}
