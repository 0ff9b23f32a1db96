package protocol

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReplyBytes(t *testing.T) {
	require.Equal(t, "+OK\r\n", string(OkReply().GetBytes()))
	require.Equal(t, "+PONG\r\n", string(PongReply().GetBytes()))
	require.Equal(t, ":1\r\n", string(BoolReply(true).GetBytes()))
	require.Equal(t, ":0\r\n", string(BoolReply(false).GetBytes()))
	require.Equal(t, "$-1\r\n", string(NullBulkStringReply().GetBytes()))
	require.Equal(t, "$0\r\n\r\n", string(BulkStringReply([]byte{}).GetBytes()))
	require.Equal(t, "*0\r\n", string(ArrayReply(nil).GetBytes()))
	require.Equal(t, "*2\r\n$4\r\n1000\r\n$-1\r\n", string(ArrayReply([][]byte{[]byte("1000"), nil}).GetBytes()))
}

func TestErrorReplies(t *testing.T) {
	r := ErrReply(errors.New("No null"))
	require.Equal(t, "-ERR No null\r\n", string(r.GetBytes()))
	require.Equal(t, "ERR No null", r.Error())
	require.True(t, CheckErrorReply(r))
	require.False(t, CheckErrorReply(OkReply()))
	require.Equal(t, "-ERR wrong number of arguments for 'sadd' command\r\n",
		string(ArgumentCountErrorReply([]byte("sadd")).GetBytes()))
}

func TestFetch(t *testing.T) {
	code, ok := FetchCode(IntReply(42))
	require.True(t, ok)
	require.Equal(t, int64(42), code)
	_, ok = FetchCode(OkReply())
	require.False(t, ok)

	args, ok := FetchArrayArgs(EmptyArrayReply())
	require.True(t, ok)
	require.Empty(t, args)

	require.True(t, CheckOKReply(StatusReply([]byte("OK"))))
}
