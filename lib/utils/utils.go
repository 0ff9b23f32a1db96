package utils

import (
	"math/rand"
	"strconv"
)

// ToLine 把字符串参数转为一条命令
func ToLine(strs ...string) [][]byte {
	res := make([][]byte, len(strs))
	for i, str := range strs {
		res[i] = []byte(str)
	}
	return res
}

// RandomMapKey 返回 [1000, 9999] 内的随机键
func RandomMapKey(r *rand.Rand) string {
	return strconv.Itoa(1000 + r.Intn(9000))
}

// RandomWord 返回长度为 1 到 maxLen 的随机小写单词
func RandomWord(r *rand.Rand, maxLen int) string {
	a := make([]byte, 1+r.Intn(maxLen))
	for i := range a {
		a[i] = byte('a' + r.Intn(26))
	}
	return string(a)
}
