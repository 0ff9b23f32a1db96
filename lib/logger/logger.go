package logger

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

var (
	mu   sync.RWMutex
	base = newLogger(os.Stderr, level.AllowInfo())
)

func newLogger(w *os.File, option level.Option) log.Logger {
	l := log.NewLogfmtLogger(log.NewSyncWriter(w))
	l = level.NewFilter(l, option)
	return log.With(l, "ts", log.DefaultTimestampUTC, "caller", log.Caller(5))
}

// Setup 设置最低日志级别，可选 debug、info、warn、error
func Setup(lvl string) {
	var option level.Option
	switch strings.ToLower(lvl) {
	case "debug":
		option = level.AllowDebug()
	case "warn", "warning":
		option = level.AllowWarn()
	case "error":
		option = level.AllowError()
	default:
		option = level.AllowInfo()
	}
	mu.Lock()
	defer mu.Unlock()
	base = newLogger(os.Stderr, option)
}

// Logger 返回底层的 go-kit logger，便于附加字段
func Logger() log.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base
}

func output(lv func(log.Logger) log.Logger, v ...any) {
	_ = lv(Logger()).Log("msg", fmt.Sprint(v...))
}

func Debug(v ...any) {
	output(level.Debug, v...)
}

func Debugf(format string, v ...any) {
	output(level.Debug, fmt.Sprintf(format, v...))
}

func Info(v ...any) {
	output(level.Info, v...)
}

func Infof(format string, v ...any) {
	output(level.Info, fmt.Sprintf(format, v...))
}

func Warn(v ...any) {
	output(level.Warn, v...)
}

func Error(v ...any) {
	output(level.Error, v...)
}

func Errorf(format string, v ...any) {
	output(level.Error, fmt.Sprintf(format, v...))
}

func Fatal(v ...any) {
	output(level.Error, v...)
	os.Exit(1)
}
