package common

import (
	"io"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logMu  sync.Mutex
	level  = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	logger = zap.NewNop().Sugar()
)

// SetLogger sends log output to w. A nil writer discards everything.
func SetLogger(w io.Writer) {
	logMu.Lock()
	defer logMu.Unlock()
	if w == nil {
		logger = zap.NewNop().Sugar()
		return
	}
	enc := zap.NewDevelopmentEncoderConfig()
	enc.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000000")
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(w), level)
	opts := []zap.Option{zap.AddCallerSkip(1)}
	if LogCompleteEnable {
		opts = append(opts, zap.AddCaller())
	}
	logger = zap.New(core, opts...).Sugar()
}

// SetLevel accepts trace, debug, info, warn, fail and error. Unknown names
// leave the level unchanged.
func SetLevel(name string) bool {
	switch name {
	case "trace":
		name = "debug"
	case "fail":
		name = "error"
	}
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(name)); err != nil {
		return false
	}
	level.SetLevel(l)
	return true
}

func Sync() {
	logMu.Lock()
	defer logMu.Unlock()
	_ = logger.Sync()
}

func current() *zap.SugaredLogger {
	logMu.Lock()
	defer logMu.Unlock()
	return logger
}

func LTrace(format string, args ...any) {
	current().Debugf(format, args...)
}

func LInfo(format string, args ...any) {
	current().Infof(format, args...)
}

func LWarn(format string, args ...any) {
	current().Warnf(format, args...)
}

func LFail(format string, args ...any) {
	current().Errorf(format, args...)
}
