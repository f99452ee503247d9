package session

import (
	"sync"

	"go.opentelemetry.io/contrib/bridges/otelzap"
	otellog "go.opentelemetry.io/otel/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// At most one bridge is installed per process; installing a new one removes
// the previous one first so application log statements are never duplicated
// into two sessions.
var (
	bridgeMu   sync.Mutex
	bridgeGen  int
	bridgeUndo func()
)

// installBridge tees the global zap logger into the log pipeline, so
// ordinary application log statements become log records flowing through the
// session's processors. The returned remove function restores the previous
// globals, but only while this bridge is still the installed one.
func installBridge(name string, provider otellog.LoggerProvider) (remove func()) {
	bridgeMu.Lock()
	defer bridgeMu.Unlock()

	if bridgeUndo != nil {
		bridgeUndo()
		bridgeUndo = nil
	}

	core := otelzap.NewCore(name, otelzap.WithLoggerProvider(provider))
	bridged := zap.L().WithOptions(zap.WrapCore(func(c zapcore.Core) zapcore.Core {
		return zapcore.NewTee(c, core)
	}))
	bridgeUndo = zap.ReplaceGlobals(bridged)

	bridgeGen++
	gen := bridgeGen

	return func() {
		bridgeMu.Lock()
		defer bridgeMu.Unlock()
		if gen != bridgeGen || bridgeUndo == nil {
			// A later session replaced this bridge already.
			return
		}
		bridgeUndo()
		bridgeUndo = nil
	}
}
