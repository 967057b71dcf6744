package logger

import (
	"sync"

	"go.uber.org/zap"
)

var (
	lock   sync.RWMutex
	logger *zap.Logger = zap.NewNop()
	sugar  *zap.SugaredLogger
)

// Initialize replaces the package logger with a production zap logger at the
// given level. Before Initialize is called all logging is a no-op, so
// library consumers that do not want log output pay nothing.
func Initialize(level zap.AtomicLevel) (err error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = level
	l, err := cfg.Build()
	if err != nil {
		return err
	}
	lock.Lock()
	logger = l
	sugar = nil
	lock.Unlock()
	return nil
}

// Logger returns the current structured logger.
func Logger() *zap.Logger {
	lock.RLock()
	defer lock.RUnlock()
	return logger
}

// Sugar returns the current sugared logger.
func Sugar() *zap.SugaredLogger {
	lock.Lock()
	defer lock.Unlock()
	if sugar == nil {
		sugar = logger.Sugar()
	}
	return sugar
}
