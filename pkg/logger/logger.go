package logger

import (
	"sync"

	"go.uber.org/zap"
)

var (
	mu  sync.Mutex
	log *zap.SugaredLogger
)

// Init configures the process logger. Call once from main; anything logging
// before Init gets a development logger.
func Init(env string) {
	var zl *zap.Logger
	var err error
	if env == "production" {
		zl, err = zap.NewProduction()
	} else {
		zl, err = zap.NewDevelopment()
	}
	if err != nil {
		zl = zap.NewNop()
	}

	mu.Lock()
	log = zl.Sugar()
	mu.Unlock()
}

func get() *zap.SugaredLogger {
	mu.Lock()
	defer mu.Unlock()
	if log == nil {
		zl, err := zap.NewDevelopment()
		if err != nil {
			zl = zap.NewNop()
		}
		log = zl.Sugar()
	}
	return log
}

func Debug(msg string, keysAndValues ...any) { get().Debugw(msg, keysAndValues...) }
func Info(msg string, keysAndValues ...any)  { get().Infow(msg, keysAndValues...) }
func Warn(msg string, keysAndValues ...any)  { get().Warnw(msg, keysAndValues...) }
func Error(msg string, keysAndValues ...any) { get().Errorw(msg, keysAndValues...) }
func Fatal(msg string, keysAndValues ...any) { get().Fatalw(msg, keysAndValues...) }

func Sync() { _ = get().Sync() }
