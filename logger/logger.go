package logger

import (
	"sync"

	"go.uber.org/zap"
)

var (
	log  *zap.Logger
	once sync.Once
)

// Init builds the process-wide logger. env "production" selects zap's JSON
// production config; anything else gets the console development config.
// Only the first call has any effect.
func Init(env string) {
	once.Do(func() {
		var err error
		if env == "production" {
			log, err = zap.NewProduction()
		} else {
			log, err = zap.NewDevelopment()
		}
		if err != nil {
			panic("failed to initialize logger: " + err.Error())
		}
	})
}

// L returns the global logger, initialising a development logger if Init was
// never called.
func L() *zap.Logger {
	Init("")
	return log
}

// Sync flushes buffered entries. Call it once before exit.
func Sync() {
	_ = L().Sync()
}
