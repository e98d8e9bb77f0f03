package capture

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the capture package's logger instance.
// It writes console-formatted messages to stderr by default, since
// diagnostics are the only way capture failures surface.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			enc := zap.NewDevelopmentEncoderConfig()
			enc.TimeKey = ""
			core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.Lock(os.Stderr), zapcore.InfoLevel)
			logger = zap.New(core).Named("accesskit capture")
		}
	})
	return logger
}

// SetLogger configures the capture package's logger.
// This must be called before the first capture.
func SetLogger(l *zap.Logger) {
	logger = l
}
