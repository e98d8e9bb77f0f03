package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/wippyai/accesskit-go/adapter"
	"github.com/wippyai/accesskit-go/bridge"
	"github.com/wippyai/accesskit-go/capture"
	"github.com/wippyai/accesskit-go/ffi"
)

// EnvLogLevel selects the library log level: debug, info, warn or error.
// Logging is off when it is unset.
const EnvLogLevel = "ACCESSKIT_LOG_LEVEL"

type config struct {
	logLevel string
}

func loadConfig() config {
	return config{logLevel: os.Getenv(EnvLogLevel)}
}

// configureLogging installs one console logger, named per package, into
// every package that logs. Capture keeps its stderr default when logging is
// off.
func configureLogging(cfg config) {
	if cfg.logLevel == "" {
		return
	}
	level, err := zapcore.ParseLevel(cfg.logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "accesskit: ignoring %s: %v\n", EnvLogLevel, err)
		return
	}

	enc := zap.NewDevelopmentEncoderConfig()
	enc.EncodeLevel = zapcore.CapitalLevelEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.Lock(os.Stderr), level)
	l := zap.New(core).Named("accesskit")

	ffi.SetLogger(l.Named("ffi"))
	adapter.SetLogger(l.Named("adapter"))
	bridge.SetLogger(l.Named("bridge"))
	capture.SetLogger(l.Named("capture"))
}

// guard logs a contract violation before letting it terminate the process.
// It must be deferred directly.
func guard(function string) {
	if r := recover(); r != nil {
		l := ffi.Logger()
		l.Error("contract violation", zap.String("function", function), zap.Any("panic", r))
		_ = l.Sync()
		panic(r)
	}
}

// eventLogger is the event sink of the library. Platform delivery is
// outside this library, so raised events are reported at debug level.
type eventLogger struct{}

func (eventLogger) RaiseEvents(events []adapter.Event) {
	l := adapter.Logger()
	for _, e := range events {
		l.Debug("event raised", zap.Stringer("kind", e.Kind), zap.Uint64("node", uint64(e.Node)), zap.Bool("focused", e.Focused))
	}
}
