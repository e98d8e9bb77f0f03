package capture

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"

	"github.com/wippyai/accesskit-go/errors"
	"github.com/wippyai/accesskit-go/tree"
)

// EnvPath names the environment variable holding the capture file path.
// Unset or empty disables capture.
const EnvPath = "ACCESSKIT_CAPTURE_PATH"

// State is the lifecycle state of a capture log.
type State int

const (
	StateUninitialized State = iota
	StateDisabled
	StateEnabled
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateDisabled:
		return "disabled"
	case StateEnabled:
		return "enabled"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Log appends tree updates to a file, one JSON record per line, eliding
// consecutive duplicates. All methods are safe for concurrent use.
//
// Capture is observational. No method returns an error to the caller of
// Update; failures are logged and only abort the record being written.
type Log struct {
	mu       sync.Mutex
	state    State
	path     string
	file     *os.File
	w        *bufio.Writer
	last     *tree.TreeUpdate
	records  int
	poisoned bool
	logger   *zap.Logger
	getenv   func(string) string
}

// Option configures a Log.
type Option func(*Log)

// WithLogger sets the diagnostics logger. The package logger is used
// otherwise.
func WithLogger(l *zap.Logger) Option {
	return func(c *Log) { c.logger = l }
}

// WithGetenv replaces os.Getenv for lazy initialization.
func WithGetenv(fn func(string) string) Option {
	return func(c *Log) { c.getenv = fn }
}

// New returns an uninitialized log. It reads EnvPath on the first Update
// and stays in the resulting state for its lifetime.
func New(opts ...Option) *Log {
	l := &Log{getenv: os.Getenv}
	for _, o := range opts {
		o(l)
	}
	return l
}

// Open returns a log writing to path. Any existing file is removed first.
func Open(path string, opts ...Option) (*Log, error) {
	l := New(opts...)
	if err := l.open(path); err != nil {
		l.state = StateDisabled
		return l, err
	}
	return l, nil
}

func (l *Log) log() *zap.Logger {
	if l.logger != nil {
		return l.logger
	}
	return Logger()
}

func (l *Log) open(path string) error {
	_ = os.Remove(path)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return errors.Wrap(errors.PhaseCapture, errors.KindIO, err, "open "+path)
	}
	l.path = path
	l.file = f
	l.w = bufio.NewWriter(f)
	l.state = StateEnabled
	return nil
}

func (l *Log) init() {
	path := l.getenv(EnvPath)
	if path == "" {
		l.state = StateDisabled
		return
	}
	if err := l.open(path); err != nil {
		l.log().Warn("failed to open capture file", zap.String("path", path), zap.Error(err))
		l.state = StateDisabled
		return
	}
	l.log().Info("capturing tree updates", zap.String("path", path))
}

// Update records u unless it equals the last recorded update.
//
// A panic while recording poisons the log. Later calls report the poisoned
// state and skip.
func (l *Log) Update(u *tree.TreeUpdate) {
	if u == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.poisoned {
		l.log().Warn("capture skipped", zap.Error(errors.New(errors.PhaseCapture, errors.KindPoisoned).
			Detail("a previous capture panicked").Build()))
		return
	}
	defer func() {
		if r := recover(); r != nil {
			l.poisoned = true
			l.log().Error("capture panicked", zap.Any("panic", r))
		}
	}()

	if l.state == StateUninitialized {
		l.init()
	}
	if l.state != StateEnabled {
		return
	}
	l.capture(u)
}

func (l *Log) capture(u *tree.TreeUpdate) {
	if l.last != nil && l.last.Equal(u) {
		return
	}

	data, err := json.Marshal(u)
	if err != nil {
		l.log().Error("failed to serialize tree update",
			zap.Error(errors.Wrap(errors.PhaseCapture, errors.KindSerialize, err, "marshal tree update")))
		return
	}
	data = append(data, '\n')
	if _, err := l.w.Write(data); err != nil {
		l.log().Error("failed to write tree update", zap.Error(err))
		return
	}
	if err := l.w.Flush(); err != nil {
		l.log().Error("failed to flush", zap.Error(err))
		return
	}
	if err := l.file.Sync(); err != nil {
		l.log().Error("failed to sync", zap.Error(err))
	}
	l.last = u.Clone()
	l.records++
}

// State returns the lifecycle state.
func (l *Log) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Poisoned reports whether a capture has panicked.
func (l *Log) Poisoned() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.poisoned
}

// Path returns the file being written, or "" when not enabled.
func (l *Log) Path() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.path
}

// Records returns the number of records written by this log.
func (l *Log) Records() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.records
}

// Close flushes and closes the file. The log is disabled afterwards.
func (l *Log) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.state != StateEnabled {
		l.state = StateDisabled
		return nil
	}
	l.state = StateDisabled
	flushErr := l.w.Flush()
	closeErr := l.file.Close()
	if flushErr != nil {
		return errors.Wrap(errors.PhaseCapture, errors.KindIO, flushErr, "flush "+l.path)
	}
	if closeErr != nil {
		return errors.Wrap(errors.PhaseCapture, errors.KindIO, closeErr, "close "+l.path)
	}
	return nil
}

var global = New()

// Default returns the process-wide log configured from EnvPath. It is
// never torn down.
func Default() *Log { return global }

// Update records u in the process-wide log.
func Update(u *tree.TreeUpdate) { global.Update(u) }
