package logger

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const (
	// StateDir is the per-workspace directory holding logs.
	StateDir = ".mathmod"

	// FileName is the active log file inside <StateDir>/logs.
	FileName = "mathmod.log"

	// DefaultMaxBytes is the size at which the log is rotated to FileName + ".1".
	DefaultMaxBytes int64 = 4 << 20
)

type Config struct {
	Root  string
	Debug bool

	// Version and Command are attached to every record.
	Version string
	Command string

	// MaxBytes overrides DefaultMaxBytes; a negative value disables rotation.
	MaxBytes int64
}

var (
	mu      sync.RWMutex
	global  = discard()
	logFile *os.File
	logPath string
)

// Setup points the global logger at <root>/.mathmod/logs/mathmod.log.
// Every record carries app, version, workspace and command attributes.
// On failure the logger falls back to discarding output.
func Setup(cfg Config) (func() error, error) {
	root := filepath.Clean(cfg.Root)
	if root == "" {
		root = "."
	}

	dir := filepath.Join(root, StateDir, "logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		reset()
		return nil, err
	}

	path := filepath.Join(dir, FileName)
	if err := rotate(path, maxBytes(cfg)); err != nil {
		reset()
		return nil, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		reset()
		return nil, err
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}

	h := slog.NewJSONHandler(f, &slog.HandlerOptions{
		Level:       level,
		AddSource:   cfg.Debug,
		ReplaceAttr: utcTime,
	})

	l := slog.New(h).With(
		"app", "mathmod",
		"version", orDefault(cfg.Version, "dev"),
		"workspace", root,
	)
	if cfg.Command != "" {
		l = l.With("command", cfg.Command)
	}

	mu.Lock()
	global = l
	logFile = f
	logPath = path
	mu.Unlock()

	l.Info("logger.initialized", "path", path, "debug", cfg.Debug)

	cleanup := func() error {
		mu.Lock()
		f := logFile
		mu.Unlock()

		reset()
		if f == nil {
			return nil
		}
		return f.Close()
	}

	return cleanup, nil
}

// L returns the current logger. It is safe to call before Setup.
func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

// For tags records with the component that emitted them.
func For(component string) *slog.Logger {
	return L().With("component", component)
}

func Path() string {
	mu.RLock()
	defer mu.RUnlock()
	return logPath
}

func IsReady() error {
	mu.RLock()
	defer mu.RUnlock()
	if logFile == nil || logPath == "" {
		return errors.New("logger not initialized")
	}
	return nil
}

// rotate moves an oversized log aside, replacing any previous backup.
func rotate(path string, limit int64) error {
	if limit < 0 {
		return nil
	}
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if info.Size() < limit {
		return nil
	}
	return os.Rename(path, path+".1")
}

func maxBytes(cfg Config) int64 {
	if cfg.MaxBytes == 0 {
		return DefaultMaxBytes
	}
	return cfg.MaxBytes
}

func utcTime(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
		a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
	}
	return a
}

func reset() {
	mu.Lock()
	defer mu.Unlock()
	global = discard()
	logFile = nil
	logPath = ""
}

func discard() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
