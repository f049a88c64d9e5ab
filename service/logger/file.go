package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// FileMode says what happens to an existing log file when zenum opens it.
type FileMode string

const (
	// FileModeAppend keeps the entries of earlier runs.  It is the default.
	FileModeAppend FileMode = "append"
	// FileModeTruncate keeps only the entries of the current run.
	FileModeTruncate FileMode = "truncate"
	// FileModeRotate rolls the file over once it reaches Config.MaxSize.
	FileModeRotate FileMode = "rotate"
)

var fileModes = map[string]FileMode{
	"":                       FileModeAppend,
	string(FileModeAppend):   FileModeAppend,
	string(FileModeTruncate): FileModeTruncate,
	string(FileModeRotate):   FileModeRotate,
}

func (m *FileMode) Set(s string) error {
	mode, ok := fileModes[s]
	if !ok {
		return fmt.Errorf("invalid FileMode type: %s", s)
	}
	*m = mode
	return nil
}

func (m FileMode) String() string {
	return string(m)
}

func (m *FileMode) UnmarshalText(b []byte) error {
	return m.Set(string(b))
}

// Rotation defaults sized for a log of definition rejections and loaded
// types rather than a long-running service.
const (
	DefaultMaxSize    = 1 // megabytes
	DefaultMaxBackups = 2
)

// OpenFile opens the destination named by conf.Path.  The names stdout and
// stderr (or an empty path) select the standard streams and /dev/null
// discards everything.
func OpenFile(conf Config) (zapcore.WriteSyncer, error) {
	switch conf.Path {
	case "stdout":
		return zapcore.Lock(os.Stdout), nil
	case "stderr", "":
		return zapcore.Lock(os.Stderr), nil
	case "/dev/null":
		return zapcore.AddSync(io.Discard), nil
	}
	flags := os.O_WRONLY | os.O_CREATE
	switch conf.Mode {
	case FileModeRotate:
		return logrotate(conf)
	case FileModeTruncate:
		flags |= os.O_TRUNC
	default:
		flags |= os.O_APPEND
	}
	f, err := os.OpenFile(conf.Path, flags, 0644)
	if err != nil {
		return nil, err
	}
	return zapcore.Lock(f), nil
}

func logrotate(conf Config) (zapcore.WriteSyncer, error) {
	if _, err := os.Stat(filepath.Dir(conf.Path)); err != nil {
		return nil, err
	}
	size, backups := conf.MaxSize, conf.MaxBackups
	if size <= 0 {
		size = DefaultMaxSize
	}
	if backups <= 0 {
		backups = DefaultMaxBackups
	}
	// lumberjack.Logger serializes its own writes.
	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   conf.Path,
		MaxSize:    size,
		MaxBackups: backups,
	}), nil
}
