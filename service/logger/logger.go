// Package logger builds the zap logger zenum reports definition problems
// through.  Rejected definitions are logged at warn level and each loaded
// type at debug level.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	Path string `yaml:"path"`
	// If Path is a file, Mode will determine how the log file is managed.
	// FileModeAppend is the default if value is undefined.
	Mode  FileMode      `yaml:"mode,omitempty"`
	Level zapcore.Level `yaml:"level"`
	// DevMode panics on DPanic entries and writes console lines instead
	// of JSON.
	DevMode bool `yaml:"devmode"`
	// MaxSize (megabytes) and MaxBackups apply to FileModeRotate.
	MaxSize    int `yaml:"max_size,omitempty"`
	MaxBackups int `yaml:"max_backups,omitempty"`
}

func NewCore(conf Config) (zapcore.Core, error) {
	w, err := OpenFile(conf)
	if err != nil {
		return nil, err
	}
	enc := jsonEncoder()
	if conf.DevMode {
		enc = consoleEncoder()
	}
	return zapcore.NewCore(enc, w, conf.Level), nil
}

// New returns a logger writing to the destination described by conf.
func New(conf Config) (*zap.Logger, error) {
	core, err := NewCore(conf)
	if err != nil {
		return nil, err
	}
	var opts []zap.Option
	if conf.DevMode {
		opts = append(opts, zap.Development())
	}
	return zap.New(core, opts...), nil
}

func jsonEncoder() zapcore.Encoder {
	conf := zap.NewProductionEncoderConfig()
	conf.CallerKey = ""
	conf.EncodeTime = zapcore.ISO8601TimeEncoder
	return zapcore.NewJSONEncoder(conf)
}

func consoleEncoder() zapcore.Encoder {
	conf := zap.NewDevelopmentEncoderConfig()
	conf.CallerKey = ""
	conf.TimeKey = ""
	return zapcore.NewConsoleEncoder(conf)
}
