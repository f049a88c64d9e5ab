package logflags

import (
	"flag"
	"testing"

	"github.com/brimdata/zenum/service/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestSetFlags(t *testing.T) {
	var f Flags
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	f.SetFlags(fs)
	assert.Equal(t, zapcore.WarnLevel, f.Config.Level)
	assert.Equal(t, "stderr", f.Config.Path)
	assert.Equal(t, logger.DefaultMaxSize, f.Config.MaxSize)

	err := fs.Parse([]string{"-log.level", "debug", "-log.path", "/dev/null", "-log.filemode", "truncate", "-log.maxsize", "3"})
	require.NoError(t, err)
	assert.Equal(t, zapcore.DebugLevel, f.Config.Level)
	assert.Equal(t, logger.FileModeTruncate, f.Config.Mode)
	assert.Equal(t, 3, f.Config.MaxSize)

	l, err := f.Open()
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))
}

func TestBadFileMode(t *testing.T) {
	var f Flags
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(nopWriter{})
	f.SetFlags(fs)
	assert.Error(t, fs.Parse([]string{"-log.filemode", "sideways"}))
}

type nopWriter struct{}

func (nopWriter) Write(b []byte) (int, error) { return len(b), nil }
