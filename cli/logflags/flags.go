// Package logflags registers the -log.* flags shared by zenum commands.
package logflags

import (
	"flag"

	"github.com/brimdata/zenum/service/logger"
	"go.uber.org/zap"
)

type Flags struct {
	Config logger.Config
}

// SetFlags registers the log flags on fs.  The default level, warn, reports
// rejected definitions only; debug adds a line for every loaded type.
func (f *Flags) SetFlags(fs *flag.FlagSet) {
	f.Config.Level = zap.WarnLevel
	f.Config.Mode = logger.FileModeAppend
	fs.Var(&f.Config.Level, "log.level", "logging level (warn: rejected definitions, debug: also each loaded type)")
	fs.StringVar(&f.Config.Path, "log.path", "stderr", "where to write the log (stderr, stdout, /dev/null, or a file)")
	fs.Var(&f.Config.Mode, "log.filemode", "how an existing log file is opened (append, truncate, rotate)")
	fs.IntVar(&f.Config.MaxSize, "log.maxsize", logger.DefaultMaxSize, "size in megabytes at which a rotated log rolls over")
	fs.BoolVar(&f.Config.DevMode, "log.devmode", false, "console log lines and panics on dpanic entries")
}

func (f *Flags) Open() (*zap.Logger, error) {
	return logger.New(f.Config)
}
