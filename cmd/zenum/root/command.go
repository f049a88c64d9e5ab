package root

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/brimdata/zenum"
	"github.com/brimdata/zenum/cli"
	"github.com/brimdata/zenum/cli/logflags"
	"github.com/brimdata/zenum/pkg/charm"
	"github.com/brimdata/zenum/yamldef"
	"go.uber.org/zap"
)

// Output is where commands write their results.
var Output io.Writer = os.Stdout

var Zenum = &charm.Spec{
	Name:  "zenum",
	Usage: "zenum [options] <command> [options] file.yaml...",
	Short: "inspect enum definition files",
	Long: `
zenum loads enum types from YAML definition files and prints them.
A definition file maps type names either to a list of constant names
or to a mapping with a "constants" field of per-constant attributes.
Files are loaded in order into one set of types, so a type name may
be defined only once across all of them.`,
	New: New,
}

type Command struct {
	charm.Command
	cli.Flags
	logFlags logflags.Flags
	logger   *zap.Logger
}

func New(parent charm.Command, f *flag.FlagSet) (charm.Command, error) {
	c := &Command{}
	c.SetFlags(f)
	c.logFlags.SetFlags(f)
	return c, nil
}

// Init opens the logger described by the log flags.
func (c *Command) Init() (*zap.Logger, error) {
	if c.logger == nil {
		logger, err := c.logFlags.Open()
		if err != nil {
			return nil, err
		}
		c.logger = logger
	}
	return c.logger, nil
}

// Load defines the types of every file in paths into a new context.
func (c *Command) Load(paths []string) (*zenum.Context, error) {
	logger, err := c.Init()
	if err != nil {
		return nil, err
	}
	zctx := zenum.NewContext()
	loader := yamldef.NewLoader(zctx, nil, logger)
	for _, path := range paths {
		if _, err := loader.LoadFile(path); err != nil {
			return nil, err
		}
	}
	return zctx, nil
}

func (c *Command) Run(args []string) error {
	if c.ShowVersion() {
		fmt.Fprintf(Output, "Version: %s\n", cli.Version())
		return nil
	}
	if len(args) == 0 {
		return charm.NeedHelp
	}
	return charm.ErrNoRun
}
