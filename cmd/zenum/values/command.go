package values

import (
	"errors"
	"flag"
	"fmt"

	"github.com/brimdata/zenum/cmd/zenum/root"
	"github.com/brimdata/zenum/pkg/charm"
)

var Cmd = &charm.Spec{
	Name:  "values",
	Usage: "values -type name file.yaml...",
	Short: "list the constants of an enum type",
	Long: `
"zenum values" prints the constants of the type named by -type, one per
line, as the constant's ordinal followed by its name.`,
	New: New,
}

type Command struct {
	*root.Command
	typeName string
}

func New(parent charm.Command, f *flag.FlagSet) (charm.Command, error) {
	c := &Command{Command: parent.(*root.Command)}
	f.StringVar(&c.typeName, "type", "", "name of the enum type")
	return c, nil
}

func (c *Command) Run(args []string) error {
	if c.typeName == "" {
		return errors.New("values: -type is required")
	}
	if len(args) == 0 {
		return errors.New("values: at least one definition file is required")
	}
	zctx, err := c.Load(args)
	if err != nil {
		return err
	}
	typ, err := zctx.LookupType(c.typeName)
	if err != nil {
		return err
	}
	for _, constant := range typ.Values() {
		fmt.Fprintf(root.Output, "%d %s\n", constant.Ordinal(), constant.Name())
	}
	return nil
}
