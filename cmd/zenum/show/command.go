package show

import (
	"errors"
	"flag"
	"fmt"

	"github.com/brimdata/zenum/cmd/zenum/root"
	"github.com/brimdata/zenum/pkg/charm"
	"github.com/brimdata/zenum/pkg/plural"
)

var Cmd = &charm.Spec{
	Name:  "show",
	Usage: "show file.yaml...",
	Short: "print each enum type defined by the files",
	Long: `
"zenum show" prints one line per enum type in the form
"Name { A, B, C }", sorted by type name.  With -count, each line is
followed by the number of constants and a summary line ends the output.`,
	New: New,
}

type Command struct {
	*root.Command
	count bool
}

func New(parent charm.Command, f *flag.FlagSet) (charm.Command, error) {
	c := &Command{Command: parent.(*root.Command)}
	f.BoolVar(&c.count, "count", false, "print the number of constants of each type")
	return c, nil
}

func (c *Command) Run(args []string) error {
	if len(args) == 0 {
		return errors.New("show: at least one definition file is required")
	}
	zctx, err := c.Load(args)
	if err != nil {
		return err
	}
	types := zctx.Types()
	for _, typ := range types {
		if c.count {
			fmt.Fprintf(root.Output, "%s (%s)\n", typ, plural.Count(typ.Len(), "constant"))
			continue
		}
		fmt.Fprintln(root.Output, typ)
	}
	if c.count {
		fmt.Fprintf(root.Output, "%d type%s\n", len(types), plural.Slice(types, "s"))
	}
	return nil
}
