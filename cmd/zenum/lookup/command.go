package lookup

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/agnivade/levenshtein"
	"github.com/brimdata/zenum"
	"github.com/brimdata/zenum/cmd/zenum/root"
	"github.com/brimdata/zenum/pkg/charm"
)

// maxDistance bounds the edit distance of a suggested constant name.
const maxDistance = 2

var Cmd = &charm.Spec{
	Name:  "lookup",
	Usage: "lookup -type name -name constant file.yaml...",
	Short: "print one constant with its attributes",
	Long: `
"zenum lookup" finds a constant by type and constant name and prints its
qualified name and ordinal followed by its attributes in definition order
and the names of the methods it can be called with.`,
	New: New,
}

type Command struct {
	*root.Command
	typeName string
	name     string
}

func New(parent charm.Command, f *flag.FlagSet) (charm.Command, error) {
	c := &Command{Command: parent.(*root.Command)}
	f.StringVar(&c.typeName, "type", "", "name of the enum type")
	f.StringVar(&c.name, "name", "", "name of the constant")
	return c, nil
}

func (c *Command) Run(args []string) error {
	if c.typeName == "" || c.name == "" {
		return errors.New("lookup: -type and -name are required")
	}
	if len(args) == 0 {
		return errors.New("lookup: at least one definition file is required")
	}
	zctx, err := c.Load(args)
	if err != nil {
		return err
	}
	typ, err := zctx.LookupType(c.typeName)
	if err != nil {
		return err
	}
	constant, err := typ.FromName(c.name)
	if err != nil {
		if s := suggest(typ, c.name); s != "" {
			return fmt.Errorf("%w (did you mean %s?)", err, s)
		}
		return err
	}
	printConstant(root.Output, constant)
	return nil
}

// printConstant writes c with its non-method attributes in definition order
// followed by the names of the methods it can be called with.
func printConstant(w io.Writer, c *zenum.Constant) {
	fmt.Fprintf(w, "%#v ordinal=%d\n", c, c.Ordinal())
	for _, name := range c.AttrNames() {
		v, _ := c.Attr(name)
		if zenum.IsMethod(v) {
			continue
		}
		fmt.Fprintf(w, "  %s: %v\n", name, v)
	}
	if methods := c.Methods(); len(methods) > 0 {
		fmt.Fprintf(w, "  methods: %v\n", methods)
	}
}

// suggest returns the name of the constant of typ closest to name, or ""
// if none is within maxDistance edits.
func suggest(typ *zenum.Type, name string) string {
	best, bestDist := "", maxDistance+1
	for _, c := range typ.Values() {
		if d := levenshtein.ComputeDistance(name, c.Name()); d < bestDist {
			best, bestDist = c.Name(), d
		}
	}
	return best
}
