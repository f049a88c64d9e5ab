// Package charm is a minimalist CLI framework inspired by cobra and urfave/cli.
package charm

import (
	"errors"
	"flag"
)

var (
	NeedHelp = errors.New("help")
	ErrNoRun = errors.New("no run method")
)

type Constructor func(Command, *flag.FlagSet) (Command, error)

type Command interface {
	Run([]string) error
}

type Spec struct {
	Name  string
	Usage string
	Short string
	Long  string
	New   Constructor
	// Hidden hides this command from help.
	Hidden bool
	// Hidden flags (comma-separated) marks these flags as hidden.
	HiddenFlags string
	children    []*Spec
	parent      *Spec
}

func (c *Spec) Add(child *Spec) {
	c.children = append(c.children, child)
	child.parent = c
}

func (c *Spec) Root() *Spec {
	for c.parent != nil {
		c = c.parent
	}
	return c
}

func (c *Spec) lookupSub(name string) *Spec {
	for _, child := range c.children {
		if name == child.Name {
			return child
		}
	}
	return nil
}

// ExecRoot parses args against the command tree rooted at s and runs the
// command they select.  A -h or -help flag anywhere on the path prints
// help for the deepest command reached instead.
func (s *Spec) ExecRoot(args []string) error {
	path, rest, err := parse(s, args)
	if err == nil {
		err = path.run(rest)
	}
	if err == NeedHelp {
		h := &HelpCommand{}
		h.help(path)
		return nil
	}
	return err
}

// parse walks args down the command tree, creating an instance for each
// command named and parsing its flags.  The path built so far is returned
// even on error so that help can be shown for it.
func parse(spec *Spec, args []string) (path, []string, error) {
	inst, err := newInstance(nil, spec)
	if err != nil {
		return nil, nil, err
	}
	p := path{inst}
	for {
		rest, err := parseFlags(inst.flags, args)
		if err != nil {
			return p, nil, err
		}
		if len(rest) == 0 {
			return p, rest, nil
		}
		child := inst.spec.lookupSub(rest[0])
		if child == nil {
			return p, rest, nil
		}
		inst, err = newInstance(inst.command, child)
		if err != nil {
			return p, nil, err
		}
		p = append(p, inst)
		args = rest[1:]
	}
}

func parseFlags(fs *flag.FlagSet, args []string) ([]string, error) {
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, NeedHelp
		}
		return nil, err
	}
	return fs.Args(), nil
}
