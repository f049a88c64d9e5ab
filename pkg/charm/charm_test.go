package charm

import (
	"bytes"
	"errors"
	"flag"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rootCommand struct {
	verbose bool
}

func (*rootCommand) Run(args []string) error {
	return ErrNoRun
}

type leafCommand struct {
	parent *rootCommand
	name   string
	ran    []string
}

func (c *leafCommand) Run(args []string) error {
	if c.name == "fail" {
		return errors.New("failed")
	}
	c.ran = args
	last = c
	return nil
}

var last *leafCommand

func tree() *Spec {
	root := &Spec{
		Name:  "tool",
		Usage: "tool [options] command",
		Short: "a test tool",
		New: func(_ Command, f *flag.FlagSet) (Command, error) {
			c := &rootCommand{}
			f.BoolVar(&c.verbose, "verbose", false, "talk more")
			return c, nil
		},
	}
	leaf := &Spec{
		Name:  "leaf",
		Usage: "leaf [-name n] args",
		Short: "a leaf",
		Long:  "The leaf command records its arguments.",
		New: func(parent Command, f *flag.FlagSet) (Command, error) {
			c := &leafCommand{parent: parent.(*rootCommand)}
			f.StringVar(&c.name, "name", "", "name to use")
			return c, nil
		},
	}
	root.Add(leaf)
	root.Add(&Spec{Name: "secret", Short: "hidden", Hidden: true, New: leaf.New})
	root.Add(Help)
	return root
}

func TestExecRootRunsLeaf(t *testing.T) {
	err := tree().ExecRoot([]string{"-verbose", "leaf", "-name", "x", "a", "b"})
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, []string{"a", "b"}, last.ran)
	assert.Equal(t, "x", last.name)
	assert.True(t, last.parent.verbose)
}

func TestExecRootErrors(t *testing.T) {
	err := tree().ExecRoot(nil)
	assert.EqualError(t, err, `"tool": requires a sub-command: leaf help`)

	err = tree().ExecRoot([]string{"nope"})
	assert.EqualError(t, err, `"tool": no such sub-command "nope": options are: leaf help`)

	err = tree().ExecRoot([]string{"leaf", "-name", "fail"})
	assert.EqualError(t, err, "failed")

	err = tree().ExecRoot([]string{"leaf", "-bogus"})
	assert.Error(t, err)
}

func TestHelp(t *testing.T) {
	var buf bytes.Buffer
	HelpOutput = &buf
	defer func() { HelpOutput = os.Stderr }()

	require.NoError(t, tree().ExecRoot([]string{"leaf", "-h"}))
	out := buf.String()
	assert.Contains(t, out, "NAME\n    leaf - a leaf")
	assert.Contains(t, out, "-name name to use")
	assert.Contains(t, out, "[tool flags]")
	assert.Contains(t, out, "-verbose talk more")
	assert.Contains(t, out, "The leaf command records its arguments.")

	buf.Reset()
	require.NoError(t, tree().ExecRoot([]string{"help"}))
	out = buf.String()
	assert.Contains(t, out, "leaf - a leaf")
	assert.NotContains(t, out, "secret")

	buf.Reset()
	require.NoError(t, tree().ExecRoot([]string{"help", "-v"}))
	assert.Contains(t, buf.String(), "[secret] - hidden")

	err := tree().ExecRoot([]string{"help", "nope"})
	assert.EqualError(t, err, "no such command: nope")
}
