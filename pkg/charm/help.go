package charm

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kr/text"
)

// HelpOutput is where help is written.
var HelpOutput io.Writer = os.Stderr

const lineWidth = 76

var Help = &Spec{
	Name:  "help",
	Usage: "help [command]",
	Short: "display help for a command",
	Long: `
For help on the top-level command just type "help".
For help on a subcommand, type "help command" where command is the name of
the command.`,
	HiddenFlags: "v",
	New: func(parent Command, f *flag.FlagSet) (Command, error) {
		c := &HelpCommand{}
		f.BoolVar(&c.vflag, "v", false, "show hidden commands and flags")
		return c, nil
	},
}

type HelpCommand struct {
	vflag bool
}

// splitFlags is like strings.Split with a comma and also trims whitespace
func splitFlags(flags string) []string {
	var out []string
	for _, flag := range strings.Split(flags, ",") {
		out = append(out, strings.TrimSpace(flag))
	}
	return out
}

// flagMap creates a map that maps a name to a boolean based on the existence
// of that name in the comma-separated string of flags.
func flagMap(flags string) map[string]bool {
	hidden := make(map[string]bool)
	for _, flag := range splitFlags(flags) {
		hidden[flag] = true
	}
	return hidden
}

func (c *HelpCommand) search(args []string) (path, error) {
	parent, err := newInstance(nil, Help.Root())
	if err != nil {
		return nil, err
	}
	p := path{parent}
	for _, arg := range args {
		subcmd := parent.spec.lookupSub(arg)
		if subcmd == nil {
			return nil, fmt.Errorf("no such command: %s", strings.Join(args, " "))
		}
		child, err := newInstance(parent.command, subcmd)
		if err != nil {
			return nil, err
		}
		p = append(p, child)
		parent = child
	}
	return p, nil
}

func (c *HelpCommand) Run(args []string) error {
	p, err := c.search(args)
	if err != nil {
		return err
	}
	c.help(p)
	return nil
}

func (c *HelpCommand) getCommands(target *Spec) []string {
	var lines []string
	for _, cmd := range target.children {
		name := cmd.Name
		if cmd.Hidden {
			if !c.vflag {
				continue
			}
			name = "[" + name + "]"
		}
		lines = append(lines, name+" - "+cmd.Short)
	}
	return lines
}

func buildOptions(p path, vflag bool) []string {
	var lines []string
	for k := len(p) - 1; k >= 0; k-- {
		options := p[k].options(vflag)
		if len(options) == 0 {
			continue
		}
		if k != len(p)-1 {
			lines = append(lines, "", "["+p[:k+1].pathname()+" flags]")
		}
		lines = append(lines, options...)
	}
	if len(lines) == 0 {
		return []string{"no flags for this command"}
	}
	return lines
}

func (c *HelpCommand) help(p path) {
	spec := p.last().spec
	helpItem("NAME", spec.Name+" - "+spec.Short)
	helpDesc("USAGE", spec.Usage)
	helpList("OPTIONS", buildOptions(p, c.vflag))
	if len(spec.children) > 0 {
		helpList("COMMANDS", c.getCommands(spec))
	}
	if spec.Long != "" {
		helpDesc("DESCRIPTION", spec.Long)
	}
}

func formatParagraph(body, tab string, lineWidth int) string {
	paragraphs := strings.Split(body, "\n\n")
	var chunks []string
	for _, paragraph := range paragraphs {
		paragraph = strings.TrimSpace(paragraph)
		chunks = append(chunks, text.Indent(text.Wrap(paragraph, lineWidth), tab))
	}
	return strings.Join(chunks, "\n\n") + "\n\n"
}

const tab = "    "

func helpItem(heading, body string) {
	fmt.Fprint(HelpOutput, heading+"\n"+tab+body+"\n\n")
}

func helpDesc(heading, body string) {
	fmt.Fprint(HelpOutput, heading+"\n"+formatParagraph(body, tab, lineWidth-len(tab)))
}

func helpList(heading string, lines []string) {
	fmt.Fprint(HelpOutput, heading+"\n"+tab+strings.Join(lines, "\n"+tab)+"\n\n")
}
