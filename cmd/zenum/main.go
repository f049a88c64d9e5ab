package main

import (
	"fmt"
	"os"

	"github.com/brimdata/zenum/cmd/zenum/lookup"
	"github.com/brimdata/zenum/cmd/zenum/root"
	"github.com/brimdata/zenum/cmd/zenum/show"
	"github.com/brimdata/zenum/cmd/zenum/values"
	"github.com/brimdata/zenum/pkg/charm"
)

func init() {
	zenum := root.Zenum
	zenum.Add(show.Cmd)
	zenum.Add(values.Cmd)
	zenum.Add(lookup.Cmd)
	zenum.Add(charm.Help)
}

func main() {
	if err := root.Zenum.ExecRoot(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}
