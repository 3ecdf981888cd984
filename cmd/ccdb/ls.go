package main

import (
	"context"
	"fmt"
	"io"

	"github.com/hayeah/ccdb/ls"
)

// LsCmd defines the command-line arguments for the ls subcommand
type LsCmd struct {
	DumpTree bool `arg:"--dump-tree" help:"Print every directory from the root as an indented tree"`
	Dump     bool `arg:"--dump" help:"Print the full path of every directory from the root"`
	// optional positional path; empty means the current path
	Path string `arg:"positional" help:"Directory to list, optionally ending in a pattern like /test/sub*"`
}

// LsRunner encapsulates the state and behavior for the ls subcommand
type LsRunner struct {
	Args   LsCmd
	Lister *ls.Lister
	Out    io.Writer
}

// NewLsRunner creates and initializes a new LsRunner
func NewLsRunner(cmd LsCmd, lister *ls.Lister, out io.Writer) (*LsRunner, error) {
	if cmd.DumpTree && cmd.Dump {
		return nil, fmt.Errorf("--dump-tree and --dump are mutually exclusive")
	}
	return &LsRunner{
		Args:   cmd,
		Lister: lister,
		Out:    out,
	}, nil
}

// Run executes the ls subcommand. The dump flags ignore the path argument.
func (r *LsRunner) Run(ctx context.Context) error {
	switch {
	case r.Args.DumpTree:
		return r.Lister.DumpTree(ctx, r.Out, false)
	case r.Args.Dump:
		return r.Lister.DumpTree(ctx, r.Out, true)
	default:
		return r.Lister.Print(ctx, r.Out, r.Args.Path)
	}
}
