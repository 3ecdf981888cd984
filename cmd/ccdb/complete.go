package main

import (
	"context"
	"fmt"
	"io"

	"github.com/hayeah/ccdb/ls"
)

// CompleteCmd defines the command-line arguments for the complete subcommand
type CompleteCmd struct {
	Path string `arg:"positional" help:"Directory or pattern to complete"`
}

// CompleteRunner prints the names found at a path, one per line, with
// directories first and marked by a trailing slash. Nothing is printed when
// the path does not resolve.
type CompleteRunner struct {
	Args   CompleteCmd
	Lister *ls.Lister
	Out    io.Writer
}

func NewCompleteRunner(cmd CompleteCmd, lister *ls.Lister, out io.Writer) *CompleteRunner {
	return &CompleteRunner{Args: cmd, Lister: lister, Out: out}
}

func (r *CompleteRunner) Run(ctx context.Context) error {
	names, ok, err := r.Lister.Names(ctx, r.Args.Path)
	if err != nil || !ok {
		return err
	}

	for _, dir := range names.Directories {
		if _, err := fmt.Fprintln(r.Out, dir+ls.DirMarker); err != nil {
			return err
		}
	}
	for _, table := range names.Tables {
		if _, err := fmt.Fprintln(r.Out, table); err != nil {
			return err
		}
	}
	return nil
}
