package main

import (
	"context"
	"fmt"
	"io"

	"github.com/hayeah/ccdb/namespace"
	"github.com/hayeah/ccdb/namespace/sqlite"
)

// ImportCmd defines the command-line arguments for the import subcommand
type ImportCmd struct {
	File string `arg:"positional,required" help:"YAML namespace fixture"`
}

// ImportRunner loads a YAML fixture into the SQLite store
type ImportRunner struct {
	Args  ImportCmd
	Store *sqlite.Store
	Out   io.Writer
}

func NewImportRunner(cmd ImportCmd, store *sqlite.Store, out io.Writer) *ImportRunner {
	return &ImportRunner{Args: cmd, Store: store, Out: out}
}

func (r *ImportRunner) Run(ctx context.Context) error {
	fixture, err := namespace.ReadFixtureFile(r.Args.File)
	if err != nil {
		return err
	}

	stats, err := r.Store.Import(ctx, fixture)
	if err != nil {
		return fmt.Errorf("failed to import %s: %w", r.Args.File, err)
	}

	_, err = fmt.Fprintf(r.Out, "Imported %d directories and %d tables\n", stats.Directories, stats.Tables)
	return err
}
