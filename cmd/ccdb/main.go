package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/alexflint/go-arg"
)

// Args defines the command-line arguments with subcommands
type Args struct {
	DB        string `arg:"--db,env:CCDB_DB" default:"ccdb.sqlite" help:"SQLite database holding the namespace"`
	Fixture   string `arg:"--fixture,env:CCDB_FIXTURE" help:"Read the namespace from a YAML fixture instead of the database"`
	Cwd       string `arg:"--cwd,env:CCDB_PATH" default:"/" help:"Current namespace path that relative paths start from"`
	Verbose   bool   `arg:"-v,--verbose" help:"Enable debug logging"`
	LogFormat string `arg:"--log-format,env:CCDB_LOG_FORMAT" default:"console" help:"Log format written to stderr: console or json"`

	Ls       *LsCmd       `arg:"subcommand:ls" help:"List directories and type tables"`
	Complete *CompleteCmd `arg:"subcommand:complete" help:"Print entry names for shell completion"`
	Import   *ImportCmd   `arg:"subcommand:import" help:"Load a YAML namespace into the database"`
}

// Runner encapsulates the state and behavior for the CLI
type Runner struct {
	Args Args
	Out  io.Writer
}

// NewRunner creates and initializes a new Runner
func NewRunner(args Args) *Runner {
	return &Runner{
		Args: args,
		Out:  os.Stdout,
	}
}

// Run dispatches to the appropriate subcommand
func (r *Runner) Run(ctx context.Context) error {
	switch {
	case r.Args.Ls != nil:
		lister, cleanup, err := BuildLister(&r.Args, r.Out)
		if err != nil {
			return err
		}
		defer cleanup()

		lsRunner, err := NewLsRunner(*r.Args.Ls, lister, r.Out)
		if err != nil {
			return err
		}
		return lsRunner.Run(ctx)
	case r.Args.Complete != nil:
		lister, cleanup, err := BuildLister(&r.Args, r.Out)
		if err != nil {
			return err
		}
		defer cleanup()

		return NewCompleteRunner(*r.Args.Complete, lister, r.Out).Run(ctx)
	case r.Args.Import != nil:
		store, cleanup, err := BuildStore(&r.Args)
		if err != nil {
			return err
		}
		defer cleanup()

		return NewImportRunner(*r.Args.Import, store, r.Out).Run(ctx)
	default:
		return fmt.Errorf("no subcommand specified, use 'ls', 'complete', or 'import'")
	}
}

// main is our entrypoint: parse args and run the application
func main() {
	var args Args
	parser := arg.MustParse(&args)

	// If no subcommand is specified, show help
	if args.Ls == nil && args.Complete == nil && args.Import == nil {
		parser.WriteHelp(os.Stderr)
		os.Exit(1)
	}

	runner := NewRunner(args)
	if err := runner.Run(context.Background()); err != nil {
		log.Fatal(err)
	}
}
