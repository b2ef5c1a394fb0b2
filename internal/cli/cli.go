// Package cli implements the pdftree command-line interface.
//
// # Commands
//
//   - generate: render one tree file (JSON or YAML) to a PDF
//   - batch: render many tree files concurrently
//   - inspect: report metadata, page sizes and text runs of a PDF
//   - validate: decode, validate and lay out a tree without writing a PDF
//
// All commands accept --verbose (-v) for debug logging to stderr and
// --config to read defaults from a YAML file. Without --config,
// pdftree.yaml in the working directory is used when present.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/lvillar/pdftree"
)

// Version is reported by --version. It is set at build time.
var Version = "dev"

// Exit codes.
const (
	ExitSuccess     = 0
	ExitGeneral     = 1   // unexpected error
	ExitUsage       = 2   // bad flags, config or tree
	ExitIO          = 3   // file not found, unwritable output
	ExitInterrupted = 130 // SIGINT
)

var (
	ErrUsage     = errors.New("usage")
	ErrConfig    = errors.New("invalid config")
	ErrReadInput = errors.New("cannot read input")
)

// ExitCode maps err to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, context.Canceled):
		return ExitInterrupted
	case errors.Is(err, ErrUsage),
		errors.Is(err, ErrConfig),
		errors.Is(err, pdftree.ErrDecode),
		errors.Is(err, pdftree.ErrInvalid):
		return ExitUsage
	case errors.Is(err, os.ErrNotExist),
		errors.Is(err, os.ErrPermission),
		errors.Is(err, ErrReadInput),
		errors.Is(err, pdftree.ErrOutput):
		return ExitIO
	}
	return ExitGeneral
}

// Run executes the command line args and returns the exit code. Errors are
// printed to stderr, except for interruption.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(stderr, "pdftree: %v\n", err)
	}
	return ExitCode(err)
}
