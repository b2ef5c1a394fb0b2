// Command pdftree renders JSON or YAML document trees into PDF files.
//
//	pdftree generate invoice.json -o invoice.pdf
//	pdftree batch --out-dir out --workers 4 trees/*.yaml
//	pdftree inspect invoice.pdf
//	pdftree validate invoice.json
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/automaxprocs/maxprocs"

	"github.com/lvillar/pdftree/internal/cli"
)

func main() {
	// maxprocs.Set only fails on an invalid GOMAXPROCS, in which case the
	// runtime default stays in place.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...any) {}))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}
