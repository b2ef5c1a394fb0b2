package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/lvillar/pdftree"
)

func newBatchCmd() *cobra.Command {
	var (
		outDir  string
		workers int
	)
	cmd := &cobra.Command{
		Use:   "batch <tree files...>",
		Short: "Render many tree files concurrently",
		Long: `Render many tree files concurrently. Each file is generated independently
into --out-dir with a .pdf extension. The first failure cancels the files
not yet started.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return fmt.Errorf("%w: batch needs at least one file", ErrUsage)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			cfg := configFromContext(ctx)
			if outDir == "" {
				outDir = cfg.OutDir
			}
			if workers <= 0 {
				workers = cfg.workers()
			}
			outputs := make([]string, len(args))
			seen := make(map[string]string, len(args))
			for i, in := range args {
				out := filepath.Clean(pdfPath(in, outDir))
				if prev, ok := seen[out]; ok {
					return fmt.Errorf("%w: %s and %s both write %s", ErrUsage, prev, in, out)
				}
				seen[out] = in
				outputs[i] = out
			}

			if outDir != "" {
				if err := os.MkdirAll(outDir, 0o755); err != nil {
					return fmt.Errorf("%w: %w", pdftree.ErrOutput, err)
				}
			}

			prog := newProgress(logger)
			logger.Debug("starting batch", "files", len(args), "workers", workers)
			written := make([]string, len(args))
			g, gctx := errgroup.WithContext(ctx)
			g.SetLimit(workers)
			for i, in := range args {
				g.Go(func() error {
					if err := gctx.Err(); err != nil {
						return err
					}
					t, err := readTree(in)
					if err != nil {
						return err
					}
					out := outputs[i]
					if err := pdftree.GenerateFile(t, out, cfg.options(logger)...); err != nil {
						return fmt.Errorf("%s: %w", in, err)
					}
					logger.Debug("generated", "input", in, "output", out)
					written[i] = out
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			for _, out := range written {
				fmt.Fprintln(cmd.OutOrStdout(), out)
			}
			prog.done("batch complete", "files", len(args))
			return nil
		},
	}
	cmd.Flags().StringVar(&outDir, "out-dir", "", "directory for the generated PDFs (default next to each input)")
	cmd.Flags().IntVar(&workers, "workers", 0, "number of files rendered at once (default GOMAXPROCS)")
	return cmd
}
