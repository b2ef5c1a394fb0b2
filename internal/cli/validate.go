package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lvillar/pdftree"
)

func newValidateCmd() *cobra.Command {
	var dryRun bool
	cmd := &cobra.Command{
		Use:   "validate <tree.json|tree.yaml>",
		Short: "Check a tree file without writing a PDF",
		Long: `Decode and validate a tree file. With --dry-run (the default) the tree is
also laid out and painted onto an in-memory surface, which reports what
would be drawn.`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			t, err := readTree(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !dryRun {
				if err := t.Validate(); err != nil {
					return fmt.Errorf("%w: %w", pdftree.ErrInvalid, err)
				}
				fmt.Fprintf(out, "%s: valid, %d elements\n", args[0], t.Len())
				return nil
			}
			rec, err := pdftree.DryRun(t, pdftree.WithLogger(logger))
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s: valid, %d elements, %d text runs, %d lines, %d images, %d barcodes\n",
				args[0], t.Len(), len(rec.Texts), len(rec.Lines), len(rec.Images), len(rec.Barcodes))
			return nil
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", true, "lay out and paint onto an in-memory surface")
	return cmd
}
