package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lvillar/pdftree"
)

func newGenerateCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "generate <tree.json|tree.yaml>",
		Short: "Render a tree file to PDF",
		Long:  `Render a tree file to PDF. The output defaults to the input path with a .pdf extension.`,
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			cfg := configFromContext(ctx)

			if output == "" {
				output = pdfPath(args[0], cfg.OutDir)
			}
			prog := newProgress(logger)
			t, err := readTree(args[0])
			if err != nil {
				return err
			}
			if err := pdftree.GenerateFile(t, output, cfg.options(logger)...); err != nil {
				return err
			}
			prog.done("generated", "output", output, "elements", t.Len())
			fmt.Fprintln(cmd.OutOrStdout(), output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output PDF path")
	return cmd
}
