package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"github.com/lvillar/pdftree/inspect"
)

func newInspectCmd() *cobra.Command {
	var (
		asJSON bool
		noText bool
	)
	cmd := &cobra.Command{
		Use:   "inspect <file.pdf>",
		Short: "Show metadata, page sizes and text runs of a PDF",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			doc, err := inspect.Open(args[0])
			if err != nil {
				return fmt.Errorf("%w: %w", ErrReadInput, err)
			}
			logger.Debug("parsed", "path", args[0], "version", doc.Version, "pages", doc.NumPages())
			sum, err := doc.Summarize(!noText)
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(sum)
			}
			printSummary(cmd.OutOrStdout(), sum)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")
	cmd.Flags().BoolVar(&noText, "no-text", false, "omit text runs")
	return cmd
}

func printSummary(w io.Writer, s inspect.Summary) {
	fmt.Fprintf(w, "PDF %s\n", s.Version)
	for _, k := range slices.Sorted(maps.Keys(s.Metadata)) {
		fmt.Fprintf(w, "%s: %s\n", k, s.Metadata[k])
	}
	for _, p := range s.Pages {
		fmt.Fprintf(w, "page %d: %.2f x %.2f pt\n", p.Number, p.Width, p.Height)
		for _, r := range p.TextRuns {
			fmt.Fprintf(w, "  (%.2f, %.2f) %s %g: %s\n", r.X, r.Y, r.Font, r.Size, r.Text)
		}
	}
}
