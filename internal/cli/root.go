package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/lvillar/pdftree"
	"github.com/lvillar/pdftree/tree"
)

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var (
		verbose    bool
		configPath string
	)
	root := &cobra.Command{
		Use:           "pdftree",
		Short:         "pdftree renders document trees into PDF files",
		Long:          `pdftree renders JSON or YAML document trees of absolutely positioned text, image and barcode blocks into single page PDF files.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			logger := newLogger(stderr, level)
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			logger.Debug("config loaded", "producer", cfg.Producer, "workers", cfg.Workers)
			ctx := withConfig(withLogger(cmd.Context(), logger), cfg)
			cmd.SetContext(ctx)
			return nil
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	})
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default "+DefaultConfigFile+" if present)")

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newBatchCmd())
	root.AddCommand(newInspectCmd())
	root.AddCommand(newValidateCmd())
	return root
}

// exactArgs is cobra.ExactArgs with errors that map to ExitUsage.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return fmt.Errorf("%w: %w", ErrUsage, err)
		}
		return nil
	}
}

// readTree decodes a tree file. Files ending in .yaml or .yml are YAML,
// everything else is JSON.
func readTree(path string) (tree.Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return tree.Tree{}, fmt.Errorf("%w: %w", ErrReadInput, err)
	}
	var t tree.Tree
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		t, err = tree.FromYAML(data)
	default:
		t, err = tree.FromJSON(data)
	}
	if err != nil {
		return tree.Tree{}, fmt.Errorf("%w: %s: %w", pdftree.ErrDecode, path, err)
	}
	return t, nil
}

// pdfPath returns path with its extension replaced by .pdf, placed in dir
// when dir is not empty.
func pdfPath(path, dir string) string {
	out := strings.TrimSuffix(path, filepath.Ext(path)) + ".pdf"
	if dir != "" {
		out = filepath.Join(dir, filepath.Base(out))
	}
	return out
}
