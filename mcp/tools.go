package mcp

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/lvillar/pdftree"
	"github.com/lvillar/pdftree/inspect"
	"github.com/lvillar/pdftree/tree"
)

// RegisterDefaultTools adds generate_pdf, inspect_pdf and validate_tree.
// logger receives the generator's debug output; nil discards it.
func RegisterDefaultTools(s *Server, logger *log.Logger) {
	s.AddTool(generatePDFTool(logger))
	s.AddTool(inspectPDFTool())
	s.AddTool(validateTreeTool(logger))
}

var treeSchema = map[string]any{
	"type":        "object",
	"description": "Document tree: {pages, elements, metadata}. Elements are text, image or barcode blocks with an absolute layout {x, y, width, height} in points.",
}

// treeArg decodes the "tree" argument, which is either a JSON object or a
// string holding JSON or YAML.
func treeArg(args map[string]any) (tree.Tree, error) {
	v, ok := args["tree"]
	if !ok {
		return tree.Tree{}, errors.New("missing 'tree' argument")
	}
	if s, ok := v.(string); ok && !strings.HasPrefix(strings.TrimSpace(s), "{") {
		return tree.FromYAML([]byte(s))
	}
	return tree.FromObject(v)
}

func generatePDFTool(logger *log.Logger) Tool {
	return Tool{
		Name:        "generate_pdf",
		Description: "Render a document tree into a single page PDF. Returns the PDF as base64, or writes it to outputPath.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"tree": treeSchema,
				"outputPath": map[string]any{
					"type":        "string",
					"description": "Optional file path to save the PDF. If omitted, returns base64.",
				},
			},
			"required": []string{"tree"},
		},
		Handler: func(args map[string]any) (ToolResult, error) {
			t, err := treeArg(args)
			if err != nil {
				return ToolResult{}, err
			}
			opts := []pdftree.Option{pdftree.WithLogger(logger)}

			if path, ok := args["outputPath"].(string); ok && path != "" {
				if err := pdftree.GenerateFile(t, path, opts...); err != nil {
					return ToolResult{}, err
				}
				return textResult(fmt.Sprintf("PDF written to %s", path)), nil
			}

			data, err := pdftree.Generate(t, opts...)
			if err != nil {
				return ToolResult{}, err
			}
			return textResult(fmt.Sprintf("PDF generated (%d bytes). Base64 data:\n%s",
				len(data), base64.StdEncoding.EncodeToString(data))), nil
		},
	}
}

func inspectPDFTool() Tool {
	return Tool{
		Name:        "inspect_pdf",
		Description: "Read a PDF file and report its metadata, page sizes and the position of every text run.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"path": map[string]any{
					"type":        "string",
					"description": "Path to the PDF file",
				},
				"text": map[string]any{
					"type":        "boolean",
					"description": "Include text runs (default true)",
				},
			},
			"required": []string{"path"},
		},
		Handler: func(args map[string]any) (ToolResult, error) {
			path, ok := args["path"].(string)
			if !ok || path == "" {
				return ToolResult{}, errors.New("missing 'path' argument")
			}
			withText := true
			if v, ok := args["text"].(bool); ok {
				withText = v
			}
			out, err := summarize(path, withText)
			if err != nil {
				return ToolResult{}, err
			}
			return textResult(out), nil
		},
	}
}

func summarize(path string, withText bool) (string, error) {
	doc, err := inspect.Open(path)
	if err != nil {
		return "", err
	}
	sum, err := doc.Summarize(withText)
	if err != nil {
		return "", err
	}
	data, err := json.MarshalIndent(sum, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func validateTreeTool(logger *log.Logger) Tool {
	return Tool{
		Name:        "validate_tree",
		Description: "Decode and validate a document tree, then lay it out without producing a PDF. Reports what would be painted.",
		InputSchema: map[string]any{
			"type":       "object",
			"properties": map[string]any{"tree": treeSchema},
			"required":   []string{"tree"},
		},
		Handler: func(args map[string]any) (ToolResult, error) {
			t, err := treeArg(args)
			if err != nil {
				return ToolResult{}, err
			}
			rec, err := pdftree.DryRun(t, pdftree.WithLogger(logger))
			if err != nil {
				return ToolResult{}, err
			}
			return textResult(fmt.Sprintf("valid: %d elements, %d text runs, %d lines, %d images, %d barcodes",
				t.Len(), len(rec.Texts), len(rec.Lines), len(rec.Images), len(rec.Barcodes))), nil
		},
	}
}
