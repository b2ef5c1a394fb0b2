// Command pdftree-mcp is an MCP (Model Context Protocol) server that lets
// AI assistants generate and inspect PDFs with pdftree.
//
// # Configuration
//
//	{
//	  "mcpServers": {
//	    "pdftree": {
//	      "command": "pdftree-mcp"
//	    }
//	  }
//	}
//
// # Available Tools
//
//   - generate_pdf: render a document tree to PDF
//   - inspect_pdf: report metadata, page sizes and text runs
//   - validate_tree: validate a tree and dry-run its layout
//
// # Available Resources
//
//   - pdf://metadata?path=... : document metadata and page sizes
//   - pdf://text?path=... : text runs with positions
//
// Set PDFTREE_MCP_DEBUG=1 to log requests to stderr.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/lvillar/pdftree/mcp"
)

var version = "dev"

func main() {
	logger := log.New(io.Discard)
	if os.Getenv("PDFTREE_MCP_DEBUG") != "" {
		logger = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Level: log.DebugLevel})
	}

	server := mcp.NewServer(mcp.WithLogger(logger), mcp.WithVersion(version))
	mcp.RegisterDefaultTools(server, logger)
	mcp.RegisterDefaultResources(server)

	if err := server.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "pdftree-mcp: %v\n", err)
		os.Exit(1)
	}
}
