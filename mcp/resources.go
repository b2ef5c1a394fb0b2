package mcp

import (
	"errors"
	"net/url"
	"strings"
)

// RegisterDefaultResources adds the pdf:// resources. Each takes the file
// as a query parameter, e.g. pdf://metadata?path=/tmp/out.pdf.
func RegisterDefaultResources(s *Server) {
	s.AddResource(Resource{
		URI:         "pdf://metadata",
		Name:        "PDF Metadata",
		Description: "Document information and page sizes: pdf://metadata?path=/path/to/file.pdf",
		MIMEType:    "application/json",
		Handler: func(uri string) ([]ResourceContent, error) {
			return readSummary(uri, false)
		},
	})
	s.AddResource(Resource{
		URI:         "pdf://text",
		Name:        "PDF Text Runs",
		Description: "Every text run with its position: pdf://text?path=/path/to/file.pdf",
		MIMEType:    "application/json",
		Handler: func(uri string) ([]ResourceContent, error) {
			return readSummary(uri, true)
		},
	})
}

// baseURI strips the query from uri.
func baseURI(uri string) string {
	base, _, _ := strings.Cut(uri, "?")
	return base
}

func readSummary(uri string, withText bool) ([]ResourceContent, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return nil, err
	}
	path := u.Query().Get("path")
	if path == "" {
		return nil, errors.New("missing 'path' parameter in URI")
	}
	text, err := summarize(path, withText)
	if err != nil {
		return nil, err
	}
	return []ResourceContent{{URI: uri, MIMEType: "application/json", Text: text}}, nil
}
