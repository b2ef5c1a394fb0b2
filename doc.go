// Package pdftree renders a document tree into a single page PDF.
//
// A tree is a list of absolutely positioned blocks (text, images and
// barcodes) plus page settings and metadata. It can be built in Go with
// package tree or decoded from JSON:
//
//	pdf, err := pdftree.GenerateFromJSON([]byte(`{
//		"metadata": {"title": "Invoice"},
//		"elements": [{"type": "text", "text": "Hello",
//			"layout": {"x": 0, "y": 0, "width": 200, "height": 20}}]
//	}`))
//
// Only the first page configuration is used. Coordinates are points with
// the origin at the top-left of the content area.
package pdftree
