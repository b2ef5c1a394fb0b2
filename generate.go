package pdftree

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/jung-kurt/gofpdf"
	"github.com/jung-kurt/gofpdf/contrib/gofpdi"

	"github.com/lvillar/pdftree/block"
	"github.com/lvillar/pdftree/layout"
	"github.com/lvillar/pdftree/render"
	"github.com/lvillar/pdftree/tree"
)

// Generate renders the first page of t and returns the PDF bytes.
func Generate(t tree.Tree, opts ...Option) ([]byte, error) {
	cfg := newConfig(opts)
	var buf bytes.Buffer
	if err := generate(&buf, t, cfg); err != nil {
		return nil, err
	}
	cfg.logger.Debug("document saved", "bytes", buf.Len())
	return buf.Bytes(), nil
}

// GenerateTo renders the first page of t and writes the PDF to w.
func GenerateTo(w io.Writer, t tree.Tree, opts ...Option) error {
	return generate(w, t, newConfig(opts))
}

// GenerateFile renders the first page of t into the file at path, which is
// created or truncated. A partially written file is removed.
func GenerateFile(t tree.Tree, path string, opts ...Option) error {
	cfg := newConfig(opts)
	f, err := os.Create(path)
	if err != nil {
		return newError("GenerateFile", ErrOutput, err)
	}
	if err := generate(f, t, cfg); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		return newError("GenerateFile", ErrOutput, err)
	}
	cfg.logger.Debug("document written", "path", path)
	return nil
}

// GenerateFromJSON decodes a JSON tree and renders it.
func GenerateFromJSON(data []byte, opts ...Option) ([]byte, error) {
	t, err := tree.FromJSON(data)
	if err != nil {
		return nil, newError("GenerateFromJSON", ErrDecode, err)
	}
	return Generate(t, opts...)
}

// GenerateFromObject decodes a JSON-shaped value, such as a
// map[string]any, and renders it.
func GenerateFromObject(v any, opts ...Option) ([]byte, error) {
	t, err := tree.FromObject(v)
	if err != nil {
		return nil, newError("GenerateFromObject", ErrDecode, err)
	}
	return Generate(t, opts...)
}

func generate(w io.Writer, t tree.Tree, cfg *config) error {
	pdf, err := build(t, cfg)
	if err != nil {
		return err
	}
	if err := pdf.Output(w); err != nil {
		return newError("Generate", ErrOutput, err)
	}
	return nil
}

// build lays out and paints the document. The PDF engine reports some
// failures, such as an unreadable background file, by panicking; those are
// returned as ErrRender.
func build(t tree.Tree, cfg *config) (pdf *gofpdf.Fpdf, err error) {
	logger := cfg.logger
	defer func() {
		if r := recover(); r != nil {
			pdf = nil
			err = newError("Generate", ErrRender, fmt.Errorf("panic: %v", r))
		}
	}()

	page := t.FirstPage()
	geo := page.Resolve()
	logger.Debug("creating document", "width", geo.Width, "height", geo.Height)
	size := gofpdf.SizeType{Wd: geo.Width, Ht: geo.Height}
	pdf = gofpdf.NewCustom(&gofpdf.InitType{OrientationStr: "P", UnitStr: "pt", Size: size})
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(0, 0, 0)
	pdf.SetCompression(cfg.compress)
	pdf.SetCatalogSort(true)
	if cfg.producer != "" {
		pdf.SetProducer(cfg.producer, true)
	}
	if !cfg.creationDate.IsZero() {
		pdf.SetCreationDate(cfg.creationDate)
	}
	applyMetadata(pdf, t.Metadata, logger)

	logger.Debug("computing layout", "blocks", t.Len())
	boxes := place(t.Elements, geo)

	var (
		imp *gofpdi.Importer
		tpl int
	)
	if bg := page.Background; bg != nil {
		if _, err := os.Stat(bg.Path); err != nil {
			return nil, newError("Generate", ErrRender, fmt.Errorf("background: %w", err))
		}
		logger.Debug("importing background", "path", bg.Path, "page", max(bg.Page, 1))
		imp = gofpdi.NewImporter()
		tpl = imp.ImportPage(pdf, bg.Path, max(bg.Page, 1), "/MediaBox")
	}

	pdf.AddPageFormat("P", size)
	if imp != nil {
		imp.UseImportedTemplate(pdf, tpl, 0, 0, geo.Width, geo.Height)
	}

	logger.Debug("rendering page", "boxes", len(boxes))
	if err := render.Page(render.NewFPDF(pdf), boxes, render.NewContext(logger)); err != nil {
		return nil, newError("Generate", ErrRender, err)
	}
	if pdf.Err() {
		return nil, newError("Generate", ErrRender, pdf.Error())
	}
	return pdf, nil
}

// place lays out blocks and shifts them by the page's left and top margins.
func place(blocks []block.Block, geo tree.Geometry) []layout.Box {
	boxes := layout.Compute(blocks, geo.ContentWidth())
	if m := geo.Margins; m.Left() != 0 || m.Top() != 0 {
		for i := range boxes {
			boxes[i] = boxes[i].Offset(m.Left(), m.Top())
		}
	}
	return boxes
}

// applyMetadata copies the metadata fields that are set. Fields left empty
// are not written.
func applyMetadata(pdf *gofpdf.Fpdf, m tree.Metadata, logger *log.Logger) {
	if m.IsZero() {
		return
	}
	logger.Debug("applying metadata", "title", m.Title)
	if m.Title != "" {
		pdf.SetTitle(m.Title, true)
	}
	if m.Author != "" {
		pdf.SetAuthor(m.Author, true)
	}
	if m.Subject != "" {
		pdf.SetSubject(m.Subject, true)
	}
	if len(m.Keywords) > 0 {
		pdf.SetKeywords(m.Keywords.String(), true)
	}
	if m.Creator != "" {
		pdf.SetCreator(m.Creator, true)
	}
}
