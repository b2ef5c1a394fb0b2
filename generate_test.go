package pdftree

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/jung-kurt/gofpdf"

	"github.com/lvillar/pdftree/block"
	"github.com/lvillar/pdftree/inspect"
	"github.com/lvillar/pdftree/tree"
)

func near(a, b float64) bool { return math.Abs(a-b) < 0.01 }

func mustInspect(t *testing.T, data []byte) *inspect.Document {
	t.Helper()
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("output does not start with %%PDF: %q", data[:min(len(data), 16)])
	}
	doc, err := inspect.Parse(data)
	if err != nil {
		t.Fatalf("inspect.Parse() error: %v", err)
	}
	return doc
}

func runs(t *testing.T, doc *inspect.Document) []inspect.TextRun {
	t.Helper()
	p, err := doc.Page(1)
	if err != nil {
		t.Fatal(err)
	}
	r, err := p.TextRuns()
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestGenerateFromJSON(t *testing.T) {
	in := `{
		"pages": [{"size": "A4"}],
		"metadata": {"title": "Quarterly report", "author": "Finance", "keywords": ["q3", "2024"]},
		"elements": [
			{"type": "text", "id": "t1", "text": "Hello",
			 "layout": {"x": 40, "y": 40, "width": 200, "height": 20},
			 "style": {"fontSize": 12}}
		]
	}`
	data, err := GenerateFromJSON([]byte(in))
	if err != nil {
		t.Fatalf("GenerateFromJSON() error: %v", err)
	}
	doc := mustInspect(t, data)
	if doc.NumPages() != 1 {
		t.Errorf("NumPages = %d, want 1", doc.NumPages())
	}
	meta := doc.Metadata()
	if meta["Title"] != "Quarterly report" || meta["Author"] != "Finance" {
		t.Errorf("metadata = %v", meta)
	}
	if meta["Keywords"] != "q3 2024" {
		t.Errorf("Keywords = %q, want %q", meta["Keywords"], "q3 2024")
	}
	if meta["Producer"] != DefaultProducer {
		t.Errorf("Producer = %q, want %q", meta["Producer"], DefaultProducer)
	}

	r := runs(t, doc)
	if len(r) != 1 {
		t.Fatalf("got %d text runs, want 1", len(r))
	}
	if r[0].Text != "Hello" || !near(r[0].X, 40) || !near(r[0].Y, 841.89-52) || r[0].Size != 12 {
		t.Errorf("run = %+v, want Hello at (40, %.2f)", r[0], 841.89-52)
	}
}

func TestGenerateDefaultPageMargins(t *testing.T) {
	tr := tree.New().AddElement(block.NewText(block.TextOptions{
		Text:   "top left",
		Layout: block.Layout{Width: 100, Height: 20},
	}))
	data, err := Generate(tr)
	if err != nil {
		t.Fatal(err)
	}
	doc := mustInspect(t, data)
	p, _ := doc.Page(1)
	if !near(p.MediaBox.Width(), 595.28) || !near(p.MediaBox.Height(), 841.89) {
		t.Errorf("MediaBox = %+v, want A4", p.MediaBox)
	}
	r := runs(t, doc)
	if len(r) != 1 || !near(r[0].X, 36) || !near(r[0].Y, 841.89-48) {
		t.Errorf("runs = %+v, want one run at (36, %.2f)", r, 841.89-48)
	}
}

func TestGenerateLandscape(t *testing.T) {
	tr := tree.New(tree.WithPages(tree.PageConfig{Size: &tree.PageSize{Name: "LETTER"}, Orientation: tree.Landscape}))
	data, err := Generate(tr)
	if err != nil {
		t.Fatal(err)
	}
	p, _ := mustInspect(t, data).Page(1)
	if p.MediaBox.Width() != 792 || p.MediaBox.Height() != 612 {
		t.Errorf("MediaBox = %+v, want 792x612", p.MediaBox)
	}
}

func TestGenerateSkipsUnknownBlocks(t *testing.T) {
	tr := tree.New(tree.WithPages(tree.PageConfig{Width: 300, Height: 300})).AddElements(
		block.NewText(block.TextOptions{Text: "one", Layout: block.Layout{Width: 100, Height: 20}}),
		block.Unknown{Type: "chart", Layout: block.Layout{Y: 20, Width: 100, Height: 20}},
		block.NewText(block.TextOptions{Text: "two", Layout: block.Layout{Y: 40, Width: 100, Height: 20}}),
	)
	data, err := Generate(tr, WithCompression(false))
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	r := runs(t, mustInspect(t, data))
	if len(r) != 2 || r[0].Text != "one" || r[1].Text != "two" {
		t.Errorf("runs = %+v, want one and two", r)
	}
}

func TestGenerateBorders(t *testing.T) {
	tr := tree.New(tree.WithPages(tree.PageConfig{Width: 200, Height: 200})).AddElement(
		block.NewText(block.TextOptions{
			Layout: block.Layout{X: 10, Y: 10, Width: 50, Height: 50},
			Style:  block.TextStyle{Style: block.Style{Border: "1pt solid black"}},
		}))
	data, err := Generate(tr)
	if err != nil {
		t.Fatal(err)
	}
	p, _ := mustInspect(t, data).Page(1)
	lines, err := p.Lines()
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 4 {
		t.Fatalf("got %d segments, want 4", len(lines))
	}
	if top := lines[0]; !near(top.X1, 10) || !near(top.X2, 60) || !near(top.Y1, 190) {
		t.Errorf("top border = %+v", top)
	}
}

func TestGenerateDecodeErrors(t *testing.T) {
	tests := map[string]string{
		"syntax":      `{"elements": [`,
		"unsupported": `{"elements": [{"type": "table", "layout": {"x": 0, "y": 0, "width": 1, "height": 1}}]}`,
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := GenerateFromJSON([]byte(in))
			if !errors.Is(err, ErrDecode) {
				t.Fatalf("error = %v, want ErrDecode", err)
			}
			var e *Error
			if !errors.As(err, &e) || e.Op != "GenerateFromJSON" {
				t.Errorf("error = %#v, want *Error with Op GenerateFromJSON", err)
			}
		})
	}
	if _, err := GenerateFromJSON([]byte(`{"elements": [{"type": "qr"}]}`)); !errors.Is(err, block.ErrUnsupportedType) {
		t.Errorf("error = %v, want block.ErrUnsupportedType in chain", err)
	}
}

func TestGenerateFromObject(t *testing.T) {
	obj := map[string]any{
		"elements": []any{
			map[string]any{"type": "barcode", "value": "ABC-1", "symbology": "code128",
				"layout": map[string]any{"x": 0, "y": 0, "width": 150, "height": 40}},
		},
	}
	data, err := GenerateFromObject(obj)
	if err != nil {
		t.Fatalf("GenerateFromObject() error: %v", err)
	}
	mustInspect(t, data)

	if _, err := GenerateFromObject(func() {}); !errors.Is(err, ErrDecode) {
		t.Errorf("error = %v, want ErrDecode", err)
	}
}

func TestGenerateFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.pdf")
	if err := GenerateFile(tree.New().SetTitle("file"), path); err != nil {
		t.Fatalf("GenerateFile() error: %v", err)
	}
	doc, err := inspect.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if doc.Metadata()["Title"] != "file" {
		t.Errorf("Title = %q", doc.Metadata()["Title"])
	}

	if err := GenerateFile(tree.New(), filepath.Join(dir, "missing", "out.pdf")); !errors.Is(err, ErrOutput) {
		t.Errorf("error = %v, want ErrOutput", err)
	}

	bad := tree.New().AddElement(block.NewImage(block.ImageOptions{
		Src: filepath.Join(dir, "nope.png"), Layout: block.Layout{Width: 10, Height: 10},
	}))
	failed := filepath.Join(dir, "failed.pdf")
	if err := GenerateFile(bad, failed); !errors.Is(err, ErrRender) {
		t.Errorf("error = %v, want ErrRender", err)
	}
	if _, err := os.Stat(failed); !os.IsNotExist(err) {
		t.Errorf("partial file left behind: %v", err)
	}
}

func TestGenerateTo(t *testing.T) {
	var buf bytes.Buffer
	if err := GenerateTo(&buf, tree.New()); err != nil {
		t.Fatal(err)
	}
	mustInspect(t, buf.Bytes())
}

func TestGenerateBackground(t *testing.T) {
	dir := t.TempDir()
	bg := filepath.Join(dir, "letterhead.pdf")
	src := gofpdf.New("P", "pt", "A4", "")
	src.AddPage()
	src.SetFont("Helvetica", "", 10)
	src.Text(20, 20, "ACME Corp")
	if err := src.OutputFileAndClose(bg); err != nil {
		t.Fatal(err)
	}

	tr := tree.New(tree.WithPages(tree.PageConfig{Background: &tree.Background{Path: bg}})).
		AddElement(block.NewText(block.TextOptions{Text: "body", Layout: block.Layout{Y: 100, Width: 100, Height: 20}}))
	data, err := Generate(tr)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if !bytes.Contains(data, []byte("/XObject")) {
		t.Error("background template not referenced")
	}
	r := runs(t, mustInspect(t, data))
	if len(r) != 1 || r[0].Text != "body" {
		t.Errorf("runs = %+v", r)
	}

	missing := tree.New(tree.WithPages(tree.PageConfig{Background: &tree.Background{Path: filepath.Join(dir, "none.pdf")}}))
	if _, err := Generate(missing); !errors.Is(err, ErrRender) {
		t.Errorf("error = %v, want ErrRender", err)
	}
}

func TestGenerateReproducible(t *testing.T) {
	tr := tree.New().SetTitle("same").AddElement(block.NewText(block.TextOptions{
		Text: "hello", Layout: block.Layout{Width: 100, Height: 20},
	}))
	date := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	const n = 8
	out := make([][]byte, n)
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			data, err := Generate(tr, WithCreationDate(date))
			if err != nil {
				t.Error(err)
				return
			}
			out[i] = data
		}()
	}
	wg.Wait()
	for i := 1; i < n; i++ {
		if !bytes.Equal(out[0], out[i]) {
			t.Fatalf("output %d differs from output 0", i)
		}
	}
	if meta := mustInspect(t, out[0]).Metadata(); !strings.HasPrefix(meta["CreationDate"], "D:20240301") {
		t.Errorf("CreationDate = %q", meta["CreationDate"])
	}
}

func TestGenerateLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	if _, err := Generate(tree.New(), WithLogger(logger), WithProducer("")); err != nil {
		t.Fatal(err)
	}
	for _, msg := range []string{"creating document", "computing layout", "rendering page", "document saved"} {
		if !bytes.Contains(buf.Bytes(), []byte(msg)) {
			t.Errorf("log output missing %q", msg)
		}
	}
}

func TestErrorMessage(t *testing.T) {
	err := newError("Generate", ErrRender, errors.New("boom"))
	if got, want := err.Error(), "pdftree.Generate: pdftree: cannot render document: boom"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, ErrRender) {
		t.Error("errors.Is(err, ErrRender) = false")
	}
	if newError("Generate", ErrOutput, nil).Err != ErrOutput {
		t.Error("nil cause should leave kind unwrapped")
	}
}

func TestDryRun(t *testing.T) {
	tr := tree.New().AddElements(
		block.NewText(block.TextOptions{Text: "a\nb", Layout: block.Layout{Width: 100, Height: 40}}),
		block.NewImage(block.ImageOptions{Src: "not-read.png", Layout: block.Layout{Y: 50, Width: 10, Height: 10}}),
		block.NewBarcode(block.BarcodeOptions{Value: "x", Layout: block.Layout{Y: 70, Width: 30, Height: 30}}),
	)
	rec, err := DryRun(tr)
	if err != nil {
		t.Fatalf("DryRun() error: %v", err)
	}
	if len(rec.Texts) != 2 || len(rec.Images) != 1 || len(rec.Barcodes) != 1 {
		t.Errorf("recorded %d texts, %d images, %d barcodes", len(rec.Texts), len(rec.Images), len(rec.Barcodes))
	}
	if rec.Texts[0].X != 36 {
		t.Errorf("first run x = %g, want 36 (left margin)", rec.Texts[0].X)
	}

	bad := tree.New().AddElement(block.NewText(block.TextOptions{Layout: block.Layout{Width: -1}}))
	_, err = DryRun(bad)
	if !errors.Is(err, ErrInvalid) || !errors.Is(err, tree.ErrInvalid) {
		t.Errorf("error = %v, want ErrInvalid", err)
	}
}
