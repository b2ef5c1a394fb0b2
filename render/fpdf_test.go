package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jung-kurt/gofpdf"
	"golang.org/x/image/bmp"

	"github.com/lvillar/pdftree/block"
	"github.com/lvillar/pdftree/layout"
)

func newDoc(t *testing.T) *gofpdf.Fpdf {
	t.Helper()
	pdf := gofpdf.NewCustom(&gofpdf.InitType{OrientationStr: "P", UnitStr: "pt", Size: gofpdf.SizeType{Wd: 300, Ht: 400}})
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCompression(false)
	pdf.AddPage()
	return pdf
}

func writeImage(t *testing.T, name string, encode func(*os.File, image.Image) error) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	for x := 0; x < 4; x++ {
		img.Set(x, 0, color.RGBA{R: 255, A: 255})
		img.Set(x, 1, color.RGBA{B: 255, A: 255})
	}
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFPDFHeight(t *testing.T) {
	s := NewFPDF(newDoc(t))
	if s.Height() != 400 {
		t.Errorf("Height() = %g, want 400", s.Height())
	}
}

func TestFPDFText(t *testing.T) {
	pdf := newDoc(t)
	s := NewFPDF(pdf)
	box := textBox(40, 40, 200, 20, "Hello", block.TextStyle{FontSize: ptr(12), Color: "#000000",
		Style: block.Style{Border: "1pt dotted blue"}})
	if err := Page(s, []layout.Box{box}, NewContext(nil)); err != nil {
		t.Fatalf("Page() error: %v", err)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		t.Fatalf("Output() error: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "%PDF") {
		t.Fatal("output is not a PDF")
	}
	// gofpdf writes the baseline back in bottom-left space: 400 - (40+12) = 348.
	if !strings.Contains(out, "BT 40.00 348.00 Td (Hello) Tj ET") {
		t.Errorf("text run not found in content stream")
	}
	if !strings.Contains(out, "/BaseFont /Helvetica") {
		t.Errorf("Helvetica not embedded")
	}
}

func TestFPDFMeasureText(t *testing.T) {
	s := NewFPDF(newDoc(t))
	f, err := s.EmbedFont(Courier)
	if err != nil {
		t.Fatal(err)
	}
	// Courier advances 600/1000 em per glyph.
	if w := s.MeasureText(f, 10, "abcd"); w != 24 {
		t.Errorf("MeasureText = %g, want 24", w)
	}
}

func TestFPDFImages(t *testing.T) {
	pngPath := writeImage(t, "a.png", func(f *os.File, img image.Image) error { return png.Encode(f, img) })
	bmpPath := writeImage(t, "b.bmp", func(f *os.File, img image.Image) error { return bmp.Encode(f, img) })

	pdf := newDoc(t)
	s := NewFPDF(pdf)
	boxes := layout.Compute([]block.Block{
		block.NewImage(block.ImageOptions{Src: pngPath, Layout: block.Layout{Width: 100, Height: 100}, Fit: block.FitContain}),
		block.NewImage(block.ImageOptions{Src: bmpPath, Layout: block.Layout{Y: 120, Width: 40, Height: 20}}),
	}, 0)
	if err := Page(s, boxes, nil); err != nil {
		t.Fatalf("Page() error: %v", err)
	}
	if err := pdf.Output(&bytes.Buffer{}); err != nil {
		t.Fatalf("Output() error: %v", err)
	}
}

func TestFPDFMissingImage(t *testing.T) {
	s := NewFPDF(newDoc(t))
	boxes := layout.Compute([]block.Block{
		block.NewImage(block.ImageOptions{Src: filepath.Join(t.TempDir(), "missing.png"), Layout: block.Layout{Width: 10, Height: 10}}),
	}, 0)
	if err := Page(s, boxes, nil); err == nil {
		t.Fatal("expected error for missing image")
	}
}

func TestFPDFBarcodes(t *testing.T) {
	pdf := newDoc(t)
	s := NewFPDF(pdf)
	var blocks []block.Block
	for i, sym := range []string{block.SymbologyQR, block.SymbologyCode128, block.SymbologyPDF417} {
		blocks = append(blocks, block.NewBarcode(block.BarcodeOptions{
			Symbology: sym,
			Value:     "PDFTREE-123",
			Layout:    block.Layout{X: 10, Y: float64(i) * 110, Width: 100, Height: 100},
		}))
	}
	if err := Page(s, layout.Compute(blocks, 0), nil); err != nil {
		t.Fatalf("Page() error: %v", err)
	}
	if err := pdf.Output(&bytes.Buffer{}); err != nil {
		t.Fatalf("Output() error: %v", err)
	}
}

func TestFPDFUnknownSymbology(t *testing.T) {
	s := NewFPDF(newDoc(t))
	err := s.DrawBarcode(BarcodeRun{Symbology: "aztec", Value: "x", Width: 10, Height: 10})
	if err == nil {
		t.Fatal("expected error for unknown symbology")
	}
}
