package render

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/lvillar/pdftree/style"
)

// Dash patterns in multiples of the line width.
var dashPatterns = map[string][]float64{
	style.BorderDashed: {3, 2},
	style.BorderDotted: {1, 1},
}

// FPDF adapts a gofpdf document to the Surface interface. The document must
// use points as its unit and have a current page. gofpdf measures Y from the
// top of the page, so every Y is flipped back on the way in.
type FPDF struct {
	pdf *gofpdf.Fpdf
	tr  func(string) string
}

// NewFPDF wraps pdf. UTF-8 text is translated to cp1252 for the core fonts.
func NewFPDF(pdf *gofpdf.Fpdf) *FPDF {
	return &FPDF{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
}

// Fpdf returns the wrapped document.
func (f *FPDF) Fpdf() *gofpdf.Fpdf { return f.pdf }

func (f *FPDF) Height() float64 {
	_, h := f.pdf.GetPageSize()
	return h
}

func (f *FPDF) flip(y float64) float64 { return f.Height() - y }

func (f *FPDF) EmbedFont(name StandardFont) (Font, error) {
	family, bold := name.Family()
	fs := ""
	if bold {
		fs = "B"
	}
	f.pdf.SetFont(family, fs, 0)
	if f.pdf.Err() {
		return Font{}, fmt.Errorf("embedding %s: %w", name, f.pdf.Error())
	}
	return Font{Name: name, Ref: family + "|" + fs}, nil
}

func (f *FPDF) setFont(font Font, size float64) {
	family, bold := font.Name.Family()
	fs := ""
	if bold {
		fs = "B"
	}
	f.pdf.SetFont(family, fs, size)
}

func (f *FPDF) MeasureText(font Font, size float64, text string) float64 {
	f.setFont(font, size)
	return f.pdf.GetStringWidth(f.tr(text))
}

func (f *FPDF) DrawText(run TextRun) {
	f.setFont(run.Font, run.Size)
	f.pdf.SetTextColor(run.Color.Bytes())
	f.pdf.Text(run.X, f.flip(run.Y), f.tr(run.Text))
	f.pdf.SetTextColor(0, 0, 0)
}

func (f *FPDF) DrawLine(l Line) {
	f.pdf.SetLineWidth(l.Width)
	f.pdf.SetDrawColor(l.Color.Bytes())
	if pattern, ok := dashPatterns[l.Kind]; ok {
		scaled := make([]float64, len(pattern))
		for i, v := range pattern {
			scaled[i] = v * l.Width
		}
		f.pdf.SetDashPattern(scaled, 0)
		defer f.pdf.SetDashPattern([]float64{}, 0)
	}
	f.pdf.Line(l.X1, f.flip(l.Y1), l.X2, f.flip(l.Y2))
	f.pdf.SetDrawColor(0, 0, 0)
}

func (f *FPDF) FillRect(r Rect) {
	f.pdf.SetFillColor(r.Color.Bytes())
	f.pdf.Rect(r.X, f.flip(r.Y+r.Height), r.Width, r.Height, "F")
	f.pdf.SetFillColor(0, 0, 0)
}

func (f *FPDF) SetOpacity(alpha float64) {
	f.pdf.SetAlpha(alpha, "Normal")
}
