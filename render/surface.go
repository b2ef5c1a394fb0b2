// Package render paints computed boxes onto a page.
//
// Painting goes through the Surface interface, whose coordinate system has
// its origin at the bottom-left corner of the page with Y growing upward,
// in points. Boxes arrive in top-left space; every Y is converted with
// pageHeight - y before it reaches the surface.
package render

import (
	"strings"

	"github.com/lvillar/pdftree/style"
)

// StandardFont names one of the base-14 fonts used by the renderer.
type StandardFont string

const (
	Helvetica     StandardFont = "Helvetica"
	HelveticaBold StandardFont = "Helvetica-Bold"
	TimesRoman    StandardFont = "Times-Roman"
	TimesBold     StandardFont = "Times-Bold"
	Courier       StandardFont = "Courier"
	CourierBold   StandardFont = "Courier-Bold"
)

// ResolveFont maps a CSS-like family name to a standard font. Families
// containing "times" map to Times, "courier" to Courier and everything else
// to Helvetica.
func ResolveFont(family string, bold bool) StandardFont {
	f := strings.ToLower(family)
	switch {
	case strings.Contains(f, "times"):
		if bold {
			return TimesBold
		}
		return TimesRoman
	case strings.Contains(f, "courier"):
		if bold {
			return CourierBold
		}
		return Courier
	}
	if bold {
		return HelveticaBold
	}
	return Helvetica
}

// Family returns the family part of the font name and whether it is bold.
func (f StandardFont) Family() (family string, bold bool) {
	switch f {
	case TimesRoman, TimesBold:
		family = "Times"
	case Courier, CourierBold:
		family = "Courier"
	default:
		family = "Helvetica"
	}
	return family, f == HelveticaBold || f == TimesBold || f == CourierBold
}

// Font is a font handle returned by a Surface.
type Font struct {
	Name StandardFont
	Ref  string // surface-specific resource name
}

// TextRun is a single line of text. X and Y locate the start of the
// baseline.
type TextRun struct {
	Text  string
	X, Y  float64
	Font  Font
	Size  float64
	Color style.RGB
}

// Line is a straight segment.
type Line struct {
	X1, Y1 float64
	X2, Y2 float64
	Width  float64
	Color  style.RGB
	Kind   string // solid, dashed or dotted; anything else is solid
}

// Rect is a filled rectangle. X and Y locate its bottom-left corner.
type Rect struct {
	X, Y          float64
	Width, Height float64
	Color         style.RGB
}

// ImageRun places an image file. X and Y locate the bottom-left corner of
// the target box.
type ImageRun struct {
	Src           string
	X, Y          float64
	Width, Height float64
	Fit           string
}

// BarcodeRun places a barcode. X and Y locate the bottom-left corner of the
// target box.
type BarcodeRun struct {
	Symbology     string
	Value         string
	X, Y          float64
	Width, Height float64
}

// Surface is the drawing target for one page.
type Surface interface {
	// Height returns the page height in points.
	Height() float64
	// EmbedFont makes a standard font available on the page.
	EmbedFont(name StandardFont) (Font, error)
	// MeasureText returns the advance width of text in points.
	MeasureText(f Font, size float64, text string) float64
	DrawText(run TextRun)
	DrawLine(l Line)
	FillRect(r Rect)
	// SetOpacity sets the alpha for subsequent fills and strokes.
	SetOpacity(alpha float64)
	DrawImage(img ImageRun) error
	DrawBarcode(bc BarcodeRun) error
}
