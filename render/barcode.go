package render

import (
	"fmt"

	"github.com/boombuler/barcode/qr"
	"github.com/jung-kurt/gofpdf/contrib/barcode"

	"github.com/lvillar/pdftree/block"
)

// PDF417 parameters: data columns and error correction level.
const (
	pdf417Columns  = 10
	pdf417Security = 2
)

func (f *FPDF) DrawBarcode(bc BarcodeRun) error {
	var key string
	switch bc.Symbology {
	case block.SymbologyQR, "":
		key = barcode.RegisterQR(f.pdf, bc.Value, qr.M, qr.Auto)
	case block.SymbologyCode128:
		key = barcode.RegisterCode128(f.pdf, bc.Value)
	case block.SymbologyPDF417:
		key = barcode.RegisterPdf417(f.pdf, bc.Value, pdf417Columns, pdf417Security)
	default:
		return fmt.Errorf("unknown barcode symbology %q", bc.Symbology)
	}
	if f.pdf.Err() {
		return fmt.Errorf("encoding %s barcode: %w", bc.Symbology, f.pdf.Error())
	}
	barcode.Barcode(f.pdf, key, bc.X, f.flip(bc.Y+bc.Height), bc.Width, bc.Height, false)
	if f.pdf.Err() {
		return fmt.Errorf("placing %s barcode: %w", bc.Symbology, f.pdf.Error())
	}
	return nil
}
