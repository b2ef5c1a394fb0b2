package block

import "encoding/json"

// Barcode symbologies.
const (
	SymbologyQR      = "qr"
	SymbologyCode128 = "code128"
	SymbologyPDF417  = "pdf417"
)

// Barcode is a one- or two-dimensional barcode scaled into its box.
type Barcode struct {
	ID        string
	Layout    Layout
	Style     Style
	Symbology string
	Value     string
}

func (bc Barcode) Kind() Kind      { return KindBarcode }
func (bc Barcode) BlockID() string { return bc.ID }
func (bc Barcode) Bounds() Layout  { return bc.Layout }
func (bc Barcode) BoxStyle() Style { return bc.Style }

// BarcodeOptions configures NewBarcode.
type BarcodeOptions struct {
	ID        string
	Symbology string
	Value     string
	Layout    Layout
	Style     Style
}

// NewBarcode builds a barcode block with a normalized layout. An empty
// symbology defaults to QR.
func NewBarcode(opts BarcodeOptions) Barcode {
	sym := opts.Symbology
	if sym == "" {
		sym = SymbologyQR
	}
	return Barcode{
		ID:        opts.ID,
		Layout:    opts.Layout.Normalize(),
		Style:     opts.Style,
		Symbology: sym,
		Value:     opts.Value,
	}
}

type barcodeJSON struct {
	Type      Kind   `json:"type"`
	ID        string `json:"id,omitempty"`
	Layout    Layout `json:"layout"`
	Style     *Style `json:"style,omitempty"`
	Symbology string `json:"symbology,omitempty"`
	Value     string `json:"value"`
}

func (bc Barcode) MarshalJSON() ([]byte, error) {
	w := barcodeJSON{Type: KindBarcode, ID: bc.ID, Layout: bc.Layout, Symbology: bc.Symbology, Value: bc.Value}
	if bc.Style != (Style{}) {
		s := bc.Style
		w.Style = &s
	}
	return json.Marshal(w)
}

func decodeBarcode(data []byte) (Block, error) {
	var w barcodeJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, err
	}
	opts := BarcodeOptions{ID: w.ID, Symbology: w.Symbology, Value: w.Value, Layout: w.Layout}
	if w.Style != nil {
		opts.Style = *w.Style
	}
	return NewBarcode(opts), nil
}
