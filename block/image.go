package block

import "encoding/json"

// Image fit modes.
const (
	FitFill    = "fill"    // stretch to the box
	FitContain = "contain" // keep aspect ratio, centered in the box
)

// Image is a raster image loaded from a file and drawn into its box.
type Image struct {
	ID     string
	Layout Layout
	Style  Style
	Src    string
	Fit    string
}

func (im Image) Kind() Kind      { return KindImage }
func (im Image) BlockID() string { return im.ID }
func (im Image) Bounds() Layout  { return im.Layout }
func (im Image) BoxStyle() Style { return im.Style }

// ImageOptions configures NewImage.
type ImageOptions struct {
	ID     string
	Src    string
	Layout Layout
	Style  Style
	Fit    string
}

// NewImage builds an image block with a normalized layout.
func NewImage(opts ImageOptions) Image {
	fit := opts.Fit
	if fit == "" {
		fit = FitFill
	}
	return Image{
		ID:     opts.ID,
		Layout: opts.Layout.Normalize(),
		Style:  opts.Style,
		Src:    opts.Src,
		Fit:    fit,
	}
}

type imageJSON struct {
	Type   Kind   `json:"type"`
	ID     string `json:"id,omitempty"`
	Layout Layout `json:"layout"`
	Style  *Style `json:"style,omitempty"`
	Src    string `json:"src"`
	Fit    string `json:"fit,omitempty"`
}

func (im Image) MarshalJSON() ([]byte, error) {
	w := imageJSON{Type: KindImage, ID: im.ID, Layout: im.Layout, Src: im.Src, Fit: im.Fit}
	if im.Style != (Style{}) {
		s := im.Style
		w.Style = &s
	}
	return json.Marshal(w)
}

func decodeImage(data []byte) (Block, error) {
	var w imageJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, err
	}
	opts := ImageOptions{ID: w.ID, Src: w.Src, Layout: w.Layout, Fit: w.Fit}
	if w.Style != nil {
		opts.Style = *w.Style
	}
	return NewImage(opts), nil
}
