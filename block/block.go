// Package block defines the positioned content units of a document tree.
//
// A Block is a tagged variant: every implementation reports its Kind and
// carries an authoritative Layout in points with a top-left origin. Blocks
// are values; "modifying" a block means building a new one.
package block

import "math"

// Kind discriminates block variants.
type Kind string

const (
	KindText    Kind = "text"
	KindImage   Kind = "image"
	KindBarcode Kind = "barcode"
)

// Layout is the absolute box of a block in points. The origin is the
// top-left corner of the page content area and Y grows downward.
type Layout struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Normalize rounds every field to two decimals. Normalizing an already
// normalized layout returns it unchanged.
func (l Layout) Normalize() Layout {
	return Layout{
		X:      round2(l.X),
		Y:      round2(l.Y),
		Width:  round2(l.Width),
		Height: round2(l.Height),
	}
}

func round2(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	return math.Round(v*100) / 100
}

// Block is implemented by every block variant.
type Block interface {
	Kind() Kind
	BlockID() string
	Bounds() Layout
	BoxStyle() Style
}

// Style holds the visual attributes shared by all block variants.
// Geometry never lives here; see Layout.
type Style struct {
	Margin          string   `json:"margin,omitempty"`
	Padding         string   `json:"padding,omitempty"`
	Border          string   `json:"border,omitempty"`
	BackgroundColor string   `json:"backgroundColor,omitempty"`
	Opacity         *float64 `json:"opacity,omitempty"`
	Rotate          *float64 `json:"rotate,omitempty"` // accepted, not painted
}

func (s Style) MarginValue() string  { return s.Margin }
func (s Style) PaddingValue() string { return s.Padding }
func (s Style) BorderValue() string  { return s.Border }

// Unknown is a block whose kind this package does not implement. It is never
// produced by Decode; it exists so callers can carry blocks of newer kinds
// through the pipeline, where the renderer skips them.
type Unknown struct {
	Type   Kind
	ID     string
	Layout Layout
	Style  Style
}

func (u Unknown) Kind() Kind      { return u.Type }
func (u Unknown) BlockID() string { return u.ID }
func (u Unknown) Bounds() Layout  { return u.Layout }
func (u Unknown) BoxStyle() Style { return u.Style }
