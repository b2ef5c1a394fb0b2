package block

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Overflow is the policy for text that does not fit its box.
// Only OverflowExpand has rendering semantics; the others are accepted and
// stored but painted like expand.
type Overflow string

const (
	OverflowClip        Overflow = "clip"
	OverflowEllipsis    Overflow = "ellipsis"
	OverflowShrinkToFit Overflow = "shrinkToFit"
	OverflowExpand      Overflow = "expand"
)

// Text alignments.
const (
	AlignLeft    = "left"
	AlignCenter  = "center"
	AlignRight   = "right"
	AlignJustify = "justify"
)

// Text defaults.
const (
	DefaultFontSize   = 12.0
	DefaultLineHeight = 1.2
)

// FontWeight is either the keyword "bold"/"normal" or a numeric weight.
// In JSON it accepts both a string and a number.
type FontWeight string

// Bold reports whether the weight selects a bold face.
func (w FontWeight) Bold() bool {
	if w == "bold" {
		return true
	}
	n, err := strconv.Atoi(string(w))
	return err == nil && n >= 700
}

func (w FontWeight) MarshalJSON() ([]byte, error) {
	if n, err := strconv.Atoi(string(w)); err == nil {
		return json.Marshal(n)
	}
	return json.Marshal(string(w))
}

func (w *FontWeight) UnmarshalJSON(data []byte) error {
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*w = FontWeight(n.String())
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("fontWeight must be a string or number: %w", err)
	}
	*w = FontWeight(s)
	return nil
}

// TextStyle is the style of a text block.
type TextStyle struct {
	Style

	FontFamily    string     `json:"fontFamily,omitempty"`
	FontSize      *float64   `json:"fontSize,omitempty"`
	FontWeight    FontWeight `json:"fontWeight,omitempty"`
	Color         string     `json:"color,omitempty"`
	LineHeight    *float64   `json:"lineHeight,omitempty"`
	LetterSpacing *float64   `json:"letterSpacing,omitempty"` // accepted, not painted
	TextAlign     string     `json:"textAlign,omitempty"`
}

// Size returns the font size, or DefaultFontSize when unset or not positive.
func (s TextStyle) Size() float64 {
	if s.FontSize == nil || *s.FontSize <= 0 {
		return DefaultFontSize
	}
	return *s.FontSize
}

// Leading returns the line height multiplier, or DefaultLineHeight.
func (s TextStyle) Leading() float64 {
	if s.LineHeight == nil || *s.LineHeight <= 0 {
		return DefaultLineHeight
	}
	return *s.LineHeight
}

// Text is a block of literal text. Newlines in Text are the only line
// breaks; there is no automatic wrapping.
type Text struct {
	ID       string
	Layout   Layout
	Style    TextStyle
	Text     string
	Overflow Overflow
}

func (t Text) Kind() Kind      { return KindText }
func (t Text) BlockID() string { return t.ID }
func (t Text) Bounds() Layout  { return t.Layout }
func (t Text) BoxStyle() Style { return t.Style.Style }

// TextOptions configures NewText.
type TextOptions struct {
	ID       string
	Text     string
	Layout   Layout
	Style    TextStyle
	Overflow Overflow
}

// NewText builds a text block. The layout is normalized and an empty
// overflow policy defaults to OverflowExpand.
func NewText(opts TextOptions) Text {
	ov := opts.Overflow
	if ov == "" {
		ov = OverflowExpand
	}
	return Text{
		ID:       opts.ID,
		Layout:   opts.Layout.Normalize(),
		Style:    opts.Style,
		Text:     opts.Text,
		Overflow: ov,
	}
}

type textJSON struct {
	Type     Kind       `json:"type"`
	ID       string     `json:"id,omitempty"`
	Layout   Layout     `json:"layout"`
	Style    *TextStyle `json:"style,omitempty"`
	Overflow Overflow   `json:"overflow,omitempty"`
	Text     string     `json:"text"`
}

func (t Text) MarshalJSON() ([]byte, error) {
	w := textJSON{
		Type:     KindText,
		ID:       t.ID,
		Layout:   t.Layout,
		Overflow: t.Overflow,
		Text:     t.Text,
	}
	if t.Style != (TextStyle{}) {
		s := t.Style
		w.Style = &s
	}
	return json.Marshal(w)
}

func decodeText(data []byte) (Block, error) {
	var w textJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, err
	}
	opts := TextOptions{
		ID:       w.ID,
		Text:     w.Text,
		Layout:   w.Layout,
		Overflow: w.Overflow,
	}
	if w.Style != nil {
		opts.Style = *w.Style
	}
	return NewText(opts), nil
}
