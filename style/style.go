// Package style resolves CSS-like style shorthand into numeric values.
//
// All lengths are returned in PDF points. Parsing is permissive: malformed
// or missing input never produces an error, it degrades to a default value
// supplied by the caller (or to zero for spacing).
package style

import (
	"regexp"
	"strconv"
	"strings"
)

// PxToPt is the conversion factor from CSS pixels to points.
const PxToPt = 0.75

var lengthRe = regexp.MustCompile(`^([\d.]+)(pt|px)$`)

// ParseLength parses a length such as "12pt", "16px" or "auto" and returns
// its value in points. Empty, "auto" and unparseable values yield def.
func ParseLength(value string, def float64) float64 {
	if value == "" || value == "auto" {
		return def
	}
	m := lengthRe.FindStringSubmatch(value)
	if m == nil {
		return def
	}
	n, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return def
	}
	switch m[2] {
	case "pt":
		return n
	case "px":
		return n * PxToPt
	}
	return def
}

// Sides holds a value for each side of a box in the order
// top, right, bottom, left.
type Sides [4]float64

func (s Sides) Top() float64    { return s[0] }
func (s Sides) Right() float64  { return s[1] }
func (s Sides) Bottom() float64 { return s[2] }
func (s Sides) Left() float64   { return s[3] }

// ParseSpacing expands a margin or padding shorthand of one to four lengths
// using the CSS rules. Any other number of tokens yields all zeros.
func ParseSpacing(value string) Sides {
	parts := strings.Fields(value)
	v := make([]float64, len(parts))
	for i, p := range parts {
		v[i] = ParseLength(p, 0)
	}

	switch len(v) {
	case 1:
		return Sides{v[0], v[0], v[0], v[0]}
	case 2:
		return Sides{v[0], v[1], v[0], v[1]}
	case 3:
		return Sides{v[0], v[1], v[2], v[1]}
	case 4:
		return Sides{v[0], v[1], v[2], v[3]}
	}
	return Sides{}
}

// Border line kinds.
const (
	BorderSolid  = "solid"
	BorderDashed = "dashed"
	BorderDotted = "dotted"
)

// Border is a resolved border edge.
type Border struct {
	Width float64
	Kind  string // solid, dashed, dotted
	Color string // normalized color string
}

// ParseBorder parses "<width> <style> <color>", e.g. "1pt solid #000".
// Fewer than three tokens means no border and returns nil.
func ParseBorder(value string) *Border {
	parts := strings.Fields(value)
	if len(parts) < 3 {
		return nil
	}
	return &Border{
		Width: ParseLength(parts[0], 1),
		Kind:  parts[1],
		Color: ParseColor(parts[2], DefaultColor),
	}
}

// Source is implemented by anything that carries box style shorthand.
type Source interface {
	MarginValue() string
	PaddingValue() string
	BorderValue() string
}

// Computed is the resolved spacing and border of a block.
type Computed struct {
	Margin  Sides
	Padding Sides

	BorderTop    *Border
	BorderRight  *Border
	BorderBottom *Border
	BorderLeft   *Border
}

// HasBorder reports whether any edge has a border.
func (c Computed) HasBorder() bool {
	return c.BorderTop != nil || c.BorderRight != nil || c.BorderBottom != nil || c.BorderLeft != nil
}

// Resolve computes the spacing and border of s. The border shorthand has
// no per-side form, so the same border is applied to all four edges.
func Resolve(s Source) Computed {
	b := ParseBorder(s.BorderValue())
	return Computed{
		Margin:       ParseSpacing(s.MarginValue()),
		Padding:      ParseSpacing(s.PaddingValue()),
		BorderTop:    b,
		BorderRight:  b,
		BorderBottom: b,
		BorderLeft:   b,
	}
}
