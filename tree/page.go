package tree

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lvillar/pdftree/style"
)

// Page orientations.
const (
	Portrait  = "portrait"
	Landscape = "landscape"
)

// Legacy page sizes in points.
var legacySizes = map[string][2]float64{
	"A4":     {595.28, 841.89},
	"LETTER": {612, 792},
	"LEGAL":  {612, 1008},
}

// unitFactors converts a declared unit to points. Unrecognized units are
// treated as points.
var unitFactors = map[string]float64{
	"pt": 1,
	"in": 72,
	"mm": 72 / 25.4,
	"cm": 72 / 2.54,
}

// UnitToPoints returns the factor that converts unit to points.
func UnitToPoints(unit string) float64 {
	if f, ok := unitFactors[strings.ToLower(unit)]; ok {
		return f
	}
	return 1
}

// PageSize is the legacy size of a page: either a named size or an explicit
// [width, height] pair in points.
type PageSize struct {
	Name   string
	Width  float64
	Height float64
}

// Points returns the size in points. Unknown names resolve to A4.
func (s PageSize) Points() (w, h float64) {
	if s.Name == "" {
		return s.Width, s.Height
	}
	if dim, ok := legacySizes[strings.ToUpper(s.Name)]; ok {
		return dim[0], dim[1]
	}
	a4 := legacySizes["A4"]
	return a4[0], a4[1]
}

func (s PageSize) MarshalJSON() ([]byte, error) {
	if s.Name != "" {
		return json.Marshal(s.Name)
	}
	return json.Marshal([2]float64{s.Width, s.Height})
}

func (s *PageSize) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*s = PageSize{Name: name}
		return nil
	}
	var dim []float64
	if err := json.Unmarshal(data, &dim); err != nil {
		return fmt.Errorf("size must be a name or [width, height]: %w", err)
	}
	if len(dim) != 2 {
		return fmt.Errorf("size must have 2 dimensions, got %d", len(dim))
	}
	*s = PageSize{Width: dim[0], Height: dim[1]}
	return nil
}

// Background imports a page of an existing PDF as the page background.
type Background struct {
	Path string `json:"path"`
	Page int    `json:"page,omitempty"` // 1-based, defaults to 1
}

// PageConfig describes one page. The current form sets Width, Height and
// Unit; the legacy form sets Size and Margins. Both may carry Orientation.
type PageConfig struct {
	Width       float64     `json:"width,omitempty"`
	Height      float64     `json:"height,omitempty"`
	Unit        string      `json:"unit,omitempty"`
	Orientation string      `json:"orientation,omitempty"`
	Size        *PageSize   `json:"size,omitempty"`
	Margins     string      `json:"margins,omitempty"`
	Background  *Background `json:"background,omitempty"`
}

// DefaultPage returns the page used when a tree declares none: A4 with
// 36pt margins.
func DefaultPage() PageConfig {
	return PageConfig{Size: &PageSize{Name: "A4"}, Margins: "36pt"}
}

// Geometry is a page configuration resolved to points.
type Geometry struct {
	Width   float64
	Height  float64
	Margins style.Sides
}

// ContentWidth is the page width minus the horizontal margins.
func (g Geometry) ContentWidth() float64 {
	return g.Width - g.Margins.Left() - g.Margins.Right()
}

// Resolve converts the configuration to points. Explicit width and height
// win over the legacy size; with neither, A4 is used. A landscape page is
// swapped so that its width is not smaller than its height.
func (p PageConfig) Resolve() Geometry {
	var w, h float64
	switch {
	case p.Width > 0 && p.Height > 0:
		f := UnitToPoints(p.Unit)
		w, h = p.Width*f, p.Height*f
	case p.Size != nil:
		w, h = p.Size.Points()
	default:
		w, h = PageSize{Name: "A4"}.Points()
	}
	if strings.EqualFold(p.Orientation, Landscape) && w < h {
		w, h = h, w
	}
	return Geometry{Width: w, Height: h, Margins: style.ParseSpacing(p.Margins)}
}
