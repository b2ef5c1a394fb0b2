package style

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseLength(t *testing.T) {
	tests := []struct {
		in   string
		def  float64
		want float64
	}{
		{"12pt", 0, 12},
		{"96px", 0, 72},
		{"0.5pt", 0, 0.5},
		{"auto", 5, 5},
		{"", 3, 3},
		{"bogus", 7, 7},
		{"12em", 7, 7},
		{"-4pt", 7, 7},
		{"1.2.3pt", 7, 7},
		{"12 pt", 7, 7},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseLength(tt.in, tt.def); got != tt.want {
				t.Errorf("ParseLength(%q, %g) = %g, want %g", tt.in, tt.def, got, tt.want)
			}
		})
	}
}

func TestParseSpacing(t *testing.T) {
	tests := []struct {
		in   string
		want Sides
	}{
		{"10pt", Sides{10, 10, 10, 10}},
		{"10pt 20pt", Sides{10, 20, 10, 20}},
		{"10pt 20pt 30pt", Sides{10, 20, 30, 20}},
		{"10pt 20pt 30pt 40pt", Sides{10, 20, 30, 40}},
		{"8px 4pt", Sides{6, 4, 6, 4}},
		{"1pt 2pt 3pt 4pt 5pt", Sides{}},
		{"", Sides{}},
		{"x 10pt", Sides{0, 10, 0, 10}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseSpacing(tt.in); got != tt.want {
				t.Errorf("ParseSpacing(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseBorder(t *testing.T) {
	tests := []struct {
		in   string
		want *Border
	}{
		{"1pt solid black", &Border{Width: 1, Kind: BorderSolid, Color: "#000000"}},
		{"2px dashed rgb(255,0,0)", &Border{Width: 1.5, Kind: BorderDashed, Color: "#ff0000"}},
		{"thick dotted #123456", &Border{Width: 1, Kind: BorderDotted, Color: "#123456"}},
		{"3pt double blue", &Border{Width: 3, Kind: "double", Color: "#0000FF"}},
		{"1pt solid", nil},
		{"", nil},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, ParseBorder(tt.in)); diff != "" {
				t.Errorf("ParseBorder(%q) (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in, def, want string
	}{
		{"red", "", "#FF0000"},
		{"Grey", "", "#808080"},
		{"WHITE", "", "#FFFFFF"},
		{"rgb(255,0,0)", "", "#ff0000"},
		{"rgb(16, 32, 48)", "", "#102030"},
		{"rgb(300,0,0)", "", "#ff0000"},
		{"#abc123", "", "#abc123"},
		{"not-a-color", "#000000", "#000000"},
		{"", "#111111", "#111111"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseColor(tt.in, tt.def); got != tt.want {
				t.Errorf("ParseColor(%q, %q) = %q, want %q", tt.in, tt.def, got, tt.want)
			}
		})
	}
}

func TestHexToRGB(t *testing.T) {
	tests := []struct {
		in   string
		want RGB
	}{
		{"#ff0000", RGB{1, 0, 0}},
		{"#0f0", RGB{0, 1, 0}},
		{"blue", RGB{0, 0, 1}},
		{"#zzzzzz", RGB{}},
		{"#12345", RGB{}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := HexToRGB(tt.in); got != tt.want {
				t.Errorf("HexToRGB(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}

	r, g, b := HexToRGB("#336699").Bytes()
	if r != 0x33 || g != 0x66 || b != 0x99 {
		t.Errorf("Bytes() = %d,%d,%d", r, g, b)
	}
}

type shorthand struct{ margin, padding, border string }

func (s shorthand) MarginValue() string  { return s.margin }
func (s shorthand) PaddingValue() string { return s.padding }
func (s shorthand) BorderValue() string  { return s.border }

func TestResolve(t *testing.T) {
	c := Resolve(shorthand{margin: "4pt", padding: "2pt 6pt", border: "1pt dashed gray"})
	if c.Margin != (Sides{4, 4, 4, 4}) {
		t.Errorf("Margin = %v", c.Margin)
	}
	if c.Padding != (Sides{2, 6, 2, 6}) {
		t.Errorf("Padding = %v", c.Padding)
	}
	if !c.HasBorder() {
		t.Fatal("HasBorder() = false")
	}
	for _, b := range []*Border{c.BorderTop, c.BorderRight, c.BorderBottom, c.BorderLeft} {
		if diff := cmp.Diff(&Border{Width: 1, Kind: BorderDashed, Color: "#808080"}, b); diff != "" {
			t.Errorf("border (-want +got):\n%s", diff)
		}
	}

	if Resolve(shorthand{}).HasBorder() {
		t.Error("empty style has a border")
	}
}
