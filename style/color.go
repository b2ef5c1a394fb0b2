package style

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// DefaultColor is used when no color is given.
const DefaultColor = "#000000"

var namedColors = map[string]string{
	"black": "#000000",
	"white": "#FFFFFF",
	"red":   "#FF0000",
	"green": "#00FF00",
	"blue":  "#0000FF",
	"gray":  "#808080",
	"grey":  "#808080",
}

var rgbRe = regexp.MustCompile(`^rgb\((\d+),\s*(\d+),\s*(\d+)\)$`)

// ParseColor normalizes a color value. Named colors are matched
// case-insensitively, hex values ("#...") pass through unchanged and
// "rgb(r, g, b)" is converted to lower-case hex. Anything else yields def.
func ParseColor(value, def string) string {
	if value == "" {
		return def
	}
	if hex, ok := namedColors[strings.ToLower(value)]; ok {
		return hex
	}
	if strings.HasPrefix(value, "#") {
		return value
	}
	if m := rgbRe.FindStringSubmatch(value); m != nil {
		var out strings.Builder
		out.WriteByte('#')
		for _, c := range m[1:] {
			n, _ := strconv.Atoi(c)
			n = min(n, 255)
			fmt.Fprintf(&out, "%02x", n)
		}
		return out.String()
	}
	return def
}

// RGB is a color with channels in [0, 1].
type RGB struct {
	R, G, B float64
}

// Bytes returns the channels scaled to 0..255.
func (c RGB) Bytes() (r, g, b int) {
	return scale(c.R), scale(c.G), scale(c.B)
}

func scale(v float64) int {
	n := int(v*255 + 0.5)
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return n
}

// HexToRGB converts a color value to float channels. The value is first
// normalized with ParseColor; "#rgb" and "#rrggbb" are understood and
// anything else is black.
func HexToRGB(value string) RGB {
	hex := strings.TrimPrefix(ParseColor(value, DefaultColor), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return RGB{}
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGB{}
	}
	return RGB{
		R: float64(n>>16&0xff) / 255,
		G: float64(n>>8&0xff) / 255,
		B: float64(n&0xff) / 255,
	}
}
