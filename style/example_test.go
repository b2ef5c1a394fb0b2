package style_test

import (
	"fmt"

	"github.com/lvillar/pdftree/style"
)

func ExampleParseSpacing() {
	s := style.ParseSpacing("10pt 16px")
	fmt.Println(s.Top(), s.Right(), s.Bottom(), s.Left())
	// Output: 10 12 10 12
}

func ExampleParseColor() {
	fmt.Println(style.ParseColor("rgb(255, 128, 0)", style.DefaultColor))
	fmt.Println(style.ParseColor("teal", style.DefaultColor))
	// Output:
	// #ff8000
	// #000000
}
