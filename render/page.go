package render

import (
	"fmt"
	"strings"

	"github.com/lvillar/pdftree/block"
	"github.com/lvillar/pdftree/layout"
	"github.com/lvillar/pdftree/style"
)

// Page paints boxes onto s in order, so later boxes paint over earlier
// ones. Boxes whose block kind is not known to the renderer are skipped.
// A nil ctx is replaced by a fresh one.
func Page(s Surface, boxes []layout.Box, ctx *Context) error {
	if ctx == nil {
		ctx = NewContext(nil)
	}
	for i, box := range boxes {
		if err := paintBox(s, box, ctx); err != nil {
			return fmt.Errorf("render: box %d (%s): %w", i, box.Block.Kind(), err)
		}
	}
	return nil
}

func paintBox(s Surface, box layout.Box, ctx *Context) error {
	switch box.Block.(type) {
	case block.Text, block.Image, block.Barcode:
	default:
		ctx.logger.Debug("skipping block", "type", box.Block.Kind(), "id", box.Block.BlockID())
		return nil
	}

	st := box.Block.BoxStyle()
	computed := style.Resolve(st)

	if st.Opacity != nil && *st.Opacity >= 0 && *st.Opacity < 1 {
		s.SetOpacity(*st.Opacity)
		defer s.SetOpacity(1)
	}

	if st.BackgroundColor != "" {
		paintBackground(s, box, st.BackgroundColor)
	}

	var err error
	switch b := box.Block.(type) {
	case block.Text:
		err = paintText(s, box, b, computed, ctx)
	case block.Image:
		err = paintImage(s, box, b, computed)
	case block.Barcode:
		err = paintBarcode(s, box, b, computed)
	}
	if err != nil {
		return err
	}

	paintBorders(s, box, computed)
	return nil
}

func paintBackground(s Surface, box layout.Box, color string) {
	s.FillRect(Rect{
		X:      box.X,
		Y:      s.Height() - box.Y - box.Height,
		Width:  box.Width,
		Height: box.Height,
		Color:  style.HexToRGB(color),
	})
}

func paintText(s Surface, box layout.Box, b block.Text, c style.Computed, ctx *Context) error {
	ts := b.Style
	font, err := ctx.Font(s, ts.FontFamily, ts.FontWeight.Bold())
	if err != nil {
		return err
	}
	size := ts.Size()
	leading := size * ts.Leading()
	color := style.HexToRGB(ts.Color)
	pageH := s.Height()

	for i, line := range strings.Split(b.Text, "\n") {
		if line == "" {
			continue
		}
		w := s.MeasureText(font, size, line)
		var x float64
		switch ts.TextAlign {
		case block.AlignCenter:
			x = box.X + (box.Width-w)/2
		case block.AlignRight:
			x = box.X + box.Width - w - c.Padding.Right()
		default:
			x = box.X + c.Padding.Left()
		}
		y := pageH - (box.Y + c.Padding.Top() + size) - float64(i)*leading
		s.DrawText(TextRun{Text: line, X: x, Y: y, Font: font, Size: size, Color: color})
	}
	return nil
}

// inner returns the box inset by its padding, in bottom-left space.
func inner(s Surface, box layout.Box, c style.Computed) (x, y, w, h float64) {
	p := c.Padding
	x = box.X + p.Left()
	w = box.Width - p.Left() - p.Right()
	h = box.Height - p.Top() - p.Bottom()
	y = s.Height() - box.Y - p.Top() - h
	return x, y, w, h
}

func paintImage(s Surface, box layout.Box, b block.Image, c style.Computed) error {
	x, y, w, h := inner(s, box, c)
	if w <= 0 || h <= 0 {
		return nil
	}
	return s.DrawImage(ImageRun{Src: b.Src, X: x, Y: y, Width: w, Height: h, Fit: b.Fit})
}

func paintBarcode(s Surface, box layout.Box, b block.Barcode, c style.Computed) error {
	x, y, w, h := inner(s, box, c)
	if w <= 0 || h <= 0 || b.Value == "" {
		return nil
	}
	return s.DrawBarcode(BarcodeRun{Symbology: b.Symbology, Value: b.Value, X: x, Y: y, Width: w, Height: h})
}

func paintBorders(s Surface, box layout.Box, c style.Computed) {
	pageH := s.Height()
	left, right := box.X, box.X+box.Width
	top, bottom := pageH-box.Y, pageH-(box.Y+box.Height)

	edge := func(b *style.Border, x1, y1, x2, y2 float64) {
		if b == nil {
			return
		}
		s.DrawLine(Line{
			X1: x1, Y1: y1, X2: x2, Y2: y2,
			Width: b.Width,
			Color: style.HexToRGB(b.Color),
			Kind:  b.Kind,
		})
	}
	edge(c.BorderTop, left, top, right, top)
	edge(c.BorderRight, right, top, right, bottom)
	edge(c.BorderBottom, left, bottom, right, bottom)
	edge(c.BorderLeft, left, top, left, bottom)
}
