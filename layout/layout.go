// Package layout turns blocks into positioned boxes.
//
// Every block carries its own absolute Layout, so computing the layout is a
// one-to-one mapping; there is no flow, wrapping or nesting.
package layout

import "github.com/lvillar/pdftree/block"

// Box is the resolved rectangle of a block in points, top-left origin.
type Box struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
	Block  block.Block
}

// Offset returns the box moved by dx, dy.
func (b Box) Offset(dx, dy float64) Box {
	b.X += dx
	b.Y += dy
	return b
}

// Compute returns one box per block, in the same order. Each box is the
// block's normalized layout. containerWidth is accepted for callers that
// know the content area but does not influence the result. Geometry is not
// validated; zero and negative sizes pass through.
func Compute(blocks []block.Block, containerWidth float64) []Box {
	boxes := make([]Box, len(blocks))
	for i, b := range blocks {
		l := b.Bounds().Normalize()
		boxes[i] = Box{X: l.X, Y: l.Y, Width: l.Width, Height: l.Height, Block: b}
	}
	return boxes
}
