package tree

import (
	"slices"

	"github.com/lvillar/pdftree/block"
)

// FindByID returns the first element whose ID is id.
func (t Tree) FindByID(id string) (block.Block, bool) {
	i := t.IndexByID(id)
	if i < 0 {
		return nil, false
	}
	return t.Elements[i], true
}

// IndexByID returns the index of the first element whose ID is id, or -1.
func (t Tree) IndexByID(id string) int {
	return slices.IndexFunc(t.Elements, func(b block.Block) bool { return b.BlockID() == id })
}

// HasID reports whether an element with the given ID exists.
func (t Tree) HasID(id string) bool { return t.IndexByID(id) >= 0 }

// FindByKind returns the elements of kind k in tree order.
func (t Tree) FindByKind(k block.Kind) []block.Block {
	return t.Find(func(b block.Block) bool { return b.Kind() == k })
}

// Find returns the elements matching pred in tree order.
func (t Tree) Find(pred func(block.Block) bool) []block.Block {
	var out []block.Block
	for _, b := range t.Elements {
		if pred(b) {
			out = append(out, b)
		}
	}
	return out
}

// ElementAt returns the element at index i.
func (t Tree) ElementAt(i int) (block.Block, bool) {
	if !t.inRange(i) {
		return nil, false
	}
	return t.Elements[i], true
}

// Len returns the number of elements.
func (t Tree) Len() int { return len(t.Elements) }

// PageCount returns the number of pages.
func (t Tree) PageCount() int { return len(t.Pages) }

// PageAt returns the page at index i.
func (t Tree) PageAt(i int) (PageConfig, bool) {
	if i < 0 || i >= len(t.Pages) {
		return PageConfig{}, false
	}
	return t.Pages[i], true
}

// FirstPage returns the page that is rendered: the first page, or
// DefaultPage when the tree has none.
func (t Tree) FirstPage() PageConfig {
	if p, ok := t.PageAt(0); ok {
		return p
	}
	return DefaultPage()
}
