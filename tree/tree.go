// Package tree holds the document tree: pages, positioned blocks and
// metadata.
//
// A Tree is a value. Every operation returns a new Tree and leaves its
// receiver untouched: slices that change are freshly allocated, slices that
// do not change are shared. Operations given an out-of-range index return
// the tree unchanged.
//
//	t := tree.New().
//		SetTitle("Invoice").
//		AddElement(block.NewText(block.TextOptions{Text: "Hello"}))
package tree

import (
	"slices"

	"github.com/lvillar/pdftree/block"
)

// Tree is the root of a document.
type Tree struct {
	Pages    []PageConfig
	Elements []block.Block
	Metadata Metadata
}

// Option configures New.
type Option func(*Tree)

// WithPages sets the page list.
func WithPages(pages ...PageConfig) Option {
	return func(t *Tree) { t.Pages = slices.Clone(pages) }
}

// WithElements sets the element list.
func WithElements(elements ...block.Block) Option {
	return func(t *Tree) { t.Elements = slices.Clone(elements) }
}

// WithMetadata sets the metadata.
func WithMetadata(m Metadata) Option {
	return func(t *Tree) { t.Metadata = m }
}

// New returns a tree with one default page and no elements, adjusted by
// opts.
func New(opts ...Option) Tree {
	t := Tree{
		Pages:    []PageConfig{DefaultPage()},
		Elements: []block.Block{},
	}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

// Empty returns a tree without pages, elements or metadata.
func Empty() Tree {
	return Tree{Pages: []PageConfig{}, Elements: []block.Block{}}
}

func (t Tree) inRange(i int) bool { return i >= 0 && i < len(t.Elements) }

// AddElement appends b.
func (t Tree) AddElement(b block.Block) Tree {
	return t.AddElements(b)
}

// AddElements appends every block in order.
func (t Tree) AddElements(bs ...block.Block) Tree {
	els := make([]block.Block, 0, len(t.Elements)+len(bs))
	els = append(els, t.Elements...)
	t.Elements = append(els, bs...)
	return t
}

// AddElementAt inserts b before index i. An index past the end appends and
// a negative index prepends.
func (t Tree) AddElementAt(b block.Block, i int) Tree {
	i = max(0, min(i, len(t.Elements)))
	t.Elements = slices.Insert(slices.Clone(t.Elements), i, b)
	return t
}

// RemoveElementAt removes the element at index i.
func (t Tree) RemoveElementAt(i int) Tree {
	if !t.inRange(i) {
		return t
	}
	t.Elements = slices.Delete(slices.Clone(t.Elements), i, i+1)
	return t
}

// RemoveElementByID removes every element whose ID is id.
func (t Tree) RemoveElementByID(id string) Tree {
	t.Elements = slices.DeleteFunc(slices.Clone(t.Elements), func(b block.Block) bool {
		return b.BlockID() == id
	})
	return t
}

// ClearElements removes every element.
func (t Tree) ClearElements() Tree {
	t.Elements = []block.Block{}
	return t
}

// UpdateElementAt replaces the element at index i.
func (t Tree) UpdateElementAt(i int, b block.Block) Tree {
	return t.UpdateElementAtWith(i, func(block.Block) block.Block { return b })
}

// UpdateElementAtWith replaces the element at index i with fn applied to it.
func (t Tree) UpdateElementAtWith(i int, fn func(block.Block) block.Block) Tree {
	if !t.inRange(i) {
		return t
	}
	els := slices.Clone(t.Elements)
	els[i] = fn(els[i])
	t.Elements = els
	return t
}

// UpdateElementByID replaces every element whose ID is id.
func (t Tree) UpdateElementByID(id string, b block.Block) Tree {
	return t.UpdateElementByIDWith(id, func(block.Block) block.Block { return b })
}

// UpdateElementByIDWith replaces every element whose ID is id with fn
// applied to it.
func (t Tree) UpdateElementByIDWith(id string, fn func(block.Block) block.Block) Tree {
	els := make([]block.Block, len(t.Elements))
	for i, b := range t.Elements {
		if b.BlockID() == id {
			b = fn(b)
		}
		els[i] = b
	}
	t.Elements = els
	return t
}

// MoveElement moves the element at from so that it ends up at index to.
func (t Tree) MoveElement(from, to int) Tree {
	if !t.inRange(from) || !t.inRange(to) || from == to {
		return t
	}
	b := t.Elements[from]
	els := slices.Delete(slices.Clone(t.Elements), from, from+1)
	t.Elements = slices.Insert(els, to, b)
	return t
}

func (t Tree) MoveElementUp(i int) Tree {
	if i <= 0 {
		return t
	}
	return t.MoveElement(i, i-1)
}

func (t Tree) MoveElementDown(i int) Tree {
	if i >= len(t.Elements)-1 {
		return t
	}
	return t.MoveElement(i, i+1)
}

func (t Tree) MoveElementToStart(i int) Tree { return t.MoveElement(i, 0) }

func (t Tree) MoveElementToEnd(i int) Tree { return t.MoveElement(i, len(t.Elements)-1) }

// AddPage appends a page.
func (t Tree) AddPage(p PageConfig) Tree {
	pages := make([]PageConfig, 0, len(t.Pages)+1)
	pages = append(pages, t.Pages...)
	t.Pages = append(pages, p)
	return t
}

// AddPageAt inserts a page before index i, clamped to the page list.
func (t Tree) AddPageAt(p PageConfig, i int) Tree {
	i = max(0, min(i, len(t.Pages)))
	t.Pages = slices.Insert(slices.Clone(t.Pages), i, p)
	return t
}

// RemovePageAt removes the page at index i.
func (t Tree) RemovePageAt(i int) Tree {
	if i < 0 || i >= len(t.Pages) {
		return t
	}
	t.Pages = slices.Delete(slices.Clone(t.Pages), i, i+1)
	return t
}

// UpdatePageAt replaces the page at index i.
func (t Tree) UpdatePageAt(i int, p PageConfig) Tree {
	return t.UpdatePageAtWith(i, func(PageConfig) PageConfig { return p })
}

// UpdatePageAtWith replaces the page at index i with fn applied to it.
func (t Tree) UpdatePageAtWith(i int, fn func(PageConfig) PageConfig) Tree {
	if i < 0 || i >= len(t.Pages) {
		return t
	}
	pages := slices.Clone(t.Pages)
	pages[i] = fn(pages[i])
	t.Pages = pages
	return t
}

// SetPages replaces the page list.
func (t Tree) SetPages(pages ...PageConfig) Tree {
	t.Pages = slices.Clone(pages)
	if t.Pages == nil {
		t.Pages = []PageConfig{}
	}
	return t
}
