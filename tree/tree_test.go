package tree

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/lvillar/pdftree/block"
)

func text(id, s string) block.Text {
	return block.NewText(block.TextOptions{ID: id, Text: s, Layout: block.Layout{Width: 100, Height: 20}})
}

func ids(t Tree) []string {
	out := make([]string, len(t.Elements))
	for i, b := range t.Elements {
		out[i] = b.BlockID()
	}
	return out
}

func TestNewDefaults(t *testing.T) {
	tr := New()
	if tr.PageCount() != 1 {
		t.Fatalf("PageCount = %d, want 1", tr.PageCount())
	}
	g := tr.Pages[0].Resolve()
	if g.Width != 595.28 || g.Height != 841.89 {
		t.Errorf("default page = %gx%g, want A4", g.Width, g.Height)
	}
	if g.Margins != [4]float64{36, 36, 36, 36} {
		t.Errorf("default margins = %v", g.Margins)
	}
	if Empty().PageCount() != 0 || Empty().Len() != 0 {
		t.Error("Empty() is not empty")
	}
}

func TestElementOpsDoNotMutate(t *testing.T) {
	base := New().AddElements(text("a", "A"), text("b", "B"), text("c", "C"))
	before := ids(base)

	ops := map[string]func(Tree) Tree{
		"AddElement":        func(t Tree) Tree { return t.AddElement(text("d", "D")) },
		"AddElementAt":      func(t Tree) Tree { return t.AddElementAt(text("d", "D"), 1) },
		"RemoveElementAt":   func(t Tree) Tree { return t.RemoveElementAt(0) },
		"RemoveElementByID": func(t Tree) Tree { return t.RemoveElementByID("b") },
		"ClearElements":     func(t Tree) Tree { return t.ClearElements() },
		"UpdateElementAt":   func(t Tree) Tree { return t.UpdateElementAt(2, text("z", "Z")) },
		"UpdateElementByID": func(t Tree) Tree { return t.UpdateElementByID("a", text("z", "Z")) },
		"MoveElement":       func(t Tree) Tree { return t.MoveElement(0, 2) },
		"MoveElementUp":     func(t Tree) Tree { return t.MoveElementUp(2) },
		"SetTitle":          func(t Tree) Tree { return t.SetTitle("x") },
		"AddKeyword":        func(t Tree) Tree { return t.AddKeyword("k") },
		"AddPage":           func(t Tree) Tree { return t.AddPage(PageConfig{Width: 10, Height: 10}) },
		"RemovePageAt":      func(t Tree) Tree { return t.RemovePageAt(0) },
	}
	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			_ = op(base)
			if diff := cmp.Diff(before, ids(base)); diff != "" {
				t.Errorf("receiver elements changed (-want +got):\n%s", diff)
			}
			if base.PageCount() != 1 || base.Metadata.Title != "" || len(base.Metadata.Keywords) != 0 {
				t.Errorf("receiver pages or metadata changed: %+v", base)
			}
		})
	}
}

func TestAddElementDoesNotShareBackingArray(t *testing.T) {
	base := Empty()
	base.Elements = make([]block.Block, 1, 10)
	base.Elements[0] = text("a", "A")

	x := base.AddElement(text("x", "X"))
	y := base.AddElement(text("y", "Y"))
	if x.Elements[1].BlockID() != "x" || y.Elements[1].BlockID() != "y" {
		t.Fatalf("appends interfered: %v %v", ids(x), ids(y))
	}
}

func TestElementOps(t *testing.T) {
	base := New().AddElements(text("a", "A"), text("b", "B"), text("c", "C"))

	tests := []struct {
		name string
		got  Tree
		want []string
	}{
		{"add at middle", base.AddElementAt(text("d", "D"), 1), []string{"a", "d", "b", "c"}},
		{"add at past end", base.AddElementAt(text("d", "D"), 99), []string{"a", "b", "c", "d"}},
		{"remove at", base.RemoveElementAt(1), []string{"a", "c"}},
		{"remove out of range", base.RemoveElementAt(3), []string{"a", "b", "c"}},
		{"remove by id", base.RemoveElementByID("c"), []string{"a", "b"}},
		{"update at", base.UpdateElementAt(0, text("z", "Z")), []string{"z", "b", "c"}},
		{"update at out of range", base.UpdateElementAt(-1, text("z", "Z")), []string{"a", "b", "c"}},
		{"update by id", base.UpdateElementByID("b", text("z", "Z")), []string{"a", "z", "c"}},
		{"move forward", base.MoveElement(0, 2), []string{"b", "c", "a"}},
		{"move backward", base.MoveElement(2, 0), []string{"c", "a", "b"}},
		{"move out of range", base.MoveElement(0, 3), []string{"a", "b", "c"}},
		{"move up", base.MoveElementUp(1), []string{"b", "a", "c"}},
		{"move up first", base.MoveElementUp(0), []string{"a", "b", "c"}},
		{"move down", base.MoveElementDown(1), []string{"a", "c", "b"}},
		{"move down last", base.MoveElementDown(2), []string{"a", "b", "c"}},
		{"move to start", base.MoveElementToStart(2), []string{"c", "a", "b"}},
		{"move to end", base.MoveElementToEnd(0), []string{"b", "c", "a"}},
		{"clear", base.ClearElements(), []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, ids(tt.got)); diff != "" {
				t.Errorf("elements (-want +got):\n%s", diff)
			}
		})
	}
}

func TestUpdateElementAtWith(t *testing.T) {
	tr := New().AddElement(text("a", "old"))
	tr = tr.UpdateElementAtWith(0, func(b block.Block) block.Block {
		tb := b.(block.Text)
		tb.Text = "new"
		return tb
	})
	got, _ := tr.ElementAt(0)
	if got.(block.Text).Text != "new" {
		t.Errorf("text = %q, want new", got.(block.Text).Text)
	}
}

func TestPageOps(t *testing.T) {
	letter := PageConfig{Size: &PageSize{Name: "Letter"}}
	tr := New().AddPage(letter)
	if tr.PageCount() != 2 {
		t.Fatalf("PageCount = %d, want 2", tr.PageCount())
	}
	tr = tr.AddPageAt(PageConfig{Width: 100, Height: 200}, 0)
	if p, _ := tr.PageAt(0); p.Width != 100 {
		t.Errorf("page 0 width = %g, want 100", p.Width)
	}
	tr = tr.UpdatePageAtWith(0, func(p PageConfig) PageConfig {
		p.Orientation = Landscape
		return p
	})
	if g := tr.FirstPage().Resolve(); g.Width != 200 || g.Height != 100 {
		t.Errorf("landscape page = %gx%g, want 200x100", g.Width, g.Height)
	}
	if got := tr.RemovePageAt(5); got.PageCount() != 3 {
		t.Errorf("RemovePageAt out of range changed the pages")
	}
	if got := tr.SetPages(); got.PageCount() != 0 {
		t.Errorf("SetPages() left %d pages", got.PageCount())
	}
	if _, ok := tr.PageAt(3); ok {
		t.Error("PageAt(3) reported a page")
	}
}

func TestMetadataOps(t *testing.T) {
	tr := New().SetTitle("Report").SetAuthor("Ana")
	tr = tr.SetMetadata(Metadata{Subject: "Q3"})
	want := Metadata{Title: "Report", Author: "Ana", Subject: "Q3"}
	if diff := cmp.Diff(want, tr.Metadata); diff != "" {
		t.Errorf("merge (-want +got):\n%s", diff)
	}

	tr = tr.SetKeywords("a", "b").AddKeyword("c").RemoveKeyword("a")
	if diff := cmp.Diff(Keywords{"b", "c"}, tr.Metadata.Keywords); diff != "" {
		t.Errorf("keywords (-want +got):\n%s", diff)
	}
	if tr.Metadata.Keywords.String() != "b c" {
		t.Errorf("keywords string = %q", tr.Metadata.Keywords.String())
	}

	tr = tr.ReplaceMetadata(Metadata{Creator: "pdftree"})
	if tr.Metadata.Title != "" || tr.Metadata.Creator != "pdftree" {
		t.Errorf("replace = %+v", tr.Metadata)
	}
	if !tr.ClearMetadata().Metadata.IsZero() {
		t.Error("ClearMetadata left fields set")
	}
}

func TestQueries(t *testing.T) {
	img := block.NewImage(block.ImageOptions{ID: "logo", Src: "logo.png"})
	tr := New().AddElements(text("a", "A"), img, text("a", "dup"))

	b, ok := tr.FindByID("a")
	if !ok || b.(block.Text).Text != "A" {
		t.Errorf("FindByID returned %v, %v; want first match", b, ok)
	}
	if i := tr.IndexByID("logo"); i != 1 {
		t.Errorf("IndexByID = %d, want 1", i)
	}
	if i := tr.IndexByID("missing"); i != -1 {
		t.Errorf("IndexByID(missing) = %d, want -1", i)
	}
	if n := len(tr.FindByKind(block.KindText)); n != 2 {
		t.Errorf("FindByKind(text) = %d blocks, want 2", n)
	}
	if !tr.HasID("logo") || tr.HasID("nope") {
		t.Error("HasID mismatch")
	}
	if tr.Len() != 3 {
		t.Errorf("Len = %d", tr.Len())
	}
	if _, ok := tr.ElementAt(3); ok {
		t.Error("ElementAt(3) reported an element")
	}
}

func TestResolvePage(t *testing.T) {
	tests := []struct {
		name string
		page PageConfig
		w, h float64
	}{
		{"points", PageConfig{Width: 595.28, Height: 841.89, Unit: "pt"}, 595.28, 841.89},
		{"inches", PageConfig{Width: 8.5, Height: 11, Unit: "in"}, 612, 792},
		{"unknown unit", PageConfig{Width: 300, Height: 400, Unit: "furlong"}, 300, 400},
		{"legal", PageConfig{Size: &PageSize{Name: "legal"}}, 612, 1008},
		{"explicit size", PageConfig{Size: &PageSize{Width: 200, Height: 300}}, 200, 300},
		{"nothing", PageConfig{}, 595.28, 841.89},
		{"landscape", PageConfig{Size: &PageSize{Name: "Letter"}, Orientation: "landscape"}, 792, 612},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := tt.page.Resolve()
			if math.Abs(g.Width-tt.w) > 1e-9 || math.Abs(g.Height-tt.h) > 1e-9 {
				t.Errorf("Resolve() = %gx%g, want %gx%g", g.Width, g.Height, tt.w, tt.h)
			}
		})
	}

	mm := PageConfig{Width: 210, Height: 297, Unit: "mm"}.Resolve()
	if math.Abs(mm.Width-595.2756) > 1e-3 {
		t.Errorf("210mm = %g pt", mm.Width)
	}

	g := PageConfig{Margins: "10pt 20pt"}.Resolve()
	if math.Abs(g.ContentWidth()-555.28) > 1e-9 {
		t.Errorf("ContentWidth = %g", g.ContentWidth())
	}
}

func TestValidate(t *testing.T) {
	good := New().AddElement(text("a", "A"))
	if err := good.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}

	bad := New().AddElements(
		block.Text{Layout: block.Layout{X: math.NaN(), Width: 1, Height: 1}},
		block.Text{Layout: block.Layout{Width: -5, Height: 1}},
	)
	err := bad.Validate()
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("Validate() = %v, want ErrInvalid", err)
	}

	zero := New(WithPages(PageConfig{Size: &PageSize{}}))
	if err := zero.Validate(); err == nil {
		t.Error("zero-size page passed validation")
	}
}
