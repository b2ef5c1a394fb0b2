package inspect

import "fmt"

// Rectangle is a PDF rectangle [llx lly urx ury].
type Rectangle struct {
	LLX, LLY, URX, URY float64
}

func (r Rectangle) Width() float64  { return r.URX - r.LLX }
func (r Rectangle) Height() float64 { return r.URY - r.LLY }

// Page is one page of a Document.
type Page struct {
	Number   int
	MediaBox Rectangle

	doc      *Document
	contents []Stream
}

// ContentStream returns the decoded content of the page. Multiple content
// streams are joined with a newline.
func (p *Page) ContentStream() ([]byte, error) {
	var out []byte
	for _, s := range p.contents {
		data, err := decode(s)
		if err != nil {
			return nil, fmt.Errorf("inspect: page %d content: %w", p.Number, err)
		}
		out = append(out, data...)
		out = append(out, '\n')
	}
	return out, nil
}

func rectangle(o Object) (Rectangle, bool) {
	arr, ok := o.(Array)
	if !ok || len(arr) != 4 {
		return Rectangle{}, false
	}
	var v [4]float64
	for i, e := range arr {
		if v[i], ok = number(e); !ok {
			return Rectangle{}, false
		}
	}
	return Rectangle{LLX: v[0], LLY: v[1], URX: v[2], URY: v[3]}, true
}

// readPages flattens the page tree. MediaBox is inherited from ancestors.
func (d *Document) readPages() error {
	root := d.dict(d.trailer["Root"])
	if root == nil {
		return fmt.Errorf("%w: missing document catalog", ErrMalformed)
	}
	pages := d.dict(root["Pages"])
	if pages == nil {
		return fmt.Errorf("%w: missing page tree", ErrMalformed)
	}
	return d.walkPages(pages, Rectangle{}, 0)
}

func (d *Document) walkPages(node Dict, box Rectangle, depth int) error {
	if depth > 64 {
		return fmt.Errorf("%w: page tree too deep", ErrMalformed)
	}
	if r, ok := rectangle(d.resolve(node["MediaBox"])); ok {
		box = r
	}
	if node.Name("Type") != "Pages" {
		p := &Page{Number: len(d.pages) + 1, MediaBox: box, doc: d}
		switch c := d.resolve(node["Contents"]).(type) {
		case Stream:
			p.contents = []Stream{c}
		case Array:
			for _, e := range c {
				if s, ok := d.resolve(e).(Stream); ok {
					p.contents = append(p.contents, s)
				}
			}
		}
		d.pages = append(d.pages, p)
		return nil
	}
	kids, _ := d.resolve(node["Kids"]).(Array)
	for _, k := range kids {
		kid := d.dict(k)
		if kid == nil {
			continue
		}
		if err := d.walkPages(kid, box, depth+1); err != nil {
			return err
		}
	}
	return nil
}
