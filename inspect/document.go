package inspect

import (
	"bytes"
	"compress/zlib"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"strconv"
	"strings"
	"unicode/utf16"
)

// ErrMalformed is wrapped by errors caused by input that is not a PDF this
// package can read.
var ErrMalformed = errors.New("inspect: malformed pdf")

// Document is a parsed PDF file.
type Document struct {
	Version string // e.g. "1.3"

	data    []byte
	offsets map[int]int64
	trailer Dict
	pages   []*Page
}

// Open reads and parses the file at path.
func Open(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("inspect: %w", err)
	}
	return Parse(data)
}

// ReadFrom reads r to the end and parses it.
func ReadFrom(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("inspect: reading input: %w", err)
	}
	return Parse(data)
}

// Parse parses a complete PDF file held in memory.
func Parse(data []byte) (*Document, error) {
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		return nil, fmt.Errorf("%w: missing %%PDF header", ErrMalformed)
	}
	d := &Document{data: data, offsets: make(map[int]int64)}
	if i := bytes.IndexAny(data, "\r\n"); i > 5 {
		d.Version = string(data[5:i])
	}

	start, err := d.startXRef()
	if err != nil {
		return nil, err
	}
	if err := d.readXRef(start); err != nil {
		return nil, err
	}
	if err := d.readPages(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Document) startXRef() (int64, error) {
	tail := d.data[max(0, len(d.data)-1024):]
	i := bytes.LastIndex(tail, []byte("startxref"))
	if i < 0 {
		return 0, fmt.Errorf("%w: startxref not found", ErrMalformed)
	}
	lx := newLexer(tail[i+len("startxref"):])
	off, err := strconv.ParseInt(lx.word(), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: startxref offset: %v", ErrMalformed, err)
	}
	return off, nil
}

// readXRef reads a classic cross-reference section and its trailer,
// following /Prev links. Entries already known win, so the newest revision
// of an object is kept.
func (d *Document) readXRef(off int64) error {
	if off < 0 || off >= int64(len(d.data)) {
		return fmt.Errorf("%w: xref offset %d out of range", ErrMalformed, off)
	}
	lx := newLexer(d.data[off:])
	if lx.word() != "xref" {
		return fmt.Errorf("%w: cross-reference streams are not supported", ErrMalformed)
	}
	for {
		w := lx.word()
		if w == "trailer" {
			break
		}
		first, err1 := strconv.Atoi(w)
		count, err2 := strconv.Atoi(lx.word())
		if err1 != nil || err2 != nil {
			return fmt.Errorf("%w: bad xref subsection %q", ErrMalformed, w)
		}
		for i := range count {
			offset, err := strconv.ParseInt(lx.word(), 10, 64)
			if err != nil {
				return fmt.Errorf("%w: bad xref entry: %v", ErrMalformed, err)
			}
			lx.word() // generation
			kind := lx.word()
			if _, seen := d.offsets[first+i]; !seen && kind == "n" {
				d.offsets[first+i] = offset
			}
		}
	}
	obj, err := lx.next()
	if err != nil {
		return fmt.Errorf("%w: trailer: %v", ErrMalformed, err)
	}
	trailer, ok := obj.(Dict)
	if !ok {
		return fmt.Errorf("%w: trailer is not a dictionary", ErrMalformed)
	}
	if d.trailer == nil {
		d.trailer = trailer
	}
	if prev, ok := trailer.Number("Prev"); ok {
		return d.readXRef(int64(prev))
	}
	return nil
}

// object reads the indirect object num.
func (d *Document) object(num int) (Object, error) {
	off, ok := d.offsets[num]
	if !ok {
		return Null{}, nil
	}
	if off < 0 || off >= int64(len(d.data)) {
		return nil, fmt.Errorf("%w: object %d offset out of range", ErrMalformed, num)
	}
	lx := newLexer(d.data[off:])
	n, err := strconv.Atoi(lx.word())
	if err != nil || n != num {
		return nil, fmt.Errorf("%w: object %d not found at offset %d", ErrMalformed, num, off)
	}
	lx.word() // generation
	if lx.word() != "obj" {
		return nil, fmt.Errorf("%w: object %d: missing obj keyword", ErrMalformed, num)
	}
	val, err := lx.next()
	if err != nil {
		return nil, fmt.Errorf("%w: object %d: %v", ErrMalformed, num, err)
	}
	dict, isDict := val.(Dict)
	lx.skipSpace()
	if !isDict || !lx.hasPrefix("stream") {
		return val, nil
	}

	lx.pos += len("stream")
	if lx.hasPrefix("\r\n") {
		lx.pos += 2
	} else if lx.hasPrefix("\n") {
		lx.pos++
	}
	length, ok := number(d.resolve(dict["Length"]))
	if !ok || length < 0 || lx.pos+int(length) > len(lx.data) {
		return nil, fmt.Errorf("%w: object %d: bad stream length", ErrMalformed, num)
	}
	return Stream{Dict: dict, Data: lx.data[lx.pos : lx.pos+int(length)]}, nil
}

// resolve follows a reference. Unresolvable references become Null.
func (d *Document) resolve(o Object) Object {
	for range 32 {
		ref, ok := o.(Reference)
		if !ok {
			return o
		}
		v, err := d.object(ref.Number)
		if err != nil {
			return Null{}
		}
		o = v
	}
	return Null{}
}

func (d *Document) dict(o Object) Dict {
	dict, _ := d.resolve(o).(Dict)
	return dict
}

// decode returns the decoded data of s. Only FlateDecode is supported.
func decode(s Stream) ([]byte, error) {
	var filters []Name
	switch f := s.Dict["Filter"].(type) {
	case nil:
	case Name:
		filters = []Name{f}
	case Array:
		for _, v := range f {
			n, _ := v.(Name)
			filters = append(filters, n)
		}
	}
	data := s.Data
	for _, f := range filters {
		if f != "FlateDecode" {
			return nil, fmt.Errorf("inspect: unsupported filter /%s", f)
		}
		r, err := zlib.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("inspect: flate: %w", err)
		}
		data, err = io.ReadAll(r)
		r.Close()
		if err != nil {
			return nil, fmt.Errorf("inspect: flate: %w", err)
		}
	}
	return data, nil
}

// Metadata returns the text fields of the document information dictionary.
// Keys are the PDF names, e.g. "Title" and "Producer".
func (d *Document) Metadata() map[string]string {
	meta := make(map[string]string)
	for k, v := range d.dict(d.trailer["Info"]) {
		if s, ok := d.resolve(v).(String); ok {
			meta[string(k)] = decodeText(s)
		}
	}
	return meta
}

// decodeText converts a PDF text string to UTF-8. Strings starting with a
// UTF-16BE byte order mark are decoded as such; anything else is taken as
// PDFDocEncoding, which matches Latin-1 for printable characters.
func decodeText(s String) string {
	if len(s) >= 2 && s[0] == 0xFE && s[1] == 0xFF {
		b := s[2:]
		u := make([]uint16, len(b)/2)
		for i := range u {
			u[i] = uint16(b[2*i])<<8 | uint16(b[2*i+1])
		}
		return string(utf16.Decode(u))
	}
	var sb strings.Builder
	for _, c := range s {
		sb.WriteRune(rune(c))
	}
	return sb.String()
}

// NumPages returns the number of pages.
func (d *Document) NumPages() int { return len(d.pages) }

// Page returns page n, counting from 1.
func (d *Document) Page(n int) (*Page, error) {
	if n < 1 || n > len(d.pages) {
		return nil, fmt.Errorf("inspect: page %d out of range [1, %d]", n, len(d.pages))
	}
	return d.pages[n-1], nil
}

// Pages iterates over the pages. The index is 1-based.
func (d *Document) Pages() iter.Seq2[int, *Page] {
	return func(yield func(int, *Page) bool) {
		for i, p := range d.pages {
			if !yield(i+1, p) {
				return
			}
		}
	}
}
