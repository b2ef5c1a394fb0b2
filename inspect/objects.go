// Package inspect reads PDF files back for verification.
//
// It understands the subset of the format that simple writers such as
// gofpdf produce: a classic cross-reference table, indirect objects, Flate
// compressed streams and a page tree. Page content streams are interpreted
// just far enough to report where text runs and line segments are painted.
package inspect

import "fmt"

// Object is implemented by every PDF object type.
type Object interface {
	pdfObject()
}

// Null is the PDF null object.
type Null struct{}

// Boolean is a PDF boolean.
type Boolean bool

// Integer is a PDF integer.
type Integer int64

// Real is a PDF real number.
type Real float64

// Name is a PDF name without its leading slash.
type Name string

// String is a literal or hexadecimal PDF string, unescaped.
type String []byte

// Array is a PDF array.
type Array []Object

// Dict is a PDF dictionary.
type Dict map[Name]Object

// Stream is a stream object with its still-encoded data.
type Stream struct {
	Dict Dict
	Data []byte
}

// Reference is an indirect reference such as "4 0 R".
type Reference struct {
	Number     int
	Generation int
}

// operator is a bare keyword in a content stream, e.g. "Tj".
type operator string

func (Null) pdfObject()      {}
func (Boolean) pdfObject()   {}
func (Integer) pdfObject()   {}
func (Real) pdfObject()      {}
func (Name) pdfObject()      {}
func (String) pdfObject()    {}
func (Array) pdfObject()     {}
func (Dict) pdfObject()      {}
func (Stream) pdfObject()    {}
func (Reference) pdfObject() {}
func (operator) pdfObject()  {}

func (r Reference) String() string { return fmt.Sprintf("%d %d R", r.Number, r.Generation) }

// number returns the numeric value of an Integer or Real.
func number(o Object) (float64, bool) {
	switch n := o.(type) {
	case Integer:
		return float64(n), true
	case Real:
		return float64(n), true
	}
	return 0, false
}

// Name returns the entry key as a name, or "".
func (d Dict) Name(key Name) Name {
	n, _ := d[key].(Name)
	return n
}

// Number returns the entry key as a number.
func (d Dict) Number(key Name) (float64, bool) {
	return number(d[key])
}
