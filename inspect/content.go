package inspect

import "fmt"

// TextRun is a string shown by a text operator, positioned at the text
// origin in default user space.
type TextRun struct {
	Text string  `json:"text"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Font string  `json:"font"` // resource name, e.g. "F1"
	Size float64 `json:"size"`
}

// Segment is a straight path segment from a "m" / "l" pair.
type Segment struct {
	X1, Y1, X2, Y2 float64
}

// matrix is the affine [a b c d e f] of the PDF specification.
type matrix [6]float64

var identity = matrix{1, 0, 0, 1, 0, 0}

func (m matrix) mul(n matrix) matrix {
	return matrix{
		m[0]*n[0] + m[1]*n[2],
		m[0]*n[1] + m[1]*n[3],
		m[2]*n[0] + m[3]*n[2],
		m[2]*n[1] + m[3]*n[3],
		m[4]*n[0] + m[5]*n[2] + n[4],
		m[4]*n[1] + m[5]*n[3] + n[5],
	}
}

func translate(x, y float64) matrix { return matrix{1, 0, 0, 1, x, y} }

// contentState tracks what the interpreter needs. Graphics state
// transformations (cm, q, Q) are honoured since gofpdf uses them for
// images and templates.
type contentState struct {
	ctm     matrix
	stack   []matrix
	tm, tlm matrix
	leading float64
	font    string
	size    float64

	cur   [2]float64
	runs  []TextRun
	lines []Segment
}

func (s *contentState) show(text []byte) {
	m := s.tm.mul(s.ctm)
	s.runs = append(s.runs, TextRun{Text: decodeText(String(text)), X: m[4], Y: m[5], Font: s.font, Size: s.size})
}

func (s *contentState) nextLine() {
	s.tlm = translate(0, -s.leading).mul(s.tlm)
	s.tm = s.tlm
}

func (s *contentState) point(x, y float64) (float64, float64) {
	m := s.ctm
	return x*m[0] + y*m[2] + m[4], x*m[1] + y*m[3] + m[5]
}

func (s *contentState) apply(op operator, args []Object) {
	num := func(i int) float64 {
		if i >= len(args) {
			return 0
		}
		v, _ := number(args[i])
		return v
	}
	str := func(i int) []byte {
		if i >= len(args) {
			return nil
		}
		b, _ := args[i].(String)
		return b
	}

	switch op {
	case "q":
		s.stack = append(s.stack, s.ctm)
	case "Q":
		if n := len(s.stack); n > 0 {
			s.ctm, s.stack = s.stack[n-1], s.stack[:n-1]
		}
	case "cm":
		s.ctm = matrix{num(0), num(1), num(2), num(3), num(4), num(5)}.mul(s.ctm)
	case "BT":
		s.tm, s.tlm = identity, identity
	case "Tf":
		if len(args) > 0 {
			n, _ := args[0].(Name)
			s.font = string(n)
		}
		s.size = num(1)
	case "TL":
		s.leading = num(0)
	case "Td":
		s.tlm = translate(num(0), num(1)).mul(s.tlm)
		s.tm = s.tlm
	case "TD":
		s.leading = -num(1)
		s.tlm = translate(num(0), num(1)).mul(s.tlm)
		s.tm = s.tlm
	case "Tm":
		s.tlm = matrix{num(0), num(1), num(2), num(3), num(4), num(5)}
		s.tm = s.tlm
	case "T*":
		s.nextLine()
	case "Tj":
		s.show(str(0))
	case "'":
		s.nextLine()
		s.show(str(0))
	case "\"":
		s.nextLine()
		s.show(str(2))
	case "TJ":
		if len(args) == 0 {
			return
		}
		arr, _ := args[0].(Array)
		var text []byte
		for _, e := range arr {
			if b, ok := e.(String); ok {
				text = append(text, b...)
			}
		}
		s.show(text)
	case "m":
		s.cur[0], s.cur[1] = s.point(num(0), num(1))
	case "l":
		x, y := s.point(num(0), num(1))
		s.lines = append(s.lines, Segment{X1: s.cur[0], Y1: s.cur[1], X2: x, Y2: y})
		s.cur = [2]float64{x, y}
	}
}

// interpret runs a content stream. Inline images are not supported and end
// interpretation early.
func interpret(data []byte) (*contentState, error) {
	s := &contentState{ctm: identity, tm: identity, tlm: identity}
	lx := newLexer(data)
	var args []Object
	for !lx.atEOF() {
		o, err := lx.next()
		if err != nil {
			return nil, fmt.Errorf("inspect: content stream: %w", err)
		}
		op, ok := o.(operator)
		if !ok {
			args = append(args, o)
			continue
		}
		if op == "BI" {
			break
		}
		s.apply(op, args)
		args = args[:0]
	}
	return s, nil
}

// TextRuns returns every string shown on the page in painting order.
func (p *Page) TextRuns() ([]TextRun, error) {
	data, err := p.ContentStream()
	if err != nil {
		return nil, err
	}
	s, err := interpret(data)
	if err != nil {
		return nil, err
	}
	return s.runs, nil
}

// Lines returns the straight segments of every path on the page, stroked
// or not.
func (p *Page) Lines() ([]Segment, error) {
	data, err := p.ContentStream()
	if err != nil {
		return nil, err
	}
	s, err := interpret(data)
	if err != nil {
		return nil, err
	}
	return s.lines, nil
}
