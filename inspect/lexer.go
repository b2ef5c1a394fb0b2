package inspect

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
)

// lexer reads PDF objects from a byte slice. Bare keywords that are not
// part of the object syntax come back as operators, which is what content
// streams consist of.
type lexer struct {
	data []byte
	pos  int
}

func newLexer(data []byte) *lexer { return &lexer{data: data} }

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\f' || b == 0
}

func isDelim(b byte) bool {
	switch b {
	case '(', ')', '<', '>', '[', ']', '{', '}', '/', '%':
		return true
	}
	return false
}

func (lx *lexer) skipSpace() {
	for lx.pos < len(lx.data) {
		switch b := lx.data[lx.pos]; {
		case isSpace(b):
			lx.pos++
		case b == '%':
			for lx.pos < len(lx.data) && lx.data[lx.pos] != '\n' && lx.data[lx.pos] != '\r' {
				lx.pos++
			}
		default:
			return
		}
	}
}

func (lx *lexer) atEOF() bool {
	lx.skipSpace()
	return lx.pos >= len(lx.data)
}

// word reads a run of regular characters.
func (lx *lexer) word() string {
	lx.skipSpace()
	start := lx.pos
	for lx.pos < len(lx.data) && !isSpace(lx.data[lx.pos]) && !isDelim(lx.data[lx.pos]) {
		lx.pos++
	}
	return string(lx.data[start:lx.pos])
}

func (lx *lexer) hasPrefix(s string) bool {
	return bytes.HasPrefix(lx.data[lx.pos:], []byte(s))
}

// next reads one object or operator.
func (lx *lexer) next() (Object, error) {
	lx.skipSpace()
	if lx.pos >= len(lx.data) {
		return nil, io.ErrUnexpectedEOF
	}
	switch c := lx.data[lx.pos]; c {
	case '/':
		lx.pos++
		return Name(lx.name()), nil
	case '(':
		return lx.literal()
	case '<':
		if lx.hasPrefix("<<") {
			return lx.dict()
		}
		return lx.hex()
	case '[':
		lx.pos++
		return lx.array()
	case ']', '>', ')', '{', '}':
		return nil, fmt.Errorf("unexpected %q at offset %d", c, lx.pos)
	}

	start := lx.pos
	w := lx.word()
	if w == "" {
		lx.pos++
		return nil, fmt.Errorf("unexpected %q at offset %d", lx.data[start], start)
	}
	switch w {
	case "true":
		return Boolean(true), nil
	case "false":
		return Boolean(false), nil
	case "null":
		return Null{}, nil
	}
	if n, err := strconv.ParseInt(w, 10, 64); err == nil {
		if ref, ok := lx.reference(n); ok {
			return ref, nil
		}
		return Integer(n), nil
	}
	if f, err := strconv.ParseFloat(w, 64); err == nil {
		return Real(f), nil
	}
	return operator(w), nil
}

// reference tries to continue an integer into "N G R". The position is
// restored when the input is not a reference.
func (lx *lexer) reference(num int64) (Reference, bool) {
	save := lx.pos
	gen, err := strconv.ParseInt(lx.word(), 10, 64)
	if err == nil && lx.word() == "R" {
		return Reference{Number: int(num), Generation: int(gen)}, true
	}
	lx.pos = save
	return Reference{}, false
}

func (lx *lexer) name() string {
	var buf bytes.Buffer
	for lx.pos < len(lx.data) {
		b := lx.data[lx.pos]
		if isSpace(b) || isDelim(b) {
			break
		}
		if b == '#' && lx.pos+2 < len(lx.data) {
			hi, lo := unhex(lx.data[lx.pos+1]), unhex(lx.data[lx.pos+2])
			if hi >= 0 && lo >= 0 {
				buf.WriteByte(byte(hi<<4 | lo))
				lx.pos += 3
				continue
			}
		}
		buf.WriteByte(b)
		lx.pos++
	}
	return buf.String()
}

var escapes = map[byte]byte{'n': '\n', 'r': '\r', 't': '\t', 'b': '\b', 'f': '\f'}

func (lx *lexer) literal() (String, error) {
	lx.pos++ // (
	var buf bytes.Buffer
	depth := 1
	for lx.pos < len(lx.data) {
		b := lx.data[lx.pos]
		lx.pos++
		switch b {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return String(buf.Bytes()), nil
			}
		case '\\':
			if lx.pos >= len(lx.data) {
				return nil, io.ErrUnexpectedEOF
			}
			e := lx.data[lx.pos]
			lx.pos++
			switch {
			case escapes[e] != 0:
				buf.WriteByte(escapes[e])
			case e >= '0' && e <= '7':
				v := int(e - '0')
				for i := 0; i < 2 && lx.pos < len(lx.data) && lx.data[lx.pos] >= '0' && lx.data[lx.pos] <= '7'; i++ {
					v = v*8 + int(lx.data[lx.pos]-'0')
					lx.pos++
				}
				buf.WriteByte(byte(v))
			case e == '\r':
				// line continuation
				if lx.pos < len(lx.data) && lx.data[lx.pos] == '\n' {
					lx.pos++
				}
			case e == '\n':
			default:
				buf.WriteByte(e)
			}
			continue
		}
		buf.WriteByte(b)
	}
	return nil, fmt.Errorf("unterminated string")
}

func (lx *lexer) hex() (String, error) {
	lx.pos++ // <
	var buf bytes.Buffer
	hi := -1
	for lx.pos < len(lx.data) {
		b := lx.data[lx.pos]
		lx.pos++
		if b == '>' {
			if hi >= 0 {
				buf.WriteByte(byte(hi << 4))
			}
			return String(buf.Bytes()), nil
		}
		if isSpace(b) {
			continue
		}
		v := unhex(b)
		if v < 0 {
			return nil, fmt.Errorf("invalid hex digit %q", b)
		}
		if hi < 0 {
			hi = v
		} else {
			buf.WriteByte(byte(hi<<4 | v))
			hi = -1
		}
	}
	return nil, fmt.Errorf("unterminated hex string")
}

func (lx *lexer) array() (Array, error) {
	arr := Array{}
	for {
		lx.skipSpace()
		if lx.pos >= len(lx.data) {
			return nil, fmt.Errorf("unterminated array")
		}
		if lx.data[lx.pos] == ']' {
			lx.pos++
			return arr, nil
		}
		o, err := lx.next()
		if err != nil {
			return nil, err
		}
		arr = append(arr, o)
	}
}

func (lx *lexer) dict() (Dict, error) {
	lx.pos += 2 // <<
	d := Dict{}
	for {
		lx.skipSpace()
		if lx.pos >= len(lx.data) {
			return nil, fmt.Errorf("unterminated dictionary")
		}
		if lx.hasPrefix(">>") {
			lx.pos += 2
			return d, nil
		}
		key, err := lx.next()
		if err != nil {
			return nil, err
		}
		k, ok := key.(Name)
		if !ok {
			return nil, fmt.Errorf("dictionary key %v is not a name", key)
		}
		v, err := lx.next()
		if err != nil {
			return nil, fmt.Errorf("value of /%s: %w", k, err)
		}
		d[k] = v
	}
}

func unhex(b byte) int {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0')
	case b >= 'a' && b <= 'f':
		return int(b-'a') + 10
	case b >= 'A' && b <= 'F':
		return int(b-'A') + 10
	}
	return -1
}
