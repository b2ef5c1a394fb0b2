package block

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnsupportedType is returned when a block of an unknown type is
// encoded or decoded. This is a schema violation, unlike a malformed style
// value which is silently ignored.
var ErrUnsupportedType = errors.New("unsupported block type")

var decoders = map[Kind]func([]byte) (Block, error){
	KindText:    decodeText,
	KindImage:   decodeImage,
	KindBarcode: decodeBarcode,
}

// Decode parses a single JSON block. The "type" field selects the variant.
func Decode(data []byte) (Block, error) {
	var head struct {
		Type Kind `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("block: %w", err)
	}
	dec, ok := decoders[head.Type]
	if !ok {
		return nil, fmt.Errorf("block: %w: %q", ErrUnsupportedType, head.Type)
	}
	b, err := dec(data)
	if err != nil {
		return nil, fmt.Errorf("block: decoding %s: %w", head.Type, err)
	}
	return b, nil
}

// Encode returns the JSON form of b.
func Encode(b Block) ([]byte, error) {
	if _, ok := decoders[b.Kind()]; !ok {
		return nil, fmt.Errorf("block: %w: %q", ErrUnsupportedType, b.Kind())
	}
	return json.Marshal(b)
}

// List is a slice of blocks with a JSON array encoding.
type List []Block

func (l List) MarshalJSON() ([]byte, error) {
	raw := make([]json.RawMessage, len(l))
	for i, b := range l {
		data, err := Encode(b)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		raw[i] = data
	}
	return json.Marshal(raw)
}

func (l *List) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(List, len(raw))
	for i, r := range raw {
		b, err := Decode(r)
		if err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
		out[i] = b
	}
	*l = out
	return nil
}
