package tree

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lvillar/pdftree/block"
	"github.com/lvillar/pdftree/internal/yamlutil"
)

type treeJSON struct {
	Pages    []PageConfig `json:"pages"`
	Elements block.List   `json:"elements"`
	Metadata Metadata     `json:"metadata"`
}

func (t Tree) MarshalJSON() ([]byte, error) {
	w := treeJSON{Pages: t.Pages, Elements: t.Elements, Metadata: t.Metadata}
	if w.Pages == nil {
		w.Pages = []PageConfig{}
	}
	if w.Elements == nil {
		w.Elements = block.List{}
	}
	return json.Marshal(w)
}

// UnmarshalJSON decodes a tree. A missing "pages" field yields one default
// page; an explicit empty list is kept empty.
func (t *Tree) UnmarshalJSON(data []byte) error {
	var w treeJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	if w.Pages == nil {
		w.Pages = []PageConfig{DefaultPage()}
	}
	if w.Elements == nil {
		w.Elements = block.List{}
	}
	*t = Tree{Pages: w.Pages, Elements: w.Elements, Metadata: w.Metadata}
	return nil
}

// FromJSON decodes a tree from JSON text.
func FromJSON(data []byte) (Tree, error) {
	var t Tree
	if err := json.Unmarshal(data, &t); err != nil {
		return Tree{}, fmt.Errorf("tree: %w", err)
	}
	return t, nil
}

// FromObject decodes a tree from a JSON-shaped Go value, such as the
// map[string]any produced by decoding arbitrary JSON. A Tree is returned as
// is; []byte, string and json.RawMessage are parsed as JSON text.
func FromObject(v any) (Tree, error) {
	switch v := v.(type) {
	case Tree:
		return v, nil
	case *Tree:
		if v == nil {
			return Tree{}, errors.New("tree: nil tree")
		}
		return *v, nil
	case []byte:
		return FromJSON(v)
	case json.RawMessage:
		return FromJSON(v)
	case string:
		return FromJSON([]byte(v))
	case nil:
		return Tree{}, errors.New("tree: nil object")
	}
	data, err := json.Marshal(v)
	if err != nil {
		return Tree{}, fmt.Errorf("tree: %w", err)
	}
	return FromJSON(data)
}

// FromYAML decodes a tree written in YAML. The document has the same shape
// as the JSON form.
func FromYAML(data []byte) (Tree, error) {
	js, err := yamlutil.ToJSON(data)
	if err != nil {
		return Tree{}, fmt.Errorf("tree: %w", err)
	}
	return FromJSON(js)
}

// ToJSON encodes t, indented with two spaces when pretty is set.
func (t Tree) ToJSON(pretty bool) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if pretty {
		data, err = json.MarshalIndent(t, "", "  ")
	} else {
		data, err = json.Marshal(t)
	}
	if err != nil {
		return nil, fmt.Errorf("tree: %w", err)
	}
	return data, nil
}
