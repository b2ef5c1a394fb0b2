package tree

import (
	"encoding/json"
	"slices"
	"strings"
)

// Keywords is a list of document keywords. In JSON it accepts either an
// array of strings or a single string.
type Keywords []string

func (k *Keywords) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s == "" {
			*k = nil
		} else {
			*k = Keywords{s}
		}
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*k = list
	return nil
}

// String joins the keywords with spaces, the form written to the document.
func (k Keywords) String() string { return strings.Join(k, " ") }

// Metadata holds the document information fields. Empty fields are not
// written to the output.
type Metadata struct {
	Title    string   `json:"title,omitempty"`
	Author   string   `json:"author,omitempty"`
	Subject  string   `json:"subject,omitempty"`
	Keywords Keywords `json:"keywords,omitempty"`
	Creator  string   `json:"creator,omitempty"`
}

// IsZero reports whether no field is set.
func (m Metadata) IsZero() bool {
	return m.Title == "" && m.Author == "" && m.Subject == "" &&
		len(m.Keywords) == 0 && m.Creator == ""
}

// merge overlays the non-empty fields of o onto m.
func (m Metadata) merge(o Metadata) Metadata {
	if o.Title != "" {
		m.Title = o.Title
	}
	if o.Author != "" {
		m.Author = o.Author
	}
	if o.Subject != "" {
		m.Subject = o.Subject
	}
	if o.Keywords != nil {
		m.Keywords = slices.Clone(o.Keywords)
	}
	if o.Creator != "" {
		m.Creator = o.Creator
	}
	return m
}

// SetMetadata merges the non-empty fields of m into the tree's metadata.
func (t Tree) SetMetadata(m Metadata) Tree {
	t.Metadata = t.Metadata.merge(m)
	return t
}

// ReplaceMetadata replaces the metadata as a whole.
func (t Tree) ReplaceMetadata(m Metadata) Tree {
	m.Keywords = slices.Clone(m.Keywords)
	t.Metadata = m
	return t
}

func (t Tree) SetTitle(title string) Tree {
	t.Metadata.Title = title
	return t
}

func (t Tree) SetAuthor(author string) Tree {
	t.Metadata.Author = author
	return t
}

func (t Tree) SetSubject(subject string) Tree {
	t.Metadata.Subject = subject
	return t
}

func (t Tree) SetCreator(creator string) Tree {
	t.Metadata.Creator = creator
	return t
}

// SetKeywords replaces the keyword list.
func (t Tree) SetKeywords(keywords ...string) Tree {
	t.Metadata.Keywords = slices.Clone(keywords)
	return t
}

// AddKeyword appends a keyword.
func (t Tree) AddKeyword(keyword string) Tree {
	kw := make(Keywords, 0, len(t.Metadata.Keywords)+1)
	kw = append(kw, t.Metadata.Keywords...)
	t.Metadata.Keywords = append(kw, keyword)
	return t
}

// RemoveKeyword removes every occurrence of keyword.
func (t Tree) RemoveKeyword(keyword string) Tree {
	kw := make(Keywords, 0, len(t.Metadata.Keywords))
	for _, k := range t.Metadata.Keywords {
		if k != keyword {
			kw = append(kw, k)
		}
	}
	t.Metadata.Keywords = kw
	return t
}

// ClearMetadata drops every metadata field.
func (t Tree) ClearMetadata() Tree {
	t.Metadata = Metadata{}
	return t
}
