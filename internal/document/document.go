package document

import (
	"strconv"
	"strings"
)

// Document is the in-memory form of one command file.
//
// Raw always holds the original source text. Serialize returns Raw
// byte-for-byte until a field mutation dirties the metadata, so parsing is
// lossless whenever no fix is applied.
type Document struct {
	// Path identifies the document for reporting. No behavior depends on it.
	Path string

	// Raw is the original, unmodified source text.
	Raw string

	// Meta holds the decoded frontmatter fields, nil when no block exists.
	Meta *Fields

	// Body is the text after the closing marker, verbatim.
	Body string

	// HasFrontmatter records whether a delimited block was present, even
	// an empty one.
	HasFrontmatter bool

	rawBlock string
	dirty    bool
}

// Field returns the value of a frontmatter field, absent when there is no
// frontmatter at all.
func (d *Document) Field(name string) Value {
	return d.Meta.Get(name)
}

// SetField stores a field value and marks the document dirty. A block is
// created if the document had none.
func (d *Document) SetField(name string, v Value) {
	if d.Meta == nil {
		d.Meta = NewFields()
	}
	d.Meta.Set(name, v)
	d.HasFrontmatter = true
	d.dirty = true
}

// Dirty reports whether any field mutation occurred since parsing.
func (d *Document) Dirty() bool {
	return d.dirty
}

// Clone returns an independent copy for the fixer to work on.
func (d *Document) Clone() *Document {
	return &Document{
		Path:           d.Path,
		Raw:            d.Raw,
		Meta:           d.Meta.Clone(),
		Body:           d.Body,
		HasFrontmatter: d.HasFrontmatter,
		rawBlock:       d.rawBlock,
		dirty:          d.dirty,
	}
}

// Serialize renders the document back to text. An untouched document
// round-trips exactly; a dirtied one is re-rendered from its fields.
func (d *Document) Serialize() string {
	if !d.dirty {
		return d.Raw
	}

	var b strings.Builder
	b.WriteString(Delimiter)
	b.WriteByte('\n')
	for i := 0; i < d.Meta.Len(); i++ {
		writeField(&b, d.Meta.At(i))
	}
	b.WriteString(Delimiter)
	b.WriteByte('\n')
	b.WriteString(d.Body)
	return b.String()
}

func writeField(b *strings.Builder, f Field) {
	switch f.Value.Kind() {
	case KindBool:
		v, _ := f.Value.AsBool()
		b.WriteString(f.Name)
		b.WriteString(": ")
		b.WriteString(strconv.FormatBool(v))
		b.WriteByte('\n')
	case KindList:
		items, _ := f.Value.AsList()
		b.WriteString(f.Name)
		b.WriteString(":\n")
		for _, item := range items {
			b.WriteString("  - ")
			b.WriteString(renderScalar(item))
			b.WriteByte('\n')
		}
	default:
		s, _ := f.Value.AsString()
		b.WriteString(f.Name)
		b.WriteString(": ")
		b.WriteString(renderScalar(s))
		b.WriteByte('\n')
	}
}

// renderScalar emits a string scalar, double-quoting whenever a plain
// scalar could re-decode to a different kind or break the mapping grammar.
// The rendered form must parse back to the identical Value.
func renderScalar(s string) string {
	if needsQuoting(s) {
		return strconv.Quote(s)
	}
	return s
}

func needsQuoting(s string) bool {
	if s == "" {
		return true
	}
	if s != strings.TrimSpace(s) {
		return true
	}
	if strings.ContainsAny(s, "[]{}:#,&*!|>'\"%@`\n") {
		return true
	}
	switch s[0] {
	case '-', '?', '~':
		return true
	}
	// Plain scalars that YAML would read as booleans or null.
	switch strings.ToLower(s) {
	case "true", "false", "yes", "no", "on", "off", "null":
		return true
	}
	return false
}
