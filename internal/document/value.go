package document

import (
	"encoding/json"
	"strings"
)

// Kind identifies the variant held by a Value.
type Kind int

const (
	// KindAbsent means the field is not present in the frontmatter.
	KindAbsent Kind = iota
	KindString
	KindBool
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBool:
		return "boolean"
	case KindList:
		return "list"
	default:
		return "absent"
	}
}

// Value is a frontmatter field value. It is a closed variant over the
// shapes the command format allows: a string scalar, a boolean scalar, a
// sequence of strings, or absent. Every rule type check is a single match
// on Kind rather than runtime type inspection.
type Value struct {
	kind Kind
	str  string
	b    bool
	list []string
}

// String creates a string Value.
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Bool creates a boolean Value.
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// List creates a string-sequence Value.
func List(items []string) Value {
	return Value{kind: KindList, list: items}
}

// Absent creates the absent Value.
func Absent() Value {
	return Value{kind: KindAbsent}
}

// Kind returns the variant of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// IsAbsent returns true if the field was not present.
func (v Value) IsAbsent() bool {
	return v.kind == KindAbsent
}

// AsString returns the value as a string, if it is one.
func (v Value) AsString() (string, bool) {
	if v.kind == KindString {
		return v.str, true
	}
	return "", false
}

// AsBool returns the value as a boolean, if it is one.
func (v Value) AsBool() (bool, bool) {
	if v.kind == KindBool {
		return v.b, true
	}
	return false, false
}

// AsList returns the value as a string sequence, if it is one.
func (v Value) AsList() ([]string, bool) {
	if v.kind == KindList {
		return v.list, true
	}
	return nil, false
}

// Flatten collapses the value to a single string: lists are joined with
// single spaces, booleans render as true/false, absent is empty.
func (v Value) Flatten() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindBool:
		if v.b {
			return "true"
		}
		return "false"
	case KindList:
		return strings.Join(v.list, " ")
	default:
		return ""
	}
}

// Raw returns the underlying raw value for JSON output.
func (v Value) Raw() interface{} {
	switch v.kind {
	case KindString:
		return v.str
	case KindBool:
		return v.b
	case KindList:
		out := make([]interface{}, len(v.list))
		for i, item := range v.list {
			out[i] = item
		}
		return out
	default:
		return nil
	}
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Raw())
}
