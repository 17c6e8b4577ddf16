package document

// Field is a single named frontmatter entry.
type Field struct {
	Name  string
	Value Value
}

// Fields is an ordered mapping from field name to Value. Order matters:
// serialization must emit fields in the order the author wrote them, with
// synthesized fields appended at the end.
type Fields struct {
	list  []Field
	index map[string]int
}

// NewFields creates an empty ordered field set.
func NewFields() *Fields {
	return &Fields{index: make(map[string]int)}
}

// Has returns true if the field is present.
func (f *Fields) Has(name string) bool {
	if f == nil {
		return false
	}
	_, ok := f.index[name]
	return ok
}

// Get returns the value for name, or the absent Value.
func (f *Fields) Get(name string) Value {
	if f == nil {
		return Absent()
	}
	if i, ok := f.index[name]; ok {
		return f.list[i].Value
	}
	return Absent()
}

// Set stores a value, preserving the position of an existing field and
// appending new fields at the end. Setting an absent Value removes the
// field entirely.
func (f *Fields) Set(name string, v Value) {
	if v.IsAbsent() {
		f.remove(name)
		return
	}
	if i, ok := f.index[name]; ok {
		f.list[i].Value = v
		return
	}
	f.index[name] = len(f.list)
	f.list = append(f.list, Field{Name: name, Value: v})
}

func (f *Fields) remove(name string) {
	i, ok := f.index[name]
	if !ok {
		return
	}
	f.list = append(f.list[:i], f.list[i+1:]...)
	delete(f.index, name)
	for j := i; j < len(f.list); j++ {
		f.index[f.list[j].Name] = j
	}
}

// Len returns the number of fields.
func (f *Fields) Len() int {
	if f == nil {
		return 0
	}
	return len(f.list)
}

// At returns the field at position i.
func (f *Fields) At(i int) Field {
	return f.list[i]
}

// Names returns field names in declaration order.
func (f *Fields) Names() []string {
	if f == nil {
		return nil
	}
	names := make([]string, len(f.list))
	for i, fld := range f.list {
		names[i] = fld.Name
	}
	return names
}

// Clone returns a deep copy.
func (f *Fields) Clone() *Fields {
	if f == nil {
		return nil
	}
	out := NewFields()
	for _, fld := range f.list {
		v := fld.Value
		if items, ok := v.AsList(); ok {
			copied := make([]string, len(items))
			copy(copied, items)
			v = List(copied)
		}
		out.Set(fld.Name, v)
	}
	return out
}
