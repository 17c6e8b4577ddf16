package document

import (
	"strings"
	"testing"
)

func TestSerializeRoundTrip(t *testing.T) {
	// An untouched document must serialize back to the exact input bytes,
	// whatever the original formatting looked like.
	contents := []string{
		"---\ndescription: Simple\n---\nBody\n",
		"---\ndescription: 'single quoted'\nmodel:   claude-3-5-haiku-20241022\n---\n\n\nBody with   spacing\n",
		"no frontmatter at all\n",
		"---\n---\nempty block",
		"---\ndescription: No trailing newline\n---\nbody",
	}

	for _, content := range contents {
		doc, err := Parse(content, "x.md")
		if err != nil {
			t.Fatalf("Parse(%q): %v", content, err)
		}
		if got := doc.Serialize(); got != content {
			t.Errorf("round trip mismatch:\n got: %q\nwant: %q", got, content)
		}
	}
}

func TestSerializeAfterMutation(t *testing.T) {
	doc, err := Parse("---\ndescription: Original\n---\nBody\n", "x.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	doc.SetField("argument-hint", String("[args]"))
	if !doc.Dirty() {
		t.Fatal("SetField should dirty the document")
	}

	out := doc.Serialize()
	want := "---\ndescription: Original\nargument-hint: \"[args]\"\n---\nBody\n"
	if out != want {
		t.Errorf("serialized = %q, want %q", out, want)
	}

	// The rendered form must re-parse to identical values.
	again, err := Parse(out, "x.md")
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}
	if got, _ := again.Field("argument-hint").AsString(); got != "[args]" {
		t.Errorf("reparsed argument-hint = %q", got)
	}
	if got, _ := again.Field("description").AsString(); got != "Original" {
		t.Errorf("reparsed description = %q", got)
	}
}

func TestSerializeCreatesBlock(t *testing.T) {
	doc, err := Parse("Just a body with $ARGUMENTS\n", "x.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	doc.SetField("argument-hint", String("[args]"))
	out := doc.Serialize()

	if !strings.HasPrefix(out, "---\n") {
		t.Errorf("expected a frontmatter block, got %q", out)
	}
	if !strings.HasSuffix(out, "---\nJust a body with $ARGUMENTS\n") {
		t.Errorf("body not preserved: %q", out)
	}
}

func TestRenderScalarQuoting(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain words", "plain words"},
		{"", `""`},
		{"[arg1] [arg2]", `"[arg1] [arg2]"`},
		{"Edit, Bash", `"Edit, Bash"`},
		{"true", `"true"`},
		{"Bash(git:*)", `"Bash(git:*)"`},
		{"  padded  ", `"  padded  "`},
		{"claude-3-5-sonnet-20241022", "claude-3-5-sonnet-20241022"},
	}

	for _, tt := range tests {
		if got := renderScalar(tt.in); got != tt.want {
			t.Errorf("renderScalar(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFieldsSetPreservesPosition(t *testing.T) {
	f := NewFields()
	f.Set("a", String("1"))
	f.Set("b", String("2"))
	f.Set("a", String("updated"))

	if names := f.Names(); names[0] != "a" || names[1] != "b" {
		t.Errorf("names = %v", names)
	}
	if got, _ := f.Get("a").AsString(); got != "updated" {
		t.Errorf("a = %q", got)
	}

	f.Set("b", Absent())
	if f.Has("b") {
		t.Error("setting absent should remove the field")
	}
	if f.Len() != 1 {
		t.Errorf("len = %d, want 1", f.Len())
	}
}

func TestCloneIsIndependent(t *testing.T) {
	doc, err := Parse("---\nallowed-tools:\n  - Read\n---\nBody", "x.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	clone := doc.Clone()
	clone.SetField("allowed-tools", List([]string{"Read", "Bash"}))

	orig, _ := doc.Field("allowed-tools").AsList()
	if len(orig) != 1 {
		t.Errorf("original mutated: %v", orig)
	}
	if doc.Dirty() {
		t.Error("original should not be dirty")
	}
}
