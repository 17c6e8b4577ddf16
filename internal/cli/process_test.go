package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aidanlsb/cmdlint/internal/report"
	"github.com/aidanlsb/cmdlint/internal/rules"
)

func writeCommand(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCheckFileValid(t *testing.T) {
	dir := t.TempDir()
	path := writeCommand(t, dir, "review.md", "---\ndescription: Review the current branch for style problems\n---\n\nReview the changes.\n")

	result := checkFile(path, rules.DefaultOptions())
	if got := result.Classification(); got != report.Valid {
		t.Errorf("classification = %v, diagnostics = %+v", got, result.Diagnostics)
	}
}

func TestCheckFileMissing(t *testing.T) {
	result := checkFile(filepath.Join(t.TempDir(), "gone.md"), rules.DefaultOptions())
	if result.Classification() != report.Invalid {
		t.Fatalf("classification = %v", result.Classification())
	}
	if result.Diagnostics[0].RuleID != "file-read" {
		t.Errorf("rule = %q", result.Diagnostics[0].RuleID)
	}
}

func TestCheckFileParseFailure(t *testing.T) {
	dir := t.TempDir()
	path := writeCommand(t, dir, "broken.md", "---\ndescription: Deploy the service\nextra: [a] [b]: nope\n---\n\nBody.\n")

	result := checkFile(path, rules.DefaultOptions())
	if result.Classification() != report.Invalid {
		t.Fatalf("classification = %v", result.Classification())
	}
	if result.Diagnostics[0].RuleID != "frontmatter-syntax" {
		t.Errorf("rule = %q", result.Diagnostics[0].RuleID)
	}
}

func TestFixFileDryRunLeavesFileUntouched(t *testing.T) {
	dir := t.TempDir()
	content := "---\ndescription: Summarize the pull request changes\n---\n\nSummarize PR $ARGUMENTS.\n"
	path := writeCommand(t, dir, "summarize.md", content)

	result := fixFile(path, rules.DefaultOptions(), true)
	if len(result.Records) == 0 {
		t.Fatal("expected a fix record")
	}
	if result.Fixed {
		t.Error("dry run must not mark the file as fixed")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != content {
		t.Errorf("dry run rewrote the file: %q", data)
	}
}

func TestFixFileRewritesAndConverges(t *testing.T) {
	dir := t.TempDir()
	path := writeCommand(t, dir, "summarize.md", "---\ndescription: Summarize the pull request changes\n---\n\nSummarize PR $ARGUMENTS.\n")

	first := fixFile(path, rules.DefaultOptions(), false)
	if !first.Fixed || len(first.Records) == 0 {
		t.Fatalf("first pass: fixed=%v records=%d", first.Fixed, len(first.Records))
	}

	second := fixFile(path, rules.DefaultOptions(), false)
	if second.Fixed || len(second.Records) != 0 {
		t.Fatalf("second pass: fixed=%v records=%d", second.Fixed, len(second.Records))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if want := "argument-hint: \"[args]\"\n"; !strings.Contains(string(data), want) {
		t.Errorf("rewritten file missing %q:\n%s", want, data)
	}
}

func TestFixFileCleanFileUnchanged(t *testing.T) {
	dir := t.TempDir()
	content := "---\ndescription: Review the current branch for style problems\n---\n\nReview the changes.\n"
	path := writeCommand(t, dir, "review.md", content)

	result := fixFile(path, rules.DefaultOptions(), false)
	if result.Fixed || len(result.Records) != 0 {
		t.Fatalf("fixed=%v records=%+v", result.Fixed, result.Records)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != content {
		t.Errorf("clean file was rewritten: %q", data)
	}
}
