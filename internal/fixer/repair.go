package fixer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/aidanlsb/cmdlint/internal/document"
)

var keyValueLineRe = regexp.MustCompile(`^(\w[\w-]*):\s*(.+?)\s*$`)

// RepairSyntax attempts a best-effort repair of a frontmatter block that
// failed to decode. The single targeted failure mode is an unquoted value
// containing square brackets, which YAML misreads as a flow sequence:
//
//	argument-hint: [file] [branch]
//
// Each such line gets its value wrapped in double quotes. Structural
// corruption (a missing closing marker, bad indentation) is never
// repaired. The result is not guaranteed to decode; callers must retry
// the parse and give up on a second failure.
func RepairSyntax(raw string) (string, []FixRecord) {
	lines := strings.Split(raw, "\n")

	_, endLine, ok := document.Bounds(lines)
	if !ok || endLine == -1 {
		return raw, nil
	}

	var records []FixRecord
	for i := 1; i < endLine; i++ {
		m := keyValueLineRe.FindStringSubmatch(lines[i])
		if m == nil {
			continue
		}
		key, value := m[1], m[2]
		if !strings.Contains(value, "[") || isQuoted(value) {
			continue
		}

		lines[i] = fmt.Sprintf("%s: %q", key, value)
		records = append(records, FixRecord{
			RuleID:      "frontmatter-syntax",
			Description: fmt.Sprintf("Quoted square brackets in '%s' field", key),
		})
	}

	if len(records) == 0 {
		return raw, nil
	}
	return strings.Join(lines, "\n"), records
}

// isQuoted checks only the first byte: nested or partial quoting is
// inherently ambiguous and left alone.
func isQuoted(value string) bool {
	return strings.HasPrefix(value, `"`) || strings.HasPrefix(value, `'`)
}
