package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/aidanlsb/cmdlint/internal/atomicfile"
	"github.com/aidanlsb/cmdlint/internal/document"
	"github.com/aidanlsb/cmdlint/internal/fixer"
	"github.com/aidanlsb/cmdlint/internal/report"
	"github.com/aidanlsb/cmdlint/internal/rules"
)

// checkFile reads and validates a single command document.
func checkFile(path string, opts *rules.Options) *report.FileResult {
	content, err := os.ReadFile(path)
	if err != nil {
		return readFailure(path, err)
	}

	doc, err := document.Parse(string(content), path)
	if err != nil {
		return parseFailure(path, err)
	}

	return &report.FileResult{
		Path:        path,
		Diagnostics: rules.Run(doc, rules.Catalog(), opts),
	}
}

// fixFile repairs a single command document and, unless dryRun is set,
// rewrites it in place when any fix applied. The returned diagnostics
// reflect the document after fixing, so remaining issues are visible.
func fixFile(path string, opts *rules.Options, dryRun bool) *report.FileResult {
	content, err := os.ReadFile(path)
	if err != nil {
		return readFailure(path, err)
	}

	doc, records, err := fixer.FixText(string(content), path)
	if err != nil {
		return parseFailure(path, err)
	}

	result := &report.FileResult{
		Path:        path,
		Records:     records,
		Diagnostics: rules.Run(doc, rules.Catalog(), opts),
	}

	if len(records) > 0 && !dryRun {
		if err := atomicfile.WriteFile(path, []byte(doc.Serialize()), 0); err != nil {
			result.Diagnostics = append(result.Diagnostics, rules.Diagnostic{
				Severity: rules.Error,
				RuleID:   "file-write",
				Message:  fmt.Sprintf("failed to write fixes: %v", err),
				Path:     path,
			})
			return result
		}
		result.Fixed = true
	}

	return result
}

func readFailure(path string, err error) *report.FileResult {
	return &report.FileResult{
		Path: path,
		Diagnostics: []rules.Diagnostic{{
			Severity: rules.Error,
			RuleID:   "file-read",
			Message:  fmt.Sprintf("failed to read file: %v", err),
			Path:     path,
		}},
	}
}

func parseFailure(path string, err error) *report.FileResult {
	msg := err.Error()
	var parseErr *document.ParseError
	if errors.As(err, &parseErr) {
		msg = parseErr.Err.Error()
	}
	return &report.FileResult{
		Path: path,
		Diagnostics: []rules.Diagnostic{{
			Severity: rules.Error,
			RuleID:   "frontmatter-syntax",
			Message:  fmt.Sprintf("invalid frontmatter: %s", msg),
			Path:     path,
		}},
	}
}
