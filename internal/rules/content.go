package rules

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	goslug "github.com/gosimple/slug"

	"github.com/aidanlsb/cmdlint/internal/document"
)

var commandNameRe = regexp.MustCompile(`^[a-z0-9-]+$`)

func checkBodyPresent(doc *document.Document, _ *Options) []Diagnostic {
	if strings.TrimSpace(doc.Body) != "" {
		return nil
	}
	return []Diagnostic{{
		Severity: Error,
		RuleID:   "body-present",
		Message:  "File has no content after frontmatter",
		Path:     doc.Path,
	}}
}

func checkShellPermission(doc *document.Document, _ *Options) []Diagnostic {
	cmds := ExecMarkers(doc.Body)
	if len(cmds) == 0 {
		return nil
	}

	diags := []Diagnostic{{
		Severity: Info,
		RuleID:   "shell-permission",
		Message:  fmt.Sprintf("Found %d bash command execution(s)", len(cmds)),
		Path:     doc.Path,
	}}

	if !HasBashTool(doc.Field("allowed-tools")) {
		diags = append(diags, Diagnostic{
			Severity: Error,
			RuleID:   "shell-permission",
			Message:  "Bash commands found but 'Bash' not in allowed-tools",
			Path:     doc.Path,
		})
	}
	return diags
}

func checkArgumentStyle(doc *document.Document, _ *Options) []Diagnostic {
	usage := ArgumentMarkers(doc.Body)
	hasHint := doc.Meta.Has("argument-hint")

	var diags []Diagnostic

	// Exactly one warning for mixed styles, however many markers appear.
	if usage.Mixed() {
		diags = append(diags, Diagnostic{
			Severity: Warning,
			RuleID:   "argument-style",
			Message:  "Mixed usage of $ARGUMENTS and positional args ($1, $2). Use one style.",
			Path:     doc.Path,
		})
	}

	if usage.Any() && !hasHint {
		diags = append(diags, Diagnostic{
			Severity: Warning,
			RuleID:   "argument-style",
			Message:  "Arguments detected but no 'argument-hint' in frontmatter",
			Path:     doc.Path,
		})
	}

	if hasHint && !usage.Any() {
		diags = append(diags, Diagnostic{
			Severity: Warning,
			RuleID:   "argument-style",
			Message:  "'argument-hint' specified but no $ARGUMENTS or $N found in content",
			Path:     doc.Path,
		})
	}

	return diags
}

func checkFileReferences(doc *document.Document, _ *Options) []Diagnostic {
	refs := FileRefs(doc.Body)
	if len(refs) == 0 {
		return nil
	}
	return []Diagnostic{{
		Severity: Info,
		RuleID:   "file-references",
		Message:  fmt.Sprintf("Found %d file reference(s)", len(refs)),
		Path:     doc.Path,
	}}
}

func checkThinkingMode(doc *document.Document, _ *Options) []Diagnostic {
	if !ThinkingKeywords(doc.Body) {
		return nil
	}
	return []Diagnostic{{
		Severity: Info,
		RuleID:   "thinking-mode",
		Message:  "Extended thinking mode detected",
		Path:     doc.Path,
	}}
}

func checkCommandName(doc *document.Document, _ *Options) []Diagnostic {
	stem := strings.TrimSuffix(filepath.Base(doc.Path), ".md")
	if stem == "" || stem == "." || commandNameRe.MatchString(stem) {
		return nil
	}

	msg := fmt.Sprintf("Command name '%s' should use lowercase letters, numbers, and hyphens only", stem)
	if suggested := goslug.Make(stem); suggested != "" && suggested != stem {
		msg += fmt.Sprintf(" (suggested: '%s')", suggested)
	}

	return []Diagnostic{{
		Severity: Warning,
		RuleID:   "command-name",
		Message:  msg,
		Path:     doc.Path,
	}}
}
