package rules

import (
	"fmt"
	"strings"

	"github.com/aidanlsb/cmdlint/internal/document"
)

func checkFrontmatterPresent(doc *document.Document, _ *Options) []Diagnostic {
	if doc.HasFrontmatter {
		return nil
	}
	return []Diagnostic{{
		Severity: Warning,
		RuleID:   "frontmatter-present",
		Message:  "No frontmatter found. Consider adding a 'description' field.",
		Path:     doc.Path,
	}}
}

func checkKnownFields(doc *document.Document, _ *Options) []Diagnostic {
	if doc.Meta == nil {
		return nil
	}

	var unknown []string
	for _, name := range doc.Meta.Names() {
		if !KnownFields[name] {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) == 0 {
		return nil
	}

	// Warning, not error: unknown fields may be newer than this tool.
	return []Diagnostic{{
		Severity: Warning,
		RuleID:   "known-fields",
		Message:  fmt.Sprintf("Unknown frontmatter fields: %s", strings.Join(unknown, ", ")),
		Path:     doc.Path,
	}}
}

func checkDescription(doc *document.Document, opts *Options) []Diagnostic {
	if doc.Meta == nil {
		return nil
	}

	value := doc.Field("description")
	if value.IsAbsent() {
		return []Diagnostic{{
			Severity: Warning,
			RuleID:   "description",
			Message:  "Missing 'description' field (recommended for /help listing)",
			Path:     doc.Path,
		}}
	}

	var diags []Diagnostic
	if _, isBool := value.AsBool(); isBool {
		return []Diagnostic{{
			Severity: Error,
			RuleID:   "description",
			Message:  "'description' must be a string",
			Path:     doc.Path,
		}}
	}
	if _, isList := value.AsList(); isList {
		diags = append(diags, Diagnostic{
			Severity: Warning,
			RuleID:   "description",
			Message:  "'description' is a list; it should be a single string",
			Path:     doc.Path,
		})
	}

	desc := strings.TrimSpace(value.Flatten())
	switch {
	case desc == "":
		diags = append(diags, Diagnostic{
			Severity: Error,
			RuleID:   "description",
			Message:  "'description' field is empty",
			Path:     doc.Path,
		})
	case len(desc) < opts.DescriptionMin:
		diags = append(diags, Diagnostic{
			Severity: Warning,
			RuleID:   "description",
			Message:  fmt.Sprintf("'description' is very short (<%d chars). Consider adding detail.", opts.DescriptionMin),
			Path:     doc.Path,
		})
	case len(desc) > opts.DescriptionMax:
		diags = append(diags, Diagnostic{
			Severity: Warning,
			RuleID:   "description",
			Message:  fmt.Sprintf("'description' is very long (>%d chars). Consider shortening.", opts.DescriptionMax),
			Path:     doc.Path,
		})
	}
	return diags
}

// ToolTokens splits an allowed-tools value into individual tool names.
// String values split on commas; lists are taken as-is. ok is false when
// the value is neither shape.
func ToolTokens(value document.Value) (tokens []string, ok bool) {
	if s, isString := value.AsString(); isString {
		for _, t := range strings.Split(s, ",") {
			if t = strings.TrimSpace(t); t != "" {
				tokens = append(tokens, t)
			}
		}
		return tokens, true
	}
	if items, isList := value.AsList(); isList {
		for _, t := range items {
			if t = strings.TrimSpace(t); t != "" {
				tokens = append(tokens, t)
			}
		}
		return tokens, true
	}
	return nil, false
}

// HasBashTool reports whether an allowed-tools value names the
// shell-execution capability in any form (bare or parametrized).
func HasBashTool(value document.Value) bool {
	tokens, ok := ToolTokens(value)
	if !ok {
		return false
	}
	for _, t := range tokens {
		if strings.Contains(t, "Bash") {
			return true
		}
	}
	return false
}

func checkAllowedTools(doc *document.Document, opts *Options) []Diagnostic {
	if doc.Meta == nil || !doc.Meta.Has("allowed-tools") {
		return nil
	}

	value := doc.Field("allowed-tools")
	tokens, ok := ToolTokens(value)
	if !ok {
		return []Diagnostic{{
			Severity: Error,
			RuleID:   "allowed-tools",
			Message:  "'allowed-tools' must be a string or list",
			Path:     doc.Path,
		}}
	}

	var diags []Diagnostic
	for _, tool := range tokens {
		if !matchesAnyTool(tool, opts) {
			diags = append(diags, Diagnostic{
				Severity: Warning,
				RuleID:   "allowed-tools",
				Message:  fmt.Sprintf("Tool '%s' may not be a valid tool name", tool),
				Path:     doc.Path,
			})
		}
	}
	return diags
}

func matchesAnyTool(tool string, opts *Options) bool {
	for _, re := range opts.ToolPatterns {
		if re.MatchString(tool) {
			return true
		}
	}
	return false
}

func checkModel(doc *document.Document, opts *Options) []Diagnostic {
	if doc.Meta == nil || !doc.Meta.Has("model") {
		return nil
	}

	value := doc.Field("model")
	model, isString := value.AsString()
	if !isString {
		return []Diagnostic{{
			Severity: Error,
			RuleID:   "model",
			Message:  "'model' must be a string",
			Path:     doc.Path,
		}}
	}

	if !opts.Models[model] {
		return []Diagnostic{{
			Severity: Warning,
			RuleID:   "model",
			Message:  fmt.Sprintf("Model '%s' may not be valid. Check the model documentation.", model),
			Path:     doc.Path,
		}}
	}
	return nil
}

func checkArgumentHint(doc *document.Document, _ *Options) []Diagnostic {
	if doc.Meta == nil || !doc.Meta.Has("argument-hint") {
		return nil
	}

	value := doc.Field("argument-hint")
	if _, isBool := value.AsBool(); isBool {
		return []Diagnostic{{
			Severity: Error,
			RuleID:   "argument-hint",
			Message:  "'argument-hint' must be a string",
			Path:     doc.Path,
		}}
	}

	var diags []Diagnostic
	if _, isList := value.AsList(); isList {
		diags = append(diags, Diagnostic{
			Severity: Warning,
			RuleID:   "argument-hint",
			Message:  "'argument-hint' is a list; it should be a single string",
			Path:     doc.Path,
		})
	}
	if strings.TrimSpace(value.Flatten()) == "" {
		diags = append(diags, Diagnostic{
			Severity: Warning,
			RuleID:   "argument-hint",
			Message:  "'argument-hint' is empty",
			Path:     doc.Path,
		})
	}
	return diags
}

func checkDisableModelInvocation(doc *document.Document, _ *Options) []Diagnostic {
	if doc.Meta == nil || !doc.Meta.Has("disable-model-invocation") {
		return nil
	}

	// No coercion here: "true" the string and true the boolean express
	// different author intent, so anything non-boolean is an error.
	if _, isBool := doc.Field("disable-model-invocation").AsBool(); !isBool {
		return []Diagnostic{{
			Severity: Error,
			RuleID:   "disable-model-invocation",
			Message:  "'disable-model-invocation' must be a boolean (true/false)",
			Path:     doc.Path,
		}}
	}
	return nil
}
