// Package rules holds the validation rule catalogue for command documents.
package rules

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/aidanlsb/cmdlint/internal/document"
)

// Severity classifies a diagnostic.
type Severity int

const (
	Pass Severity = iota
	Info
	Warning
	Error
)

func (s Severity) String() string {
	switch s {
	case Pass:
		return "PASS"
	case Info:
		return "INFO"
	case Warning:
		return "WARN"
	case Error:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// MarshalJSON renders the severity as its lowercase name.
func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(strings.ToLower(s.String()))
}

// Diagnostic is a single finding for a document.
type Diagnostic struct {
	Severity Severity `json:"severity"`
	RuleID   string   `json:"rule"`
	Message  string   `json:"message"`
	Path     string   `json:"path"`
	Line     int      `json:"line,omitempty"`
}

// Rule is one independent check. Check must not mutate the document.
type Rule struct {
	ID    string
	Check func(doc *document.Document, opts *Options) []Diagnostic
}

// KnownFields are the recognized frontmatter field names.
var KnownFields = map[string]bool{
	"allowed-tools":            true,
	"argument-hint":            true,
	"description":              true,
	"model":                    true,
	"disable-model-invocation": true,
}

// Options carries the configurable parts of the catalogue.
type Options struct {
	// Models is the known-good model identifier set. Unrecognized models
	// warn, never error: the list goes stale.
	Models map[string]bool

	// ToolPatterns is the tool-name grammar. Tokens matching none of the
	// patterns warn.
	ToolPatterns []*regexp.Regexp

	// DescriptionMin and DescriptionMax bound the description length
	// before a "too short" / "too long" warning fires.
	DescriptionMin int
	DescriptionMax int
}

// DefaultModels is the built-in model allow-list.
var DefaultModels = []string{
	"claude-3-5-sonnet-20241022",
	"claude-3-5-haiku-20241022",
	"claude-opus-4-20250514",
	"claude-sonnet-4-5-20250929",
}

var defaultToolPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^Read$`),
	regexp.MustCompile(`^Write$`),
	regexp.MustCompile(`^Edit$`),
	regexp.MustCompile(`^View$`),
	regexp.MustCompile(`^Grep$`),
	regexp.MustCompile(`^Glob$`),
	regexp.MustCompile(`^Task$`),
	regexp.MustCompile(`^TodoWrite$`),
	regexp.MustCompile(`^Create$`),
	regexp.MustCompile(`^WebFetch$`),
	regexp.MustCompile(`^WebSearch$`),
	regexp.MustCompile(`^Bash(\(.+\))?$`),
	regexp.MustCompile(`^SlashCommand.*$`),
	regexp.MustCompile(`^mcp__.+$`),
}

// DefaultOptions returns the built-in rule configuration.
func DefaultOptions() *Options {
	models := make(map[string]bool, len(DefaultModels))
	for _, m := range DefaultModels {
		models[m] = true
	}
	return &Options{
		Models:         models,
		ToolPatterns:   defaultToolPatterns,
		DescriptionMin: 10,
		DescriptionMax: 200,
	}
}

// AddToolPattern appends an extra tool-name pattern (from configuration).
func (o *Options) AddToolPattern(pattern string) error {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return err
	}
	o.ToolPatterns = append(o.ToolPatterns, re)
	return nil
}

// Catalog returns the full ordered rule list. The order is fixed for
// stable output, though checks are independent of one another.
func Catalog() []Rule {
	return []Rule{
		{ID: "frontmatter-present", Check: checkFrontmatterPresent},
		{ID: "known-fields", Check: checkKnownFields},
		{ID: "description", Check: checkDescription},
		{ID: "allowed-tools", Check: checkAllowedTools},
		{ID: "model", Check: checkModel},
		{ID: "argument-hint", Check: checkArgumentHint},
		{ID: "disable-model-invocation", Check: checkDisableModelInvocation},
		{ID: "body-present", Check: checkBodyPresent},
		{ID: "shell-permission", Check: checkShellPermission},
		{ID: "argument-style", Check: checkArgumentStyle},
		{ID: "file-references", Check: checkFileReferences},
		{ID: "thinking-mode", Check: checkThinkingMode},
		{ID: "command-name", Check: checkCommandName},
	}
}

// Run evaluates every rule in the catalogue against the document.
func Run(doc *document.Document, catalog []Rule, opts *Options) []Diagnostic {
	var diags []Diagnostic
	for _, rule := range catalog {
		diags = append(diags, rule.Check(doc, opts)...)
	}
	return diags
}
