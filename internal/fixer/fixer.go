// Package fixer applies deterministic, idempotent repairs to command
// documents. Only a subset of rule violations is fixable; everything else
// is left for the validator to report.
package fixer

import (
	"fmt"
	"strings"

	"github.com/aidanlsb/cmdlint/internal/document"
	"github.com/aidanlsb/cmdlint/internal/rules"
)

// FixRecord describes one fix actually applied to a document.
type FixRecord struct {
	RuleID      string `json:"rule"`
	Description string `json:"description"`
}

// coercibleFields have a canonical string type but are sometimes written
// as YAML lists.
var coercibleFields = []string{"description", "argument-hint"}

// FixText parses raw content and applies every applicable fix, including
// the one-shot syntax repair when the initial parse fails. The returned
// document is a working copy; the input text is never modified in place.
// An empty record list means the file needs no rewrite.
func FixText(raw, path string) (*document.Document, []FixRecord, error) {
	var records []FixRecord

	doc, err := document.Parse(raw, path)
	if err != nil {
		repaired, repairRecords := RepairSyntax(raw)
		if len(repairRecords) == 0 {
			return nil, nil, err
		}

		// Retry exactly once. If the block still fails to decode, the
		// repair is abandoned and the original error stands.
		doc, err = document.Parse(repaired, path)
		if err != nil {
			return nil, nil, err
		}
		records = append(records, repairRecords...)
	}

	fixed, fixRecords := Fix(doc)
	return fixed, append(records, fixRecords...), nil
}

// Fix applies the fixable rules to a copy of doc, in a fixed order:
// sequence-to-scalar coercion, argument-hint synthesis, then
// shell-permission synthesis. Each step re-checks its precondition
// against the current working copy. The input document is not mutated.
func Fix(doc *document.Document) (*document.Document, []FixRecord) {
	work := doc.Clone()
	var records []FixRecord

	records = append(records, coerceListFields(work)...)
	records = append(records, synthesizeArgumentHint(work)...)
	records = append(records, synthesizeBashPermission(work)...)

	return work, records
}

func coerceListFields(doc *document.Document) []FixRecord {
	var records []FixRecord
	for _, name := range coercibleFields {
		items, isList := doc.Field(name).AsList()
		if !isList {
			continue
		}
		doc.SetField(name, document.String(strings.Join(items, " ")))
		records = append(records, FixRecord{
			RuleID:      name,
			Description: fmt.Sprintf("Converted %s from list to string", name),
		})
	}
	return records
}

func synthesizeArgumentHint(doc *document.Document) []FixRecord {
	if doc.Meta.Has("argument-hint") {
		return nil
	}

	usage := rules.ArgumentMarkers(doc.Body)
	switch {
	case usage.CatchAll:
		// Catch-all takes precedence when both styles appear; the mixed
		// usage itself stays a validator warning.
		doc.SetField("argument-hint", document.String("[args]"))
		return []FixRecord{{
			RuleID:      "argument-style",
			Description: "Added generic argument-hint for $ARGUMENTS usage",
		}}
	case len(usage.Positions) > 0:
		max := usage.MaxPosition()
		parts := make([]string, max)
		for i := 1; i <= max; i++ {
			parts[i-1] = fmt.Sprintf("[arg%d]", i)
		}
		doc.SetField("argument-hint", document.String(strings.Join(parts, " ")))
		return []FixRecord{{
			RuleID:      "argument-style",
			Description: fmt.Sprintf("Added argument-hint for positional arguments ($1-$%d)", max),
		}}
	}
	return nil
}

func synthesizeBashPermission(doc *document.Document) []FixRecord {
	if len(rules.ExecMarkers(doc.Body)) == 0 {
		return nil
	}

	value := doc.Field("allowed-tools")
	if rules.HasBashTool(value) {
		return nil
	}

	switch value.Kind() {
	case document.KindAbsent:
		doc.SetField("allowed-tools", document.String("Bash"))
		return []FixRecord{{
			RuleID:      "shell-permission",
			Description: "Added allowed-tools with Bash for shell execution",
		}}
	case document.KindString:
		s, _ := value.AsString()
		doc.SetField("allowed-tools", document.String(s+", Bash"))
	case document.KindList:
		items, _ := value.AsList()
		doc.SetField("allowed-tools", document.List(append(items, "Bash")))
	default:
		// A boolean allowed-tools is a type error, not something the
		// fixer may guess at.
		return nil
	}

	return []FixRecord{{
		RuleID:      "shell-permission",
		Description: "Added Bash to allowed-tools",
	}}
}
