// Package report aggregates per-document results across a run.
package report

import (
	"sort"
	"sync"

	"github.com/aidanlsb/cmdlint/internal/fixer"
	"github.com/aidanlsb/cmdlint/internal/rules"
)

// Classification is the per-document verdict.
type Classification int

const (
	Valid Classification = iota
	ValidWithWarnings
	Invalid
)

func (c Classification) String() string {
	switch c {
	case Valid:
		return "valid"
	case ValidWithWarnings:
		return "valid-with-warnings"
	default:
		return "invalid"
	}
}

// FileResult holds everything produced for one document.
type FileResult struct {
	Path        string             `json:"path"`
	Diagnostics []rules.Diagnostic `json:"diagnostics,omitempty"`
	Records     []fixer.FixRecord  `json:"fixes,omitempty"`
	Fixed       bool               `json:"fixed,omitempty"`
}

// Classification derives the verdict from the diagnostics: any Error is
// invalid, any Warning downgrades to valid-with-warnings, otherwise valid.
// Info findings never affect the verdict.
func (r *FileResult) Classification() Classification {
	c := Valid
	for _, d := range r.Diagnostics {
		switch d.Severity {
		case rules.Error:
			return Invalid
		case rules.Warning:
			c = ValidWithWarnings
		}
	}
	return c
}

// Errors returns only the error-severity diagnostics.
func (r *FileResult) Errors() []rules.Diagnostic {
	return r.filter(rules.Error)
}

// Warnings returns only the warning-severity diagnostics.
func (r *FileResult) Warnings() []rules.Diagnostic {
	return r.filter(rules.Warning)
}

// Infos returns only the info-severity diagnostics.
func (r *FileResult) Infos() []rules.Diagnostic {
	return r.filter(rules.Info)
}

func (r *FileResult) filter(s rules.Severity) []rules.Diagnostic {
	var out []rules.Diagnostic
	for _, d := range r.Diagnostics {
		if d.Severity == s {
			out = append(out, d)
		}
	}
	return out
}

// Summary collects results for a whole run. Add is safe for concurrent
// use; everything else expects the run to be finished.
type Summary struct {
	mu      sync.Mutex
	results []*FileResult
}

// Add records one document's result.
func (s *Summary) Add(r *FileResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = append(s.results, r)
}

// Results returns all results sorted by path.
func (s *Summary) Results() []*FileResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*FileResult, len(s.results))
	copy(out, s.results)
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

// Tally holds the run-level counts.
type Tally struct {
	Files    int `json:"files"`
	Passed   int `json:"passed"`
	Warnings int `json:"warnings"`
	Failed   int `json:"failed"`
	Fixed    int `json:"fixed"`
}

// Tally computes the run counts. Each document contributes exactly one
// verdict: at most one pass, issued only when it has zero warnings and
// zero errors.
func (s *Summary) Tally() Tally {
	t := Tally{}
	for _, r := range s.Results() {
		t.Files++
		switch r.Classification() {
		case Valid:
			t.Passed++
		case ValidWithWarnings:
			t.Warnings++
		case Invalid:
			t.Failed++
		}
		if r.Fixed || len(r.Records) > 0 {
			t.Fixed++
		}
	}
	return t
}

// ExitCode maps the tally to a process exit status. Warnings alone never
// fail the run unless strict is set.
func (s *Summary) ExitCode(strict bool) int {
	t := s.Tally()
	if t.Failed > 0 {
		return 1
	}
	if strict && t.Warnings > 0 {
		return 1
	}
	return 0
}
