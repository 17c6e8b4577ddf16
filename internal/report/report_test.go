package report

import (
	"fmt"
	"sync"
	"testing"

	"github.com/aidanlsb/cmdlint/internal/fixer"
	"github.com/aidanlsb/cmdlint/internal/rules"
)

func diag(s rules.Severity) rules.Diagnostic {
	return rules.Diagnostic{Severity: s, RuleID: "test", Message: "m", Path: "p"}
}

func TestClassification(t *testing.T) {
	tests := []struct {
		name string
		r    FileResult
		want Classification
	}{
		{"no diagnostics", FileResult{}, Valid},
		{"info only", FileResult{Diagnostics: []rules.Diagnostic{diag(rules.Info)}}, Valid},
		{"warning", FileResult{Diagnostics: []rules.Diagnostic{diag(rules.Warning)}}, ValidWithWarnings},
		{"error wins", FileResult{Diagnostics: []rules.Diagnostic{diag(rules.Warning), diag(rules.Error)}}, Invalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Classification(); got != tt.want {
				t.Errorf("Classification() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTallyOnePassPerDocument(t *testing.T) {
	s := &Summary{}
	s.Add(&FileResult{Path: "a.md"})
	s.Add(&FileResult{Path: "b.md", Diagnostics: []rules.Diagnostic{diag(rules.Warning)}})
	s.Add(&FileResult{Path: "c.md", Diagnostics: []rules.Diagnostic{diag(rules.Error)}})
	s.Add(&FileResult{Path: "d.md", Records: []fixer.FixRecord{{RuleID: "x", Description: "y"}}})

	tally := s.Tally()
	if tally.Files != 4 || tally.Passed != 2 || tally.Warnings != 1 || tally.Failed != 1 {
		t.Errorf("tally = %+v", tally)
	}
	if tally.Fixed != 1 {
		t.Errorf("fixed = %d, want 1", tally.Fixed)
	}
}

func TestExitCode(t *testing.T) {
	warned := &Summary{}
	warned.Add(&FileResult{Path: "a.md", Diagnostics: []rules.Diagnostic{diag(rules.Warning)}})
	if warned.ExitCode(false) != 0 {
		t.Error("warnings alone must not fail the run")
	}
	if warned.ExitCode(true) != 1 {
		t.Error("strict mode should fail on warnings")
	}

	failed := &Summary{}
	failed.Add(&FileResult{Path: "a.md", Diagnostics: []rules.Diagnostic{diag(rules.Error)}})
	if failed.ExitCode(false) != 1 {
		t.Error("errors must fail the run")
	}
}

func TestConcurrentAddAndSortedResults(t *testing.T) {
	s := &Summary{}
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.Add(&FileResult{Path: fmt.Sprintf("commands/%02d.md", i)})
		}(i)
	}
	wg.Wait()

	results := s.Results()
	if len(results) != 50 {
		t.Fatalf("results = %d, want 50", len(results))
	}
	for i := 1; i < len(results); i++ {
		if results[i-1].Path > results[i].Path {
			t.Fatalf("results not sorted at %d: %s > %s", i, results[i-1].Path, results[i].Path)
		}
	}
}
