package rules

import "testing"

func TestArgumentMarkers(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		wantCatchAll bool
		wantMax      int
	}{
		{"none", "plain body", false, 0},
		{"catch-all only", "run with $ARGUMENTS", true, 0},
		{"positional only", "first $1 then $3", false, 3},
		{"gap keeps max", "$1 and $3 but no $2... wait, now there is", false, 3},
		{"both", "$ARGUMENTS and $2", true, 2},
		{"dollar without digits ignored", "costs $US and $var", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			usage := ArgumentMarkers(tt.body)
			if usage.CatchAll != tt.wantCatchAll {
				t.Errorf("CatchAll = %v, want %v", usage.CatchAll, tt.wantCatchAll)
			}
			if got := usage.MaxPosition(); got != tt.wantMax {
				t.Errorf("MaxPosition = %d, want %d", got, tt.wantMax)
			}
		})
	}
}

func TestExecMarkers(t *testing.T) {
	body := "Current status: !`git status`\nDiff: !`git diff --staged`\nNot a marker: `ls`\n"
	cmds := ExecMarkers(body)
	if len(cmds) != 2 {
		t.Fatalf("cmds = %v, want 2", cmds)
	}
	if cmds[0] != "git status" || cmds[1] != "git diff --staged" {
		t.Errorf("cmds = %v", cmds)
	}
}

func TestFileRefs(t *testing.T) {
	body := "See @src/main.go and @docs/guide.md plus email me@example.com\n"
	refs := FileRefs(body)
	if len(refs) < 2 {
		t.Fatalf("refs = %v", refs)
	}
	if refs[0] != "src/main.go" {
		t.Errorf("refs[0] = %q", refs[0])
	}
}

func TestThinkingKeywords(t *testing.T) {
	if !ThinkingKeywords("please <think> hard") {
		t.Error("expected detection")
	}
	if ThinkingKeywords("no keywords here") {
		t.Error("unexpected detection")
	}
}
