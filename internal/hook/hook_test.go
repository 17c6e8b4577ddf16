package hook

import (
	"strings"
	"testing"
)

func TestCheckPrompt(t *testing.T) {
	tests := []struct {
		name      string
		prompt    string
		wantBlock bool
	}{
		{"plain prompt", "please refactor the parser", false},
		{"api key", `set API_KEY=abcdefghijklmnopqrstuvwx in the env`, true},
		{"openai style key", "use sk-" + strings.Repeat("a1", 20), true},
		{"github token", "token ghp_" + strings.Repeat("x", 36), true},
		{"bearer header", "Authorization: Bearer abc123def456", true},
		{"password mention without value", "what makes a good password?", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := CheckPrompt(tt.prompt)
			if d.Blocked() != tt.wantBlock {
				t.Errorf("Blocked() = %v, want %v (reason=%q)", d.Blocked(), tt.wantBlock, d.Reason)
			}
			if !tt.wantBlock && d.Context == "" {
				t.Error("allowed prompt should carry a context line")
			}
		})
	}
}

func TestCheckBash(t *testing.T) {
	tests := []struct {
		name     string
		command  string
		wantDeny bool
	}{
		{"plain command", "go test ./...", false},
		{"grep denied", "grep pattern file.go", true},
		{"grep with long flag allowed", "grep --version", false},
		{"ripgrep denied", "rg TODO", true},
		{"find denied", "find . -name '*.go'", true},
		{"rm -rf root denied", "rm -rf /etc", true},
		{"rm -rf tmp allowed", "rm -rf /tmp/build", false},
		{"rm -rf var allowed", "rm -rf /var/cache/thing", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := CheckBash(Context{ToolName: "Bash", ToolInput: ToolInput{Command: tt.command}})
			denied := d.PermissionDecision == "deny"
			if denied != tt.wantDeny {
				t.Errorf("decision = %q, want deny=%v (reason=%q)", d.PermissionDecision, tt.wantDeny, d.Reason)
			}
		})
	}

	t.Run("non-bash tools pass through", func(t *testing.T) {
		d := CheckBash(Context{ToolName: "Write", ToolInput: ToolInput{Command: "rm -rf /"}})
		if d.PermissionDecision != "allow" {
			t.Errorf("decision = %q, want allow", d.PermissionDecision)
		}
	})
}
