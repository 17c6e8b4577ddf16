// Package hook implements the runtime prompt and tool-use hooks: a
// secret scan for submitted prompts and a deny-list for shell commands.
// Both read a JSON context on stdin and answer with a JSON decision, and
// both fail open when the context cannot be decoded.
package hook

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Context is the hook input payload.
type Context struct {
	Prompt    string    `json:"prompt,omitempty"`
	ToolName  string    `json:"toolName,omitempty"`
	ToolInput ToolInput `json:"toolInput,omitempty"`
}

// ToolInput carries the tool parameters relevant to hooks.
type ToolInput struct {
	Command  string `json:"command,omitempty"`
	FilePath string `json:"file_path,omitempty"`
}

// PromptDecision is the answer for a prompt-submission hook.
type PromptDecision struct {
	Decision      string `json:"decision,omitempty"`
	Reason        string `json:"reason,omitempty"`
	SystemMessage string `json:"systemMessage,omitempty"`

	// Context is the timestamped line shown to the user when the prompt
	// is allowed.
	Context string `json:"-"`
}

// Blocked returns true when the prompt must not proceed.
func (d PromptDecision) Blocked() bool {
	return d.Decision == "block"
}

// BashDecision is the answer for a pre-tool-use hook.
type BashDecision struct {
	PermissionDecision string            `json:"permissionDecision"`
	Reason             string            `json:"reason,omitempty"`
	Output             map[string]string `json:"hookSpecificOutput,omitempty"`
}

type secretPattern struct {
	re   *regexp.Regexp
	name string
}

var secretPatterns = []secretPattern{
	{regexp.MustCompile(`(?i)(api[_-]?key|apikey)\s*[:=]\s*["']?[a-zA-Z0-9]{20,}`), "API key assignment"},
	{regexp.MustCompile(`(?i)(password|passwd|pwd)\s*[:=]\s*(["'][^"']{8,}["']|[^\s]{8,})`), "password assignment"},
	{regexp.MustCompile(`sk-[a-zA-Z0-9]{32,}`), "sk- style key"},
	{regexp.MustCompile(`ghp_[a-zA-Z0-9]{36}`), "GitHub token"},
	{regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`), "bearer token"},
}

type unsafePattern struct {
	re     *regexp.Regexp
	reason string

	// allowed exempts a match; RE2 has no lookahead, so the exceptions
	// live here instead of in the pattern.
	allowed func(match []string) bool
}

var unsafePatterns = []unsafePattern{
	{
		re:      regexp.MustCompile(`\bgrep\b\s*(\S*)`),
		reason:  "Use the Grep tool instead of the grep command",
		allowed: func(m []string) bool { return strings.HasPrefix(m[1], "--") },
	},
	{
		re:     regexp.MustCompile(`\brg\b`),
		reason: "Use the Grep tool instead of ripgrep",
	},
	{
		re:     regexp.MustCompile(`\bfind\b`),
		reason: "Use the Glob tool instead of the find command",
	},
	{
		re:     regexp.MustCompile(`rm\s+-rf\s+/(\S*)`),
		reason: "Dangerous rm -rf on a root directory",
		allowed: func(m []string) bool {
			return strings.HasPrefix(m[1], "tmp") || strings.HasPrefix(m[1], "var")
		},
	},
}

// CheckPrompt scans a prompt for secret-looking content.
func CheckPrompt(prompt string) PromptDecision {
	for _, p := range secretPatterns {
		if p.re.MatchString(prompt) {
			return PromptDecision{
				Decision:      "block",
				Reason:        fmt.Sprintf("Potential secret detected: %s", p.name),
				SystemMessage: "Prompt contains potential secrets. Please review and remove sensitive data.",
			}
		}
	}

	timestamp := time.Now().UTC().Format(time.RFC3339)
	return PromptDecision{
		Context: fmt.Sprintf("[%s] Prompt validated - no secrets detected", timestamp),
	}
}

// CheckBash screens a shell command against the deny-list. Only the Bash
// tool is screened; every other tool is allowed through.
func CheckBash(ctx Context) BashDecision {
	if ctx.ToolName != "" && ctx.ToolName != "Bash" {
		return BashDecision{PermissionDecision: "allow"}
	}

	command := ctx.ToolInput.Command
	for _, p := range unsafePatterns {
		m := p.re.FindStringSubmatch(command)
		if m == nil {
			continue
		}
		if p.allowed != nil && p.allowed(m) {
			continue
		}

		truncated := command
		if len(truncated) > 100 {
			truncated = truncated[:100]
		}
		return BashDecision{
			PermissionDecision: "deny",
			Reason:             p.reason,
			Output: map[string]string{
				"pattern": p.re.String(),
				"command": truncated,
			},
		}
	}

	return BashDecision{PermissionDecision: "allow"}
}
