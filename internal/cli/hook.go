package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/cmdlint/internal/hook"
	"github.com/aidanlsb/cmdlint/internal/ui"
)

var hookCmd = &cobra.Command{
	Use:   "hook",
	Short: "Runtime hooks for agent sessions",
	Long: `Runtime hooks that screen agent activity. Each subcommand reads a
JSON hook context on stdin and prints a JSON decision on stdout.

Hooks fail open: if stdin cannot be decoded, the action is allowed.`,
}

var hookPromptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Screen a submitted prompt for secrets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, ok := readHookContext(cmd.InOrStdin())
		if !ok {
			// Fail open: emit an empty decision so the prompt proceeds.
			printHookJSON(hook.PromptDecision{})
			return nil
		}

		decision := hook.CheckPrompt(ctx.Prompt)
		if decision.Blocked() {
			printHookJSON(decision)
			return nil
		}

		// Allowed prompts get a context line instead of a decision object.
		fmt.Fprintln(cmd.OutOrStdout(), decision.Context)
		return nil
	},
}

var hookBashCmd = &cobra.Command{
	Use:   "bash",
	Short: "Screen a shell command before the Bash tool runs it",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, ok := readHookContext(cmd.InOrStdin())
		if !ok {
			printHookJSON(hook.BashDecision{PermissionDecision: "allow"})
			return nil
		}

		printHookJSON(hook.CheckBash(ctx))
		return nil
	},
}

// readHookContext decodes the hook payload from stdin. A terminal stdin
// or malformed JSON yields ok=false so callers can fail open.
func readHookContext(r io.Reader) (hook.Context, bool) {
	if r == os.Stdin && ui.StdinIsTerminal() {
		return hook.Context{}, false
	}

	var ctx hook.Context
	if err := json.NewDecoder(r).Decode(&ctx); err != nil {
		return hook.Context{}, false
	}
	return ctx, true
}

func printHookJSON(v interface{}) {
	enc := json.NewEncoder(os.Stdout)
	_ = enc.Encode(v)
}

func init() {
	hookCmd.AddCommand(hookPromptCmd)
	hookCmd.AddCommand(hookBashCmd)
	rootCmd.AddCommand(hookCmd)
}
