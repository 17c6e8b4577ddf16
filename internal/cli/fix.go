package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/cmdlint/internal/report"
	"github.com/aidanlsb/cmdlint/internal/scan"
	"github.com/aidanlsb/cmdlint/internal/ui"
)

var (
	fixDryRun bool
	fixJobs   int
)

var fixCmd = &cobra.Command{
	Use:   "fix [dir]",
	Short: "Auto-fix command files",
	Long: `Repair common mistakes in command files under a directory
(default ./commands).

Applied fixes:
  - quote bracketed values that break YAML parsing
  - coerce accidental list values for description and argument-hint
  - add argument-hint when the body uses $ARGUMENTS or positional $N
  - add Bash to allowed-tools when the body runs shell commands

Files are rewritten atomically, and only when at least one fix applied.
With --dry-run the fixes are reported but nothing is written.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := defaultCommandsDir
		if len(args) == 1 {
			dir = args[0]
		}

		files, err := scan.Collect(dir)
		if err != nil {
			return handleError(ErrDirNotFound, err, "Pass the commands directory as an argument")
		}

		opts := getRuleOptions()
		summary := scan.Run(files, fixJobs, func(path string) *report.FileResult {
			return fixFile(path, opts, fixDryRun)
		})

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"directory": dir,
				"dry_run":   fixDryRun,
				"results":   summary.Results(),
				"tally":     summary.Tally(),
			}, &Meta{Count: len(files)})
			return nil
		}

		renderFixResults(dir, summary)
		return nil
	},
}

func renderFixResults(dir string, summary *report.Summary) {
	results := summary.Results()
	tally := summary.Tally()

	verb := "Fixing"
	if fixDryRun {
		verb = "Previewing fixes for"
	}
	fmt.Printf("%s commands: %s\n", verb, ui.FilePath(dir))
	fmt.Println(ui.Hint(ui.Count(tally.Files, "command file", "command files")))
	fmt.Println()

	for _, r := range results {
		if len(r.Records) == 0 {
			if len(r.Errors()) > 0 {
				fmt.Printf("%s %s %s\n", ui.SymbolError, ui.FilePath(r.Path), ui.Count(len(r.Errors()), "error", "errors"))
				renderDiagnostics(r, false)
			}
			continue
		}

		fmt.Printf("%s %s %s\n", ui.SymbolSuccess, ui.FilePath(r.Path), ui.Count(len(r.Records), "fix", "fixes"))
		for _, rec := range r.Records {
			fmt.Printf("    %s %s\n", ui.Hint("•"), rec.Description)
		}
		if remaining := len(r.Errors()); remaining > 0 {
			fmt.Printf("    %s\n", ui.Hint(fmt.Sprintf("%d unfixable %s remain", remaining, pluralizeIssue(remaining))))
		}
	}

	fmt.Println()
	if tally.Fixed == 0 {
		fmt.Println(ui.Successf("No fixes needed in %d files", tally.Files))
		return
	}
	if fixDryRun {
		fmt.Println(ui.Info(fmt.Sprintf("Would fix %d of %d files (dry run)", tally.Fixed, tally.Files)))
		return
	}
	fmt.Println(ui.Successf("Fixed %d of %d files", tally.Fixed, tally.Files))
}

func pluralizeIssue(n int) string {
	if n == 1 {
		return "issue"
	}
	return "issues"
}

func init() {
	fixCmd.Flags().BoolVar(&fixDryRun, "dry-run", false, "Report fixes without writing files")
	fixCmd.Flags().IntVarP(&fixJobs, "jobs", "j", 0, "Number of parallel workers (0 = number of CPUs)")
	rootCmd.AddCommand(fixCmd)
}
