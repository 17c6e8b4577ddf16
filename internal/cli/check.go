package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/cmdlint/internal/report"
	"github.com/aidanlsb/cmdlint/internal/rules"
	"github.com/aidanlsb/cmdlint/internal/scan"
	"github.com/aidanlsb/cmdlint/internal/ui"
)

var (
	checkStrict  bool
	checkVerbose bool
	checkJobs    int
)

var checkCmd = &cobra.Command{
	Use:   "check [dir]",
	Short: "Validate command files",
	Long: `Validate every command file under a directory (default ./commands).

Checks frontmatter structure, field types and values, and the command body.
Exits non-zero when any file is invalid, or with --strict when any file
carries warnings.`,
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
		summary := scan.Run(files, checkJobs, func(path string) *report.FileResult {
			return checkFile(path, opts)
		})

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"directory": dir,
				"results":   summary.Results(),
				"tally":     summary.Tally(),
			}, &Meta{Count: len(files)})
		} else {
			renderCheckResults(dir, summary)
		}

		if code := summary.ExitCode(checkStrict); code != 0 {
			os.Exit(code)
		}
		return nil
	},
}

func renderCheckResults(dir string, summary *report.Summary) {
	results := summary.Results()
	tally := summary.Tally()

	fmt.Printf("Checking commands: %s\n", ui.FilePath(dir))
	fmt.Println(ui.Hint(ui.Count(tally.Files, "command file", "command files")))
	fmt.Println()

	var invalid, warned, valid []*report.FileResult
	for _, r := range results {
		switch r.Classification() {
		case report.Invalid:
			invalid = append(invalid, r)
		case report.ValidWithWarnings:
			warned = append(warned, r)
		default:
			valid = append(valid, r)
		}
	}

	for _, r := range invalid {
		fmt.Printf("%s %s %s\n", ui.SymbolError, ui.FilePath(r.Path), ui.ErrorWarningCounts(len(r.Errors()), len(r.Warnings())))
		renderDiagnostics(r, checkVerbose)
	}
	for _, r := range warned {
		fmt.Printf("%s %s %s\n", ui.SymbolWarning, ui.FilePath(r.Path), ui.Count(len(r.Warnings()), "warning", "warnings"))
		renderDiagnostics(r, checkVerbose)
	}
	for _, r := range valid {
		fmt.Printf("%s %s\n", ui.SymbolSuccess, ui.FilePath(r.Path))
		if checkVerbose {
			renderDiagnostics(r, true)
		}
	}

	fmt.Println()
	switch {
	case tally.Failed > 0:
		fmt.Println(ui.Errorf("%d of %d files invalid", tally.Failed, tally.Files))
	case tally.Warnings > 0:
		fmt.Println(ui.Warning(fmt.Sprintf("%d files valid, %d with warnings", tally.Passed, tally.Warnings)))
	default:
		fmt.Println(ui.Successf("All %d files valid", tally.Files))
	}
}

// renderDiagnostics prints one indented line per finding, errors first.
// Info findings only appear with verbose.
func renderDiagnostics(r *report.FileResult, verbose bool) {
	for _, d := range r.Errors() {
		fmt.Printf("    %s %s\n", ui.SymbolError, diagnosticLine(d))
	}
	for _, d := range r.Warnings() {
		fmt.Printf("    %s %s\n", ui.SymbolWarning, diagnosticLine(d))
	}
	if verbose {
		for _, d := range r.Infos() {
			fmt.Printf("    %s %s\n", ui.SymbolInfo, ui.Hint(diagnosticLine(d)))
		}
	}
}

func diagnosticLine(d rules.Diagnostic) string {
	if d.Line > 0 {
		return fmt.Sprintf("[%s] %s (line %d)", d.RuleID, d.Message, d.Line)
	}
	return fmt.Sprintf("[%s] %s", d.RuleID, d.Message)
}

func init() {
	checkCmd.Flags().BoolVar(&checkStrict, "strict", false, "Treat warnings as errors")
	checkCmd.Flags().BoolVarP(&checkVerbose, "verbose", "v", false, "Show informational findings")
	checkCmd.Flags().IntVarP(&checkJobs, "jobs", "j", 0, "Number of parallel workers (0 = number of CPUs)")
	rootCmd.AddCommand(checkCmd)
}
