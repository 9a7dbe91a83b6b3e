package commands

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leapfmt/internal/cli/output"
	"github.com/leapstack-labs/leapfmt/internal/runner"
)

// CheckOptions holds options for the check command.
type CheckOptions struct {
	All bool
}

// checkFileResult is the per-file row of the JSON report.
type checkFileResult struct {
	Path        string   `json:"path"`
	Status      string   `json:"status"`
	Diagnostics []string `json:"diagnostics,omitempty"`
}

// checkReport is the JSON output of the check command.
type checkReport struct {
	Files     []checkFileResult `json:"files"`
	Unaligned int               `json:"unaligned"`
	Errors    int               `json:"errors"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	opts := &CheckOptions{}
	cmd := &cobra.Command{
		Use:   "check [files...]",
		Short: "Report files whose INSERT statements are not aligned",
		Long: `Verify formatting without modifying anything. Exits with status 1
when any file would be rewritten or any statement fails to parse,
which makes the command usable as a CI gate.`,
		Example: `  # Check the whole repository
  leapfmt check --all

  # Check specific files, machine-readable
  leapfmt check seeds/routes.sql --output json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, opts, args)
		},
	}

	cmd.Flags().BoolVarP(&opts.All, "all", "a", false, "Check all SQL files in the current directory and subdirectories")

	return cmd
}

func runCheck(cmd *cobra.Command, opts *CheckOptions, args []string) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	paths, err := resolveTargets(args, opts.All, cmdCtx.Cfg)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		r.Println("No SQL files found")
		return nil
	}

	results := runner.Run(cmd.Context(), paths, runner.Options{
		DryRun: true,
		Jobs:   cmdCtx.Cfg.Jobs,
	}, cmdCtx.Logger)

	report := buildCheckReport(results)

	if r.EffectiveMode() == output.ModeJSON {
		if err := r.JSON(report); err != nil {
			return err
		}
	} else {
		renderCheckTable(r, report)
	}

	if report.Unaligned > 0 || report.Errors > 0 {
		return fmt.Errorf("%d files unaligned, %d with errors", report.Unaligned, report.Errors)
	}
	return nil
}

func buildCheckReport(results []runner.Result) checkReport {
	var report checkReport
	for _, res := range results {
		fr := checkFileResult{Path: res.Path}
		switch {
		case res.Err != nil:
			fr.Status = runner.StatusError.String()
			fr.Diagnostics = []string{res.Err.Error()}
			report.Errors++
		case res.Status == runner.StatusError:
			fr.Status = runner.StatusError.String()
			for _, e := range res.Errs {
				fr.Diagnostics = append(fr.Diagnostics, e.Error())
			}
			report.Errors++
		case res.Changed:
			fr.Status = "unaligned"
			report.Unaligned++
		default:
			fr.Status = runner.StatusUnchanged.String()
		}
		report.Files = append(report.Files, fr)
	}
	return report
}

func renderCheckTable(r *output.Renderer, report checkReport) {
	t := table.NewWriter()
	t.SetOutputMirror(r.Writer())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"File", "Status", "Details"})

	for _, fr := range report.Files {
		t.AppendRow(table.Row{fr.Path, fr.Status, strings.Join(fr.Diagnostics, "; ")})
	}
	t.Render()

	if report.Unaligned == 0 && report.Errors == 0 {
		r.Success("All files aligned")
	} else {
		r.Printf("%d files unaligned, %d with errors\n", report.Unaligned, report.Errors)
	}
}
