package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leapfmt/internal/cli/config"
	"github.com/leapstack-labs/leapfmt/internal/discover"
	"github.com/leapstack-labs/leapfmt/internal/runner"
	"github.com/leapstack-labs/leapfmt/pkg/align"
)

// FmtOptions holds options for the fmt command.
type FmtOptions struct {
	All    bool // Recurse from the working directory
	DryRun bool // Report changes without writing
	Backup bool // Write .bak files before rewriting
}

// NewFmtCommand creates the fmt command.
func NewFmtCommand() *cobra.Command {
	opts := &FmtOptions{}
	cmd := &cobra.Command{
		Use:   "fmt [files...]",
		Short: "Align INSERT VALUES tuples in SQL files",
		Long: `Rewrite the VALUES clause of INSERT statements so each column of
literal values lines up vertically: numeric columns right-aligned,
strings and NULLs left-aligned. Everything outside INSERT ... VALUES
statements passes through byte for byte.

With no arguments, reads SQL from stdin and writes the formatted
result to stdout. Directory arguments are searched recursively for
.sql files. Statements that fail to parse are reported and left
untouched; the rest of the file is still formatted.`,
		Example: `  # Format stdin to stdout
  cat seed.sql | leapfmt fmt

  # Format files in place
  leapfmt fmt seeds/users.sql seeds/routes.sql

  # Format every .sql file under the current directory
  leapfmt fmt --all

  # Show what would change without writing
  leapfmt fmt --all --dry-run`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFmt(cmd, opts, args)
		},
	}

	cmd.Flags().BoolVarP(&opts.All, "all", "a", false, "Format all SQL files in the current directory and subdirectories")
	cmd.Flags().BoolVarP(&opts.DryRun, "dry-run", "d", false, "Show formatting changes without modifying files")
	cmd.Flags().BoolVarP(&opts.Backup, "backup", "b", false, "Create .bak files before formatting")

	return cmd
}

func runFmt(cmd *cobra.Command, opts *FmtOptions, args []string) error {
	cmdCtx := NewCommandContext(cmd)

	if len(args) == 0 && !opts.All {
		return formatStdin(cmd, cmdCtx)
	}

	paths, err := resolveTargets(args, opts.All, cmdCtx.Cfg)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		cmdCtx.Renderer.Println("No SQL files found")
		return nil
	}
	cmdCtx.Logger.Debug("formatting files", "count", len(paths))

	results := runner.Run(cmd.Context(), paths, runner.Options{
		DryRun: opts.DryRun,
		Backup: opts.Backup || cmdCtx.Cfg.Backup,
		Jobs:   cmdCtx.Cfg.Jobs,
	}, cmdCtx.Logger)

	r := cmdCtx.Renderer
	var rewritten, unchanged, errored int
	for _, res := range results {
		if res.Err != nil {
			errored++
			r.Errorf("Error: %v\n", res.Err)
			continue
		}
		for _, e := range res.Errs {
			r.Errorf("%s:%s\n", res.Path, e)
		}
		switch {
		case res.Status == runner.StatusError:
			errored++
		case res.Changed && opts.DryRun:
			rewritten++
			r.Printf("Would format: %s\n", r.Styles().FilePath.Render(res.Path))
		case res.Changed:
			rewritten++
			r.Printf("Formatted: %s\n", r.Styles().FilePath.Render(res.Path))
		default:
			unchanged++
		}
	}

	verb := "formatted"
	if opts.DryRun {
		verb = "would change"
	}
	r.Printf("%d %s, %d unchanged, %d with errors\n", rewritten, verb, unchanged, errored)

	if errored > 0 {
		return fmt.Errorf("%d files with errors", errored)
	}
	return nil
}

// formatStdin is the filter mode: read stdin, write the formatted
// text to stdout, report per-statement diagnostics on stderr.
func formatStdin(cmd *cobra.Command, cmdCtx *CommandContext) error {
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("failed to read stdin: %w", err)
	}

	formatted, errs := align.Format(string(data))
	if _, err := io.WriteString(cmd.OutOrStdout(), formatted); err != nil {
		return fmt.Errorf("failed to write stdout: %w", err)
	}

	for _, e := range errs {
		cmdCtx.Renderer.Errorf("<stdin>:%s\n", e)
	}
	if len(errs) > 0 {
		return fmt.Errorf("%d statements left unchanged", len(errs))
	}
	return nil
}

// resolveTargets expands command arguments to the list of files to
// format. Directory arguments are searched recursively; --all starts
// from the working directory.
func resolveTargets(args []string, all bool, cfg *config.Config) ([]string, error) {
	if all {
		return discover.SQLFiles(".", cfg.Exclude)
	}

	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", arg, err)
		}
		if info.IsDir() {
			found, err := discover.SQLFiles(arg, cfg.Exclude)
			if err != nil {
				return nil, err
			}
			paths = append(paths, found...)
			continue
		}
		paths = append(paths, arg)
	}
	return paths, nil
}
