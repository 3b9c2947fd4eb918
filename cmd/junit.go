package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/radiofrance/xmlreport/pkg/junit"
	"github.com/radiofrance/xmlreport/pkg/strutil"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

const (
	defaultScreenshotsDir = "screenshots"
	defaultJobs           = 4
)

func junitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "junit JUNIT_FILE...",
		Short: "Shorten class names and attach screenshots in JUnit reports",
		Long: `xmlreport junit rewrites JUnit reports in place.

The classname of every test case is shortened to the part after its last dot, and every
screenshot whose file name contains the name of a test case is referenced from the
<system-out> of that test case as "[[ATTACHMENT|<path>]]".`,
		Args: cobra.MinimumNArgs(1),
		RunE: junitAction,
	}

	cmd.Flags().String("screenshots-dir", defaultScreenshotsDir,
		"Directory containing the screenshots taken during the tests. Ignored when it does not exist.")
	cmd.Flags().StringSlice("screenshot-pattern", junit.DefaultScreenshotPatterns,
		"Patterns (dockerignore syntax) of the files to consider as screenshots.")
	cmd.Flags().Int("jobs", defaultJobs, "Number of reports rewritten in parallel.")
	cmd.Flags().Bool("summary", false, "Print a table summarizing every rewritten report.")

	return cmd
}

func junitAction(cmd *cobra.Command, args []string) error {
	bindPFlagsSnakeCase(cmd.Flags())

	opts := junit.Opts{}
	hydrateOptsFromViper(&opts)

	return doJunit(cmd.Context(), afero.NewOsFs(), cmd.OutOrStdout(), args, opts)
}

func doJunit(ctx context.Context, fs afero.Fs, out io.Writer, reports []string, opts junit.Opts) error {
	screenshots, err := junit.LoadScreenshots(fs, opts.ScreenshotsDir, opts.ScreenshotPatterns)
	if err != nil {
		return err
	}

	// A report listed twice would be rewritten by two workers at once.
	reports = strutil.DedupeStrSlice(reports)

	stats, err := junit.NewRewriter(fs, screenshots).RewriteAll(ctx, reports, opts.Jobs)
	if err != nil {
		return fmt.Errorf("junit rewrite failed: %w", err)
	}

	if opts.Summary {
		junit.RenderSummary(out, stats)
	}

	return nil
}
