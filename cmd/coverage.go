package cmd

import (
	"fmt"
	"io"

	"github.com/radiofrance/xmlreport/internal/logger"
	"github.com/radiofrance/xmlreport/pkg/coverage"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func coverageCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coverage COVERAGE_FILE",
		Short: "Resolve class filenames of a coverage report against its source directories",
		Long: `xmlreport coverage rewrites a Cobertura coverage report in place.

Every class filename is replaced by the first "<source>/<filename>" path that exists,
trying the <sources> of the report in order. Classes whose file cannot be found under any
source directory are removed from the report, and a warning is printed for each of them.

The rewrite is not idempotent: running it a second time on its own output removes every class.`,
		Args: exactlyOneReport,
		RunE: coverageAction,
	}

	cmd.Flags().Bool("summary", false, "Print a table of resolved and dropped classes.")
	cmd.Flags().String("report-file", "",
		"Write the list of resolved and dropped classes to this file, as YAML.")

	return cmd
}

// exactlyOneReport prints the usage before failing, since usage is silenced on the root command.
func exactlyOneReport(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		_ = cmd.Usage()
		return fmt.Errorf("expected exactly one coverage report, got %d arguments", len(args))
	}
	return nil
}

func coverageAction(cmd *cobra.Command, args []string) error {
	bindPFlagsSnakeCase(cmd.Flags())

	opts := coverage.Opts{}
	hydrateOptsFromViper(&opts)

	return doCoverage(afero.NewOsFs(), cmd.OutOrStdout(), args[0], opts)
}

func doCoverage(fs afero.Fs, out io.Writer, reportPath string, opts coverage.Opts) error {
	result, err := coverage.NewResolver(fs).Resolve(reportPath)
	if err != nil {
		return fmt.Errorf("coverage resolution failed: %w", err)
	}

	if opts.ReportFile != "" {
		if err := coverage.WriteResultFile(fs, opts.ReportFile, result); err != nil {
			return err
		}
		logger.Debugf("Resolution result written to %s", opts.ReportFile)
	}

	if opts.Summary {
		coverage.RenderSummary(out, result)
	}

	return nil
}
