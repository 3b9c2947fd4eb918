package cmd

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Set by release builds with -ldflags "-X github.com/radiofrance/xmlreport/cmd.version=...".
var (
	version = "dev"
	commit  = ""
	date    = "unknown"
)

func versionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the xmlreport version",
		Args:  cobra.NoArgs,
		RunE:  versionAction,
	}
	cmd.Flags().Bool("short", false, "Print the version number only")

	return cmd
}

func versionAction(cmd *cobra.Command, _ []string) error {
	short, err := cmd.Flags().GetBool("short")
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if short {
		_, err = fmt.Fprintln(out, version)
		return err
	}

	_, err = fmt.Fprintf(out, "xmlreport %s (commit %s, built %s, %s %s/%s)\n",
		version, buildCommit(), date, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	return err
}

// buildCommit falls back to the VCS revision recorded by the go toolchain when the
// commit was not injected at link time.
func buildCommit() string {
	if commit != "" {
		return commit
	}

	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" {
				return setting.Value
			}
		}
	}
	return "unknown"
}
