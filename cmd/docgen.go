package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

const docFrontMatter = `---
title: "%s"
---
`

func docgenCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:    "docgen",
		Short:  "Generate the markdown documentation of the CLI commands.",
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE:   docgenAction,
	}
	cmd.Flags().String("path", "./docs/cmd", "directory to write the generated documentation to")

	return cmd
}

func docgenAction(cmd *cobra.Command, _ []string) error {
	docPath, err := cmd.Flags().GetString("path")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(docPath, 0o750); err != nil {
		return fmt.Errorf("failed to create documentation directory: %w", err)
	}

	return doc.GenMarkdownTreeCustom(rootCmd, docPath, docFilePrepender, docLinkHandler)
}

// docFilePrepender turns "xmlreport_coverage.md" into a page titled "xmlreport coverage".
func docFilePrepender(filename string) string {
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	return fmt.Sprintf(docFrontMatter, strings.ReplaceAll(base, "_", " "))
}

func docLinkHandler(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	return "../" + strings.ToLower(base) + "/"
}
