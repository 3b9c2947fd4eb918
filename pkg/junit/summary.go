package junit

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// RenderSummary displays one row per rewritten report as a borderless table.
func RenderSummary(w io.Writer, stats []Stats) {
	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	var data [][]string
	for _, s := range stats {
		data = append(data, []string{
			s.File,
			strconv.Itoa(s.Summary.Tests),
			strconv.Itoa(s.Summary.Failures + s.Summary.Errors),
			strconv.Itoa(s.Summary.Skipped),
			strconv.Itoa(s.Renamed),
			strconv.Itoa(s.Attachments),
		})
	}

	table.AppendBulk(data)

	table.SetHeader([]string{"Report", "Tests", "Failed", "Skipped", "Renamed", "Screenshots"})
	table.Render()
}
