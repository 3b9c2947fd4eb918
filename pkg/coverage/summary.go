package coverage

import (
	"io"

	"github.com/olekukonko/tablewriter"
)

const (
	statusResolved = "resolved"
	statusDropped  = "dropped"
)

// RenderSummary prints one row per class of the result as a borderless table.
func RenderSummary(w io.Writer, result Result) {
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
	for _, resolution := range result.Resolved {
		data = append(data, []string{resolution.Original, statusResolved, resolution.Path})
	}
	for _, filename := range result.Dropped {
		data = append(data, []string{filename, statusDropped, ""})
	}

	table.AppendBulk(data)

	table.SetHeader([]string{"Class file", "Status", "Path"})
	table.Render()
}
