package ui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/rodaine/table"
)

// NewTable creates a new table with consistent styling
func NewTable(headers ...interface{}) table.Table {
	tbl := table.New(headers...)

	// Bind to the current os.Stdout rather than the copy captured by the
	// library at package init
	tbl.WithWriter(os.Stdout)

	// Bold the first column (entry names)
	tbl.WithFirstColumnFormatter(func(format string, vals ...interface{}) string {
		return BoldStyle.Render(fmt.Sprintf(format, vals...))
	})

	// Add some padding
	tbl.WithPadding(2)

	// Use lipgloss Width function to properly calculate string width with ANSI codes
	tbl.WithWidthFunc(lipgloss.Width)

	return tbl
}
