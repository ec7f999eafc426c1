package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/akfite/dirlist/internal/core/lister"
)

// Print functions for consistent output

// Error prints an error message to stderr
func Error(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "%s %s\n", ErrorIcon, ErrorStyle.Render(fmt.Sprintf(format, args...)))
}

// Info prints an informational message
func Info(format string, args ...interface{}) {
	fmt.Printf("%s\n", InfoStyle.Render(fmt.Sprintf(format, args...)))
}

// OutputLine prints a formatted line to stdout
func OutputLine(format string, args ...interface{}) {
	fmt.Printf(format+"\n", args...)
}

// PrintTSV prints rows as tab-separated values for scripting
func PrintTSV(rows [][]string) {
	for _, row := range rows {
		fmt.Println(strings.Join(row, "\t"))
	}
}

// PrintListing displays a directory listing as a table
func PrintListing(dir string, listing *lister.Listing) {
	if len(listing.Entries) == 0 {
		OutputLine("%s", DimStyle.Render(fmt.Sprintf("%s is empty", dir)))
		return
	}

	tbl := NewTable("NAME", "TYPE", "PATH")
	for _, e := range listing.Entries {
		tbl.AddRow(e.Name, TypeStyle(e.Type).Render(e.Type.String()), e.Path)
	}
	tbl.Print()
}

// PrintTypeTable displays the stable entry type code table
func PrintTypeTable() {
	tbl := NewTable("CODE", "TYPE")
	for code := lister.TypeNone; code <= lister.TypeUnknown; code++ {
		tbl.AddRow(fmt.Sprintf("%d", uint8(code)), TypeStyle(code).Render(code.String()))
	}
	tbl.Print()
}
