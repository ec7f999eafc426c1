// Package ui provides UI styling and output functions for the CLI.
package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/akfite/dirlist/internal/core/lister"
)

var (
	// ErrorStyle is the style for error messages
	ErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000"))

	// InfoStyle is the style for informational messages
	InfoStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#0099FF"))

	// DimStyle is the style for dimmed text
	DimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))

	// BoldStyle is the style for bold text
	BoldStyle = lipgloss.NewStyle().Bold(true)

	// DirStyle is the style for directory entries
	DirStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0099FF"))

	// SymlinkStyle is the style for symlink entries
	SymlinkStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FFFF"))

	// SpecialStyle is the style for device, fifo, and socket entries
	SpecialStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFAA00"))

	// ErrorIcon is the icon for error messages
	ErrorIcon = "❌"
)

// TypeStyle returns the display style for an entry type.
func TypeStyle(t lister.EntryType) lipgloss.Style {
	switch t {
	case lister.TypeDirectory:
		return DirStyle
	case lister.TypeSymlink:
		return SymlinkStyle
	case lister.TypeBlockDevice, lister.TypeCharDevice, lister.TypeFIFO, lister.TypeSocket:
		return SpecialStyle
	case lister.TypeNotFound, lister.TypeUnknown, lister.TypeNone:
		return DimStyle
	default:
		return lipgloss.NewStyle()
	}
}
