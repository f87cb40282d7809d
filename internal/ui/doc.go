// Package ui renders styled terminal output for the CLI using lipgloss.
//
// A shared [Palette] holds the named styles (title, ok, err, warn, help);
// [IssueList] lays out an issue listing with the palette, and the
// message helpers wrap one-line notices for command output.
package ui
