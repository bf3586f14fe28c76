// Package tui renders console reports, styled with lipgloss when a person is
// watching the terminal and as plain lines otherwise.
package tui
