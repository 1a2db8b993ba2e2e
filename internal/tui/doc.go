// Package tui renders batch results for humans: lipgloss-styled result
// lines, terminal detection, and a bubbletea progress view used when
// svgrn runs on an interactive terminal.
package tui
