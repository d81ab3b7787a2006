// Package metrics centralizes layout constants for the TUI.
package metrics

const (
	HeaderLines = 2
	FilterLines = 1

	ItemRightPadding  = 1
	ItemSafetyPadding = 1

	MinScoreStep = 5
)
