package ui

// Node box geometry. The outer width adds the two border columns.
const (
	nodeInnerWidth = 8
	nodeOuterWidth = nodeInnerWidth + 2
)

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which compact mode is used.
	LayoutCompactWidth = 80

	// DefaultFrameWidth is used when the terminal width is unknown.
	DefaultFrameWidth = 100
)

// Input fields.
const (
	valueCharLimit      = 32
	positionCharLimit   = 6
	fieldLabelWidth     = 10
	valuePlaceholder    = "Enter value"
	positionPlaceholder = "Position (optional)"
)
