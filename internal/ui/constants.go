package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFolder   = "📁"
	IconFile     = "📄"
	IconDrag     = "☰"
	IconUp       = "▲"
	IconDown     = "▼"
)

// Text fragments
const (
	RowIndexFormat = "%d."
)

// Layout sizing (FileRow / list)
const (
	IndexLabelWidth float32 = 36

	RowMinWidth  float32 = 320
	RowMinHeight float32 = 36

	ListMinHeight float32 = 240
)

// Dialog sizing
const (
	SettingsDialogWidth  float32 = 500
	SettingsDialogHeight float32 = 320
)

// Default names for outputs chosen in dialogs
const (
	DefaultCombinedFileName = "combined_document.pdf"
	PDFExtension            = ".pdf"
)
