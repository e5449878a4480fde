package ui

// ANSI style constants for terminal output.
const (
	ColorReset = "\033[0m"
	ColorBold  = "\033[1m"
	ColorDim   = "\033[2m"

	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
)

// Bold styles section headings.
func Bold(s string) string {
	return ColorBold + s + ColorReset
}

// Success styles confirmation lines.
func Success(s string) string {
	return ColorGreen + s + ColorReset
}

// Info styles secondary notes.
func Info(s string) string {
	return ColorDim + ColorYellow + s + ColorReset
}
