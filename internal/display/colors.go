// Package display provides terminal color codes and small formatting
// helpers shared by the console and telnet transports.
package display

// Terminal color codes
const (
	Reset   = "\033[0m"
	Red     = "\033[31m"
	Green   = "\033[32m"
	Yellow  = "\033[33m"
	Blue    = "\033[34m"
	Magenta = "\033[35m"
	Cyan    = "\033[36m"
	White   = "\033[37m"
)

// Colorize wraps text in the given color code.
func Colorize(text, color string) string {
	if color == "" {
		return text
	}
	return color + text + Reset
}

// Prompt returns the colored command prompt string.
func Prompt(text string) string {
	return Yellow + text + " > " + Reset
}

// ErrorMsg marks a line as an error message.
func ErrorMsg(text string) string {
	return Red + "Error: " + text + Reset
}
