package cli

import (
	"os"

	"golang.org/x/term"

	"github.com/vijay-prabhu/winematch/internal/match"
)

// ANSI color codes
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorBlue   = "\033[34m"
	ColorPurple = "\033[35m"
	ColorCyan   = "\033[36m"
	ColorWhite  = "\033[37m"
	ColorGray   = "\033[90m"
)

// Terminal provides terminal-aware output utilities
type Terminal struct {
	IsTerminal bool
	UseColor   bool
}

// NewTerminal creates a new Terminal instance
func NewTerminal() *Terminal {
	isTerminal := term.IsTerminal(int(os.Stdout.Fd())) && term.IsTerminal(int(os.Stdin.Fd()))
	return &Terminal{
		IsTerminal: isTerminal,
		UseColor:   isTerminal && os.Getenv("NO_COLOR") == "",
	}
}

// Color wraps text in ANSI color codes (terminal only)
func (t *Terminal) Color(color, text string) string {
	if !t.UseColor {
		return text
	}
	return color + text + ColorReset
}

// StateColor returns the color used to announce a recommendation state
func StateColor(s match.State) string {
	switch s {
	case match.StateMatched:
		return ColorGreen
	case match.StateNoMatches:
		return ColorYellow
	default:
		return ColorGray
	}
}

// ScoreColor returns the color for a match score
func ScoreColor(score float64) string {
	switch match.Describe(score) {
	case "perfect match":
		return ColorPurple
	case "strong match":
		return ColorGreen
	case "partial match":
		return ColorCyan
	default:
		return ColorWhite
	}
}
