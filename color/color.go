// Package color names the terminal colors used by the cli and the tui.
package color

import "github.com/charmbracelet/lipgloss"

func New(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

// ANSI colors follow the user's terminal theme.
var (
	Red    = New("1")
	Green  = New("2")
	Yellow = New("3")
	Blue   = New("4")
	Purple = New("5")
	Cyan   = New("6")
	White  = New("7")
	Black  = New("8")

	HiRed    = New("9")
	HiGreen  = New("10")
	HiYellow = New("11")
	HiBlue   = New("12")
	HiPurple = New("13")
	HiCyan   = New("14")
)

// Brand colors.
var (
	Valorant = New("#ff4655")
	Ink      = New("#0f1923")
	Cream    = New("#ece8e1")
	Gray     = New("#8b978f")
)

// Role colors, keyed by role display name.
var Role = map[string]lipgloss.Color{
	"Duelist":    New("#ff4655"),
	"Initiator":  New("#f0b232"),
	"Controller": New("#7e5bef"),
	"Sentinel":   New("#3cc4b4"),
}
