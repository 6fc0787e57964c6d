package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorCyan   = lipgloss.Color("36")
	colorGreen  = lipgloss.Color("35")
	colorYellow = lipgloss.Color("220")
	colorRed    = lipgloss.Color("167")
	colorBlue   = lipgloss.Color("75")
	colorWhite  = lipgloss.Color("255")
	colorGray   = lipgloss.Color("245")
	colorDim    = lipgloss.Color("240")
)

// Styles shared by commands and the inspect view.
var (
	StyleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	StyleDim     = lipgloss.NewStyle().Foreground(colorDim)
	StyleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	StyleNumber  = lipgloss.NewStyle().Foreground(colorCyan)
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

var (
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)
	styleCommand     = lipgloss.NewStyle().Foreground(colorBlue)
	styleKey         = lipgloss.NewStyle().Foreground(colorGray).Width(12)
	stylePruned      = lipgloss.NewStyle().Foreground(colorYellow)
	styleCached      = lipgloss.NewStyle().Foreground(colorGreen)
	styleFresh       = lipgloss.NewStyle().Foreground(colorGray)
)

// statusIcon is the leading glyph of a one-line status message.
type statusIcon struct {
	glyph string
	style lipgloss.Style
}

var (
	iconSuccess = statusIcon{"✓", lipgloss.NewStyle().Foreground(colorGreen)}
	iconError   = statusIcon{"✗", lipgloss.NewStyle().Foreground(colorRed)}
	iconWarning = statusIcon{"!", lipgloss.NewStyle().Foreground(colorYellow)}
	iconInfo    = statusIcon{"›", lipgloss.NewStyle().Foreground(colorGray)}
)

func (i statusIcon) println(msg string) {
	fmt.Println(i.style.Render(i.glyph) + " " + msg)
}

func printSuccess(format string, args ...any) { iconSuccess.println(fmt.Sprintf(format, args...)) }
func printError(format string, args ...any)   { iconError.println(fmt.Sprintf(format, args...)) }
func printInfo(format string, args ...any)    { iconInfo.println(fmt.Sprintf(format, args...)) }

func printWarning(format string, args ...any) {
	iconWarning.println(StyleWarning.Render(fmt.Sprintf(format, args...)))
}

// printDetail prints an indented, muted line.
func printDetail(format string, args ...any) {
	fmt.Println("  " + StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile prints a written output path.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render("→") + " " + StyleValue.Render(path))
}

func printKeyValue(key, value string) {
	fmt.Println(styleKey.Render(key) + " " + StyleValue.Render(value))
}

// statsLine summarizes a layout run, e.g. "7 boxes · 6 placed · 1 pruned · cached".
// Boxes missing from the layout sat below a grid that could not be computed.
func statsLine(nodeCount, itemCount int, cached bool) string {
	sep := StyleDim.Render(" · ")
	var parts []string
	if nodeCount > 0 {
		parts = append(parts, StyleNumber.Render(fmt.Sprint(nodeCount))+StyleDim.Render(" boxes"))
	}
	parts = append(parts, StyleNumber.Render(fmt.Sprint(itemCount))+StyleDim.Render(" placed"))
	if pruned := nodeCount - itemCount; pruned > 0 {
		parts = append(parts, stylePruned.Render(fmt.Sprintf("%d pruned", pruned)))
	}
	if cached {
		parts = append(parts, styleCached.Render("cached"))
	} else {
		parts = append(parts, styleFresh.Render("fresh"))
	}
	return "  " + strings.Join(parts, sep)
}

func printStats(nodeCount, itemCount int, cached bool) {
	fmt.Println(statsLine(nodeCount, itemCount, cached))
}

// printNextStep suggests a follow-up command.
func printNextStep(description, cmd string) {
	fmt.Println(StyleDim.Render(description+":") + " " + styleCommand.Render(cmd))
}

func printNewline() { fmt.Println() }
