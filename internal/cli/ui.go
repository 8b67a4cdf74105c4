package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/Shivam-Bhardwaj/AutoCrate-V12-sub000/pkg/crate/reconcile"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorBlue   = lipgloss.Color("75")  // Light blue - commands
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleSuccess for success messages.
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	styleCommand = lipgloss.NewStyle().Foreground(colorBlue)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconArrow   = "→"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + msg)
}

// printError prints an error message.
func printError(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconError.Render(iconError) + " " + msg)
}

// printWarning prints a warning message.
func printWarning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconWarning.Render(iconWarning) + " " + StyleWarning.Render(msg))
}

// printFile prints a file output line.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path))
}

// printKeyValue prints a labeled value.
func printKeyValue(key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(16)
	fmt.Println(keyStyle.Render(key) + " " + StyleValue.Render(value))
}

// printNextStep prints a suggested next command.
func printNextStep(description, cmd string) {
	fmt.Println(StyleDim.Render(description+":") + " " + styleCommand.Render(cmd))
}

// =============================================================================
// Crate Summary
// =============================================================================

// printCrateSummary prints the computed envelope and component counts.
func printCrateSummary(res *reconcile.Result) {
	printKeyValue("Overall", fmt.Sprintf("%.2f W x %.2f L x %.2f H in",
		res.Envelope.Width, res.Envelope.Length, res.Envelope.Height))
	printKeyValue("Skids", fmt.Sprintf("%d x %s at %.2f in pitch",
		res.Skids.Count, res.Skids.Callout, res.Skids.Pitch))
	printKeyValue("Floorboards", fmt.Sprintf("%d", len(res.Floor.Boards)))

	var sheets, cleats int
	for i := range res.Panels {
		p := &res.Panels[i]
		sheets += len(p.Sheets)
		cleats += len(p.Verticals) + len(p.Horizontals) + len(p.Sections)
	}
	printKeyValue("Plywood", fmt.Sprintf("%d sheets", sheets))
	printKeyValue("Cleats", fmt.Sprintf("%d", cleats))

	if res.GrowthWidth > 0 || res.GrowthLength > 0 {
		printKeyValue("Growth", fmt.Sprintf("+%.2f W, +%.2f L over %d passes",
			res.GrowthWidth, res.GrowthLength, res.Passes))
	}
}
