// Package cli provides styled terminal output using lipgloss.
package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/fintrack-cli/fintrack/internal/ledger"
)

var (
	// PrimaryColor is the main theme color.
	PrimaryColor = lipgloss.Color("#36C5F0")
	// SuccessColor indicates successful operations.
	SuccessColor = lipgloss.Color("#2EB67D")
	// WarningColor indicates warnings or caution messages.
	WarningColor = lipgloss.Color("#ECB22E")
	// ErrorColor indicates errors or failure messages.
	ErrorColor = lipgloss.Color("#E01E5A")
	// SubtleColor indicates less prominent UI elements.
	SubtleColor = lipgloss.Color("#666666")

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor)

	// SuccessStyle formats success messages.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	// WarningStyle formats warning messages.
	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	// ErrorStyle formats error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// SubtleStyle formats less prominent text.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// BoldStyle makes text bold.
	BoldStyle = lipgloss.NewStyle().
			Bold(true)
)

// Icons.
const (
	SuccessIcon = "✓"
	ErrorIcon   = "✗"
	WarningIcon = "⚠"
	MoneyIcon   = "💰"
)

// FormatSuccess formats a success message with icon.
func FormatSuccess(message string) string {
	return SuccessStyle.Render(SuccessIcon + " " + message)
}

// FormatError formats an error message with icon.
func FormatError(message string) string {
	return ErrorStyle.Render(ErrorIcon + " " + message)
}

// FormatWarning formats a warning message with icon.
func FormatWarning(message string) string {
	return WarningStyle.Render(WarningIcon + " " + message)
}

// FormatTitle formats a section title.
func FormatTitle(title string) string {
	return TitleStyle.Render(MoneyIcon + " " + title)
}

// FormatAmount renders a monetary amount with the currency symbol.
func FormatAmount(symbol string, amount float64) string {
	return fmt.Sprintf("%s%.2f", symbol, amount)
}

// BudgetBandStyle returns the style for a budget band.
func BudgetBandStyle(band ledger.BudgetBand) lipgloss.Style {
	switch band {
	case ledger.BudgetGood:
		return SuccessStyle
	case ledger.BudgetCaution:
		return WarningStyle
	default:
		return ErrorStyle
	}
}

// DueBandStyle returns the style for a subscription due band.
func DueBandStyle(band ledger.DueBand) lipgloss.Style {
	switch band {
	case ledger.DueOverdue:
		return ErrorStyle
	case ledger.DueSoon:
		return WarningStyle
	default:
		return SuccessStyle
	}
}

// DueText renders the human phrasing for a days-left count: "in N days",
// "TODAY!", or "N days overdue".
func DueText(daysLeft int) string {
	switch {
	case daysLeft > 0:
		return fmt.Sprintf("in %d days", daysLeft)
	case daysLeft == 0:
		return "TODAY!"
	default:
		return fmt.Sprintf("%d days overdue", -daysLeft)
	}
}
